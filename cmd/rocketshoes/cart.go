package main

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/nikolayk812/rocketshoes-cart/internal/cart"
	"github.com/nikolayk812/rocketshoes-cart/internal/notify"
	"github.com/nikolayk812/rocketshoes-cart/internal/storefront"
	"github.com/spf13/cobra"
)

func newProductsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "products",
		Short: "List the catalog with the amount of each product in the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			views, err := c.app.Storefront.List(cmd.Context())
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tIN CART")
			for _, v := range views {
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", v.ID, v.Title, v.PriceFormatted, v.CartAmount)
			}
			return tw.Flush()
		},
	}
}

func newCartCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "cart",
		Short: "Show the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printCart(cmd.OutOrStdout(), c.app.Storefront.Summary(c.app.Store.Cart()))
		},
	}
}

func newAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add PRODUCT_ID",
		Short: "Add one unit of a product to the cart",
		Args:  cobra.MatchAll(cobra.ExactArgs(1), validateArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, _ := parseProductID(args[0])
			return c.report(cmd, c.app.Store.AddProduct(cmd.Context(), productID))
		},
	}
}

func newRemoveCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "remove PRODUCT_ID",
		Short: "Remove a product from the cart",
		Args:  cobra.MatchAll(cobra.ExactArgs(1), validateArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, _ := parseProductID(args[0])
			return c.report(cmd, c.app.Store.RemoveProduct(cmd.Context(), productID))
		},
	}
}

func newSetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "set PRODUCT_ID AMOUNT",
		Short: "Set the amount of a product in the cart",
		Args:  cobra.MatchAll(cobra.ExactArgs(2), validateArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID, _ := parseProductID(args[0])
			amount, _ := parseAmount(args[1])
			return c.report(cmd, c.app.Store.UpdateProductAmount(cmd.Context(), productID, amount))
		},
	}
}

// report prints the user-facing signal, if any, then the resulting cart.
// A signalled outcome is not a command error.
func (c *cli) report(cmd *cobra.Command, out cart.Outcome) error {
	notifier := notify.NewWriterNotifier(cmd.ErrOrStderr(), c.app.Printer)
	notify.Surface(cmd.Context(), notifier, out)

	return printCart(cmd.OutOrStdout(), c.app.Storefront.Summary(out.Cart))
}

func printCart(w io.Writer, view storefront.CartView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tTITLE\tPRICE\tAMOUNT\tSUBTOTAL")
	for _, line := range view.Items {
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", line.ID, line.Title, line.PriceFormatted, line.Amount, line.SubtotalFormatted)
	}
	_, _ = fmt.Fprintf(tw, "\t\t\tTOTAL\t%s\n", view.TotalFormatted)
	return tw.Flush()
}

// validateArgs runs before the app is opened.
func validateArgs(_ *cobra.Command, args []string) error {
	if _, err := parseProductID(args[0]); err != nil {
		return err
	}
	if len(args) > 1 {
		if _, err := parseAmount(args[1]); err != nil {
			return err
		}
	}
	return nil
}

func parseAmount(s string) (int, error) {
	amount, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("amount[%s] is not a number", s)
	}
	return amount, nil
}

func parseProductID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("product id[%s] must be a positive integer", s)
	}
	return id, nil
}
