package main

import (
	"errors"

	"github.com/nikolayk812/rocketshoes-cart/internal/app"
	"github.com/nikolayk812/rocketshoes-cart/internal/config"
	"github.com/nikolayk812/rocketshoes-cart/internal/logger"
	"github.com/spf13/cobra"
)

type cli struct {
	cfg config.Config
	app *app.App
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "rocketshoes",
		Short:         "Shopping cart backed by the RocketShoes stock and catalog API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			c.cfg = cfg

			log := logger.New(logger.Options{
				Service: "rocketshoes",
				Env:     cfg.AppEnv,
				Level:   cfg.LogLevel,
				Output:  cmd.ErrOrStderr(),
			})

			c.app, err = app.New(cmd.Context(), cfg, log)
			return err
		},
	}

	root.AddCommand(
		newServeCmd(c),
		newProductsCmd(c),
		newCartCmd(c),
		newAddCmd(c),
		newRemoveCmd(c),
		newSetCmd(c),
	)

	// cobra skips post-run hooks when RunE fails, so each command closes the app itself.
	for _, sub := range root.Commands() {
		sub.RunE = c.closeAfter(sub.RunE)
	}

	return root
}

func (c *cli) closeAfter(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (retErr error) {
		defer func() {
			if c.app != nil {
				retErr = errors.Join(retErr, c.app.Close())
			}
		}()
		return run(cmd, args)
	}
}
