package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	carthttp "github.com/nikolayk812/rocketshoes-cart/internal/http"
	"github.com/nikolayk812/rocketshoes-cart/internal/notify"
	"github.com/spf13/cobra"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront and cart over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := c.app

			handler := carthttp.NewCartHandler(a.Store, a.Storefront,
				notify.NewLogNotifier(a.Logger, a.Printer), a.Printer, a.Logger)

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%d", c.cfg.HTTPPort),
				Handler:           carthttp.NewRouter(handler),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.Logger.Info("http server listening", "addr", srv.Addr)
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return fmt.Errorf("srv.ListenAndServe: %w", err)
			case <-cmd.Context().Done():
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			a.Logger.Info("http server shutting down")
			if err := srv.Shutdown(ctx); err != nil {
				return fmt.Errorf("srv.Shutdown: %w", err)
			}
			return nil
		},
	}
}
