package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/rocketshoes-cart/internal/api"
	"github.com/nikolayk812/rocketshoes-cart/internal/cart"
	"github.com/nikolayk812/rocketshoes-cart/internal/config"
	"github.com/nikolayk812/rocketshoes-cart/internal/migrations"
	"github.com/nikolayk812/rocketshoes-cart/internal/notify"
	"github.com/nikolayk812/rocketshoes-cart/internal/port"
	"github.com/nikolayk812/rocketshoes-cart/internal/repository"
	"github.com/nikolayk812/rocketshoes-cart/internal/storefront"
	"github.com/redis/go-redis/v9"
	"golang.org/x/text/message"
)

// App is the wired object graph for one cart.
type App struct {
	Store      *cart.Store
	Storefront *storefront.Service
	Printer    *message.Printer
	Logger     *slog.Logger

	closers []func() error
}

// New connects the configured storage, loads the cart and wires the collaborators.
func New(ctx context.Context, cfg config.Config, logger *slog.Logger) (_ *App, retErr error) {
	a := &App{
		Printer: notify.NewPrinter(cfg.Locale),
		Logger:  logger,
	}
	defer func() {
		if retErr != nil {
			retErr = errors.Join(retErr, a.Close())
		}
	}()

	storage, err := a.openStorage(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("openStorage: %w", err)
	}

	repo, err := repository.NewCart(storage, cfg.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("repository.NewCart: %w", err)
	}

	client, err := api.NewClient(cfg.APIBaseURL, api.WithTimeout(cfg.APITimeout))
	if err != nil {
		return nil, fmt.Errorf("api.NewClient: %w", err)
	}

	a.Store, err = cart.New(ctx, client, client, repo, logger)
	if err != nil {
		return nil, fmt.Errorf("cart.New: %w", err)
	}

	a.Storefront = storefront.New(client, a.Store, cfg.Currency, cfg.Locale)

	logger.Info("cart loaded", "storage", cfg.StorageDriver, "items", len(a.Store.Cart().Items))

	return a, nil
}

func (a *App) openStorage(ctx context.Context, cfg config.Config) (port.Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.closers = append(a.closers, client.Close)

		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("client.Ping: %w", err)
		}
		return repository.NewRedisStorage(client), nil

	case config.DriverPostgres:
		if err := migrations.Up(cfg.PostgresURL); err != nil {
			return nil, fmt.Errorf("migrations.Up: %w", err)
		}

		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, fmt.Errorf("pgxpool.New: %w", err)
		}
		a.closers = append(a.closers, func() error {
			pool.Close()
			return nil
		})

		if err := pool.Ping(ctx); err != nil {
			return nil, fmt.Errorf("pool.Ping: %w", err)
		}
		return repository.NewPostgresStorage(pool), nil

	case config.DriverMemory:
		return repository.NewMemoryStorage(), nil

	default:
		return nil, fmt.Errorf("storage driver[%s] is not supported", cfg.StorageDriver)
	}
}

// Close releases storage connections in reverse order of opening.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
