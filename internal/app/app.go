// Package app wires configuration into running components.
package app

import (
	"context"
	"fmt"

	"pix_storefront/internal/adapter/http/routes"
	"pix_storefront/internal/adapter/persistence/repository"
	"pix_storefront/internal/adapter/telegram"
	"pix_storefront/internal/config"
	"pix_storefront/internal/domain/entities"
	"pix_storefront/internal/infrastructure/database"
	"pix_storefront/internal/infrastructure/logging"
	"pix_storefront/internal/infrastructure/payments"
	"pix_storefront/internal/infrastructure/qrcode"
	"pix_storefront/internal/infrastructure/scheduler"
	"pix_storefront/internal/infrastructure/session"
	"pix_storefront/internal/usecase"
	"pix_storefront/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// App holds the components shared by every command.
type App struct {
	Config   *config.Config
	Catalog  *entities.Catalog
	Gateway  interfaces.IPaymentGateway
	Orders   interfaces.IPixOrderRepository
	Payments *usecase.PixPaymentUseCase

	logger zerolog.Logger
}

// New builds the payment side of the storefront. It does not touch Telegram.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gateway, err := payments.NewGateway(cfg)
	if err != nil {
		return nil, fmt.Errorf("payment gateway: %w", err)
	}

	orders, err := newOrderRepository(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("order storage: %w", err)
	}

	uc := usecase.NewPixPaymentUseCase(gateway, orders, usecase.PixPaymentOptions{
		Timeout:     cfg.Payment.Timeout,
		ExpiresIn:   cfg.Payment.PixExpiresIn,
		Description: cfg.Payment.ItemDescription,
		ItemCode:    cfg.Payment.ItemCode,
	})

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = entities.DefaultCatalog()
	}

	a := &App{
		Config:   cfg,
		Catalog:  catalog,
		Gateway:  gateway,
		Orders:   orders,
		Payments: uc,
		logger:   logging.Component("app"),
	}
	a.logger.Info().
		Str("provider", gateway.Name()).
		Str("storage", cfg.Storage.Driver).
		Int("categories", len(catalog.ListCategories())).
		Msg("storefront configured")
	return a, nil
}

func newOrderRepository(ctx context.Context, cfg *config.Config) (interfaces.IPixOrderRepository, error) {
	switch cfg.Storage.Driver {
	case config.StorageMemory, "":
		return repository.NewPixOrderMemoryRepository(), nil
	case config.StorageDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		if cfg.DynamoDB.CreateTable {
			if err := database.EnsurePixOrdersTable(ctx, ddb, cfg.DynamoDB.OrdersTable); err != nil {
				return nil, err
			}
		}
		return repository.NewPixOrderDynamoRepository(ddb, cfg.DynamoDB.OrdersTable), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// Serve runs the bot, the payment watcher and, when enabled, the HTTP API
// until ctx is cancelled or one of them fails.
func (a *App) Serve(ctx context.Context) error {
	if err := a.Config.ValidateBot(); err != nil {
		return err
	}

	api, err := telegram.Connect(a.Config.Telegram)
	if err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	messenger := telegram.NewMessenger(api)

	var watcher *scheduler.PaymentWatcher
	if a.Config.Watcher.Enabled {
		watcher, err = scheduler.NewPaymentWatcher(a.Config.Watcher.Schedule, a.Payments, messenger)
		if err != nil {
			return err
		}
		watcher.Start()
		defer watcher.Stop()
	}

	wizard := usecase.NewOrderWizard(a.Catalog, a.Payments, session.NewStore(), messenger, watcherOrNil(watcher), qrcode.NewRenderer(qrcode.DefaultSize))
	dispatcher := usecase.NewBotDispatcher(wizard, messenger)
	bot := telegram.NewBot(api, dispatcher, messenger, a.Config.Telegram.UpdateTimeout)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bot.Run(gctx) })
	if a.Config.HTTP.Enabled {
		g.Go(func() error { return a.ServeHTTP(gctx) })
	}
	return g.Wait()
}

// ServeHTTP runs only the HTTP API.
func (a *App) ServeHTTP(ctx context.Context) error {
	if a.Config.HTTP.GinMode != "" {
		gin.SetMode(a.Config.HTTP.GinMode)
	}
	return routes.Run(ctx, routes.NewRouter(a.Catalog, a.Payments), a.Config.HTTP.Port)
}

// watcherOrNil keeps a nil *PaymentWatcher from becoming a non-nil interface.
func watcherOrNil(w *scheduler.PaymentWatcher) interfaces.IPaymentWatcher {
	if w == nil {
		return nil
	}
	return w
}
