package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/Saby007/go-microservices-demo/internal/config"
	"github.com/Saby007/go-microservices-demo/internal/domain/repository"
)

// OrderModule wires order storage into the order service graph.
var OrderModule = fx.Options(
	fx.Provide(newOrderStorage),
	fx.Provide(func(s *OrderStorage) repository.OrderRepository { return s }),
	fx.Invoke(registerOrderLifecycle),
)

// UserModule wires user storage into the user service graph.
var UserModule = fx.Options(
	fx.Provide(newUserStorage),
	fx.Provide(func(s *UserStorage) repository.UserRepository { return s }),
	fx.Invoke(registerUserLifecycle),
)

type orderStorageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.OrderConfig
	Logger *slog.Logger
}

func newOrderStorage(p orderStorageParams) (*OrderStorage, error) {
	return NewOrderStorage(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerOrderLifecycle(lc fx.Lifecycle, storage *OrderStorage, cfg *config.OrderConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return err
			}
			if !cfg.SeedDemoData {
				return nil
			}
			return storage.SeedDemoData(ctx)
		},
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}

type userStorageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.UserConfig
	Logger *slog.Logger
}

func newUserStorage(p userStorageParams) (*UserStorage, error) {
	return NewUserStorage(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerUserLifecycle(lc fx.Lifecycle, storage *UserStorage, cfg *config.UserConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := storage.HealthCheck(ctx); err != nil {
				return err
			}
			if !cfg.SeedDemoData {
				return nil
			}
			return storage.SeedDemoData(ctx)
		},
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
