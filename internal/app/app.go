package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/Saby007/go-microservices-demo/internal/config"
	"github.com/Saby007/go-microservices-demo/internal/server/http/handlers"
	"github.com/Saby007/go-microservices-demo/internal/worker"
)

// OrderModule wires order service runtime components and lifecycle hooks.
var OrderModule = fx.Options(
	fx.Provide(
		NewOrderFacade,
		func(f *OrderFacade) handlers.OrderFacade { return f },
		func(f *OrderFacade) worker.OrderFacade { return f },
		newOrderHTTPServer,
		newValidationReconciler,
	),
	fx.Invoke(registerOrderLifecycle),
)

// UserModule wires user service runtime components and lifecycle hooks.
var UserModule = fx.Options(
	fx.Provide(
		NewUserFacade,
		func(f *UserFacade) handlers.UserFacade { return f },
		newUserHTTPServer,
	),
	fx.Invoke(registerUserLifecycle),
)

type orderServerParams struct {
	fx.In

	Config *config.OrderConfig
	Router *gin.Engine
}

func newOrderHTTPServer(p orderServerParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type userServerParams struct {
	fx.In

	Config *config.UserConfig
	Router *gin.Engine
}

func newUserHTTPServer(p userServerParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type reconcilerParams struct {
	fx.In

	Facade worker.OrderFacade
	Config *config.OrderConfig
	Logger *slog.Logger
}

func newValidationReconciler(p reconcilerParams) *worker.ValidationReconciler {
	return worker.NewValidationReconciler(
		p.Facade,
		p.Config.ReconcileInterval,
		p.Config.ReconcileBatch,
		p.Config.WorkerPoolSize,
		p.Logger,
	)
}

type orderLifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Worker     *worker.ValidationReconciler
	Config     *config.OrderConfig
}

func registerOrderLifecycle(p orderLifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting order service", slog.String("addr", p.Server.Addr))
			p.Worker.Start(ctx)
			go serve(p.Server, p.Logger, p.Shutdowner)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Worker.Stop()
			if err := shutdown(ctx, p.Server, p.Config.ShutdownTimeout); err != nil {
				return err
			}
			p.Logger.Info("order service stopped")
			return nil
		},
	})
}

type userLifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.UserConfig
}

func registerUserLifecycle(p userLifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting user service", slog.String("addr", p.Server.Addr))
			go serve(p.Server, p.Logger, p.Shutdowner)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if err := shutdown(ctx, p.Server, p.Config.ShutdownTimeout); err != nil {
				return err
			}
			p.Logger.Info("user service stopped")
			return nil
		},
	})
}

func serve(server *http.Server, logger *slog.Logger, shutdowner fx.Shutdowner) {
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server terminated", slog.String("error", err.Error()))
		_ = shutdowner.Shutdown()
	}
}

func shutdown(ctx context.Context, server *http.Server, timeout time.Duration) error {
	shutdownCtx := ctx
	cancel := func() {}
	if _, ok := ctx.Deadline(); !ok {
		shutdownCtx, cancel = context.WithTimeout(ctx, timeout)
	}
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
