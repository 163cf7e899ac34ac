package di

import (
	"go.uber.org/fx"

	"github.com/Saby007/go-microservices-demo/internal/adapter/userdirectory"
	"github.com/Saby007/go-microservices-demo/internal/app"
	"github.com/Saby007/go-microservices-demo/internal/config"
	"github.com/Saby007/go-microservices-demo/internal/logger"
	"github.com/Saby007/go-microservices-demo/internal/server/http/router"
	"github.com/Saby007/go-microservices-demo/internal/storage/postgres"
	"github.com/Saby007/go-microservices-demo/internal/usecase"
)

// OrderServiceModule assembles the order service fx graph.
func OrderServiceModule(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.OrderModule,
		logger.Module,
		postgres.OrderModule,
		userdirectory.Module,
		usecase.OrderModule,
		router.OrderModule,
		app.OrderModule,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// UserServiceModule assembles the user service fx graph.
func UserServiceModule(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.UserModule,
		logger.Module,
		postgres.UserModule,
		usecase.UserModule,
		router.UserModule,
		app.UserModule,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
