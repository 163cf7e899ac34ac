package usecase

import "go.uber.org/fx"

// OrderModule provides order use cases to the fx container.
var OrderModule = fx.Provide(NewOrderUseCase)

// UserModule provides user use cases to the fx container.
var UserModule = fx.Provide(NewUserUseCase)
