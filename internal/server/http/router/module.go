package router

import "go.uber.org/fx"

// OrderModule registers order service router construction for fx runtime.
var OrderModule = fx.Provide(SetupOrders)

// UserModule registers user service router construction for fx runtime.
var UserModule = fx.Provide(SetupUsers)
