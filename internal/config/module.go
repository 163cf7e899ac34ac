package config

import "go.uber.org/fx"

// OrderModule exposes the order service configuration loader for fx graphs.
var OrderModule = fx.Provide(LoadOrder)

// UserModule exposes the user service configuration loader for fx graphs.
var UserModule = fx.Provide(LoadUser)
