package logger

import "go.uber.org/fx"

// Module provides the shared logger to both service graphs.
var Module = fx.Provide(New)
