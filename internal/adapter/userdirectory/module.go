package userdirectory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/Saby007/go-microservices-demo/internal/config"
)

// Module exposes the user directory client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.OrderConfig
	Logger *slog.Logger
}

func newClient(p clientParams) (Verifier, error) {
	return NewHTTPClient(p.Config.UserServiceAddress, p.Config.VerifyTimeout, p.Logger)
}
