package wallet

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/quickbite/orderservice/internal/config"
)

// Module exposes the wallet client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.UserServiceAddress, p.Config.GatewayTimeout, p.Logger)
}
