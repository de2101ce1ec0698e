package restaurant

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/quickbite/orderservice/internal/config"
)

// Module exposes the restaurant directory client to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.RestaurantServiceAddress, p.Config.GatewayTimeout, p.Logger)
}
