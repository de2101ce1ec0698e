package di

import (
	"go.uber.org/fx"

	"github.com/quickbite/orderservice/internal/adapter/restaurant"
	"github.com/quickbite/orderservice/internal/adapter/wallet"
	"github.com/quickbite/orderservice/internal/app"
	"github.com/quickbite/orderservice/internal/config"
	"github.com/quickbite/orderservice/internal/logger"
	"github.com/quickbite/orderservice/internal/server/http/handlers"
	"github.com/quickbite/orderservice/internal/server/http/router"
	"github.com/quickbite/orderservice/internal/storage/postgres"
	"github.com/quickbite/orderservice/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		postgres.Module,
		wallet.Module,
		restaurant.Module,
		usecase.Module,
		fx.Provide(func(f *app.OrderFacade) handlers.OrderFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
