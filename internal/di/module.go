package di

import (
	"go.uber.org/fx"

	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/mailer"
	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/objectstore"
	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/razorpay"
	"github.com/jayeshsingh-11/creative-cascade/internal/app"
	"github.com/jayeshsingh-11/creative-cascade/internal/config"
	"github.com/jayeshsingh-11/creative-cascade/internal/logger"
	"github.com/jayeshsingh-11/creative-cascade/internal/pkg/auth"
	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/handlers"
	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/router"
	"github.com/jayeshsingh-11/creative-cascade/internal/storage/postgres"
	"github.com/jayeshsingh-11/creative-cascade/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		razorpay.Module,
		objectstore.Module,
		mailer.Module,
		usecase.Module,
		fx.Provide(func(facade *app.MarketplaceFacade) handlers.MarketplaceFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
