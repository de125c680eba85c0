package di

import (
	"go.uber.org/fx"

	"github.com/nafru/exportdesk/internal/app"
	"github.com/nafru/exportdesk/internal/config"
	"github.com/nafru/exportdesk/internal/docgen"
	"github.com/nafru/exportdesk/internal/logger"
	"github.com/nafru/exportdesk/internal/pkg/auth"
	"github.com/nafru/exportdesk/internal/server/http/handlers"
	"github.com/nafru/exportdesk/internal/server/http/router"
	"github.com/nafru/exportdesk/internal/storage/postgres"
	"github.com/nafru/exportdesk/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		docgen.Module,
		fx.Provide(func(r *docgen.Renderer) usecase.DocumentRenderer { return r }),
		usecase.Module,
		fx.Provide(func(f *app.TradeFacade) handlers.ExportFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
