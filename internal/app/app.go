package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/nafru/exportdesk/internal/config"
	domainErrors "github.com/nafru/exportdesk/internal/domain/errors"
	"github.com/nafru/exportdesk/internal/domain/model"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewTradeFacade,
		newHTTPServer,
	),
	fx.Invoke(seedAdmin),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type seedParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Facade    *TradeFacade
	Logger    *slog.Logger
}

// seedAdmin provisions the initial ADMIN account on startup when configured.
// An already existing account is not an error.
func seedAdmin(p seedParams) {
	if p.Config.AdminEmail == "" || p.Config.AdminPassword == "" {
		return
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return provisionAdmin(ctx, p)
		},
	})
}

func provisionAdmin(ctx context.Context, p seedParams) error {
	_, err := p.Facade.Provision(ctx, p.Config.AdminEmail, p.Config.AdminName, p.Config.AdminPassword, model.RoleAdmin, p.Config.DefaultLanguage)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil
		}
		return err
	}
	p.Logger.Info("admin account provisioned", slog.String("email", p.Config.AdminEmail))
	return nil
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting exportdesk", slog.String("addr", p.Server.Addr))
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("exportdesk stopped")
			return nil
		},
	})
}
