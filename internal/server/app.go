// Package server initializes and runs the Dream Diary server: configuration,
// logging, database gateway, migrations, services, and the HTTP API, with
// graceful shutdown on termination signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/soniwriter/dreamdiary/internal/logging"
	"github.com/soniwriter/dreamdiary/internal/server/config"
	"github.com/soniwriter/dreamdiary/internal/server/gateway"
	"github.com/soniwriter/dreamdiary/internal/server/httpapi"
	"github.com/soniwriter/dreamdiary/internal/server/repositories/repomanager"
	"github.com/soniwriter/dreamdiary/internal/server/services"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	gateway *gateway.Gateway
	server  *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	gw, err := gateway.New(cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	db, err := gw.DB(ctx)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	authService := services.NewAuthService(db, rm, cfg)
	srv := httpapi.NewServer(cfg, logger,
		services.NewPoemService(db, rm),
		services.NewMovieService(db, rm),
		services.NewBookService(db, rm),
		services.NewPersonalInfoService(db, rm),
		authService,
		services.NewSeedService(db, rm, authService),
	)

	return &App{config: cfg, logger: logger, gateway: gw, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app", "addr", app.config.EndpointAddr)

	app.initSignalHandler(cancelFunc)

	go func() {
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, "http server error", "error", err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(context.Background(), "shutting down")
	if err := app.server.Shutdown(context.Background()); err != nil {
		app.logger.Error(context.Background(), "shutdown error", "error", err.Error())
	}
	if err := app.gateway.Shutdown(); err != nil {
		app.logger.Error(context.Background(), "db close error", "error", err.Error())
	}
}
