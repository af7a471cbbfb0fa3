package server

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	domrepo "marketcontext/internal/domain/repository"
	"marketcontext/internal/handler/api"
	"marketcontext/internal/usecase"
	"marketcontext/pkg/config"
	xhttp "marketcontext/pkg/http"
	applogger "marketcontext/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	log        *applogger.Logger
	builder    *usecase.SnapshotBuilder
	poller     *usecase.Poller
	sink       domrepo.SnapshotSink
	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	log *applogger.Logger,
	builder *usecase.SnapshotBuilder,
	poller *usecase.Poller,
	sink domrepo.SnapshotSink,
) *App {
	return &App{
		cfg:     cfg,
		log:     log,
		builder: builder,
		poller:  poller,
		sink:    sink,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	handler := api.NewSnapshotEchoHandler(a.log, a.builder)
	a.httpServer = xhttp.NewServer(handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout, a.cfg.Server.WriteTimeout, a.cfg.Server.ShutdownTimeout),
	)

	if a.cfg.Poller.Enabled {
		go func() {
			if err := a.poller.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.log.Error("poller error", applogger.Error(err))
			}
		}()
		a.log.Info("poller started", applogger.String("interval", a.cfg.Poller.Interval.String()))
	}

	if err := a.httpServer.Start(); err != nil {
		a.log.Error("http server start error", applogger.Error(err))
		return err
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.log.Info("shutdown signal received")
	cancel()
	return a.shutdown()
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	timeout := a.cfg.Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.log.Error("http shutdown error", applogger.Error(err))
	}

	if a.sink != nil {
		if err := a.sink.Close(); err != nil {
			a.log.Warn("snapshot sink close error", applogger.Error(err))
		}
	}

	a.log.Info("shutdown complete")
	return nil
}
