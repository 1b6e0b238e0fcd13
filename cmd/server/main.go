package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Aaryadeep-Coder/cine-stream/internal/catalog"
	"github.com/Aaryadeep-Coder/cine-stream/internal/config"
	httpserver "github.com/Aaryadeep-Coder/cine-stream/internal/http"
	"github.com/Aaryadeep-Coder/cine-stream/internal/logger"
	"github.com/Aaryadeep-Coder/cine-stream/internal/store"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Optional .env for local development; the process environment wins otherwise.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "text").Fatalf("config error: %v", err)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	st := store.New(log)
	if cfg.SeedDemoData {
		store.SeedSampleData(st)
	}

	cat := catalog.New(st)
	server := httpserver.New(cfg, st, cat, log)

	log.WithField("port", cfg.Port).Info("starting catalog server")

	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			serverErrCh <- err
			return
		}
		serverErrCh <- nil
	}()

	select {
	case err := <-serverErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) && !errors.Is(err, context.Canceled) {
			log.WithError(err).Error("server error")
		}
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Error("graceful shutdown error")
	}
}
