package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/exp/slog"

	"itemdesk/internal/app/server/api"
	"itemdesk/internal/app/server/config"
	"itemdesk/internal/infrastructure/migration"
	"itemdesk/internal/infrastructure/storage/postgres"
	"itemdesk/internal/utils/logger"
)

const (
	shutdownTimeout = 10 * time.Second
	janitorInterval = time.Hour
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)
	log.Info("starting itemdesk server", "env", cfg.Env, "address", cfg.Server.RunAddress)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := postgres.New(ctx, cfg, migration.DefaultEngine, log)
	if err != nil {
		log.Error("failed to init storage", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(cfg, api.NewServices(storage, cfg, log), reg, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go cleanupSessions(ctx, postgres.NewSessionRepository(storage, log), log)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}

// cleanupSessions раз в час удаляет истекшие сессии.
func cleanupSessions(ctx context.Context, repo *postgres.SessionRepository, log *slog.Logger) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.DeleteExpired(ctx)
			if err != nil {
				log.Error("failed to delete expired sessions", "error", err)
				continue
			}
			if n > 0 {
				log.Info("expired sessions deleted", "count", n)
			}
		}
	}
}
