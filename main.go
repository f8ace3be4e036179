package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exercise-tracker/api"
	"exercise-tracker/config"
	"exercise-tracker/database"
	"exercise-tracker/logger"
	"exercise-tracker/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	log := logger.SetupDefault(os.Stdout, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("attempting to connect to database...")
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	backend, err := database.Connect(connectCtx, cfg.DatabaseURL, cfg.MongoDatabase)
	cancel()
	if err != nil {
		return fmt.Errorf("database connect: %w", err)
	}
	log.Info("successfully connected to database", slog.String("backend", backend.Name))
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := backend.Close(closeCtx); err != nil {
			log.Error("close database", slog.Any("error", err))
		}
	}()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	service := api.NewAPI(backend, api.Options{
		Logger:  log,
		Metrics: metrics.NewCollector(reg),
	})
	service.RegisterRoutes()

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           service.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
