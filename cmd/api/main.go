package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/unidash/internal/app"
	"github.com/Dan9191/unidash/internal/config"
	"github.com/Dan9191/unidash/internal/handler"
	"github.com/Dan9191/unidash/internal/integrations/weather"
	"github.com/Dan9191/unidash/internal/metrics"
	"github.com/Dan9191/unidash/internal/middleware"
	"github.com/Dan9191/unidash/internal/repository"
	"github.com/Dan9191/unidash/internal/service"
	"github.com/Dan9191/unidash/internal/storage"
	"github.com/Dan9191/unidash/internal/utils/email"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Initialize logger
	logger := app.NewLogger(os.Getenv("LOG_LEVEL"))

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logger = app.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	store, err := app.OpenStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	m := metrics.New(prometheus.DefaultRegisterer)

	provider, err := app.NewWeatherProvider(cfg, logger)
	if err != nil {
		logger.Fatalf("Failed to create weather client: %v", err)
	}
	pulse := weather.NewPulse(provider, cfg.WeatherCity, logger, m)
	if err := pulse.Start(cfg.WeatherRefresh); err != nil {
		logger.Fatalf("Failed to schedule weather refresh: %v", err)
	}
	defer pulse.Stop()

	// Initialize layers
	repo := repository.NewRepository(storage.NewShim(store, logger), cfg.WeatherCity)
	svc := service.NewService(repo, logger, cfg, pulse, email.NewSender(cfg, logger))
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(logger, m))
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	h.Routes(r, middleware.AuthMiddleware(svc, cfg.SingleUser))
	if cfg.SingleUser {
		logger.Warn("Single-user mode: every request runs as the local user")
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
	}
}
