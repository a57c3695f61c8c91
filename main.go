package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/splitteam/expense-backend/internal/infra/db/mongodb/helpers"
	"github.com/splitteam/expense-backend/internal/setup"
	"github.com/splitteam/expense-backend/internal/setup/config"
	"github.com/splitteam/expense-backend/internal/setup/middlewares"
	"github.com/splitteam/expense-backend/pkg/logging"
)

func main() {
	logging.Setup()

	config.LoadEnvFile(".env")
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	handler := middlewares.RecoveryMiddleware(
		middlewares.RequestIdMiddleware(
			middlewares.LoggingMiddleware(
				middlewares.CorsMiddleware(setup.Server(cfg), cfg.AllowedOrigins),
			),
		),
	)

	sm := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		IdleTimeout:  60 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		slog.Info("server is running", "port", cfg.Port)
		if err := sm.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	sig := <-sigChan
	slog.Info("received terminate, graceful shutdown", "signal", sig.String())

	tc, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sm.Shutdown(tc)

	helpers.DisconnectRedis()
}
