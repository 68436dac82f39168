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

	"github.com/joho/godotenv"

	"expensetracker/internal/config"
	apphttp "expensetracker/internal/http"
	"expensetracker/internal/store"
	memstore "expensetracker/internal/store/memory"
	mongostore "expensetracker/internal/store/mongo"
)

func main() {
	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Choose data backend (default: mongo). The store connection is an
	// explicit handle: acquired here, released on shutdown.
	var st store.TransactionStore
	switch cfg.DataBackend {
	case "memory":
		st = memstore.New()
		logger.Info("Initialized memory backend", "backend", cfg.DataBackend)
	default:
		connectCtx, connectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongostore.Connect(connectCtx, cfg.MongoURL)
		connectCancel()
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err, "backend", cfg.DataBackend)
			os.Exit(1)
		}
		defer func() {
			disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer disconnectCancel()
			if err := client.Disconnect(disconnectCtx); err != nil {
				logger.Error("MongoDB disconnect error", "error", err)
			}
		}()
		st = mongostore.New(client, cfg.DBName)
		logger.Info("Connected to MongoDB", "database", cfg.DBName, "backend", cfg.DataBackend)
	}

	api := apphttp.NewServer(st, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        api.Handler(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 16, // 64KB
	}

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("Starting expensetracker server", "port", cfg.Port, "backend", cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Server error", "error", err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
