package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fitzone/internal/class"
	"fitzone/internal/config"
	"fitzone/internal/logger"
	"fitzone/internal/report"
	"fitzone/internal/seed"
	"fitzone/internal/server"
	"fitzone/internal/subscription"
	"fitzone/internal/trainer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()
	logger.Info("Starting FitZone application")

	classRepo := class.NewRepository()
	trainerRepo := trainer.NewRepository()
	subscriptionRepo := subscription.NewRepository()

	classService := class.NewService(classRepo)
	trainerService := trainer.NewService(trainerRepo, classRepo)
	subscriptionService := subscription.NewService(subscriptionRepo, classRepo, subscription.NewDefaultPricing())
	reportService := report.NewService(classRepo, trainerRepo)

	if cfg.SeedSampleData {
		ctx := context.Background()
		if err := seed.SampleData(ctx, classService, trainerService); err != nil {
			logger.Fatalf("Failed to seed sample data: %v", err)
		}
		logger.Info("Sample data seeded")
	}

	srv := server.New(cfg, classService, trainerService, subscriptionService, reportService)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
