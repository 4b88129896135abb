package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/apper-canvas/dynamic-mindfulpath-integrated/config"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/routes"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/services"
	"github.com/apper-canvas/dynamic-mindfulpath-integrated/store"
)

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := config.NewLogger(cfg.LogDir)
	defer logger.Sync()

	stores, err := store.SeedStores()
	if err != nil {
		logger.Fatalw("failed to seed stores", "error", err)
	}

	delay := services.Latency{}
	if cfg.SimulateLatency {
		delay = services.DefaultLatency()
	}
	registry := services.NewRegistry(stores, cfg.MetricTTL, delay, logger)

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := routes.SetupRouter(logger, registry)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		logger.Infow("server listening", "port", cfg.ServerPort, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatalw("shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
