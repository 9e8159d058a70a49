package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/StevenCC12/server-side-capi/docs"
	"github.com/StevenCC12/server-side-capi/internal/config"
	"github.com/StevenCC12/server-side-capi/internal/deliver"
	"github.com/StevenCC12/server-side-capi/internal/funnel"
	"github.com/StevenCC12/server-side-capi/internal/handler"
	"github.com/StevenCC12/server-side-capi/internal/logger"
	"github.com/StevenCC12/server-side-capi/internal/service"
	"github.com/StevenCC12/server-side-capi/internal/session"
	"github.com/StevenCC12/server-side-capi/internal/session/memory"
	"github.com/StevenCC12/server-side-capi/internal/session/redis"
)

// @title Attribution Conversion Relay API
// @version 1.0
// @description API for capturing funnel attribution and relaying conversion events
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	// .env is optional; real deployments configure the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	if cfg.Service.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	log.Info("Starting relay service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize session store
	var store session.Store
	if cfg.Redis.Addr != "" {
		redisStore, err := redis.NewStore(ctx, &cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to create Redis session store", zap.Error(err))
		}
		store = redisStore
	} else {
		log.Warn("REDIS_ADDR not set, using in-memory session store")
		store = memory.NewStore(time.Duration(cfg.Redis.SessionTTLMin) * time.Minute)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("Failed to close session store", zap.Error(err))
		}
	}()

	// Initialize delivery client and the fire-and-forget worker
	client := deliver.NewClient(log)
	sender := deliver.NewAsyncSender(client, cfg.Delivery.AsyncBuffer, log)
	go sender.Start(ctx)

	// Initialize relay service over the canonical funnel pages
	relay := service.NewRelayService(funnel.Pages(cfg), store, client, sender, log)

	// Initialize handler
	h := handler.NewHandler(relay, log)

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	server := &http.Server{
		Addr:    addr,
		Handler: h,
	}

	go func() {
		log.Info("API server starting", zap.String("address", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info("Shutting down relay gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Stop the async sender after the server so in-flight interactions can
	// still hand off their events; buffered events get one final attempt.
	cancel()
}
