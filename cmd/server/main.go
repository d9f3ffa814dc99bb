package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Hairash/ai-helper/internal/config"
	"github.com/Hairash/ai-helper/internal/database"
	"github.com/Hairash/ai-helper/internal/handlers"
	"github.com/Hairash/ai-helper/internal/logging"
	"github.com/Hairash/ai-helper/internal/router"
	"github.com/Hairash/ai-helper/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()

	// ──── Step 2: Logging ────
	logger, err := logging.Init(cfg)
	if err != nil {
		logger.Warn("log file unavailable, logging to stderr", "path", cfg.LogFile, "error", err)
	}
	logger.Info("🚀 Starting AI reply backend...", "env", cfg.Env)

	// ──── Step 3: Initialize Completion Provider ────
	ctx := context.Background()
	provider, err := services.NewCompletionProvider(ctx, cfg)
	if err != nil {
		logger.Error("✗ completion provider initialization failed", "error", err)
		os.Exit(1)
	}
	if closer, ok := provider.(io.Closer); ok {
		defer closer.Close()
	}
	if cfg.APIKey() == "" {
		logger.Warn("upstream API key is not set, completions will fail authentication", "provider", provider.Name())
	}
	logger.Info("✓ completion provider ready", "provider", provider.Name())

	// ──── Step 4: Optional Redis Reply Event Feed ────
	var events services.EventPublisher
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			logger.Error("✗ Redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		events = services.NewRedisEventPublisher(redisClient, cfg.ReplyEventsChannel)
		logger.Info("✓ Redis connected, publishing reply events", "channel", cfg.ReplyEventsChannel)
	}

	// ──── Step 5: Start HTTP Server ────
	composer := services.NewReplyComposer(provider, events, cfg.UpstreamTimeout, logger)
	replyHandler := handlers.NewReplyHandler(composer)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router.New(replyHandler),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	logger.Info("✓ AI reply backend ready", "addr", fmt.Sprintf("http://localhost:%s", cfg.Port), "endpoint", "POST /ai_reply")

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
