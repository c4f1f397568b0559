package main

import (
	"context"
	"fmt"

	"content-copilot/config"
	"content-copilot/internal/conversation"
	restDelivery "content-copilot/internal/conversation/delivery/rest"
	"content-copilot/internal/conversation/store"
	"content-copilot/internal/conversation/usecase"
	"content-copilot/internal/httpserver"
	"content-copilot/internal/middleware"
	"content-copilot/pkg/assistant"
	"content-copilot/pkg/log"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()
	logger.Info(ctx, "Starting Content Copilot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Assistant backend: %s", cfg.Assistant.BaseURL)

	// 3. Assistant backend client
	backend := assistant.NewClient(cfg.Assistant.BaseURL, cfg.Assistant.APIKey, cfg.Assistant.Timeout)

	// 4. Conversation domain: one store + usecase per collection
	storeCfg := store.Config{MaxItems: cfg.Store.MaxItems, TrimTo: cfg.Store.TrimTo}

	postStore := store.NewFile(logger, cfg.Store.DataDir, "post-conversations", storeCfg)
	callStore := store.NewFile(logger, cfg.Store.DataDir, "call-conversations", storeCfg)

	collections := map[string]conversation.UseCase{
		conversation.CollectionPosts: usecase.New(logger, postStore, backend),
		conversation.CollectionCalls: usecase.New(logger, callStore, backend),
	}

	conversationHandler := restDelivery.New(logger, collections)

	// 5. HTTP Server
	mw := middleware.New(logger, cfg.RateLimit.PerMin)

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:              logger,
		Port:                cfg.HTTPServer.Port,
		Mode:                cfg.HTTPServer.Mode,
		Environment:         cfg.Environment.Name,
		Middleware:          mw,
		ConversationHandler: conversationHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
