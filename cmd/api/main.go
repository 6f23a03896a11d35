package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodhub-support/config"
	_ "foodhub-support/docs" // Swagger docs
	"foodhub-support/internal/chat/usecase"
	"foodhub-support/internal/guardrail"
	"foodhub-support/internal/httpserver"
	"foodhub-support/internal/middleware"
	orderSqlite "foodhub-support/internal/order/repository/sqlite"
	"foodhub-support/internal/router"
	"foodhub-support/internal/session"
	"foodhub-support/pkg/llmprovider"
	"foodhub-support/pkg/log"
)

// @title       FoodHub Support API
// @description Guardrail-enforced customer-service chat for FoodHub order support.
// @version     1
// @host        localhost:8080
// @schemes     http
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting FoodHub Support...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Order fact store
	db, err := orderSqlite.Open(cfg.OrderStore.Path)
	if err != nil {
		logger.Fatalf(ctx, "Failed to open order store: %v", err)
	}
	defer db.Close()

	if err := orderSqlite.Migrate(ctx, db); err != nil {
		logger.Fatalf(ctx, "Failed to migrate order store: %v", err)
	}

	orderRepo := orderSqlite.New(db, logger, cfg.OrderStore.QueryTimeout)
	if err := orderRepo.Ping(ctx); err != nil {
		logger.Fatalf(ctx, "Order store unreachable: %v", err)
	}
	logger.Infof(ctx, "Order store ready at %s", cfg.OrderStore.Path)

	// 4. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize LLM providers: %v", err)
	}
	llmManager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      durationOr(cfg.LLM.RetryDelay, 2*time.Second),
		MaxTotalTimeout: durationOr(cfg.LLM.MaxTotalTimeout, 90*time.Second),
	}, logger)

	// 5. Core components
	guard := guardrail.New(logger, cfg.Guardrail)
	intentRouter := router.New(logger)
	sessions := session.New(logger, cfg.Session)

	chatUC := usecase.New(
		logger,
		guard,
		intentRouter,
		sessions,
		orderRepo,
		llmManager,
		cfg.Guardrail.SupportContact,
		cfg.Session.MaxHistory,
	)

	// 6. HTTP server
	mw := middleware.New(logger, cfg.RateLimit)

	srv, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		ChatUseCase: chatUC,
		OrderRepo:   orderRepo,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	if err := srv.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}

// durationOr parses a config duration string, falling back when it is empty
// or malformed.
func durationOr(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
