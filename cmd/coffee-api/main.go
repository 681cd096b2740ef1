package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"quizcafe/internal/config"
	"quizcafe/internal/database"
	"quizcafe/internal/handler"
	"quizcafe/internal/logger"
	"quizcafe/internal/middleware"
	"quizcafe/internal/repository"
	"quizcafe/internal/router"
	"quizcafe/internal/service"
	"quizcafe/internal/telemetry"
	"quizcafe/internal/validation"

	"go.uber.org/zap"
)

const serviceName = "coffee-api"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	tracer, err := telemetry.InitTracer(cfg.Tracing, serviceName)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracer", zap.Error(err))
	}

	db, err := database.NewGormPostgresDB(cfg.CoffeeDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// The JWKS is refreshed in the background until keysCtx is cancelled.
	keysCtx, stopKeys := context.WithCancel(context.Background())
	defer stopKeys()
	keys, err := service.NewJWKSKeySource(keysCtx, cfg.Auth.JWKSURL())
	if err != nil {
		appLogger.Fatal("Failed to load signing keys", zap.Error(err))
	}
	verifier := service.NewPermissionVerifier(keys, cfg.Auth)

	drinkRepository := repository.NewDrinkRepository(db)
	drinkService := service.NewDrinkService(drinkRepository)
	drinkHandler := handler.NewDrinkHandler(drinkService, validation.NewValidator())

	deps := router.Deps{
		Server:    cfg.Server,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Tracer:    tracer,
		Store:     drinkRepository,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = middleware.NewMetrics()
	}
	app := router.NewCoffeeApp(deps, drinkHandler, verifier)

	go func() {
		appLogger.Info("Starting server", zap.String("service", serviceName), zap.Int("port", cfg.Server.CoffeePort))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.CoffeePort)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := tracer.Shutdown(ctx); err != nil {
		appLogger.Error("Failed to flush traces", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	appLogger.Info("Server exited gracefully")
}
