// @title Trivia API
// @version 1.0
// @description Categories, questions, search and quiz play for the trivia game.
// @host localhost:5000
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quizcafe/cmd/trivia-api/docs"
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

const serviceName = "trivia-api"

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

	db, err := database.NewSQLXOracleDB(cfg.TriviaDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)
	triviaService := service.NewTriviaService(questionRepository, categoryRepository)
	triviaHandler := handler.NewTriviaHandler(triviaService, validation.NewValidator())

	deps := router.Deps{
		Server:    cfg.Server,
		CORS:      cfg.CORS,
		RateLimit: cfg.RateLimit,
		Tracer:    tracer,
		Store:     db,
	}
	if cfg.Metrics.Enabled {
		deps.Metrics = middleware.NewMetrics()
	}
	app := router.NewTriviaApp(deps, triviaHandler)

	go func() {
		appLogger.Info("Starting server", zap.String("service", serviceName), zap.Int("port", cfg.Server.Port))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
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
	appLogger.Info("Server exited gracefully")
}
