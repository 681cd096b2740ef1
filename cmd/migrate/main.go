package main

import (
	"context"
	"flag"
	"log"
	"time"

	"quizcafe/internal/config"
	"quizcafe/internal/database"
	"quizcafe/internal/logger"

	"go.uber.org/zap"
)

func main() {
	target := flag.String("target", "trivia", "schema to migrate: trivia or coffee")
	down := flag.Bool("down", false, "roll back the latest coffee migration")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	switch *target {
	case "trivia":
		if *down {
			l.Fatal("The trivia schema has no down migrations")
		}
		migrateTrivia(cfg, l)
	case "coffee":
		migrateCoffee(cfg, l, *down)
	default:
		l.Fatal("Unknown migration target", zap.String("target", *target))
	}
}

func migrateTrivia(cfg *config.Config, l *zap.Logger) {
	db, err := database.NewSQLXOracleDB(cfg.TriviaDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if err := database.RunTriviaMigrations(ctx, db); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
	l.Info("Trivia migrations applied")
}

func migrateCoffee(cfg *config.Config, l *zap.Logger, down bool) {
	gdb, err := database.NewGormPostgresDB(cfg.CoffeeDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		l.Fatal("Failed to get database handle", zap.Error(err))
	}
	defer sqlDB.Close()

	m, err := database.NewCoffeeMigrator(sqlDB)
	if err != nil {
		l.Fatal("Failed to create migrator", zap.Error(err))
	}

	if down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		l.Fatal("Coffee migration failed", zap.Error(err))
	}
}
