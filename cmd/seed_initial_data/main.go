package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"quizcafe/cmd/seed_initial_data/internal/seedmodels"
	"quizcafe/internal/config"
	"quizcafe/internal/database"
	"quizcafe/internal/domain"
	"quizcafe/internal/logger"
	"quizcafe/internal/repository"

	"go.uber.org/zap"
)

//go:embed seed_data.json
var seedData []byte

func firstN(s string, n int) string {
	if len(s) < n {
		return s
	}
	return s[:n]
}

func main() {
	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXOracleDB(cfg.TriviaDSN())
	if err != nil {
		log.Fatal("Failed to connect to Oracle database", zap.Error(err))
	}
	defer db.Close()

	var seedCategories []seedmodels.SeedCategory
	if err := json.Unmarshal(seedData, &seedCategories); err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Loaded seed data", zap.Int("categories_loaded", len(seedCategories)))

	s := &seeder{
		tm:         repository.NewTransactionManagerAdapter(db),
		categories: repository.NewCategoryDatabaseAdapter(db),
		questions:  repository.NewQuestionDatabaseAdapter(db),
		log:        log,
	}
	failed := 0
	for _, sc := range seedCategories {
		if err := s.seedCategory(ctx, sc); err != nil {
			failed++
			log.Error("Error seeding category, transaction rolled back", zap.String("category", sc.Type), zap.Error(err))
		}
	}
	if failed > 0 {
		log.Fatal("Seeding finished with errors", zap.Int("failed_categories", failed))
	}
	log.Info("Initial data seeding process completed.")
}

type seeder struct {
	tm         domain.TransactionManager
	categories domain.CategoryRepository
	questions  domain.QuestionRepository
	log        *zap.Logger
}

// seedCategory creates a category and its questions in one transaction.
// A category that already exists is left untouched.
func (s *seeder) seedCategory(ctx context.Context, seedCat seedmodels.SeedCategory) error {
	return s.tm.WithTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.categories.GetCategoryByType(ctx, seedCat.Type)
		if err != nil {
			return fmt.Errorf("error checking category %s: %w", seedCat.Type, err)
		}
		if existing != nil {
			s.log.Info("Category exists, skipping.", zap.Int64("id", existing.ID), zap.String("type", existing.Type))
			return nil
		}

		category := domain.NewCategory(seedCat.Type)
		if err := s.categories.CreateCategory(ctx, category); err != nil {
			return fmt.Errorf("failed to save category %s: %w", seedCat.Type, err)
		}
		s.log.Info("Created category.", zap.Int64("id", category.ID), zap.String("type", category.Type))

		for _, sq := range seedCat.Questions {
			q := domain.NewQuestion(sq.Question, sq.Answer, sq.Difficulty, category.ID)
			if err := s.questions.CreateQuestion(ctx, q); err != nil {
				return fmt.Errorf("failed to save question '%s': %w", firstN(sq.Question, 50), err)
			}
			s.log.Info("Created question.", zap.Int64("id", q.ID), zap.String("question_preview", firstN(sq.Question, 20)))
		}
		return nil
	})
}
