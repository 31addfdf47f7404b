package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/config"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/repositories"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/repositories/postgres"
	"github.com/SAP-F-2025/adaptive-tutor-service/internal/services"
	"github.com/SAP-F-2025/adaptive-tutor-service/pkg"
)

// loadQuestions builds the immutable question repository from the
// configured source.
func loadQuestions(ctx context.Context, cfg *config.Config, importer services.ImportExportService, logger *slog.Logger) (repositories.QuestionRepository, error) {
	switch cfg.QuestionSource {
	case config.SourceFile:
		return loadFromFile(ctx, cfg.QuestionBankPath, importer, logger)
	case config.SourcePostgres:
		return loadFromDatabase(ctx, cfg, logger)
	default:
		logger.Info("Using built-in question bank")
		return repositories.NewMemoryQuestionRepository(repositories.SeedQuestions()), nil
	}
}

func loadFromFile(ctx context.Context, path string, importer services.ImportExportService, logger *slog.Logger) (repositories.QuestionRepository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open question bank: %w", err)
	}
	defer f.Close()

	result, err := importer.ImportQuestionsFromFile(ctx, f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to import question bank %s: %w", path, err)
	}
	for _, e := range result.Errors {
		logger.Warn("Skipped question bank entry",
			"row", e.Row,
			"column", e.Column,
			"message", e.Message,
			"value", e.Value)
	}
	if result.SuccessCount == 0 {
		return nil, fmt.Errorf("question bank %s has no valid questions", path)
	}

	return repositories.NewMemoryQuestionRepository(result.Questions), nil
}

func loadFromDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.QuestionRepository, error) {
	db, err := pkg.InitDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// Questions are read once; the connection is not needed afterwards.
	defer sqlDB.Close()

	store := postgres.NewQuestionStore(db)
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to migrate questions table: %w", err)
	}

	repo, err := store.LoadRepository(ctx)
	if err != nil {
		return nil, err
	}

	n, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		logger.Info("Questions table is empty, seeding built-in bank")
		if err := store.Save(ctx, repositories.SeedQuestions()); err != nil {
			return nil, fmt.Errorf("failed to seed questions: %w", err)
		}
		if repo, err = store.LoadRepository(ctx); err != nil {
			return nil, err
		}
	}

	logger.Info("Loaded question bank from database")
	return repo, nil
}
