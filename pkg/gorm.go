package pkg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SAP-F-2025/adaptive-tutor-service/internal/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDatabase opens the postgres question database, applies the pool limits
// from cfg.Database and pings it before returning.
func InitDatabase(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	return openDatabase(ctx, postgres.Open(cfg.Database.URL), cfg, log)
}

func openDatabase(ctx context.Context, dialector gorm.Dialector, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(cfg, log),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	return db, nil
}

// newGormLogger routes gorm's output through slog. Production only reports
// errors and slow queries.
func newGormLogger(cfg *config.Config, log *slog.Logger) logger.Interface {
	level := logger.Info
	if cfg.IsProduction() {
		level = logger.Warn
	}
	return logger.New(
		slog.NewLogLogger(log.With("component", "gorm").Handler(), slog.LevelInfo),
		logger.Config{
			SlowThreshold:             cfg.Database.SlowQueryThreshold,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
