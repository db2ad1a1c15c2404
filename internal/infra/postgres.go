package infra

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"tripplanner/internal/config"
	"tripplanner/internal/models/db_models"
)

type dialFunc func() (*gorm.DB, error)

// InitPostgresql keeps trying to connect every RetryInterval until it
// succeeds or ctx is done.
func InitPostgresql(ctx context.Context, cfg config.DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	dial := func() (*gorm.DB, error) {
		db, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
			TranslateError: true,
			Logger:         logger.Default.LogMode(logger.Warn),
		})
		if err != nil {
			return nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(time.Hour)
		return db, nil
	}

	return connectWithRetry(ctx, dial, cfg.RetryInterval, log)
}

func connectWithRetry(ctx context.Context, dial dialFunc, interval time.Duration, log *zap.Logger) (*gorm.DB, error) {
	for attempt := 1; ; attempt++ {
		db, err := dial()
		if err == nil {
			log.Info("connected to postgres", zap.Int("attempt", attempt))
			return db, nil
		}

		log.Warn("postgres connection failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", interval),
			zap.Error(err))

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("connect postgres: %w", errors.Join(ctx.Err(), err))
		case <-time.After(interval):
		}
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Account{},
		&db_models.Itinerary{},
		&db_models.ItineraryWeather{},
	)
}

func PingPostgresql(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("error closing database connection", zap.Error(err))
	} else {
		log.Info("postgres connection closed")
	}
}
