package db

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	connectAttempts = 5
	connectDelay    = 5 * time.Second
)

// Open connects to the database and brings the schema up to date. Connection
// attempts retry with a constant delay so the service survives the database
// coming up after it.
func Open(ctx context.Context, dsn string, logger *zap.Logger) (*gorm.DB, error) {
	gdb, err := connect(ctx, dsn, logger, connectAttempts, connectDelay)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(sqlDB); err != nil {
		return nil, err
	}
	return gdb, nil
}

func connect(ctx context.Context, dsn string, logger *zap.Logger, attempts int, delay time.Duration) (*gorm.DB, error) {
	var gdb *gorm.DB
	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(delay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		gdb, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			logger.Error("database connection failed", zap.Error(err))
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}
