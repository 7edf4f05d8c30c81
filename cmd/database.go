package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/glebarez/sqlite"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	connectAttempts = 10
	connectDelay    = 2 * time.Second
	pingTimeout     = 5 * time.Second
)

// OpenDatabase connects to the configured store, retrying until the database
// answers a ping, ctx is done or the attempts run out.
func OpenDatabase(ctx context.Context, cfg Config, log *slog.Logger) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.New(
			slog.NewLogLogger(log.With("component", "gorm").Handler(), slog.LevelWarn),
			logger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  logger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
	}

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	default:
		dialector = gormpostgres.Open(cfg.PostgresDSN())
	}

	var lastErr error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		db, err := open(ctx, dialector, gormConfig, cfg.DBDriver)
		if err == nil {
			return db, nil
		}
		lastErr = err
		log.WarnContext(ctx, "Database not ready", "attempt", attempt, "error", err)

		select {
		case <-time.After(connectDelay):
		case <-ctx.Done():
			return nil, fmt.Errorf("connect to database canceled: %w", ctx.Err())
		}
	}
	return nil, fmt.Errorf("connect to database after %d attempts: %w", connectAttempts, lastErr)
}

func open(ctx context.Context, dialector gorm.Dialector, gormConfig *gorm.Config, driver string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}
