package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/transflower/firstwebapp/internal/config"
	"github.com/transflower/firstwebapp/internal/observability"
)

const sqlitePrefix = "sqlite:"

// Dialect names the gorm driver a DATABASE_URL selects.
func Dialect(databaseURL string) string {
	if strings.HasPrefix(databaseURL, sqlitePrefix) {
		return "sqlite"
	}
	return "postgres"
}

func dialector(databaseURL string) gorm.Dialector {
	if Dialect(databaseURL) == "sqlite" {
		return sqlite.Open(strings.TrimPrefix(databaseURL, sqlitePrefix))
	}
	return postgres.Open(databaseURL)
}

func Open(cfg *config.Config) (*gorm.DB, error) {
	ctx := context.Background()
	start := time.Now()
	db, err := gorm.Open(dialector(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	observability.RecordDatabaseStartupDuration(ctx, "open", time.Since(start))
	if err != nil {
		observability.RecordDatabaseStartupEvent(ctx, "open", "error")
		return nil, fmt.Errorf("open %s database: %w", Dialect(cfg.DatabaseURL), err)
	}
	observability.RecordDatabaseStartupEvent(ctx, "open", "success")
	return db, nil
}

// Close releases the pool behind db. A nil db is a no-op.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
