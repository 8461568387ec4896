package database

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/transflower/firstwebapp/internal/domain"
	"github.com/transflower/firstwebapp/internal/observability"
)

// Models lists every persisted type, in migration order.
func Models() []any {
	return []any{&domain.Product{}}
}

func Migrate(db *gorm.DB) error {
	ctx := context.Background()
	start := time.Now()
	defer func() {
		observability.RecordDatabaseStartupDuration(ctx, "migrate", time.Since(start))
	}()
	if err := db.AutoMigrate(Models()...); err != nil {
		observability.RecordDatabaseStartupEvent(ctx, "migrate", "error")
		return fmt.Errorf("auto-migrate: %w", err)
	}
	observability.RecordDatabaseStartupEvent(ctx, "migrate", "success")
	return nil
}

// TableStatus reports whether a model's table exists and which of its
// columns are still missing.
type TableStatus struct {
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	MissingColumns []string `json:"missing_columns,omitempty"`
}

func Status(db *gorm.DB) ([]TableStatus, error) {
	migrator := db.Migrator()
	out := make([]TableStatus, 0, len(Models()))
	for _, model := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			return nil, fmt.Errorf("parse model schema: %w", err)
		}
		st := TableStatus{Table: stmt.Schema.Table, Exists: migrator.HasTable(model)}
		if st.Exists {
			for _, field := range stmt.Schema.Fields {
				if field.DBName == "" {
					continue
				}
				if !migrator.HasColumn(model, field.DBName) {
					st.MissingColumns = append(st.MissingColumns, field.DBName)
				}
			}
		}
		out = append(out, st)
	}
	return out, nil
}

// Pending reports whether Migrate would change the schema.
func Pending(statuses []TableStatus) bool {
	for _, st := range statuses {
		if !st.Exists || len(st.MissingColumns) > 0 {
			return true
		}
	}
	return false
}
