package health

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	return db
}

func TestDBCheckerHealthy(t *testing.T) {
	checker := NewDBChecker(openTestDB(t))
	res := checker.Check(context.Background())
	if !res.Healthy || res.Name != "db" {
		t.Fatalf("expected healthy db check, got %+v", res)
	}
}

func TestDBCheckerReportsClosedConnection(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	if err := sqlDB.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	res := NewDBChecker(db).Check(context.Background())
	if res.Healthy || res.Error == "" {
		t.Fatalf("expected unhealthy result with error, got %+v", res)
	}
}

func TestNewDBCheckerNilDB(t *testing.T) {
	if NewDBChecker(nil) != nil {
		t.Fatal("expected nil checker for nil db")
	}
}
