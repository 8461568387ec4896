package health

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/transflower/firstwebapp/internal/observability"
)

type DBChecker struct {
	db *gorm.DB
}

// NewDBChecker returns nil when no database is configured so callers can
// skip the check entirely.
func NewDBChecker(db *gorm.DB) Checker {
	if db == nil {
		return nil
	}
	return &DBChecker{db: db}
}

func (c *DBChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	res := c.ping(ctx)
	observability.RecordHealthCheckDuration(ctx, res.Name, time.Since(start))
	outcome := "healthy"
	if !res.Healthy {
		outcome = "unhealthy"
	}
	observability.RecordHealthCheckResult(ctx, res.Name, outcome)
	return res
}

func (c *DBChecker) ping(ctx context.Context) CheckResult {
	res := CheckResult{Name: "db", Healthy: true}
	if c.db == nil {
		res.Healthy = false
		res.Error = "db not configured"
		return res
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		res.Healthy = false
		res.Error = err.Error()
		return res
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		res.Healthy = false
		res.Error = err.Error()
	}
	return res
}
