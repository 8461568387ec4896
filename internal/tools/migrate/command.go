package migrate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/transflower/firstwebapp/internal/config"
	"github.com/transflower/firstwebapp/internal/database"
	"github.com/transflower/firstwebapp/internal/observability"
	"github.com/transflower/firstwebapp/internal/tools/common"
	"github.com/transflower/firstwebapp/internal/tools/ui"
)

type options struct {
	envFile string
	timeout time.Duration
	ci      bool
}

type action func(ctx context.Context, cfg *config.Config, db *gorm.DB) ([]string, error)

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Product schema migration tooling",
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to env file")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")

	cmd.AddCommand(
		newSubcommand(opts, "up", "Apply schema migrations", up),
		newSubcommand(opts, "status", "Report schema state per table", status),
		newSubcommand(opts, "plan", "Show migration plan (dry-run)", plan),
	)
	return cmd
}

func newSubcommand(opts *options, name, short string, fn action) *cobra.Command {
	return &cobra.Command{
		Use:   name,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			title := "migrate " + name
			start := time.Now()
			details, err := run(opts, title, func(ctx context.Context) ([]string, error) {
				return withDB(ctx, opts.envFile, fn)
			})
			outcome := "success"
			if err != nil {
				outcome = "error"
			}
			observability.RecordToolCommandRun(cmd.Context(), "migrate", name, outcome)
			observability.RecordToolCommandDuration(cmd.Context(), "migrate", name, outcome, time.Since(start))
			if opts.ci {
				common.PrintCIResult(err == nil, title, details, err)
			}
			if err != nil {
				os.Exit(3)
			}
			return nil
		},
	}
}

func up(ctx context.Context, cfg *config.Config, db *gorm.DB) ([]string, error) {
	if err := database.Migrate(db.WithContext(ctx)); err != nil {
		return nil, err
	}
	return []string{
		"schema migration applied",
		"dialect: " + database.Dialect(cfg.DatabaseURL),
		"service: " + cfg.OTELServiceName,
	}, nil
}

func status(ctx context.Context, cfg *config.Config, db *gorm.DB) ([]string, error) {
	statuses, err := database.Status(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	details := []string{"dialect: " + database.Dialect(cfg.DatabaseURL)}
	details = append(details, describe(statuses)...)
	if database.Pending(statuses) {
		details = append(details, "migrations: pending")
	} else {
		details = append(details, "migrations: up to date")
	}
	return details, nil
}

func plan(ctx context.Context, _ *config.Config, db *gorm.DB) ([]string, error) {
	statuses, err := database.Status(db.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	if !database.Pending(statuses) {
		return []string{"nothing to apply", "no mutation executed in plan mode"}, nil
	}
	details := []string{"would apply AutoMigrate for:"}
	for _, st := range statuses {
		switch {
		case !st.Exists:
			details = append(details, "create table "+st.Table)
		case len(st.MissingColumns) > 0:
			details = append(details, fmt.Sprintf("alter table %s add %s", st.Table, strings.Join(st.MissingColumns, ", ")))
		}
	}
	return append(details, "no mutation executed in plan mode"), nil
}

func describe(statuses []database.TableStatus) []string {
	out := make([]string, 0, len(statuses))
	for _, st := range statuses {
		switch {
		case !st.Exists:
			out = append(out, st.Table+": missing")
		case len(st.MissingColumns) > 0:
			out = append(out, fmt.Sprintf("%s: missing columns %s", st.Table, strings.Join(st.MissingColumns, ", ")))
		default:
			out = append(out, st.Table+": ok")
		}
	}
	return out
}

func run(opts *options, title string, fn func(context.Context) ([]string, error)) ([]string, error) {
	if opts.ci {
		ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
		defer cancel()
		return fn(ctx)
	}
	return ui.Run(title, fn)
}

func withDB(ctx context.Context, envFile string, fn action) ([]string, error) {
	if err := common.LoadEnvFile(envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if !cfg.DatabaseEnabled() {
		return nil, errors.New("DATABASE_URL is required for migrate")
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	defer func() { _ = database.Close(db) }()
	return fn(ctx, cfg, db)
}
