package loadgen

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/transflower/firstwebapp/internal/observability"
	"github.com/transflower/firstwebapp/internal/tools/common"
	"github.com/transflower/firstwebapp/internal/tools/ui"
)

type options struct {
	baseURL     string
	profile     string
	duration    time.Duration
	rps         int
	concurrency int
	requests    int
	ci          bool
}

func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{Use: "loadgen", Short: "Drive traffic against the page routes"}
	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", "http://localhost:8080", "site base URL")
	cmd.PersistentFlags().StringVar(&opts.profile, "profile", "mixed", "traffic profile: "+strings.Join(Profiles(), "|"))
	cmd.PersistentFlags().DurationVar(&opts.duration, "duration", 15*time.Second, "traffic duration")
	cmd.PersistentFlags().IntVar(&opts.rps, "rps", 20, "requests per second")
	cmd.PersistentFlags().IntVar(&opts.concurrency, "concurrency", 6, "concurrent workers")
	cmd.PersistentFlags().IntVar(&opts.requests, "requests", 0, "stop after N requests (0 = run for --duration)")
	cmd.PersistentFlags().BoolVar(&opts.ci, "ci", false, "non-interactive machine-readable output")
	cmd.AddCommand(newRunCommand(opts))
	return cmd
}

func newRunCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run load generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now()
			details, err := run(opts, "loadgen run", func(ctx context.Context) ([]string, error) {
				res, err := Run(ctx, Config{
					BaseURL:     opts.baseURL,
					Profile:     opts.profile,
					Duration:    opts.duration,
					RPS:         opts.rps,
					Concurrency: opts.concurrency,
					Requests:    opts.requests,
				})
				if err != nil {
					return nil, err
				}
				return summarize(res), nil
			})
			outcome := "success"
			if err != nil {
				outcome = "error"
			}
			observability.RecordToolCommandRun(cmd.Context(), "loadgen", "run", outcome)
			observability.RecordToolCommandDuration(cmd.Context(), "loadgen", "run", outcome, time.Since(start))
			if opts.ci {
				common.PrintCIResult(err == nil, "loadgen run", details, err)
			}
			if err != nil {
				os.Exit(4)
			}
			return nil
		},
	}
}

func summarize(res Result) []string {
	out := []string{
		fmt.Sprintf("total_requests=%d", res.TotalRequests),
		fmt.Sprintf("failures=%d", res.Failures),
		fmt.Sprintf("status_2xx=%d", res.Status2xx),
		fmt.Sprintf("status_4xx=%d", res.Status4xx),
		fmt.Sprintf("status_5xx=%d", res.Status5xx),
	}
	paths := make([]string, 0, len(res.ByPath))
	for p := range res.ByPath {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		out = append(out, fmt.Sprintf("path %s=%d", p, res.ByPath[p]))
	}
	return out
}

func run(opts *options, title string, fn func(context.Context) ([]string, error)) ([]string, error) {
	if opts.ci {
		ctx, cancel := context.WithTimeout(context.Background(), opts.duration+15*time.Second)
		defer cancel()
		return fn(ctx)
	}
	return ui.Run(title, fn)
}
