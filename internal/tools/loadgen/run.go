package loadgen

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/transflower/firstwebapp/internal/observability"
)

type Config struct {
	BaseURL     string
	Profile     string
	Duration    time.Duration
	RPS         int
	Concurrency int
	// Requests stops the run after this many dispatched requests. Zero means
	// run for the full Duration.
	Requests int
	Client   *http.Client
}

type Result struct {
	TotalRequests int64
	Failures      int64
	Status2xx     int64
	Status4xx     int64
	Status5xx     int64
	ByPath        map[string]int64
}

var profiles = map[string][]string{
	"pages": {"/", "/about", "/contact"},
	"lists": {"/catalog", "/flowers", "/customers"},
	"mixed": {"/", "/catalog", "/about", "/flowers", "/contact", "/customers"},
}

// Profiles returns the known profile names.
func Profiles() []string { return []string{"pages", "lists", "mixed"} }

func endpointsForProfile(profile string) []string {
	if profile == "" {
		profile = "mixed"
	}
	return profiles[strings.ToLower(profile)]
}

func Run(ctx context.Context, cfg Config) (Result, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Duration <= 0 {
		cfg.Duration = 10 * time.Second
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 15
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 5
	}
	if cfg.Client == nil {
		cfg.Client = &http.Client{Timeout: 5 * time.Second}
	}
	profile := strings.ToLower(cfg.Profile)
	if profile == "" {
		profile = "mixed"
	}
	endpoints := endpointsForProfile(profile)
	if len(endpoints) == 0 {
		return Result{}, fmt.Errorf("unknown profile: %s", cfg.Profile)
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")

	ctx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	var c counters
	c.byPath = make(map[string]int64, len(endpoints))
	jobs := make(chan string, cfg.Concurrency*2)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		ticker := time.NewTicker(time.Second / time.Duration(cfg.RPS))
		defer ticker.Stop()
		for i := 0; cfg.Requests <= 0 || i < cfg.Requests; i++ {
			select {
			case <-gctx.Done():
				return nil
			case <-ticker.C:
			}
			select {
			case <-gctx.Done():
				return nil
			case jobs <- endpoints[i%len(endpoints)]:
			}
		}
		return nil
	})

	for w := 0; w < cfg.Concurrency; w++ {
		g.Go(func() error {
			for path := range jobs {
				c.record(gctx, profile, path, hit(gctx, cfg.Client, baseURL+path))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return c.result(), nil
}

// hit returns the response status, or 0 when the request never completed.
func hit(ctx context.Context, client *http.Client, url string) int {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0
	}
	_ = resp.Body.Close()
	return resp.StatusCode
}

type counters struct {
	total, failures, s2xx, s4xx, s5xx atomic.Int64

	mu     sync.Mutex
	byPath map[string]int64
}

func (c *counters) record(ctx context.Context, profile, path string, status int) {
	class := statusClass(status)
	observability.RecordLoadgenRequest(ctx, class, profile)
	if status == 0 {
		c.failures.Add(1)
		return
	}
	c.total.Add(1)
	switch class {
	case "2xx":
		c.s2xx.Add(1)
	case "4xx":
		c.s4xx.Add(1)
	case "5xx":
		c.s5xx.Add(1)
	}
	c.mu.Lock()
	c.byPath[path]++
	c.mu.Unlock()
}

func (c *counters) result() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	byPath := make(map[string]int64, len(c.byPath))
	for k, v := range c.byPath {
		byPath[k] = v
	}
	return Result{
		TotalRequests: c.total.Load(),
		Failures:      c.failures.Load(),
		Status2xx:     c.s2xx.Load(),
		Status4xx:     c.s4xx.Load(),
		Status5xx:     c.s5xx.Load(),
		ByPath:        byPath,
	}
}

func statusClass(status int) string {
	switch {
	case status == 0:
		return "error"
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return "other"
	}
}
