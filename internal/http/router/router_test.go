package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/transflower/firstwebapp/internal/fixtures"
	"github.com/transflower/firstwebapp/internal/health"
	"github.com/transflower/firstwebapp/internal/http/handler"
	"github.com/transflower/firstwebapp/internal/web"
)

type fixedChecker struct{ healthy bool }

func (c fixedChecker) Check(context.Context) health.CheckResult {
	res := health.CheckResult{Name: "db", Healthy: c.healthy}
	if !c.healthy {
		res.Error = "connection refused"
	}
	return res
}

type brokenRenderer struct{}

func (brokenRenderer) Render(http.ResponseWriter, *http.Request, string, web.Context) error {
	return errors.New("execute template: boom")
}

func newTestRouter(t *testing.T, readiness *health.ProbeRunner) http.Handler {
	t.Helper()
	renderer, err := web.NewTemplateRenderer("Transflower")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	return NewRouter(Dependencies{
		PageHandler: handler.NewPageHandler(renderer, fixtures.MustLoad()),
		Readiness:   readiness,
	})
}

func get(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestPageRoutesRenderHTML(t *testing.T) {
	h := newTestRouter(t, nil)

	cases := []struct {
		path     string
		contains []string
	}{
		{"/", []string{"Transflower"}},
		{"/about", []string{"Transflower"}},
		{"/contact", []string{"Transflower"}},
		{"/catalog", []string{"Laptop", "A high-performance laptop", "999.99", "Mouse"}},
		{"/flowers", []string{"Rose", "Valentine Flower", "65.00", "Lotus", "worship"}},
		{"/customers", []string{"Sarang", "sachin.t@gmail.com", "988767654", "Seema"}},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			rr := get(h, http.MethodGet, tc.path)
			if rr.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
			}
			if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Fatalf("expected html content type, got %q", ct)
			}
			body := rr.Body.String()
			for _, want := range tc.contains {
				if !strings.Contains(body, want) {
					t.Fatalf("expected body to contain %q", want)
				}
			}
			if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
				t.Fatal("expected security headers on page responses")
			}
		})
	}
}

func TestPageRoutesAreGETOnly(t *testing.T) {
	h := newTestRouter(t, nil)
	if rr := get(h, http.MethodPost, "/catalog"); rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}

func TestUnknownRouteIs404(t *testing.T) {
	h := newTestRouter(t, nil)
	if rr := get(h, http.MethodGet, "/products"); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestHealthLive(t *testing.T) {
	h := newTestRouter(t, nil)
	rr := get(h, http.MethodGet, "/health/live")
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var env struct {
		Success bool              `json:"success"`
		Data    map[string]string `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !env.Success || env.Data["status"] != "ok" {
		t.Fatalf("unexpected live body: %s", rr.Body.String())
	}
}

func TestHealthReady(t *testing.T) {
	cases := []struct {
		name   string
		runner *health.ProbeRunner
		want   int
	}{
		{"no dependencies", nil, http.StatusOK},
		{"healthy db", health.NewProbeRunner(time.Second, 0, fixedChecker{healthy: true}), http.StatusOK},
		{"unhealthy db", health.NewProbeRunner(time.Second, 0, fixedChecker{healthy: false}), http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := get(newTestRouter(t, tc.runner), http.MethodGet, "/health/ready")
			if rr.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rr.Code, rr.Body.String())
			}
			if tc.want == http.StatusServiceUnavailable && !strings.Contains(rr.Body.String(), "DEPENDENCY_UNREADY") {
				t.Fatalf("expected DEPENDENCY_UNREADY code, got %s", rr.Body.String())
			}
		})
	}
}

func TestOTelWrappedRouterStillServesPages(t *testing.T) {
	renderer, err := web.NewTemplateRenderer("Transflower")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	h := NewRouter(Dependencies{
		PageHandler:    handler.NewPageHandler(renderer, fixtures.MustLoad()),
		EnableOTelHTTP: true,
	})
	if rr := get(h, http.MethodGet, "/flowers"); rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRenderFailureReachesClientAsPlain500(t *testing.T) {
	h := NewRouter(Dependencies{PageHandler: handler.NewPageHandler(brokenRenderer{}, fixtures.MustLoad())})

	rr := get(h, http.MethodGet, "/catalog")
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected plain text 500, got content type %q", ct)
	}
	if strings.Contains(rr.Body.String(), "success") || strings.Contains(rr.Body.String(), "INTERNAL") {
		t.Fatalf("page routes must not answer with the JSON envelope: %s", rr.Body.String())
	}
}
