package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"maps"
	"net/http"
	"path"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/transflower/firstwebapp/internal/observability"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "layout.html"

var ErrTemplateNotFound = errors.New("template not found")

type TemplateRenderer struct {
	siteName string
	pages    map[string]*template.Template
	bufs     sync.Pool
	tracer   trace.Tracer
}

func NewTemplateRenderer(siteName string) (*TemplateRenderer, error) {
	sub, err := fs.Sub(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	return NewTemplateRendererFS(sub, siteName, Pages...)
}

// NewTemplateRendererFS parses layout.html together with each named page.
// Every page is parsed up front so a broken template fails at startup.
func NewTemplateRendererFS(fsys fs.FS, siteName string, pages ...string) (*TemplateRenderer, error) {
	r := &TemplateRenderer{
		siteName: siteName,
		pages:    make(map[string]*template.Template, len(pages)),
		bufs:     sync.Pool{New: func() any { return new(bytes.Buffer) }},
		tracer:   otel.Tracer("github.com/transflower/firstwebapp/internal/web"),
	}
	for _, page := range pages {
		tmpl, err := template.New(layoutFile).Funcs(funcs).ParseFS(fsys, layoutFile, page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

func (t *TemplateRenderer) Render(w http.ResponseWriter, r *http.Request, page string, data Context) error {
	ctx, span := t.tracer.Start(r.Context(), "web.render", trace.WithAttributes(attribute.String("page", page)))
	defer span.End()
	start := time.Now()

	tmpl, ok := t.pages[page]
	if !ok {
		observability.RecordPageRender(ctx, page, "not_found", time.Since(start), 0)
		span.SetStatus(codes.Error, "template not found")
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, page)
	}

	buf := t.bufs.Get().(*bytes.Buffer)
	buf.Reset()
	defer t.bufs.Put(buf)

	if err := tmpl.ExecuteTemplate(buf, "layout", t.view(page, data)); err != nil {
		observability.RecordPageRender(ctx, page, "error", time.Since(start), 0)
		span.RecordError(err)
		span.SetStatus(codes.Error, "execute template")
		return fmt.Errorf("render %s: %w", page, err)
	}

	size := buf.Len()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(size))
	w.WriteHeader(http.StatusOK)
	// The status line is already out, so a failed body write cannot become
	// an error response. It is only recorded.
	if _, err := buf.WriteTo(w); err != nil {
		observability.RecordPageRender(ctx, page, "write_error", time.Since(start), 0)
		span.RecordError(err)
		return nil
	}
	observability.RecordPageRender(ctx, page, "success", time.Since(start), size)
	return nil
}

func (t *TemplateRenderer) view(page string, data Context) map[string]any {
	v := map[string]any{
		"site": t.siteName,
		"page": path.Base(page),
	}
	maps.Copy(v, data)
	return v
}

var funcs = template.FuncMap{
	"money": money,
}

func money(v any) string {
	switch p := v.(type) {
	case decimal.Decimal:
		return p.StringFixed(2)
	case float64:
		return strconv.FormatFloat(p, 'f', 2, 64)
	case int:
		return strconv.Itoa(p) + ".00"
	default:
		return fmt.Sprint(v)
	}
}
