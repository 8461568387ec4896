package handler

import (
	"log/slog"
	"net/http"

	"github.com/transflower/firstwebapp/internal/domain"
	"github.com/transflower/firstwebapp/internal/web"
)

// DemoData supplies the hardcoded listing records.
type DemoData interface {
	Catalog() []domain.CatalogItem
	Flowers() []domain.Product
	Customers() []domain.Customer
}

type PageHandler struct {
	renderer web.Renderer
	demo     DemoData
}

func NewPageHandler(renderer web.Renderer, demo DemoData) *PageHandler {
	return &PageHandler{renderer: renderer, demo: demo}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageHome, nil)
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageAbout, nil)
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageContact, nil)
}

func (h *PageHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageList, web.Context{"products": h.demo.Catalog()})
}

func (h *PageHandler) Flowers(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageList, web.Context{"products": h.demo.Flowers()})
}

func (h *PageHandler) Customers(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, web.PageCustomers, web.Context{"customers": h.demo.Customers()})
}

// render hands off to the renderer. A failure is not turned into a page of
// its own: the request ends with net/http's plain-text 500.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, page string, data web.Context) {
	if err := h.renderer.Render(w, r, page, data); err != nil {
		slog.ErrorContext(r.Context(), "page render failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
