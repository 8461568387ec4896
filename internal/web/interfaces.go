package web

import "net/http"

//go:generate mockgen -destination=gomock/mock_renderer.go -package=gomock . Renderer

// Context is the set of named values a page template can reference.
type Context map[string]any

// Renderer turns a page template plus a context into an HTML response.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, data Context) error
}

const (
	PageHome      = "home.html"
	PageAbout     = "about.html"
	PageContact   = "contact.html"
	PageList      = "list.html"
	PageCustomers = "customers.html"
)

var Pages = []string{PageHome, PageAbout, PageContact, PageList, PageCustomers}
