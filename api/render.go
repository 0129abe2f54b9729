package api

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"log/slog"
)

//go:embed templates/*.html
var templateFS embed.FS

// pages that render inside the shared layout
var pageNames = []string{
	"index.html",
	"goal.html",
	"profile.html",
	"request.html",
	"request_done.html",
	"booking.html",
	"booking_done.html",
	"not_found.html",
}

// Renderer holds the parsed template set, one entry per page, each page
// combined with the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("layout.html").ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Renderer{templates: templates}, nil
}

// Render writes the named page with the given status code. A missing or
// broken template is a programming error and surfaces as a 500.
func (re *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := re.templates[name]
	if !ok {
		logger.Error("unknown template", slog.String("name", name))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := t.ExecuteTemplate(w, "layout.html", data); err != nil {
		logger.Error("render template", slog.String("name", name), slog.Any("err", err))
	}
}

// NotFound renders the 404 page.
func (re *Renderer) NotFound(w http.ResponseWriter) {
	re.Render(w, http.StatusNotFound, "not_found.html", map[string]any{"Title": "Page not found"})
}

// ServerError logs the failure and answers with a plain 500.
func (re *Renderer) ServerError(w http.ResponseWriter, msg string, err error) {
	logger.Error(msg, slog.Any("err", err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
