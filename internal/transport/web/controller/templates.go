package controller

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/jbeshir/content-ratings/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = map[string]*template.Template{
	"content":       parsePage("content.html"),
	"settings":      parsePage("settings.html"),
	"overview":      parsePage("overview.html"),
	"rating_editor": parsePage("rating_editor.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

// writePage renders a page with the given status. Nothing is written until
// the template has executed.
func writePage(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.ErrorContext(ctx, "unable to render page", "page", page, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.ErrorContext(ctx, "unable to write page to response", "page", page, "error", err)
	}
}
