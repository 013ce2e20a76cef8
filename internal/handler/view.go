package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"time"

	"github.com/dukerupert/choretracker/internal/chore"
	"github.com/dukerupert/choretracker/internal/model"
)

const (
	layoutTemplate = "templates/layout.html"
	errorsTemplate = "templates/errors.html"
)

// Views holds one template set per page. Each set is the layout, the shared
// partials and a single page, so pages can all define "content" without
// colliding.
type Views struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

var funcs = template.FuncMap{
	"date":     formatDate,
	"status":   func(a model.Assignment) string { return string(chore.StatusOf(a)) },
	"monthNum": func(t time.Time) int { return int(t.Month()) },
}

func LoadViews(fsys fs.FS, logger *slog.Logger) (*Views, error) {
	files, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob templates: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, file := range files {
		if file == layoutTemplate || file == errorsTemplate {
			continue
		}
		name := path.Base(file)
		t, err := template.New(name).Funcs(funcs).ParseFS(fsys, layoutTemplate, errorsTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return &Views{pages: pages, logger: logger}, nil
}

// Render executes the page into a buffer first so a template error still
// yields a clean 500.
func (v *Views) Render(w http.ResponseWriter, status int, name string, data any) {
	tmpl, ok := v.pages[name]
	if !ok {
		v.logger.Error("template not found", "name", name)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		v.logger.Error("template render", "name", name, "error", err)
		http.Error(w, "template error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func formatDate(v any) string {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return chore.FormatDate(t)
	case *time.Time:
		if t == nil {
			return ""
		}
		return chore.FormatDate(*t)
	default:
		return ""
	}
}
