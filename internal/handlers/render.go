package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/onehealth/portal/internal/logger"
	"github.com/onehealth/portal/templates"
)

// page clones the shared layouts and adds one page template on top.
func page(t *template.Template, name string) *template.Template {
	view := template.Must(t.Clone())
	return template.Must(view.ParseFS(templates.FS, "pages/"+name))
}

// render executes into a buffer first so a template error never leaves a
// half-written page behind.
func render(w http.ResponseWriter, view *template.Template, name string, status int, data map[string]any) {
	var buf bytes.Buffer
	if err := view.ExecuteTemplate(&buf, name, data); err != nil {
		logger.L().Error("render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func serverError(w http.ResponseWriter, r *http.Request, what string, err error) {
	logger.WithSession(SessionID(r)).Error(what, zap.Error(err))
	http.Error(w, what, http.StatusInternalServerError)
}
