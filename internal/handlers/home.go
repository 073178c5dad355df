package handlers

import (
	"html/template"
	"net/http"
)

func Home(t *template.Template) http.HandlerFunc {
	view := page(t, "home.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, view, "home.tmpl", http.StatusOK, map[string]any{
			"Title": "",
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

// Login is where a finished registration lands. Signing in is not offered yet.
func Login(t *template.Template) http.HandlerFunc {
	view := page(t, "login.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, view, "login.tmpl", http.StatusOK, map[string]any{
			"Title": "Sign in",
			"Flash": MakeFlash(r, "", ""),
		})
	}
}

func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
