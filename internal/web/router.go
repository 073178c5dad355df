package web

import (
	"html/template"
	"io/fs"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/onehealth/portal/internal/config"
	"github.com/onehealth/portal/internal/handlers"
	"github.com/onehealth/portal/internal/logger"
	"github.com/onehealth/portal/internal/portfolio"
	"github.com/onehealth/portal/internal/registration"
	"github.com/onehealth/portal/templates"
)

const (
	SiteTitle       = "One Health Portal"
	SiteDescription = "One Health Portal are all in one service"
)

func Router(cfg config.Config, sub registration.Submitter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	tmpl := mustParseTemplates(templates.FS)

	// Stateless endpoints
	r.Get("/healthz", handlers.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/qr/dashboard.png", handlers.DashboardQR)

	r.Group(func(s chi.Router) {
		s.Use(handlers.WithSession(cfg.SeedDemoEntries))

		// Leaving the wizard abandons the draft
		s.Group(func(p chi.Router) {
			p.Use(handlers.ForgetDraft)
			p.Get("/", handlers.Home(tmpl))
			p.Get("/login", handlers.Login(tmpl))
			p.Get("/dashboard", handlers.Dashboard(tmpl))
			p.Post("/dashboard/entries", handlers.AddEntry(tmpl))
		})

		// --- Registration wizard ---
		s.Get("/register", handlers.RegisterForm(tmpl))
		s.Post("/register/next", handlers.RegisterNext(tmpl))
		s.Post("/register/back", handlers.RegisterBack)
		s.Post("/register/submit", handlers.RegisterSubmit(tmpl, sub, cfg.BcryptCost))
	})

	return r
}

// requestLogger replaces middleware.Logger so access lines go through zap.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			logger.L().Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("took", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func mustParseTemplates(files fs.FS) *template.Template {
	funcs := template.FuncMap{
		"year":            func() string { return time.Now().Format("2006") },
		"siteTitle":       func() string { return SiteTitle },
		"siteDescription": func() string { return SiteDescription },
		"money":           portfolio.FormatMoney,
		"grams":           portfolio.FormatGrams,
		"num":             portfolio.Num,
	}

	p := template.New("").Funcs(funcs)
	p = template.Must(p.ParseFS(files, "layouts/*.tmpl"))
	p = template.Must(p.ParseFS(files, "partials/*.tmpl"))
	return p
}
