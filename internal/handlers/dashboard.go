package handlers

import (
	"html/template"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/onehealth/portal/internal/metrics"
	"github.com/onehealth/portal/internal/models"
	"github.com/onehealth/portal/internal/portfolio"
	svc "github.com/onehealth/portal/internal/services"
)

type entryRow struct {
	models.GoldEntry
	Invested decimal.Decimal
}

func entryRows(entries []models.GoldEntry) []entryRow {
	rows := make([]entryRow, len(entries))
	for i, e := range entries {
		rows[i] = entryRow{GoldEntry: e, Invested: portfolio.Invested(e)}
	}
	return rows
}

func renderDashboard(w http.ResponseWriter, r *http.Request, view *template.Template, status int,
	form map[string]string, errs portfolio.Errors, errStr string) {

	entries, err := svc.ListEntries(r.Context(), SessionID(r))
	if err != nil {
		serverError(w, r, "list entries failed", err)
		return
	}
	if form == nil {
		form = map[string]string{}
	}
	render(w, view, "dashboard.tmpl", status, map[string]any{
		"Title":   "Dashboard",
		"Flash":   MakeFlash(r, errStr, ""),
		"Summary": portfolio.Summarize(entries),
		"Chart":   portfolio.BuildChart(entries),
		"Rows":    entryRows(entries),
		"Form":    form,
		"Errors":  errs,
	})
}

// ------------------- GET /dashboard -------------------
func Dashboard(t *template.Template) http.HandlerFunc {
	view := page(t, "dashboard.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		renderDashboard(w, r, view, http.StatusOK, nil, nil, "")
	}
}

// ------------------- POST /dashboard/entries -------------------
func AddEntry(t *template.Template) http.HandlerFunc {
	view := page(t, "dashboard.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}

		e, errs := portfolio.ParseEntry(r.PostForm)
		if len(errs) > 0 {
			metrics.Default.IncValidationFailure("entry")
			form := make(map[string]string, len(portfolio.EntryFormFields))
			for _, name := range portfolio.EntryFormFields {
				form[name] = r.PostFormValue(name)
			}
			renderDashboard(w, r, view, http.StatusUnprocessableEntity, form, errs,
				"Please fix the highlighted fields.")
			return
		}

		e.SessionID = SessionID(r)
		if err := svc.AddEntry(r.Context(), &e); err != nil {
			serverError(w, r, "add entry failed", err)
			return
		}
		metrics.Default.IncEntriesAdded()
		http.Redirect(w, r, "/dashboard?ok=entry_added", http.StatusSeeOther)
	}
}
