package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/onehealth/portal/internal/logger"
	"github.com/onehealth/portal/internal/metrics"
	reg "github.com/onehealth/portal/internal/registration"
	svc "github.com/onehealth/portal/internal/services"
)

type fieldView struct {
	reg.Field
	Value   string
	Error   string
	Enforce bool // emit the HTML required attribute
}

type roleOption struct {
	Value    string
	Label    string
	Selected bool
}

type stepDot struct {
	N       int
	Reached bool // current or earlier step
	Passed  bool // strictly earlier step; colours the bar after it
	Last    bool
}

func stepDots(current reg.Step) []stepDot {
	dots := make([]stepDot, len(reg.Steps))
	for i, s := range reg.Steps {
		dots[i] = stepDot{
			N:       int(s),
			Reached: current >= s,
			Passed:  current > s,
			Last:    i == len(reg.Steps)-1,
		}
	}
	return dots
}

func fieldViews(wiz *reg.Wizard, fields []reg.Field, enforce bool) []fieldView {
	out := make([]fieldView, len(fields))
	for i, f := range fields {
		out[i] = fieldView{
			Field:   f,
			Value:   wiz.Value(f.Name),
			Error:   wiz.Errors[f.Name],
			Enforce: enforce && f.Required,
		}
	}
	return out
}

func roleOptions(selected reg.Role) []roleOption {
	return []roleOption{
		{Value: string(reg.Patient), Label: "Patient", Selected: selected == reg.Patient},
		{Value: string(reg.Hospital), Label: "Hospital", Selected: selected == reg.Hospital},
	}
}

func renderWizard(w http.ResponseWriter, r *http.Request, view *template.Template, status int, wiz *reg.Wizard) {
	data := map[string]any{
		"Title":  "Register",
		"Step":   wiz.StepNumber(),
		"Steps":  stepDots(wiz.Step),
		"Errors": wiz.Errors,
		"Flash":  MakeFlash(r, "", ""),
	}
	switch wiz.Step {
	case reg.AccountInfo:
		// Account inputs are checked server-side so every message shows at once.
		data["Fields"] = fieldViews(wiz, reg.AccountFields, false)
		data["Roles"] = roleOptions(wiz.Role)
	case reg.RoleDetails:
		data["Fields"] = fieldViews(wiz, reg.DetailFields(wiz.Role), true)
		data["DetailsTitle"] = reg.DetailsTitle(wiz.Role)
	}
	render(w, view, "register.tmpl", status, data)
}

// bind copies the posted values of fields into the draft. Secrets are kept
// verbatim; everything else is trimmed.
func bind(wiz *reg.Wizard, r *http.Request, fields []reg.Field) {
	for _, f := range fields {
		v := r.PostFormValue(f.Name)
		if !f.Secret() {
			v = strings.TrimSpace(v)
		}
		wiz.Set(f.Name, v)
	}
}

// ------------------- GET /register -------------------
func RegisterForm(t *template.Template) http.HandlerFunc {
	view := page(t, "register.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		sid := SessionID(r)

		// /register?restart=1 starts over
		if r.URL.Query().Get("restart") == "1" {
			if err := svc.DiscardDraft(r.Context(), sid); err != nil {
				serverError(w, r, "discard draft failed", err)
				return
			}
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}

		wiz, err := svc.LoadWizard(r.Context(), sid)
		if err != nil {
			serverError(w, r, "load draft failed", err)
			return
		}
		renderWizard(w, r, view, http.StatusOK, wiz)
	}
}

// ------------------- POST /register/next -------------------
func RegisterNext(t *template.Template) http.HandlerFunc {
	view := page(t, "register.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		sid := SessionID(r)
		wiz, err := svc.LoadWizard(r.Context(), sid)
		if err != nil {
			serverError(w, r, "load draft failed", err)
			return
		}

		from := wiz.Step
		if from == reg.AccountInfo {
			bind(wiz, r, reg.AccountFields)
			wiz.SetRole(reg.ParseRole(r.PostFormValue("role")))
		}

		advanced := wiz.Next()
		if err := svc.SaveWizard(r.Context(), sid, wiz); err != nil {
			serverError(w, r, "save draft failed", err)
			return
		}
		if !advanced {
			if from == reg.AccountInfo {
				metrics.Default.IncValidationFailure("account")
				renderWizard(w, r, view, http.StatusUnprocessableEntity, wiz)
				return
			}
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}

		metrics.Default.IncStepAdvance(from.String())
		http.Redirect(w, r, "/register", http.StatusSeeOther)
	}
}

// ------------------- POST /register/back -------------------
func RegisterBack(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	sid := SessionID(r)
	wiz, err := svc.LoadWizard(r.Context(), sid)
	if err != nil {
		serverError(w, r, "load draft failed", err)
		return
	}

	if wiz.Step == reg.RoleDetails {
		// keep whatever was typed on the details step
		bind(wiz, r, reg.DetailFields(wiz.Role))
	}
	if wiz.Back() {
		if err := svc.SaveWizard(r.Context(), sid, wiz); err != nil {
			serverError(w, r, "save draft failed", err)
			return
		}
	}
	http.Redirect(w, r, "/register", http.StatusSeeOther)
}

// ------------------- POST /register/submit -------------------
func RegisterSubmit(t *template.Template, sub reg.Submitter, bcryptCost int) http.HandlerFunc {
	view := page(t, "register.tmpl")
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return
		}
		sid := SessionID(r)
		wiz, err := svc.LoadWizard(r.Context(), sid)
		if err != nil {
			serverError(w, r, "load draft failed", err)
			return
		}
		if wiz.Step == reg.RoleDetails {
			bind(wiz, r, reg.DetailFields(wiz.Role))
		}

		err = wiz.Submit(r.Context(), sub, bcryptCost)
		switch {
		case err == nil:
			if err := svc.DiscardDraft(r.Context(), sid); err != nil {
				serverError(w, r, "discard draft failed", err)
				return
			}
			metrics.Default.IncRegistration(string(wiz.Role))
			http.Redirect(w, r, "/login?ok=registered", http.StatusSeeOther)
			return
		case errors.Is(err, reg.ErrNotReady):
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}

		status := http.StatusUnprocessableEntity
		if errors.Is(err, reg.ErrInvalidDetails) {
			metrics.Default.IncValidationFailure("details")
		} else {
			logger.WithSession(sid).Error("registration submit failed", zap.Error(err))
			status = http.StatusServiceUnavailable
		}
		if err := svc.SaveWizard(r.Context(), sid, wiz); err != nil {
			serverError(w, r, "save draft failed", err)
			return
		}
		renderWizard(w, r, view, status, wiz)
	}
}
