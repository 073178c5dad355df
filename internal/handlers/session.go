package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/onehealth/portal/internal/logger"
	"github.com/onehealth/portal/internal/metrics"
	svc "github.com/onehealth/portal/internal/services"
)

const sessionCookie = "portal_session"

type ctxKey struct{}

// SessionID returns the browser session of r, "" outside WithSession.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(ctxKey{}).(string)
	return id
}

// WithSession makes sure every request carries a known session. The cookie
// has no expiry, so it ends with the browser session; the server side is
// swept once idle.
func WithSession(seed bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := readSessionCookie(r)
			if id == "" {
				id = uuid.NewString()
			}

			created, err := svc.EnsureSession(r.Context(), id, seed)
			if err != nil {
				logger.WithSession(id).Error("ensure session", zap.Error(err))
				http.Error(w, "session unavailable", http.StatusInternalServerError)
				return
			}
			if created {
				metrics.Default.IncSessionsCreated()
				setSessionCookie(w, id)
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, id)))
		})
	}
}

// ForgetDraft drops any registration in progress: leaving the wizard for
// another page abandons it.
func ForgetDraft(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := SessionID(r); id != "" {
			if err := svc.DiscardDraft(r.Context(), id); err != nil {
				logger.WithSession(id).Warn("discard draft", zap.Error(err))
			}
		}
		next.ServeHTTP(w, r)
	})
}

func readSessionCookie(r *http.Request) string {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	id, err := uuid.Parse(c.Value)
	if err != nil {
		return ""
	}
	return id.String()
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
