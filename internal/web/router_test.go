package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/onehealth/portal/internal/config"
	"github.com/onehealth/portal/internal/db"
	"github.com/onehealth/portal/internal/logger"
	"github.com/onehealth/portal/internal/registration"
)

// browser replays the session cookie like a real client would.
type browser struct {
	t      *testing.T
	h      http.Handler
	cookie *http.Cookie
}

func newBrowser(t *testing.T, sub registration.Submitter) *browser {
	t.Helper()
	logger.Set(zap.NewNop())
	require.NoError(t, db.Init(db.NamedMemoryDSN(t.Name())))
	cfg := config.Config{SeedDemoEntries: true, BcryptCost: bcrypt.MinCost}
	if sub == nil {
		sub = registration.UnwiredSubmitter{}
	}
	return &browser{t: t, h: Router(cfg, sub)}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	if b.cookie != nil {
		req.AddCookie(b.cookie)
	}
	rec := httptest.NewRecorder()
	b.h.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "portal_session" {
			b.cookie = c
		}
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func accountForm(confirm string) url.Values {
	return url.Values{
		"firstName":       {"Asha"},
		"lastName":        {"Rao"},
		"email":           {" asha@example.com "},
		"mobile":          {"9876543210"},
		"password":        {"s3cret"},
		"confirmPassword": {confirm},
		"role":            {"patient"},
	}
}

func patientForm() url.Values {
	return url.Values{
		"fatherName":  {"Ravi Rao"},
		"motherName":  {"Meena Rao"},
		"dateOfBirth": {"1990-01-01"},
		"occupation":  {"Teacher"},
		"city":        {"Pune"},
		"district":    {"Pune"},
		"state":       {"Maharashtra"},
		"postalCode":  {"411001"},
		"address":     {"12 MG Road"},
	}
}

func TestRouterHealthz(t *testing.T) {
	b := newBrowser(t, nil)
	rec := b.get("/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Nil(t, b.cookie, "health checks must not open a session")
}

func TestDashboard_DemoTotals(t *testing.T) {
	b := newBrowser(t, nil)

	rec := b.get("/dashboard")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, b.cookie)

	body := rec.Body.String()
	assert.Contains(t, body, "₹93,400")
	assert.Contains(t, body, "₹95,500")
	assert.Contains(t, body, "₹2,100")
	assert.Contains(t, body, "15 g")
	assert.Contains(t, body, `class="gain"`)
	assert.Contains(t, body, "M 20 90 L 90 10")
}

func TestDashboard_AddEntryShowsNewestFirst(t *testing.T) {
	b := newBrowser(t, nil)
	b.get("/dashboard")

	rec := b.post("/dashboard/entries", url.Values{
		"date":       {"2024-11-01"},
		"time":       {"09:00"},
		"buyPrice":   {"6300"},
		"goldAmount": {"2"},
		"sellPrice":  {"6500"},
		"notes":      {"Gold coin"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard?ok=entry_added", rec.Header().Get("Location"))

	body := b.get("/dashboard?ok=entry_added").Body.String()
	assert.Contains(t, body, "Entry added.")
	assert.Contains(t, body, "₹1,06,000")
	coin := strings.Index(body, "Gold coin")
	extra := strings.Index(body, "Extra investment")
	require.True(t, coin > 0 && extra > 0)
	assert.Less(t, coin, extra)
}

func TestDashboard_LossShowsNegative(t *testing.T) {
	b := newBrowser(t, nil)
	b.get("/dashboard")

	rec := b.post("/dashboard/entries", url.Values{
		"date":       {"2024-11-01"},
		"time":       {"09:00"},
		"buyPrice":   {"7000"},
		"goldAmount": {"10"},
		"sellPrice":  {"6000"},
	})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := b.get("/dashboard").Body.String()
	assert.Contains(t, body, `class="loss"`)
	assert.NotContains(t, body, `class="gain"`)
	// 2100 from the demo entries, minus 10000
	assert.Contains(t, body, "-₹7,900")
}

func TestDashboard_InvalidEntryKeepsInput(t *testing.T) {
	b := newBrowser(t, nil)

	rec := b.post("/dashboard/entries", url.Values{
		"date":       {"2024-11-01"},
		"buyPrice":   {"abc"},
		"goldAmount": {"2"},
		"sellPrice":  {"6500"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "This field is required")
	assert.Contains(t, body, "Enter a number")
	assert.Contains(t, body, `value="2024-11-01"`)
	assert.Contains(t, body, "₹93,400", "rejected entry must not change totals")
}

func TestSessionsAreIsolated(t *testing.T) {
	b := newBrowser(t, nil)
	b.get("/dashboard")
	b.post("/dashboard/entries", url.Values{
		"date": {"2024-11-01"}, "time": {"09:00"},
		"buyPrice": {"6300"}, "goldAmount": {"2"}, "sellPrice": {"6500"},
	})

	other := &browser{t: t, h: b.h}
	body := other.get("/dashboard").Body.String()
	assert.Contains(t, body, "₹93,400")
	assert.NotEqual(t, b.cookie.Value, other.cookie.Value)
}

func TestRegister_MismatchedPasswords(t *testing.T) {
	b := newBrowser(t, nil)

	rec := b.get("/register")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Click below to create your account")

	require.Equal(t, http.StatusSeeOther, b.post("/register/next", nil).Code)

	rec = b.post("/register/next", accountForm("other"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, registration.MsgMismatch)
	assert.Contains(t, body, `value="Asha"`)
	assert.NotContains(t, body, "Patient Details")
}

func TestRegister_EmptyAccountStep(t *testing.T) {
	b := newBrowser(t, nil)
	b.post("/register/next", nil)

	rec := b.post("/register/next", url.Values{})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Equal(t, len(registration.AccountFields), strings.Count(body, registration.MsgRequired))
	assert.Contains(t, body, registration.MsgRole)
}

func TestRegister_FullFlow(t *testing.T) {
	var got registration.Registration
	sub := registration.SubmitterFunc(func(_ context.Context, reg registration.Registration) error {
		got = reg
		return nil
	})
	b := newBrowser(t, sub)

	b.post("/register/next", nil)
	rec := b.post("/register/next", accountForm("s3cret"))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = b.get("/register")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Patient Details")

	rec = b.post("/register/submit", patientForm())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?ok=registered", rec.Header().Get("Location"))

	assert.Equal(t, registration.Patient, got.Role)
	assert.Equal(t, "asha@example.com", got.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword(got.PasswordHash, []byte("s3cret")))
	assert.Equal(t, "Pune", got.Details["city"])

	assert.Contains(t, b.get("/login?ok=registered").Body.String(), "Account created.")

	// the draft is gone; the wizard starts over
	assert.Contains(t, b.get("/register").Body.String(), "Click below to create your account")
}

func TestRegister_BackKeepsEverything(t *testing.T) {
	b := newBrowser(t, nil)
	b.post("/register/next", nil)
	b.post("/register/next", accountForm("s3cret"))

	rec := b.post("/register/back", url.Values{"city": {"Pune"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	body := b.get("/register").Body.String()
	assert.Contains(t, body, `value="asha@example.com"`)
	assert.Contains(t, body, `value="patient" selected`)

	b.post("/register/next", accountForm("s3cret"))
	assert.Contains(t, b.get("/register").Body.String(), `value="Pune"`)
}

func TestRegister_SubmitterFailure(t *testing.T) {
	sub := registration.SubmitterFunc(func(context.Context, registration.Registration) error {
		return errors.New("backend down")
	})
	b := newBrowser(t, sub)
	b.post("/register/next", nil)
	b.post("/register/next", accountForm("s3cret"))

	rec := b.post("/register/submit", patientForm())
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "We could not create your account")
	assert.Contains(t, rec.Body.String(), `value="Ravi Rao"`)
}

func TestRegister_LeavingAbandonsDraft(t *testing.T) {
	b := newBrowser(t, nil)
	b.post("/register/next", nil)
	b.post("/register/next", accountForm("s3cret"))

	b.get("/dashboard")
	assert.Contains(t, b.get("/register").Body.String(), "Click below to create your account")
}

func TestDashboardQR(t *testing.T) {
	b := newBrowser(t, nil)
	rec := b.get("/qr/dashboard.png")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))
}

func TestMetricsEndpoint(t *testing.T) {
	b := newBrowser(t, nil)
	b.get("/dashboard")
	rec := b.get("/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "portal_")
}
