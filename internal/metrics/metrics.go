package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the portal.
type Metrics struct {
	StepAdvances           *prometheus.CounterVec
	ValidationFailures     *prometheus.CounterVec
	RegistrationsSubmitted *prometheus.CounterVec
	EntriesAdded           prometheus.Counter
	SessionsCreated        prometheus.Counter
	SessionsSwept          prometheus.Counter
}

// Default is registered on the process-wide registry and served on /metrics.
var Default = New(prometheus.DefaultRegisterer)

// New creates and registers all metrics on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		StepAdvances: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_registration_step_advances_total",
			Help: "Registration wizard forward transitions, by step left.",
		}, []string{"from"}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_validation_failures_total",
			Help: "Form submissions rejected by validation, by form.",
		}, []string{"form"}),
		RegistrationsSubmitted: f.NewCounterVec(prometheus.CounterOpts{
			Name: "portal_registrations_submitted_total",
			Help: "Completed registration wizards, by role.",
		}, []string{"role"}),
		EntriesAdded: f.NewCounter(prometheus.CounterOpts{
			Name: "portal_gold_entries_added_total",
			Help: "Gold entries appended to dashboards.",
		}),
		SessionsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "portal_sessions_created_total",
			Help: "Browser sessions created.",
		}),
		SessionsSwept: f.NewCounter(prometheus.CounterOpts{
			Name: "portal_sessions_swept_total",
			Help: "Idle browser sessions removed by the sweeper.",
		}),
	}
}

func (m *Metrics) IncStepAdvance(from string)       { m.StepAdvances.WithLabelValues(from).Inc() }
func (m *Metrics) IncValidationFailure(form string) { m.ValidationFailures.WithLabelValues(form).Inc() }
func (m *Metrics) IncRegistration(role string)      { m.RegistrationsSubmitted.WithLabelValues(role).Inc() }
func (m *Metrics) IncEntriesAdded()                 { m.EntriesAdded.Inc() }
func (m *Metrics) IncSessionsCreated()              { m.SessionsCreated.Inc() }
func (m *Metrics) AddSessionsSwept(n int)           { m.SessionsSwept.Add(float64(n)) }
