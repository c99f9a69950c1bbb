// Package observability holds the Prometheus instrumentation for the
// reporting API.
package observability

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the service-level counters. A nil *Metrics is valid and
// records nothing, which keeps test wiring minimal.
type Metrics struct {
	UsersRegistered  prometheus.Counter
	ReportsSubmitted prometheus.Counter
	LoginFailures    prometheus.Counter
}

// NewMetrics creates and registers the counters with the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		UsersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceansync",
			Name:      "users_registered_total",
			Help:      "Total successful citizen registrations.",
		}),
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceansync",
			Name:      "hazard_reports_submitted_total",
			Help:      "Total hazard reports accepted into the store.",
		}),
		LoginFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "oceansync",
			Name:      "login_failures_total",
			Help:      "Total rejected login attempts.",
		}),
	}
	reg.MustRegister(m.UsersRegistered, m.ReportsSubmitted, m.LoginFailures)
	return m
}

// IncUsersRegistered bumps the registration counter.
func (m *Metrics) IncUsersRegistered() {
	if m != nil {
		m.UsersRegistered.Inc()
	}
}

// IncReportsSubmitted bumps the report counter.
func (m *Metrics) IncReportsSubmitted() {
	if m != nil {
		m.ReportsSubmitted.Inc()
	}
}

// IncLoginFailures bumps the failed-login counter.
func (m *Metrics) IncLoginFailures() {
	if m != nil {
		m.LoginFailures.Inc()
	}
}
