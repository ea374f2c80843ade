package http

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors of the HTTP adapter.
type Metrics struct {
	SessionsStarted   prometheus.Counter
	SessionsCompleted prometheus.Counter
	AnswersRecorded   prometheus.Counter
	RuleEvaluations   prometheus.Counter
}

// NewMetrics creates and registers the collectors on the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		SessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datakompass_sessions_started_total",
			Help: "Total number of assessment sessions started",
		}),
		SessionsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datakompass_sessions_completed_total",
			Help: "Total number of assessment sessions completed",
		}),
		AnswersRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datakompass_answers_recorded_total",
			Help: "Total number of answers recorded",
		}),
		RuleEvaluations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "datakompass_rule_evaluations_total",
			Help: "Total number of recommendation report evaluations",
		}),
	}
	reg.MustRegister(m.SessionsStarted, m.SessionsCompleted, m.AnswersRecorded, m.RuleEvaluations)
	return m
}
