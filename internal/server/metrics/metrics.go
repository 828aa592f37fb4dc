// Package metrics holds the Prometheus collectors of the server.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks logins, submissions, catalog loads and degraded documents.
type Metrics struct {
	registry *prometheus.Registry

	Logins             *prometheus.CounterVec
	Submissions        *prometheus.CounterVec
	CatalogLoads       *prometheus.CounterVec
	DocumentsDegraded  prometheus.Counter
	SubmissionDuration prometheus.Histogram
}

// New registers all collectors on a fresh registry, together with the Go
// runtime and process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	f := promauto.With(reg)
	return &Metrics{
		registry: reg,
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grievdesk_logins_total",
			Help: "Login attempts by result",
		}, []string{"result"}),
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grievdesk_submissions_total",
			Help: "Grievance submissions by result",
		}, []string{"result"}),
		CatalogLoads: f.NewCounterVec(prometheus.CounterOpts{
			Name: "grievdesk_catalog_loads_total",
			Help: "Catalog loads by result (fresh, cached, partial, unavailable)",
		}, []string{"result"}),
		DocumentsDegraded: f.NewCounter(prometheus.CounterOpts{
			Name: "grievdesk_documents_degraded_total",
			Help: "Documents rendered with the built-in fallback font",
		}),
		SubmissionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "grievdesk_submission_duration_seconds",
			Help:    "Duration of validate and assemble",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}),
	}
}

func (m *Metrics) Login(result string)      { m.Logins.WithLabelValues(result).Inc() }
func (m *Metrics) Submission(result string) { m.Submissions.WithLabelValues(result).Inc() }
func (m *Metrics) DocumentDegraded()        { m.DocumentsDegraded.Inc() }

// CatalogLoad is suitable for catalog.WithObserver.
func (m *Metrics) CatalogLoad(result string) { m.CatalogLoads.WithLabelValues(result).Inc() }

// ObserveSubmission records the duration of a submission.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSubmission(start time.Time) {
	m.SubmissionDuration.Observe(time.Since(start).Seconds())
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
