package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the ETL pipeline.
type Metrics struct {
	ProfilesFetched     prometheus.Counter
	EventsPublished     prometheus.Counter
	FetchErrors         prometheus.Counter
	TransformErrors     prometheus.Counter
	PublishErrors       prometheus.Counter
	NoQualifyingProfile prometheus.Counter
	PipelineRunning     prometheus.Gauge

	// Fetch cycle metrics.
	FetchDuration   prometheus.Histogram
	PublishDuration prometheus.Histogram

	// ERDDAP metrics.
	ERDDAPRequests        *prometheus.CounterVec // labels: outcome={success,error}
	ERDDAPRequestDuration prometheus.Histogram
}

// NewMetrics creates and registers all pipeline metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ProfilesFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_etl",
			Name:      "profiles_fetched_total",
			Help:      "Total qualifying profiles fetched from the ERDDAP service.",
		}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_etl",
			Name:      "events_published_total",
			Help:      "Total enriched profile events written to the sink topic.",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_etl",
			Name:      "fetch_errors_total",
			Help:      "Total profile fetch failures.",
		}),
		TransformErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_etl",
			Name:      "transform_errors_total",
			Help:      "Total enrichment failures.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_etl",
			Name:      "publish_errors_total",
			Help:      "Total Kafka publish failures.",
		}),
		NoQualifyingProfile: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "argo_etl",
			Name:      "no_qualifying_profile_total",
			Help:      "Total fetch cycles that found no cast dense enough to publish.",
		}),
		PipelineRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "argo_etl",
			Name:      "pipeline_running",
			Help:      "1 when the pipeline is active, 0 when shut down.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "argo_etl",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a complete region fetch and cast selection.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		PublishDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "argo_etl",
			Name:      "publish_duration_seconds",
			Help:      "Duration of one event publish to Kafka.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5},
		}),
		ERDDAPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "argo_etl",
			Name:      "erddap_requests_total",
			Help:      "ERDDAP tabledap requests by outcome.",
		}, []string{"outcome"}),
		ERDDAPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "argo_etl",
			Name:      "erddap_request_duration_seconds",
			Help:      "ERDDAP tabledap request duration in seconds.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
	}

	prometheus.MustRegister(
		m.ProfilesFetched,
		m.EventsPublished,
		m.FetchErrors,
		m.TransformErrors,
		m.PublishErrors,
		m.NoQualifyingProfile,
		m.PipelineRunning,
		m.FetchDuration,
		m.PublishDuration,
		m.ERDDAPRequests,
		m.ERDDAPRequestDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ProfilesFetched:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_etl", Name: "profiles_fetched_total"}),
		EventsPublished:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_etl", Name: "events_published_total"}),
		FetchErrors:           prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_etl", Name: "fetch_errors_total"}),
		TransformErrors:       prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_etl", Name: "transform_errors_total"}),
		PublishErrors:         prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_etl", Name: "publish_errors_total"}),
		NoQualifyingProfile:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "argo_etl", Name: "no_qualifying_profile_total"}),
		PipelineRunning:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "argo_etl", Name: "pipeline_running"}),
		FetchDuration:         prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "argo_etl", Name: "fetch_duration_seconds"}),
		PublishDuration:       prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "argo_etl", Name: "publish_duration_seconds"}),
		ERDDAPRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "argo_etl", Name: "erddap_requests_total"}, []string{"outcome"}),
		ERDDAPRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "argo_etl", Name: "erddap_request_duration_seconds"}),
	}
}
