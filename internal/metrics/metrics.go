package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	JobWrites = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobWrites,
			Help: HelpTextJobWrites,
		},
		[]string{LabelAction},
	)

	ContactUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameContactUpdates,
			Help: HelpTextContactUpdates,
		},
	)

	SlugCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlugCollisions,
			Help: HelpTextSlugCollisions,
		},
	)

	SlugFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSlugFallbacks,
			Help: HelpTextSlugFallbacks,
		},
		[]string{LabelReason},
	)

	SlugRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSlugRetries,
			Help: HelpTextSlugRetries,
		},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheLookups,
			Help: HelpTextCacheLookups,
		},
		[]string{LabelResult},
	)

	AdminLogins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAdminLogins,
			Help: HelpTextAdminLogins,
		},
		[]string{LabelResult},
	)

	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)
)
