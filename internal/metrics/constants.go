package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameJobWrites       = "job_postings_writes_total"
	MetricNameContactUpdates  = "contact_info_updates_total"
	MetricNameSlugCollisions  = "slug_collisions_total"
	MetricNameSlugFallbacks   = "slug_fallbacks_total"
	MetricNameSlugRetries     = "slug_write_retries_total"
	MetricNameCacheLookups    = "response_cache_lookups_total"
	MetricNameAdminLogins     = "admin_logins_total"
	MetricNameEventsPublished = "events_published_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextJobWrites       = "Total number of job posting writes by action"
	HelpTextContactUpdates  = "Total number of contact info updates"
	HelpTextSlugCollisions  = "Total number of slug candidates found already taken"
	HelpTextSlugFallbacks   = "Total number of slugs that fell back to a timestamp suffix"
	HelpTextSlugRetries     = "Total number of writes retried after a slug unique violation"
	HelpTextCacheLookups    = "Total number of public response cache lookups by result"
	HelpTextAdminLogins     = "Total number of admin login attempts by result"
	HelpTextEventsPublished = "Total number of events published"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelAction = "action"
	LabelReason = "reason"
	LabelResult = "result"
)

// Label values
const (
	ResultHit     = "hit"
	ResultMiss    = "miss"
	ResultSuccess = "success"
	ResultFailure = "failure"

	// PathUnmatched labels requests that matched no route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
