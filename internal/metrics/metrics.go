package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector this service exports.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// HTTP metrics
	httpRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_relay_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "method", "status"},
	)

	httpRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mail_relay_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)

	// Relay metrics
	emailsSentTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_relay_emails_sent_total",
			Help: "Total number of emails relayed successfully",
		},
		[]string{"sender"},
	)

	emailsFailedTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_relay_emails_failed_total",
			Help: "Total number of rejected or failed relay requests",
		},
		[]string{"sender", "reason"},
	)

	sendDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mail_relay_send_duration_seconds",
			Help:    "SMTP dial+auth+send duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"sender"},
	)
)

func init() {
	Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordHTTPRequest records one served request. route is the chi route pattern.
func RecordHTTPRequest(route, method string, status int, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route, method).Observe(duration.Seconds())
}

// RecordEmailSent records a successfully relayed email
func RecordEmailSent(sender string, duration time.Duration) {
	emailsSentTotal.WithLabelValues(sender).Inc()
	sendDuration.WithLabelValues(sender).Observe(duration.Seconds())
}

// RecordEmailFailed records a rejected (validation) or failed (delivery) relay
func RecordEmailFailed(sender, reason string) {
	emailsFailedTotal.WithLabelValues(sender, reason).Inc()
}

// Handler returns the Prometheus exposition handler for Registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
