package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solace_http_requests_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "solace_http_request_duration_seconds",
			Help:    "HTTP request duration",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2.5, 5, 10, 20},
		},
		[]string{"method", "path"},
	)

	// Session metrics
	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solace_sessions_created_total",
			Help: "Total chat sessions created",
		},
	)

	SessionsEvicted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solace_sessions_evicted_total",
			Help: "Total chat sessions removed by the expiry sweep",
		},
	)

	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solace_sessions_active",
			Help: "Chat sessions currently held in memory",
		},
	)

	// Conversation metrics
	MessagesReceived = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solace_messages_received_total",
			Help: "User messages processed",
		},
		[]string{"language"},
	)

	CrisisMessages = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "solace_crisis_messages_total",
			Help: "User messages scored at crisis level",
		},
	)

	// Provider metrics
	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solace_provider_requests_total",
			Help: "AI provider calls by outcome",
		},
		[]string{"outcome"}, // "ok", "error", "timeout", "rejected"
	)

	ProviderLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "solace_provider_latency_seconds",
			Help:    "AI provider call latency",
			Buckets: []float64{.1, .25, .5, 1, 2, 5, 10, 20, 30},
		},
	)

	FallbackReplies = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "solace_fallback_replies_total",
			Help: "Replies served from the fallback catalogue",
		},
		[]string{"language"},
	)

	// Websocket metrics
	WebsocketConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "solace_websocket_connections",
			Help: "Open chat websocket connections",
		},
	)
)

// LanguageLabel bounds the cardinality of the language label. Codes outside
// the catalogue are reported as "other".
func LanguageLabel(code string, known bool) string {
	if !known || code == "" {
		return "other"
	}
	return code
}
