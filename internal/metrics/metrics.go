package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values shared by the counters below.
const (
	OutcomeSuccess        = "success"
	OutcomeRemoteError    = "remote_error"
	OutcomeDecodeError    = "decode_error"
	OutcomeTransportError = "transport_error"
	OutcomeMissingSession = "missing_session"
	OutcomeStaleSession   = "stale_session"
	OutcomeCached         = "cached"
)

// Outbound TMDB request metrics
var (
	TMDBRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tmdb_requests_total",
			Help: "Total number of requests issued to the TMDB API, by operation and outcome.",
		},
		[]string{"operation", "outcome"},
	)

	TMDBRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tmdb_request_duration_seconds",
			Help:    "Latency of requests issued to the TMDB API.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)
)

// Guest session and rating metrics
var (
	RatingsSubmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ratings_submitted_total",
			Help: "Total number of rating submissions, by media type and outcome.",
		},
		[]string{"media_type", "outcome"},
	)

	GuestSessionsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "guest_sessions_created_total",
			Help: "Total number of guest session creation attempts, by outcome.",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		TMDBRequestsTotal,
		TMDBRequestDuration,
		RatingsSubmittedTotal,
		GuestSessionsCreatedTotal,
	)
}
