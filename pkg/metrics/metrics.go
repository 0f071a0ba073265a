package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume_editor", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume_editor", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
	StoreOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume_editor", Name: "resume_store_operations_total", Help: "Resume store operations by operation and result (ok, not_found, error)."},
		[]string{"op", "result"},
	)
	SkippedRecords = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume_editor", Name: "resume_store_skipped_records_total", Help: "Durable records skipped while listing because they could not be read or decoded."},
		[]string{"backend"},
	)
	EnhanceRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resume_editor", Name: "enhance_requests_total", Help: "Enhancement requests by section kind."},
		[]string{"section"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
	reg.MustRegister(StoreOperations)
	reg.MustRegister(SkippedRecords)
	reg.MustRegister(EnhanceRequests)
}
