package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"google.golang.org/grpc/codes"
)

const namespace = "accounts"

// Recorder holds the service's collectors. A nil *Recorder records nothing.
type Recorder struct {
	deletions        *prometheus.CounterVec
	deletionDuration prometheus.Histogram
	grpcRequests     *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		deletions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "user_deletions_total",
			Help:      "User deletion attempts by result code.",
		}, []string{"code"}),
		deletionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "user_deletion_duration_seconds",
			Help:      "Time spent deleting a user across both stores.",
			Buckets:   prometheus.DefBuckets,
		}),
		grpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "grpc_requests_total",
			Help:      "Handled gRPC requests by method and code.",
		}, []string{"method", "code"}),
	}

	reg.MustRegister(r.deletions, r.deletionDuration, r.grpcRequests)
	return r
}

func (r *Recorder) ObserveDeletion(code codes.Code, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.deletions.WithLabelValues(code.String()).Inc()
	r.deletionDuration.Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveGrpcRequest(method string, code codes.Code) {
	if r == nil {
		return
	}
	r.grpcRequests.WithLabelValues(method, code.String()).Inc()
}

// Deletions exposes the counter for assertions.
func (r *Recorder) Deletions() *prometheus.CounterVec {
	return r.deletions
}

func (r *Recorder) GrpcRequests() *prometheus.CounterVec {
	return r.grpcRequests
}
