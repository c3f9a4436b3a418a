// Package metrics provides Prometheus metrics for the topic board.
// Collectors are registered on the default registry at init.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/campusboard-backend/internal/domain"
)

const (
	namespace = "campusboard"
	subsystem = "topics"
)

var (
	// MutationsTotal counts write operations by operation and outcome.
	MutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "mutations_total",
			Help:      "Total number of topic and bookmark mutations by operation and result",
		},
		[]string{"op", "result"},
	)

	// ValidationErrorsTotal counts rejected fields by field name and error code.
	ValidationErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "validation_errors_total",
			Help:      "Total number of field validation errors by field and code",
		},
		[]string{"field", "code"},
	)

	// QueryDuration observes read operation latency by operation.
	QueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "query_duration_seconds",
			Help:      "Topic query duration in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"op"},
	)
)

// Result labels.
const (
	ResultOK         = "ok"
	ResultValidation = "validation"
	ResultNotFound   = "not_found"
	ResultForbidden  = "forbidden"
	ResultConflict   = "conflict"
	ResultError      = "error"
)

// Result classifies an operation error into a result label.
func Result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidQuery):
		return ResultValidation
	case errors.Is(err, domain.ErrNotFound):
		return ResultNotFound
	case errors.Is(err, domain.ErrForbidden), errors.Is(err, domain.ErrUnauthorized):
		return ResultForbidden
	case errors.Is(err, domain.ErrConflict):
		return ResultConflict
	default:
		return ResultError
	}
}

// ObserveMutation records the outcome of a write operation. Field-level
// validation failures are also counted per field.
func ObserveMutation(op string, err error) {
	MutationsTotal.WithLabelValues(op, Result(err)).Inc()

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		for _, fe := range ve.Errors {
			ValidationErrorsTotal.WithLabelValues(fe.Field, fe.Code.String()).Inc()
		}
	}
}

// ObserveQuery records the duration of a read operation started at start.
func ObserveQuery(op string, start time.Time) {
	QueryDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
