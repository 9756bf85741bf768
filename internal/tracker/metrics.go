package tracker

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/protomem/timeclock/internal/model"
)

const (
	opStart         = "start_session"
	opStop          = "stop_session"
	opEdit          = "edit_session"
	opDelete        = "delete_session"
	opRecompute     = "recompute"
	opListSessions  = "list_sessions"
	opGetSummary    = "get_summary"
	opListSummaries = "list_summaries"
	opCreatePerson  = "create_person"
	opGetPerson     = "get_person"
	opFindPersons   = "find_persons"
	opUpdatePerson  = "update_person"
	opDeletePerson  = "delete_person"
)

var (
	// operationsTotal counts tracker operations by outcome.
	// Labels: operation, result (ok, validation, conflict, not_found, exists, store_error)
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "timeclock",
		Subsystem: "tracker",
		Name:      "operations_total",
		Help:      "Total tracker operations by result",
	}, []string{"operation", "result"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "timeclock",
		Subsystem: "tracker",
		Name:      "operation_duration_seconds",
		Help:      "Tracker operation latency in seconds, store round trips included",
		Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 3},
	}, []string{"operation"})
)

func observe(op string, began time.Time, err error) {
	operationDuration.WithLabelValues(op).Observe(time.Since(began).Seconds())
	operationsTotal.WithLabelValues(op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrStore):
		return "store_error"
	case errors.Is(err, model.ErrValidation):
		return "validation"
	case errors.Is(err, model.ErrConflict):
		return "conflict"
	case errors.Is(err, model.ErrNotFound):
		return "not_found"
	case errors.Is(err, model.ErrExists):
		return "exists"
	default:
		return "store_error"
	}
}
