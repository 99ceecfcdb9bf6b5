package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	dErrors "treasury/pkg/domain-errors"
)

var durationBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}

// Metrics provides observability for the proposal module.
// Tracks proposal throughput by action, failures by code and critical path durations.
type Metrics struct {
	Submitted       *prometheus.CounterVec
	Processed       *prometheus.CounterVec
	Failures        *prometheus.CounterVec
	SubmitDuration  prometheus.Histogram
	ProcessDuration prometheus.Histogram
	LendingCalls    *prometheus.CounterVec
	LendingDuration *prometheus.HistogramVec
	LockContention  prometheus.Counter
}

// New creates the proposal metrics registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Submitted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treasury_proposals_submitted_total",
			Help: "Proposals accepted by submit, by action",
		}, []string{"action"}),
		Processed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treasury_proposals_processed_total",
			Help: "Proposals whose funds moved, by action",
		}, []string{"action"}),
		Failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treasury_proposal_failures_total",
			Help: "Failed submit and process operations, by operation and error code",
		}, []string{"operation", "code"}),
		SubmitDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "treasury_submit_duration_seconds",
			Help:    "Duration of submit operations",
			Buckets: durationBuckets,
		}),
		ProcessDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "treasury_process_duration_seconds",
			Help:    "Duration of process operations (critical fund-movement path)",
			Buckets: durationBuckets,
		}),
		LendingCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "treasury_lending_calls_total",
			Help: "Lending facility calls by action and outcome",
		}, []string{"action", "outcome"}),
		LendingDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "treasury_lending_call_duration_seconds",
			Help:    "Duration of lending facility calls by action",
			Buckets: durationBuckets,
		}, []string{"action"}),
		LockContention: factory.NewCounter(prometheus.CounterOpts{
			Name: "treasury_lock_contention_total",
			Help: "Operations rejected because the organization was already locked",
		}),
	}
}

func (m *Metrics) IncSubmitted(action string) {
	if m == nil {
		return
	}
	m.Submitted.WithLabelValues(action).Inc()
}

func (m *Metrics) IncProcessed(action string) {
	if m == nil {
		return
	}
	m.Processed.WithLabelValues(action).Inc()
}

// IncFailure labels the failure with the outermost domain error code.
func (m *Metrics) IncFailure(operation string, err error) {
	if m == nil || err == nil {
		return
	}
	m.Failures.WithLabelValues(operation, string(dErrors.CodeOf(err))).Inc()
}

// ObserveSubmit records a submit duration. Call with time.Now() at the start.
func (m *Metrics) ObserveSubmit(start time.Time) {
	if m == nil {
		return
	}
	m.SubmitDuration.Observe(time.Since(start).Seconds())
}

// ObserveProcess records a process duration. Call with time.Now() at the start.
func (m *Metrics) ObserveProcess(start time.Time) {
	if m == nil {
		return
	}
	m.ProcessDuration.Observe(time.Since(start).Seconds())
}

func (m *Metrics) ObserveLendingCall(action string, start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.LendingCalls.WithLabelValues(action, outcome).Inc()
	m.LendingDuration.WithLabelValues(action).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncLockContention() {
	if m == nil {
		return
	}
	m.LockContention.Inc()
}
