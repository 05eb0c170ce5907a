package service

import "time"

// MetricsRecorder records business counters. Implementations must be safe for concurrent use.
type MetricsRecorder interface {
	OrderPlaced(method string)
	OrderTransition(from, to string)
	PaymentReconciled(outcome string)
	GatewayCall(operation, outcome string, elapsed time.Duration)
	DispatchAttempt(outcome string)
	JobFinished(name, outcome string)
	PayoutRequested(kind string)
}

// Outcome labels shared by recorders.
const (
	OutcomeSuccess    = "success"
	OutcomeError      = "error"
	OutcomeDuplicate  = "duplicate"
	OutcomeMismatch   = "mismatch"
	OutcomeAssigned   = "assigned"
	OutcomeNoRider    = "no_rider"
	OutcomeRetry      = "retry"
	OutcomeDead       = "dead"
	OutcomeSkipped    = "skipped"
	OutcomeNotSuccess = "not_success"
)
