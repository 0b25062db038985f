// Package metrics defines the instrumentation hooks of the distributor so a
// backend (see adapters/prometheus) can be plugged in without the core
// depending on it.
package metrics

// Timer measures one operation; call ObserveDuration when it completes.
type Timer interface {
	ObserveDuration()
}

// Outcome classifies a finished dispatch.
type Outcome string

const (
	OutcomeOK       Outcome = "ok"
	OutcomeNotFound Outcome = "not_found"
	OutcomeStopped  Outcome = "stopped"
	OutcomeCanceled Outcome = "canceled"
)

// DistributorMetrics is implemented by metric backends.
// All methods must be safe for concurrent use.
type DistributorMetrics interface {
	// DispatchDuration times a send from lookup to reply
	DispatchDuration(key string) Timer
	Dispatched(key string, outcome Outcome)

	// ActorsRunning adds delta to the number of live actor goroutines
	ActorsRunning(delta int)
	ActorExited(key string, reason string)

	// MailboxDepth reports the request queue length seen by a dispatch
	MailboxDepth(key string, depth int)
}
