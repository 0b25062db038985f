// Package sysmsg describes lifecycle events emitted by the distributor about
// the actors it runs.
package sysmsg

// Reason tells why an actor goroutine returned.
type Reason string

const (
	// Normal means Start returned on its own, usually after its request queue closed.
	Normal Reason = "normal"
	// Panic means Start panicked; Details carries the recovered value.
	Panic Reason = "panic"
	// Replaced means a newer registration took the actor's slot.
	Replaced Reason = "replaced"
	// Closed means the distributor was closed while the actor was running.
	Closed Reason = "closed"
)
