package sysmsg

import "fmt"

// Exit is emitted once when an actor's goroutine returns.
type Exit struct {
	// Key names the slot the actor was registered under
	Key string
	// ID identifies the registration, two registrations of one key never share it
	ID string
	// Reason behind the termination
	Reason Reason
	// Details holds the recovered panic value, if any
	Details interface{}
}

func (e Exit) String() string {
	if e.Details != nil {
		return fmt.Sprintf("%s(%s) exited: %s: %v", e.Key, e.ID, e.Reason, e.Details)
	}
	return fmt.Sprintf("%s(%s) exited: %s", e.Key, e.ID, e.Reason)
}
