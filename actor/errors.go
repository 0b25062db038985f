package actor

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"

	"github.com/hedisam/typactor/internal/mailbox"
)

var (
	// ErrNoDistributor is returned when Send or Spawn get a context without a distributor.
	ErrNoDistributor = errors.New("no distributor in context")
	// ErrActorNotFound is returned when no actor is registered for the requested type.
	ErrActorNotFound = errors.New("no such actor registered")
	// ErrAlreadyRegistered is returned by Register when a running actor owns the slot.
	ErrAlreadyRegistered = errors.New("actor already registered")
	// ErrActorStopped is returned when the target actor's goroutine has returned.
	ErrActorStopped = errors.New("actor stopped")
	// ErrClosed is returned after the distributor or a channel has been closed.
	ErrClosed = mailbox.ErrClosed
)

// errAt prefixes err with the file and line skip frames above its caller.
func errAt(skip int, err error) error {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return err
	}
	return fmt.Errorf("%s:%d: %w", filepath.Base(file), line, err)
}
