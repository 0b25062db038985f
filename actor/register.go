package actor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hedisam/typactor/internal/typemap"
	"github.com/hedisam/typactor/sysmsg"
)

// Register starts a on its own goroutine and installs its channel under the
// slot of (A, Req, Rep). The request and reply types cannot be inferred:
//
//	err := actor.Register[int, int](d, Echo{})
//
// It returns ErrAlreadyRegistered if a running actor owns the slot; a slot
// whose actor has returned may be registered again.
func Register[Req, Rep any, A Actor[Req, Rep]](d *Distributor, a A) error {
	return install[Req, Rep](d, a, false)
}

// Replace is Register that takes the slot over from a running actor. The old
// channel is disposed: requests still queued on it are dropped, the old actor
// sees ErrClosed and no dispatch can reach it again.
func Replace[Req, Rep any, A Actor[Req, Rep]](d *Distributor, a A) error {
	return install[Req, Rep](d, a, true)
}

func install[Req, Rep any, A Actor[Req, Rep]](d *Distributor, a A, replace bool) error {
	key := keyName[A, Req, Rep]()
	c := newChannel[Req, Rep](key, d.opts.mailboxConfig())

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return fmt.Errorf("register %s: %w", key, ErrClosed)
	}
	prev, found := typemap.Find[channelKey[A, Req, Rep], *channel[Req, Rep]](d.channels)
	if found && !prev.stopped() && !replace {
		d.mu.Unlock()
		return fmt.Errorf("register %s: %w", key, ErrAlreadyRegistered)
	}
	typemap.Insert[channelKey[A, Req, Rep]](d.channels, c)
	d.endpoints = append(live(d.endpoints), c)
	d.wg.Add(1)
	d.mu.Unlock()

	if found && !prev.stopped() {
		prev.dispose(sysmsg.Replaced, false)
		d.log.Info("actor replaced", slog.String("actor", key), slog.String("old", prev.id), slog.String("id", c.id))
	} else {
		d.log.Debug("actor registered", slog.String("actor", key), slog.String("id", c.id))
	}

	d.startActor(c, func(ctx context.Context) {
		a.Start(ctx, c.sender(), c.receiver())
	})
	return nil
}
