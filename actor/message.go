package actor

import (
	"context"
	"errors"
	"fmt"

	"github.com/hedisam/typactor/internal/typemap"
	"github.com/hedisam/typactor/metrics"
)

// Message wraps one value on its way to an actor.
type Message[T any] struct {
	value T
}

func NewMessage[T any](value T) Message[T] {
	return Message[T]{value: value}
}

func (m Message[T]) Value() T {
	return m.value
}

// Send delivers m to the actor of type A registered with the distributor in
// ctx and blocks until it replies or ctx is done:
//
//	n, err := actor.Send[Echo, int](ctx, actor.NewMessage(5))
//
// It fails with ErrNoDistributor if ctx carries no distributor, and with
// ErrActorNotFound if A is not registered for this request and reply type.
func Send[A Actor[Req, Rep], Rep, Req any](ctx context.Context, m Message[Req]) (Rep, error) {
	d, err := resolve(ctx)
	if err != nil {
		var rep Rep
		return rep, err
	}
	return direct[A, Req, Rep](ctx, d, m.value)
}

// MustSend is Send that panics on any error.
func MustSend[A Actor[Req, Rep], Rep, Req any](ctx context.Context, m Message[Req]) Rep {
	d, err := resolve(ctx)
	if err != nil {
		panic(err)
	}
	rep, err := direct[A, Req, Rep](ctx, d, m.value)
	if err != nil {
		panic(err)
	}
	return rep
}

func direct[A Actor[Req, Rep], Req, Rep any](ctx context.Context, d *Distributor, req Req) (rep Rep, err error) {
	d.mu.RLock()
	closed := d.closed
	c, found := typemap.Find[channelKey[A, Req, Rep], *channel[Req, Rep]](d.channels)
	d.mu.RUnlock()

	if closed {
		return rep, fmt.Errorf("send to %s: %w", keyName[A, Req, Rep](), ErrClosed)
	}
	if !found {
		key := keyName[A, Req, Rep]()
		d.metrics.Dispatched(key, metrics.OutcomeNotFound)
		return rep, fmt.Errorf("send to %s: %w", key, ErrActorNotFound)
	}

	d.metrics.MailboxDepth(c.key, c.requests.Len())
	timer := d.metrics.DispatchDuration(c.key)
	rep, err = c.roundTrip(ctx, req)
	timer.ObserveDuration()
	d.metrics.Dispatched(c.key, outcomeOf(err))
	if err != nil {
		return rep, fmt.Errorf("send to %s: %w", c.key, err)
	}
	return rep, nil
}

func outcomeOf(err error) metrics.Outcome {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrActorStopped):
		return metrics.OutcomeStopped
	default:
		return metrics.OutcomeCanceled
	}
}
