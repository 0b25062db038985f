package actor

import (
	"context"

	"github.com/hedisam/typactor/internal/mailbox"
)

// Actor is a unit of work run on its own goroutine.
//
// Start must block, receiving requests until Receive returns an error, and
// send exactly one reply per request it wants callers to observe. The actor
// value is owned by that goroutine once registered.
type Actor[Req, Rep any] interface {
	Start(ctx context.Context, replies Sender[Rep], requests Receiver[Req])
}

// Func adapts a request handler into an Actor replying once per request.
//
// Every Func with the same request and reply types has the same type, so it
// fills the same slot. Embed it in a named struct to get a slot of its own:
//
//	type Doubler struct{ actor.Func[int, int] }
type Func[Req, Rep any] func(ctx context.Context, req Req) Rep

func (fn Func[Req, Rep]) Start(ctx context.Context, replies Sender[Rep], requests Receiver[Req]) {
	for {
		req, err := requests.Receive(ctx)
		if err != nil {
			return
		}
		if err := replies.Send(fn(ctx, req)); err != nil {
			return
		}
	}
}

// reply is what travels on the reply queue; err is only set by the
// distributor when the actor goroutine is gone.
type reply[T any] struct {
	v   T
	err error
}

// Sender is the actor's half of the reply queue.
type Sender[T any] struct {
	q mailbox.Queue[reply[T]]
}

// Send queues v for the caller currently waiting on this actor.
// It returns ErrClosed once the channel has been disposed.
func (s Sender[T]) Send(v T) error {
	return s.q.Put(reply[T]{v: v})
}

// Receiver is the actor's half of the request queue.
type Receiver[T any] struct {
	q mailbox.Queue[T]
}

// Receive blocks for the next request. It returns ErrClosed when the channel
// was disposed (the actor was replaced or the distributor closed) and
// ctx.Err() when ctx is done.
func (r Receiver[T]) Receive(ctx context.Context) (T, error) {
	return r.q.Get(ctx)
}
