package actor

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/rs/xid"

	"github.com/hedisam/typactor/internal/mailbox"
	"github.com/hedisam/typactor/sysmsg"
)

// channelKey selects the slot of actor type A answering Req with Rep.
type channelKey[A, Req, Rep any] struct{}

func keyName[A, Req, Rep any]() string {
	return fmt.Sprintf("%s[%s -> %s]",
		reflect.TypeOf((*A)(nil)).Elem().String(),
		reflect.TypeOf((*Req)(nil)).Elem().String(),
		reflect.TypeOf((*Rep)(nil)).Elem().String(),
	)
}

// endpoint is the type-erased view the distributor keeps of every channel.
type endpoint interface {
	name() string
	identity() string
	// dispose closes the request queue, and the reply queue too if replies is true.
	dispose(reason sysmsg.Reason, replies bool)
	disposedBecause() sysmsg.Reason
	// stop is called once by the actor goroutine on its way out.
	stop()
	stopped() bool
}

// channel is the caller side of an actor: requests flow to the actor on one
// queue, replies come back on the other.
type channel[Req, Rep any] struct {
	key      string
	id       string
	requests mailbox.Queue[Req]
	replies  mailbox.Queue[reply[Rep]]

	// turn holds one token while a dispatch is in flight
	turn chan struct{}
	done chan struct{}
	once sync.Once

	mu     sync.Mutex
	reason sysmsg.Reason
}

func newChannel[Req, Rep any](key string, cfg mailbox.Config) *channel[Req, Rep] {
	return &channel[Req, Rep]{
		key:      key,
		id:       xid.New().String(),
		requests: mailbox.New[Req](cfg),
		replies:  mailbox.New[reply[Rep]](cfg),
		turn:     make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
}

func (c *channel[Req, Rep]) name() string { return c.key }
func (c *channel[Req, Rep]) identity() string { return c.id }

func (c *channel[Req, Rep]) sender() Sender[Rep] {
	return Sender[Rep]{q: c.replies}
}

func (c *channel[Req, Rep]) receiver() Receiver[Req] {
	return Receiver[Req]{q: c.requests}
}

func (c *channel[Req, Rep]) dispose(reason sysmsg.Reason, replies bool) {
	c.mu.Lock()
	if c.reason == "" {
		c.reason = reason
	}
	c.mu.Unlock()

	c.requests.Dispose()
	if replies {
		c.replies.Dispose()
	}
}

func (c *channel[Req, Rep]) disposedBecause() sysmsg.Reason {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reason
}

func (c *channel[Req, Rep]) stop() {
	c.once.Do(func() {
		close(c.done)
		c.requests.Dispose()
		// wakes a caller still waiting; earlier replies stay ahead of it. A
		// full ring gets disposed instead, which wakes the caller the same way.
		if ok, _ := c.replies.Offer(reply[Rep]{err: ErrActorStopped}); !ok {
			c.replies.Dispose()
		}
	})
}

func (c *channel[Req, Rep]) stopped() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *channel[Req, Rep]) release() {
	<-c.turn
}

// roundTrip queues req and waits for its reply while holding the turn.
func (c *channel[Req, Rep]) roundTrip(ctx context.Context, req Req) (rep Rep, err error) {
	if c.stopped() {
		return rep, ErrActorStopped
	}
	select {
	case c.turn <- struct{}{}:
	case <-c.done:
		return rep, ErrActorStopped
	case <-ctx.Done():
		return rep, ctx.Err()
	}

	if err = c.requests.Put(req); err != nil {
		c.release()
		return rep, ErrActorStopped
	}

	r, err := c.replies.Get(ctx)
	switch {
	case err == nil:
		c.release()
		if r.err != nil {
			return rep, r.err
		}
		return r.v, nil
	case errors.Is(err, mailbox.ErrClosed):
		c.release()
		return rep, ErrActorStopped
	default:
		// the request is already queued: its reply must not reach the next caller
		go c.discardReply()
		return rep, err
	}
}

func (c *channel[Req, Rep]) discardReply() {
	defer c.release()
	_, _ = c.replies.Get(context.Background())
}
