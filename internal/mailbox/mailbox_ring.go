package mailbox

import (
	"context"
	"sync"

	"github.com/Workiva/go-datastructures/queue"
)

// ringQueue is bounded. The RingBuffer's own blocking calls spin, so both
// sides only touch it when its length says they will not wait, and sleep on
// signal (for consumers) or space (for producers) otherwise.
type ringQueue[T any] struct {
	rb     *queue.RingBuffer
	signal chan struct{}
	space  chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newRingQueue[T any](capacity uint64) *ringQueue[T] {
	return &ringQueue[T]{
		rb:     queue.NewRingBuffer(capacity),
		signal: make(chan struct{}, 1),
		space:  make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Put blocks while the ring is full.
func (m *ringQueue[T]) Put(v T) error {
	for {
		ok, err := m.Offer(v)
		if err != nil || ok {
			return err
		}
		select {
		case <-m.done:
			return ErrClosed
		case <-m.space:
		}
	}
}

func (m *ringQueue[T]) Offer(v T) (bool, error) {
	if m.Disposed() {
		return false, ErrClosed
	}
	ok, err := m.rb.Offer(v)
	if err != nil {
		return false, mapQueueErr(err)
	}
	if ok {
		notify(m.signal)
		// hand the wake up on to the next blocked producer, if any
		notify(m.space)
	}
	return ok, nil
}

func (m *ringQueue[T]) Get(ctx context.Context) (v T, err error) {
	for {
		if m.Disposed() {
			return v, ErrClosed
		}
		if m.rb.Len() != 0 {
			item, err := m.rb.Get()
			if err != nil {
				return v, mapQueueErr(err)
			}
			notify(m.space)
			return item.(T), nil
		}
		select {
		case <-m.done:
			return v, ErrClosed
		case <-ctx.Done():
			return v, ctx.Err()
		case <-m.signal:
		}
	}
}

func (m *ringQueue[T]) Len() int {
	return int(m.rb.Len())
}

func (m *ringQueue[T]) Dispose() {
	m.once.Do(func() {
		close(m.done)
		m.rb.Dispose()
	})
}

func (m *ringQueue[T]) Disposed() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}
