package mailbox

import (
	"context"
	"sync"

	"github.com/t3rm1n4l/go-mpscqueue"
)

// item boxes values so any T fits the queue's interface{} slots.
type item[T any] struct {
	v T
}

// mpscQueue allows many producers but only one consumer at a time.
type mpscQueue[T any] struct {
	q      *mpsc.MPSCQueue
	signal chan struct{}
	done   chan struct{}
	once   sync.Once
}

func newMPSCQueue[T any]() *mpscQueue[T] {
	return &mpscQueue[T]{
		q:      mpsc.New(),
		signal: make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (m *mpscQueue[T]) Put(v T) error {
	select {
	case <-m.done:
		return ErrClosed
	default:
	}
	m.q.Push(&item[T]{v: v})
	notify(m.signal)
	return nil
}

// Offer never finds the queue full.
func (m *mpscQueue[T]) Offer(v T) (bool, error) {
	if err := m.Put(v); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mpscQueue[T]) Get(ctx context.Context) (v T, err error) {
	for {
		select {
		case <-m.done:
			return v, ErrClosed
		default:
		}
		// Pop spins until a value shows up, so it is only called once one has
		if m.q.Size() != 0 {
			return m.q.Pop().(*item[T]).v, nil
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

func (m *mpscQueue[T]) Len() int {
	return int(m.q.Size())
}

func (m *mpscQueue[T]) Dispose() {
	m.once.Do(func() {
		close(m.done)
	})
}

func (m *mpscQueue[T]) Disposed() bool {
	select {
	case <-m.done:
		return true
	default:
		return false
	}
}

// notify leaves a wake up in ch; a pending one already covers the caller.
func notify(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
