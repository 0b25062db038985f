package mailbox

import (
	"context"
	"errors"
	"time"

	"github.com/Workiva/go-datastructures/queue"
)

type unboundedQueue[T any] struct {
	q    *queue.Queue
	poll time.Duration
}

func newUnboundedQueue[T any](hint int64, poll time.Duration) *unboundedQueue[T] {
	return &unboundedQueue[T]{
		q:    queue.New(hint),
		poll: poll,
	}
}

func (m *unboundedQueue[T]) Put(v T) error {
	if err := m.q.Put(v); err != nil {
		return mapQueueErr(err)
	}
	return nil
}

// Offer never finds the queue full.
func (m *unboundedQueue[T]) Offer(v T) (bool, error) {
	if err := m.Put(v); err != nil {
		return false, err
	}
	return true, nil
}

func (m *unboundedQueue[T]) Get(ctx context.Context) (v T, err error) {
	// a context that can never be canceled does not need polling
	if ctx.Done() == nil {
		items, err := m.q.Get(1)
		if err != nil {
			return v, mapQueueErr(err)
		}
		return items[0].(T), nil
	}

	for {
		if err = ctx.Err(); err != nil {
			return
		}
		items, err := m.q.Poll(1, m.poll)
		switch {
		case err == nil && len(items) > 0:
			return items[0].(T), nil
		case err == nil, errors.Is(err, queue.ErrTimeout):
			continue
		default:
			return v, mapQueueErr(err)
		}
	}
}

func (m *unboundedQueue[T]) Len() int {
	return int(m.q.Len())
}

func (m *unboundedQueue[T]) Dispose() {
	m.q.Dispose()
}

func (m *unboundedQueue[T]) Disposed() bool {
	return m.q.Disposed()
}

func mapQueueErr(err error) error {
	if errors.Is(err, queue.ErrDisposed) {
		return ErrClosed
	}
	return err
}
