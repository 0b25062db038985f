package mailbox

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	defaultQueueHint    = 16
	defaultRingCapacity = 100
	defaultPollInterval = 10 * time.Millisecond
)

// ErrClosed is returned by Put and Get once the queue has been disposed.
var ErrClosed = errors.New("mailbox: closed")

// Kind selects the queue implementation backing a mailbox.
type Kind int32

const (
	// Unbounded is a lock based FIFO that never blocks producers.
	Unbounded Kind = iota
	// MPSC is a lock free multi producer, single consumer FIFO.
	MPSC
	// Ring is a bounded ring buffer; Put blocks while it is full.
	Ring
)

func (k Kind) String() string {
	switch k {
	case Unbounded:
		return "unbounded"
	case MPSC:
		return "mpsc"
	case Ring:
		return "ring"
	default:
		return fmt.Sprintf("kind(%d)", int32(k))
	}
}

// Queue is a one directional FIFO carrying values of a single type.
type Queue[T any] interface {
	// Put appends v. It returns ErrClosed after Dispose.
	Put(v T) error
	// Offer is Put that reports false instead of blocking on a full queue.
	Offer(v T) (bool, error)
	// Get removes the oldest value, blocking until one is available, the
	// queue is disposed (ErrClosed) or ctx is done (ctx.Err()).
	Get(ctx context.Context) (T, error)
	Len() int
	// Dispose closes the queue and drops anything still buffered. Idempotent.
	Dispose()
	Disposed() bool
}

type Config struct {
	Kind Kind
	// QueueHint is the initial capacity of an Unbounded queue.
	QueueHint int64
	// RingCapacity is the size of a Ring queue, rounded up to a power of two.
	RingCapacity uint64
	// PollInterval bounds how long an Unbounded Get waits between context
	// checks. The other kinds select on the context directly.
	PollInterval time.Duration
}

func (cfg Config) withDefaults() Config {
	if cfg.QueueHint <= 0 {
		cfg.QueueHint = defaultQueueHint
	}
	if cfg.RingCapacity == 0 {
		cfg.RingCapacity = defaultRingCapacity
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	return cfg
}

// Check reports a configuration New would refuse.
func (cfg Config) Check() error {
	switch cfg.Kind {
	case Unbounded, MPSC, Ring:
	default:
		return fmt.Errorf("invalid mailbox kind: %v", cfg.Kind)
	}
	if cfg.QueueHint < 0 {
		return fmt.Errorf("invalid queue hint: %d", cfg.QueueHint)
	}
	if cfg.PollInterval < 0 {
		return fmt.Errorf("invalid poll interval: %v", cfg.PollInterval)
	}
	return nil
}

// New returns an empty queue of the configured kind. Unknown kinds fall back
// to Unbounded.
func New[T any](cfg Config) Queue[T] {
	cfg = cfg.withDefaults()
	switch cfg.Kind {
	case MPSC:
		return newMPSCQueue[T]()
	case Ring:
		return newRingQueue[T](cfg.RingCapacity)
	default:
		return newUnboundedQueue[T](cfg.QueueHint, cfg.PollInterval)
	}
}
