package actor

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"

	"github.com/hedisam/typactor/internal/typemap"
	"github.com/hedisam/typactor/metrics"
	"github.com/hedisam/typactor/sysmsg"
)

// Distributor routes requests to the actors registered with it, one slot per
// (actor, request, reply) type triple. It is safe for concurrent use.
type Distributor struct {
	name    string
	opts    Options
	log     *slog.Logger
	metrics metrics.DistributorMetrics

	// ctx is only canceled by Close, after every channel was disposed
	ctx    context.Context
	cancel context.CancelFunc

	// mu guards the slots; it is never held while waiting on an actor
	mu        sync.RWMutex
	channels  *typemap.Map
	endpoints []endpoint
	closed    bool
	// stopParent unhooks Close from the parent context
	stopParent func() bool

	// actors and spawned tasks
	wg sync.WaitGroup
}

// New creates an empty distributor living until parent ends or Close is called.
// Its Context carries it, so Send and Spawn can find it. The Context keeps the
// values of parent but is only canceled through Close.
func New(parent context.Context, opts Options) (*Distributor, error) {
	if parent == nil {
		parent = context.Background()
	}
	if err := opts.checkOptions(); err != nil {
		return nil, err
	}

	d := &Distributor{
		name:     opts.Name,
		opts:     opts,
		log:      opts.Logger.With(slog.String("distributor", opts.Name)),
		metrics:  opts.Metrics,
		channels: typemap.New(),
	}
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))
	d.ctx = WithDistributor(ctx, d)
	d.cancel = cancel
	// Close may already run on its own goroutine before AfterFunc returns
	d.mu.Lock()
	d.stopParent = context.AfterFunc(parent, d.Close)
	d.mu.Unlock()
	return d, nil
}

func (d *Distributor) Name() string {
	return d.name
}

// Context returns the distributor's lifetime context. It is canceled by Close.
func (d *Distributor) Context() context.Context {
	return d.ctx
}

// Close cancels the distributor's context and disposes every channel. Actors
// see ErrClosed from Receive, callers still waiting get ErrActorStopped and
// later calls get ErrClosed. Close does not wait; see Wait. Idempotent.
func (d *Distributor) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	endpoints := d.endpoints
	d.endpoints = nil
	stopParent := d.stopParent
	d.mu.Unlock()

	// reasons must be recorded before actors can observe the cancellation
	for _, e := range endpoints {
		e.dispose(sysmsg.Closed, true)
	}
	d.cancel()
	stopParent()
	d.log.Debug("distributor closed", slog.Int("channels", len(endpoints)))
}

// Wait blocks until every actor and spawned task has returned. Call it after Close.
func (d *Distributor) Wait() {
	d.wg.Wait()
}

// track accounts for one more goroutine, unless the distributor is closed.
func (d *Distributor) track() error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrClosed
	}
	d.wg.Add(1)
	return nil
}

// Spawn runs task on a new goroutine holding the distributor's context, so
// the task may itself Send, Register or Spawn.
func (d *Distributor) Spawn(task func(ctx context.Context)) error {
	if err := d.track(); err != nil {
		return fmt.Errorf("spawn: %w", err)
	}
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				d.log.Error("spawned task panicked", slog.Any("recovered", r), slog.String("stack", string(debug.Stack())))
			}
		}()
		task(d.ctx)
	}()
	return nil
}

// startActor runs start on the actor's own goroutine; wg must already account for it.
func (d *Distributor) startActor(e endpoint, start func(ctx context.Context)) {
	d.metrics.ActorsRunning(1)
	go func() {
		defer d.wg.Done()
		defer d.handleTermination(e)
		start(d.ctx)
	}()
}

func (d *Distributor) handleTermination(e endpoint) {
	exit := sysmsg.Exit{Key: e.name(), ID: e.identity(), Reason: sysmsg.Normal}

	// check if we got a panic or just a normal return
	if r := recover(); r != nil {
		exit.Reason = sysmsg.Panic
		exit.Details = r
		d.log.Error("actor panicked",
			slog.String("actor", exit.Key),
			slog.String("id", exit.ID),
			slog.Any("recovered", r),
			slog.String("stack", string(debug.Stack())),
		)
	} else if reason := e.disposedBecause(); reason != "" {
		exit.Reason = reason
	}
	e.stop()

	if exit.Reason != sysmsg.Panic {
		d.log.Debug("actor exited", slog.String("actor", exit.Key), slog.String("id", exit.ID), slog.String("reason", string(exit.Reason)))
	}
	d.metrics.ActorsRunning(-1)
	d.metrics.ActorExited(exit.Key, string(exit.Reason))
	if d.opts.OnExit != nil {
		d.opts.OnExit(exit)
	}
}

// live drops endpoints whose actor already returned.
func live(endpoints []endpoint) []endpoint {
	out := endpoints[:0]
	for _, e := range endpoints {
		if !e.stopped() {
			out = append(out, e)
		}
	}
	return out
}
