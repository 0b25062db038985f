package actor

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/rs/xid"

	"github.com/hedisam/typactor/internal/mailbox"
	"github.com/hedisam/typactor/metrics"
	"github.com/hedisam/typactor/sysmsg"
)

// MailboxKind selects the queue backing every channel of a distributor.
type MailboxKind = mailbox.Kind

const (
	// UnboundedMailbox never blocks a sender. It is the default.
	UnboundedMailbox = mailbox.Unbounded
	// MPSCMailbox is lock free on the sending side.
	MPSCMailbox = mailbox.MPSC
	// RingMailbox is bounded by Options.RingCapacity; senders block while it is full.
	RingMailbox = mailbox.Ring
)

type Options struct {
	Name    string
	Mailbox MailboxKind
	// QueueHint is the initial capacity of unbounded queues
	QueueHint int64
	// RingCapacity is the size of ring queues
	RingCapacity uint64
	// PollInterval bounds how quickly a dispatch on an unbounded mailbox notices
	// its context ending
	PollInterval time.Duration
	Logger       *slog.Logger
	Metrics      metrics.DistributorMetrics
	// OnExit is called on the actor's goroutine after it returned
	OnExit func(exit sysmsg.Exit)
}

// NewOptions returns options with a unique name and an unbounded mailbox.
func NewOptions() Options {
	return Options{
		Name:    xid.New().String(),
		Mailbox: UnboundedMailbox,
	}
}

func (opt Options) SetName(name string) Options {
	opt.Name = name
	return opt
}

func (opt Options) SetMailbox(kind MailboxKind) Options {
	opt.Mailbox = kind
	return opt
}

func (opt Options) SetLogger(logger *slog.Logger) Options {
	opt.Logger = logger
	return opt
}

func (opt Options) SetMetrics(m metrics.DistributorMetrics) Options {
	opt.Metrics = m
	return opt
}

func (opt Options) SetOnExit(fn func(exit sysmsg.Exit)) Options {
	opt.OnExit = fn
	return opt
}

func (opt *Options) mailboxConfig() mailbox.Config {
	return mailbox.Config{
		Kind:         opt.Mailbox,
		QueueHint:    opt.QueueHint,
		RingCapacity: opt.RingCapacity,
		PollInterval: opt.PollInterval,
	}
}

func (opt *Options) checkOptions() error {
	if opt.Name == "" {
		return fmt.Errorf("invalid distributor name: %q", opt.Name)
	}
	if err := opt.mailboxConfig().Check(); err != nil {
		return err
	}
	if opt.Logger == nil {
		opt.Logger = slog.Default()
	}
	if opt.Metrics == nil {
		opt.Metrics = metrics.Nop()
	}
	return nil
}
