// Package prometheus implements metrics.DistributorMetrics with Prometheus collectors.
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/typactor/metrics"
)

// Default histogram buckets for dispatch latency (in seconds).
var defaultBuckets = []float64{
	.0001, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5,
}

type timer struct {
	h     prometheus.Observer
	start time.Time
}

func newTimer(h prometheus.Observer) metrics.Timer {
	return &timer{h: h, start: time.Now()}
}

func (t *timer) ObserveDuration() {
	t.h.Observe(time.Since(t.start).Seconds())
}

type distributorMetrics struct {
	dispatchDuration *prometheus.HistogramVec
	dispatchTotal    *prometheus.CounterVec
	actors           prometheus.Gauge
	exitsTotal       *prometheus.CounterVec
	mailboxDepth     *prometheus.GaugeVec
}

// NewDistributorMetrics creates the collectors and registers them with reg.
// It panics if reg already holds collectors with the same names.
func NewDistributorMetrics(reg prometheus.Registerer) metrics.DistributorMetrics {
	m := &distributorMetrics{
		dispatchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "typactor_dispatch_duration_seconds",
			Help:    "Round trip time of a dispatch in seconds",
			Buckets: defaultBuckets,
		}, []string{"actor"}),

		dispatchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "typactor_dispatch_total",
			Help: "Total number of dispatches by outcome",
		}, []string{"actor", "outcome"}),

		actors: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "typactor_actors",
			Help: "Number of running actor goroutines",
		}),

		exitsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "typactor_actor_exits_total",
			Help: "Total number of actor exits by reason",
		}, []string{"actor", "reason"}),

		mailboxDepth: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "typactor_mailbox_depth",
			Help: "Request queue depth observed at dispatch",
		}, []string{"actor"}),
	}

	reg.MustRegister(
		m.dispatchDuration,
		m.dispatchTotal,
		m.actors,
		m.exitsTotal,
		m.mailboxDepth,
	)

	return m
}

func (m *distributorMetrics) DispatchDuration(key string) metrics.Timer {
	return newTimer(m.dispatchDuration.WithLabelValues(key))
}

func (m *distributorMetrics) Dispatched(key string, outcome metrics.Outcome) {
	m.dispatchTotal.WithLabelValues(key, string(outcome)).Inc()
}

func (m *distributorMetrics) ActorsRunning(delta int) {
	m.actors.Add(float64(delta))
}

func (m *distributorMetrics) ActorExited(key string, reason string) {
	m.exitsTotal.WithLabelValues(key, reason).Inc()
}

func (m *distributorMetrics) MailboxDepth(key string, depth int) {
	m.mailboxDepth.WithLabelValues(key).Set(float64(depth))
}

var _ metrics.DistributorMetrics = (*distributorMetrics)(nil)
