package prometheus

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedisam/typactor/actor"
	"github.com/hedisam/typactor/metrics"
)

type echo struct{}

func (echo) Start(ctx context.Context, replies actor.Sender[int], requests actor.Receiver[int]) {
	for {
		n, err := requests.Receive(ctx)
		if err != nil {
			return
		}
		if err := replies.Send(n + 1); err != nil {
			return
		}
	}
}

func gatherNames(t *testing.T, reg *prometheus.Registry) map[string]bool {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}
	return names
}

func TestNewDistributorMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDistributorMetrics(reg)
	require.NotNil(t, m)

	timer := m.DispatchDuration("echo")
	assert.NotNil(t, timer)
	timer.ObserveDuration()

	m.Dispatched("echo", metrics.OutcomeOK)
	m.Dispatched("echo", metrics.OutcomeNotFound)
	m.ActorsRunning(1)
	m.ActorExited("echo", "normal")
	m.MailboxDepth("echo", 3)

	names := gatherNames(t, reg)
	assert.True(t, names["typactor_dispatch_duration_seconds"])
	assert.True(t, names["typactor_dispatch_total"])
	assert.True(t, names["typactor_actors"])
	assert.True(t, names["typactor_actor_exits_total"])
	assert.True(t, names["typactor_mailbox_depth"])
}

func TestNewDistributorMetrics_duplicate_registration_panics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewDistributorMetrics(reg)
	require.Panics(t, func() { NewDistributorMetrics(reg) })
}

func TestDistributorMetrics_wired(t *testing.T) {
	reg := prometheus.NewRegistry()
	d, err := actor.New(context.Background(), actor.NewOptions().SetMetrics(NewDistributorMetrics(reg)))
	require.NoError(t, err)
	require.NoError(t, actor.Register[int, int](d, echo{}))

	ctx, cancel := context.WithTimeout(d.Context(), 5*time.Second)
	defer cancel()
	for i := 0; i < 3; i++ {
		_, err := actor.Send[echo, int](ctx, actor.NewMessage(i))
		require.NoError(t, err)
	}

	d.Close()
	d.Wait()

	mfs, err := reg.Gather()
	require.NoError(t, err)

	var dispatched, exits float64
	for _, mf := range mfs {
		switch mf.GetName() {
		case "typactor_dispatch_total":
			for _, metric := range mf.GetMetric() {
				dispatched += metric.GetCounter().GetValue()
			}
		case "typactor_actor_exits_total":
			for _, metric := range mf.GetMetric() {
				exits += metric.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, float64(3), dispatched)
	assert.Equal(t, float64(1), exits)
}
