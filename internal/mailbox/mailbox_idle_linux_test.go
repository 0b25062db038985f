package mailbox

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func cpuTime(t *testing.T) time.Duration {
	t.Helper()
	var ru syscall.Rusage
	require.NoError(t, syscall.Getrusage(syscall.RUSAGE_SELF, &ru))
	return time.Duration(ru.Utime.Nano() + ru.Stime.Nano())
}

func TestQueue_idle_get_does_not_spin(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind.String(), func(t *testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			const waiters = 4
			done := make(chan struct{}, waiters)
			for i := 0; i < waiters; i++ {
				q := New[int](Config{Kind: kind})
				go func() {
					_, _ = q.Get(ctx)
					done <- struct{}{}
				}()
			}

			time.Sleep(20 * time.Millisecond)
			before := cpuTime(t)
			time.Sleep(300 * time.Millisecond)
			used := cpuTime(t) - before

			// a spinning waiter alone would burn most of the window
			require.Less(t, used, 100*time.Millisecond)

			cancel()
			for i := 0; i < waiters; i++ {
				select {
				case <-done:
				case <-time.After(time.Second):
					t.Fatal("Get ignored cancellation")
				}
			}
		})
	}
}
