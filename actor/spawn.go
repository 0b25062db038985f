package actor

import "context"

// Spawn runs task on a new goroutine that inherits the distributor carried by
// ctx. The task receives the distributor's context, not ctx itself, so it
// outlives the caller and ends with the distributor.
//
// It fails with ErrNoDistributor if ctx carries none.
func Spawn(ctx context.Context, task func(ctx context.Context)) error {
	d, err := resolve(ctx)
	if err != nil {
		return err
	}
	return d.Spawn(task)
}
