package actor

import "context"

type distributorKey struct{}

// WithDistributor returns a copy of ctx carrying d. Send, Spawn and
// FromContext called with the result resolve to d.
func WithDistributor(ctx context.Context, d *Distributor) context.Context {
	return context.WithValue(ctx, distributorKey{}, d)
}

// FromContext returns the distributor carried by ctx, if any.
func FromContext(ctx context.Context) (*Distributor, bool) {
	if ctx == nil {
		return nil, false
	}
	d, ok := ctx.Value(distributorKey{}).(*Distributor)
	return d, ok && d != nil
}

// resolve is FromContext for the exported entry points; a miss is reported at
// the line that called the entry point.
func resolve(ctx context.Context) (*Distributor, error) {
	d, ok := FromContext(ctx)
	if !ok {
		return nil, errAt(2, ErrNoDistributor)
	}
	return d, nil
}
