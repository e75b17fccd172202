package gateway

import (
	"context"
	"time"
)

// Gateway stands in for the remote backend this storefront does not have.
// Call blocks for the given duration and reports whether the "request"
// survived; the real backend would live behind this interface.
type Gateway interface {
	Call(ctx context.Context, d time.Duration) error
}

// Network simulates a remote round trip by sleeping.
type Network struct{}

func (Network) Call(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Immediate completes calls without waiting. Used in tests.
type Immediate struct{}

func (Immediate) Call(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
