package sim

import (
	"context"
	"time"
)

// Clock is the per-tick pacing dependency. The real clock sleeps one
// wall-clock interval; tests substitute an immediate clock.
type Clock interface {
	Wait(ctx context.Context) error
}

// IntervalClock waits a fixed interval per tick (1s when unset).
type IntervalClock struct {
	Interval time.Duration
}

func (c IntervalClock) Wait(ctx context.Context) error {
	d := c.Interval
	if d <= 0 {
		d = time.Second
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
