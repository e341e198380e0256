package engine

import (
	"context"
	"fmt"
	"time"
)

// Observer consumes snapshots produced by Run. Implementations own their own
// failures; nothing they do can stop or corrupt the simulation.
type Observer interface {
	Observe(s Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// Observe calls f(s).
func (f ObserverFunc) Observe(s Snapshot) { f(s) }

// Run ticks the current episode every TickInterval until it ends or ctx is
// cancelled. Cancellation is checked before each tick, so a tick is either
// resolved completely or not started. Run returns nil when the episode reaches
// Won or Lost and ctx.Err() when cancelled.
func (c *Controller) Run(ctx context.Context, obs Observer) error {
	if st := c.Status(); st != StatusRunning {
		return fmt.Errorf("engine: run in status %s: %w", st, ErrInvalidState)
	}

	interval := c.cfg.TickInterval
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		snap, err := c.Tick()
		if err != nil {
			return err
		}
		if obs != nil {
			obs.Observe(snap)
		}
		if snap.Terminal() {
			return nil
		}
	}
}
