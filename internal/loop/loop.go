// Package loop provides a fixed-rate tick scheduler that is independent of
// any UI framework. Tick N always completes before tick N+1 starts.
package loop

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRate is returned for a non-positive tick rate.
var ErrInvalidRate = errors.New("loop: tick rate must be positive")

// Ticker delivers tick times. RealTime adapts *time.Ticker to it.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates a ticker for the given interval.
type TickerFactory func(d time.Duration) Ticker

type stdTicker struct {
	t *time.Ticker
}

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

// RealTime ticks on the wall clock.
func RealTime(d time.Duration) Ticker {
	return stdTicker{t: time.NewTicker(d)}
}

// Immediate ticks as fast as the consumer can read, ignoring the interval.
// Used for headless runs that only care about the result.
func Immediate(time.Duration) Ticker {
	ch := make(chan time.Time)
	close(ch)
	return closedTicker{ch: ch}
}

type closedTicker struct {
	ch chan time.Time
}

func (c closedTicker) C() <-chan time.Time { return c.ch }
func (c closedTicker) Stop()               {}

// Interval returns the duration of one tick at the given rate.
func Interval(fps int) (time.Duration, error) {
	if fps <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRate, fps)
	}
	return time.Second / time.Duration(fps), nil
}

// StepFunc runs one tick. Returning false stops the loop.
type StepFunc func(tick uint64) bool

// Run calls step once per tick until step returns false or ctx is done.
// It returns ctx.Err() if the context ended the loop and nil otherwise.
func Run(ctx context.Context, fps int, newTicker TickerFactory, step StepFunc) error {
	interval, err := Interval(fps)
	if err != nil {
		return err
	}
	if newTicker == nil {
		newTicker = RealTime
	}

	ticker := newTicker(interval)
	defer ticker.Stop()

	var tick uint64
	for {
		// Cancellation wins over a ready tick
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C():
			if !step(tick) {
				return nil
			}
			tick++
		}
	}
}
