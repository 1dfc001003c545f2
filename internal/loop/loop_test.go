package loop

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestInterval(t *testing.T) {
	d, err := Interval(60)
	if err != nil {
		t.Fatalf("Interval(60) failed: %v", err)
	}
	if d != time.Second/60 {
		t.Errorf("Interval(60) = %v, expected %v", d, time.Second/60)
	}

	for _, fps := range []int{0, -5} {
		if _, err := Interval(fps); !errors.Is(err, ErrInvalidRate) {
			t.Errorf("Interval(%d) error = %v, expected ErrInvalidRate", fps, err)
		}
	}
}

func TestRunStopsWhenStepReturnsFalse(t *testing.T) {
	var seen []uint64
	err := Run(context.Background(), 60, Immediate, func(tick uint64) bool {
		seen = append(seen, tick)
		return tick < 9
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(seen) != 10 {
		t.Fatalf("step called %d times, expected 10", len(seen))
	}
	for i, tick := range seen {
		if tick != uint64(i) {
			t.Errorf("tick %d reported as %d", i, tick)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	err := Run(ctx, 60, Immediate, func(tick uint64) bool {
		calls++
		if calls == 3 {
			cancel()
		}
		return true
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, expected context.Canceled", err)
	}
	if calls != 3 {
		t.Errorf("step called %d times after cancel, expected 3", calls)
	}
}

func TestRunInvalidRate(t *testing.T) {
	called := false
	err := Run(context.Background(), 0, Immediate, func(uint64) bool {
		called = true
		return false
	})
	if !errors.Is(err, ErrInvalidRate) {
		t.Errorf("Run() error = %v, expected ErrInvalidRate", err)
	}
	if called {
		t.Error("step must not run with an invalid rate")
	}
}

type manualTicker struct {
	ch      chan time.Time
	stopped bool
	period  time.Duration
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               { m.stopped = true }

func TestRunUsesIntervalAndStopsTicker(t *testing.T) {
	mt := &manualTicker{ch: make(chan time.Time, 3)}
	for i := 0; i < 3; i++ {
		mt.ch <- time.Time{}
	}

	factory := func(d time.Duration) Ticker {
		mt.period = d
		return mt
	}

	ticks := 0
	err := Run(context.Background(), 50, factory, func(uint64) bool {
		ticks++
		return ticks < 3
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if mt.period != 20*time.Millisecond {
		t.Errorf("ticker period = %v, expected 20ms", mt.period)
	}
	if !mt.stopped {
		t.Error("ticker should be stopped when the loop exits")
	}
}

func TestRunRealTime(t *testing.T) {
	start := time.Now()
	err := Run(context.Background(), 200, RealTime, func(tick uint64) bool {
		return tick < 4
	})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	// Five ticks at 5ms each
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("real-time loop finished too fast: %v", elapsed)
	}
}
