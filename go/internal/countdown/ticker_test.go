package countdown

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func waitTick(t *testing.T, ch <-chan string) string {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for tick")
		return ""
	}
}

func TestTickerEmitsImmediatelyAndEverySecond(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 5, 23, 58, 58, 0, time.UTC))
	s := DefaultSchedule()
	s.Rollover = RolloverSameDay

	ticks := make(chan string, 10)
	ticker := NewTicker(s, clock, func(v string) { ticks <- v })

	ticker.Start(context.Background())
	defer ticker.Stop()

	if got := waitTick(t, ticks); got != "0h 0m 2s" {
		t.Errorf("first tick = %q", got)
	}

	clock.Advance(time.Second)
	if got := waitTick(t, ticks); got != "0h 0m 1s" {
		t.Errorf("second tick = %q", got)
	}

	clock.Advance(time.Second)
	if got := waitTick(t, ticks); got != "0h 0m 0s" {
		t.Errorf("third tick = %q", got)
	}

	clock.Advance(time.Second)
	if got := waitTick(t, ticks); got != "0h 0m 0s" {
		t.Errorf("tick after payout = %q, want clamp", got)
	}
}

func TestTickerStop(t *testing.T) {
	clock := clockwork.NewFakeClock()
	ticks := make(chan string, 10)
	ticker := NewTicker(DefaultSchedule(), clock, func(v string) { ticks <- v })

	ticker.Start(context.Background())
	waitTick(t, ticks)
	ticker.Stop()

	clock.Advance(5 * time.Second)
	select {
	case v := <-ticks:
		t.Errorf("tick after Stop: %q", v)
	case <-time.After(50 * time.Millisecond):
	}

	// Stop is idempotent
	ticker.Stop()
}
