package countdown

import (
	"context"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// TickInterval is how often the displayed countdown is recomputed
const TickInterval = time.Second

// Ticker recomputes the countdown once a second and hands the formatted
// value to a callback until stopped.
type Ticker struct {
	schedule Schedule
	clock    clockwork.Clock
	onTick   func(string)

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewTicker creates a stopped countdown ticker
func NewTicker(schedule Schedule, clock clockwork.Clock, onTick func(string)) *Ticker {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Ticker{
		schedule: schedule,
		clock:    clock,
		onTick:   onTick,
	}
}

// Current returns the formatted remaining time right now
func (t *Ticker) Current() string {
	return Format(t.schedule.Remaining(t.clock.Now()))
}

// Start emits the current value immediately and then once per tick.
// Calling Start on a running ticker is a no-op.
func (t *Ticker) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})

	t.onTick(t.Current())

	ticker := t.clock.NewTicker(TickInterval)
	go func(done chan struct{}) {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Debug().Msg("countdown ticker stopped")
				return
			case <-ticker.Chan():
				t.onTick(t.Current())
			}
		}
	}(t.done)
}

// Stop cancels the ticker and waits for its goroutine to exit
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel == nil {
		return
	}

	t.cancel()
	<-t.done
	t.cancel = nil
	t.done = nil
}
