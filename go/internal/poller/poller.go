package poller

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/johnnyknox/leaderboard/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Refresher produces a fresh board per call
type Refresher interface {
	Refresh(ctx context.Context) (*models.Board, error)
}

// Sink receives the outcome of each fetch cycle, tagged with its sequence number
type Sink interface {
	Apply(seq uint64, board *models.Board, err error) bool
}

// Stats reports what the task has done so far
type Stats struct {
	Cycles      uint64    `json:"cycles"`
	Failures    uint64    `json:"failures"`
	Dropped     uint64    `json:"dropped"`
	Skipped     uint64    `json:"skipped"`
	LastSuccess time.Time `json:"last_success,omitempty"`
	Running     bool      `json:"running"`
	InFlight    bool      `json:"in_flight"`
}

// Task refreshes the leaderboard on start and then every interval.
// An interval of zero fetches exactly once. Only one scheduled fetch is in
// flight at a time: a tick that fires while the previous fetch is still
// running is skipped. Stop cancels the running fetch and nothing is delivered
// to the sink afterwards.
type Task struct {
	refresher Refresher
	sink      Sink
	clock     clockwork.Clock
	interval  time.Duration

	seq     atomic.Uint64
	stopped atomic.Bool

	mu          sync.Mutex
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	busy        bool
	cycles      uint64
	failures    uint64
	dropped     uint64
	skipped     uint64
	lastSuccess time.Time
}

// NewTask creates a stopped polling task
func NewTask(refresher Refresher, sink Sink, clock clockwork.Clock, interval time.Duration) *Task {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Task{
		refresher: refresher,
		sink:      sink,
		clock:     clock,
		interval:  interval,
	}
}

// Start kicks off the first fetch immediately. Calling Start on a running
// task is a no-op.
func (t *Task) Start(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.stopped.Store(false)

	log.Info().Dur("interval", t.interval).Msg("leaderboard poller started")

	t.launchCycleLocked(ctx)

	if t.interval <= 0 {
		return
	}

	ticker := t.clock.NewTicker(t.interval)
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				t.mu.Lock()
				if ctx.Err() == nil {
					t.launchCycleLocked(ctx)
				}
				t.mu.Unlock()
			}
		}
	}()
}

// Stop cancels any in-flight fetch and waits for the task's goroutines
func (t *Task) Stop() {
	t.stopped.Store(true)

	t.mu.Lock()
	if t.cancel == nil {
		t.mu.Unlock()
		return
	}
	t.cancel()
	t.cancel = nil
	t.mu.Unlock()

	t.wg.Wait()
	log.Info().Msg("leaderboard poller stopped")
}

// RefreshNow runs one cycle synchronously, outside the schedule
func (t *Task) RefreshNow(ctx context.Context) error {
	seq := t.seq.Add(1)
	return t.runCycle(ctx, seq, uuid.New())
}

// Stats returns a copy of the task counters
func (t *Task) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return Stats{
		Cycles:      t.cycles,
		Failures:    t.failures,
		Dropped:     t.dropped,
		Skipped:     t.skipped,
		LastSuccess: t.lastSuccess,
		Running:     t.cancel != nil,
		InFlight:    t.busy,
	}
}

// launchCycleLocked starts a fetch unless one is already running.
// t.mu must be held.
func (t *Task) launchCycleLocked(ctx context.Context) {
	if t.busy {
		t.skipped++
		log.Debug().Msg("previous fetch still running, skipping tick")
		return
	}

	t.busy = true
	seq := t.seq.Add(1)
	cycleID := uuid.New()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		defer func() {
			t.mu.Lock()
			t.busy = false
			t.mu.Unlock()
		}()
		t.runCycle(ctx, seq, cycleID)
	}()
}

func (t *Task) runCycle(ctx context.Context, seq uint64, cycleID uuid.UUID) error {
	start := t.clock.Now()
	board, err := t.refresher.Refresh(ctx)

	logger := log.With().
		Str("cycle_id", cycleID.String()).
		Uint64("seq", seq).
		Dur("duration", t.clock.Since(start)).
		Logger()

	if t.stopped.Load() || ctx.Err() != nil {
		t.recordDrop()
		logger.Debug().Msg("discarding result of cancelled fetch cycle")
		return context.Canceled
	}

	t.mu.Lock()
	t.cycles++
	if err != nil {
		t.failures++
	} else {
		t.lastSuccess = t.clock.Now()
	}
	t.mu.Unlock()

	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch leaderboard")
	}

	if !t.sink.Apply(seq, board, err) {
		t.recordDrop()
		logger.Debug().Msg("stale fetch cycle dropped")
	}

	return err
}

func (t *Task) recordDrop() {
	t.mu.Lock()
	t.dropped++
	t.mu.Unlock()
}
