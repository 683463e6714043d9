package leaderboard

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/johnnyknox/leaderboard/go/internal/models"
	"github.com/rs/zerolog/log"
)

// ErrFetchFailed wraps every failure to produce a board
var ErrFetchFailed = errors.New("leaderboard fetch failed")

// UserErrorMessage is what the view shows when a fetch cycle fails
const UserErrorMessage = "Failed to load leaderboard. Please try again later."

// App handles leaderboard business logic
type App struct {
	source Source
	policy Policy
	clock  clockwork.Clock
}

// NewApp creates a new leaderboard App
func NewApp(source Source, policy Policy, clock clockwork.Clock) *App {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &App{
		source: source,
		policy: policy,
		clock:  clock,
	}
}

// Policy returns the ranking policy in use
func (a *App) Policy() Policy {
	return a.policy
}

// Refresh fetches the player list and ranks it into a fresh board
func (a *App) Refresh(ctx context.Context) (*models.Board, error) {
	start := a.clock.Now()

	players, err := a.source.FetchPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}

	board := &models.Board{
		ID:        uuid.New(),
		Period:    a.policy.Period,
		Entries:   Rank(players, a.policy),
		FetchedAt: a.clock.Now().UTC(),
	}

	log.Debug().
		Str("board_id", board.ID.String()).
		Int("players", len(players)).
		Int("ranked", len(board.Entries)).
		Dur("duration", a.clock.Since(start).Round(time.Millisecond)).
		Msg("leaderboard refreshed")

	return board, nil
}
