package leaderboard

import (
	"sync"

	"github.com/johnnyknox/leaderboard/go/internal/models"
)

// View is what a renderer needs to draw the leaderboard
type View struct {
	Loading bool
	Board   *models.Board
	Error   string
}

// Store holds the board from the most recent fetch cycle. Results are
// tagged with the cycle sequence number; anything older than what is
// already applied is dropped.
type Store struct {
	mu     sync.RWMutex
	seq    uint64
	loaded bool
	board  *models.Board
	errMsg string
}

// NewStore creates an empty store in the loading state
func NewStore() *Store {
	return &Store{}
}

// Apply records the outcome of fetch cycle seq and reports whether it was
// kept. A failed cycle replaces the board with the error message.
func (s *Store) Apply(seq uint64, board *models.Board, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.seq {
		return false
	}

	s.seq = seq
	s.loaded = true
	if err != nil {
		s.board = nil
		s.errMsg = UserErrorMessage
		return true
	}

	s.board = board
	s.errMsg = ""
	return true
}

// Snapshot returns the current view state
func (s *Store) Snapshot() View {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return View{
		Loading: !s.loaded,
		Board:   s.board,
		Error:   s.errMsg,
	}
}
