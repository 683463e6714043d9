package web

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/johnnyknox/leaderboard/go/internal/countdown"
	"github.com/johnnyknox/leaderboard/go/internal/leaderboard"
	"github.com/johnnyknox/leaderboard/go/internal/models"
	"github.com/johnnyknox/leaderboard/go/internal/poller"
	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/leaderboard.html"))

// StatsProvider reports poller counters for /info
type StatsProvider interface {
	Stats() poller.Stats
}

// Config holds what the handler needs besides the store
type Config struct {
	Period          models.WagerPeriod
	Schedule        countdown.Schedule
	Branding        Branding
	RefreshInterval time.Duration
}

// RankedResponse is the JSON form of the current leaderboard
type RankedResponse struct {
	Loading   bool          `json:"loading"`
	Error     string        `json:"error,omitempty"`
	Board     *models.Board `json:"board,omitempty"`
	Rows      []Row         `json:"rows"`
	Countdown string        `json:"countdown"`
	PayoutAt  time.Time     `json:"payout_at"`
}

// Handler serves the rendered leaderboard
type Handler struct {
	store  *leaderboard.Store
	stats  StatsProvider
	clock  clockwork.Clock
	config Config
}

// NewHandler creates a new web handler
func NewHandler(store *leaderboard.Store, stats StatsProvider, clock clockwork.Clock, config Config) *Handler {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Handler{
		store:  store,
		stats:  stats,
		clock:  clock,
		config: config,
	}
}

// HandlePage handles GET /leaderboard
func (h *Handler) HandlePage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data := BuildPageData(h.store.Snapshot(), h.config.Period, h.config.Schedule, h.config.Branding, h.clock.Now())
	data.RefreshSeconds = int(h.config.RefreshInterval / time.Second)

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		log.Error().Err(err).Msg("failed to render leaderboard page")
		http.Error(w, "Failed to render leaderboard", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := buf.WriteTo(w); err != nil {
		log.Error().Err(err).Msg("failed to write leaderboard page")
	}
}

// HandleRanked handles GET /api/leaderboard/ranked
func (h *Handler) HandleRanked(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	view := h.store.Snapshot()
	now := h.clock.Now()
	resp := RankedResponse{
		Loading:   view.Loading,
		Error:     view.Error,
		Board:     view.Board,
		Rows:      []Row{},
		Countdown: countdown.Format(h.config.Schedule.Remaining(now)),
		PayoutAt:  h.config.Schedule.NextPayout(now),
	}
	if view.Board != nil {
		resp.Rows = BuildRows(view.Board.Entries)
	}

	writeJSON(w, resp)
}

// HandleInfo handles GET /info
func (h *Handler) HandleInfo(w http.ResponseWriter, r *http.Request) {
	info := map[string]interface{}{
		"service": "leaderboard",
		"period":  h.config.Period,
	}
	if h.stats != nil {
		info["poller"] = h.stats.Stats()
	}
	writeJSON(w, info)
}

// RegisterRoutes registers the page and JSON routes
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/leaderboard", h.HandlePage)
	mux.HandleFunc("/api/leaderboard/ranked", h.HandleRanked)
	mux.HandleFunc("/info", h.HandleInfo)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
