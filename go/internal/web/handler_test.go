package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/johnnyknox/leaderboard/go/internal/countdown"
	"github.com/johnnyknox/leaderboard/go/internal/leaderboard"
	"github.com/johnnyknox/leaderboard/go/internal/models"
	"github.com/johnnyknox/leaderboard/go/internal/poller"
	"github.com/shopspring/decimal"
)

type staticStats struct{}

func (staticStats) Stats() poller.Stats { return poller.Stats{Cycles: 3, Running: true} }

func newTestHandler(store *leaderboard.Store) *Handler {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC))
	return NewHandler(store, staticStats{}, clock, Config{
		Period:          models.WagerPeriodThisWeek,
		Schedule:        countdown.DefaultSchedule(),
		Branding:        DefaultBranding(),
		RefreshInterval: 5 * time.Second,
	})
}

func sampleBoard() *models.Board {
	return &models.Board{
		ID:     uuid.New(),
		Period: models.WagerPeriodThisWeek,
		Entries: []models.RankedEntry{
			{Place: 1, UID: "1", MaskedName: "NOT***AM", WagerAmount: decimal.RequireFromString("1234.5"), Prize: decimal.NewFromInt(100)},
			{Place: 2, UID: "2", MaskedName: "Bob", WagerAmount: decimal.RequireFromString("10"), Prize: decimal.NewFromInt(90)},
		},
	}
}

func TestHandlePageRendersTable(t *testing.T) {
	store := leaderboard.NewStore()
	store.Apply(1, sampleBoard(), nil)

	rec := httptest.NewRecorder()
	newTestHandler(store).HandlePage(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"Johnny Knox",
		"$400 Weekly",
		"Goated Leaderboard",
		"Next Payout In:",
		"1d 11h 59m 0s",
		"NOT***AM",
		"$1,234.50",
		"$100",
		`content="5"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHandlePageTicksCountdown(t *testing.T) {
	store := leaderboard.NewStore()
	store.Apply(1, sampleBoard(), nil)

	rec := httptest.NewRecorder()
	newTestHandler(store).HandlePage(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`id="countdown"`,
		`data-payout="2025-01-05T23:59:00Z"`,
		`data-weekday="0"`,
		`data-hour="23"`,
		`data-minute="59"`,
		`data-rollover="next_week"`,
		`"0h 0m 0s"`,
		"setInterval(tick, 1000)",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestHandlePageStates(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*leaderboard.Store)
		want  string
	}{
		{name: "loading", setup: func(*leaderboard.Store) {}, want: "Loading..."},
		{name: "error", setup: func(s *leaderboard.Store) { s.Apply(1, nil, errors.New("x")) }, want: leaderboard.UserErrorMessage},
		{name: "empty", setup: func(s *leaderboard.Store) { s.Apply(1, &models.Board{}, nil) }, want: "No players qualified this week."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := leaderboard.NewStore()
			tt.setup(store)

			rec := httptest.NewRecorder()
			newTestHandler(store).HandlePage(rec, httptest.NewRequest(http.MethodGet, "/leaderboard", nil))

			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("page missing %q", tt.want)
			}
		})
	}
}

func TestHandleRanked(t *testing.T) {
	store := leaderboard.NewStore()
	store.Apply(1, sampleBoard(), nil)

	rec := httptest.NewRecorder()
	newTestHandler(store).HandleRanked(rec, httptest.NewRequest(http.MethodGet, "/api/leaderboard/ranked", nil))

	var resp RankedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if len(resp.Rows) != 2 || resp.Rows[0].Wager != "$1,234.50" || resp.Rows[1].Prize != "$90" {
		t.Errorf("unexpected rows: %+v", resp.Rows)
	}
	if resp.Countdown != "1d 11h 59m 0s" {
		t.Errorf("countdown = %q", resp.Countdown)
	}
	if !resp.PayoutAt.Equal(time.Date(2025, 1, 5, 23, 59, 0, 0, time.UTC)) {
		t.Errorf("payout_at = %v", resp.PayoutAt)
	}
}

func TestHandleInfo(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestHandler(leaderboard.NewStore()).HandleInfo(rec, httptest.NewRequest(http.MethodGet, "/info", nil))

	if !strings.Contains(rec.Body.String(), `"cycles":3`) {
		t.Errorf("info missing poller stats: %s", rec.Body.String())
	}
}
