package leaderboard

import (
	"testing"

	"github.com/johnnyknox/leaderboard/go/internal/models"
	"github.com/shopspring/decimal"
)

func player(uid, name string, week, month float64) models.Player {
	return models.Player{
		UID:  uid,
		Name: name,
		Wagered: models.Wagered{
			ThisWeek:  decimal.NewFromFloat(week),
			ThisMonth: decimal.NewFromFloat(month),
		},
	}
}

func TestRankOrdersFiltersAndTruncates(t *testing.T) {
	players := []models.Player{
		player("1", "alpha", 10, 0),
		player("2", "bravo", 0, 500),
		player("3", "charlie", 300, 0),
		player("4", "delta", -5, 0),
		player("5", "echo", 50, 0),
		player("6", "foxtrot", 70, 0),
		player("7", "golf", 80, 0),
		player("8", "hotel", 90, 0),
		player("9", "india", 60, 0),
		player("10", "juliet", 20, 0),
	}

	entries := Rank(players, DefaultPolicy())

	if len(entries) != DefaultLimit {
		t.Fatalf("got %d entries, want %d", len(entries), DefaultLimit)
	}

	wantUIDs := []string{"3", "8", "7", "6", "9", "5", "10"}
	for i, e := range entries {
		if e.UID != wantUIDs[i] {
			t.Errorf("place %d: got uid %s, want %s", i+1, e.UID, wantUIDs[i])
		}
		if e.Place != i+1 {
			t.Errorf("entry %d: place = %d", i, e.Place)
		}
		if !e.WagerAmount.IsPositive() {
			t.Errorf("entry %d has non-positive wager %s", i, e.WagerAmount)
		}
		if i > 0 && e.WagerAmount.GreaterThan(entries[i-1].WagerAmount) {
			t.Errorf("entry %d out of order", i)
		}
	}
}

func TestRankAssignsPrizeTable(t *testing.T) {
	var players []models.Player
	for i := 0; i < 9; i++ {
		players = append(players, player(string(rune('a'+i)), "player", float64(100-i), 0))
	}

	entries := Rank(players, DefaultPolicy())
	want := []int64{100, 90, 60, 50, 40, 20, 10}
	for i, e := range entries {
		if !e.Prize.Equal(decimal.NewFromInt(want[i])) {
			t.Errorf("place %d prize = %s, want %d", e.Place, e.Prize, want[i])
		}
	}
}

func TestRankByMonth(t *testing.T) {
	players := []models.Player{
		player("1", "alpha", 10, 5),
		player("2", "bravo", 0, 500),
	}
	policy := DefaultPolicy()
	policy.Period = models.WagerPeriodThisMonth

	entries := Rank(players, policy)
	if len(entries) != 2 || entries[0].UID != "2" {
		t.Fatalf("unexpected monthly ranking: %+v", entries)
	}
}

func TestRankTiesKeepUpstreamOrder(t *testing.T) {
	players := []models.Player{
		player("first", "x", 10, 0),
		player("second", "y", 10, 0),
	}
	entries := Rank(players, DefaultPolicy())
	if entries[0].UID != "first" || entries[1].UID != "second" {
		t.Errorf("tie order changed: %s, %s", entries[0].UID, entries[1].UID)
	}
}

func TestRankEmpty(t *testing.T) {
	if entries := Rank(nil, DefaultPolicy()); len(entries) != 0 {
		t.Errorf("expected no entries, got %d", len(entries))
	}
}

func TestPrizeFor(t *testing.T) {
	prizes := NewPrizeTable(DefaultPrizes)
	if got := PrizeFor(prizes, 0); !got.Equal(decimal.NewFromInt(100)) {
		t.Errorf("rank 0 prize = %s", got)
	}
	if got := PrizeFor(prizes, 6); !got.Equal(decimal.NewFromInt(10)) {
		t.Errorf("rank 6 prize = %s", got)
	}
	if got := PrizeFor(prizes, 7); !got.IsZero() {
		t.Errorf("rank 7 prize = %s, want 0", got)
	}
	if got := PrizeFor(prizes, -1); !got.IsZero() {
		t.Errorf("rank -1 prize = %s, want 0", got)
	}
}

func TestPolicyValidate(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}

	bad := DefaultPolicy()
	bad.Period = "yesterday"
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown period")
	}

	bad = DefaultPolicy()
	bad.Limit = 0
	if err := bad.Validate(); err == nil {
		t.Error("expected error for zero limit")
	}

	bad = DefaultPolicy()
	bad.Prizes = nil
	if err := bad.Validate(); err == nil {
		t.Error("expected error for empty prize table")
	}
}
