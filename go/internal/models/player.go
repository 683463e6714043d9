package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// WagerPeriod selects which cumulative wager figure a leaderboard ranks by
type WagerPeriod string

const (
	WagerPeriodToday     WagerPeriod = "today"
	WagerPeriodThisWeek  WagerPeriod = "this_week"
	WagerPeriodThisMonth WagerPeriod = "this_month"
	WagerPeriodAllTime   WagerPeriod = "all_time"
)

// ParseWagerPeriod validates a configured period name
func ParseWagerPeriod(s string) (WagerPeriod, error) {
	switch p := WagerPeriod(s); p {
	case WagerPeriodToday, WagerPeriodThisWeek, WagerPeriodThisMonth, WagerPeriodAllTime:
		return p, nil
	default:
		return "", fmt.Errorf("unknown wager period %q", s)
	}
}

// Wagered holds cumulative bet volume per period as reported upstream
type Wagered struct {
	Today     decimal.Decimal `json:"today"`
	ThisWeek  decimal.Decimal `json:"this_week"`
	ThisMonth decimal.Decimal `json:"this_month"`
	AllTime   decimal.Decimal `json:"all_time"`
}

// For returns the wager amount for a period. Unknown periods yield zero.
func (w Wagered) For(period WagerPeriod) decimal.Decimal {
	switch period {
	case WagerPeriodToday:
		return w.Today
	case WagerPeriodThisWeek:
		return w.ThisWeek
	case WagerPeriodThisMonth:
		return w.ThisMonth
	case WagerPeriodAllTime:
		return w.AllTime
	default:
		return decimal.Zero
	}
}

// Player is a referred player as supplied by the affiliate provider.
// It is read-only and lives for a single fetch.
type Player struct {
	UID     string  `json:"uid"`
	Name    string  `json:"name"`
	Wagered Wagered `json:"wagered"`
}
