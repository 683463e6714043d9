package web

import (
	"time"

	"github.com/johnnyknox/leaderboard/go/internal/countdown"
	"github.com/johnnyknox/leaderboard/go/internal/leaderboard"
	"github.com/johnnyknox/leaderboard/go/internal/models"
)

// Branding is the fixed promotional copy around the table
type Branding struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Heading  string `yaml:"heading" json:"heading"`
}

// DefaultBranding returns the copy used for the weekly race
func DefaultBranding() Branding {
	return Branding{
		Title:    "Johnny Knox",
		Subtitle: "$400 Weekly",
		Heading:  "Goated Leaderboard",
	}
}

// Row is one formatted table row
type Row struct {
	Place int    `json:"place"`
	User  string `json:"user"`
	Wager string `json:"wager"`
	Prize string `json:"prize"`
}

// PageData feeds the leaderboard template
type PageData struct {
	Branding       Branding
	Countdown      string
	PayoutAt       time.Time
	Schedule       countdown.Schedule
	Loading        bool
	Error          string
	Rows           []Row
	PeriodLabel    string
	RefreshSeconds int
}

// BuildRows formats ranked entries for display
func BuildRows(entries []models.RankedEntry) []Row {
	rows := make([]Row, len(entries))
	for i, e := range entries {
		rows[i] = Row{
			Place: e.Place,
			User:  e.MaskedName,
			Wager: leaderboard.FormatWager(e.WagerAmount),
			Prize: leaderboard.FormatPrize(e.Prize),
		}
	}
	return rows
}

// PeriodLabel is the phrase used in the empty-state message
func PeriodLabel(period models.WagerPeriod) string {
	switch period {
	case models.WagerPeriodToday:
		return "today"
	case models.WagerPeriodThisMonth:
		return "this month"
	case models.WagerPeriodAllTime:
		return "yet"
	default:
		return "this week"
	}
}

// BuildPageData combines the latest view state with the countdown at now
func BuildPageData(view leaderboard.View, period models.WagerPeriod, schedule countdown.Schedule, branding Branding, now time.Time) PageData {
	data := PageData{
		Branding:    branding,
		Countdown:   countdown.Format(schedule.Remaining(now)),
		PayoutAt:    schedule.NextPayout(now),
		Schedule:    schedule,
		Loading:     view.Loading,
		Error:       view.Error,
		PeriodLabel: PeriodLabel(period),
	}
	if view.Board != nil {
		data.Rows = BuildRows(view.Board.Entries)
	}
	return data
}
