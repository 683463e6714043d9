package countdown

import (
	"fmt"
	"strings"
	"time"
)

// Rollover decides what happens on the payout weekday itself
type Rollover string

const (
	// RolloverNextWeek always targets the following week's payout when today
	// is the payout weekday, even before the payout time.
	RolloverNextWeek Rollover = "next_week"

	// RolloverSameDay targets today's payout time; once it passes the
	// countdown sits at zero until the day changes.
	RolloverSameDay Rollover = "same_day"
)

// Schedule describes the weekly payout instant, always in UTC
type Schedule struct {
	Weekday  time.Weekday
	Hour     int
	Minute   int
	Rollover Rollover
}

// DefaultSchedule is Sunday 23:59 UTC
func DefaultSchedule() Schedule {
	return Schedule{
		Weekday:  time.Sunday,
		Hour:     23,
		Minute:   59,
		Rollover: RolloverNextWeek,
	}
}

// Validate checks the schedule fields
func (s Schedule) Validate() error {
	if s.Weekday < time.Sunday || s.Weekday > time.Saturday {
		return fmt.Errorf("invalid weekday %d", s.Weekday)
	}
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("invalid hour %d", s.Hour)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("invalid minute %d", s.Minute)
	}
	switch s.Rollover {
	case RolloverNextWeek, RolloverSameDay:
	default:
		return fmt.Errorf("unknown rollover %q", s.Rollover)
	}
	return nil
}

// NextPayout returns the payout instant the countdown is running towards
func (s Schedule) NextPayout(now time.Time) time.Time {
	now = now.UTC()

	days := (int(s.Weekday) - int(now.Weekday()) + 7) % 7
	if days == 0 && s.Rollover == RolloverNextWeek {
		days = 7
	}

	return time.Date(now.Year(), now.Month(), now.Day()+days, s.Hour, s.Minute, 0, 0, time.UTC)
}

// Remaining is the time left until the next payout, never negative
func (s Schedule) Remaining(now time.Time) time.Duration {
	d := s.NextPayout(now).Sub(now)
	if d < 0 {
		return 0
	}
	return d
}

// Format renders a duration as "3d 14h 59m 10s". The day part is left out
// when zero and anything at or below zero shows as "0h 0m 0s".
func Format(d time.Duration) string {
	if d <= 0 {
		return "0h 0m 0s"
	}

	total := int64(d / time.Second)
	days := total / 86400
	hours := (total / 3600) % 24
	minutes := (total / 60) % 60
	seconds := total % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd ", days)
	}
	fmt.Fprintf(&b, "%dh %dm %ds", hours, minutes, seconds)
	return b.String()
}

// ParseWeekday accepts full English weekday names, case-insensitive
func ParseWeekday(s string) (time.Weekday, error) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("unknown weekday %q", s)
}
