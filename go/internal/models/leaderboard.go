package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RankedEntry is one row of the rendered leaderboard
type RankedEntry struct {
	Place       int             `json:"place"`
	UID         string          `json:"uid"`
	MaskedName  string          `json:"masked_name"`
	WagerAmount decimal.Decimal `json:"wager_amount"`
	Prize       decimal.Decimal `json:"prize"`
}

// Board is a snapshot produced by one fetch cycle
type Board struct {
	ID        uuid.UUID     `json:"id"`
	Period    WagerPeriod   `json:"period"`
	Entries   []RankedEntry `json:"entries"`
	FetchedAt time.Time     `json:"fetched_at"`
}
