package leaderboard

import (
	"errors"
	"fmt"

	"github.com/johnnyknox/leaderboard/go/internal/models"
	"github.com/shopspring/decimal"
)

// DefaultLimit is how many places are paid and shown
const DefaultLimit = 7

// DefaultPrizes is the weekly payout by place, in dollars
var DefaultPrizes = []int64{100, 90, 60, 50, 40, 20, 10}

// Policy controls how a player list becomes a ranked board
type Policy struct {
	Period models.WagerPeriod
	Limit  int
	Prizes []decimal.Decimal
}

// DefaultPolicy ranks by weekly wager, top 7, with the standard prize table
func DefaultPolicy() Policy {
	return Policy{
		Period: models.WagerPeriodThisWeek,
		Limit:  DefaultLimit,
		Prizes: NewPrizeTable(DefaultPrizes),
	}
}

// NewPrizeTable converts whole-dollar amounts into a prize table
func NewPrizeTable(amounts []int64) []decimal.Decimal {
	prizes := make([]decimal.Decimal, len(amounts))
	for i, amount := range amounts {
		prizes[i] = decimal.NewFromInt(amount)
	}
	return prizes
}

// PrizeFor returns the prize for a 0-based rank index. Ranks past the end of
// the table win nothing.
func PrizeFor(prizes []decimal.Decimal, index int) decimal.Decimal {
	if index < 0 || index >= len(prizes) {
		return decimal.Zero
	}
	return prizes[index]
}

// Validate checks a policy before it is used
func (p Policy) Validate() error {
	if _, err := models.ParseWagerPeriod(string(p.Period)); err != nil {
		return err
	}
	if p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1, got %d", p.Limit)
	}
	if len(p.Prizes) == 0 {
		return errors.New("prize table cannot be empty")
	}
	for i, prize := range p.Prizes {
		if prize.IsNegative() {
			return fmt.Errorf("prize for place %d is negative", i+1)
		}
	}
	return nil
}
