package leaderboard

import (
	"slices"

	"github.com/johnnyknox/leaderboard/go/internal/models"
)

// Rank turns the upstream player list into the displayed board: players with
// no positive wager for the policy period are dropped, the rest are sorted
// by that wager (descending, ties keep upstream order) and cut to the limit.
func Rank(players []models.Player, policy Policy) []models.RankedEntry {
	qualified := make([]models.Player, 0, len(players))
	for _, p := range players {
		if p.Wagered.For(policy.Period).IsPositive() {
			qualified = append(qualified, p)
		}
	}

	slices.SortStableFunc(qualified, func(a, b models.Player) int {
		return b.Wagered.For(policy.Period).Cmp(a.Wagered.For(policy.Period))
	})

	if policy.Limit > 0 && len(qualified) > policy.Limit {
		qualified = qualified[:policy.Limit]
	}

	entries := make([]models.RankedEntry, len(qualified))
	for i, p := range qualified {
		entries[i] = models.RankedEntry{
			Place:       i + 1,
			UID:         p.UID,
			MaskedName:  MaskName(p.Name),
			WagerAmount: p.Wagered.For(policy.Period),
			Prize:       PrizeFor(policy.Prizes, i),
		}
	}
	return entries
}
