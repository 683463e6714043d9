package goated_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnsuccessful is returned when the API answers 2xx but flags success=false.
var ErrUnsuccessful = errors.New("API reported an unsuccessful response")

type Wagered struct {
	Today     decimal.Decimal `json:"today"`
	ThisWeek  decimal.Decimal `json:"this_week"`
	ThisMonth decimal.Decimal `json:"this_month"`
	AllTime   decimal.Decimal `json:"all_time"`
}

type Player struct {
	UID     string   `json:"uid"`
	Name    string   `json:"name"`
	Wagered *Wagered `json:"wagered"`
}

// LeaderboardResponse covers both payload shapes the API has served:
// {"data": [...]} and {"success": true, "data": [...]}.
type LeaderboardResponse struct {
	Success *bool    `json:"success,omitempty"`
	Data    []Player `json:"data"`
}

func referralLeaderboardEndpoint(affiliateCode string) string {
	return fmt.Sprintf("%s/%s", ReferralLeaderboardEndpoint, affiliateCode)
}

// GetReferralLeaderboardRaw returns the upstream body untouched.
func (c *GoatedClient) GetReferralLeaderboardRaw(ctx context.Context, affiliateCode string) ([]byte, error) {
	body, err := c.Get(ctx, referralLeaderboardEndpoint(affiliateCode))
	if err != nil {
		return nil, fmt.Errorf("failed to get referral leaderboard: %w", err)
	}
	return body, nil
}

func (c *GoatedClient) GetReferralLeaderboard(ctx context.Context, affiliateCode string) ([]Player, error) {
	body, err := c.GetReferralLeaderboardRaw(ctx, affiliateCode)
	if err != nil {
		return nil, err
	}
	return DecodeLeaderboard(body)
}

// DecodeLeaderboard parses a referral leaderboard payload. A missing data
// array decodes to an empty list.
func DecodeLeaderboard(body []byte) ([]Player, error) {
	var response LeaderboardResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if response.Success != nil && !*response.Success {
		return nil, ErrUnsuccessful
	}

	if response.Data == nil {
		return []Player{}, nil
	}

	return response.Data, nil
}
