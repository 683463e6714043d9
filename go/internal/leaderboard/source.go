package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/johnnyknox/leaderboard/go/clients"
	"github.com/johnnyknox/leaderboard/go/clients/goated_client"
	"github.com/johnnyknox/leaderboard/go/internal/models"
)

// Source supplies the raw player list for one fetch cycle
type Source interface {
	FetchPlayers(ctx context.Context) ([]models.Player, error)
}

// UpstreamSource reads straight from the affiliate API
type UpstreamSource struct {
	client        *goated_client.GoatedClient
	affiliateCode string
}

func NewUpstreamSource(client *goated_client.GoatedClient, affiliateCode string) *UpstreamSource {
	return &UpstreamSource{
		client:        client,
		affiliateCode: affiliateCode,
	}
}

func (s *UpstreamSource) FetchPlayers(ctx context.Context) ([]models.Player, error) {
	players, err := s.client.GetReferralLeaderboard(ctx, s.affiliateCode)
	if err != nil {
		return nil, err
	}
	return mapExternalPlayers(players), nil
}

// ProxySource reads through the local relay endpoint
type ProxySource struct {
	client *clients.BaseClient
}

// NewProxySource takes the full relay URL, e.g. http://localhost:8080/api/leaderboard
func NewProxySource(proxyURL string, timeout time.Duration) *ProxySource {
	client := clients.NewBaseClient(proxyURL)
	client.SetHeader(goated_client.AcceptHeader, goated_client.JSONContentType)
	client.SetTimeout(timeout)
	return &ProxySource{client: client}
}

func (s *ProxySource) FetchPlayers(ctx context.Context) ([]models.Player, error) {
	body, err := s.client.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard from proxy: %w", err)
	}

	players, err := goated_client.DecodeLeaderboard(body)
	if err != nil {
		return nil, err
	}
	return mapExternalPlayers(players), nil
}

// mapExternalPlayers converts wire records; a missing wagered block counts as
// zero so the player is filtered out rather than failing the whole cycle.
func mapExternalPlayers(players []goated_client.Player) []models.Player {
	out := make([]models.Player, 0, len(players))
	for _, p := range players {
		player := models.Player{
			UID:  p.UID,
			Name: p.Name,
		}
		if p.Wagered != nil {
			player.Wagered = models.Wagered{
				Today:     p.Wagered.Today,
				ThisWeek:  p.Wagered.ThisWeek,
				ThisMonth: p.Wagered.ThisMonth,
				AllTime:   p.Wagered.AllTime,
			}
		}
		out = append(out, player)
	}
	return out
}

// NewSource picks the source implementation for the configured kind
func NewSource(kind clients.ExternalSource, goated *goated_client.GoatedClient, affiliateCode, proxyURL string, timeout time.Duration) (Source, error) {
	switch kind {
	case clients.ExternalSourceUpstream:
		return NewUpstreamSource(goated, affiliateCode), nil
	case clients.ExternalSourceProxy:
		return NewProxySource(proxyURL, timeout), nil
	default:
		return nil, fmt.Errorf("unknown leaderboard source %q", kind)
	}
}
