package main

import (
	"fmt"

	"github.com/jonboulle/clockwork"
	"github.com/johnnyknox/leaderboard/go/clients/goated_client"
	"github.com/johnnyknox/leaderboard/go/internal/config"
	"github.com/johnnyknox/leaderboard/go/internal/leaderboard"
	"github.com/johnnyknox/leaderboard/go/internal/poller"
	"github.com/johnnyknox/leaderboard/go/internal/proxy"
	"github.com/johnnyknox/leaderboard/go/internal/web"
	"github.com/rs/zerolog/log"
)

type Services struct {
	Leaderboard *leaderboard.App
	Store       *leaderboard.Store
	Poller      *poller.Task
	Proxy       *proxy.Handler
	Web         *web.Handler
}

func setupServices(cfg config.Config, clock clockwork.Clock) (*Services, error) {
	// Wire up dependency injection chain
	// Client layer → Source → App → Poller → Store → HTTP handlers

	policy, err := cfg.Policy()
	if err != nil {
		return nil, fmt.Errorf("failed to build leaderboard policy: %w", err)
	}
	schedule, err := cfg.Schedule()
	if err != nil {
		return nil, fmt.Errorf("failed to build payout schedule: %w", err)
	}

	goated := goated_client.NewGoatedClient(cfg.Upstream.BaseURL)
	goated.SetTimeout(cfg.Upstream.Timeout)

	source, err := setupSource(cfg, goated)
	if err != nil {
		return nil, err
	}

	app := leaderboard.NewApp(source, policy, clock)
	store := leaderboard.NewStore()
	task := poller.NewTask(app, store, clock, cfg.Leaderboard.PollInterval)

	webHandler := web.NewHandler(store, task, clock, web.Config{
		Period:          policy.Period,
		Schedule:        schedule,
		Branding:        cfg.Branding,
		RefreshInterval: cfg.Leaderboard.PollInterval,
	})

	return &Services{
		Leaderboard: app,
		Store:       store,
		Poller:      task,
		Proxy:       proxy.NewHandler(goated, cfg.Upstream.AffiliateCode),
		Web:         webHandler,
	}, nil
}

func setupSource(cfg config.Config, goated *goated_client.GoatedClient) (leaderboard.Source, error) {
	source, err := leaderboard.NewSource(cfg.Leaderboard.Source, goated, cfg.Upstream.AffiliateCode, cfg.ProxyURL(), cfg.Upstream.Timeout)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("source", string(cfg.Leaderboard.Source)).
		Str("base_url", goated.BaseURL()).
		Str("proxy_url", cfg.ProxyURL()).
		Msg("leaderboard source configured")

	return source, nil
}
