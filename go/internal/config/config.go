package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/johnnyknox/leaderboard/go/clients"
	"github.com/johnnyknox/leaderboard/go/clients/goated_client"
	"github.com/johnnyknox/leaderboard/go/internal/countdown"
	"github.com/johnnyknox/leaderboard/go/internal/leaderboard"
	"github.com/johnnyknox/leaderboard/go/internal/models"
	"github.com/johnnyknox/leaderboard/go/internal/proxy"
	"github.com/johnnyknox/leaderboard/go/internal/web"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when CONFIG_PATH is unset; a missing file is not an error
const DefaultPath = "config.yaml"

type UpstreamConfig struct {
	BaseURL       string `yaml:"base_url"`
	AffiliateCode string `yaml:"affiliate_code"`
	// Timeout bounds each outbound call. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

type LeaderboardConfig struct {
	Source       clients.ExternalSource `yaml:"source"`
	ProxyURL     string                 `yaml:"proxy_url"`
	Period       string                 `yaml:"period"`
	Limit        int                    `yaml:"limit"`
	Prizes       []int64                `yaml:"prizes"`
	PollInterval time.Duration          `yaml:"poll_interval"`
}

type PayoutConfig struct {
	Weekday  string             `yaml:"weekday"`
	Hour     int                `yaml:"hour"`
	Minute   int                `yaml:"minute"`
	Rollover countdown.Rollover `yaml:"rollover"`
}

// Config holds every setting for the server and the terminal view
type Config struct {
	Port        string            `yaml:"port"`
	LogLevel    string            `yaml:"log_level"`
	Upstream    UpstreamConfig    `yaml:"upstream"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Payout      PayoutConfig      `yaml:"payout"`
	Branding    web.Branding      `yaml:"branding"`
}

// Default returns the canonical weekly race settings
func Default() Config {
	return Config{
		Port:     "8080",
		LogLevel: "info",
		Upstream: UpstreamConfig{
			BaseURL:       goated_client.BaseURL,
			AffiliateCode: goated_client.DefaultAffiliateCode,
			Timeout:       10 * time.Second,
		},
		Leaderboard: LeaderboardConfig{
			Source:       clients.GetHighestPrioritySource(),
			Period:       string(models.WagerPeriodThisWeek),
			Limit:        leaderboard.DefaultLimit,
			Prizes:       append([]int64(nil), leaderboard.DefaultPrizes...),
			PollInterval: 5 * time.Second,
		},
		Payout: PayoutConfig{
			Weekday:  "sunday",
			Hour:     23,
			Minute:   59,
			Rollover: countdown.RolloverNextWeek,
		},
		Branding: web.DefaultBranding(),
	}
}

// Load reads the YAML file at path (if present) over the defaults, then
// applies environment overrides and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && path == DefaultPath:
	default:
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	c.Port = getEnv("PORT", c.Port)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.Upstream.BaseURL = getEnv("UPSTREAM_BASE_URL", c.Upstream.BaseURL)
	c.Upstream.AffiliateCode = getEnv("AFFILIATE_CODE", c.Upstream.AffiliateCode)
	c.Leaderboard.Source = clients.ExternalSource(getEnv("LEADERBOARD_SOURCE", string(c.Leaderboard.Source)))
	c.Leaderboard.ProxyURL = getEnv("PROXY_URL", c.Leaderboard.ProxyURL)
	c.Leaderboard.Period = getEnv("WAGER_PERIOD", c.Leaderboard.Period)
	c.Leaderboard.Limit = getEnvAsInt("LEADERBOARD_LIMIT", c.Leaderboard.Limit)

	var err error
	if c.Upstream.Timeout, err = getEnvAsDuration("UPSTREAM_TIMEOUT", c.Upstream.Timeout); err != nil {
		return err
	}
	if c.Leaderboard.PollInterval, err = getEnvAsDuration("POLL_INTERVAL", c.Leaderboard.PollInterval); err != nil {
		return err
	}
	return nil
}

// Validate checks the combined configuration
func (c Config) Validate() error {
	if !clients.ValidateExternalSource(c.Leaderboard.Source) {
		return fmt.Errorf("unknown leaderboard source %q", c.Leaderboard.Source)
	}
	if c.Upstream.AffiliateCode == "" {
		return errors.New("affiliate code is required")
	}
	if c.Upstream.Timeout < 0 {
		return errors.New("upstream timeout cannot be negative")
	}
	if c.Leaderboard.PollInterval < 0 {
		return errors.New("poll interval cannot be negative")
	}
	if _, err := c.Policy(); err != nil {
		return err
	}
	if _, err := c.Schedule(); err != nil {
		return err
	}
	return nil
}

// Policy builds the ranking policy
func (c Config) Policy() (leaderboard.Policy, error) {
	period, err := models.ParseWagerPeriod(c.Leaderboard.Period)
	if err != nil {
		return leaderboard.Policy{}, err
	}
	policy := leaderboard.Policy{
		Period: period,
		Limit:  c.Leaderboard.Limit,
		Prizes: leaderboard.NewPrizeTable(c.Leaderboard.Prizes),
	}
	return policy, policy.Validate()
}

// Schedule builds the payout countdown schedule
func (c Config) Schedule() (countdown.Schedule, error) {
	weekday, err := countdown.ParseWeekday(c.Payout.Weekday)
	if err != nil {
		return countdown.Schedule{}, err
	}
	schedule := countdown.Schedule{
		Weekday:  weekday,
		Hour:     c.Payout.Hour,
		Minute:   c.Payout.Minute,
		Rollover: c.Payout.Rollover,
	}
	return schedule, schedule.Validate()
}

// ProxyURL returns the relay URL, defaulting to this server's own route
func (c Config) ProxyURL() string {
	if c.Leaderboard.ProxyURL != "" {
		return c.Leaderboard.ProxyURL
	}
	return fmt.Sprintf("http://localhost:%s%s", c.Port, proxy.Route)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
