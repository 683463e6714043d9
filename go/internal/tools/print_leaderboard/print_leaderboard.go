package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/johnnyknox/leaderboard/go/clients/goated_client"
	"github.com/johnnyknox/leaderboard/go/internal/config"
	"github.com/johnnyknox/leaderboard/go/internal/countdown"
	"github.com/johnnyknox/leaderboard/go/internal/leaderboard"
	"github.com/johnnyknox/leaderboard/go/internal/poller"
	"github.com/johnnyknox/leaderboard/go/internal/web"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const clearScreen = "\033[H\033[2J"

func main() {
	configPath := flag.String("config", os.Getenv("CONFIG_PATH"), "path to YAML config")
	watch := flag.Bool("watch", false, "keep the table and countdown live until interrupted")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("could not load .env file")
	}

	cfg, policy, schedule, err := loadSettings(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	goated := goated_client.NewGoatedClient(cfg.Upstream.BaseURL)
	goated.SetTimeout(cfg.Upstream.Timeout)

	source, err := leaderboard.NewSource(cfg.Leaderboard.Source, goated, cfg.Upstream.AffiliateCode, cfg.ProxyURL(), cfg.Upstream.Timeout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "setup source: %v\n", err)
		os.Exit(1)
	}

	clock := clockwork.NewRealClock()
	app := leaderboard.NewApp(source, policy, clock)
	store := leaderboard.NewStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !*watch {
		task := poller.NewTask(app, store, clock, 0)
		refreshErr := task.RefreshNow(ctx)
		data := web.BuildPageData(store.Snapshot(), policy.Period, schedule, cfg.Branding, clock.Now())
		if err := render(os.Stdout, data); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
		if refreshErr != nil || data.Error != "" {
			os.Exit(1)
		}
		return
	}

	runWatch(ctx, app, store, clock, cfg, schedule)
}

// loadSettings reads the config file and derives the ranking policy and
// payout schedule from it
func loadSettings(path string) (config.Config, leaderboard.Policy, countdown.Schedule, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, leaderboard.Policy{}, countdown.Schedule{}, fmt.Errorf("load config: %w", err)
	}

	policy, err := cfg.Policy()
	if err != nil {
		return config.Config{}, leaderboard.Policy{}, countdown.Schedule{}, fmt.Errorf("leaderboard policy: %w", err)
	}

	schedule, err := cfg.Schedule()
	if err != nil {
		return config.Config{}, leaderboard.Policy{}, countdown.Schedule{}, fmt.Errorf("payout schedule: %w", err)
	}

	return cfg, policy, schedule, nil
}

// runWatch redraws on every countdown tick; the poller updates the store
// on its own interval and the next tick picks the change up.
func runWatch(ctx context.Context, app *leaderboard.App, store *leaderboard.Store, clock clockwork.Clock, cfg config.Config, schedule countdown.Schedule) {
	task := poller.NewTask(app, store, clock, cfg.Leaderboard.PollInterval)

	var mu sync.Mutex
	ticker := countdown.NewTicker(schedule, clock, func(string) {
		mu.Lock()
		defer mu.Unlock()

		data := web.BuildPageData(store.Snapshot(), app.Policy().Period, schedule, cfg.Branding, clock.Now())
		fmt.Fprint(os.Stdout, clearScreen)
		if err := render(os.Stdout, data); err != nil {
			log.Error().Err(err).Msg("failed to render leaderboard")
		}
	})

	task.Start(ctx)
	ticker.Start(ctx)

	<-ctx.Done()

	ticker.Stop()
	task.Stop()
}

func render(w io.Writer, data web.PageData) error {
	fmt.Fprintln(w, data.Branding.Title)
	fmt.Fprintln(w, data.Branding.Subtitle)
	fmt.Fprintln(w, data.Branding.Heading)
	fmt.Fprintln(w)

	if data.Error != "" {
		_, err := fmt.Fprintln(w, data.Error)
		return err
	}

	fmt.Fprintf(w, "Next Payout In: %s\n\n", data.Countdown)

	switch {
	case data.Loading:
		_, err := fmt.Fprintln(w, "Loading...")
		return err
	case len(data.Rows) == 0:
		_, err := fmt.Fprintf(w, "No players qualified %s.\n", data.PeriodLabel)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "PLACE\tUSER\tWAGER\tPRIZE")
	for _, row := range data.Rows {
		fmt.Fprintf(tw, "%d.\t%s\t%s\t%s\n", row.Place, row.User, row.Wager, row.Prize)
	}
	return tw.Flush()
}
