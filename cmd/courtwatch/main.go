// Command courtwatch polls the booking site for free court slots on one
// date and pushes a notification as soon as a slot matches the requested
// time window.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"courtwatch/internal/config"
	"courtwatch/internal/logger"
	"courtwatch/internal/model"
	"courtwatch/internal/notify"
	"courtwatch/internal/scraper"
	"courtwatch/internal/watch"
)

var (
	flagDate     = flag.String("date", "", "date to watch, DD.MM.YYYY (required)")
	flagAfter    = flag.String("after", "00:00", "exclusive lower bound for slot starts, HH:MM")
	flagBefore   = flag.String("before", "23:00", "exclusive upper bound for slot starts, HH:MM")
	flagLength   = flag.Int("length", 0, "minimum slot length in minutes")
	flagActivity = flag.String("activity", "tennis", "activity to watch: tennis, beachvolleyball or pickleball")
)

const dateFormat = "02.01.2006"

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if *flagDate == "" {
		return fmt.Errorf("-date is required")
	}
	date, err := time.Parse(dateFormat, *flagDate)
	if err != nil {
		return fmt.Errorf("invalid -date: %w", err)
	}
	after, err := model.ParseClock(*flagAfter)
	if err != nil {
		return fmt.Errorf("invalid -after: %w", err)
	}
	before, err := model.ParseClock(*flagBefore)
	if err != nil {
		return fmt.Errorf("invalid -before: %w", err)
	}
	if before <= after {
		return fmt.Errorf("-before (%s) must be later than -after (%s)", before, after)
	}
	if *flagLength < 0 {
		return fmt.Errorf("-length must not be negative")
	}
	activity, err := scraper.ParseActivity(*flagActivity)
	if err != nil {
		return err
	}
	if err := activity.Scrapable(); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()
	log = log.With(zap.String("run_id", uuid.NewString()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	w := &watch.Watcher{
		Source:   scraper.NewClient(cfg.BookingBaseURL, httpClient, log),
		Notifier: notify.NewNtfy(cfg.NtfyBaseURL, cfg.NtfyTopic, httpClient),
		Window: model.Window{
			After:       after,
			Before:      before,
			MinDuration: time.Duration(*flagLength) * time.Minute,
		},
		Interval: cfg.PollInterval,
		Log:      log,
	}

	log.Info("searching for open courts",
		zap.Stringer("activity", activity),
		zap.String("date", date.Format(dateFormat)),
		zap.Stringer("after", after),
		zap.Stringer("before", before),
		zap.Int("min_length_minutes", *flagLength),
		zap.Duration("interval", cfg.PollInterval))

	return w.Run(ctx, activity, date)
}
