// Package watch runs the polling loop: fetch the day's schedule, filter it
// against the search window, notify once something matches.
package watch

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"courtwatch/internal/model"
	"courtwatch/internal/notify"
	"courtwatch/internal/scraper"
)

// Source produces the full availability map for one date.
type Source interface {
	FetchDay(ctx context.Context, activity scraper.Activity, date time.Time) (model.Availability, error)
}

// Watcher polls a Source until the window matches, then notifies and stops.
type Watcher struct {
	Source   Source
	Notifier notify.Notifier
	Window   model.Window
	Interval time.Duration
	Log      *zap.Logger
}

// Run polls until a matching slot has been found and notified. It returns
// nil after a successful notification, the context error on cancellation,
// and the underlying error when a tick fails in a non-retryable way or the
// notification cannot be delivered. Transient fetch failures are logged
// and retried on the next tick.
func (w *Watcher) Run(ctx context.Context, activity scraper.Activity, date time.Time) error {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}

	for {
		available, err := w.Source.FetchDay(ctx, activity, date)
		switch {
		case err == nil:
			matched := w.Window.Filter(available)
			if len(matched) > 0 {
				for _, court := range matched.Courts() {
					log.Info("found open court",
						zap.Int("court", court),
						zap.Stringers("slots", matched[court]))
				}
				if err := w.Notifier.Notify(ctx, notify.Message(matched)); err != nil {
					return fmt.Errorf("delivering notification: %w", err)
				}
				log.Info("notification sent", zap.Int("courts", len(matched)))
				return nil
			}
			log.Info("nothing found, waiting", zap.Duration("interval", w.Interval))
		case scraper.Retryable(err):
			log.Warn("tick failed, will retry", zap.Error(err))
		default:
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.Interval):
		}
	}
}
