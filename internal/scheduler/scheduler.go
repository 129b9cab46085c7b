// Package scheduler periodically refreshes forecast snapshots for the
// configured places.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/eikland/go-yr/internal/service"
)

// Scheduler runs a periodic refresh job for a fixed set of places.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *service.Service
	places    []string
	interval  time.Duration
	logger    *slog.Logger
}

// New creates a Scheduler. A nil logger discards log output.
func New(places []string, interval time.Duration, svc *service.Service, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   svc,
		places:    places,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if len(s.places) == 0 {
		s.logger.Info("scheduler: no places configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		s.logger.Debug("scheduler: running refresh job")

		var wg sync.WaitGroup
		for _, place := range s.places {
			place := place
			wg.Add(1)
			go func() {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				if err := s.service.Refresh(ctx, place); err != nil {
					s.logger.Error("scheduler: refresh failed", "place", place, "error", err)
				}
			}()
		}
		wg.Wait()

		s.logger.Debug("scheduler: completed refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
