// Package service wires the yr client to the snapshot store: it refreshes
// places on demand or on schedule and serves the latest parsed Location.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/eikland/go-yr/internal/store"
	"github.com/eikland/go-yr/yr"
)

// Service orchestrates fetching forecast snapshots and persisting them in
// the store.
type Service struct {
	client *yr.Client
	store  *store.MemoryStore
	logger *slog.Logger
}

// New creates a Service. A nil logger discards log output.
func New(client *yr.Client, st *store.MemoryStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		client: client,
		store:  st,
		logger: logger,
	}
}

// Refresh fetches and stores a fresh snapshot for the place.
func (s *Service) Refresh(ctx context.Context, place string) error {
	loc, err := s.client.Location(ctx, place)
	if err != nil {
		return fmt.Errorf("refreshing %q: %w", place, err)
	}

	s.store.Save(place, loc)

	stats := loc.Stats()
	s.logger.Info("refreshed place",
		"place", place,
		"hourly", len(loc.HourlyForecasts()),
		"periodic", len(loc.PeriodicForecasts()),
		"stations", len(loc.WeatherStations()),
		"skipped", stats.HourlySkipped+stats.PeriodicSkipped+stats.TextualSkipped+stats.StationsSkipped,
	)
	return nil
}

// Latest returns the most recent snapshot for the place, fetching one on
// demand when the store holds none.
func (s *Service) Latest(ctx context.Context, place string) (store.Snapshot, error) {
	snap, err := s.store.Latest(place)
	if errors.Is(err, store.ErrNotFound) {
		if err := s.Refresh(ctx, place); err != nil {
			return store.Snapshot{}, err
		}
		return s.store.Latest(place)
	}
	return snap, err
}
