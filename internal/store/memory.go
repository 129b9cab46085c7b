package store

import (
	"errors"
	"sync"
	"time"

	"github.com/eikland/go-yr/yr"
)

var (
	// ErrNotFound is returned when no snapshot is available for a place.
	ErrNotFound = errors.New("no snapshot for place")
)

// Snapshot couples a parsed Location with the time it was fetched.
type Snapshot struct {
	Place     string
	FetchedAt time.Time
	Location  *yr.Location
}

// history holds a time-ordered list of snapshots for one place.
type history struct {
	snapshots []Snapshot
}

// MemoryStore is a concurrency-safe in-memory store of Location snapshots.
type MemoryStore struct {
	mu sync.RWMutex

	// key: place identifier
	data map[string]*history

	maxHistory int           // max number of snapshots per place
	maxAge     time.Duration // optional max age for snapshots
}

// NewMemoryStore creates a MemoryStore with optional limits. maxHistory
// and maxAge <= 0 are treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*history),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// Save appends a snapshot for a place and enforces retention.
func (s *MemoryStore) Save(place string, loc *yr.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.data[place]
	if !ok {
		h = &history{}
		s.data[place] = h
	}

	h.snapshots = append(h.snapshots, Snapshot{
		Place:     place,
		FetchedAt: time.Now().UTC(),
		Location:  loc,
	})

	// Enforce retention by count.
	if s.maxHistory > 0 && len(h.snapshots) > s.maxHistory {
		over := len(h.snapshots) - s.maxHistory
		h.snapshots = h.snapshots[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(h.snapshots); i++ {
			if !h.snapshots[i].FetchedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(h.snapshots) {
			h.snapshots = h.snapshots[i:]
		}
	}
}

// Latest returns the most recent snapshot for a place.
func (s *MemoryStore) Latest(place string) (Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.data[place]
	if !ok || len(h.snapshots) == 0 {
		return Snapshot{}, ErrNotFound
	}
	return h.snapshots[len(h.snapshots)-1], nil
}

// Range returns the snapshots fetched for a place between from and to
// (inclusive).
func (s *MemoryStore) Range(place string, from, to time.Time) ([]Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	h, ok := s.data[place]
	if !ok || len(h.snapshots) == 0 {
		return nil, ErrNotFound
	}

	var result []Snapshot
	for _, snap := range h.snapshots {
		if snap.FetchedAt.Before(from) || snap.FetchedAt.After(to) {
			continue
		}
		result = append(result, snap)
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
