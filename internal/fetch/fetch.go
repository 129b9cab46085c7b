// Package fetch retrieves forecast documents over HTTP with an on-disk
// cache keyed by file modification time, plus a service-availability probe
// used before first-time (uncached) fetches.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// Availability is the outcome of probing the remote service for a place.
type Availability int

const (
	// AvailabilityOK means the document URL answers with XML.
	AvailabilityOK Availability = iota
	// AvailabilityLocationInvalid means the URL does not resolve to an
	// XML resource: the place identifier is wrong.
	AvailabilityLocationInvalid
	// AvailabilityUnknown means the service state could not be determined
	// after exhausting the probe attempts.
	AvailabilityUnknown
)

// The service intermittently answers 500 for places it has not served
// recently and recovers after a handful of requests, so the probe retries
// up to this many times.
const probeAttempts = 7

var (
	errServerError = errors.New("server error")
	errUnexpected  = errors.New("unexpected status code")
	errCircuitOpen = errors.New("circuit breaker open")
)

// BackoffConfig controls exponential backoff behaviour for document
// fetches.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Fetcher retrieves documents over HTTP with retries, exponential backoff
// and a circuit breaker, caching response bodies on disk.
type Fetcher struct {
	client  *http.Client
	backoff BackoffConfig
	circuit *gobreaker.CircuitBreaker
}

// NewFetcher creates a Fetcher. A nil client gets a default with a 30s
// timeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "yr-fetch",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Fetcher{
		client: client,
		backoff: BackoffConfig{
			MaxRetries:      3,
			InitialInterval: 500 * time.Millisecond,
			MaxInterval:     5 * time.Second,
		},
		circuit: cb,
	}
}

// Probe checks whether the given document URL resolves to an XML resource.
// HTTP 500 answers are skipped and the probe tries again; a 404, or a 200
// that is not XML (the service answers an HTML error page for malformed
// place paths), marks the location invalid.
func (f *Fetcher) Probe(ctx context.Context, url string) Availability {
	for i := 0; i < probeAttempts; i++ {
		if ctx.Err() != nil {
			return AvailabilityUnknown
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
		if err != nil {
			return AvailabilityUnknown
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return AvailabilityUnknown
		}
		resp.Body.Close()

		if resp.StatusCode == http.StatusInternalServerError {
			continue
		}

		isXML := strings.HasPrefix(resp.Header.Get("Content-Type"), "text/xml")
		if resp.StatusCode == http.StatusNotFound || (resp.StatusCode == http.StatusOK && !isXML) {
			return AvailabilityLocationInvalid
		}
		if resp.StatusCode == http.StatusOK && isXML {
			return AvailabilityOK
		}
	}
	return AvailabilityUnknown
}

// FetchWithCache returns the cached document when its file is still fresh,
// otherwise refetches it. A non-empty response rewrites the cache file. A
// failed or empty fetch falls back to stale cached bytes when they exist,
// so a network outage degrades to old data instead of no data.
func (f *Fetcher) FetchWithCache(ctx context.Context, url, cachePath string, ttl time.Duration) ([]byte, error) {
	if info, err := os.Stat(cachePath); err == nil && time.Since(info.ModTime()) <= ttl {
		return os.ReadFile(cachePath)
	}

	body, err := f.get(ctx, url)
	if err != nil || len(body) == 0 {
		if stale, readErr := os.ReadFile(cachePath); readErr == nil {
			return stale, nil
		}
		if err == nil {
			err = fmt.Errorf("empty response from %s", url)
		}
		return nil, err
	}

	if err := os.WriteFile(cachePath, body, 0o644); err != nil {
		return nil, fmt.Errorf("writing cache file %s: %w", cachePath, err)
	}
	return body, nil
}

// get executes the request with retries, exponential backoff, and the
// circuit breaker.
func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	var attempt int
	var lastErr error

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		result, err := f.circuit.Execute(func() (interface{}, error) {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return nil, err
			}
			resp, err := f.client.Do(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()

			if resp.StatusCode >= 500 {
				return nil, errServerError
			}
			if resp.StatusCode != http.StatusOK {
				return nil, fmt.Errorf("%w: %d", errUnexpected, resp.StatusCode)
			}
			return io.ReadAll(resp.Body)
		})
		if err == nil {
			return result.([]byte), nil
		}

		// If the circuit is open, propagate immediately.
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", errCircuitOpen, err)
		}

		lastErr = err
		if attempt >= f.backoff.MaxRetries {
			return nil, lastErr
		}

		delay := f.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if f.backoff.MaxInterval > 0 && delay > f.backoff.MaxInterval {
			delay = f.backoff.MaxInterval
		}

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		attempt++
	}
}
