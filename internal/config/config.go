package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/eikland/go-yr/yr"
)

// AppConfig holds the daemon configuration, read from the environment.
type AppConfig struct {
	// Places to keep refreshed, as yr.no path identifiers
	// (e.g. "Norway/Oslo/Oslo/Oslo").
	Places []string

	// Language selects the yr.no frontend URL segment.
	Language yr.Language

	// CacheDir is where raw XML documents are cached.
	CacheDir string

	// CacheTTL controls how long cached documents stay fresh.
	CacheTTL time.Duration

	// FetchInterval controls how often the scheduler refreshes each place.
	FetchInterval time.Duration

	// In-memory store retention.
	StoreMaxHistory int           // max number of snapshots per place (0 = unlimited)
	StoreMaxAge     time.Duration // max age of snapshots (0 = unlimited)

	Port     string
	LogLevel string
}

// Load reads configuration from the environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{}

	if places := os.Getenv("YR_PLACES"); places != "" {
		for _, p := range strings.Split(places, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.Places = append(cfg.Places, p)
			}
		}
	}

	cfg.Language = yr.Language(getenvDefault("YR_LANGUAGE", string(yr.English)))

	cfg.CacheDir = getenvDefault("CACHE_DIR", os.TempDir())

	ttlStr := getenvDefault("CACHE_TTL", "10m")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	cfg.CacheTTL = ttl

	// Scheduler interval: default 15 minutes.
	intervalStr := getenvDefault("FETCH_INTERVAL", "15m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_INTERVAL: %w", err)
	}
	cfg.FetchInterval = interval

	// Store retention.
	cfg.StoreMaxHistory = getenvInt("STORE_MAX_HISTORY", 96) // roughly 24h at 15-minute intervals

	maxAgeStr := getenvDefault("STORE_MAX_AGE", "24h")
	maxAge, err := time.ParseDuration(maxAgeStr)
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
