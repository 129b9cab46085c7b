package yr

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/eikland/go-yr/internal/fetch"
)

const (
	// DefaultBaseURL is the root of the yr.no service.
	DefaultBaseURL = "http://www.yr.no/"

	// DefaultCacheTTL is how long a cached document stays fresh.
	DefaultCacheTTL = 10 * time.Minute

	cachePrefix = "goyr_"
)

// Language selects the URL path segment of the yr.no frontend. It is a
// routing detail only and does not affect parsing.
type Language string

const (
	English      Language = "english"
	Norwegian    Language = "norwegian"
	NewNorwegian Language = "newnorwegian"
	NorthernSami Language = "northernsami"
	Kven         Language = "kven"
)

func (l Language) pathSegment() string {
	switch l {
	case Norwegian:
		return "sted/"
	case NewNorwegian:
		return "stad/"
	case NorthernSami:
		return "sadji/"
	case Kven:
		return "paikka/"
	default:
		return "place/"
	}
}

// Client retrieves the two forecast documents for a place from the yr.no
// service, caching the raw XML on disk. Please read the service terms
// before use; attribution (see Location.CreditText) is required.
type Client struct {
	baseURL  string
	cacheDir string
	cacheTTL time.Duration
	language Language
	fetcher  *fetch.Fetcher
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for fetching and probing.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.fetcher = fetch.NewFetcher(hc) }
}

// WithBaseURL overrides the service base URL. Useful for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithCacheTTL sets how long cached documents stay fresh.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) { c.cacheTTL = d }
}

// WithLanguage selects the frontend language.
func WithLanguage(lang Language) Option {
	return func(c *Client) { c.language = lang }
}

// NewClient creates a Client caching documents under cacheDir.
func NewClient(cacheDir string, opts ...Option) (*Client, error) {
	if cacheDir == "" {
		return nil, &InvalidArgumentError{Field: "cacheDir", Reason: "must not be empty"}
	}

	c := &Client{
		baseURL:  DefaultBaseURL,
		cacheDir: cacheDir,
		cacheTTL: DefaultCacheTTL,
		language: English,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.fetcher == nil {
		c.fetcher = fetch.NewFetcher(nil)
	}
	return c, nil
}

// Location fetches, caches and parses the forecast documents for the given
// place identifier and returns the assembled aggregate.
//
// The place must match the path used by the yr.no site, e.g. the page
// http://www.yr.no/place/Norway/Vestfold/Sandefjord/Sandefjord/ is
// addressed as "Norway/Vestfold/Sandefjord/Sandefjord".
func (c *Client) Location(ctx context.Context, place string) (*Location, error) {
	if place == "" {
		return nil, &InvalidArgumentError{Field: "place", Reason: "must not be empty"}
	}

	periodicPath := c.cacheFile(place, "_periodic.xml")
	hourlyPath := c.cacheFile(place, "_hourly.xml")

	// A first-time fetch probes the service so a wrong place name fails
	// fast instead of caching an HTML error page.
	if !fileExists(periodicPath) || !fileExists(hourlyPath) {
		state := c.fetcher.Probe(ctx, c.HourlyForecastURL(place))
		if state == fetch.AvailabilityOK {
			state = c.fetcher.Probe(ctx, c.ForecastURL(place))
		}
		switch state {
		case fetch.AvailabilityLocationInvalid:
			return nil, &ServiceUnavailableError{Place: place, Reason: "place does not resolve to a forecast resource"}
		case fetch.AvailabilityUnknown:
			return nil, &ServiceUnavailableError{Place: place, Reason: "service did not answer after repeated attempts"}
		}
	}

	periodicXML, err := c.fetcher.FetchWithCache(ctx, c.ForecastURL(place), periodicPath, c.cacheTTL)
	if err != nil {
		return nil, fmt.Errorf("fetching periodic forecast: %w", err)
	}
	hourlyXML, err := c.fetcher.FetchWithCache(ctx, c.HourlyForecastURL(place), hourlyPath, c.cacheTTL)
	if err != nil {
		return nil, fmt.Errorf("fetching hourly forecast: %w", err)
	}

	return ParseLocation(periodicXML, hourlyXML)
}

// ForecastURL returns the URL of the periodic forecast document for place.
func (c *Client) ForecastURL(place string) string {
	return c.baseURL + c.language.pathSegment() + place + "/forecast.xml"
}

// HourlyForecastURL returns the URL of the hour-by-hour forecast document
// for place.
func (c *Client) HourlyForecastURL(place string) string {
	return c.baseURL + c.language.pathSegment() + place + "/forecast_hour_by_hour.xml"
}

func (c *Client) cacheFile(place, suffix string) string {
	sum := md5.Sum([]byte(c.baseURL + c.language.pathSegment() + place))
	return filepath.Join(c.cacheDir, cachePrefix+hex.EncodeToString(sum[:])+suffix)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ParseLocation assembles a Location from already retrieved periodic and
// hourly forecast documents. Callers with their own transport (or tests)
// use this directly; Client.Location routes through it after fetching.
//
// Individual forecasts, textual forecasts and stations the upstream left
// incomplete are skipped and counted on Location.Stats. Missing required
// metadata fails the whole assembly with an AssemblyError.
func ParseLocation(periodicXML, hourlyXML []byte) (*Location, error) {
	periodic, err := parseDocument(periodicXML)
	if err != nil {
		return nil, &AssemblyError{Cause: fmt.Errorf("parsing periodic document: %w", err)}
	}
	hourly, err := parseDocument(hourlyXML)
	if err != nil {
		return nil, &AssemblyError{Cause: fmt.Errorf("parsing hourly document: %w", err)}
	}

	loc := &Location{links: map[string]string{}}

	if tab, ok := hourly.find("forecast", "tabular"); ok {
		loc.hourly, loc.stats.HourlySkipped = collectForecasts(tab.children("time"))
	}
	if tab, ok := periodic.find("forecast", "tabular"); ok {
		loc.periodic, loc.stats.PeriodicSkipped = collectForecasts(tab.children("time"))
	}

	// Many places have no textual forecasts or observations; their absence
	// is normal, not an error.
	if txt, ok := hourly.find("forecast", "text", "location"); ok {
		loc.textual, loc.stats.TextualSkipped = collectTextualForecasts(txt.children("time"))
	}
	if obs, ok := hourly.child("observations"); ok {
		loc.stations, loc.stats.StationsSkipped = collectWeatherStations(obs.children("weatherstation"))
	}

	if pl, ok := periodic.child("location"); ok {
		m := convert(pl)
		loc.place.Name, _ = m.str("name")
		loc.place.Type, _ = m.str("type")
		loc.place.Country, _ = m.str("country")
		if tz, ok := m.sub("timezone"); ok {
			loc.place.Timezone, _ = tz.str("id")
		}
		if pos, ok := m.sub("location"); ok {
			loc.place.Latitude, _ = pos.str("latitude")
			loc.place.Longitude, _ = pos.str("longitude")
		}
	}

	if links, ok := periodic.child("links"); ok {
		for _, ln := range links.children("link") {
			m := convert(ln)
			id, _ := m.str("id")
			url, _ := m.str("url")
			if id != "" && url != "" {
				loc.links[id] = url
			}
		}
	}

	if credit, ok := periodic.find("credit", "link"); ok {
		m := convert(credit)
		loc.creditText, _ = m.str("text")
		loc.creditURL, _ = m.str("url")
	}

	meta, ok := periodic.child("meta")
	if !ok {
		return nil, &AssemblyError{Cause: &MissingFieldError{Entity: "location", Field: "meta"}}
	}
	mm := convert(meta)
	last, ok := mm.str("lastupdate")
	if !ok {
		return nil, &AssemblyError{Cause: &MissingFieldError{Entity: "location", Field: "lastupdate"}}
	}
	if loc.lastUpdated, err = time.Parse(xmlTimeLayout, last); err != nil {
		return nil, &AssemblyError{Cause: fmt.Errorf("parsing lastupdate: %w", err)}
	}
	next, ok := mm.str("nextupdate")
	if !ok {
		return nil, &AssemblyError{Cause: &MissingFieldError{Entity: "location", Field: "nextupdate"}}
	}
	if loc.nextUpdate, err = time.Parse(xmlTimeLayout, next); err != nil {
		return nil, &AssemblyError{Cause: fmt.Errorf("parsing nextupdate: %w", err)}
	}

	if sun, ok := periodic.child("sun"); ok {
		m := convert(sun)
		if rise, ok := m.str("rise"); ok {
			if t, err := time.Parse(xmlTimeLayout, rise); err == nil {
				loc.sunrise = t
			}
		}
		if set, ok := m.str("set"); ok {
			if t, err := time.Parse(xmlTimeLayout, set); err == nil {
				loc.sunset = t
			}
		}
	}

	return loc, nil
}

// collectForecasts parses each <time> node, skipping entries the upstream
// left incomplete.
func collectForecasts(nodes []*node) ([]*Forecast, int) {
	var out []*Forecast
	skipped := 0
	for _, n := range nodes {
		f, err := parseForecast(n)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, f)
	}
	return out, skipped
}

func collectTextualForecasts(nodes []*node) ([]*TextualForecast, int) {
	var out []*TextualForecast
	skipped := 0
	for _, n := range nodes {
		t, err := parseTextualForecast(n)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, t)
	}
	return out, skipped
}

func collectWeatherStations(nodes []*node) ([]*WeatherStation, int) {
	var out []*WeatherStation
	skipped := 0
	for _, n := range nodes {
		s, err := parseWeatherStation(n)
		if err != nil {
			skipped++
			continue
		}
		out = append(out, s)
	}
	return out, skipped
}
