package yr

import "time"

// Place holds the metadata of the place a forecast snapshot covers. All
// values are passed through verbatim from the XML.
type Place struct {
	Name      string
	Type      string
	Country   string
	Timezone  string
	Latitude  string
	Longitude string
}

// Stats counts source entries that failed to parse and were skipped while
// assembling a Location. Upstream data is occasionally incomplete; the
// assembly favors a partial-but-usable Location over failing entirely, and
// these counters make that visible.
type Stats struct {
	HourlySkipped   int
	PeriodicSkipped int
	TextualSkipped  int
	StationsSkipped int
}

// Location is the aggregate root for one place's forecast snapshot: place
// metadata, the hourly and periodic forecast lists, optional textual
// forecasts and weather stations, links, credit and update/sun timestamps.
//
// A Location is built once per parse and then read-only. It carries no
// internal locking; share it across goroutines only with external
// synchronization.
type Location struct {
	place Place

	hourly   []*Forecast
	periodic []*Forecast
	textual  []*TextualForecast
	stations []*WeatherStation

	links      map[string]string
	creditText string
	creditURL  string

	lastUpdated time.Time
	nextUpdate  time.Time
	sunrise     time.Time
	sunset      time.Time

	stats Stats
}

// Name returns the place name.
func (l *Location) Name() string { return l.place.Name }

// Type returns the place type, e.g. a city or a village classification.
func (l *Location) Type() string { return l.place.Type }

// Country returns the place country.
func (l *Location) Country() string { return l.place.Country }

// Timezone returns the place timezone identifier, e.g. "Europe/Oslo".
func (l *Location) Timezone() string { return l.place.Timezone }

// LatLong returns the place coordinates as the decimal-degree strings the
// service provided.
func (l *Location) LatLong() (lat, long string) {
	return l.place.Latitude, l.place.Longitude
}

// Links returns the named links to the service frontend.
func (l *Location) Links() map[string]string { return l.links }

// AddLink registers a named link.
func (l *Location) AddLink(name, url string) {
	l.links[name] = url
}

// CreditText returns the attribution text. Display it linked to CreditURL;
// the service terms require it.
func (l *Location) CreditText() string { return l.creditText }

// CreditURL returns the attribution link target.
func (l *Location) CreditURL() string { return l.creditURL }

// LastUpdated returns the time the service last refreshed this data.
func (l *Location) LastUpdated() time.Time { return l.lastUpdated }

// NextUpdate returns the time the service will refresh next.
func (l *Location) NextUpdate() time.Time { return l.nextUpdate }

// Sunrise returns the sunrise time, when the document carried one.
func (l *Location) Sunrise() time.Time { return l.sunrise }

// Sunset returns the sunset time, when the document carried one.
func (l *Location) Sunset() time.Time { return l.sunset }

// Stats returns the per-list skip counters recorded during assembly.
func (l *Location) Stats() Stats { return l.stats }

// HourlyForecasts returns the full hourly forecast list in document order.
func (l *Location) HourlyForecasts() []*Forecast { return l.hourly }

// PeriodicForecasts returns the full periodic forecast list in document
// order. Each entry covers a period-of-day bucket, see Forecast.Period.
func (l *Location) PeriodicForecasts() []*Forecast { return l.periodic }

// HourlyForecastsBetween returns the hourly forecasts starting inside
// [from, to], both ends inclusive. A zero from defaults to now, a zero to
// defaults to one year from now.
func (l *Location) HourlyForecastsBetween(from, to time.Time) []*Forecast {
	return forecastsBetween(l.hourly, from, to)
}

// PeriodicForecastsBetween returns the periodic forecasts starting inside
// [from, to], with the same defaulting as HourlyForecastsBetween.
func (l *Location) PeriodicForecastsBetween(from, to time.Time) []*Forecast {
	return forecastsBetween(l.periodic, from, to)
}

// ForecastAt returns the first hourly forecast starting exactly at t.
func (l *Location) ForecastAt(t time.Time) (*Forecast, bool) {
	matches := forecastsBetween(l.hourly, t, t)
	if len(matches) == 0 {
		return nil, false
	}
	return matches[0], true
}

// CurrentForecast returns the first entry of the hourly list, whose
// natural order is chronological. No sorting is performed internally.
func (l *Location) CurrentForecast() (*Forecast, bool) {
	if len(l.hourly) == 0 {
		return nil, false
	}
	return l.hourly[0], true
}

// TextualForecasts returns the textual forecasts. Empty for places the
// service publishes none for.
func (l *Location) TextualForecasts() []*TextualForecast { return l.textual }

// WeatherStations returns the nearby observation stations. Empty for
// places without observations.
func (l *Location) WeatherStations() []*WeatherStation { return l.stations }

// forecastsBetween returns, in original list order, every forecast whose
// start falls inside [from, to], both ends inclusive. The unset defaults
// are applied per bound: a zero from means now, a zero to means one year
// from now.
func forecastsBetween(forecasts []*Forecast, from, to time.Time) []*Forecast {
	if from.IsZero() {
		from = time.Now()
	}
	if to.IsZero() {
		to = time.Now().AddDate(1, 0, 0)
	}

	var result []*Forecast
	for _, f := range forecasts {
		if !f.from.Before(from) && !f.from.After(to) {
			result = append(result, f)
		}
	}
	return result
}
