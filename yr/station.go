package yr

import (
	"fmt"
	"strconv"
)

// WeatherStation is a nearby observation point. Its embedded Forecast is
// typically partial: only the symbol, temperature and wind groups are
// reported, while from/to, precipitation and pressure stay unset. Callers
// must not assume completeness.
type WeatherStation struct {
	name     string
	distance int
	lat      string
	long     string
	source   string
	forecast *Forecast
}

// parseWeatherStation builds a WeatherStation from one <weatherstation>
// node. Missing observation groups are normal and leave the corresponding
// forecast fields unset; only the station identity fields are required.
func parseWeatherStation(n *node) (*WeatherStation, error) {
	m := convert(n)

	s := &WeatherStation{forecast: &Forecast{}}
	for _, req := range []struct {
		key string
		dst *string
	}{
		{"name", &s.name},
		{"lat", &s.lat},
		{"lon", &s.long},
		{"source", &s.source},
	} {
		v, ok := m.str(req.key)
		if !ok {
			return nil, &MissingFieldError{Entity: "weather station", Field: req.key}
		}
		*req.dst = v
	}

	dist, ok := m.str("distance")
	if !ok {
		return nil, &MissingFieldError{Entity: "weather station", Field: "distance"}
	}
	d, err := strconv.Atoi(dist)
	if err != nil {
		return nil, fmt.Errorf("weather station %q: parsing distance: %w", s.name, err)
	}
	s.distance = d

	if bag, ok := m.bag("symbol"); ok {
		s.forecast.symbol = bag
	}
	if bag, ok := m.bag("temperature"); ok {
		s.forecast.temperature = bag
	}
	if bag, ok := m.bag("windDirection"); ok {
		s.forecast.windDirection = bag
	}
	if bag, ok := m.bag("windSpeed"); ok {
		s.forecast.windSpeed = bag
	}

	return s, nil
}

// Name returns the station name.
func (s *WeatherStation) Name() string { return s.name }

// Distance returns the distance from the location, in meters as given by
// the service.
func (s *WeatherStation) Distance() int { return s.distance }

// LatLong returns the station coordinates as the decimal-degree strings
// the service provided.
func (s *WeatherStation) LatLong() (lat, long string) { return s.lat, s.long }

// Source names the institution operating the station.
func (s *WeatherStation) Source() string { return s.source }

// Forecast returns the station's current observation as a partial
// Forecast.
func (s *WeatherStation) Forecast() *Forecast { return s.forecast }
