package yr

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// xmlTimeLayout is the timestamp format used throughout the yr XML
// payloads.
const xmlTimeLayout = "2006-01-02T15:04:05"

// Forecast represents one time interval of weather: a single hour for
// hourly forecasts, a period-of-day bucket for periodic ones. All values
// are passed through verbatim as provided by the service, including unit
// tags.
type Forecast struct {
	from time.Time
	to   time.Time

	// Raw period string. Empty means the source carried no period, which
	// is distinct from a literal "0".
	period string

	symbol        AttributeBag
	precipitation AttributeBag
	windDirection AttributeBag
	windSpeed     AttributeBag
	temperature   AttributeBag
	pressure      AttributeBag
}

// parseForecast builds a Forecast from one <time> node. It fails with a
// MissingFieldError when from, to or any of the six attribute groups is
// absent, and with a wrapped parse error when a timestamp does not match
// the fixed layout.
func parseForecast(n *node) (*Forecast, error) {
	m := convert(n)

	from, ok := m.str("from")
	if !ok {
		return nil, &MissingFieldError{Entity: "forecast", Field: "from"}
	}
	to, ok := m.str("to")
	if !ok {
		return nil, &MissingFieldError{Entity: "forecast", Field: "to"}
	}

	f := &Forecast{}
	var err error
	if f.from, err = time.Parse(xmlTimeLayout, from); err != nil {
		return nil, fmt.Errorf("forecast: parsing from: %w", err)
	}
	if f.to, err = time.Parse(xmlTimeLayout, to); err != nil {
		return nil, fmt.Errorf("forecast: parsing to: %w", err)
	}
	f.period, _ = m.str("period")

	for _, b := range []struct {
		key string
		dst *AttributeBag
	}{
		{"symbol", &f.symbol},
		{"precipitation", &f.precipitation},
		{"windDirection", &f.windDirection},
		{"windSpeed", &f.windSpeed},
		{"temperature", &f.temperature},
		{"pressure", &f.pressure},
	} {
		bag, ok := m.bag(b.key)
		if !ok {
			return nil, &MissingFieldError{Entity: "forecast", Field: b.key}
		}
		*b.dst = bag
	}

	return f, nil
}

// From returns the interval start (inclusive).
func (f *Forecast) From() time.Time { return f.from }

// To returns the interval end.
func (f *Forecast) To() time.Time { return f.to }

// SetFrom overrides the interval start. Intended for tests and overrides.
func (f *Forecast) SetFrom(t time.Time) { f.from = t }

// SetTo overrides the interval end.
func (f *Forecast) SetTo(t time.Time) { f.to = t }

// Period returns the time-of-day bucket (0-4) for periodic forecasts. The
// second return is false for hourly forecasts, which carry no period; a
// source period of "0" is a valid period, not an absent one.
func (f *Forecast) Period() (int, bool) {
	if f.period == "" {
		return 0, false
	}
	p, err := strconv.Atoi(f.period)
	if err != nil {
		return 0, false
	}
	return p, true
}

// SetPeriod overrides the period bucket.
func (f *Forecast) SetPeriod(p int) { f.period = strconv.Itoa(p) }

// Symbol returns the named symbol attribute: number, name or var. An empty
// key selects "name".
func (f *Forecast) Symbol(key string) (string, bool) {
	if key == "" {
		key = "name"
	}
	return f.symbol.Get(key)
}

// Precipitation returns the named precipitation attribute: value, minvalue
// or maxvalue. An empty key selects "value".
func (f *Forecast) Precipitation(key string) (string, bool) {
	if key == "" {
		key = "value"
	}
	return f.precipitation.Get(key)
}

// WindDirection returns the named wind direction attribute: deg, code or
// name. An empty key selects "code".
func (f *Forecast) WindDirection(key string) (string, bool) {
	if key == "" {
		key = "code"
	}
	return f.windDirection.Get(key)
}

// WindSpeed returns the named wind speed attribute: mps or name. An empty
// key selects "mps".
func (f *Forecast) WindSpeed(key string) (string, bool) {
	if key == "" {
		key = "mps"
	}
	return f.windSpeed.Get(key)
}

// Temperature returns the named temperature attribute: value or unit. An
// empty key selects "value".
func (f *Forecast) Temperature(key string) (string, bool) {
	if key == "" {
		key = "value"
	}
	return f.temperature.Get(key)
}

// Pressure returns the named pressure attribute: value or unit. An empty
// key selects "value".
func (f *Forecast) Pressure(key string) (string, bool) {
	if key == "" {
		key = "value"
	}
	return f.pressure.Get(key)
}

// SymbolAttrs returns the whole symbol attribute bag.
func (f *Forecast) SymbolAttrs() AttributeBag { return f.symbol }

// PrecipitationAttrs returns the whole precipitation attribute bag.
func (f *Forecast) PrecipitationAttrs() AttributeBag { return f.precipitation }

// WindDirectionAttrs returns the whole wind direction attribute bag.
func (f *Forecast) WindDirectionAttrs() AttributeBag { return f.windDirection }

// WindSpeedAttrs returns the whole wind speed attribute bag.
func (f *Forecast) WindSpeedAttrs() AttributeBag { return f.windSpeed }

// TemperatureAttrs returns the whole temperature attribute bag.
func (f *Forecast) TemperatureAttrs() AttributeBag { return f.temperature }

// PressureAttrs returns the whole pressure attribute bag.
func (f *Forecast) PressureAttrs() AttributeBag { return f.pressure }

// SetSymbolAttrs overrides the symbol attribute bag.
func (f *Forecast) SetSymbolAttrs(b AttributeBag) { f.symbol = b }

// SetPrecipitationAttrs overrides the precipitation attribute bag.
func (f *Forecast) SetPrecipitationAttrs(b AttributeBag) { f.precipitation = b }

// SetWindDirectionAttrs overrides the wind direction attribute bag.
func (f *Forecast) SetWindDirectionAttrs(b AttributeBag) { f.windDirection = b }

// SetWindSpeedAttrs overrides the wind speed attribute bag.
func (f *Forecast) SetWindSpeedAttrs(b AttributeBag) { f.windSpeed = b }

// SetTemperatureAttrs overrides the temperature attribute bag.
func (f *Forecast) SetTemperatureAttrs(b AttributeBag) { f.temperature = b }

// SetPressureAttrs overrides the pressure attribute bag.
func (f *Forecast) SetPressureAttrs(b AttributeBag) { f.pressure = b }

// WindIconKey returns the bucketed "speed.degree" key used to pick a
// wind-direction pictogram asset, e.g. "0250.100". Speeds of 0.2 mps and
// below (and missing speeds) yield the sentinel "0", the no-wind icon.
func (f *Forecast) WindIconKey() string {
	mps, _ := f.WindSpeed("mps")
	speed, err := strconv.ParseFloat(mps, 64)
	if err != nil || speed <= 0.2 {
		return "0"
	}

	speedBucket := int(math.Round(speed/2.5) * 2.5 * 10)

	var deg float64
	if d, ok := f.WindDirection("deg"); ok {
		deg, _ = strconv.ParseFloat(d, 64)
	}
	degBucket := int(math.Round(deg/10)) * 10
	if degBucket >= 360 {
		degBucket = 0
	}

	return fmt.Sprintf("%04d.%03d", speedBucket, degBucket)
}
