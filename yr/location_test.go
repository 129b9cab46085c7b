package yr

import (
	"testing"
	"time"
)

func forecastStartingAt(from time.Time) *Forecast {
	return &Forecast{from: from, to: from.Add(time.Hour)}
}

func TestForecastsBetweenInclusiveBounds(t *testing.T) {
	base := time.Date(2016, 1, 23, 22, 0, 0, 0, time.UTC)
	list := []*Forecast{
		forecastStartingAt(base),
		forecastStartingAt(base.Add(1 * time.Hour)),
		forecastStartingAt(base.Add(2 * time.Hour)),
		forecastStartingAt(base.Add(3 * time.Hour)),
	}

	// Both endpoints are inclusive.
	got := forecastsBetween(list, base.Add(1*time.Hour), base.Add(2*time.Hour))
	if len(got) != 2 {
		t.Fatalf("got %d forecasts, want 2", len(got))
	}
	if !got[0].From().Equal(base.Add(1 * time.Hour)) {
		t.Errorf("first match starts at %v, want the from boundary included", got[0].From())
	}
	if !got[1].From().Equal(base.Add(2 * time.Hour)) {
		t.Errorf("second match starts at %v, want the to boundary included", got[1].From())
	}

	// Order is the original list order.
	all := forecastsBetween(list, base, base.Add(3*time.Hour))
	for i := 1; i < len(all); i++ {
		if all[i].From().Before(all[i-1].From()) {
			t.Error("results must keep original list order")
		}
	}
}

func TestForecastsBetweenDefaults(t *testing.T) {
	now := time.Now()
	list := []*Forecast{
		forecastStartingAt(now.Add(-2 * time.Hour)), // past, excluded
		forecastStartingAt(now.Add(1 * time.Hour)),
		forecastStartingAt(now.AddDate(0, 6, 0)),
		forecastStartingAt(now.AddDate(2, 0, 0)), // beyond one year, excluded
	}

	// Unset bounds default to [now, now+1y].
	got := forecastsBetween(list, time.Time{}, time.Time{})
	if len(got) != 2 {
		t.Fatalf("got %d forecasts, want 2", len(got))
	}

	explicit := forecastsBetween(list, time.Now(), time.Now().AddDate(1, 0, 0))
	if len(explicit) != len(got) {
		t.Errorf("explicit now/now+1y window returned %d, default window %d", len(explicit), len(got))
	}

	// Each bound defaults independently.
	from := forecastsBetween(list, now.AddDate(0, 3, 0), time.Time{})
	if len(from) != 1 {
		t.Errorf("explicit from with defaulted to returned %d forecasts, want 1", len(from))
	}
}

func TestForecastAt(t *testing.T) {
	base := time.Date(2016, 1, 23, 22, 0, 0, 0, time.UTC)
	loc := &Location{hourly: []*Forecast{
		forecastStartingAt(base),
		forecastStartingAt(base.Add(time.Hour)),
	}}

	f, ok := loc.ForecastAt(base.Add(time.Hour))
	if !ok {
		t.Fatal("expected a forecast at the exact start time")
	}
	if !f.From().Equal(base.Add(time.Hour)) {
		t.Errorf("ForecastAt returned forecast starting %v", f.From())
	}

	if _, ok := loc.ForecastAt(base.Add(30 * time.Minute)); ok {
		t.Error("no forecast starts at that instant; want none")
	}
}

func TestCurrentForecast(t *testing.T) {
	base := time.Date(2016, 1, 23, 22, 0, 0, 0, time.UTC)
	loc := &Location{hourly: []*Forecast{
		forecastStartingAt(base),
		forecastStartingAt(base.Add(time.Hour)),
	}}

	f, ok := loc.CurrentForecast()
	if !ok || !f.From().Equal(base) {
		t.Errorf("CurrentForecast() = %v, %v; want the first hourly entry", f, ok)
	}

	empty := &Location{}
	if _, ok := empty.CurrentForecast(); ok {
		t.Error("an empty hourly list has no current forecast")
	}
}

func TestAddLink(t *testing.T) {
	loc := &Location{links: map[string]string{}}
	loc.AddLink("overview", "http://www.yr.no/place/Norway/Oslo/Oslo/Oslo/")

	if got := loc.Links()["overview"]; got != "http://www.yr.no/place/Norway/Oslo/Oslo/Oslo/" {
		t.Errorf("Links()[overview] = %q", got)
	}
}
