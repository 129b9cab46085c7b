package httpapi

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/eikland/go-yr/internal/service"
	"github.com/eikland/go-yr/internal/store"
	"github.com/eikland/go-yr/yr"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, svc *service.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/weather/current", func(c *fiber.Ctx) error {
		snap, err := latestSnapshot(c, svc)
		if err != nil {
			return err
		}

		current, ok := snap.Location.CurrentForecast()
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "no hourly forecast available")
		}
		return c.JSON(toForecastDTO(current))
	})

	v1.Get("/weather/hourly", func(c *fiber.Ctx) error {
		return forecastListHandler(c, svc, func(loc *yr.Location, from, to time.Time, windowed bool) []*yr.Forecast {
			if !windowed {
				return loc.HourlyForecasts()
			}
			return loc.HourlyForecastsBetween(from, to)
		})
	})

	v1.Get("/weather/periodic", func(c *fiber.Ctx) error {
		return forecastListHandler(c, svc, func(loc *yr.Location, from, to time.Time, windowed bool) []*yr.Forecast {
			if !windowed {
				return loc.PeriodicForecasts()
			}
			return loc.PeriodicForecastsBetween(from, to)
		})
	})

	v1.Get("/weather/textual", func(c *fiber.Ctx) error {
		snap, err := latestSnapshot(c, svc)
		if err != nil {
			return err
		}

		out := make([]textualDTO, 0, len(snap.Location.TextualForecasts()))
		for _, t := range snap.Location.TextualForecasts() {
			out = append(out, textualDTO{
				Title: t.Title(),
				Text:  t.Text(),
				From:  t.From(),
				To:    t.To(),
			})
		}
		return c.JSON(out)
	})

	v1.Get("/weather/stations", func(c *fiber.Ctx) error {
		snap, err := latestSnapshot(c, svc)
		if err != nil {
			return err
		}

		out := make([]stationDTO, 0, len(snap.Location.WeatherStations()))
		for _, st := range snap.Location.WeatherStations() {
			lat, long := st.LatLong()
			out = append(out, stationDTO{
				Name:        st.Name(),
				Distance:    st.Distance(),
				Latitude:    lat,
				Longitude:   long,
				Source:      st.Source(),
				Observation: toForecastDTO(st.Forecast()),
			})
		}
		return c.JSON(out)
	})

	v1.Get("/weather/meta", func(c *fiber.Ctx) error {
		snap, err := latestSnapshot(c, svc)
		if err != nil {
			return err
		}

		loc := snap.Location
		lat, long := loc.LatLong()
		return c.JSON(metaDTO{
			Place:       snap.Place,
			Name:        loc.Name(),
			Type:        loc.Type(),
			Country:     loc.Country(),
			Timezone:    loc.Timezone(),
			Latitude:    lat,
			Longitude:   long,
			Links:       loc.Links(),
			CreditText:  loc.CreditText(),
			CreditURL:   loc.CreditURL(),
			LastUpdated: loc.LastUpdated(),
			NextUpdate:  loc.NextUpdate(),
			Sunrise:     loc.Sunrise(),
			Sunset:      loc.Sunset(),
			FetchedAt:   snap.FetchedAt,
			Stats:       loc.Stats(),
		})
	})
}

func forecastListHandler(
	c *fiber.Ctx,
	svc *service.Service,
	pick func(loc *yr.Location, from, to time.Time, windowed bool) []*yr.Forecast,
) error {
	var req rangeQuery
	if err := req.bind(c); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	snap, err := svc.Latest(c.Context(), req.Place)
	if err != nil {
		return mapServiceError(err)
	}

	forecasts := pick(snap.Location, req.From, req.To, req.windowed)
	out := make([]forecastDTO, 0, len(forecasts))
	for _, f := range forecasts {
		out = append(out, toForecastDTO(f))
	}
	return c.JSON(out)
}

func latestSnapshot(c *fiber.Ctx, svc *service.Service) (store.Snapshot, error) {
	q, err := parsePlaceQuery(c)
	if err != nil {
		return store.Snapshot{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	snap, err := svc.Latest(c.Context(), q.Place)
	if err != nil {
		return store.Snapshot{}, mapServiceError(err)
	}
	return snap, nil
}

// mapServiceError translates service errors into HTTP status codes.
func mapServiceError(err error) error {
	var invalidArg *yr.InvalidArgumentError
	if errors.As(err, &invalidArg) {
		return fiber.NewError(fiber.StatusBadRequest, invalidArg.Error())
	}
	var unavailable *yr.ServiceUnavailableError
	if errors.As(err, &unavailable) {
		return fiber.NewError(fiber.StatusBadGateway, unavailable.Error())
	}
	if errors.Is(err, store.ErrNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "no weather data for requested place")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "failed to fetch weather data")
}

// placeQuery holds the query parameter identifying a place.
type placeQuery struct {
	Place string `validate:"required"`
}

func parsePlaceQuery(c *fiber.Ctx) (placeQuery, error) {
	q := placeQuery{Place: c.Query("place")}
	if err := validate.Struct(q); err != nil {
		return q, err
	}
	return q, nil
}

// rangeQuery holds query parameters for the forecast list endpoints. from
// and to are optional; providing either switches to the windowed query.
type rangeQuery struct {
	Place string `validate:"required"`
	From  time.Time
	To    time.Time

	windowed bool
}

func (r *rangeQuery) bind(c *fiber.Ctx) error {
	q, err := parsePlaceQuery(c)
	if err != nil {
		return err
	}
	r.Place = q.Place

	if fromStr := c.Query("from"); fromStr != "" {
		from, err := parseTime(fromStr)
		if err != nil {
			return err
		}
		r.From = from
		r.windowed = true
	}
	if toStr := c.Query("to"); toStr != "" {
		to, err := parseTime(toStr)
		if err != nil {
			return err
		}
		r.To = to
		r.windowed = true
	}
	return nil
}

// parseTime tries to parse either RFC3339 or Unix seconds.
func parseTime(s string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return ts, nil
	}
	if unix, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(unix, 0).UTC(), nil
	}
	return time.Time{}, errors.New("invalid time format; use RFC3339 or unix seconds")
}

type forecastDTO struct {
	From          *time.Time      `json:"from,omitempty"`
	To            *time.Time      `json:"to,omitempty"`
	Period        *int            `json:"period,omitempty"`
	Symbol        yr.AttributeBag `json:"symbol,omitempty"`
	Precipitation yr.AttributeBag `json:"precipitation,omitempty"`
	WindDirection yr.AttributeBag `json:"windDirection,omitempty"`
	WindSpeed     yr.AttributeBag `json:"windSpeed,omitempty"`
	Temperature   yr.AttributeBag `json:"temperature,omitempty"`
	Pressure      yr.AttributeBag `json:"pressure,omitempty"`
	WindIconKey   string          `json:"windIconKey"`
}

// toForecastDTO flattens a Forecast for JSON output. Station observations
// are partial Forecasts, so zero timestamps and absent bags are omitted.
func toForecastDTO(f *yr.Forecast) forecastDTO {
	dto := forecastDTO{
		Symbol:        f.SymbolAttrs(),
		Precipitation: f.PrecipitationAttrs(),
		WindDirection: f.WindDirectionAttrs(),
		WindSpeed:     f.WindSpeedAttrs(),
		Temperature:   f.TemperatureAttrs(),
		Pressure:      f.PressureAttrs(),
		WindIconKey:   f.WindIconKey(),
	}
	if from := f.From(); !from.IsZero() {
		dto.From = &from
	}
	if to := f.To(); !to.IsZero() {
		dto.To = &to
	}
	if p, ok := f.Period(); ok {
		dto.Period = &p
	}
	return dto
}

type textualDTO struct {
	Title string    `json:"title"`
	Text  string    `json:"text"`
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
}

type stationDTO struct {
	Name        string      `json:"name"`
	Distance    int         `json:"distance"`
	Latitude    string      `json:"lat"`
	Longitude   string      `json:"lon"`
	Source      string      `json:"source"`
	Observation forecastDTO `json:"observation"`
}

type metaDTO struct {
	Place       string            `json:"place"`
	Name        string            `json:"name"`
	Type        string            `json:"type"`
	Country     string            `json:"country"`
	Timezone    string            `json:"timezone"`
	Latitude    string            `json:"lat"`
	Longitude   string            `json:"lon"`
	Links       map[string]string `json:"links"`
	CreditText  string            `json:"creditText"`
	CreditURL   string            `json:"creditUrl"`
	LastUpdated time.Time         `json:"lastUpdated"`
	NextUpdate  time.Time         `json:"nextUpdate"`
	Sunrise     time.Time         `json:"sunrise"`
	Sunset      time.Time         `json:"sunset"`
	FetchedAt   time.Time         `json:"fetchedAt"`
	Stats       yr.Stats          `json:"parseStats"`
}
