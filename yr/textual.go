package yr

import (
	"fmt"
	"time"
)

// xmlDateLayout is the day-granularity format used for textual forecast
// boundaries.
const xmlDateLayout = "2006-01-02"

// TextualForecast is a human readable summary covering one or two days.
// The body may embed markup. Note: the service only publishes these in
// Norwegian, and only for some places.
type TextualForecast struct {
	title string
	text  string
	from  time.Time
	to    time.Time
}

// NewTextualForecast builds a TextualForecast, failing with an
// InvalidArgumentError when title or text is empty. A zero to collapses to
// from (a single-day forecast).
func NewTextualForecast(title, text string, from, to time.Time) (*TextualForecast, error) {
	if title == "" {
		return nil, &InvalidArgumentError{Field: "title", Reason: "must not be empty"}
	}
	if text == "" {
		return nil, &InvalidArgumentError{Field: "text", Reason: "must not be empty"}
	}
	if to.IsZero() {
		to = from
	}
	return &TextualForecast{title: title, text: text, from: from, to: to}, nil
}

// parseTextualForecast builds a TextualForecast from one <time> node of the
// forecast text section.
func parseTextualForecast(n *node) (*TextualForecast, error) {
	m := convert(n)

	title, _ := m.str("title")
	text, _ := m.str("body")

	fromStr, ok := m.str("from")
	if !ok {
		return nil, &MissingFieldError{Entity: "textual forecast", Field: "from"}
	}
	from, err := time.Parse(xmlDateLayout, fromStr)
	if err != nil {
		return nil, fmt.Errorf("textual forecast: parsing from: %w", err)
	}

	var to time.Time
	if toStr, ok := m.str("to"); ok {
		if to, err = time.Parse(xmlDateLayout, toStr); err != nil {
			return nil, fmt.Errorf("textual forecast: parsing to: %w", err)
		}
	}

	return NewTextualForecast(title, text, from, to)
}

// Title returns the forecast headline.
func (t *TextualForecast) Title() string { return t.title }

// Text returns the forecast body. It may contain markup.
func (t *TextualForecast) Text() string { return t.text }

// From returns the first day the forecast covers.
func (t *TextualForecast) From() time.Time { return t.from }

// To returns the last day the forecast covers. Equal to From for
// single-day forecasts.
func (t *TextualForecast) To() time.Time { return t.to }
