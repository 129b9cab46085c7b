package yr

import (
	"errors"
	"testing"
	"time"
)

func TestNewTextualForecastValidation(t *testing.T) {
	day := time.Date(2016, 1, 23, 0, 0, 0, 0, time.UTC)

	if _, err := NewTextualForecast("", "body", day, day); err == nil {
		t.Error("expected an error for empty title")
	} else {
		var invalid *InvalidArgumentError
		if !errors.As(err, &invalid) {
			t.Errorf("expected InvalidArgumentError, got %v", err)
		}
	}

	if _, err := NewTextualForecast("title", "", day, day); err == nil {
		t.Error("expected an error for empty text")
	}
}

func TestNewTextualForecastSingleDay(t *testing.T) {
	day := time.Date(2016, 1, 23, 0, 0, 0, 0, time.UTC)

	tf, err := NewTextualForecast("Lørdag", "Skyet.", day, time.Time{})
	if err != nil {
		t.Fatalf("NewTextualForecast returned error: %v", err)
	}
	if !tf.To().Equal(tf.From()) {
		t.Errorf("To() = %v, want it to collapse to From() %v", tf.To(), tf.From())
	}
}

func TestParseTextualForecast(t *testing.T) {
	n := mustParse(t, `<time from="2016-01-23" to="2016-01-24">
		<title>Lørdag og søndag</title>
		<body>&lt;strong&gt;Østlandet:&lt;/strong&gt; Skyet.</body>
	</time>`)

	tf, err := parseTextualForecast(n)
	if err != nil {
		t.Fatalf("parseTextualForecast returned error: %v", err)
	}

	if tf.Title() != "Lørdag og søndag" {
		t.Errorf("Title() = %q", tf.Title())
	}
	if tf.Text() != "<strong>Østlandet:</strong> Skyet." {
		t.Errorf("Text() = %q, markup should survive", tf.Text())
	}
	if !tf.From().Equal(time.Date(2016, 1, 23, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("From() = %v", tf.From())
	}
	if !tf.To().Equal(time.Date(2016, 1, 24, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("To() = %v", tf.To())
	}
}

func TestParseTextualForecastMissingBody(t *testing.T) {
	n := mustParse(t, `<time from="2016-01-23" to="2016-01-24">
		<title>Lørdag</title>
	</time>`)

	if _, err := parseTextualForecast(n); err == nil {
		t.Fatal("expected an error for a missing body")
	}
}
