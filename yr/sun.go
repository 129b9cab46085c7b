package yr

import (
	"fmt"
	"strconv"
	"time"

	"github.com/sixdouglas/suncalc"
)

// SunTimes computes sunrise and sunset at the location's coordinates for
// an arbitrary date. The XML-provided Sunrise/Sunset stay authoritative
// for the snapshot's own day; this covers dates the feed does not carry.
func (l *Location) SunTimes(date time.Time) (rise, set time.Time, err error) {
	lat, err := strconv.ParseFloat(l.place.Latitude, 64)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("location has no usable latitude: %w", err)
	}
	long, err := strconv.ParseFloat(l.place.Longitude, 64)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("location has no usable longitude: %w", err)
	}

	times := suncalc.GetTimes(date, lat, long)
	return times["sunrise"].Value, times["sunset"].Value, nil
}
