package ephemeris

import (
	"fmt"
	"strings"
	"time"
)

// SecondsPerDay is the number of seconds in one day.
const SecondsPerDay = 86400.0

// j2000JD is the Julian date of the J2000 reference epoch.
const j2000JD = 2451545.0

// j2000 is the J2000 reference instant (2000 Jan 01 12:00:00).
// The ~69 s TDB-UTC offset is ignored; calendar conversions here feed
// plot axes and CSV timestamps, not integrator state.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// epochLayout is the SPICE "C" calendar format with millisecond precision,
// e.g. "2025 JAN 01 00:00:00.000".
const epochLayout = "2006 Jan 02 15:04:05.000"

// Epoch represents an absolute point in time as seconds past J2000.
// Epochs are totally ordered by their numeric value.
type Epoch float64

// FromTime converts a calendar timestamp to an Epoch.
func FromTime(t time.Time) Epoch {
	return Epoch(t.Sub(j2000).Seconds())
}

// Time converts the epoch back to a calendar timestamp in UTC.
func (e Epoch) Time() time.Time {
	return j2000.Add(time.Duration(float64(e) * float64(time.Second)))
}

// JulianDate returns the epoch as a Julian date.
func (e Epoch) JulianDate() float64 {
	return j2000JD + float64(e)/SecondsPerDay
}

// AddDays returns the epoch shifted by the given number of days.
func (e Epoch) AddDays(days float64) Epoch {
	return e + Epoch(days*SecondsPerDay)
}

// Format renders the epoch in the SPICE calendar format used across
// the catalog, CSV exports, and command-line flags.
func (e Epoch) Format() string {
	return strings.ToUpper(e.Time().Format(epochLayout))
}

// ParseEpoch parses a calendar epoch string such as
// "2025 JAN 01 00:00:00 TDB". A trailing time-scale token (TDB, TDT, UTC)
// is accepted and ignored; month names are case-insensitive.
func ParseEpoch(s string) (Epoch, error) {
	trimmed := strings.TrimSpace(s)
	for _, scale := range []string{" TDB", " TDT", " UTC"} {
		if strings.HasSuffix(strings.ToUpper(trimmed), scale) {
			trimmed = strings.TrimSpace(trimmed[:len(trimmed)-len(scale)])
			break
		}
	}

	layouts := []string{
		epochLayout,
		"2006 Jan 02 15:04:05",
		"2006 Jan 02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return FromTime(t), nil
		}
	}
	return 0, fmt.Errorf("unrecognized epoch %q (expected e.g. \"2025 JAN 01 00:00:00\")", s)
}
