package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Date of epoch J2000.0.
const J2000 = 2451545.0

// ISTOffsetHours is the India Standard Time offset from UTC in hours.
// The calendar path assumes every wall clock it reads is on IST.
const ISTOffsetHours = 5.5

// IST is India Standard Time as a fixed zone.
var IST = time.FixedZone("IST", int(ISTOffsetHours*3600))

// JulianDay converts a Gregorian calendar date and clock time to a Julian Day.
//
// The clock is not shifted to UTC: local time is treated as if it were on the
// reference meridian. Callers that need timezone correctness adjust first.
func JulianDay(year, month, day int, hour, minute float64) float64 {
	y := float64(year)
	m := float64(month)

	// January and February count as months 13 and 14 of the previous year
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		float64(day) + B - 1524.5 +
		hour/24 + minute/1440
}

// JulianDate returns the Julian Date for the wall clock of t, including
// seconds. Like JulianDay, no conversion to UTC is made.
func JulianDate(t time.Time) float64 {
	h := float64(t.Hour())
	min := float64(t.Minute()) + float64(t.Second())/60 + float64(t.Nanosecond())/60e9
	return JulianDay(t.Year(), int(t.Month()), t.Day(), h, min)
}

// PanchangJulianDay returns the Julian Day used by the calendar path. The
// wall clock of t is read as IST regardless of t's location and shifted back
// to UT by the fixed offset.
func PanchangJulianDay(t time.Time) float64 {
	hours := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return JulianDay(t.Year(), int(t.Month()), t.Day(), hours-ISTOffsetHours, 0)
}

// JulianCenturies returns Julian centuries elapsed since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525.0
}
