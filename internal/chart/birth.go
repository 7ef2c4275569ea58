package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// BirthDetails is the raw birth input as entered by a user.
type BirthDetails struct {
	Date      string `json:"date"`      // YYYY-MM-DD
	Time      string `json:"time"`      // HH:MM, local clock
	Latitude  string `json:"latitude"`  // signed degrees
	Longitude string `json:"longitude"` // signed degrees
	Timezone  string `json:"timezone"`  // offset label, informational only
}

// BirthMoment is a validated birth input.
type BirthMoment struct {
	Year, Month, Day int
	Hour, Minute     int
	Latitude         float64
	Longitude        float64
}

// JulianDay returns the Julian Day of the birth clock. The clock is not
// shifted by the timezone label.
func (b BirthMoment) JulianDay() float64 {
	return astro.JulianDay(b.Year, b.Month, b.Day, float64(b.Hour), float64(b.Minute))
}

// Validate parses and range-checks the details. Every failure wraps
// ErrInvalidBirthDetails.
func (d BirthDetails) Validate() (BirthMoment, error) {
	date, err := time.Parse("2006-01-02", strings.TrimSpace(d.Date))
	if err != nil {
		return BirthMoment{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidBirthDetails, d.Date)
	}
	clock, err := time.Parse("15:04", strings.TrimSpace(d.Time))
	if err != nil {
		return BirthMoment{}, fmt.Errorf("%w: time %q must be HH:MM", ErrInvalidBirthDetails, d.Time)
	}

	lat, err := parseCoordinate("latitude", d.Latitude, 90)
	if err != nil {
		return BirthMoment{}, err
	}
	lon, err := parseCoordinate("longitude", d.Longitude, 180)
	if err != nil {
		return BirthMoment{}, err
	}

	return BirthMoment{
		Year:      date.Year(),
		Month:     int(date.Month()),
		Day:       date.Day(),
		Hour:      clock.Hour(),
		Minute:    clock.Minute(),
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

func parseCoordinate(field, raw string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidBirthDetails, field, raw)
	}
	if v < -limit || v > limit {
		return 0, fmt.Errorf("%w: %s %v outside [-%v, %v]", ErrInvalidBirthDetails, field, v, limit, limit)
	}
	return v, nil
}
