package panchang

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTime is returned when an "HH:MM" clock string cannot be parsed.
var ErrInvalidTime = errors.New("invalid clock time")

// DecimalToTime formats decimal hours as "HH:MM", rounding to the nearest
// minute. Hours wrap around midnight in both directions.
func DecimalToTime(decimal float64) string {
	totalMinutes := int(math.Round(decimal * 60))
	totalMinutes = ((totalMinutes % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", totalMinutes/60, totalMinutes%60)
}

// TimeToDecimal parses an "HH:MM" clock string into decimal hours.
func TimeToDecimal(clock string) (float64, error) {
	parts := strings.Split(strings.TrimSpace(clock), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: hour in %q", ErrInvalidTime, clock)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: minute in %q", ErrInvalidTime, clock)
	}

	return float64(hours) + float64(minutes)/60, nil
}

// clockDecimal returns the wall-clock time of t in decimal hours.
func clockDecimal(t time.Time) float64 {
	return float64(t.Hour()) + float64(t.Minute())/60
}

// IsWithinMuhurat reports whether the wall clock of now lies inside the
// window [start, end], bounds inclusive.
func IsWithinMuhurat(start, end string, now time.Time) (bool, error) {
	s, err := TimeToDecimal(start)
	if err != nil {
		return false, err
	}
	e, err := TimeToDecimal(end)
	if err != nil {
		return false, err
	}

	current := clockDecimal(now)
	return current >= s && current <= e, nil
}

// IsTimeOverlapping reports whether [start1, end1) and [start2, end2) share
// any time.
func IsTimeOverlapping(start1, end1, start2, end2 string) (bool, error) {
	var vals [4]float64
	for i, clock := range []string{start1, end1, start2, end2} {
		v, err := TimeToDecimal(clock)
		if err != nil {
			return false, err
		}
		vals[i] = v
	}

	return vals[0] < vals[3] && vals[2] < vals[1], nil
}
