package main

import (
	"fmt"
	"time"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// parseMoment reads --date and --time as an IST wall clock. Missing parts
// come from now.
func parseMoment(date, clock string, now time.Time) (time.Time, error) {
	now = now.In(astro.IST)
	if date == "" {
		date = now.Format("2006-01-02")
	}
	if clock == "" {
		clock = now.Format("15:04")
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+clock, astro.IST)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q or --time %q: want YYYY-MM-DD and HH:MM", date, clock)
	}
	return t, nil
}
