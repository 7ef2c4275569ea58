package panchang

import (
	"math"
	"time"
)

// Paksha is the lunar fortnight.
type Paksha string

const (
	Shukla  Paksha = "Shukla"  // waxing
	Krishna Paksha = "Krishna" // waning
)

const (
	tithiWidth       = 12.0 // degrees of elongation per tithi
	tithiSearchSteps = 24   // hourly samples from local midnight

	tithiStartFallback = "00:00"
	tithiEndFallback   = "23:59"
)

var tithiNames = [15]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima/Amavasya",
}

// TithiInfo describes the lunar day in force at a given time.
type TithiInfo struct {
	Number    int     `json:"number"` // 1-30 across both pakshas
	Name      string  `json:"name"`
	Paksha    Paksha  `json:"paksha"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Degrees   float64 `json:"degrees"` // Moon-Sun elongation
}

// Tithi calculates the tithi at t. Start and end are located by sampling
// the elongation hourly from t's local midnight; when no sample reaches a
// bound within the day the fallbacks "00:00" and "23:59" are used.
func (c *Calculator) Tithi(t time.Time) TithiInfo {
	angle := elongation(c.bodies(t))

	number := int(math.Floor(angle/tithiWidth)) + 1
	paksha := Shukla
	if number > 15 {
		paksha = Krishna
	}

	startDegree := float64(number-1) * tithiWidth
	endDegree := startDegree + tithiWidth

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	var startAt, endAt *time.Time
	for i := 0; i < tithiSearchSteps; i++ {
		check := midnight.Add(time.Duration(i) * time.Hour)
		a := elongation(c.bodies(check))

		if a >= startDegree && startAt == nil {
			startAt = &check
		}
		if a >= endDegree && endAt == nil {
			endAt = &check
			break
		}
	}

	info := TithiInfo{
		Number:    number,
		Name:      tithiNames[(number-1)%15],
		Paksha:    paksha,
		StartTime: tithiStartFallback,
		EndTime:   tithiEndFallback,
		Degrees:   angle,
	}
	if startAt != nil {
		info.StartTime = DecimalToTime(clockDecimal(*startAt))
	}
	if endAt != nil {
		info.EndTime = DecimalToTime(clockDecimal(*endAt))
	}
	return info
}
