// Package panchang derives the Hindu calendar elements of a day: tithi,
// nakshatra, yoga and karana, together with sunrise-relative windows such as
// Rahu Kaal and the auspicious muhurats.
//
// Every function takes an explicit time. Its wall clock is read as India
// Standard Time, so callers should construct or convert times in astro.IST.
package panchang

import (
	"time"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// Location is an observing site used for sunrise and sunset.
type Location struct {
	Name      string  `json:"name" mapstructure:"name"`
	Latitude  float64 `json:"latitude" mapstructure:"latitude"`   // degrees, north positive
	Longitude float64 `json:"longitude" mapstructure:"longitude"` // degrees, east positive
}

// ReferenceLocation is the fixed site for every sunrise-based calculation,
// whatever location the caller is asking about.
var ReferenceLocation = Location{
	Name:      "Delhi",
	Latitude:  28.6139,
	Longitude: 77.2090,
}

// solarNoon is the fixed local solar noon in decimal hours.
const solarNoon = 12.0

// Calculator computes Panchang elements for a reference site and ayanamsa.
// The zero value is not usable; use NewCalculator.
type Calculator struct {
	Location Location
	Ayanamsa float64
}

// NewCalculator returns a calculator on ReferenceLocation with the default
// ayanamsa.
func NewCalculator() *Calculator {
	return &Calculator{
		Location: ReferenceLocation,
		Ayanamsa: astro.DefaultAyanamsa,
	}
}

var defaultCalculator = NewCalculator()

// bodies returns the Sun and Moon for the calendar time axis.
func (c *Calculator) bodies(t time.Time) (astro.SolarCoords, astro.LunarCoords) {
	jd := astro.PanchangJulianDay(t)
	return astro.SolarPosition(jd), astro.LunarPosition(jd)
}

// elongation returns (moon - sun) normalized to [0, 360).
func elongation(sun astro.SolarCoords, moon astro.LunarCoords) float64 {
	return astro.Normalize360(moon.Longitude - sun.Longitude)
}

// Tithi calculates the tithi on the default calculator.
func Tithi(t time.Time) TithiInfo { return defaultCalculator.Tithi(t) }

// Nakshatra calculates the nakshatra on the default calculator.
func Nakshatra(t time.Time) NakshatraInfo { return defaultCalculator.Nakshatra(t) }

// Yoga calculates the yoga on the default calculator.
func Yoga(t time.Time) YogaInfo { return defaultCalculator.Yoga(t) }

// Karana calculates the karana on the default calculator.
func Karana(t time.Time) KaranaInfo { return defaultCalculator.Karana(t) }

// Daylight calculates sunrise and sunset on the default calculator.
func Daylight(t time.Time) DaylightHours { return defaultCalculator.Daylight(t) }

// RahuKaal calculates Rahu Kaal on the default calculator.
func RahuKaal(t time.Time) TimeWindow { return defaultCalculator.RahuKaal(t) }

// AuspiciousTimes calculates the muhurats on the default calculator.
func AuspiciousTimes(t time.Time, tithi TithiInfo) AuspiciousTimings {
	return defaultCalculator.AuspiciousTimes(t, tithi)
}

// Calculate builds the full day record on the default calculator.
func Calculate(t time.Time) Day { return defaultCalculator.Calculate(t) }
