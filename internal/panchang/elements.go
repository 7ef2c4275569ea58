package panchang

import (
	"math"
	"time"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// NakshatraWidth is the span of one lunar mansion: 13°20'.
const NakshatraWidth = 360.0 / 27

var nakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

var yogaNames = [27]string{
	"Vishkumbha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyan", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// Only the repeating movable karanas; the fixed karanas at the month
// boundaries are not distinguished.
var karanaNames = [10]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Garija",
	"Vanija", "Vishti", "Shakuni", "Chatushpada", "Naga",
}

// NakshatraInfo identifies the lunar mansion of the Moon.
type NakshatraInfo struct {
	Index int    `json:"index"` // 0-26
	Name  string `json:"name"`
	Pada  int    `json:"pada"` // quarter, 1-4
}

// YogaInfo identifies the yoga of a moment.
type YogaInfo struct {
	Index int    `json:"index"` // 0-26
	Name  string `json:"name"`
}

// KaranaInfo identifies the karana (half-tithi) of a moment.
type KaranaInfo struct {
	Index int    `json:"index"` // 0-9
	Name  string `json:"name"`
}

// NakshatraAt returns the nakshatra of a sidereal longitude. It is shared
// with the chart engine for the birth nakshatra.
func NakshatraAt(siderealLon float64) NakshatraInfo {
	lon := astro.Normalize360(siderealLon)

	idx := int(math.Floor(lon / NakshatraWidth))
	if idx >= 27 {
		idx = 0
	}

	position := math.Mod(lon, NakshatraWidth)
	pada := int(math.Floor(position/(NakshatraWidth/4))) + 1
	if pada > 4 {
		pada = 4
	}

	return NakshatraInfo{Index: idx, Name: nakshatraNames[idx], Pada: pada}
}

// Nakshatra calculates the Moon's nakshatra at t.
func (c *Calculator) Nakshatra(t time.Time) NakshatraInfo {
	_, moon := c.bodies(t)
	return NakshatraAt(astro.Sidereal(moon.Longitude, c.Ayanamsa))
}

// Yoga calculates the yoga at t from the sum of sidereal solar and lunar
// longitudes.
func (c *Calculator) Yoga(t time.Time) YogaInfo {
	sun, moon := c.bodies(t)
	total := astro.Normalize360(astro.Sidereal(sun.Longitude, c.Ayanamsa) + astro.Sidereal(moon.Longitude, c.Ayanamsa))

	idx := int(math.Floor(total * 27 / 360))
	if idx >= 27 {
		idx = 0
	}
	return YogaInfo{Index: idx, Name: yogaNames[idx]}
}

// Karana calculates the karana at t.
func (c *Calculator) Karana(t time.Time) KaranaInfo {
	angle := elongation(c.bodies(t))
	idx := int(math.Floor(angle/6)) % 10
	return KaranaInfo{Index: idx, Name: karanaNames[idx]}
}
