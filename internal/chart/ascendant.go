package chart

import (
	"math"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// Ascendant approximates the rising degree in [0, 360).
//
// Sidereal time is taken as the Sun's longitude (one-term equation of
// center) plus 180° and the site longitude. Latitude also stands in for the
// declination term of the hour-angle rotation, so this is not a RAMC-based
// ascendant. Results are kept stable for chart parity.
func Ascendant(jd, latitude, longitude float64) float64 {
	lst := math.Mod(astro.SolarLongitudeOneTerm(jd)+180+longitude, 360)
	ra := astro.DegToRad(lst)
	dec := astro.DegToRad(latitude)

	h := math.Atan2(math.Sin(ra), math.Cos(ra)*math.Sin(dec)-math.Tan(dec)*math.Cos(dec))

	asc := astro.RadToDeg(h)
	if asc < 0 {
		asc += 360
	}
	return astro.Normalize360(asc)
}
