package astro

import "math"

// LunarCoords holds the Moon's tropical ecliptic longitude and phase.
type LunarCoords struct {
	Longitude float64 // Tropical ecliptic longitude (0-360)
	Phase     float64 // 0 = new, 1 = full
}

// LunarPosition calculates the Moon's longitude from its mean longitude and
// the three largest periodic terms of the longitude series. Error is in the
// arc-minute to low-degree range; fine for tithi and nakshatra resolution.
func LunarPosition(jd float64) LunarCoords {
	T := JulianCenturies(jd)

	Lp := 218.3164477 + 481267.88123421*T - 0.0015786*T*T // Mean longitude
	D := 297.8501921 + 445267.1114034*T - 0.0018819*T*T   // Mean elongation
	Mp := 134.9633964 + 477198.8675055*T + 0.0087414*T*T  // Moon's mean anomaly

	dL := 6.288774*math.Sin(DegToRad(Mp)) +
		1.274027*math.Sin(DegToRad(2*D-Mp)) +
		0.658314*math.Sin(DegToRad(2*D))

	lambda := Normalize360(Lp + dL)
	sun := SolarPosition(jd)

	return LunarCoords{
		Longitude: lambda,
		Phase:     (1 - math.Cos(DegToRad(lambda-sun.Longitude))) / 2,
	}
}

// MeanLunarLongitude returns the Moon's mean longitude, normalized.
func MeanLunarLongitude(jd float64) float64 {
	T := JulianCenturies(jd)
	return Normalize360(218.3164477 + 481267.88123421*T)
}
