// Package astro provides the time axis and the mean-element solar and lunar
// ephemeris used by the calendar and chart engines.
package astro

import (
	"math"
)

// Obliquity is the fixed obliquity of the ecliptic in degrees.
const Obliquity = 23.43929111

// SolarCoords holds the Sun's tropical ecliptic longitude and equatorial
// coordinates, all in degrees.
type SolarCoords struct {
	Longitude      float64 // Tropical ecliptic longitude (0-360)
	RightAscension float64 // Right ascension (-180 to 180, atan2 range)
	Declination    float64 // Declination (-90 to +90)
}

// SolarPosition calculates the Sun's position from its mean elements and a
// three-term equation of center. Accuracy is around 0.01 degrees, which is
// enough for day-level calendar work.
func SolarPosition(jd float64) SolarCoords {
	T := JulianCenturies(jd)

	// Mean longitude and mean anomaly (degrees)
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	Mrad := DegToRad(M)

	// Equation of center
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(Mrad)
	C += (0.019993 - 0.000101*T) * math.Sin(2*Mrad)
	C += 0.000289 * math.Sin(3*Mrad)

	lambda := Normalize360(L0 + C)
	lambdaRad := DegToRad(lambda)
	epsRad := DegToRad(Obliquity)

	ra := math.Atan2(math.Cos(epsRad)*math.Sin(lambdaRad), math.Cos(lambdaRad))
	dec := math.Asin(math.Sin(epsRad) * math.Sin(lambdaRad))

	return SolarCoords{
		Longitude:      lambda,
		RightAscension: RadToDeg(ra),
		Declination:    RadToDeg(dec),
	}
}

// SolarLongitudeOneTerm returns mean longitude plus only the leading term of
// the equation of center, unnormalized. The ascendant calculation was tuned
// against this form and keeps it.
func SolarLongitudeOneTerm(jd float64) float64 {
	T := JulianCenturies(jd)
	L0 := 280.46646 + 36000.76983*T + 0.0003032*T*T
	M := 357.52911 + 35999.05029*T - 0.0001537*T*T
	C := (1.914602 - 0.004817*T - 0.000014*T*T) * math.Sin(DegToRad(M))
	return L0 + C
}

// MeanSolarLongitude returns the Sun's mean longitude without any
// equation-of-center correction, normalized to [0, 360).
func MeanSolarLongitude(jd float64) float64 {
	T := JulianCenturies(jd)
	return Normalize360(280.46646 + 36000.76983*T)
}
