package astro

import "math"

// DefaultAyanamsa is the fixed Lahiri-style sidereal correction in degrees.
const DefaultAyanamsa = 23.15

// Normalize360 normalizes an angle to [0, 360).
func Normalize360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	// -1e-15 + 360 rounds to exactly 360
	if a >= 360 {
		a -= 360
	}
	return a
}

// Sidereal subtracts the ayanamsa from a tropical longitude.
func Sidereal(tropical, ayanamsa float64) float64 {
	return Normalize360(tropical - ayanamsa)
}

// Separation returns the smaller arc between two longitudes, in [0, 180].
func Separation(a, b float64) float64 {
	d := math.Abs(Normalize360(a) - Normalize360(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
