package chart

import (
	"fmt"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// Ephemeris supplies tropical ecliptic longitudes for the chart engine.
type Ephemeris interface {
	// Name returns the ephemeris name for display and logging.
	Name() string

	// Longitude returns the tropical longitude of p at jd in [0, 360).
	// Planets the ephemeris cannot compute return ErrUnsupportedPlanet.
	Longitude(p Planet, jd float64) (float64, error)

	// Available reports whether Longitude can compute p.
	Available(p Planet) bool
}

// MeanElements is the built-in ephemeris. It knows the mean longitudes of
// the Sun and Moon only.
type MeanElements struct{}

// Name returns "mean-elements".
func (MeanElements) Name() string { return "mean-elements" }

// Available reports true for the Sun and Moon.
func (MeanElements) Available(p Planet) bool {
	return p == Sun || p == Moon
}

// Longitude returns the mean longitude of the Sun or Moon.
func (MeanElements) Longitude(p Planet, jd float64) (float64, error) {
	switch p {
	case Sun:
		return astro.MeanSolarLongitude(jd), nil
	case Moon:
		return astro.MeanLunarLongitude(jd), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedPlanet, p)
	}
}

// LongitudeOf returns a planet's tropical longitude from the built-in
// ephemeris.
func LongitudeOf(p Planet, jd float64) (float64, error) {
	return MeanElements{}.Longitude(p, jd)
}
