package chart

import (
	"fmt"
	"time"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// DefaultTransitOrb is the orb within which a current planet transits a
// natal one.
const DefaultTransitOrb = 10.0

// Transit is a current planet within orb of a natal planet.
type Transit struct {
	Transiting Planet  `json:"transiting"`
	Natal      Planet  `json:"natal"`
	Sign       Sign    `json:"sign"` // natal planet's sign
	Orb        float64 `json:"orb"`
}

// String renders the transit as "Moon transiting Sun in Gemini".
func (t Transit) String() string {
	return fmt.Sprintf("%s transiting %s in %s", t.Transiting, t.Natal, t.Sign)
}

// FindTransits compares current positions against natal ones, every pair
// within orb producing a transit in natal order.
func FindTransits(natal, current []PlanetPosition, orb float64) []Transit {
	var out []Transit
	for _, n := range natal {
		for _, c := range current {
			sep := astro.Separation(c.Longitude, n.Longitude)
			if sep <= orb {
				out = append(out, Transit{
					Transiting: c.Planet,
					Natal:      n.Planet,
					Sign:       n.Sign,
					Orb:        sep,
				})
			}
		}
	}
	return out
}

// Transits computes tropical positions of planets at now on eph and compares
// them against the natal table. now is read on the IST wall clock, the same
// clock birth times are entered on.
func Transits(eph Ephemeris, natal []PlanetPosition, now time.Time, planets []Planet, orb float64) ([]Transit, error) {
	current, err := Positions(eph, astro.JulianDate(now.In(astro.IST)), Western, planets, 0)
	if err != nil {
		return nil, err
	}
	return FindTransits(natal, current, orb), nil
}
