package chart

import (
	"math"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// PlanetPosition is one row of the planet table.
type PlanetPosition struct {
	Planet    Planet  `json:"planet"`
	Symbol    string  `json:"symbol"`
	Longitude float64 `json:"longitude"` // in the chart's zodiac, [0, 360)
	Sign      Sign    `json:"sign"`
	Degree    float64 `json:"degree"` // within sign, [0, 30)

	// AbsoluteHouse is floor(longitude/30)+1, the sign index counted from
	// Aries. It ignores the ascendant; see House.Number for the
	// ascendant-relative numbering.
	AbsoluteHouse int    `json:"absolute_house"`
	Status        Status `json:"status"`
}

// NewPosition derives sign, degree, absolute house and status from a
// longitude in the chart's zodiac.
func NewPosition(p Planet, lon float64) PlanetPosition {
	lon = astro.Normalize360(lon)
	sign := SignAt(lon)
	return PlanetPosition{
		Planet:        p,
		Symbol:        p.Symbol(),
		Longitude:     lon,
		Sign:          sign,
		Degree:        math.Mod(lon, 30),
		AbsoluteHouse: int(sign) + 1,
		Status:        StatusOf(p, sign),
	}
}

// Positions computes the planet table at jd. In the Vedic system the
// ayanamsa is subtracted. The first planet the ephemeris cannot compute
// fails the whole table with ErrUnsupportedPlanet.
func Positions(eph Ephemeris, jd float64, system System, planets []Planet, ayanamsa float64) ([]PlanetPosition, error) {
	out := make([]PlanetPosition, 0, len(planets))
	for _, p := range planets {
		lon, err := eph.Longitude(p, jd)
		if err != nil {
			return nil, err
		}
		if system == Vedic {
			lon = astro.Sidereal(lon, ayanamsa)
		}
		out = append(out, NewPosition(p, lon))
	}
	return out, nil
}

func find(positions []PlanetPosition, p Planet) (PlanetPosition, bool) {
	for _, pos := range positions {
		if pos.Planet == p {
			return pos, true
		}
	}
	return PlanetPosition{}, false
}
