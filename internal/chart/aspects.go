package chart

import (
	"fmt"
	"math"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// AspectKind names a major aspect.
type AspectKind string

const (
	Conjunct AspectKind = "conjunct"
	Sextile  AspectKind = "sextile"
	Square   AspectKind = "square"
	Trine    AspectKind = "trine"
	Opposite AspectKind = "opposite"
)

var aspectAngles = []struct {
	kind  AspectKind
	angle float64
}{
	{Conjunct, 0},
	{Sextile, 60},
	{Square, 90},
	{Trine, 120},
	{Opposite, 180},
}

// Aspect is a major angular relationship between two natal planets.
type Aspect struct {
	A     Planet     `json:"a"`
	B     Planet     `json:"b"`
	Kind  AspectKind `json:"kind"`
	Angle float64    `json:"angle"`
	Orb   float64    `json:"orb"` // distance from the exact angle
}

// String renders the aspect as "Sun trine Moon".
func (a Aspect) String() string {
	return fmt.Sprintf("%s %s %s", a.A, a.Kind, a.B)
}

// Aspects finds major aspects between every unordered pair of positions.
// Separation is the smaller arc rather than the raw longitude difference, so
// with a nonzero orb a 240° gap reads as a trine. With orb 0 only exact angles match, which
// continuous longitudes almost never produce.
func Aspects(positions []PlanetPosition, orb float64) []Aspect {
	var out []Aspect
	for i := 0; i < len(positions); i++ {
		for j := i + 1; j < len(positions); j++ {
			sep := astro.Separation(positions[i].Longitude, positions[j].Longitude)
			for _, a := range aspectAngles {
				if off := math.Abs(sep - a.angle); off <= orb {
					out = append(out, Aspect{
						A:     positions[i].Planet,
						B:     positions[j].Planet,
						Kind:  a.kind,
						Angle: a.angle,
						Orb:   off,
					})
					break
				}
			}
		}
	}
	return out
}
