package chart

import "math"

// Element is one of the four classical elements.
type Element string

const (
	Fire  Element = "fire"
	Earth Element = "earth"
	Air   Element = "air"
	Water Element = "water"
)

// Element returns the sign's element. Signs cycle fire, earth, air, water
// from Aries.
func (s Sign) Element() Element {
	switch int(s) % 4 {
	case 0:
		return Fire
	case 1:
		return Earth
	case 2:
		return Air
	default:
		return Water
	}
}

// Elements holds the percentage of planets per element.
type Elements struct {
	Fire  int `json:"fire"`
	Earth int `json:"earth"`
	Air   int `json:"air"`
	Water int `json:"water"`
}

// Total sums the four percentages. Rounding each term independently means
// the total can miss 100 by a few points.
func (e Elements) Total() int {
	return e.Fire + e.Earth + e.Air + e.Water
}

// ElementBalance counts planets per element and rounds each share to the
// nearest percent. An empty table yields all zeros.
func ElementBalance(positions []PlanetPosition) Elements {
	counts := map[Element]int{}
	for _, p := range positions {
		counts[p.Sign.Element()]++
	}

	total := len(positions)
	pct := func(e Element) int {
		if total == 0 {
			return 0
		}
		return int(math.Round(float64(counts[e]) * 100 / float64(total)))
	}

	return Elements{
		Fire:  pct(Fire),
		Earth: pct(Earth),
		Air:   pct(Air),
		Water: pct(Water),
	}
}
