package chart

// House is one of the twelve signs with its ascendant-relative number.
type House struct {
	// Number counts from the ascendant's sign, which is house 1.
	Number    int              `json:"number"`
	SignIndex int              `json:"sign_index"`
	Sign      Sign             `json:"sign"`
	Planets   []PlanetPosition `json:"planets"`
}

// Houses lists the twelve signs in zodiac order, Aries first, each numbered
// relative to the ascendant sign and holding the planets in that sign.
func Houses(ascendant float64, positions []PlanetPosition) []House {
	asc := int(SignAt(ascendant))

	houses := make([]House, 0, 12)
	for i, sign := range Signs {
		h := House{
			Number:    (i-asc+12)%12 + 1,
			SignIndex: i,
			Sign:      sign,
			Planets:   []PlanetPosition{},
		}
		for _, p := range positions {
			if p.Sign == sign {
				h.Planets = append(h.Planets, p)
			}
		}
		houses = append(houses, h)
	}
	return houses
}
