package chart

var ascendantTraits = [12][3]string{
	Aries:       {"Confident", "Leadership", "Initiative"},
	Taurus:      {"Reliable", "Patient", "Practical"},
	Gemini:      {"Curious", "Adaptable", "Communicative"},
	Cancer:      {"Nurturing", "Intuitive", "Protective"},
	Leo:         {"Generous", "Creative", "Charismatic"},
	Virgo:       {"Analytical", "Meticulous", "Helpful"},
	Libra:       {"Diplomatic", "Fair-minded", "Sociable"},
	Scorpio:     {"Intense", "Determined", "Perceptive"},
	Sagittarius: {"Optimistic", "Adventurous", "Philosophical"},
	Capricorn:   {"Disciplined", "Ambitious", "Responsible"},
	Aquarius:    {"Independent", "Inventive", "Humanitarian"},
	Pisces:      {"Compassionate", "Imaginative", "Sensitive"},
}

// Traits returns the ascendant sign's three traits followed by one
// "Strong X energy" entry per exalted planet, without duplicates.
func Traits(ascendant Sign, positions []PlanetPosition) []string {
	seen := map[string]bool{}
	var out []string
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}

	if ascendant >= 0 && int(ascendant) < len(ascendantTraits) {
		for _, t := range ascendantTraits[ascendant] {
			add(t)
		}
	}
	for _, p := range positions {
		if p.Status == Exalted {
			add("Strong " + p.Planet.String() + " energy")
		}
	}
	return out
}
