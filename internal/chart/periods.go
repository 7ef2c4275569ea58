package chart

import (
	"fmt"
	"time"
)

// Period is one entry of the planetary period timeline.
type Period struct {
	Planet     Planet    `json:"planet"`
	Label      string    `json:"label"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Duration   string    `json:"duration"`
	Years      int       `json:"years"`
	Prediction string    `json:"prediction"`
}

// vimshottari is the Vimshottari dasha cycle, 120 years in all.
var vimshottari = []struct {
	planet Planet
	years  int
}{
	{Ketu, 7},
	{Venus, 20},
	{Sun, 6},
	{Moon, 10},
	{Mars, 7},
	{Rahu, 18},
	{Jupiter, 16},
	{Saturn, 19},
	{Mercury, 17},
}

var periodPredictions = map[Planet]string{
	Sun:     "A period of recognition and authority. Focus on self-expression and leadership.",
	Moon:    "Emotional growth and changes in personal life. Good for family matters.",
	Mars:    "Period of energy and initiative. Success through action and courage.",
	Mercury: "Intellectual growth and communication. Good for education and business.",
	Jupiter: "Expansion and abundance. Spiritual growth and learning.",
	Venus:   "Period of comfort and pleasure. Focus on relationships and creativity.",
	Saturn:  "Time of responsibility and discipline. Long-term achievements.",
	Rahu:    "Period of material growth and unconventional paths.",
	Ketu:    "Spiritual transformation and detachment from material desires.",
}

// Periods builds the period timeline starting on now's calendar date.
//
// Vedic charts get the nine Vimshottari dashas back to back. The cycle
// always begins with Ketu; it is not offset by the birth nakshatra. Western
// charts get one overlapping 1-year period per charted planet.
func Periods(system System, positions []PlanetPosition, now time.Time) []Period {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	label := system.PeriodLabel()

	if system == Vedic {
		out := make([]Period, 0, len(vimshottari))
		start := today
		elapsed := 0
		for _, d := range vimshottari {
			elapsed += d.years
			end := today.AddDate(elapsed, 0, 0)
			out = append(out, Period{
				Planet:     d.planet,
				Label:      label,
				StartDate:  start,
				EndDate:    end,
				Duration:   fmt.Sprintf("%d years", d.years),
				Years:      d.years,
				Prediction: periodPredictions[d.planet],
			})
			start = end
		}
		return out
	}

	out := make([]Period, 0, len(positions))
	for _, p := range positions {
		out = append(out, Period{
			Planet:     p.Planet,
			Label:      label,
			StartDate:  today,
			EndDate:    today.AddDate(1, 0, 0),
			Duration:   "1 year",
			Years:      1,
			Prediction: periodPredictions[p.Planet],
		})
	}
	return out
}
