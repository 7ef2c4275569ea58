package chart

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-jyotish/internal/panchang"
)

// Chart is a complete natal chart. It is built once per request and never
// mutated.
type Chart struct {
	Details     BirthDetails `json:"details"`
	System      System       `json:"system"`
	JulianDay   float64      `json:"julian_day"`
	GeneratedAt time.Time    `json:"generated_at"`
	Ephemeris   string       `json:"ephemeris"`

	Ascendant         float64 `json:"ascendant"` // rising degree, [0, 360)
	AscendantSign     Sign    `json:"ascendant_sign"`
	AscendantAnalysis string  `json:"ascendant_analysis"`
	SunSign           Sign    `json:"sun_sign"`
	SunSignAnalysis   string  `json:"sun_sign_analysis"`
	MoonSign          Sign    `json:"moon_sign"`

	// MoonNakshatra is the sidereal lunar mansion of the natal Moon.
	MoonNakshatra panchang.NakshatraInfo `json:"moon_nakshatra"`

	Planets       []PlanetPosition    `json:"planets"`
	Houses        []House             `json:"houses"`
	Aspects       []Aspect            `json:"aspects"`
	Transits      []Transit           `json:"transits"`
	Elements      Elements            `json:"elements"`
	Traits        []string            `json:"traits"`
	Compatibility map[Sign]int        `json:"compatibility"`
	LifeAreas     map[string]LifeArea `json:"life_areas"`
	Periods       []Period            `json:"periods"`
}

// PeriodLabel is the timeline heading for the chart's system.
func (c *Chart) PeriodLabel() string {
	return c.System.PeriodLabel()
}

// Planet returns the position of p, if charted.
func (c *Chart) Planet(p Planet) (PlanetPosition, bool) {
	return find(c.Planets, p)
}

func ascendantAnalysis(asc float64) string {
	return fmt.Sprintf("Your Ascendant is in %s at %d°. This represents your outer personality and the way others perceive you.",
		SignAt(asc), int(math.Floor(math.Mod(asc, 30))))
}

func sunSignAnalysis(sun PlanetPosition) string {
	return fmt.Sprintf("Your Sun is in %s at %d°. This represents your core identity and life purpose.",
		sun.Sign, int(math.Floor(sun.Degree)))
}
