package chart

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/litescript/ls-jyotish/internal/astro"
)

var fixedNow = time.Date(2024, time.January, 25, 15, 4, 0, 0, astro.IST)

func delhiBirth(date, clock string) BirthDetails {
	return BirthDetails{
		Date:      date,
		Time:      clock,
		Latitude:  "28.6139",
		Longitude: "77.2090",
		Timezone:  "+05:30",
	}
}

func TestCalculate_VedicExample(t *testing.T) {
	c, err := Calculate(delhiBirth("1990-06-15", "08:30"), Vedic, fixedNow)
	require.NoError(t, err)

	// Mean Sun 83.37° tropical, 60.22° after the ayanamsa
	assert.Contains(t, []Sign{Gemini, Cancer}, c.SunSign)
	assert.Equal(t, Gemini, c.SunSign)
	assert.Equal(t, Aquarius, c.MoonSign)
	assert.Equal(t, Sagittarius, c.AscendantSign)
	assert.InDelta(t, 265.47, c.Ascendant, 0.01)

	sun, ok := c.Planet(Sun)
	require.True(t, ok)
	assert.InDelta(t, 60.22, sun.Longitude, 0.01)
	assert.InDelta(t, 0.22, sun.Degree, 0.01)
	assert.Equal(t, 3, sun.AbsoluteHouse)
	assert.Equal(t, Neutral, sun.Status)
	assert.Equal(t, "☉", sun.Symbol)

	assert.Equal(t, "Purva Bhadrapada", c.MoonNakshatra.Name)
	assert.Equal(t, 3, c.MoonNakshatra.Pada)

	assert.Equal(t, Elements{Air: 100}, c.Elements)
	assert.Equal(t, []string{"Optimistic", "Adventurous", "Philosophical"}, c.Traits)
	assert.Empty(t, c.Aspects, "strict orb should not match a 93° separation")
	assert.Empty(t, c.Transits)
	assert.Equal(t, "Dasha", c.PeriodLabel())
	assert.Len(t, c.Periods, 9)
	assert.Equal(t, "mean-elements", c.Ephemeris)
	assert.Equal(t,
		"Your Ascendant is in Sagittarius at 25°. This represents your outer personality and the way others perceive you.",
		c.AscendantAnalysis)
	assert.Equal(t,
		"Your Sun is in Gemini at 0°. This represents your core identity and life purpose.",
		c.SunSignAnalysis)
}

func TestCalculate_WesternExample(t *testing.T) {
	birth := delhiBirth("1990-06-15", "08:30")
	// Transits at the birth moment itself: each planet sits on its natal place
	now := time.Date(1990, time.June, 15, 8, 30, 0, 0, astro.IST)

	c, err := Calculate(birth, Western, now)
	require.NoError(t, err)

	assert.Equal(t, Gemini, c.SunSign)
	assert.Equal(t, Pisces, c.MoonSign)
	assert.Equal(t, Elements{Air: 50, Water: 50}, c.Elements)

	require.Len(t, c.Transits, 2)
	assert.Equal(t, "Sun transiting Sun in Gemini", c.Transits[0].String())
	assert.Equal(t, "Moon transiting Moon in Pisces", c.Transits[1].String())
	assert.InDelta(t, 0, c.Transits[0].Orb, 1e-9)

	assert.Equal(t, "Planetary Period", c.PeriodLabel())
	require.Len(t, c.Periods, 2)
	for _, p := range c.Periods {
		assert.Equal(t, "1 year", p.Duration)
		assert.Equal(t, p.StartDate.AddDate(1, 0, 0), p.EndDate)
	}
}

func TestCalculate_SystemsDifferOnlyByAyanamsa(t *testing.T) {
	birth := delhiBirth("1975-08-01", "23:15")

	vedic, err := Calculate(birth, Vedic, fixedNow)
	require.NoError(t, err)
	western, err := Calculate(birth, Western, fixedNow)
	require.NoError(t, err)

	for i := range vedic.Planets {
		want := astro.Sidereal(western.Planets[i].Longitude, astro.DefaultAyanamsa)
		assert.InDelta(t, want, vedic.Planets[i].Longitude, 1e-9)
	}
	assert.Equal(t, western.Ascendant, vedic.Ascendant)
	assert.Equal(t, western.MoonNakshatra, vedic.MoonNakshatra)
}

func TestCalculate_StatusAndLifeAreas(t *testing.T) {
	// Sidereal Sun 183° in Libra, Moon 56° in Taurus
	c, err := Calculate(delhiBirth("2000-10-17", "12:00"), Vedic, fixedNow)
	require.NoError(t, err)

	sun, _ := c.Planet(Sun)
	moon, _ := c.Planet(Moon)
	assert.Equal(t, Debilitated, sun.Status)
	assert.Equal(t, 7, sun.AbsoluteHouse)
	assert.Equal(t, Exalted, moon.Status)
	assert.Equal(t, 2, moon.AbsoluteHouse)

	assert.Equal(t, LifeArea{Score: 50, Prediction: "Important developments in partnerships and relationships."},
		c.LifeAreas[AreaRelationships])
	assert.Equal(t, LifeArea{Score: 70, Prediction: "Opportunities for financial growth and stability."},
		c.LifeAreas[AreaFinance])
	assert.Equal(t, 60, c.LifeAreas[AreaCareer].Score)
	assert.Equal(t, 60, c.LifeAreas[AreaHealth].Score)

	assert.Equal(t, Leo, c.AscendantSign)
	assert.Equal(t, []string{"Generous", "Creative", "Charismatic", "Strong Moon energy"}, c.Traits)
}

func TestCalculate_Deterministic(t *testing.T) {
	birth := delhiBirth("1985-04-20", "06:00")

	a, err := Calculate(birth, Vedic, fixedNow)
	require.NoError(t, err)
	b, err := Calculate(birth, Vedic, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestCalculate_InvalidBirthDetails(t *testing.T) {
	valid := delhiBirth("1990-06-15", "08:30")

	tests := []struct {
		name   string
		mutate func(*BirthDetails)
	}{
		{"empty date", func(b *BirthDetails) { b.Date = "" }},
		{"bad date", func(b *BirthDetails) { b.Date = "15/06/1990" }},
		{"impossible date", func(b *BirthDetails) { b.Date = "1990-02-30" }},
		{"bad time", func(b *BirthDetails) { b.Time = "25:00" }},
		{"time with seconds", func(b *BirthDetails) { b.Time = "08:30:00" }},
		{"latitude not a number", func(b *BirthDetails) { b.Latitude = "north" }},
		{"latitude NaN", func(b *BirthDetails) { b.Latitude = "NaN" }},
		{"latitude out of range", func(b *BirthDetails) { b.Latitude = "91" }},
		{"longitude out of range", func(b *BirthDetails) { b.Longitude = "-180.5" }},
		{"longitude infinite", func(b *BirthDetails) { b.Longitude = "+Inf" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			birth := valid
			tt.mutate(&birth)

			c, err := Calculate(birth, Vedic, fixedNow)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrInvalidBirthDetails), "got %v", err)
		})
	}
}

func TestNewGenerator_UnsupportedPlanet(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Planets = []Planet{Sun, Moon, Mars}

	g, err := NewGenerator(cfg, nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrUnsupportedPlanet)
}

func TestNewGenerator_NegativeOrb(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AspectOrb = -1

	_, err := NewGenerator(cfg, nil)
	assert.Error(t, err)
}

func TestMustGenerator(t *testing.T) {
	assert.NotNil(t, MustGenerator(DefaultConfig(), nil))

	cfg := DefaultConfig()
	cfg.Planets = []Planet{Venus}
	assert.Panics(t, func() { MustGenerator(cfg, nil) })
}

func TestGenerator_AspectOrb(t *testing.T) {
	cfg := DefaultConfig()
	cfg.AspectOrb = 6

	g, err := NewGenerator(cfg, nil)
	require.NoError(t, err)

	// Sun and Moon 93° apart: a square within 3.07°
	c, err := g.Calculate(delhiBirth("1990-06-15", "08:30"), Vedic, fixedNow)
	require.NoError(t, err)
	require.Len(t, c.Aspects, 1)
	assert.Equal(t, "Sun square Moon", c.Aspects[0].String())
	assert.InDelta(t, 3.07, c.Aspects[0].Orb, 0.01)
}

type fixedEphemeris map[Planet]float64

func (f fixedEphemeris) Name() string { return "fixed" }

func (f fixedEphemeris) Available(p Planet) bool {
	_, ok := f[p]
	return ok
}

func (f fixedEphemeris) Longitude(p Planet, _ float64) (float64, error) {
	lon, ok := f[p]
	if !ok {
		return 0, ErrUnsupportedPlanet
	}
	return lon, nil
}

func TestCalculate_NowZoneIndependent(t *testing.T) {
	birth := delhiBirth("1990-06-15", "08:30")

	ist, err := Calculate(birth, Western, fixedNow)
	require.NoError(t, err)
	utc, err := Calculate(birth, Western, fixedNow.UTC())
	require.NoError(t, err)

	assert.Equal(t, ist.Transits, utc.Transits)
	assert.Equal(t, ist.Periods, utc.Periods)
}

func TestGenerator_CustomEphemeris(t *testing.T) {
	eph := fixedEphemeris{Sun: 10, Moon: 130, Mars: 280}
	cfg := DefaultConfig()
	cfg.Planets = []Planet{Sun, Moon, Mars}

	g, err := NewGenerator(cfg, eph)
	require.NoError(t, err)

	c, err := g.Calculate(delhiBirth("1990-06-15", "08:30"), Western, fixedNow)
	require.NoError(t, err)

	assert.Equal(t, "fixed", c.Ephemeris)
	require.Len(t, c.Planets, 3)

	mars, _ := c.Planet(Mars)
	assert.Equal(t, Capricorn, mars.Sign)
	assert.Equal(t, Exalted, mars.Status)
	assert.Equal(t, 10, mars.AbsoluteHouse)
	assert.Equal(t, LifeArea{Score: 70, Prediction: "Favorable period for career advancement and recognition."},
		c.LifeAreas[AreaCareer])

	// Exact angles match even at orb 0
	require.Len(t, c.Aspects, 2)
	assert.Equal(t, "Sun trine Moon", c.Aspects[0].String())
	assert.Equal(t, "Sun square Mars", c.Aspects[1].String())

	// Fixed longitudes do not move, so every planet transits itself
	assert.Len(t, c.Transits, 3)
	assert.Equal(t, Elements{Fire: 67, Earth: 33}, c.Elements)
}

func TestChart_JSON(t *testing.T) {
	c, err := Calculate(delhiBirth("1990-06-15", "08:30"), Vedic, fixedNow)
	require.NoError(t, err)

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "vedic", decoded["system"])
	assert.Equal(t, "Gemini", decoded["sun_sign"])

	compat, ok := decoded["compatibility"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, compat, 12)
	assert.EqualValues(t, 100, compat["Gemini"])

	planets := decoded["planets"].([]any)
	first := planets[0].(map[string]any)
	assert.Equal(t, "Sun", first["planet"])
	assert.Equal(t, "Gemini", first["sign"])
}
