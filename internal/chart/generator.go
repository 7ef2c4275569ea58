package chart

import (
	"fmt"
	"time"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/panchang"
)

// Config tunes chart generation.
type Config struct {
	Ayanamsa   float64
	AspectOrb  float64 // 0 matches exact angles only
	TransitOrb float64 // degrees
	Planets    []Planet
}

// DefaultConfig returns the standard settings: Lahiri-style ayanamsa,
// strict aspects, a 10° transit orb and the Sun and Moon.
func DefaultConfig() Config {
	return Config{
		Ayanamsa:   astro.DefaultAyanamsa,
		AspectOrb:  0,
		TransitOrb: DefaultTransitOrb,
		Planets:    []Planet{Sun, Moon},
	}
}

// Generator builds charts against an ephemeris.
type Generator struct {
	cfg Config
	eph Ephemeris
}

// NewGenerator returns a generator. A nil ephemeris uses MeanElements.
// Every configured planet must be available in the ephemeris.
func NewGenerator(cfg Config, eph Ephemeris) (*Generator, error) {
	if eph == nil {
		eph = MeanElements{}
	}
	for _, p := range cfg.Planets {
		if !eph.Available(p) {
			return nil, fmt.Errorf("%w: %s has no longitude in %s", ErrUnsupportedPlanet, p, eph.Name())
		}
	}
	if cfg.AspectOrb < 0 || cfg.TransitOrb < 0 {
		return nil, fmt.Errorf("orbs must not be negative")
	}
	return &Generator{cfg: cfg, eph: eph}, nil
}

// Config returns the generator settings.
func (g *Generator) Config() Config { return g.cfg }

// Calculate builds the chart for details. now drives transits and the
// period timeline and is converted to IST first.
func (g *Generator) Calculate(details BirthDetails, system System, now time.Time) (*Chart, error) {
	now = now.In(astro.IST)

	birth, err := details.Validate()
	if err != nil {
		return nil, err
	}
	jd := birth.JulianDay()

	planets, err := Positions(g.eph, jd, system, g.cfg.Planets, g.cfg.Ayanamsa)
	if err != nil {
		return nil, err
	}

	transits, err := Transits(g.eph, planets, now, g.cfg.Planets, g.cfg.TransitOrb)
	if err != nil {
		return nil, err
	}

	asc := Ascendant(jd, birth.Latitude, birth.Longitude)
	ascSign := SignAt(asc)

	c := &Chart{
		Details:           details,
		System:            system,
		JulianDay:         jd,
		GeneratedAt:       now,
		Ephemeris:         g.eph.Name(),
		Ascendant:         asc,
		AscendantSign:     ascSign,
		AscendantAnalysis: ascendantAnalysis(asc),
		Planets:           planets,
		Houses:            Houses(asc, planets),
		Aspects:           Aspects(planets, g.cfg.AspectOrb),
		Transits:          transits,
		Elements:          ElementBalance(planets),
		Traits:            Traits(ascSign, planets),
		Compatibility:     map[Sign]int{},
		LifeAreas:         LifeAreas(planets),
		Periods:           Periods(system, planets, now),
	}

	if sun, ok := find(planets, Sun); ok {
		c.SunSign = sun.Sign
		c.SunSignAnalysis = sunSignAnalysis(sun)
		c.Compatibility = Compatibility(sun.Sign)
	}
	if moon, ok := find(planets, Moon); ok {
		c.MoonSign = moon.Sign
		lon := moon.Longitude
		if system == Western {
			lon = astro.Sidereal(lon, g.cfg.Ayanamsa)
		}
		c.MoonNakshatra = panchang.NakshatraAt(lon)
	}

	return c, nil
}

var defaultGenerator = MustGenerator(DefaultConfig(), nil)

// MustGenerator is like NewGenerator but panics on an invalid config.
func MustGenerator(cfg Config, eph Ephemeris) *Generator {
	g, err := NewGenerator(cfg, eph)
	if err != nil {
		panic(err)
	}
	return g
}

// Calculate builds a chart with the default generator.
func Calculate(details BirthDetails, system System, now time.Time) (*Chart, error) {
	return defaultGenerator.Calculate(details, system, now)
}
