// Package chart generates natal charts from birth details: planet table,
// ascendant, houses, aspects, transits, elemental balance, traits, sign
// compatibility, life-area scores and a planetary period timeline.
//
// A chart is a pure function of its inputs. The only clock-dependent parts,
// transits and the period timeline, take an explicit now.
package chart

import (
	"fmt"
	"strings"
)

// System selects the zodiac convention.
type System int

const (
	Vedic   System = iota // sidereal, ayanamsa subtracted
	Western               // tropical
)

// String returns the system name.
func (s System) String() string {
	switch s {
	case Vedic:
		return "vedic"
	case Western:
		return "western"
	default:
		return "unknown"
	}
}

// MarshalText encodes the system by name.
func (s System) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ParseSystem parses a system name, case-insensitively.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vedic", "":
		return Vedic, nil
	case "western":
		return Western, nil
	default:
		return Vedic, fmt.Errorf("%w: %q", ErrUnknownSystem, s)
	}
}

// PeriodLabel is the name used for the period timeline in this system.
func (s System) PeriodLabel() string {
	if s == Vedic {
		return "Dasha"
	}
	return "Planetary Period"
}

// Sign is one of the twelve 30° zodiac segments, Aries first.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Signs lists the zodiac in order.
var Signs = [12]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

// String returns the sign name.
func (s Sign) String() string {
	if s < 0 || int(s) >= len(signNames) {
		return "unknown"
	}
	return signNames[s]
}

// MarshalText encodes the sign by name.
func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// SignAt returns the sign containing a normalized longitude.
func SignAt(lon float64) Sign {
	idx := int(lon / 30)
	if idx > 11 {
		idx = 11
	}
	if idx < 0 {
		idx = 0
	}
	return Sign(idx)
}

// Planet is one of the nine classical bodies.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

var planetInfo = [9]struct {
	name   string
	symbol string
}{
	{"Sun", "☉"},
	{"Moon", "☽"},
	{"Mars", "♂"},
	{"Mercury", "☿"},
	{"Jupiter", "♃"},
	{"Venus", "♀"},
	{"Saturn", "♄"},
	{"Rahu", "☊"},
	{"Ketu", "☋"},
}

// String returns the planet name.
func (p Planet) String() string {
	if p < 0 || int(p) >= len(planetInfo) {
		return "unknown"
	}
	return planetInfo[p].name
}

// Symbol returns the astronomical glyph for the planet.
func (p Planet) Symbol() string {
	if p < 0 || int(p) >= len(planetInfo) {
		return "?"
	}
	return planetInfo[p].symbol
}

// MarshalText encodes the planet by name.
func (p Planet) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a planet name.
func (p *Planet) UnmarshalText(text []byte) error {
	parsed, err := ParsePlanet(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParsePlanet parses a planet name, case-insensitively.
func ParsePlanet(s string) (Planet, error) {
	for i, info := range planetInfo {
		if strings.EqualFold(strings.TrimSpace(s), info.name) {
			return Planet(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown planet %q", ErrUnsupportedPlanet, s)
}

// Status is a planet's dignity by sign.
type Status string

const (
	Exalted     Status = "exalted"
	Debilitated Status = "debilitated"
	Neutral     Status = "neutral"
)

// exaltation signs; debilitation is the opposite sign. Rahu and Ketu have
// no entry and are always neutral.
var exaltation = map[Planet]Sign{
	Sun:     Aries,
	Moon:    Taurus,
	Mars:    Capricorn,
	Mercury: Virgo,
	Jupiter: Cancer,
	Venus:   Pisces,
	Saturn:  Libra,
}

// StatusOf returns the dignity of a planet in a sign.
func StatusOf(p Planet, s Sign) Status {
	ex, ok := exaltation[p]
	switch {
	case !ok:
		return Neutral
	case s == ex:
		return Exalted
	case s == (ex+6)%12:
		return Debilitated
	default:
		return Neutral
	}
}
