package chart

import "errors"

var (
	// ErrInvalidBirthDetails is returned when a date, time or coordinate
	// cannot be parsed or is out of range.
	ErrInvalidBirthDetails = errors.New("invalid birth details")

	// ErrUnsupportedPlanet is returned for a planet that has no longitude
	// formula in the ephemeris.
	ErrUnsupportedPlanet = errors.New("unsupported planet")

	// ErrUnknownSystem is returned by ParseSystem for an unrecognized name.
	ErrUnknownSystem = errors.New("unknown astrology system")
)
