package festival

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Parse decodes a TOML calendar made of [[festival]] tables and validates
// it. Missing types default to major and missing durations to one day.
func Parse(data []byte) (*Calendar, error) {
	var cal Calendar
	if err := toml.Unmarshal(data, &cal); err != nil {
		return nil, fmt.Errorf("parsing festival calendar: %w", err)
	}
	for i := range cal.Rules {
		if cal.Rules[i].Type == "" {
			cal.Rules[i].Type = Major
		}
		if cal.Rules[i].Duration == 0 {
			cal.Rules[i].Duration = 1
		}
	}
	if err := cal.Validate(); err != nil {
		return nil, err
	}
	return &cal, nil
}

// LoadFile reads a TOML calendar from disk.
func LoadFile(path string) (*Calendar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading festival calendar: %w", err)
	}
	return Parse(data)
}

// Marshal encodes the calendar as TOML.
func (c *Calendar) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
