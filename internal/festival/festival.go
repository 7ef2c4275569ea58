// Package festival holds the fixed-date festival calendar, loadable from
// TOML and hot-reloadable from disk.
package festival

import (
	"fmt"
	"sort"
	"time"
)

// Type classifies a festival.
type Type string

const (
	Major Type = "major"
	Minor Type = "minor"
)

// DefaultUpcomingLimit caps Upcoming when no limit is given.
const DefaultUpcomingLimit = 5

// Festival is a festival occurrence in a specific year.
type Festival struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Type        Type      `json:"type"`
	Duration    int       `json:"duration"` // days
}

// End returns the last day of the festival.
func (f Festival) End() time.Time {
	return f.Date.AddDate(0, 0, max(f.Duration, 1)-1)
}

// Rule places a festival on the same month and day every year.
type Rule struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
	Month       int    `toml:"month"`
	Day         int    `toml:"day"`
	Type        Type   `toml:"type"`
	Duration    int    `toml:"duration"`
}

// Calendar is an ordered set of festival rules.
type Calendar struct {
	Rules []Rule `toml:"festival"`
}

// Default returns the built-in calendar.
func Default() *Calendar {
	return &Calendar{Rules: []Rule{
		{Name: "Makar Sankranti", Description: "Marks the beginning of the sun's northward journey", Month: 1, Day: 14, Type: Major, Duration: 1},
		{Name: "Vasant Panchami", Description: "Celebration of Saraswati, goddess of knowledge", Month: 2, Day: 14, Type: Major, Duration: 1},
		{Name: "Maha Shivaratri", Description: "Night dedicated to Lord Shiva", Month: 3, Day: 8, Type: Major, Duration: 1},
		{Name: "Holi", Description: "Festival of colors and spring", Month: 3, Day: 25, Type: Major, Duration: 2},
		{Name: "Ram Navami", Description: "Birth of Lord Rama", Month: 4, Day: 17, Type: Major, Duration: 1},
		{Name: "Hanuman Jayanti", Description: "Birth of Lord Hanuman", Month: 4, Day: 23, Type: Major, Duration: 1},
		{Name: "Akshaya Tritiya", Description: "Auspicious day for new beginnings", Month: 5, Day: 10, Type: Major, Duration: 1},
		{Name: "Buddha Purnima", Description: "Birth of Lord Buddha", Month: 5, Day: 23, Type: Major, Duration: 1},
		{Name: "Guru Purnima", Description: "Worship of spiritual and academic teachers", Month: 7, Day: 3, Type: Major, Duration: 1},
		{Name: "Raksha Bandhan", Description: "Celebration of brother-sister bond", Month: 8, Day: 30, Type: Major, Duration: 1},
		{Name: "Janmashtami", Description: "Birth of Lord Krishna", Month: 9, Day: 7, Type: Major, Duration: 1},
		{Name: "Ganesh Chaturthi", Description: "Festival honoring Lord Ganesha", Month: 9, Day: 19, Type: Major, Duration: 10},
		{Name: "Navaratri", Description: "Nine nights of worship to Divine Mother", Month: 10, Day: 15, Type: Major, Duration: 9},
		{Name: "Dussehra", Description: "Victory of good over evil", Month: 10, Day: 24, Type: Major, Duration: 1},
		{Name: "Karwa Chauth", Description: "Fast observed by married women", Month: 11, Day: 1, Type: Major, Duration: 1},
		{Name: "Dhanteras", Description: "First day of Diwali celebrations", Month: 11, Day: 10, Type: Major, Duration: 1},
		{Name: "Diwali", Description: "Festival of Lights", Month: 11, Day: 12, Type: Major, Duration: 5},
	}}
}

// Validate checks every rule for a name, a real month/day and a known type.
// February 29 is accepted and skipped in common years.
func (c *Calendar) Validate() error {
	for i, r := range c.Rules {
		if r.Name == "" {
			return fmt.Errorf("festival %d: missing name", i)
		}
		if r.Month < 1 || r.Month > 12 {
			return fmt.Errorf("festival %q: month %d out of range", r.Name, r.Month)
		}
		// 2024 is a leap year, so this admits Feb 29
		if d := time.Date(2024, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC); r.Day < 1 || d.Day() != r.Day {
			return fmt.Errorf("festival %q: day %d invalid for month %d", r.Name, r.Day, r.Month)
		}
		switch r.Type {
		case Major, Minor:
		default:
			return fmt.Errorf("festival %q: unknown type %q", r.Name, r.Type)
		}
		if r.Duration < 1 {
			return fmt.Errorf("festival %q: duration must be at least 1 day", r.Name)
		}
	}
	return nil
}

// ForYear returns the year's festivals in rule order, dated at midnight in
// loc.
func (c *Calendar) ForYear(year int, loc *time.Location) []Festival {
	out := make([]Festival, 0, len(c.Rules))
	for _, r := range c.Rules {
		date := time.Date(year, time.Month(r.Month), r.Day, 0, 0, 0, 0, loc)
		if date.Day() != r.Day {
			continue // Feb 29 in a common year
		}
		out = append(out, Festival{
			Name:        r.Name,
			Description: r.Description,
			Date:        date,
			Type:        r.Type,
			Duration:    r.Duration,
		})
	}
	return out
}

// ForMonth returns the festivals of one month sorted by date.
func (c *Calendar) ForMonth(year int, month time.Month, loc *time.Location) []Festival {
	var out []Festival
	for _, f := range c.ForYear(year, loc) {
		if f.Date.Month() == month {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Upcoming returns the festivals of now's month and year, sorted by date and
// capped at limit. A limit of zero or less uses DefaultUpcomingLimit.
// Festivals earlier in the month are included.
func (c *Calendar) Upcoming(now time.Time, limit int) []Festival {
	if limit <= 0 {
		limit = DefaultUpcomingLimit
	}
	out := c.ForMonth(now.Year(), now.Month(), now.Location())
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
