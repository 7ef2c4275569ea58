package panchang

import (
	"math"
	"time"

	"github.com/litescript/ls-jyotish/internal/astro"
)

// Window names.
const (
	WindowRahuKaal = "Rahu Kaal"
	WindowBrahma   = "Brahma Muhurat"
	WindowAbhijit  = "Abhijit Muhurat"
	WindowAmrit    = "Amrit Kaal"
)

const amritKaalHours = 0.8 // 48 minutes

// rahuPortion is the 1-based eighth of daylight for each weekday,
// indexed by time.Weekday (Sunday first).
var rahuPortion = [7]int{8, 2, 7, 5, 6, 4, 3}

// DaylightHours holds sunrise-relative quantities in decimal hours.
type DaylightHours struct {
	Sunrise   float64
	Sunset    float64
	SolarNoon float64
	Length    float64
}

// TimeWindow is a start/end pair of "HH:MM" clock strings.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// MuhuratWindow is a named time window with its significance.
type MuhuratWindow struct {
	Name         string `json:"name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Significance string `json:"significance"`
}

// AuspiciousTimings groups the three daily muhurats.
type AuspiciousTimings struct {
	BrahmaMuhurat  MuhuratWindow `json:"brahma_muhurat"`
	AbhijitMuhurat MuhuratWindow `json:"abhijit_muhurat"`
	AmritKaal      MuhuratWindow `json:"amrit_kaal"`
}

// Daylight computes sunrise and sunset at the calculator's location from the
// Sun's declination. Solar noon is fixed at 12:00 and the location's
// longitude is not used.
func (c *Calculator) Daylight(t time.Time) DaylightHours {
	sun := astro.SolarPosition(astro.PanchangJulianDay(t))

	cosH := -math.Tan(astro.DegToRad(c.Location.Latitude)) * math.Tan(astro.DegToRad(sun.Declination))
	// Polar day or night
	if cosH > 1 {
		cosH = 1
	} else if cosH < -1 {
		cosH = -1
	}
	hourAngle := astro.RadToDeg(math.Acos(cosH))

	// 15 degrees of hour angle per hour, on both sides of noon
	length := hourAngle / 7.5

	return DaylightHours{
		Sunrise:   solarNoon - length/2,
		Sunset:    solarNoon + length/2,
		SolarNoon: solarNoon,
		Length:    length,
	}
}

// RahuKaal returns the inauspicious eighth of daylight for t's weekday.
func (c *Calculator) RahuKaal(t time.Time) TimeWindow {
	day := c.Daylight(t)
	portion := day.Length / 8

	start := day.Sunrise + float64(rahuPortion[t.Weekday()]-1)*portion
	return TimeWindow{
		Start: DecimalToTime(start),
		End:   DecimalToTime(start + portion),
	}
}

// AuspiciousTimes returns Brahma Muhurat, Abhijit Muhurat and Amrit Kaal.
// Amrit Kaal uses the approximate placement sunrise + |sin(elongation)| x
// day length, not the classical nakshatra-based rule.
func (c *Calculator) AuspiciousTimes(t time.Time, tithi TithiInfo) AuspiciousTimings {
	day := c.Daylight(t)

	moonStrength := math.Abs(math.Sin(astro.DegToRad(tithi.Degrees)))
	amritStart := day.Sunrise + moonStrength*day.Length

	return AuspiciousTimings{
		BrahmaMuhurat: MuhuratWindow{
			Name:         WindowBrahma,
			StartTime:    DecimalToTime(day.Sunrise - 1.6),
			EndTime:      DecimalToTime(day.Sunrise - 0.4),
			Significance: "Most auspicious time for spiritual practices",
		},
		AbhijitMuhurat: MuhuratWindow{
			Name:         WindowAbhijit,
			StartTime:    DecimalToTime(day.SolarNoon - 0.5),
			EndTime:      DecimalToTime(day.SolarNoon + 0.5),
			Significance: "Victory muhurat, auspicious for new beginnings",
		},
		AmritKaal: MuhuratWindow{
			Name:         WindowAmrit,
			StartTime:    DecimalToTime(amritStart),
			EndTime:      DecimalToTime(amritStart + amritKaalHours),
			Significance: "Most auspicious period of tithi",
		},
	}
}
