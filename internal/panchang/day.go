package panchang

import "time"

// Day is the full Panchang record for a moment.
type Day struct {
	Date       time.Time         `json:"date"`
	Weekday    string            `json:"weekday"`
	Location   Location          `json:"location"`
	Tithi      TithiInfo         `json:"tithi"`
	Nakshatra  NakshatraInfo     `json:"nakshatra"`
	Yoga       YogaInfo          `json:"yoga"`
	Karana     KaranaInfo        `json:"karana"`
	Sunrise    string            `json:"sunrise"`
	Sunset     string            `json:"sunset"`
	RahuKaal   TimeWindow        `json:"rahu_kaal"`
	Auspicious AuspiciousTimings `json:"auspicious"`
}

// Calculate builds the Panchang record for t.
func (c *Calculator) Calculate(t time.Time) Day {
	tithi := c.Tithi(t)
	light := c.Daylight(t)

	return Day{
		Date:       t,
		Weekday:    t.Weekday().String(),
		Location:   c.Location,
		Tithi:      tithi,
		Nakshatra:  c.Nakshatra(t),
		Yoga:       c.Yoga(t),
		Karana:     c.Karana(t),
		Sunrise:    DecimalToTime(light.Sunrise),
		Sunset:     DecimalToTime(light.Sunset),
		RahuKaal:   c.RahuKaal(t),
		Auspicious: c.AuspiciousTimes(t, tithi),
	}
}

// Windows lists the day's named windows in display order, Rahu Kaal first.
func (d Day) Windows() []MuhuratWindow {
	return []MuhuratWindow{
		{
			Name:         WindowRahuKaal,
			StartTime:    d.RahuKaal.Start,
			EndTime:      d.RahuKaal.End,
			Significance: "Inauspicious period ruled by Rahu; avoid new undertakings",
		},
		d.Auspicious.BrahmaMuhurat,
		d.Auspicious.AbhijitMuhurat,
		d.Auspicious.AmritKaal,
	}
}

// ActiveWindows returns the windows whose span contains the wall clock of
// now. Windows with unparsable bounds are skipped.
func (d Day) ActiveWindows(now time.Time) []MuhuratWindow {
	var active []MuhuratWindow
	for _, w := range d.Windows() {
		ok, err := IsWithinMuhurat(w.StartTime, w.EndTime, now)
		if err == nil && ok {
			active = append(active, w)
		}
	}
	return active
}
