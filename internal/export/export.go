// Package export renders Panchang days, charts and festivals as JSON or
// plain-text tables.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
)

const ruleWidth = 72

// PanchangExport is the JSON-serializable representation of a day.
type PanchangExport struct {
	GeneratedAt   time.Time                `json:"generated_at"`
	Day           *panchang.Day            `json:"panchang"`
	ActiveWindows []panchang.MuhuratWindow `json:"active_windows"`
	Festivals     []festival.Festival      `json:"upcoming_festivals"`
}

// ExportPanchang bundles day with the windows active at now and the
// upcoming festivals.
func ExportPanchang(day *panchang.Day, festivals []festival.Festival, now time.Time) *PanchangExport {
	e := &PanchangExport{
		GeneratedAt:   now,
		Day:           day,
		ActiveWindows: []panchang.MuhuratWindow{},
		Festivals:     festivals,
	}
	if e.Festivals == nil {
		e.Festivals = []festival.Festival{}
	}
	if day != nil {
		if active := day.ActiveWindows(now); active != nil {
			e.ActiveWindows = active
		}
	}
	return e
}

// WriteJSON writes the export as indented JSON.
func (e *PanchangExport) WriteJSON(w io.Writer) error {
	return WriteJSON(w, e)
}

// ChartExport wraps a chart with its period heading.
type ChartExport struct {
	*chart.Chart
	PeriodLabel string `json:"period_label"`
}

// ExportChart converts a chart to its exportable form.
func ExportChart(c *chart.Chart) *ChartExport {
	return &ChartExport{Chart: c, PeriodLabel: c.PeriodLabel()}
}

// WriteJSON writes the export as indented JSON.
func (e *ChartExport) WriteJSON(w io.Writer) error {
	return WriteJSON(w, e)
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WritePanchangTable writes a text summary of day to w, marking the windows
// active at now.
func WritePanchangTable(w io.Writer, day *panchang.Day, now time.Time) {
	fmt.Fprintf(w, "Panchang @ %s\n", now.Format("2006-01-02 15:04 MST"))
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	if day == nil {
		fmt.Fprintln(w, "No data")
		return
	}

	fmt.Fprintf(w, "%-12s %s (%.4f, %.4f)\n", "Location", day.Location.Name, day.Location.Latitude, day.Location.Longitude)
	fmt.Fprintf(w, "%-12s %s\n", "Weekday", day.Weekday)
	fmt.Fprintf(w, "%-12s %s %s (%d)  %s-%s\n", "Tithi",
		day.Tithi.Paksha, day.Tithi.Name, day.Tithi.Number, day.Tithi.StartTime, day.Tithi.EndTime)
	fmt.Fprintf(w, "%-12s %s, pada %d\n", "Nakshatra", day.Nakshatra.Name, day.Nakshatra.Pada)
	fmt.Fprintf(w, "%-12s %s\n", "Yoga", day.Yoga.Name)
	fmt.Fprintf(w, "%-12s %s\n", "Karana", day.Karana.Name)
	fmt.Fprintf(w, "%-12s %s\n", "Sunrise", day.Sunrise)
	fmt.Fprintf(w, "%-12s %s\n", "Sunset", day.Sunset)

	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	fmt.Fprintf(w, "  %-18s %-5s  %-5s\n", "Window", "Start", "End")

	active := make(map[string]bool)
	for _, win := range day.ActiveWindows(now) {
		active[win.Name] = true
	}
	for _, win := range day.Windows() {
		mark := " "
		if active[win.Name] {
			mark = "*"
		}
		fmt.Fprintf(w, "%s %-18s %-5s  %-5s\n", mark, win.Name, win.StartTime, win.EndTime)
	}
}

// WriteChartSummary writes a text summary of c to w.
func WriteChartSummary(w io.Writer, c *chart.Chart) {
	fmt.Fprintf(w, "Chart (%s) for %s %s at %s, %s\n", c.System, c.Details.Date, c.Details.Time,
		c.Details.Latitude, c.Details.Longitude)
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))

	fmt.Fprintf(w, "%-12s %s %.2f°\n", "Ascendant", c.AscendantSign, c.Ascendant)
	if _, ok := c.Planet(chart.Sun); ok {
		fmt.Fprintf(w, "%-12s %s\n", "Sun sign", c.SunSign)
	}
	fmt.Fprintf(w, "%-12s %s\n", "Moon sign", c.MoonSign)
	fmt.Fprintf(w, "%-12s %s, pada %d\n", "Nakshatra", c.MoonNakshatra.Name, c.MoonNakshatra.Pada)

	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	fmt.Fprintf(w, "%-3s %-8s %-12s %7s %5s  %s\n", "", "Planet", "Sign", "Degree", "House", "Status")
	for _, p := range c.Planets {
		fmt.Fprintf(w, "%-3s %-8s %-12s %6.2f° %5d  %s\n",
			p.Symbol, p.Planet, p.Sign, p.Degree, p.AbsoluteHouse, p.Status)
	}

	if len(c.Aspects) > 0 {
		fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
		for _, a := range c.Aspects {
			fmt.Fprintf(w, "Aspect: %s (orb %.2f°)\n", a, a.Orb)
		}
	}
	if len(c.Transits) > 0 {
		fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
		for _, t := range c.Transits {
			fmt.Fprintf(w, "Transit: %s (orb %.2f°)\n", t, t.Orb)
		}
	}

	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	fmt.Fprintf(w, "Elements: Fire %d%%  Earth %d%%  Air %d%%  Water %d%%\n",
		c.Elements.Fire, c.Elements.Earth, c.Elements.Air, c.Elements.Water)
	if len(c.Traits) > 0 {
		fmt.Fprintf(w, "Traits: %s\n", strings.Join(c.Traits, ", "))
	}

	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	for _, area := range chart.LifeAreaOrder {
		la, ok := c.LifeAreas[area]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-14s %3d  %s\n", area, la.Score, la.Prediction)
	}

	if len(c.Periods) > 0 {
		fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
		fmt.Fprintln(w, c.PeriodLabel())
		for _, p := range c.Periods {
			fmt.Fprintf(w, "  %-8s %s to %s  %s\n", p.Planet,
				p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), p.Duration)
		}
	}
}

// WriteFestivals writes one line per festival.
func WriteFestivals(w io.Writer, festivals []festival.Festival) {
	if len(festivals) == 0 {
		fmt.Fprintln(w, "No festivals")
		return
	}

	fmt.Fprintf(w, "%-10s %-20s %-5s %4s  %s\n", "Date", "Festival", "Type", "Days", "Description")
	fmt.Fprintln(w, strings.Repeat("─", ruleWidth))
	for _, f := range festivals {
		fmt.Fprintf(w, "%-10s %-20s %-5s %4d  %s\n",
			f.Date.Format("2006-01-02"),
			truncateStr(f.Name, 20),
			f.Type,
			max(f.Duration, 1),
			f.Description,
		)
	}
	fmt.Fprintf(w, "\nTotal: %d festivals\n", len(festivals))
}

func truncateStr(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-2] + ".."
}
