package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-jyotish/internal/chart"
)

var (
	exaltedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46"))

	debilitatedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E84A27"))
)

// elementColors maps each element to its bar color.
var elementColors = map[chart.Element]lipgloss.Color{
	chart.Fire:  lipgloss.Color("#E84A27"),
	chart.Earth: lipgloss.Color("#8FB339"),
	chart.Air:   lipgloss.Color("#7FDBFF"),
	chart.Water: lipgloss.Color("#3B82F6"),
}

// ChartModel shows a natal chart.
type ChartModel struct {
	width  int
	height int
	scroll int
	chart  *chart.Chart
}

// NewChartModel creates a chart view for c, which may be nil.
func NewChartModel(c *chart.Chart) ChartModel {
	return ChartModel{chart: c}
}

// SetSize updates the viewport size.
func (m ChartModel) SetSize(width, height int) ChartModel {
	m.width = width
	m.height = height
	return m
}

// SetChart replaces the displayed chart and resets scrolling.
func (m ChartModel) SetChart(c *chart.Chart) ChartModel {
	m.chart = c
	m.scroll = 0
	return m
}

// Update handles scrolling keys.
func (m ChartModel) Update(msg tea.Msg) (ChartModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		maxScroll := max(len(m.lines())-m.visibleRows(), 0)
		switch msg.String() {
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
		case "down", "j":
			if m.scroll < maxScroll {
				m.scroll++
			}
		case "home":
			m.scroll = 0
		case "end":
			m.scroll = maxScroll
		}
	}
	return m, nil
}

func (m ChartModel) visibleRows() int {
	if m.height <= 0 {
		return 1 << 20
	}
	return max(m.height, 5)
}

// View renders the visible part of the chart.
func (m ChartModel) View() string {
	if m.chart == nil {
		return "No chart loaded. Start with --birth-date, --birth-time, --lat and --lon to view one.\n"
	}

	lines := m.lines()
	end := min(m.scroll+m.visibleRows(), len(lines))
	out := strings.Join(lines[m.scroll:end], "\n")
	if end < len(lines) || m.scroll > 0 {
		out += "\n" + labelStyle.Render(fmt.Sprintf("  lines %d-%d of %d", m.scroll+1, end, len(lines)))
	}
	return out
}

func (m ChartModel) lines() []string {
	c := m.chart
	if c == nil {
		return nil
	}

	var lines []string
	add := func(s string) { lines = append(lines, strings.Split(strings.TrimRight(s, "\n"), "\n")...) }

	add(titleStyle.Render(fmt.Sprintf("%s chart · %s %s", titleCase(c.System.String()), c.Details.Date, c.Details.Time)))
	add("  " + labelStyle.Render("Ascendant ") + rowStyle.Render(fmt.Sprintf("%s %.2f°", c.AscendantSign, c.Ascendant)))
	if _, ok := c.Planet(chart.Sun); ok {
		add("  " + labelStyle.Render("Sun sign  ") + rowStyle.Render(c.SunSign.String()))
	}
	add("  " + labelStyle.Render("Moon sign ") + rowStyle.Render(c.MoonSign.String()))
	add("  " + labelStyle.Render("Nakshatra ") + rowStyle.Render(fmt.Sprintf("%s · pada %d", c.MoonNakshatra.Name, c.MoonNakshatra.Pada)))
	add("")

	add(headerStyle.Render(fmt.Sprintf("%-2s %-8s %-12s %7s %5s  %-11s", "", "Planet", "Sign", "Degree", "House", "Status")))
	for _, p := range c.Planets {
		add("  " + rowStyle.Render(fmt.Sprintf("%-2s %-8s %-12s %6.2f° %5d  ", p.Symbol, p.Planet, p.Sign, p.Degree, p.AbsoluteHouse)) +
			renderStatus(p.Status))
	}
	add("")

	add(titleStyle.Render("Houses"))
	for _, h := range c.Houses {
		if len(h.Planets) == 0 {
			continue
		}
		names := make([]string, len(h.Planets))
		for i, p := range h.Planets {
			names[i] = p.Planet.String()
		}
		add(fmt.Sprintf("  %2d %-12s %s", h.Number, h.Sign, strings.Join(names, ", ")))
	}
	add("")

	if len(c.Aspects) > 0 || len(c.Transits) > 0 {
		add(titleStyle.Render("Aspects & transits"))
		for _, a := range c.Aspects {
			add("  " + a.String())
		}
		for _, t := range c.Transits {
			add("  " + t.String())
		}
		add("")
	}

	add(titleStyle.Render("Elements"))
	for _, e := range []struct {
		el  chart.Element
		pct int
	}{
		{chart.Fire, c.Elements.Fire},
		{chart.Earth, c.Elements.Earth},
		{chart.Air, c.Elements.Air},
		{chart.Water, c.Elements.Water},
	} {
		add(fmt.Sprintf("  %-6s %s %3d%%", e.el, renderScoreBar(e.pct, 20, elementColors[e.el]), e.pct))
	}
	if len(c.Traits) > 0 {
		add("  " + labelStyle.Render(strings.Join(c.Traits, " · ")))
	}
	add("")

	add(titleStyle.Render("Life areas"))
	for _, area := range chart.LifeAreaOrder {
		la, ok := c.LifeAreas[area]
		if !ok {
			continue
		}
		add(fmt.Sprintf("  %-14s %s %3d  %s", titleCase(area), renderScoreBar(la.Score, 10, "#9D4EDD"), la.Score, la.Prediction))
	}
	add("")

	if len(c.Periods) > 0 {
		add(titleStyle.Render(c.PeriodLabel()))
		for _, p := range c.Periods {
			add(fmt.Sprintf("  %-8s %s – %s  %-9s %s", p.Planet,
				p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"), p.Duration, p.Prediction))
		}
	}

	return lines
}

func renderStatus(s chart.Status) string {
	switch s {
	case chart.Exalted:
		return exaltedStyle.Render(string(s))
	case chart.Debilitated:
		return debilitatedStyle.Render(string(s))
	default:
		return labelStyle.Render(string(s))
	}
}

// renderScoreBar draws a 0-100 score as a bar of width cells.
func renderScoreBar(score, width int, color lipgloss.Color) string {
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	style := lipgloss.NewStyle().Foreground(color)
	return style.Render(strings.Repeat("█", filled)) + labelStyle.Render(strings.Repeat("░", width-filled))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
