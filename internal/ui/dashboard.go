package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
	"github.com/litescript/ls-jyotish/internal/state"
)

// Styles shared by the views
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	rowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	inauspiciousStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#E84A27"))

	majorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F4A259"))

	minorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9D4EDD"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// DashboardModel is the live Panchang view.
type DashboardModel struct {
	width    int
	height   int
	now      time.Time
	snapshot state.Snapshot
	lastErr  error
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel() DashboardModel {
	return DashboardModel{}
}

// Init implements the Bubble Tea model interface.
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport size.
func (m DashboardModel) SetSize(width, height int) DashboardModel {
	m.width = width
	m.height = height
	return m
}

// SetNow sets the clock used for window highlighting.
func (m DashboardModel) SetNow(now time.Time) DashboardModel {
	m.now = now
	return m
}

// UpdateData updates the model with new data.
func (m DashboardModel) UpdateData(snapshot state.Snapshot) DashboardModel {
	m.snapshot = snapshot
	if snapshot.LastError == nil {
		m.lastErr = nil
	}
	return m
}

// SetError sets the last error for display.
func (m DashboardModel) SetError(err error) DashboardModel {
	m.lastErr = err
	return m
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	var b strings.Builder

	// Show error state if present
	if m.lastErr != nil {
		b.WriteString(errorStyle.Render("Error: " + m.lastErr.Error()))
		b.WriteString("\n\n")
	}

	day := m.snapshot.Day
	if day == nil {
		b.WriteString("Computing Panchang...\n")
		return b.String()
	}

	b.WriteString(m.renderElements(day))
	b.WriteString("\n")
	b.WriteString(m.renderDaylight(day))
	b.WriteString("\n\n")
	b.WriteString(m.renderWindows(day))
	b.WriteString("\n")
	b.WriteString(m.renderFestivals())

	return b.String()
}

func (m DashboardModel) renderElements(day *panchang.Day) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Panchang · %s, %s", day.Weekday, day.Date.Format("2 Jan 2006"))))
	b.WriteString("\n")

	rows := [][2]string{
		{"Location", fmt.Sprintf("%s (%.2f°, %.2f°)", day.Location.Name, day.Location.Latitude, day.Location.Longitude)},
		{"Tithi", fmt.Sprintf("%s %s · %s–%s", day.Tithi.Paksha, day.Tithi.Name, day.Tithi.StartTime, day.Tithi.EndTime)},
		{"Nakshatra", fmt.Sprintf("%s · pada %d", day.Nakshatra.Name, day.Nakshatra.Pada)},
		{"Yoga", day.Yoga.Name},
		{"Karana", day.Karana.Name},
	}
	for _, r := range rows {
		b.WriteString("  " + labelStyle.Render(fmt.Sprintf("%-10s", r[0])) + " " + rowStyle.Render(r[1]) + "\n")
	}
	return b.String()
}

// renderDaylight shows how far the clock is between sunrise and sunset.
func (m DashboardModel) renderDaylight(day *panchang.Day) string {
	rise, err1 := panchang.TimeToDecimal(day.Sunrise)
	set, err2 := panchang.TimeToDecimal(day.Sunset)
	frac := 0.0
	if err1 == nil && err2 == nil && set > rise {
		now := float64(m.now.Hour()) + float64(m.now.Minute())/60
		frac = (now - rise) / (set - rise)
	}
	return "  " + labelStyle.Render("☀ "+day.Sunrise) + " " +
		m.renderProgressBar(frac, 24) + " " + labelStyle.Render(day.Sunset+" ☾")
}

// renderProgressBar draws a bracketed bar filled to frac, clamped to [0, 1].
func (m DashboardModel) renderProgressBar(frac float64, width int) string {
	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return "[" + barStyle.Render(bar) + "]"
}

func (m DashboardModel) renderWindows(day *panchang.Day) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Muhurat"))
	b.WriteString("\n")

	header := fmt.Sprintf("%-16s %-5s  %-5s  %s", "Window", "Start", "End", "Significance")
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	active := make(map[string]bool)
	for _, w := range day.ActiveWindows(m.now) {
		active[w.Name] = true
	}

	for _, w := range day.Windows() {
		sig := w.Significance
		if m.width > 0 {
			sig = truncate(sig, max(m.width-34, 10))
		}
		row := fmt.Sprintf("%-16s %-5s  %-5s  %s", w.Name, w.StartTime, w.EndTime, sig)

		switch {
		case active[w.Name]:
			b.WriteString(activeRowStyle.Render("▶ " + row))
		case w.Name == panchang.WindowRahuKaal:
			b.WriteString(inauspiciousStyle.Render("  " + row))
		default:
			b.WriteString(rowStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m DashboardModel) renderFestivals() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Festivals this month"))
	b.WriteString("\n")

	if len(m.snapshot.Festivals) == 0 {
		b.WriteString("  None\n")
		return b.String()
	}

	for _, f := range m.snapshot.Festivals {
		style := minorStyle
		if f.Type == festival.Major {
			style = majorStyle
		}
		line := fmt.Sprintf("%-6s %-18s %s", f.Date.Format("Jan 2"), f.Name, f.Description)
		if m.width > 0 {
			line = truncate(line, max(m.width-4, 20))
		}
		b.WriteString("  " + style.Render(line) + "\n")
	}
	return b.String()
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
