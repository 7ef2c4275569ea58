package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-jyotish/internal/state"
)

// Event glyphs
const (
	glyphOpened  = "▲"
	glyphClosed  = "▼"
	glyphChanged = "◆"
)

var eventStyles = map[state.EventType]lipgloss.Style{
	state.EventWindowOpened:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	state.EventWindowClosed:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	state.EventTithiChanged:     lipgloss.NewStyle().Foreground(lipgloss.Color("#D946EF")),
	state.EventNakshatraChanged: lipgloss.NewStyle().Foreground(lipgloss.Color("#7FDBFF")),
}

// formatEvent renders one event as a single line, without styling.
func formatEvent(e state.Event) string {
	ts := e.Timestamp.Format("15:04")
	switch e.Type {
	case state.EventWindowOpened:
		return fmt.Sprintf("%s %s %s opened (%s–%s)", ts, glyphOpened, e.Window, e.Start, e.End)
	case state.EventWindowClosed:
		return fmt.Sprintf("%s %s %s closed", ts, glyphClosed, e.Window)
	case state.EventTithiChanged:
		return fmt.Sprintf("%s %s Tithi %s → %s", ts, glyphChanged, e.Old, e.New)
	case state.EventNakshatraChanged:
		return fmt.Sprintf("%s %s Nakshatra %s → %s", ts, glyphChanged, e.Old, e.New)
	default:
		return fmt.Sprintf("%s %s", ts, e.Type)
	}
}

// renderEvents lists the most recent events first, at most limit of them.
func renderEvents(events []state.Event, limit int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Event log"))
	b.WriteString("\n")

	if len(events) == 0 {
		b.WriteString("  No events yet\n")
		return b.String()
	}

	shown := 0
	for i := len(events) - 1; i >= 0 && shown < limit; i-- {
		e := events[i]
		style, ok := eventStyles[e.Type]
		if !ok {
			style = rowStyle
		}
		b.WriteString("  " + style.Render(formatEvent(e)) + "\n")
		shown++
	}
	if len(events) > shown {
		b.WriteString(labelStyle.Render(fmt.Sprintf("  … %d older", len(events)-shown)) + "\n")
	}
	return b.String()
}
