// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-jyotish/internal/astro"
	"github.com/litescript/ls-jyotish/internal/chart"
	"github.com/litescript/ls-jyotish/internal/state"
	"github.com/litescript/ls-jyotish/internal/version"
)

// ViewMode represents the current UI view.
type ViewMode int

const (
	ViewPanchang ViewMode = iota
	ViewChart
	ViewEvents

	viewCount
)

// headerLines is the height of the title, tagline and tabs.
const headerLines = 6

// Msg types for Bubble Tea
type (
	// TickMsg triggers periodic UI updates.
	TickMsg time.Time

	// AnimTickMsg triggers fast animation updates.
	AnimTickMsg time.Time

	// DataUpdateMsg signals a new Panchang day is available.
	DataUpdateMsg struct {
		Snapshot state.Snapshot
	}

	// ErrorMsg signals a refresh error.
	ErrorMsg struct {
		Error error
	}

	// ChartMsg replaces the displayed chart.
	ChartMsg struct {
		Chart *chart.Chart
	}
)

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	state *state.Manager
	now   func() time.Time

	// UI state
	viewMode ViewMode
	width    int
	height   int
	ready    bool
	animTick int // Animation tick for the spinner

	// Sub-models
	dashboard DashboardModel
	chartView ChartModel

	// Data snapshot (updated on DataUpdateMsg)
	snapshot state.Snapshot
}

// New creates a new root UI model. c may be nil when no birth details were
// given.
func New(stateMgr *state.Manager, c *chart.Chart) Model {
	m := Model{
		state:     stateMgr,
		now:       time.Now,
		viewMode:  ViewPanchang,
		dashboard: NewDashboardModel(),
		chartView: NewChartModel(c),
	}
	if stateMgr != nil {
		m.snapshot = stateMgr.Snapshot()
		m.dashboard = m.dashboard.UpdateData(m.snapshot)
	}
	return m
}

// WithClock returns m reading the time from now. Used by tests.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	return m
}

// CurrentView returns the active view.
func (m Model) CurrentView() ViewMode {
	return m.viewMode
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		animTickCmd(),
		m.dashboard.Init(),
	)
}

func (m Model) istNow() time.Time {
	return m.now().In(astro.IST)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "1", "p":
			m.viewMode = ViewPanchang
		case "2", "c":
			m.viewMode = ViewChart
		case "3", "e":
			m.viewMode = ViewEvents

		case "tab":
			// Cycle through views
			m.viewMode = (m.viewMode + 1) % viewCount

		default:
			// Pass to active view
			cmds = append(cmds, m.updateActiveView(msg))
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Propagate to sub-models
		contentHeight := msg.Height - headerLines - 2
		m.dashboard = m.dashboard.SetSize(msg.Width, contentHeight)
		m.chartView = m.chartView.SetSize(msg.Width, contentHeight)

	case TickMsg:
		cmds = append(cmds, tickCmd())
		// Request fresh snapshot
		if m.state != nil {
			m.snapshot = m.state.Snapshot()
			m.dashboard = m.dashboard.UpdateData(m.snapshot)
		}
		m.dashboard = m.dashboard.SetNow(m.istNow())

	case AnimTickMsg:
		cmds = append(cmds, animTickCmd())
		m.animTick++

	case DataUpdateMsg:
		m.snapshot = msg.Snapshot
		m.dashboard = m.dashboard.UpdateData(m.snapshot).SetNow(m.istNow())

	case ChartMsg:
		m.chartView = m.chartView.SetChart(msg.Chart)

	case ErrorMsg:
		m.dashboard = m.dashboard.SetError(msg.Error)

	default:
		cmds = append(cmds, m.updateActiveView(msg))
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.viewMode {
	case ViewPanchang:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewChart:
		m.chartView, cmd = m.chartView.Update(msg)
	}
	return cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var content string
	switch m.viewMode {
	case ViewPanchang:
		content = m.dashboard.View()
	case ViewChart:
		content = m.chartView.View()
	case ViewEvents:
		content = renderEvents(m.snapshot.Events, max(m.height-headerLines-4, 5))
	}

	return m.renderFrame(content)
}

func (m Model) renderFrame(content string) string {
	header := m.renderHeader()
	footer := m.renderFooter()

	return header + "\n" + content + "\n" + footer
}

func (m Model) renderHeader() string {
	return m.renderLogo() + m.renderTabs() + "\n"
}

func (m Model) renderLogo() string {
	title := "  ॐ  L S · J Y O T I S H"

	var b strings.Builder
	b.WriteString("\n")

	// Render the title with a horizontal truecolor gradient
	runes := []rune(title)
	for col, r := range runes {
		color := gradientColor(col, 0, len(runes), 1)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		b.WriteString(style.Render(string(r)))
	}
	b.WriteString("\n")

	// Tagline
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	b.WriteString(muted.Render("  Panchang · Muhurat · Birth charts"))
	b.WriteString("\n")
	b.WriteString(muted.Render(fmt.Sprintf("  litescript.net | v%s", version.Version)))
	b.WriteString("\n\n")

	return b.String()
}

// gradientColor returns a hex color for a position in the title gradient:
// saffron -> magenta -> violet, darker toward the bottom.
func gradientColor(col, row, width, height int) string {
	xRatio := float64(col) / float64(max(width, 1))
	yRatio := float64(row) / float64(max(height, 1))

	// Saffron (#F4A259) -> Magenta (#D946EF) -> Violet (#8B5CF6)
	var r, g, b float64
	if xRatio < 0.5 {
		t := xRatio / 0.5
		r = 244 + t*(217-244)
		g = 162 + t*(70-162)
		b = 89 + t*(239-89)
	} else {
		t := (xRatio - 0.5) / 0.5
		r = 217 + t*(139-217)
		g = 70 + t*(92-70)
		b = 239 + t*(246-239)
	}

	brightness := 1.0 - (yRatio * 0.5)
	return fmt.Sprintf("#%02X%02X%02X", clampByte(r*brightness), clampByte(g*brightness), clampByte(b*brightness))
}

func clampByte(v float64) int {
	return min(max(int(v), 0), 255)
}

func (m Model) renderTabs() string {
	tabs := []string{"[1] Panchang", "[2] Chart", "[3] Events"}
	activeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	var parts []string
	for i, tab := range tabs {
		if ViewMode(i) == m.viewMode {
			parts = append(parts, activeStyle.Render("▶ "+tab))
		} else {
			parts = append(parts, dimStyle.Render("  "+tab))
		}
	}
	return "  " + strings.Join(parts, "  ")
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#7B2CBF"))

	// Animated spinner frames
	spinnerFrames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	spinner := spinnerFrames[m.animTick%len(spinnerFrames)]

	var status string
	switch {
	case m.snapshot.LastError != nil:
		status = errorStyle.Render("ERROR: " + m.snapshot.LastError.Error())
	case !m.snapshot.LastRefresh.IsZero():
		var interval time.Duration
		if m.state != nil {
			interval = m.state.RefreshInterval()
		}
		countdown := m.snapshot.LastRefresh.Add(interval).Sub(m.now()).Round(time.Second)
		if countdown < 0 {
			countdown = 0
		}
		status = accentStyle.Render(spinner) + dimStyle.Render(fmt.Sprintf(" %s IST · refresh in %ds",
			m.istNow().Format("15:04:05"), int(countdown.Seconds())))
	default:
		status = accentStyle.Render(spinner) + dimStyle.Render(" waiting for first refresh")
	}

	var help string
	switch m.viewMode {
	case ViewChart:
		help = dimStyle.Render("↑↓: scroll | tab: switch view | q: quit")
	default:
		help = dimStyle.Render("1/p 2/c 3/e | tab: switch view | q: quit")
	}

	return "  " + status + "  " + dimStyle.Render("|") + "  " + help
}

func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func animTickCmd() tea.Cmd {
	return tea.Tick(80*time.Millisecond, func(t time.Time) tea.Msg {
		return AnimTickMsg(t)
	})
}

// SendDataUpdate creates a command that sends a data update message.
func SendDataUpdate(snapshot state.Snapshot) tea.Cmd {
	return func() tea.Msg {
		return DataUpdateMsg{Snapshot: snapshot}
	}
}

// SendError creates a command that sends an error message.
func SendError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Error: err}
	}
}
