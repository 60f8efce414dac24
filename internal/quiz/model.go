// Package quiz provides the Bubble Tea quiz interface.
package quiz

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/thtahamid/active-recall-test/internal/session"
)

type tickMsg struct {
	gen int
}

// Model implements the Bubble Tea quiz UI. All quiz state lives in the
// controller; the model only holds presentation state.
type Model struct {
	ctrl *session.Controller

	width  int
	height int

	cursor  int
	results viewport.Model
}

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	subtitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	countdownStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	tileStyle      = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	tileCursorStyle = tileStyle.
			BorderForeground(lipgloss.Color("#F0F0F0"))
	tileSelectedStyle = tileStyle.
				BorderForeground(lipgloss.Color("#C89A3A")).
				Foreground(lipgloss.Color("#C89A3A")).
				Bold(true)
	badgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// NewModel constructs a quiz UI model around a controller.
func NewModel(ctrl *session.Controller) *Model {
	return &Model{
		ctrl:    ctrl,
		results: viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// tickCmd schedules one countdown second carrying the timer generation, so a
// tick that outlives its phase is discarded by the controller.
func tickCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.ctrl.Phase() == session.PhaseResults {
			m.buildResults()
		}
		return m, nil
	case tickMsg:
		if !m.ctrl.Tick(msg.gen) {
			// Stale tick: the live chain, if any, reschedules itself.
			return m, nil
		}
		switch m.ctrl.Phase() {
		case session.PhaseStudy, session.PhaseDistract:
			return m, tickCmd(m.ctrl.TimerGen())
		case session.PhaseRecall:
			m.cursor = 0
		}
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.ctrl.Phase() {
	case session.PhaseIntro:
		switch msg.String() {
		case "enter", " ", "s":
			if m.ctrl.Start() {
				return m, tickCmd(m.ctrl.TimerGen())
			}
		}
	case session.PhaseRecall:
		switch msg.String() {
		case "left", "h":
			m.moveCursor(-1)
		case "right", "l":
			m.moveCursor(1)
		case "up", "k":
			m.moveCursor(-m.gridColumns())
		case "down", "j":
			m.moveCursor(m.gridColumns())
		case " ", "enter":
			grid := m.ctrl.Grid()
			if m.cursor >= 0 && m.cursor < len(grid) {
				m.ctrl.Toggle(grid[m.cursor].Text)
			}
		case "s":
			if m.ctrl.Submit() {
				m.buildResults()
			}
		}
	case session.PhaseResults:
		if msg.String() == "r" {
			m.ctrl.Reset()
			m.cursor = 0
			m.results.SetContent("")
			return m, nil
		}
		var cmd tea.Cmd
		m.results, cmd = m.results.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	grid := m.ctrl.Grid()
	if len(grid) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 {
		next = 0
	}
	if next >= len(grid) {
		next = len(grid) - 1
	}
	m.cursor = next
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.ctrl.Phase() {
	case session.PhaseIntro:
		return m.viewIntro()
	case session.PhaseStudy:
		return m.viewStudy()
	case session.PhaseDistract:
		return m.viewDistract()
	case session.PhaseRecall:
		return m.viewRecall()
	case session.PhaseResults:
		return m.viewResults()
	}
	return ""
}

func (m *Model) viewIntro() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Active Recall Test"),
		"",
		subtitleStyle.Render(fmt.Sprintf("Study %d words, wait, then pick them out of a grid.", m.ctrl.Cap())),
		subtitleStyle.Render("Decoys are mixed in. Trust your memory, not your guesses."),
		"",
		footerStyle.Render("enter: start  q: quit"),
	)
	return m.center(body)
}

func (m *Model) viewStudy() string {
	tiles := make([]string, 0, len(m.ctrl.Targets()))
	for _, w := range m.ctrl.Targets() {
		label := fmt.Sprintf("%2d. %s %s", w.Position, w.Text, badgeStyle.Render(langBadge(w.Language)))
		tiles = append(tiles, tileStyle.Render(label))
	}
	grid := renderTileGrid(tiles, m.gridColumns())
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Memorize these words"),
		"",
		grid,
	)
	footer := countdownStyle.Render(fmt.Sprintf("Time left: %ds", m.ctrl.Remaining()))
	return m.placeWithFooter(body, footer)
}

func (m *Model) viewDistract() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Look away from the screen"),
		"",
		subtitleStyle.Render("Count backwards from 100 in threes."),
		"",
		countdownStyle.Render(fmt.Sprintf("%ds", m.ctrl.Remaining())),
	)
	return m.center(body)
}

func (m *Model) viewRecall() string {
	grid := m.ctrl.Grid()
	tiles := make([]string, 0, len(grid))
	for i, item := range grid {
		label := fmt.Sprintf("%s %s", item.Text, badgeStyle.Render(langBadge(item.Language)))
		style := tileStyle
		if m.ctrl.Selected(item.Text) {
			style = tileSelectedStyle
		} else if i == m.cursor {
			style = tileCursorStyle
		}
		if i == m.cursor && m.ctrl.Selected(item.Text) {
			style = tileSelectedStyle.BorderForeground(lipgloss.Color("#F0F0F0"))
		}
		tiles = append(tiles, style.Render(label))
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Which words did you study?"),
		"",
		renderTileGrid(tiles, m.gridColumns()),
	)
	footer := footerStyle.Render(fmt.Sprintf(
		"Selected %d/%d  ·  arrows/hjkl: move  space: toggle  s: submit  q: quit",
		m.ctrl.SelectedCount(), m.ctrl.Cap(),
	))
	return m.placeWithFooter(body, footer)
}

func (m *Model) center(body string) string {
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m *Model) placeWithFooter(body, footer string) string {
	if m.width <= 0 || m.height <= 0 {
		return body + "\n" + footer
	}
	if m.height < 3 {
		return m.center(body)
	}
	bodyHeight := m.height - 1
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return placed + "\n" + footerLine
}
