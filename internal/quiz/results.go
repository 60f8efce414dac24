package quiz

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/thtahamid/active-recall-test/internal/model"
	"github.com/thtahamid/active-recall-test/internal/report"
)

const plotHeight = 10

func (m *Model) viewResults() string {
	res := m.ctrl.Result()
	if res == nil {
		return ""
	}
	cards := m.renderCards(res)
	footer := footerStyle.Render("Scroll: up/down/pgup/pgdn  Restart: r  Quit: q")
	if m.width > 0 && m.height > 0 {
		bodyHeight := m.height - lipgloss.Height(cards) - 1
		if bodyHeight < 1 {
			bodyHeight = 1
		}
		m.results.Width = m.width
		m.results.Height = bodyHeight
	}
	return strings.Join([]string{cards, m.results.View(), footer}, "\n")
}

func (m *Model) renderCards(res *model.ScoreResult) string {
	cards := []string{
		metricCard("Retention", fmt.Sprintf("%d%%", res.RetentionPct)),
		metricCard("Recalled", fmt.Sprintf("%d/%d", res.TotalRecalled, len(res.PerWord))),
		metricCard("False Positives", fmt.Sprintf("%d", res.FalsePositives)),
	}
	if m.width > 0 && m.width < 60 {
		return strings.Join(cards, "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

// buildResults renders the dashboard content once per submission (and again
// on resize) into the viewport.
func (m *Model) buildResults() {
	res := m.ctrl.Result()
	if res == nil {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	var buf bytes.Buffer
	if err := report.RenderLanguageBars(&buf, res.RateByLanguage, minInt(width, 64)); err != nil {
		buf.WriteString(fmt.Sprintf("Failed to render language bars: %v\n", err))
	}
	if err := report.RenderCurve(&buf, res.Curve, minInt(width, 72), plotHeight, true); err != nil {
		buf.WriteString(fmt.Sprintf("Failed to render forgetting curve: %v\n", err))
	}
	content := renderWordTable(res.PerWord) + "\n\n" + strings.TrimRight(buf.String(), "\n")
	m.results.SetContent(content)
	m.results.GotoTop()
}

func renderWordTable(perWord []model.WordResult) string {
	wordWidth := 4
	for _, wr := range perWord {
		if n := runewidth.StringWidth(wr.Text); n > wordWidth {
			wordWidth = n
		}
	}
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Word", Width: wordWidth + 1},
		{Title: "Lang", Width: 4},
		{Title: "Recalled", Width: 8},
	}
	rows := make([]table.Row, 0, len(perWord))
	for _, wr := range perWord {
		recalled := "✓"
		if !wr.Recalled {
			recalled = "✗"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", wr.Position),
			wr.Text,
			langBadge(wr.Language),
			recalled,
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)
	t.SetStyles(wordTableStyles())
	return t.View()
}

func wordTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	// Static table, no row highlight.
	styles.Selected = styles.Cell
	return styles
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
