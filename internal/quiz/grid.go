package quiz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/thtahamid/active-recall-test/internal/model"
)

const maxGridColumns = 5

func langBadge(lang model.Language) string {
	switch lang {
	case model.LangEnglish:
		return "EN"
	case model.LangSpanish:
		return "ES"
	default:
		return strings.ToUpper(string(lang))
	}
}

// gridColumns picks a column count that fits the widest tile of the current
// screen into the terminal width.
func (m *Model) gridColumns() int {
	var texts []string
	if grid := m.ctrl.Grid(); len(grid) > 0 {
		for _, item := range grid {
			texts = append(texts, item.Text)
		}
	} else {
		for _, w := range m.ctrl.Targets() {
			texts = append(texts, w.Text)
		}
	}
	return columnsFor(m.width, widestTile(texts))
}

// widestTile returns the rendered width of the widest tile: the word plus
// position prefix, language badge, padding, and border.
func widestTile(texts []string) int {
	widest := 0
	for _, t := range texts {
		if w := runewidth.StringWidth(t); w > widest {
			widest = w
		}
	}
	return widest + 12
}

func columnsFor(totalWidth, tileWidth int) int {
	if totalWidth <= 0 {
		return 3
	}
	if tileWidth <= 0 {
		return 1
	}
	cols := totalWidth / tileWidth
	if cols < 1 {
		cols = 1
	}
	if cols > maxGridColumns {
		cols = maxGridColumns
	}
	return cols
}

// renderTileGrid lays rendered tiles out row by row.
func renderTileGrid(tiles []string, cols int) string {
	if cols < 1 {
		cols = 1
	}
	rows := make([]string, 0, (len(tiles)+cols-1)/cols)
	for start := 0; start < len(tiles); start += cols {
		end := start + cols
		if end > len(tiles) {
			end = len(tiles)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}
