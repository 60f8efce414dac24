package report

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/thtahamid/active-recall-test/internal/model"
)

const (
	barFill  = "█"
	barEmpty = "░"
	minBar   = 10
)

// langLabel maps bank languages to display names.
func langLabel(lang model.Language) string {
	switch lang {
	case model.LangEnglish:
		return "English"
	case model.LangSpanish:
		return "Spanish"
	default:
		return string(lang)
	}
}

// RenderSummary prints the headline numbers for a scored session.
func RenderSummary(w io.Writer, result model.ScoreResult) error {
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Retention: %d%%\n", result.RetentionPct); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Recalled: %d/%d\n", result.TotalRecalled, len(result.PerWord)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "False positives: %d\n", result.FalsePositives); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderLanguageBars prints one horizontal bar per language recall rate.
func RenderLanguageBars(w io.Writer, rates map[model.Language]int, totalWidth int) error {
	if len(rates) == 0 {
		return nil
	}
	langs := make([]model.Language, 0, len(rates))
	labelWidth := 0
	for lang := range rates {
		langs = append(langs, lang)
		if n := len(langLabel(lang)); n > labelWidth {
			labelWidth = n
		}
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })

	// Label, bar, and a "100%" suffix must fit in totalWidth.
	barWidth := totalWidth - labelWidth - 7
	if barWidth < minBar {
		barWidth = minBar
	}

	if _, err := fmt.Fprintln(w, "Recall by Language"); err != nil {
		return err
	}
	for _, lang := range langs {
		rate := rates[lang]
		if rate < 0 {
			rate = 0
		}
		if rate > 100 {
			rate = 100
		}
		filled := rate * barWidth / 100
		bar := strings.Repeat(barFill, filled) + strings.Repeat(barEmpty, barWidth-filled)
		if _, err := fmt.Fprintf(w, "%-*s %s %3d%%\n", labelWidth, langLabel(lang), bar, rate); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderCurve plots the reference forgetting curve against the observed
// retention. The observed series is a segment from full retention at "0 min"
// down to the measured point; the rest of the axis carries no observation.
func RenderCurve(w io.Writer, curve []model.CurvePoint, totalWidth, height int, useColor bool) error {
	if len(curve) == 0 {
		return nil
	}
	reference := make([]float64, len(curve))
	observed := make([]float64, len(curve))
	haveObserved := false
	for i, p := range curve {
		reference[i] = float64(p.Reference)
		if p.HasObserved {
			observed[i] = float64(p.Observed)
			haveObserved = true
		} else {
			observed[i] = math.NaN()
		}
	}
	if haveObserved && len(observed) > 0 {
		observed[0] = 100
	}

	series := []Series{{Name: "Reference", Values: reference}}
	if haveObserved {
		series = append(series, Series{Name: "You", Values: observed})
	}

	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	if err := PlotSeries(w, "Forgetting Curve", series, width, height, useColor); err != nil {
		return err
	}
	if width <= 0 {
		width = PlotWidthFor(terminalWidth())
	}
	labels := make([]string, len(curve))
	for i, p := range curve {
		labels[i] = p.Label
	}
	if _, err := fmt.Fprintln(w, xAxisRow(labels, width)); err != nil {
		return err
	}
	return nil
}

// xAxisRow spreads point labels across the plot width, aligned under the
// columns their values were resampled to.
func xAxisRow(labels []string, width int) string {
	axisPad := strings.Repeat(" ", len(axisLabelTop)+len([]rune(axisSeparator)))
	if len(labels) == 0 || width <= 0 {
		return axisPad
	}
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	for i, label := range labels {
		col := 0
		if len(labels) > 1 {
			col = i * (width - 1) / (len(labels) - 1)
		}
		runes := []rune(label)
		if col+len(runes) > width {
			col = width - len(runes)
		}
		if col < 0 {
			col = 0
		}
		for j, r := range runes {
			if col+j < width {
				row[col+j] = r
			}
		}
	}
	return axisPad + strings.TrimRight(string(row), " ")
}
