// Package score computes recall statistics for one submission.
package score

import (
	"math"

	"github.com/thtahamid/active-recall-test/internal/model"
)

// Ebbinghaus-style reference retention at labeled elapsed times. The observed
// retention is attached to the point nearest the distraction interval.
var curveReference = []model.CurvePoint{
	{Label: "0 min", Reference: 100},
	{Label: "5 min", Reference: 58},
	{Label: "20 min", Reference: 44},
	{Label: "1 hr", Reference: 36},
	{Label: "1 day", Reference: 28},
	{Label: "1 wk", Reference: 23},
}

const observedLabel = "5 min"

// Score derives recall statistics from the target list and the set of texts
// the participant selected. It is total: selection may be empty, partial, or
// contain words that are neither targets nor decoys.
func Score(targets []model.Word, selection map[string]struct{}) model.ScoreResult {
	perWord := make([]model.WordResult, 0, len(targets))
	targetTexts := make(map[string]struct{}, len(targets))
	recalledByLang := map[model.Language]int{}
	totalByLang := map[model.Language]int{}
	totalRecalled := 0

	for _, w := range targets {
		targetTexts[w.Text] = struct{}{}
		_, recalled := selection[w.Text]
		if recalled {
			totalRecalled++
			recalledByLang[w.Language]++
		}
		totalByLang[w.Language]++
		perWord = append(perWord, model.WordResult{
			Text:     w.Text,
			Language: w.Language,
			Position: w.Position,
			Recalled: recalled,
		})
	}

	falsePositives := 0
	for text := range selection {
		if _, ok := targetTexts[text]; !ok {
			falsePositives++
		}
	}

	rates := make(map[model.Language]int, len(totalByLang))
	for lang, total := range totalByLang {
		rates[lang] = roundRate(recalledByLang[lang], total)
	}
	retention := roundRate(totalRecalled, len(targets))

	curve := make([]model.CurvePoint, len(curveReference))
	copy(curve, curveReference)
	for i := range curve {
		if curve[i].Label == observedLabel {
			curve[i].Observed = retention
			curve[i].HasObserved = true
		}
	}

	return model.ScoreResult{
		PerWord:        perWord,
		RateByLanguage: rates,
		TotalRecalled:  totalRecalled,
		RetentionPct:   retention,
		FalsePositives: falsePositives,
		Curve:          curve,
	}
}

// roundRate returns round-half-up of 100*part/whole, or 0 for an empty whole.
func roundRate(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Floor(float64(part)/float64(whole)*100 + 0.5))
}
