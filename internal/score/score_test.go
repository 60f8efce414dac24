package score

import (
	"testing"

	"github.com/thtahamid/active-recall-test/internal/model"
	"github.com/thtahamid/active-recall-test/internal/words"
)

func selectionOf(texts ...string) map[string]struct{} {
	sel := make(map[string]struct{}, len(texts))
	for _, t := range texts {
		sel[t] = struct{}{}
	}
	return sel
}

func TestScoreFirstEightTargets(t *testing.T) {
	banks := words.Builtin()
	sel := map[string]struct{}{}
	for _, w := range banks.Targets[:8] {
		sel[w.Text] = struct{}{}
	}
	res := Score(banks.Targets, sel)

	if res.TotalRecalled != 8 {
		t.Fatalf("expected 8 recalled, got %d", res.TotalRecalled)
	}
	if res.RetentionPct != 53 {
		t.Fatalf("expected retention 53, got %d", res.RetentionPct)
	}
	if res.FalsePositives != 0 {
		t.Fatalf("expected 0 false positives, got %d", res.FalsePositives)
	}
	// The first 8 targets are the English bank.
	if res.RateByLanguage[model.LangEnglish] != 100 {
		t.Fatalf("expected english rate 100, got %d", res.RateByLanguage[model.LangEnglish])
	}
	if res.RateByLanguage[model.LangSpanish] != 0 {
		t.Fatalf("expected spanish rate 0, got %d", res.RateByLanguage[model.LangSpanish])
	}
}

func TestScoreCountsFalsePositives(t *testing.T) {
	banks := words.Builtin()
	sel := selectionOf(
		banks.Targets[0].Text,
		banks.Targets[1].Text,
		banks.Targets[8].Text,
		banks.Targets[9].Text,
		banks.Targets[10].Text,
		banks.Decoys[0].Text,
		banks.Decoys[5].Text,
	)
	res := Score(banks.Targets, sel)
	if res.TotalRecalled != 5 {
		t.Fatalf("expected 5 recalled, got %d", res.TotalRecalled)
	}
	if res.FalsePositives != 2 {
		t.Fatalf("expected 2 false positives, got %d", res.FalsePositives)
	}
}

func TestScoreUnknownWordsCountOnce(t *testing.T) {
	banks := words.Builtin()
	res := Score(banks.Targets, selectionOf("zzz", "not-a-word", banks.Targets[0].Text))
	if res.FalsePositives != 2 {
		t.Fatalf("expected 2 false positives for unknown words, got %d", res.FalsePositives)
	}
	if res.TotalRecalled != 1 {
		t.Fatalf("expected 1 recalled, got %d", res.TotalRecalled)
	}
}

func TestScoreEmptySelection(t *testing.T) {
	banks := words.Builtin()
	res := Score(banks.Targets, map[string]struct{}{})
	if res.TotalRecalled != 0 || res.RetentionPct != 0 || res.FalsePositives != 0 {
		t.Fatalf("empty selection should score all zeros: %+v", res)
	}
	if len(res.PerWord) != len(banks.Targets) {
		t.Fatalf("per-word results missing: %d of %d", len(res.PerWord), len(banks.Targets))
	}
	for i, wr := range res.PerWord {
		if wr.Recalled {
			t.Fatalf("word %d marked recalled with empty selection", i)
		}
	}
}

func TestScoreRatesAreBoundedIntegers(t *testing.T) {
	banks := words.Builtin()
	selections := []map[string]struct{}{
		{},
		selectionOf(banks.Targets[0].Text),
		selectionOf(banks.Targets[8].Text, banks.Targets[9].Text),
		func() map[string]struct{} {
			sel := map[string]struct{}{}
			for _, w := range banks.Targets {
				sel[w.Text] = struct{}{}
			}
			return sel
		}(),
	}
	for i, sel := range selections {
		res := Score(banks.Targets, sel)
		for lang, rate := range res.RateByLanguage {
			if rate < 0 || rate > 100 {
				t.Fatalf("case %d: rate for %s out of range: %d", i, lang, rate)
			}
		}
		if res.RetentionPct < 0 || res.RetentionPct > 100 {
			t.Fatalf("case %d: retention out of range: %d", i, res.RetentionPct)
		}
	}
}

func TestScorePerWordPreservesStudyOrder(t *testing.T) {
	banks := words.Builtin()
	res := Score(banks.Targets, selectionOf(banks.Targets[3].Text))
	for i, wr := range res.PerWord {
		if wr.Text != banks.Targets[i].Text || wr.Position != banks.Targets[i].Position {
			t.Fatalf("per-word order broken at %d: %+v", i, wr)
		}
	}
	if !res.PerWord[3].Recalled {
		t.Fatalf("selected word not marked recalled")
	}
}

func TestScoreCurveShape(t *testing.T) {
	banks := words.Builtin()
	sel := map[string]struct{}{}
	for _, w := range banks.Targets[:8] {
		sel[w.Text] = struct{}{}
	}
	res := Score(banks.Targets, sel)

	labels := []string{"0 min", "5 min", "20 min", "1 hr", "1 day", "1 wk"}
	refs := []int{100, 58, 44, 36, 28, 23}
	if len(res.Curve) != len(labels) {
		t.Fatalf("expected %d curve points, got %d", len(labels), len(res.Curve))
	}
	for i, p := range res.Curve {
		if p.Label != labels[i] || p.Reference != refs[i] {
			t.Fatalf("curve point %d: got %+v", i, p)
		}
		if p.Label == "5 min" {
			if !p.HasObserved || p.Observed != 53 {
				t.Fatalf("observed retention missing at 5 min: %+v", p)
			}
		} else if p.HasObserved {
			t.Fatalf("unexpected observed value at %s", p.Label)
		}
	}
}

func TestRoundRate(t *testing.T) {
	cases := []struct {
		part, whole, want int
	}{
		{0, 0, 0},
		{1, 0, 0},
		{8, 15, 53},
		{7, 15, 47},
		{1, 2, 50},
		{1, 3, 33},
		{2, 3, 67},
		{15, 15, 100},
	}
	for _, tc := range cases {
		if got := roundRate(tc.part, tc.whole); got != tc.want {
			t.Fatalf("roundRate(%d, %d) = %d, want %d", tc.part, tc.whole, got, tc.want)
		}
	}
}
