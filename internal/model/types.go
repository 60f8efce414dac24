// Package model defines shared data structures.
package model

// Language identifies which bank a word belongs to.
type Language string

// Supported word bank languages.
const (
	LangEnglish Language = "en"
	LangSpanish Language = "es"
)

// Word is a target word the participant studies and should recall.
type Word struct {
	Text     string
	Language Language
	Position int // 1-based order on the study screen
}

// Decoy is an unstudied word placed in the recall grid.
type Decoy struct {
	Text     string
	Language Language
}

// GridItem is one tile of the shuffled recall grid.
type GridItem struct {
	Text     string
	Language Language
	IsTarget bool
	Position int // study position for targets, 0 for decoys
}

// WordResult records the recall outcome for one target word.
type WordResult struct {
	Text     string
	Language Language
	Position int
	Recalled bool
}

// CurvePoint is one labeled point of the forgetting curve.
type CurvePoint struct {
	Label       string
	Reference   int // expected retention percentage at this elapsed time
	Observed    int // measured retention, valid only when HasObserved
	HasObserved bool
}

// ScoreResult holds everything derived from one submission. It is built once
// by the scorer and never mutated afterwards.
type ScoreResult struct {
	PerWord        []WordResult
	RateByLanguage map[Language]int
	TotalRecalled  int
	RetentionPct   int
	FalsePositives int
	Curve          []CurvePoint
}

// Config defines quiz settings.
type Config struct {
	StudySeconds    int
	DistractSeconds int
	CustomWords     bool
}
