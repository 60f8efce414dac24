// Package session owns the quiz state machine: phases, the countdown, the
// shuffled grid, and the participant's selection.
package session

import (
	"math/rand"
	"time"

	"github.com/thtahamid/active-recall-test/internal/model"
	"github.com/thtahamid/active-recall-test/internal/score"
	"github.com/thtahamid/active-recall-test/internal/words"
)

// Phase identifies the current quiz phase.
type Phase string

// Quiz phases in order. The only back-edge is results -> intro via Reset.
const (
	PhaseIntro    Phase = "intro"
	PhaseStudy    Phase = "study"
	PhaseDistract Phase = "distract"
	PhaseRecall   Phase = "recall"
	PhaseResults  Phase = "results"
)

// Controller is the single owner of all quiz state. It is not safe for
// concurrent use; the TUI drives it from one update loop.
type Controller struct {
	cfg   model.Config
	banks words.Banks
	rnd   *rand.Rand

	phase     Phase
	remaining int
	timerGen  int

	grid      []model.GridItem
	selection map[string]struct{}
	submitted bool
	result    *model.ScoreResult
}

// New returns a controller in the intro phase. A nil rnd gets a time seed;
// tests pass a fixed-seed rand for deterministic shuffles.
func New(cfg model.Config, banks words.Banks, rnd *rand.Rand) *Controller {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Controller{
		cfg:       cfg,
		banks:     banks,
		rnd:       rnd,
		phase:     PhaseIntro,
		selection: map[string]struct{}{},
	}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// Remaining returns the seconds left on the active countdown.
func (c *Controller) Remaining() int { return c.remaining }

// TimerGen returns the current timer generation. Ticks scheduled under an
// older generation must be delivered with that generation and are ignored.
func (c *Controller) TimerGen() int { return c.timerGen }

// Targets returns the target word list in study order.
func (c *Controller) Targets() []model.Word { return c.banks.Targets }

// Grid returns the shuffled recall grid, fixed for the session. Nil before
// Start.
func (c *Controller) Grid() []model.GridItem { return c.grid }

// Selected reports whether the given text is currently selected.
func (c *Controller) Selected(text string) bool {
	_, ok := c.selection[text]
	return ok
}

// SelectedCount returns the number of selected words.
func (c *Controller) SelectedCount() int { return len(c.selection) }

// Cap returns the selection size limit: the number of target words.
func (c *Controller) Cap() int { return len(c.banks.Targets) }

// Submitted reports whether the current session has been scored.
func (c *Controller) Submitted() bool { return c.submitted }

// Result returns the score for the current session, or nil outside results.
func (c *Controller) Result() *model.ScoreResult { return c.result }

// Start moves intro -> study, loads the study countdown, and builds the
// session's shuffled grid. It is a no-op outside intro.
func (c *Controller) Start() bool {
	if c.phase != PhaseIntro {
		return false
	}
	c.phase = PhaseStudy
	c.remaining = c.cfg.StudySeconds
	c.timerGen++
	c.grid = shuffleGrid(c.banks.Targets, c.banks.Decoys, c.rnd)
	return true
}

// Tick consumes one countdown second. The decrement and any resulting phase
// transition happen together; callers never observe a zero timer in a stale
// phase. Ticks with a mismatched generation or outside a countdown phase are
// no-ops. It reports whether state changed.
func (c *Controller) Tick(gen int) bool {
	if gen != c.timerGen {
		return false
	}
	if c.phase != PhaseStudy && c.phase != PhaseDistract {
		return false
	}
	if c.remaining > 0 {
		c.remaining--
	}
	if c.remaining > 0 {
		return true
	}
	switch c.phase {
	case PhaseStudy:
		c.phase = PhaseDistract
		c.remaining = c.cfg.DistractSeconds
		c.timerGen++
	case PhaseDistract:
		c.phase = PhaseRecall
		c.timerGen++
	}
	return true
}

// Toggle flips selection membership for a word. Valid only during recall and
// before submission; adding beyond the cap is silently ignored. It reports
// whether the selection changed.
func (c *Controller) Toggle(text string) bool {
	if c.phase != PhaseRecall || c.submitted {
		return false
	}
	if _, ok := c.selection[text]; ok {
		delete(c.selection, text)
		return true
	}
	if len(c.selection) >= c.Cap() {
		return false
	}
	c.selection[text] = struct{}{}
	return true
}

// Submit scores the selection and moves recall -> results. An empty selection
// or a call outside recall is a no-op.
func (c *Controller) Submit() bool {
	if c.phase != PhaseRecall || c.submitted || len(c.selection) == 0 {
		return false
	}
	result := score.Score(c.banks.Targets, c.selection)
	c.result = &result
	c.submitted = true
	c.phase = PhaseResults
	c.timerGen++
	return true
}

// Reset returns to intro from any phase, clearing the selection, the score,
// and the memoized grid. The next Start reshuffles.
func (c *Controller) Reset() {
	c.phase = PhaseIntro
	c.remaining = 0
	c.timerGen++
	c.grid = nil
	c.selection = map[string]struct{}{}
	c.submitted = false
	c.result = nil
}
