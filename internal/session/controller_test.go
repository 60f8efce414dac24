package session

import (
	"math/rand"
	"testing"

	"github.com/thtahamid/active-recall-test/internal/model"
	"github.com/thtahamid/active-recall-test/internal/words"
)

func newTestController(study, distract int) *Controller {
	cfg := model.Config{StudySeconds: study, DistractSeconds: distract}
	return New(cfg, words.Builtin(), rand.New(rand.NewSource(1)))
}

func advanceToRecall(t *testing.T, c *Controller) {
	t.Helper()
	if !c.Start() {
		t.Fatalf("start failed from intro")
	}
	for c.Phase() != PhaseRecall {
		if !c.Tick(c.TimerGen()) {
			t.Fatalf("tick made no progress in phase %s", c.Phase())
		}
	}
}

func TestPhaseWalk(t *testing.T) {
	c := newTestController(2, 3)
	if c.Phase() != PhaseIntro {
		t.Fatalf("expected intro, got %s", c.Phase())
	}
	if !c.Start() {
		t.Fatalf("start failed from intro")
	}
	if c.Phase() != PhaseStudy || c.Remaining() != 2 {
		t.Fatalf("expected study with 2s, got %s with %ds", c.Phase(), c.Remaining())
	}
	if c.Start() {
		t.Fatalf("start should be a no-op outside intro")
	}

	gen := c.TimerGen()
	c.Tick(gen)
	if c.Phase() != PhaseStudy || c.Remaining() != 1 {
		t.Fatalf("expected study with 1s, got %s with %ds", c.Phase(), c.Remaining())
	}
	c.Tick(gen)
	if c.Phase() != PhaseDistract || c.Remaining() != 3 {
		t.Fatalf("expected distract with 3s, got %s with %ds", c.Phase(), c.Remaining())
	}

	for i := 0; i < 3; i++ {
		c.Tick(c.TimerGen())
	}
	if c.Phase() != PhaseRecall {
		t.Fatalf("expected recall after distract countdown, got %s", c.Phase())
	}
}

func TestStaleTickIsNoOp(t *testing.T) {
	c := newTestController(1, 2)
	c.Start()
	staleGen := c.TimerGen()
	c.Tick(staleGen) // study -> distract, generation bumped
	if c.Phase() != PhaseDistract {
		t.Fatalf("expected distract, got %s", c.Phase())
	}
	remaining := c.Remaining()
	if c.Tick(staleGen) {
		t.Fatalf("stale-generation tick must be ignored")
	}
	if c.Remaining() != remaining {
		t.Fatalf("stale tick changed the countdown: %d -> %d", remaining, c.Remaining())
	}
}

func TestTickOutsideCountdownPhases(t *testing.T) {
	c := newTestController(1, 1)
	if c.Tick(c.TimerGen()) {
		t.Fatalf("tick in intro must be a no-op")
	}
	advanceToRecall(t, c)
	if c.Tick(c.TimerGen()) {
		t.Fatalf("tick in recall must be a no-op")
	}
}

func TestGridBuiltOnceAndClearedOnReset(t *testing.T) {
	c := newTestController(1, 1)
	if c.Grid() != nil {
		t.Fatalf("grid must not exist before start")
	}
	c.Start()
	grid := c.Grid()
	if len(grid) != len(words.Builtin().Targets)+len(words.Builtin().Decoys) {
		t.Fatalf("unexpected grid size %d", len(grid))
	}
	for c.Phase() != PhaseRecall {
		c.Tick(c.TimerGen())
	}
	again := c.Grid()
	for i := range grid {
		if grid[i] != again[i] {
			t.Fatalf("grid order changed mid-session at index %d", i)
		}
	}
	c.Reset()
	if c.Grid() != nil {
		t.Fatalf("grid must be discarded on reset")
	}
}

func TestToggleOnlyDuringRecall(t *testing.T) {
	c := newTestController(1, 1)
	if c.Toggle("apple") {
		t.Fatalf("toggle in intro must be a no-op")
	}
	c.Start()
	if c.Toggle("apple") {
		t.Fatalf("toggle in study must be a no-op")
	}
	for c.Phase() != PhaseRecall {
		c.Tick(c.TimerGen())
	}
	if !c.Toggle("apple") {
		t.Fatalf("toggle in recall should work")
	}
	if !c.Selected("apple") || c.SelectedCount() != 1 {
		t.Fatalf("selection not recorded")
	}
	if !c.Toggle("apple") {
		t.Fatalf("toggle off should work")
	}
	if c.Selected("apple") {
		t.Fatalf("toggle off did not remove selection")
	}
}

func TestSelectionCap(t *testing.T) {
	c := newTestController(1, 1)
	advanceToRecall(t, c)
	grid := c.Grid()
	limit := c.Cap()
	if limit != 15 {
		t.Fatalf("expected cap 15, got %d", limit)
	}
	for i := 0; i < limit; i++ {
		if !c.Toggle(grid[i].Text) {
			t.Fatalf("toggle %d rejected below cap", i)
		}
	}
	if c.Toggle(grid[limit].Text) {
		t.Fatalf("16th distinct selection must be rejected")
	}
	if c.SelectedCount() != limit {
		t.Fatalf("selection size %d, want %d", c.SelectedCount(), limit)
	}
	// Removal still works at the cap.
	if !c.Toggle(grid[0].Text) {
		t.Fatalf("toggle off at cap should work")
	}
	if c.SelectedCount() != limit-1 {
		t.Fatalf("selection size %d after removal, want %d", c.SelectedCount(), limit-1)
	}
}

func TestSubmitRequiresSelection(t *testing.T) {
	c := newTestController(1, 1)
	if c.Submit() {
		t.Fatalf("submit in intro must be a no-op")
	}
	advanceToRecall(t, c)
	if c.Submit() {
		t.Fatalf("submit with empty selection must be a no-op")
	}
	if c.Phase() != PhaseRecall {
		t.Fatalf("rejected submit changed phase to %s", c.Phase())
	}
	c.Toggle("apple")
	c.Toggle("luna")
	if !c.Submit() {
		t.Fatalf("submit with selection failed")
	}
	if c.Phase() != PhaseResults {
		t.Fatalf("expected results, got %s", c.Phase())
	}
	res := c.Result()
	if res == nil {
		t.Fatalf("expected score result after submit")
	}
	if res.TotalRecalled != 2 {
		t.Fatalf("expected 2 recalled, got %d", res.TotalRecalled)
	}
	if c.Toggle("river") {
		t.Fatalf("toggle after submission must be a no-op")
	}
	if c.Submit() {
		t.Fatalf("double submit must be a no-op")
	}
}

func TestResetFromAnyPhase(t *testing.T) {
	phases := []func(c *Controller){
		func(c *Controller) {},
		func(c *Controller) { c.Start() },
		func(c *Controller) {
			c.Start()
			for c.Phase() != PhaseDistract {
				c.Tick(c.TimerGen())
			}
		},
		func(c *Controller) {
			c.Start()
			for c.Phase() != PhaseRecall {
				c.Tick(c.TimerGen())
			}
			c.Toggle("apple")
		},
		func(c *Controller) {
			c.Start()
			for c.Phase() != PhaseRecall {
				c.Tick(c.TimerGen())
			}
			c.Toggle("apple")
			c.Submit()
		},
	}
	for i, setup := range phases {
		c := newTestController(1, 1)
		setup(c)
		c.Reset()
		if c.Phase() != PhaseIntro {
			t.Fatalf("case %d: expected intro after reset, got %s", i, c.Phase())
		}
		if c.SelectedCount() != 0 || c.Result() != nil || c.Submitted() {
			t.Fatalf("case %d: reset left state behind", i)
		}
	}
}
