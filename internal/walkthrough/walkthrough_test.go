package walkthrough

import (
	"testing"

	"github.com/uvmlab/uvmlab/internal/arch"
)

func testSteps() []Step {
	return []Step{
		{Index: 0, Title: "create", Component: arch.ComponentSequence},
		{Index: 1, Title: "arbitrate", Component: arch.ComponentSequencer},
		{Index: 2, Title: "drive", Component: arch.ComponentDriver},
		{Index: 3, Title: "observe", Component: arch.ComponentMonitor},
	}
}

func TestControllerStartsInactive(t *testing.T) {
	c := NewController(testSteps(), nil)

	if c.Active() {
		t.Fatalf("new controller should be inactive")
	}
	if c.Cursor() != -1 {
		t.Fatalf("expected cursor -1, got %d", c.Cursor())
	}
	if _, ok := c.Current(); ok {
		t.Fatalf("Current should report no step while inactive")
	}
}

func TestControllerClampsAtBounds(t *testing.T) {
	steps := testSteps()
	c := NewController(steps, nil)

	c.Start()
	for i := 0; i < len(steps)-1; i++ {
		c.Next()
	}
	if c.Cursor() != len(steps)-1 {
		t.Fatalf("expected cursor %d, got %d", len(steps)-1, c.Cursor())
	}

	c.Next()
	if c.Cursor() != len(steps)-1 {
		t.Fatalf("Next at upper bound moved cursor to %d", c.Cursor())
	}

	for i := 0; i < len(steps)+3; i++ {
		c.Prev()
	}
	if c.Cursor() != 0 {
		t.Fatalf("Prev at lower bound moved cursor to %d", c.Cursor())
	}
}

func TestControllerNextPrevIgnoredWhileInactive(t *testing.T) {
	c := NewController(testSteps(), nil)

	c.Next()
	c.Prev()
	if c.Cursor() != -1 {
		t.Fatalf("expected cursor to stay -1, got %d", c.Cursor())
	}
}

func TestControllerStopForgetsPosition(t *testing.T) {
	c := NewController(testSteps(), nil)

	c.Start()
	c.Next()
	c.Next()
	c.Stop()

	if c.Active() {
		t.Fatalf("controller active after Stop")
	}

	c.Start()
	if c.Cursor() != 0 {
		t.Fatalf("Start after Stop should return to step 0, got %d", c.Cursor())
	}
}

func TestControllerOwnsSelection(t *testing.T) {
	sel := arch.NewSelection(arch.ComponentSequence)
	c := NewController(testSteps(), sel)

	c.Start()
	c.Next()
	c.Next() // on step 2: driver

	if sel.Select(arch.ComponentScoreboard) {
		t.Fatalf("manual select accepted during walkthrough")
	}
	if got := sel.Active(); got != arch.ComponentDriver {
		t.Fatalf("expected driver active on step 2, got %q", got)
	}

	c.Stop()
	if !sel.Select(arch.ComponentScoreboard) {
		t.Fatalf("manual select rejected after Stop")
	}
}

func TestLoadBuiltinSteps(t *testing.T) {
	steps, err := LoadBuiltinSteps()
	if err != nil {
		t.Fatalf("LoadBuiltinSteps: %v", err)
	}
	if len(steps) != 7 {
		t.Fatalf("expected 7 builtin steps, got %d", len(steps))
	}
	for i, step := range steps {
		if step.Index != i {
			t.Fatalf("step %d has index %d", i, step.Index)
		}
		if !step.Component.Valid() {
			t.Fatalf("step %d has unknown component %q", i, step.Component)
		}
	}
}

func TestParseStepsRejectsBadScripts(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"empty", "[]"},
		{"gap", "- index: 1\n  title: t\n  component: driver\n"},
		{"unknown component", "- index: 0\n  title: t\n  component: testbench\n"},
		{"missing title", "- index: 0\n  component: driver\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseSteps([]byte(tc.yaml)); err == nil {
				t.Fatalf("expected error for %s script", tc.name)
			}
		})
	}
}
