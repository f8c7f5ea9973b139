// Package walkthrough provides the scripted transaction-lifecycle walkthrough.
package walkthrough

import (
	"github.com/uvmlab/uvmlab/internal/arch"
)

// Step is one stop in the scripted walkthrough.
type Step struct {
	Index       int            `yaml:"index"`
	Title       string         `yaml:"title"`
	Component   arch.Component `yaml:"component"`
	Description string         `yaml:"description"`
	Code        string         `yaml:"code,omitempty"`
}

// inactive marks a controller with no walkthrough running.
const inactive = -1

// Controller steps a bounded cursor over a fixed step list. While a
// walkthrough is running it owns the diagram selection: every transition
// re-points the selection at the current step's component, and Stop hands
// control back to manual selects.
//
// All transitions are total: out-of-range Next/Prev degrade to no-ops.
// The controller is driven from the TUI update loop and is not safe for
// concurrent use.
type Controller struct {
	steps     []Step
	selection *arch.Selection
	cursor    int
}

// NewController returns an inactive controller over the given steps.
// The step list must be non-empty and index-contiguous (see Load).
func NewController(steps []Step, selection *arch.Selection) *Controller {
	return &Controller{
		steps:     steps,
		selection: selection,
		cursor:    inactive,
	}
}

// Start begins the walkthrough at step 0, regardless of prior state.
func (c *Controller) Start() {
	c.cursor = 0
	c.syncSelection()
}

// Next advances one step, clamping at the last step.
func (c *Controller) Next() {
	if c.cursor == inactive || c.cursor >= len(c.steps)-1 {
		return
	}
	c.cursor++
	c.syncSelection()
}

// Prev steps back one step, clamping at step 0.
func (c *Controller) Prev() {
	if c.cursor <= 0 {
		return
	}
	c.cursor--
	c.syncSelection()
}

// Stop ends the walkthrough and releases the diagram selection.
func (c *Controller) Stop() {
	c.cursor = inactive
	if c.selection != nil {
		c.selection.Unlock()
	}
}

// Active reports whether a walkthrough is running.
func (c *Controller) Active() bool {
	return c.cursor != inactive
}

// Current returns the step at the cursor, or ok=false when inactive.
func (c *Controller) Current() (Step, bool) {
	if c.cursor == inactive {
		return Step{}, false
	}
	return c.steps[c.cursor], true
}

// Cursor returns the raw cursor value, -1 when inactive.
func (c *Controller) Cursor() int {
	return c.cursor
}

// Len returns the number of steps in the script.
func (c *Controller) Len() int {
	return len(c.steps)
}

func (c *Controller) syncSelection() {
	if c.selection != nil {
		c.selection.SetLocked(c.steps[c.cursor].Component)
	}
}
