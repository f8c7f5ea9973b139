// Package arch describes the UVM testbench architecture presented by uvmlab.
package arch

import (
	"fmt"
	"strings"
)

// Component identifies one block of the testbench architecture.
type Component string

const (
	ComponentSequence   Component = "sequence"
	ComponentSequencer  Component = "sequencer"
	ComponentDriver     Component = "driver"
	ComponentInterface  Component = "interface"
	ComponentDUT        Component = "dut"
	ComponentMonitor    Component = "monitor"
	ComponentScoreboard Component = "scoreboard"
)

// Components returns all components in diagram order.
func Components() []Component {
	return []Component{
		ComponentSequence,
		ComponentSequencer,
		ComponentDriver,
		ComponentInterface,
		ComponentDUT,
		ComponentMonitor,
		ComponentScoreboard,
	}
}

// Valid reports whether c names a known component.
func (c Component) Valid() bool {
	switch c {
	case ComponentSequence, ComponentSequencer, ComponentDriver,
		ComponentInterface, ComponentDUT, ComponentMonitor, ComponentScoreboard:
		return true
	default:
		return false
	}
}

// ParseComponent resolves a user-supplied name to a Component.
func ParseComponent(name string) (Component, error) {
	c := Component(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown component %q", name)
	}
	return c, nil
}
