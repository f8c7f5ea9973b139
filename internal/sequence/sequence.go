// Package sequence provides the transaction sequence builder and its
// SystemVerilog rendering.
package sequence

import (
	"github.com/google/uuid"
)

// StepKind defines the kind of transaction step.
type StepKind string

const (
	StepKindRead  StepKind = "read"
	StepKindWrite StepKind = "write"
	StepKindIdle  StepKind = "idle"
)

// Valid reports whether k names a known step kind.
func (k StepKind) Valid() bool {
	switch k {
	case StepKindRead, StepKindWrite, StepKindIdle:
		return true
	default:
		return false
	}
}

// TransactionStep is one user-authored row in the sequence builder.
type TransactionStep struct {
	// ID uniquely identifies the step for removal.
	ID string `yaml:"-"`

	// Kind selects read, write, or idle.
	Kind StepKind `yaml:"kind"`

	// Addr is the address literal, passed through verbatim. Unused for idle.
	Addr string `yaml:"addr,omitempty"`

	// Data is the data literal, passed through verbatim. Used only for writes.
	Data string `yaml:"data,omitempty"`

	// Delay is the wait after the operation in time units; for idle steps it
	// is the wait itself.
	Delay int `yaml:"delay,omitempty"`
}

// Builder maintains the ordered, mutable step list behind the compiled
// output. Insertion order is render order.
type Builder struct {
	steps []TransactionStep
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends a step and returns it with its assigned ID.
func (b *Builder) Add(kind StepKind, addr, data string, delay int) TransactionStep {
	step := TransactionStep{
		ID:    uuid.NewString(),
		Kind:  kind,
		Addr:  addr,
		Data:  data,
		Delay: delay,
	}
	b.steps = append(b.steps, step)
	return step
}

// Remove deletes the step with the given ID. Removing an absent ID is a no-op.
func (b *Builder) Remove(id string) {
	for i, step := range b.steps {
		if step.ID == id {
			b.steps = append(b.steps[:i], b.steps[i+1:]...)
			return
		}
	}
}

// Clear empties the step list.
func (b *Builder) Clear() {
	b.steps = nil
}

// Steps returns a copy of the current step list in insertion order.
func (b *Builder) Steps() []TransactionStep {
	out := make([]TransactionStep, len(b.steps))
	copy(out, b.steps)
	return out
}

// Len returns the number of steps.
func (b *Builder) Len() int {
	return len(b.steps)
}

// Compile renders the current step list (see Compile).
func (b *Builder) Compile() string {
	return Compile(b.steps)
}
