package arch

import "sync"

// Selection is the single authoritative holder of the active component.
//
// Two event sources compete for it: manual diagram clicks and the scripted
// walkthrough. While a walkthrough runs it locks the selection and manual
// selects are ignored, so the highlighted component always matches the
// current walkthrough step.
type Selection struct {
	mu     sync.Mutex
	active Component
	locked bool
}

// NewSelection returns a selection with the given initial component.
func NewSelection(initial Component) *Selection {
	return &Selection{active: initial}
}

// Select applies a manual selection. It reports whether the selection was
// applied; it is ignored while locked or when the component is unknown.
func (s *Selection) Select(c Component) bool {
	if !c.Valid() {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locked {
		return false
	}
	s.active = c
	return true
}

// SetLocked sets the active component on behalf of the walkthrough and
// keeps the selection locked against manual selects.
func (s *Selection) SetLocked(c Component) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = c
	s.locked = true
}

// Unlock returns selection control to manual selects.
func (s *Selection) Unlock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.locked = false
}

// Active returns the currently highlighted component.
func (s *Selection) Active() Component {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Locked reports whether a walkthrough currently owns the selection.
func (s *Selection) Locked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locked
}
