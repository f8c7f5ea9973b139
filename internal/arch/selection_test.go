package arch

import "testing"

func TestSelectionManualSelect(t *testing.T) {
	sel := NewSelection(ComponentSequence)

	if !sel.Select(ComponentMonitor) {
		t.Fatalf("manual select rejected while unlocked")
	}
	if got := sel.Active(); got != ComponentMonitor {
		t.Fatalf("expected monitor, got %q", got)
	}

	if sel.Select(Component("bogus")) {
		t.Fatalf("unknown component accepted")
	}
}

func TestSelectionLockedRejectsManualSelect(t *testing.T) {
	sel := NewSelection(ComponentSequence)
	sel.SetLocked(ComponentDriver)

	if sel.Select(ComponentScoreboard) {
		t.Fatalf("manual select accepted while locked")
	}
	if got := sel.Active(); got != ComponentDriver {
		t.Fatalf("expected driver to stay active, got %q", got)
	}
	if !sel.Locked() {
		t.Fatalf("expected selection to report locked")
	}

	sel.Unlock()
	if !sel.Select(ComponentScoreboard) {
		t.Fatalf("manual select rejected after unlock")
	}
	if got := sel.Active(); got != ComponentScoreboard {
		t.Fatalf("expected scoreboard, got %q", got)
	}
}
