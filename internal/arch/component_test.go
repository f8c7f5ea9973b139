package arch

import "testing"

func TestParseComponent(t *testing.T) {
	c, err := ParseComponent("  Driver ")
	if err != nil {
		t.Fatalf("ParseComponent: %v", err)
	}
	if c != ComponentDriver {
		t.Fatalf("expected driver, got %q", c)
	}

	if _, err := ParseComponent("testbench"); err == nil {
		t.Fatalf("expected error for unknown component")
	}
}

func TestComponentsOrderAndValidity(t *testing.T) {
	components := Components()
	if len(components) != 7 {
		t.Fatalf("expected 7 components, got %d", len(components))
	}
	if components[0] != ComponentSequence || components[len(components)-1] != ComponentScoreboard {
		t.Fatalf("unexpected diagram order: %v", components)
	}

	for _, c := range components {
		if !c.Valid() {
			t.Fatalf("component %q reported invalid", c)
		}
	}

	if Component("uvm_env").Valid() {
		t.Fatalf("unknown component reported valid")
	}
}
