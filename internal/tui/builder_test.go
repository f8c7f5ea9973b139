package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/uvmlab/uvmlab/internal/sequence"
	"github.com/uvmlab/uvmlab/internal/tui/styles"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestCoerceDelay(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"5", 5},
		{" 12 ", 12},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-3", 0},
		{"1.5", 0},
	}

	for _, tc := range cases {
		if got := coerceDelay(tc.in); got != tc.want {
			t.Fatalf("coerceDelay(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestBuilderAddStepRequiresAddr(t *testing.T) {
	b := newBuilderModel(styles.DefaultStyles())
	b.kindIdx = 0 // read

	b.addStep()

	if b.steps.Len() != 0 {
		t.Fatalf("step added without addr")
	}
	if b.notice == "" {
		t.Fatalf("expected a notice explaining the missing addr")
	}
}

func TestBuilderAddStepCoercesDelayAndDropsDataForRead(t *testing.T) {
	b := newBuilderModel(styles.DefaultStyles())
	b.kindIdx = 0 // read
	b.addr.SetValue("0x2000")
	b.data.SetValue("0xEE")
	b.delay.SetValue("oops")

	b.addStep()

	steps := b.steps.Steps()
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	if steps[0].Kind != sequence.StepKindRead || steps[0].Data != "" || steps[0].Delay != 0 {
		t.Fatalf("unexpected step: %+v", steps[0])
	}
}

func TestBuilderAddIdleClearsAddr(t *testing.T) {
	b := newBuilderModel(styles.DefaultStyles())
	b.kindIdx = 2 // idle
	b.addr.SetValue("0x10")
	b.delay.SetValue("7")

	b.addStep()

	steps := b.steps.Steps()
	if len(steps) != 1 || steps[0].Addr != "" || steps[0].Delay != 7 {
		t.Fatalf("unexpected idle step: %+v", steps)
	}
}

func TestBuilderListRemoveAndClear(t *testing.T) {
	b := newBuilderModel(styles.DefaultStyles())
	b.steps.Add(sequence.StepKindWrite, "0x10", "0x1", 0)
	b.steps.Add(sequence.StepKindRead, "0x20", "", 0)
	b.recompile()

	b.update(tea.KeyMsg{Type: tea.KeyEsc})
	if b.editing {
		t.Fatalf("esc did not leave the form")
	}

	b.update(runeKey('d'))
	steps := b.steps.Steps()
	if len(steps) != 1 || steps[0].Kind != sequence.StepKindRead {
		t.Fatalf("remove deleted the wrong step: %+v", steps)
	}

	b.update(runeKey('c'))
	if b.steps.Len() != 0 {
		t.Fatalf("clear left steps behind")
	}
	if !strings.Contains(b.compiled, "// add transaction steps") {
		t.Fatalf("compiled output not refreshed after clear:\n%s", b.compiled)
	}
}

func TestBuilderRecompilesAfterAdd(t *testing.T) {
	b := newBuilderModel(styles.DefaultStyles())
	b.kindIdx = 1 // write
	b.addr.SetValue("0x1000")
	b.data.SetValue("0xFF")

	b.update(tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(b.compiled, "addr == 0x1000;") {
		t.Fatalf("compiled output missing new step:\n%s", b.compiled)
	}
}

func TestBuilderViewLinesShowTableAndCode(t *testing.T) {
	b := newBuilderModel(styles.DefaultStyles())
	b.steps.Add(sequence.StepKindWrite, "0x1000", "0xFF", 0)
	b.recompile()

	view := strings.Join(b.viewLines(80), "\n")

	for _, want := range []string{"Sequence builder", "KIND", "0x1000", "Generated sequence:", "BUS_WRITE"} {
		if !strings.Contains(view, want) {
			t.Fatalf("builder view missing %q:\n%s", want, view)
		}
	}
}

func TestBuilderKindCycling(t *testing.T) {
	b := newBuilderModel(styles.DefaultStyles())
	if b.focus != fieldKind {
		t.Fatalf("form should start on the kind field")
	}

	b.update(runeKey('l'))
	if builderKinds[b.kindIdx] != sequence.StepKindWrite {
		t.Fatalf("expected write after one cycle, got %s", builderKinds[b.kindIdx])
	}

	b.update(runeKey('h'))
	b.update(runeKey('h'))
	if builderKinds[b.kindIdx] != sequence.StepKindIdle {
		t.Fatalf("expected idle after cycling back, got %s", builderKinds[b.kindIdx])
	}
}
