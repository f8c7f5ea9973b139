package components

import (
	"strings"
	"testing"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/tui/styles"
	"github.com/uvmlab/uvmlab/internal/tutor"
	"github.com/uvmlab/uvmlab/internal/walkthrough"
)

func TestRenderDiagramShowsAllComponents(t *testing.T) {
	catalog, err := arch.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	out := RenderDiagram(styles.DefaultStyles(), catalog, arch.ComponentDriver, false)

	for _, c := range arch.Components() {
		info, ok := catalog.Describe(c)
		if !ok {
			t.Fatalf("catalog missing %s", c)
		}
		if !strings.Contains(out, info.Label) {
			t.Fatalf("diagram missing %q:\n%s", info.Label, out)
		}
	}
}

func TestRenderDiagramWithoutCatalogFallsBackToNames(t *testing.T) {
	out := RenderDiagram(styles.DefaultStyles(), nil, arch.ComponentDUT, true)

	if !strings.Contains(out, string(arch.ComponentScoreboard)) {
		t.Fatalf("diagram missing raw component name:\n%s", out)
	}
}

func TestRenderStepCard(t *testing.T) {
	step := walkthrough.Step{
		Index:       2,
		Title:       "Driver drives the pins",
		Component:   arch.ComponentDriver,
		Description: "The driver converts the transaction into pin wiggles.",
		Code:        "seq_item_port.get_next_item(req);\n",
	}

	out := RenderStepCard(styles.DefaultStyles(), step, 7, 60)

	for _, want := range []string{"Step 3/7", "Driver drives the pins", "component: driver", "get_next_item"} {
		if !strings.Contains(out, want) {
			t.Fatalf("step card missing %q:\n%s", want, out)
		}
	}
}

func TestRenderComponentCardOmitsEmptyCodeBlock(t *testing.T) {
	out := RenderComponentCard(styles.DefaultStyles(), "Monitor", "Watches the bus.", "", 60)

	if !strings.Contains(out, "Monitor") || !strings.Contains(out, "Watches the bus.") {
		t.Fatalf("component card missing content:\n%s", out)
	}
}

func TestRenderTranscriptEmpty(t *testing.T) {
	out := RenderTranscript(styles.DefaultStyles(), nil, "", 60)
	if !strings.Contains(out, "Ask the tutor") {
		t.Fatalf("empty transcript missing prompt:\n%s", out)
	}
}

func TestRenderTranscriptSplitsCodeFromProse(t *testing.T) {
	messages := []tutor.Message{
		{Role: tutor.RoleUser, Content: "show me a wait"},
		{Role: tutor.RoleAssistant, Content: "Use a delay:\n```sv\n#10;\n```"},
	}

	out := RenderTranscript(styles.DefaultStyles(), messages, "", 60)

	for _, want := range []string{"you:", "show me a wait", "tutor:", "Use a delay:", "#10;"} {
		if !strings.Contains(out, want) {
			t.Fatalf("transcript missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "```") {
		t.Fatalf("transcript leaked fence markers:\n%s", out)
	}
}

func TestRenderTranscriptShowsPendingReply(t *testing.T) {
	out := RenderTranscript(styles.DefaultStyles(), nil, "thinking about seq", 60)
	if !strings.Contains(out, "thinking about seq") {
		t.Fatalf("pending reply not rendered:\n%s", out)
	}
}
