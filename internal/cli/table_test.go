package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTableAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"NAME", "KIND"}, [][]string{
		{"sequencer", "flow control"},
		{"dut", "design under test"},
	})
	if err != nil {
		t.Fatalf("writeTable: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d:\n%s", len(lines), buf.String())
	}

	headerCol := strings.Index(lines[0], "KIND")
	for i, line := range lines[1:] {
		col := strings.Index(line, strings.Fields(line)[1])
		if col != headerCol {
			t.Fatalf("row %d second column at %d, header at %d:\n%s", i, col, headerCol, buf.String())
		}
	}
}

func TestWriteTableWithoutHeaders(t *testing.T) {
	var buf bytes.Buffer
	if err := writeTable(&buf, nil, [][]string{{"only", "row"}}); err != nil {
		t.Fatalf("writeTable: %v", err)
	}
	if got := strings.Count(buf.String(), "\n"); got != 1 {
		t.Fatalf("expected a single line, got %d", got)
	}
}
