package tui

import (
	"errors"
	"testing"

	"github.com/uvmlab/uvmlab/internal/arch"
	"github.com/uvmlab/uvmlab/internal/walkthrough"
)

var errTest = errors.New("stream broke")

func testModel(t *testing.T) *model {
	t.Helper()

	catalog, err := arch.LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	steps, err := walkthrough.LoadBuiltinSteps()
	if err != nil {
		t.Fatalf("LoadBuiltinSteps: %v", err)
	}

	m, err := newModel(Config{Catalog: catalog, Steps: steps})
	if err != nil {
		t.Fatalf("newModel: %v", err)
	}
	return m
}

func TestStreamChunksReachChatFromOtherViews(t *testing.T) {
	m := testModel(t)
	m.view = viewChat
	m.chat.streaming = true

	if _, cmd := m.Update(streamChunkMsg{chunk: "hello "}); cmd == nil {
		t.Fatalf("chunk on chat view did not re-issue the pump")
	}

	// Navigating away mid-reply must not starve the stream pump.
	m.view = viewDiagram
	_, cmd := m.Update(streamChunkMsg{chunk: "world"})
	if cmd == nil {
		t.Fatalf("chunk on diagram view did not re-issue the pump")
	}
	if m.chat.pending != "hello world" {
		t.Fatalf("expected pending reply %q, got %q", "hello world", m.chat.pending)
	}
}

func TestStreamDoneClearsStreamingFromOtherViews(t *testing.T) {
	m := testModel(t)
	m.view = viewChat
	m.chat.streaming = true
	m.Update(streamChunkMsg{chunk: "partial"})

	m.view = viewBuilder
	m.Update(streamDoneMsg{})

	if m.chat.streaming {
		t.Fatalf("streaming flag still set after completion on another view")
	}
	if m.chat.pending != "" {
		t.Fatalf("pending reply not cleared after completion")
	}
}

func TestStreamFailureSurfacesFromOtherViews(t *testing.T) {
	m := testModel(t)
	m.view = viewChat
	m.chat.streaming = true

	m.view = viewDiagram
	m.Update(streamFailedMsg{err: errTest})

	if m.chat.streaming {
		t.Fatalf("streaming flag still set after failure on another view")
	}
	if m.chat.notice == "" {
		t.Fatalf("failure produced no user-visible notice")
	}
}
