package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"jskw/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("scan", []string{"a.js", "b.js"}, events).(*progressModel)

	steps := []driver.Event{
		{File: "a.js", Stage: driver.StageScan, Status: driver.StatusWorking},
		{File: "a.js", Stage: driver.StageScan, Status: driver.StatusDone},
		{File: "b.js", Stage: driver.StageScan, Status: driver.StatusCached},
		{File: "b.js", Stage: driver.StageScan, Status: driver.StatusDone}, // already settled
		{File: "ghost.js", Stage: driver.StageScan, Status: driver.StatusDone},
	}
	for _, ev := range steps {
		m.Update(eventMsg(ev))
	}
	if m.settled != 2 {
		t.Fatalf("settled = %d", m.settled)
	}
	if m.items[1].status != driver.StatusCached {
		t.Fatalf("b.js status = %s", m.items[1].status)
	}

	_, cmd := m.Update(doneMsg{})
	if !m.done || cmd == nil {
		t.Fatal("done message must quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
	view := m.View()
	if !strings.Contains(view, "done: scan (2/2)") || !strings.Contains(view, "cached") {
		t.Fatalf("view:\n%s", view)
	}
}

func TestVisibleItemsPrefersWorking(t *testing.T) {
	items := make([]fileItem, maxRows+5)
	items[maxRows+3].status = driver.StatusWorking
	got := visibleItems(items)
	if len(got) != maxRows || got[0].status != driver.StatusWorking {
		t.Fatalf("visible = %d, first status %s", len(got), got[0].status)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("src/very/long/path.js", 10); got != "src/ver..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("a.js", 10); got != "a.js" {
		t.Fatalf("truncate short = %q", got)
	}
}
