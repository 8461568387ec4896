package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func TestModelCompletesOnActionMsg(t *testing.T) {
	m := model{title: "migrate up"}
	if !strings.Contains(m.View(), "Running...") {
		t.Fatalf("expected running view, got %q", m.View())
	}

	next, cmd := m.Update(actionMsg{details: []string{"schema migration applied"}, elapsed: 12 * time.Millisecond})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	done := next.(model)
	view := done.View()
	if !done.done || !strings.Contains(view, "OK") || !strings.Contains(view, "- schema migration applied") {
		t.Fatalf("unexpected done view: %q", view)
	}
}

func TestModelShowsFailure(t *testing.T) {
	next, _ := model{title: "loadgen run"}.Update(actionMsg{err: errors.New("unknown profile: auth")})
	view := next.(model).View()
	if !strings.Contains(view, "FAILED") || !strings.Contains(view, "unknown profile: auth") {
		t.Fatalf("unexpected failure view: %q", view)
	}
}

func TestModelCtrlCCancels(t *testing.T) {
	next, cmd := model{title: "loadgen run"}.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !errors.Is(next.(model).err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", next.(model).err)
	}
}

func TestInitRunsAction(t *testing.T) {
	m := model{action: func(context.Context) ([]string, error) { return []string{"done"}, nil }}
	msg := m.Init()()
	am, ok := msg.(actionMsg)
	if !ok || len(am.details) != 1 || am.details[0] != "done" {
		t.Fatalf("unexpected init msg: %#v", msg)
	}
}
