package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-crosser/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		isQuit bool
	}{
		{"w", core.ActionUp, false},
		{"k", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"l", core.ActionRight, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"esc", core.ActionQuit, true},
		// Keys with no binding produce no action.
		{"enter", core.ActionNone, false},
		{"b", core.ActionNone, false},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, isQuit := km.MapKey(keyMsg(tt.key))
		if action != tt.action {
			t.Errorf("key %q: expected action %v, got %v", tt.key, tt.action, action)
		}
		if isQuit != tt.isQuit {
			t.Errorf("key %q: expected isQuit %v, got %v", tt.key, tt.isQuit, isQuit)
		}
	}
}

func TestMapKeyArrows(t *testing.T) {
	km := NewKeyMapper()

	arrows := []struct {
		msg    tea.KeyMsg
		action core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
	}

	for _, tt := range arrows {
		action, isQuit := km.MapKey(tt.msg)
		if action != tt.action {
			t.Errorf("key %q: expected action %v, got %v", tt.msg.String(), tt.action, action)
		}
		if isQuit {
			t.Errorf("key %q: arrows must not quit", tt.msg.String())
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("w"), &frame); quit {
		t.Error("move key must not quit")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("expected up action in frame")
	}

	// Unbound keys leave the frame untouched.
	if quit := km.MapKeyToFrame(keyMsg("enter"), &frame); quit {
		t.Error("unbound key must not quit")
	}
	if len(frame.Actions) != 1 {
		t.Errorf("expected 1 action in frame, got %d", len(frame.Actions))
	}
}
