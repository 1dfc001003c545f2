package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/island-bounce/internal/games/island"
)

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(80, 24)
	if len(m.items) < 2 {
		t.Fatalf("menu has %d items, expected both variants", len(m.items))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	mm := next.(MenuModel)
	if mm.Selected() != m.items[1].ID {
		t.Errorf("Selected() = %q, expected %q", mm.Selected(), m.items[1].ID)
	}
	if cmd == nil {
		t.Error("select should quit the menu")
	}
}

func TestMenuCursorBounds(t *testing.T) {
	m := NewMenuModel(80, 24)

	var next tea.Model = m
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyUp})
	if c := next.(MenuModel).cursor; c != 0 {
		t.Errorf("cursor = %d after up at top, expected 0", c)
	}

	for range len(m.items) + 3 {
		next, _ = next.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if c := next.(MenuModel).cursor; c != len(m.items)-1 {
		t.Errorf("cursor = %d after many downs, expected %d", c, len(m.items)-1)
	}
}

func TestMenuQuit(t *testing.T) {
	next, _ := NewMenuModel(80, 24).Update(runeKey('q'))

	mm := next.(MenuModel)
	if mm.Selected() != "" {
		t.Errorf("Selected() = %q after quit, expected empty", mm.Selected())
	}
	if mm.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}
