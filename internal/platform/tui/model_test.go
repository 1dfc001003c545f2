package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/island-bounce/internal/config"
	"github.com/vovakirdan/island-bounce/internal/core"
	"github.com/vovakirdan/island-bounce/internal/games/island"
)

// newTestModel returns a started model on an 80x20 arena (one row for help).
func newTestModel(t *testing.T) (Model, *island.Game) {
	t.Helper()
	game := island.NewWithConfig(island.Standard, config.DefaultIslandConfig())
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 21, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return m, game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func TestModelInitSizesArena(t *testing.T) {
	_, game := newTestModel(t)

	p := game.Params()
	if p.ArenaW != 640 || p.ArenaH != 320 {
		t.Errorf("arena = %vx%v, expected 640x320", p.ArenaW, p.ArenaH)
	}
}

func TestModelKeyboardMovesPaddleOnTick(t *testing.T) {
	m, game := newTestModel(t)
	start := game.Sim().Paddle.X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if game.Sim().Paddle.X != start {
		t.Fatal("paddle moved before the tick")
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := game.Sim().Paddle.X; got != start-40 {
		t.Errorf("paddle x = %v, expected %v", got, start-40)
	}

	// Input is consumed by the tick
	_, _ = update(t, m, TickMsg(time.Now()))
	if got := game.Sim().Paddle.X; got != start-40 {
		t.Errorf("paddle x after second tick = %v, expected %v", got, start-40)
	}
}

func TestModelMouse(t *testing.T) {
	tests := []struct {
		name  string
		msg   tea.MouseMsg
		moved bool
	}{
		{"press", tea.MouseMsg{X: 40, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}, true},
		{"drag", tea.MouseMsg{X: 40, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion}, true},
		{"release", tea.MouseMsg{X: 40, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease}, false},
		{"right button", tea.MouseMsg{X: 40, Button: tea.MouseButtonRight, Action: tea.MouseActionPress}, false},
		{"hover", tea.MouseMsg{X: 40, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, game := newTestModel(t)
			start := game.Sim().Paddle.X

			update(t, m, tc.msg)

			got := game.Sim().Paddle.X
			if tc.moved && got != 164 {
				t.Errorf("paddle x = %v, expected 164", got)
			}
			if !tc.moved && got != start {
				t.Errorf("paddle x = %v, expected unchanged %v", got, start)
			}
		})
	}
}

func TestModelMouseIgnoredWhilePaused(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg(time.Now()))
	if !game.State().Paused {
		t.Fatal("p should pause the game")
	}

	start := game.Sim().Paddle.X
	update(t, m, tea.MouseMsg{X: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	if got := game.Sim().Paddle.X; got != start {
		t.Errorf("paddle x = %v while paused, expected unchanged %v", got, start)
	}
}

func TestModelResize(t *testing.T) {
	t.Run("before first tick", func(t *testing.T) {
		m, game := newTestModel(t)
		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

		p := game.Params()
		if p.ArenaW != 800 || p.ArenaH != 480 {
			t.Errorf("arena = %vx%v, expected 800x480", p.ArenaW, p.ArenaH)
		}
	})

	t.Run("after first tick", func(t *testing.T) {
		m, game := newTestModel(t)
		m, _ = update(t, m, TickMsg(time.Now()))
		m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 31})

		p := game.Params()
		if p.ArenaW != 640 || p.ArenaH != 320 {
			t.Errorf("arena = %vx%v, expected fixed 640x320", p.ArenaW, p.ArenaH)
		}
		if m.screen.Width() != 100 || m.screen.Height() != 30 {
			t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
		}
	})
}

func TestModelLogsInput(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	game := island.NewWithConfig(island.Standard, config.DefaultIslandConfig())
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 21, TickRate: 60, Seed: 1}, logger)
	m.Init()

	update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if !strings.Contains(buf.String(), "action=Left") {
		t.Errorf("expected input to be logged, got %q", buf.String())
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestModelHelpToggle(t *testing.T) {
	m, _ := newTestModel(t)
	if !m.showHelp {
		t.Fatal("help should be shown by default")
	}

	m, _ = update(t, m, runeKey('?'))
	if m.showHelp {
		t.Error("? should hide help")
	}
	m, _ = update(t, m, runeKey('?'))
	if !m.showHelp {
		t.Error("? should show help again")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)

	view := m.View()
	if !strings.Contains(view, "Score: 0") {
		t.Error("view should contain the score")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help line")
	}
}

func TestModelAlpha(t *testing.T) {
	m, _ := newTestModel(t)
	if got := m.alpha(time.Now()); got != 1 {
		t.Errorf("alpha before first tick = %v, expected 1", got)
	}

	now := time.Now()
	m.lastTick = now
	interval := tickInterval(m.config.TickRate)
	if got := m.alpha(now.Add(interval / 2)); got < 0.49 || got > 0.51 {
		t.Errorf("alpha at half a tick = %v, expected 0.5", got)
	}
}
