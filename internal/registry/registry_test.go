package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/island-bounce/internal/core"
)

type fakeGame struct {
	id    string
	title string
}

func (g *fakeGame) ID() string                           { return g.id }
func (g *fakeGame) Title() string                        { return g.title }
func (g *fakeGame) Reset(core.RuntimeConfig)             {}
func (g *fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *fakeGame) Render(*core.Screen)                  {}
func (g *fakeGame) State() core.GameState                { return core.GameState{} }

func factory(id, title string) Factory {
	return func() Game { return &fakeGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test_zeta", factory("test_zeta", "Zeta"))
	Register("test_alpha", factory("test_alpha", "Alpha"))

	if !Exists("test_alpha") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("test_zeta")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Title() != "Zeta" {
		t.Errorf("Title() = %q, expected Zeta", g.Title())
	}

	// Each call returns a fresh instance
	g2, _ := Create("test_zeta")
	if g == g2 {
		t.Error("Create() should return a new instance each time")
	}
}

func TestListSorted(t *testing.T) {
	Register("test_list_b", factory("test_list_b", "B"))
	Register("test_list_a", factory("test_list_a", "A"))

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Fatalf("List() not sorted: %v", games)
		}
	}

	found := false
	for _, g := range games {
		if g.ID == "test_list_a" && g.Title == "A" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include registered game with its title")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does_not_exist")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, expected ErrUnknownGame", err)
	}
	if Exists("does_not_exist") {
		t.Error("Exists() should be false for unknown game")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test_dup", factory("test_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test_dup", factory("test_dup", "Dup"))
}
