package registry

import (
	"testing"

	"github.com/vovakirdan/tigrao/internal/core"
)

type stubGame struct {
	id    string
	state core.GameState
}

func (g *stubGame) ID() string                   { return g.id }
func (g *stubGame) Title() string                { return "Stub " + g.id }
func (g *stubGame) Description() string          { return "3x3 board" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(dst *core.Screen)      {}
func (g *stubGame) State() core.GameState        { return g.state }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	const id = "stub_registry_test"
	Register(id, func() Game { return &stubGame{id: id} })
	defer unregister(id)

	if !Exists(id) {
		t.Fatalf("Exists(%q) = false after Register", id)
	}

	info, ok := Info(id)
	if !ok {
		t.Fatalf("Info(%q) not found", id)
	}
	if info.Title != "Stub "+id || info.Description != "3x3 board" {
		t.Errorf("Info() = %+v", info)
	}

	g, err := Create(id)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != id {
		t.Errorf("ID() = %q, want %q", g.ID(), id)
	}

	found := false
	for _, gi := range List() {
		if gi.ID == id {
			found = true
		}
	}
	if !found {
		t.Error("List() does not include the registered variant")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no_such_game"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	const id = "stub_duplicate_test"
	Register(id, func() Game { return &stubGame{id: id} })
	defer unregister(id)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register(id, func() Game { return &stubGame{id: id} })
}

func TestListSorted(t *testing.T) {
	for _, id := range []string{"zz_stub", "aa_stub"} {
		Register(id, func() Game { return &stubGame{id: id} })
		defer unregister(id)
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
