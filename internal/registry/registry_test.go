package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/termtris/internal/core"
)

type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func stub(id, title string) Factory {
	return func() Game { return &stubGame{id: id, title: title} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", stub("zz_stub_b", "Stub B"))
	Register("zz_stub_a", stub("zz_stub_a", "Stub A"))

	if !Exists("zz_stub_a") {
		t.Fatal("Exists() = false for registered game")
	}
	if Exists("zz_missing") {
		t.Error("Exists() = true for unknown game")
	}

	g, err := Create("zz_stub_a")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.Title() != "Stub A" {
		t.Errorf("Title() = %q, expected %q", g.Title(), "Stub A")
	}

	if _, err := Create("zz_missing"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("Create() error = %v, want ErrUnknownMode", err)
	}

	// List is sorted by ID
	var ids []string
	for _, info := range List() {
		if info.ID == "zz_stub_a" || info.ID == "zz_stub_b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "zz_stub_a" || ids[1] != "zz_stub_b" {
		t.Errorf("List() order = %v, expected [zz_stub_a zz_stub_b]", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", stub("zz_dup", "Dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", stub("zz_dup", "Dup"))
}

type describedGame struct {
	stubGame
}

func (g *describedGame) Description() string { return "has a summary" }

func TestListIncludesDescription(t *testing.T) {
	Register("zz_described", func() Game { return &describedGame{stubGame{id: "zz_described", title: "Described"}} })

	for _, info := range List() {
		switch info.ID {
		case "zz_described":
			if info.Description != "has a summary" {
				t.Errorf("Description = %q", info.Description)
			}
		case "zz_stub_a":
			if info.Description != "" {
				t.Errorf("stub without Describer got %q", info.Description)
			}
		}
	}
}
