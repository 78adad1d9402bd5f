package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/registry"
)

func init() {
	registry.Register("zz_menu_a", func() registry.Game { return &fakeGame{} })
	registry.Register("zz_menu_b", func() registry.Game { return &fakeGame{} })
}

func press(m MenuModel, msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(MenuModel), cmd
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	if len(m.modes) != 2 {
		t.Fatalf("menu lists %d modes, expected 2", len(m.modes))
	}

	tests := []struct {
		name   string
		key    tea.KeyMsg
		cursor int
	}{
		{"down", tea.KeyMsg{Type: tea.KeyDown}, 1},
		{"down wraps to top", tea.KeyMsg{Type: tea.KeyDown}, 0},
		{"up wraps to bottom", tea.KeyMsg{Type: tea.KeyUp}, 1},
		{"k moves up", runeKey('k'), 0},
		{"j moves down", runeKey('j'), 1},
	}

	for _, tt := range tests {
		m, _ = press(m, tt.key)
		if m.cursor != tt.cursor {
			t.Errorf("%s: cursor = %d, expected %d", tt.name, m.cursor, tt.cursor)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 60, ScreenH: 20})
	if _, ok := m.Selected(); ok {
		t.Fatal("nothing should be selected yet")
	}

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should quit the menu program")
	}
	id, ok := m.Selected()
	if !ok || id != "zz_menu_b" {
		t.Errorf("Selected() = %q, %v; expected zz_menu_b", id, ok)
	}
	if m.IsQuitting() {
		t.Error("selecting is not quitting")
	}
}

func TestMenuViewShowsModes(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{})
	view := m.View()
	for _, want := range []string{"T E R M T R I S", "Fake"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestMenuQuitAndResize(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 30})

	next, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 30})
	m = next.(MenuModel)
	cfg := m.Config()
	if cfg.ScreenW != 90 || cfg.ScreenH != 30 || cfg.TickRate != 30 {
		t.Errorf("Config() = %+v, expected 90x30 at 30 fps", cfg)
	}
	if m.View() == "" {
		t.Error("View() should render before quitting")
	}

	m, _ = press(m, runeKey('q'))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
	if _, ok := m.Selected(); ok {
		t.Error("quitting selects nothing")
	}
}
