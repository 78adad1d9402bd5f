package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/termtris/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(0, 1, "world")

	if got := RenderScreen(s); got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}

func TestRenderScreenColored(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColor(0, 0, "ab", core.ColorCyan)
	s.DrawTextColor(2, 0, "cd", core.ColorRed)
	s.DrawText(4, 0, "ef")

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "ef"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() = %q, missing %q", out, want)
		}
	}
	if strings.Count(out, "\n") != 0 {
		t.Errorf("single row should have no newline, got %q", out)
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("unknown color should use the default style, got %q", got)
	}
}

func TestTickInterval(t *testing.T) {
	if got := tickInterval(60).Milliseconds(); got != 16 {
		t.Errorf("tickInterval(60) = %dms, expected 16ms", got)
	}
	if tickInterval(0) != tickInterval(core.DefaultTickRate) {
		t.Error("tickInterval(0) should fall back to the default rate")
	}
}
