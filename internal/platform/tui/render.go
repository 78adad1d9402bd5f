package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtris/internal/core"
)

// colorStyles holds one lipgloss style per palette color, indexed by color.
var colorStyles = newColorStyles()

func newColorStyles() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(core.Colors()))
	for _, c := range core.Colors() {
		st := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			st = st.Foreground(lipgloss.Color(code))
		}
		if c == core.ColorBrightWhite {
			st = st.Bold(true)
		}
		styles[c] = st
	}
	return styles
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if c.Valid() {
		return colorStyles[c]
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each run of same-colored cells becomes one styled span; default-colored
// runs are written without escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		line := s.Line(y)
		for start := 0; start < len(line); {
			end := start + 1
			for end < len(line) && line[end].Color == line[start].Color {
				end++
			}
			writeRun(&sb, line[start:end])
			start = end
		}
	}
	return sb.String()
}

// writeRun appends cells that all share one color.
func writeRun(sb *strings.Builder, run []core.Cell) {
	text := make([]rune, len(run))
	for i, c := range run {
		text[i] = c.Rune
	}
	if run[0].Color == core.ColorDefault {
		sb.WriteString(string(text))
		return
	}
	sb.WriteString(styleFor(run[0].Color).Render(string(text)))
}
