package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/registry"
)

var (
	menuTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 2)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	menuSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDescStyle     = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245"))
	menuHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the mode picker.
type MenuModel struct {
	modes    []registry.GameInfo
	cursor   int
	chosen   int // index into modes, -1 until Select
	config   core.RuntimeConfig
	keys     MenuKeyMap
	help     help.Model
	quitting bool
}

// NewMenuModel creates a menu listing every registered mode.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		modes:  registry.List(),
		chosen: -1,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey moves the cursor, wrapping at both ends, or ends the menu.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.modes)

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case n == 0:
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor - 1 + n) % n

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % n

	case key.Matches(msg, m.keys.Select):
		m.chosen = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(menuTitleStyle.Render("T E R M T R I S"))
	b.WriteString("\n\n")

	if len(m.modes) == 0 {
		b.WriteString(menuHelpStyle.Render("No modes registered"))
	}
	for i, mode := range m.modes {
		if i == m.cursor {
			b.WriteString(menuSelectedStyle.Render("> " + mode.Title))
		} else {
			b.WriteString(menuItemStyle.Render("  " + mode.Title))
		}
		b.WriteString("\n")
	}

	// Reserve the description line so the layout does not jump.
	b.WriteString("\n")
	if len(m.modes) > 0 {
		b.WriteString(menuDescStyle.Render(m.modes[m.cursor].Description))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	if m.config.ScreenW <= 0 || m.config.ScreenH <= 0 {
		return b.String()
	}
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen mode's ID and whether one was chosen.
func (m MenuModel) Selected() (string, bool) {
	if m.chosen < 0 {
		return "", false
	}
	return m.modes[m.chosen].ID, true
}

// IsQuitting reports whether the user asked to leave.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the runtime config, updated by any resize seen while the
// menu was open.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the outcome of RunMenu.
type MenuResult struct {
	ModeID string
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu shows the mode picker on the alternate screen until the user
// selects a mode or quits.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	id, chosen := m.Selected()
	return MenuResult{
		ModeID: id,
		Config: m.Config(),
		Quit:   m.IsQuitting() || !chosen,
	}, nil
}
