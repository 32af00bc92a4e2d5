package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ascii-trials/internal/registry"
)

// MenuItem is one entry of the picker: the full campaign or a single scene.
type MenuItem struct {
	Title string
	IDs   []string
}

// MenuModel is the Bubble Tea model for the scene picker.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	embedded       bool
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel lists the campaign first, then every registered scene.
func NewMenuModel(width int) MenuModel {
	items := []MenuItem{{Title: "The Trials (full run)", IDs: registry.Campaign()}}
	for _, g := range registry.List() {
		items = append(items, MenuItem{Title: g.Title, IDs: []string{g.ID}})
	}
	return MenuModel{items: items, width: width}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch MenuActionFor(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, leave(m.embedded)

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, leave(m.embedded)
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, leave(m.embedded)
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(summaryTitle.Render(centerText("  T H E   T R I A L S  ", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText("Choose your trial", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, item.Title), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(centerText("Up/Down: Navigate  |  Enter: Select  |  Tab: Results  |  Q: Quit", m.width)))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	IDs             []string
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(width int) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(width), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return MenuResult{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}
	switch {
	case m.WantsScoreboard():
		return MenuResult{WantsScoreboard: true}, nil
	case m.Selected() != nil:
		return MenuResult{IDs: m.Selected().IDs}, nil
	}
	return MenuResult{Quit: true}, nil
}
