package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-blockdoku/internal/core"
	"github.com/vovakirdan/tui-blockdoku/internal/games/blockdoku/layouts"
)

// LayoutOption is one entry of the starting board menu. The empty ID means
// an empty board.
type LayoutOption struct {
	ID          string
	Name        string
	Description string
}

// LayoutOptions returns the empty board followed by the given layouts.
func LayoutOptions(ls []layouts.Layout) []LayoutOption {
	opts := []LayoutOption{{Name: "Empty board", Description: "Start from a clean grid"}}
	for _, l := range ls {
		opts = append(opts, LayoutOption{ID: l.ID, Name: l.Name, Description: l.Description})
	}
	return opts
}

// LayoutModel lets users choose the starting board.
type LayoutModel struct {
	options   []LayoutOption
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection LayoutOption
	choosing  bool
	quitting  bool
	back      bool
}

// NewLayoutModel creates a new layout selection model.
func NewLayoutModel(options []LayoutOption, width, height int) LayoutModel {
	return LayoutModel{
		options:   options,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m LayoutModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m LayoutModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.options)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.options) > 0 {
			m.choosing = false
			m.selection = m.options[m.cursor]
			return m, tea.Quit
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the layout list.
func (m LayoutModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("STARTING BOARD"), m.width))
	b.WriteString("\n\n")

	for i, opt := range m.options {
		line := fmt.Sprintf("  %s", opt.Name)
		if i == m.cursor {
			line = menuActiveStyle.Render("> " + opt.Name)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if len(m.options) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(menuHintStyle.Render(m.options[m.cursor].Description), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHintStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LayoutModel) Selected() *LayoutOption {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LayoutModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LayoutModel) WantsBack() bool {
	return m.back
}

// RunLayoutSelector runs the layout selection. A nil selection with a nil
// error means the user backed out or quit; quit reports which.
func RunLayoutSelector(options []LayoutOption, cfg core.RuntimeConfig) (sel *LayoutOption, quit bool, err error) {
	p := tea.NewProgram(
		NewLayoutModel(options, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(LayoutModel)
	if !ok {
		return nil, true, nil
	}
	if m.IsQuitting() {
		return nil, true, nil
	}
	return m.Selected(), false, nil
}
