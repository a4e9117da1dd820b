package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// DifficultyModel lets the player pick a difficulty preset before play.
type DifficultyModel struct {
	presets  []config.DifficultyPreset
	cursor   int
	width    int
	keys     MenuKeyMap
	help     help.Model
	chosen   bool
	quitting bool
}

// NewDifficultyModel creates a selector with the cursor on the normal preset.
func NewDifficultyModel(width int) DifficultyModel {
	m := DifficultyModel{
		presets: config.Presets,
		width:   width,
		keys:    DefaultMenuKeyMap(),
		help:    help.New(),
	}
	for i, p := range m.presets {
		if p == config.DifficultyNormal {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.presets)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting || m.chosen {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R E A K O U T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		line := "  " + string(p)
		if i == m.cursor {
			line = cursorStyle.Render("> " + string(p))
		}
		line += " " + dimStyle.Render("- "+p.Describe())
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	return b.String()
}

// Selected returns the chosen preset, or false while still choosing or after
// the player quit.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	if !m.chosen || m.quitting {
		return config.DifficultyNone, false
	}
	return m.presets[m.cursor], true
}

// centerText pads text so it sits in the middle of a line of the given width.
func centerText(text string, width int) string {
	if lipgloss.Width(text) >= width {
		return text
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}

// RunDifficultySelector shows the selector and returns the chosen preset.
// ok is false when the player quit without choosing.
func RunDifficultySelector(width int) (preset config.DifficultyPreset, ok bool, err error) {
	p := tea.NewProgram(NewDifficultyModel(width), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return config.DifficultyNone, false, err
	}

	m, isModel := final.(DifficultyModel)
	if !isModel {
		return config.DifficultyNone, false, nil
	}
	preset, ok = m.Selected()
	return preset, ok, nil
}
