package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starfighter/internal/config"
	"github.com/vovakirdan/starfighter/internal/core"
)

// presetNotes summarizes what each difficulty changes.
var presetNotes = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "faster turns, shorter fire cooldown",
	config.DifficultyNormal: "the configured values",
	config.DifficultyHard:   "slow turns, long cooldown, half the top speed",
}

// FlightSetupModel lets users pick a difficulty before a flight.
type FlightSetupModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	selection config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewFlightSetupModel creates a difficulty picker with normal preselected.
func NewFlightSetupModel(width, height int) FlightSetupModel {
	cursor := 0
	for i, p := range config.Presets {
		if p == config.DifficultyNormal {
			cursor = i
		}
	}
	return FlightSetupModel{
		cursor:    cursor,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m FlightSetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m FlightSetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m FlightSetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(config.Presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selection = config.Presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the difficulty list.
func (m FlightSetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("F L I G H T   S E T U P", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-8s %s", cursor, strings.ToUpper(string(p[:1]))+string(p[1:]), presetNotes[p])
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the chosen preset, or "" while still choosing.
func (m FlightSetupModel) Selected() config.DifficultyPreset {
	if m.choosing {
		return ""
	}
	return m.selection
}

// IsQuitting returns true if user wants to quit.
func (m FlightSetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m FlightSetupModel) WantsBack() bool {
	return m.back
}

// FlightSetupResult holds the outcome of the difficulty picker.
type FlightSetupResult struct {
	Preset config.DifficultyPreset // empty when the user backed out or quit
	Back   bool
	Quit   bool
}

// RunFlightSetup runs the difficulty picker.
func RunFlightSetup(cfg core.RuntimeConfig) (FlightSetupResult, error) {
	p := tea.NewProgram(
		NewFlightSetupModel(cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return FlightSetupResult{}, err
	}

	m, ok := finalModel.(FlightSetupModel)
	if !ok {
		return FlightSetupResult{Quit: true}, nil
	}

	return FlightSetupResult{
		Preset: m.Selected(),
		Back:   m.WantsBack(),
		Quit:   m.IsQuitting(),
	}, nil
}
