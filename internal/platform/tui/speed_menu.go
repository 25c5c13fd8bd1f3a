package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tigrao/internal/core"
)

// SpeedSetter is implemented by games whose starting speed can be chosen.
type SpeedSetter interface {
	SetStartSpeed(v float64)
}

// speedChoices are the slider positions offered by the speed picker.
var speedChoices = func() []float64 {
	var out []float64
	for v := 5; v <= 20; v++ {
		out = append(out, float64(v)/10)
	}
	return out
}()

// SpeedMenuModel lets users start right away or pick a starting speed.
type SpeedMenuModel struct {
	title         string
	cursor        int
	speedCursor   int
	inSpeedSelect bool
	width         int
	height        int
	keyMapper     *KeyMapper
	speed         float64
	choosing      bool
	quitting      bool
	back          bool
}

// NewSpeedMenuModel creates a new speed selection model.
func NewSpeedMenuModel(title string, width, height int) SpeedMenuModel {
	return SpeedMenuModel{
		title:       title,
		speedCursor: 5, // 1.0x
		width:       width,
		height:      height,
		keyMapper:   NewKeyMapper(),
		choosing:    true,
	}
}

// Init initializes the model.
func (m SpeedMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SpeedMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m SpeedMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	if m.inSpeedSelect {
		return m.handleSpeedSelectKey(action)
	}
	return m.handleStartKey(action)
}

func (m SpeedMenuModel) handleStartKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Start, Select speed
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0: // Start with the configured speed
			m.choosing = false
			m.speed = 0
			return m, tea.Quit
		case 1:
			m.inSpeedSelect = true
		}
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

func (m SpeedMenuModel) handleSpeedSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.speedCursor > 0 {
			m.speedCursor--
		}
	case MenuActionDown:
		if m.speedCursor < len(speedChoices)-1 {
			m.speedCursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.speed = speedChoices[m.speedCursor]
		return m, tea.Quit
	case MenuActionBack:
		m.inSpeedSelect = false
	}

	return m, nil
}

// View renders the start/speed selection.
func (m SpeedMenuModel) View() string {
	if m.quitting {
		return ""
	}

	if m.inSpeedSelect {
		return m.viewSpeedSelect()
	}
	return m.viewStart()
}

func (m SpeedMenuModel) viewStart() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")

	options := []string{
		"Start",
		"Select speed...",
	}

	for i, opt := range options {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+opt, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m SpeedMenuModel) viewSpeedSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT SPEED", m.width))
	b.WriteString("\n\n")

	for i, v := range speedChoices {
		cursor := "  "
		if i == m.speedCursor {
			cursor = "> "
		}
		bar := strings.Repeat("█", i+1) + strings.Repeat("░", len(speedChoices)-i-1)
		b.WriteString(centerText(fmt.Sprintf("%s%.1fx %s", cursor, v, bar), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Speed returns the chosen speed; 0 means the configured default.
func (m SpeedMenuModel) Speed() float64 {
	return m.speed
}

// IsChoosing returns true if still in selection mode.
func (m SpeedMenuModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m SpeedMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SpeedMenuModel) WantsBack() bool {
	return m.back
}

// RunSpeedSelector asks for a starting speed. ok is false when the player
// backed out or quit.
func RunSpeedSelector(title string, cfg core.RuntimeConfig) (speed float64, ok bool, err error) {
	model := NewSpeedMenuModel(title, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return 0, false, err
	}

	m, isModel := finalModel.(SpeedMenuModel)
	if !isModel || m.IsQuitting() || m.WantsBack() || m.IsChoosing() {
		return 0, false, nil
	}

	return m.Speed(), true, nil
}
