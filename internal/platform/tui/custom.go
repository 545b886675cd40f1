package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// Form field order.
const (
	fieldRows = iota
	fieldCols
	fieldMines
	fieldCount
)

var (
	formLabelStyle = lipgloss.NewStyle().Width(8)
	formErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	formHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// CustomModel is the form that asks for custom board dimensions.
type CustomModel struct {
	inputs    []textinput.Model
	focus     int
	width     int
	height    int
	err       error
	result    *minesweeper.Config
	goingBack bool
	quitting  bool
}

// digitsOnly rejects anything but a short decimal number.
func digitsOnly(s string) error {
	if s == "" {
		return nil
	}
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("not a number")
	}
	return nil
}

// NewCustomModel creates the form prefilled with initial.
func NewCustomModel(initial minesweeper.Config, width, height int) CustomModel {
	values := [fieldCount]int{initial.Rows, initial.Cols, initial.Mines}
	m := CustomModel{
		inputs: make([]textinput.Model, fieldCount),
		width:  width,
		height: height,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 3
		ti.Width = 5
		ti.Validate = digitsOnly
		ti.SetValue(strconv.Itoa(values[i]))
		m.inputs[i] = ti
	}
	m.inputs[fieldRows].Placeholder = fmt.Sprintf("%d-%d", minesweeper.MinRows, minesweeper.MaxRows)
	m.inputs[fieldCols].Placeholder = fmt.Sprintf("%d-%d", minesweeper.MinCols, minesweeper.MaxCols)
	m.inputs[fieldMines].Placeholder = fmt.Sprintf("%d-%d", minesweeper.MinMines, minesweeper.MaxMines)
	m.inputs[fieldRows].Focus()
	return m
}

// Init starts the cursor blinking.
func (m CustomModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the form.
func (m CustomModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "esc":
			m.goingBack = true
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus(m.focus + 1)
		case "shift+tab", "up":
			return m, m.setFocus(m.focus - 1)
		case "enter":
			if m.focus < fieldCount-1 {
				return m, m.setFocus(m.focus + 1)
			}
			return m.submit()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// setFocus moves focus to field i, wrapping around.
func (m *CustomModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = (i + fieldCount) % fieldCount
	return m.inputs[m.focus].Focus()
}

// Config parses the fields. The result has not been validated.
func (m CustomModel) Config() (minesweeper.Config, error) {
	var values [fieldCount]int
	names := [fieldCount]string{"rows", "cols", "mines"}
	for i, in := range m.inputs {
		v, err := strconv.Atoi(strings.TrimSpace(in.Value()))
		if err != nil {
			return minesweeper.Config{}, fmt.Errorf("%s: enter a number", names[i])
		}
		values[i] = v
	}
	return minesweeper.Config{Rows: values[fieldRows], Cols: values[fieldCols], Mines: values[fieldMines]}, nil
}

func (m CustomModel) submit() (tea.Model, tea.Cmd) {
	cfg, err := m.Config()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	m.err = nil
	m.result = &cfg
	return m, tea.Quit
}

// View renders the form.
func (m CustomModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerStyled(menuTitleStyle.Render("CUSTOM BOARD"), m.width))
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Rows", "Cols", "Mines"}
	for i, in := range m.inputs {
		cursor := "  "
		if i == m.focus {
			cursor = "> "
		}
		line := cursor + formLabelStyle.Render(labels[i]) + in.View() + "  " +
			formHintStyle.Render(in.Placeholder)
		b.WriteString(centerStyled(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(centerStyled(formErrorStyle.Render(m.err.Error()), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText("Tab: Next field  |  Enter: Play  |  Esc: Back", m.width))
	b.WriteString("\n")
	return b.String()
}

// Result returns the accepted board, or nil if the form was left.
func (m CustomModel) Result() *minesweeper.Config {
	return m.result
}

// IsGoingBack returns true if user wants to go back to menu.
func (m CustomModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m CustomModel) IsQuitting() bool {
	return m.quitting
}

// Err returns the last validation error shown on the form.
func (m CustomModel) Err() error {
	return m.err
}
