package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrFormCanceled is returned when the user leaves a form with esc.
var ErrFormCanceled = errors.New("form canceled")

// FormField describes one text input.
type FormField struct {
	Label       string
	Placeholder string
	CharLimit   int
	Validate    func(string) error // nil accepts anything
}

// FormSpec describes a form: a heading and its fields in order.
type FormSpec struct {
	Title  string
	Fields []FormField
}

type formModel struct {
	spec      FormSpec
	inputs    []textinput.Model
	keys      StandardKeys
	focused   int
	result    []string
	err       error
	canceled  bool
	activeCmd string
}

func newForm(spec FormSpec) formModel {
	m := formModel{
		spec:   spec,
		inputs: make([]textinput.Model, len(spec.Fields)),
		keys:   NewStandardKeys(),
	}

	const fieldWidth = 42
	for i, f := range spec.Fields {
		in := textinput.New()
		in.Placeholder = f.Placeholder
		in.CharLimit = 200
		if f.CharLimit > 0 {
			in.CharLimit = f.CharLimit
		}
		in.Width = fieldWidth
		in.Prompt = "│ "
		m.inputs[i] = in
	}
	if len(m.inputs) > 0 {
		m.inputs[0].Focus()
	}
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ClearActiveCmdMsg:
		m.activeCmd = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "esc" || msg.String() == "ctrl+c":
			m.canceled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i, err := m.validate(); err != nil {
				m.err = err
				return m, m.focus(i)
			}
			m.result = m.values()
			return m, tea.Quit

		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Prev):
			next := m.focused + 1
			if key.Matches(msg, m.keys.Prev) {
				next = m.focused - 1
			}
			m.activeCmd = "tab"
			return m, tea.Batch(m.focus(next), HighlightCmd())
		}
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

// focus moves focus to field i, wrapping around at both ends.
func (m *formModel) focus(i int) tea.Cmd {
	n := len(m.inputs)
	if n == 0 {
		return nil
	}
	m.focused = ((i % n) + n) % n
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focused {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m formModel) values() []string {
	out := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		out[i] = strings.TrimSpace(in.Value())
	}
	return out
}

// validate returns the index and error of the first invalid field.
func (m formModel) validate() (int, error) {
	vals := m.values()
	for i, f := range m.spec.Fields {
		if f.Validate == nil {
			continue
		}
		if err := f.Validate(vals[i]); err != nil {
			return i, err
		}
	}
	return 0, nil
}

func (m formModel) View() string {
	outerStyle := lipgloss.NewStyle().Padding(2, 4)

	sepStyle := lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D0D0D0", Dark: "#444444"})
	formLabel := lipgloss.NewStyle().
		Foreground(ColorGray).
		Width(10).
		Align(lipgloss.Right).
		PaddingRight(1)
	formLabelActive := formLabel.
		Foreground(ColorYellow).
		Bold(true)

	const w = 54
	sep := sepStyle.Render(strings.Repeat("─", w))

	var b strings.Builder
	b.WriteString(StyleHeader.Render(m.spec.Title))
	b.WriteString("\n\n")
	b.WriteString(sep)
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleError.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	for i, f := range m.spec.Fields {
		if i == m.focused {
			b.WriteString(formLabelActive.Render("› " + f.Label))
		} else {
			b.WriteString(formLabel.Render(f.Label))
		}
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(sep)
	b.WriteString("\n")
	b.WriteString(RenderFooterBar([]ShortcutEntry{
		{Key: "tab", Label: "tab/↑↓ navigate"},
		{Label: "enter submit"},
		{Label: "esc cancel"},
	}, m.activeCmd))
	b.WriteString("\n")

	innerPadding := lipgloss.NewStyle().Padding(0, 2, 0, 1)
	return outerStyle.Render(StyleBorder.Render(innerPadding.Render(b.String())))
}

// RunForm shows spec and returns the trimmed field values in order once every
// validator passes.
func RunForm(spec FormSpec) ([]string, error) {
	p := tea.NewProgram(newForm(spec), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running form: %w", err)
	}

	fm, ok := finalModel.(formModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}
	if fm.canceled || fm.result == nil {
		return nil, ErrFormCanceled
	}
	return fm.result, nil
}
