package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/lipi/internal/editor"
)

type liveKeys struct {
	Toggle key.Binding
	Accept key.Binding
	Quit   key.Binding
}

var liveKeyMap = liveKeys{
	Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle direction")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "print and quit")),
	Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
}

// liveModel converts the input line on every keystroke.
type liveModel struct {
	input     textinput.Model
	direction editor.Direction
	accepted  bool
	done      bool
	help      help.Model
}

func newLiveModel(dir editor.Direction) liveModel {
	ti := textinput.New()
	ti.Placeholder = "type here"
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 60

	return liveModel{input: ti, direction: dir, help: help.New()}
}

func (m liveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m liveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, liveKeyMap.Toggle):
			m.direction = m.direction.Toggle()
			return m, nil
		case key.Matches(keyMsg, liveKeyMap.Accept):
			m.accepted, m.done = true, true
			return m, tea.Quit
		case key.Matches(keyMsg, liveKeyMap.Quit):
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m liveModel) converted() string {
	return m.direction.Convert(m.input.Value())
}

func (m liveModel) View() string {
	if m.done {
		return ""
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("lipi live " + m.direction.Icon()))
	s.WriteString("\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	s.WriteString(boxStyle.Render(m.converted()))
	s.WriteString("\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{liveKeyMap.Toggle, liveKeyMap.Accept, liveKeyMap.Quit}))
	s.WriteString("\n")
	return s.String()
}

// LiveResult is the pad's final state.
type LiveResult struct {
	Direction editor.Direction
	Source    string
	Converted string
	Accepted  bool
}

// Live runs the interactive pad starting in dir.
func Live(ctx context.Context, in io.Reader, out io.Writer, dir editor.Direction) (LiveResult, error) {
	final, err := tea.NewProgram(newLiveModel(dir), programOptions(ctx, in, out)...).Run()
	if err != nil {
		return LiveResult{}, fmt.Errorf("running live pad: %w", err)
	}
	m := final.(liveModel)
	return LiveResult{
		Direction: m.direction,
		Source:    m.input.Value(),
		Converted: m.converted(),
		Accepted:  m.accepted,
	}, nil
}
