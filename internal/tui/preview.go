package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type previewKeys struct {
	Confirm key.Binding
	Cancel  key.Binding
}

var previewKeyMap = previewKeys{
	Confirm: key.NewBinding(key.WithKeys("enter", "y"), key.WithHelp("enter", "✅ convert")),
	Cancel:  key.NewBinding(key.WithKeys("esc", "n", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

// previewModel shows the preview text and waits for a decision.
type previewModel struct {
	text      string
	confirmed bool
	done      bool
	help      help.Model
	width     int
}

func newPreviewModel(text string) previewModel {
	return previewModel{text: text, help: help.New()}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, previewKeyMap.Confirm):
			m.confirmed, m.done = true, true
			return m, tea.Quit
		case key.Matches(msg, previewKeyMap.Cancel):
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	if m.done {
		return ""
	}
	box := boxStyle
	if m.width > 8 {
		box = box.Width(m.width - 4)
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("Preview"))
	s.WriteString("\n")
	s.WriteString(box.Render(m.text))
	s.WriteString("\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{previewKeyMap.Confirm, previewKeyMap.Cancel}))
	s.WriteString("\n")
	return s.String()
}

// Previewer confirms conversions in a bubbletea modal.
type Previewer struct {
	in  io.Reader
	out io.Writer
}

// NewPreviewer reads keys from in and draws on out. A nil in reads the
// terminal.
func NewPreviewer(in io.Reader, out io.Writer) *Previewer {
	return &Previewer{in: in, out: out}
}

func (p *Previewer) Confirm(ctx context.Context, preview string) (bool, error) {
	final, err := tea.NewProgram(newPreviewModel(preview), programOptions(ctx, p.in, p.out)...).Run()
	if err != nil {
		return false, fmt.Errorf("running preview: %w", err)
	}
	return final.(previewModel).confirmed, nil
}
