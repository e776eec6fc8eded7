package tui

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/lipi/internal/editor"
)

type field int

const (
	fieldDirection field = iota
	fieldMode
	fieldPreview
	fieldCount
)

type settingsKeys struct {
	Up     key.Binding
	Down   key.Binding
	Change key.Binding
	Save   key.Binding
	Cancel key.Binding
}

var settingsKeyMap = settingsKeys{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j", "tab"), key.WithHelp("↓/j", "down")),
	Change: key.NewBinding(key.WithKeys("left", "right", " ", "h", "l"), key.WithHelp("space", "change")),
	Save:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
	Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc", "cancel")),
}

type settingsModel struct {
	profile string
	cfg     editor.Config
	cursor  field
	saved   bool
	done    bool
	help    help.Model
}

func newSettingsModel(profile string, cfg editor.Config) settingsModel {
	return settingsModel{profile: profile, cfg: cfg, help: help.New()}
}

func (m settingsModel) Init() tea.Cmd {
	return nil
}

func (m settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, settingsKeyMap.Up):
		m.cursor = (m.cursor + fieldCount - 1) % fieldCount
	case key.Matches(keyMsg, settingsKeyMap.Down):
		m.cursor = (m.cursor + 1) % fieldCount
	case key.Matches(keyMsg, settingsKeyMap.Change):
		m.change()
	case key.Matches(keyMsg, settingsKeyMap.Save):
		m.saved, m.done = true, true
		return m, tea.Quit
	case key.Matches(keyMsg, settingsKeyMap.Cancel):
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *settingsModel) change() {
	switch m.cursor {
	case fieldDirection:
		m.cfg.Direction = m.cfg.Direction.Toggle()
	case fieldMode:
		if m.cfg.ApplyMode == editor.Append {
			m.cfg.ApplyMode = editor.Replace
		} else {
			m.cfg.ApplyMode = editor.Append
		}
	case fieldPreview:
		m.cfg.PreviewBeforeApply = !m.cfg.PreviewBeforeApply
	}
}

func (m settingsModel) View() string {
	if m.done {
		return ""
	}

	rows := []struct {
		name  string
		value string
		desc  string
	}{
		{"Default Transliteration Direction", m.cfg.Direction.Label(), ""},
		{"Append instead of Replace", onOff(m.cfg.ApplyMode == editor.Append),
			"If ON, conversion will be appended in parentheses instead of replacing."},
		{"Preview before applying", onOff(m.cfg.PreviewBeforeApply), ""},
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render("Settings: " + m.profile))
	s.WriteString("\n")
	for i, r := range rows {
		line := fmt.Sprintf("%-36s %s", r.name, r.value)
		if field(i) == m.cursor {
			s.WriteString(activeStyle.Render("> " + line))
		} else {
			s.WriteString("  " + line)
		}
		s.WriteString("\n")
		if r.desc != "" {
			s.WriteString("  " + subtleStyle.Render(r.desc) + "\n")
		}
	}
	s.WriteString("\n")
	s.WriteString(m.help.ShortHelpView([]key.Binding{
		settingsKeyMap.Up, settingsKeyMap.Down, settingsKeyMap.Change, settingsKeyMap.Save, settingsKeyMap.Cancel,
	}))
	s.WriteString("\n")
	return s.String()
}

func onOff(b bool) string {
	if b {
		return "ON"
	}
	return "OFF"
}

// EditSettings runs the settings form. ok is false when the form was
// cancelled, in which case cfg is returned unchanged.
func EditSettings(ctx context.Context, in io.Reader, out io.Writer, profile string, cfg editor.Config) (editor.Config, bool, error) {
	final, err := tea.NewProgram(newSettingsModel(profile, cfg), programOptions(ctx, in, out)...).Run()
	if err != nil {
		return cfg, false, fmt.Errorf("running settings form: %w", err)
	}
	m := final.(settingsModel)
	if !m.saved {
		return cfg, false, nil
	}
	return m.cfg, true, nil
}
