package tui

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jusunglee/lipi/internal/editor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func press(m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPreviewModel(t *testing.T) {
	m := newPreviewModel("rAma (राम)")
	assert.Contains(t, m.View(), "rAma (राम)")
	assert.Contains(t, m.View(), "convert")

	got, cmd := press(m, enter)
	assert.True(t, got.(previewModel).confirmed)
	assert.NotNil(t, cmd)
	assert.Empty(t, got.View())

	got, _ = press(newPreviewModel("x"), runes("y"))
	assert.True(t, got.(previewModel).confirmed)

	got, _ = press(newPreviewModel("x"), esc)
	assert.False(t, got.(previewModel).confirmed)
	assert.True(t, got.(previewModel).done)

	got, _ = press(newPreviewModel("x"), runes("z"))
	assert.False(t, got.(previewModel).done)
}

func TestSettingsModel(t *testing.T) {
	m := newSettingsModel("default", editor.DefaultConfig())
	view := m.View()
	assert.Contains(t, view, "Settings: default")
	assert.Contains(t, view, "ITRANS → Devanagari")
	assert.Contains(t, view, "appended in parentheses")

	got, _ := press(m, space, down, space, down, space, enter)
	sm := got.(settingsModel)
	assert.True(t, sm.saved)
	assert.Equal(t, editor.Config{
		Direction:          editor.DevToItrans,
		ApplyMode:          editor.Replace,
		PreviewBeforeApply: true,
	}, sm.cfg)
}

func TestSettingsModelCursorWraps(t *testing.T) {
	got, _ := press(newSettingsModel("p", editor.DefaultConfig()), up)
	assert.Equal(t, fieldPreview, got.(settingsModel).cursor)

	got, _ = press(got, down)
	assert.Equal(t, fieldDirection, got.(settingsModel).cursor)
}

func TestSettingsModelCancel(t *testing.T) {
	got, _ := press(newSettingsModel("p", editor.DefaultConfig()), space, esc)
	sm := got.(settingsModel)
	assert.False(t, sm.saved)
	assert.True(t, sm.done)
}

func TestLiveModel(t *testing.T) {
	m := newLiveModel(editor.ItransToDev)

	got, _ := press(m, runes("rAma"))
	lm := got.(liveModel)
	assert.Equal(t, "राम", lm.converted())
	assert.Contains(t, lm.View(), "राम")
	assert.Contains(t, lm.View(), "🆎→🕉")

	got, _ = press(got, tab)
	lm = got.(liveModel)
	assert.Equal(t, editor.DevToItrans, lm.direction)
	assert.Equal(t, "rAma", lm.converted())

	got, _ = press(got, enter)
	assert.True(t, got.(liveModel).accepted)
}

func TestNotifier(t *testing.T) {
	var buf bytes.Buffer
	NewNotifier(&buf).Notify("No text selected for preview.")
	require.Contains(t, buf.String(), "No text selected for preview.")
}
