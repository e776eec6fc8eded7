package editor

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(msg string) {
	m.Called(msg)
}

type MockPreviewer struct {
	mock.Mock
}

func (m *MockPreviewer) Confirm(ctx context.Context, preview string) (bool, error) {
	ret := m.Called(ctx, preview)
	return ret.Bool(0), ret.Error(1)
}

func newCommands(n Notifier, p Previewer) *Commands {
	return NewCommands(slog.New(slog.NewTextHandler(io.Discard, nil)), n, p)
}

func selected(t *testing.T, text string, start, end int) *Buffer {
	t.Helper()
	b := NewBuffer(text)
	require.NoError(t, b.Select(start, end))
	return b
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in   string
		want Direction
	}{
		{"ITRANS_TO_DEV", ItransToDev},
		{"itrans-to-dev", ItransToDev},
		{"i2d", ItransToDev},
		{" DEV_TO_ITRANS ", DevToItrans},
		{"d2i", DevToItrans},
	}
	for _, tt := range tests {
		got, err := ParseDirection(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseDirection("sideways")
	assert.Error(t, err)
}

func TestDirection(t *testing.T) {
	from, to := ItransToDev.Schemes()
	assert.Same(t, transliteration.ITRANS, from)
	assert.Same(t, transliteration.Devanagari, to)

	from, to = DevToItrans.Schemes()
	assert.Same(t, transliteration.Devanagari, from)
	assert.Same(t, transliteration.ITRANS, to)

	assert.Equal(t, DevToItrans, ItransToDev.Toggle())
	assert.Equal(t, ItransToDev, DevToItrans.Toggle())
	assert.Equal(t, "🆎→🕉", ItransToDev.Icon())
	assert.Equal(t, "🕉→🆎", DevToItrans.Icon())
	assert.Contains(t, DevToItrans.Label(), "Devanagari → ITRANS")
	assert.Equal(t, "राम", ItransToDev.Convert("rAma"))
	assert.Equal(t, "ka", DevToItrans.Convert("क"))
}

func TestConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, ItransToDev, cfg.Direction)
	assert.Equal(t, Append, cfg.ApplyMode)
	assert.False(t, cfg.PreviewBeforeApply)
	assert.NoError(t, cfg.Validate())

	bad := Config{Direction: "UP", ApplyMode: "merge"}
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "direction")
	assert.Contains(t, err.Error(), "apply mode")

	mode, err := ParseApplyMode("REPLACE")
	require.NoError(t, err)
	assert.Equal(t, Replace, mode)
}

func TestApply(t *testing.T) {
	assert.Equal(t, "राम", Apply("rAma", "राम", Replace, ScopeSelection))
	assert.Equal(t, "rAma (राम)", Apply("rAma", "राम", Append, ScopeSelection))
	assert.Equal(t, "rAma\n\n---\n\nराम", Apply("rAma", "राम", Append, ScopeDocument))
	assert.Equal(t, "राम", Apply("rAma", "राम", Replace, ScopeDocument))
}

func TestBuffer(t *testing.T) {
	b := NewBuffer("jaya rAma")
	assert.Equal(t, "", b.Selection())

	require.NoError(t, b.Select(5, 9))
	assert.Equal(t, "rAma", b.Selection())

	b.ReplaceSelection("राम")
	assert.Equal(t, "jaya राम", b.Value())
	start, end := b.SelectionRange()
	assert.Equal(t, 8, start)
	assert.Equal(t, 8, end)

	assert.Error(t, b.Select(3, 2))
	assert.Error(t, b.Select(0, 99))

	require.NoError(t, b.Select(0, 4))
	b.SetValue("new")
	assert.Equal(t, "", b.Selection())
	assert.Equal(t, "new", b.Value())
}

func TestConvertSelectionOrDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("selection append", func(t *testing.T) {
		b := selected(t, "jaya rAma", 5, 9)
		res, err := newCommands(&MockNotifier{}, nil).ConvertSelectionOrDocument(ctx, b, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, ScopeSelection, res.Scope)
		assert.Equal(t, "jaya rAma (राम)", b.Value())
	})

	t.Run("document append", func(t *testing.T) {
		b := NewBuffer("rAma")
		res, err := newCommands(&MockNotifier{}, nil).ConvertSelectionOrDocument(ctx, b, DefaultConfig())
		require.NoError(t, err)
		assert.Equal(t, ScopeDocument, res.Scope)
		assert.Equal(t, "rAma\n\n---\n\nराम", b.Value())
	})

	t.Run("document replace reverse", func(t *testing.T) {
		b := NewBuffer("राम")
		cfg := Config{Direction: DevToItrans, ApplyMode: Replace}
		res, err := newCommands(&MockNotifier{}, nil).ConvertSelectionOrDocument(ctx, b, cfg)
		require.NoError(t, err)
		assert.Equal(t, "rAma", res.Converted)
		assert.Equal(t, "rAma", b.Value())
	})

	t.Run("empty document notifies", func(t *testing.T) {
		n := &MockNotifier{}
		n.On("Notify", "Nothing to convert.").Once()
		b := NewBuffer("")

		_, err := newCommands(n, nil).ConvertSelectionOrDocument(ctx, b, DefaultConfig())
		assert.ErrorIs(t, err, ErrNoText)
		n.AssertExpectations(t)
	})
}

func TestConvertSelectionFixedDirection(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Direction: ItransToDev, ApplyMode: Replace}

	b := selected(t, "क", 0, 1)
	res, err := newCommands(&MockNotifier{}, nil).ConvertSelection(ctx, b, cfg, DevToItrans)
	require.NoError(t, err)
	assert.Equal(t, DevToItrans, res.Direction)
	assert.Equal(t, "ka", b.Value())
}

func TestConvertSelectionEmptyIsSilent(t *testing.T) {
	n := &MockNotifier{}
	b := NewBuffer("rAma")

	_, err := newCommands(n, nil).ConvertSelection(context.Background(), b, DefaultConfig(), ItransToDev)
	assert.ErrorIs(t, err, ErrNoText)
	assert.Equal(t, "rAma", b.Value())
	n.AssertNotCalled(t, "Notify", mock.Anything)
}

func TestPreview(t *testing.T) {
	ctx := context.Background()

	t.Run("confirmed", func(t *testing.T) {
		p := &MockPreviewer{}
		p.On("Confirm", ctx, "rAma (राम)").Return(true, nil).Once()
		b := selected(t, "rAma", 0, 4)

		cfg := Config{Direction: ItransToDev, ApplyMode: Replace}
		_, err := newCommands(&MockNotifier{}, p).Preview(ctx, b, cfg)
		require.NoError(t, err)
		assert.Equal(t, "राम", b.Value())
		p.AssertExpectations(t)
	})

	t.Run("declined", func(t *testing.T) {
		p := &MockPreviewer{}
		p.On("Confirm", ctx, "rAma (राम)").Return(false, nil).Once()
		b := selected(t, "rAma", 0, 4)

		_, err := newCommands(&MockNotifier{}, p).Preview(ctx, b, DefaultConfig())
		assert.ErrorIs(t, err, ErrPreviewDeclined)
		assert.Equal(t, "rAma", b.Value())
	})

	t.Run("previewer error", func(t *testing.T) {
		p := &MockPreviewer{}
		p.On("Confirm", ctx, mock.Anything).Return(false, errors.New("tty gone")).Once()
		b := selected(t, "rAma", 0, 4)

		_, err := newCommands(&MockNotifier{}, p).Preview(ctx, b, DefaultConfig())
		assert.ErrorContains(t, err, "tty gone")
	})

	t.Run("no selection", func(t *testing.T) {
		n := &MockNotifier{}
		n.On("Notify", "No text selected for preview.").Once()
		p := &MockPreviewer{}

		_, err := newCommands(n, p).Preview(ctx, NewBuffer("rAma"), DefaultConfig())
		assert.ErrorIs(t, err, ErrNoText)
		n.AssertExpectations(t)
		p.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything)
	})
}

func TestPreviewBeforeApply(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Direction: ItransToDev, ApplyMode: Append, PreviewBeforeApply: true}

	p := &MockPreviewer{}
	p.On("Confirm", ctx, "rAma\n\n---\n\nराम").Return(false, nil).Once()
	b := NewBuffer("rAma")

	_, err := newCommands(&MockNotifier{}, p).ConvertSelectionOrDocument(ctx, b, cfg)
	assert.ErrorIs(t, err, ErrPreviewDeclined)
	assert.Equal(t, "rAma", b.Value())
	p.AssertExpectations(t)

	_, err = newCommands(&MockNotifier{}, nil).ConvertSelectionOrDocument(ctx, b, cfg)
	assert.ErrorContains(t, err, "no previewer")
}

func TestToggleAndStatus(t *testing.T) {
	c := newCommands(&MockNotifier{}, nil)
	cfg := DefaultConfig()
	assert.Equal(t, "🆎→🕉", c.Status(cfg))

	next := c.ToggleDirection(cfg)
	assert.Equal(t, DevToItrans, next.Direction)
	assert.Equal(t, ItransToDev, cfg.Direction)
	assert.Equal(t, "🕉→🆎", c.Status(next))
	assert.Equal(t, Append, next.ApplyMode)
}
