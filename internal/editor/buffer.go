package editor

import (
	"fmt"
	"sync"
)

// Editor is the host surface commands read from and write to.
type Editor interface {
	Selection() string
	ReplaceSelection(text string)
	Value() string
	SetValue(text string)
}

// Buffer is an in-memory Editor. The selection is a half-open rune range;
// an empty range means nothing is selected.
type Buffer struct {
	mu         sync.Mutex
	text       []rune
	start, end int
}

func NewBuffer(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

// Select sets the selection to runes [start, end).
func (b *Buffer) Select(start, end int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || end < start || end > len(b.text) {
		return fmt.Errorf("selection %d:%d out of range for %d runes", start, end, len(b.text))
	}
	b.start, b.end = start, end
	return nil
}

// SelectionRange returns the current selection bounds in runes.
func (b *Buffer) SelectionRange() (start, end int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.start, b.end
}

func (b *Buffer) Selection() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.text[b.start:b.end])
}

// ReplaceSelection swaps the selected runes for text and collapses the
// selection to the end of the insertion.
func (b *Buffer) ReplaceSelection(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ins := []rune(text)
	next := make([]rune, 0, len(b.text)-(b.end-b.start)+len(ins))
	next = append(next, b.text[:b.start]...)
	next = append(next, ins...)
	next = append(next, b.text[b.end:]...)
	b.text = next
	b.start += len(ins)
	b.end = b.start
}

func (b *Buffer) Value() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.text)
}

// SetValue replaces the whole text and clears the selection.
func (b *Buffer) SetValue(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = []rune(text)
	b.start, b.end = 0, 0
}
