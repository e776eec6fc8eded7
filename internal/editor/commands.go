// Package editor connects the transliteration engine to a text editor host:
// it reads the selection or document, converts it in the configured
// direction, and writes the result back.
package editor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"
)

var (
	// ErrNoText means there was nothing to convert.
	ErrNoText = errors.New("no text to convert")
	// ErrPreviewDeclined means the user dismissed the preview.
	ErrPreviewDeclined = errors.New("preview declined")
)

const (
	noticeNoSelection = "No text selected for preview."
	noticeEmptyNote   = "Nothing to convert."
)

// Notifier shows a short notice to the operator.
type Notifier interface {
	Notify(msg string)
}

// Previewer asks the operator to confirm a conversion before it is applied.
type Previewer interface {
	Confirm(ctx context.Context, preview string) (bool, error)
}

// Result describes one applied conversion.
type Result struct {
	Direction Direction
	Scope     Scope
	Source    string
	Converted string
	Applied   string
}

type Commands struct {
	log       *slog.Logger
	notifier  Notifier
	previewer Previewer
}

// NewCommands wires the host collaborators. previewer may be nil when the
// host never enables PreviewBeforeApply.
func NewCommands(log *slog.Logger, notifier Notifier, previewer Previewer) *Commands {
	return &Commands{log: log, notifier: notifier, previewer: previewer}
}

// ConvertSelectionOrDocument converts the selection if there is one, else the
// whole document, in cfg.Direction.
func (c *Commands) ConvertSelectionOrDocument(ctx context.Context, ed Editor, cfg Config) (Result, error) {
	if sel := ed.Selection(); sel != "" {
		return c.convert(ctx, ed, cfg, cfg.Direction, ScopeSelection, sel)
	}

	doc := ed.Value()
	if doc == "" {
		c.notifier.Notify(noticeEmptyNote)
		return Result{}, ErrNoText
	}
	return c.convert(ctx, ed, cfg, cfg.Direction, ScopeDocument, doc)
}

// ConvertSelection converts the selection in a fixed direction. An empty
// selection is a silent no-op.
func (c *Commands) ConvertSelection(ctx context.Context, ed Editor, cfg Config, dir Direction) (Result, error) {
	sel := ed.Selection()
	if sel == "" {
		return Result{}, ErrNoText
	}
	return c.convert(ctx, ed, cfg, dir, ScopeSelection, sel)
}

// Preview always shows "original (converted)" and applies only on confirm,
// regardless of cfg.PreviewBeforeApply.
func (c *Commands) Preview(ctx context.Context, ed Editor, cfg Config) (Result, error) {
	sel := ed.Selection()
	if sel == "" {
		c.notifier.Notify(noticeNoSelection)
		return Result{}, ErrNoText
	}

	res := c.result(cfg, cfg.Direction, ScopeSelection, sel)
	if err := c.confirm(ctx, Apply(sel, res.Converted, Append, ScopeSelection)); err != nil {
		return Result{}, err
	}
	ed.ReplaceSelection(res.Applied)
	c.logApplied(ctx, res)
	return res, nil
}

// ToggleDirection returns cfg with the direction flipped. Persisting it is
// the host's job.
func (c *Commands) ToggleDirection(cfg Config) Config {
	cfg.Direction = cfg.Direction.Toggle()
	c.log.Debug("toggled direction", "direction", cfg.Direction)
	return cfg
}

// Status is the indicator text for cfg.
func (c *Commands) Status(cfg Config) string {
	return cfg.Direction.Icon()
}

func (c *Commands) convert(ctx context.Context, ed Editor, cfg Config, dir Direction, scope Scope, source string) (Result, error) {
	res := c.result(cfg, dir, scope, source)

	if cfg.PreviewBeforeApply {
		if err := c.confirm(ctx, res.Applied); err != nil {
			return Result{}, err
		}
	}

	if scope == ScopeDocument {
		ed.SetValue(res.Applied)
	} else {
		ed.ReplaceSelection(res.Applied)
	}
	c.logApplied(ctx, res)
	return res, nil
}

func (c *Commands) result(cfg Config, dir Direction, scope Scope, source string) Result {
	converted := dir.Convert(source)
	return Result{
		Direction: dir,
		Scope:     scope,
		Source:    source,
		Converted: converted,
		Applied:   Apply(source, converted, cfg.ApplyMode, scope),
	}
}

func (c *Commands) confirm(ctx context.Context, preview string) error {
	if c.previewer == nil {
		return errors.New("preview requested but no previewer configured")
	}
	ok, err := c.previewer.Confirm(ctx, preview)
	if err != nil {
		return fmt.Errorf("showing preview: %w", err)
	}
	if !ok {
		return ErrPreviewDeclined
	}
	return nil
}

func (c *Commands) logApplied(ctx context.Context, res Result) {
	c.log.DebugContext(ctx, "applied conversion",
		"direction", res.Direction,
		"scope", res.Scope,
		"runes", utf8.RuneCountInString(res.Source),
	)
}
