package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/lipi/internal/editor"
	"github.com/jusunglee/lipi/internal/transliteration"
	"github.com/jusunglee/lipi/internal/tui"
	"github.com/mattn/go-isatty"
	"github.com/samber/lo"
)

type settingsEditor func(ctx context.Context, profile string, cfg editor.Config) (editor.Config, bool, error)

type livePad func(ctx context.Context, dir editor.Direction) (tui.LiveResult, error)

// The tty* constructors draw on out and read keys from the terminal.

func ttyPreviewer(out io.Writer) editor.Previewer {
	return tui.NewPreviewer(nil, out)
}

func ttySettingsEditor(out io.Writer) settingsEditor {
	return func(ctx context.Context, profile string, cfg editor.Config) (editor.Config, bool, error) {
		return tui.EditSettings(ctx, nil, out, profile, cfg)
	}
}

func ttyLivePad(out io.Writer) livePad {
	return func(ctx context.Context, dir editor.Direction) (tui.LiveResult, error) {
		return tui.Live(ctx, nil, out, dir)
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) livePad(ctx context.Context, _ []string) error {
	repo, cfg, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	res, err := a.live(ctx, cfg.Direction)
	if err != nil {
		return err
	}
	if !res.Accepted || res.Source == "" {
		return nil
	}

	fmt.Fprintln(a.stdout, res.Converted)
	return a.record(ctx, repo, []editor.Result{{
		Direction: res.Direction,
		Scope:     "live",
		Source:    res.Source,
		Converted: res.Converted,
		Applied:   res.Converted,
	}})
}

func (a *app) history(ctx context.Context, limit int, prune time.Duration) error {
	repo, _, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	if prune > 0 {
		n, err := repo.DeleteConversions(ctx, time.Now().Add(-prune))
		if err != nil {
			return fmt.Errorf("pruning history: %w", err)
		}
		a.log.Info("pruned history", "deleted", n, "older_than", prune)
	}

	conversions, err := repo.ListConversions(ctx, int32(limit))
	if err != nil {
		return fmt.Errorf("listing history: %w", err)
	}
	for _, c := range conversions {
		fmt.Fprintf(a.stdout, "%s  %-13s  %-9s  %s → %s\n",
			c.CreatedAt.Local().Format("2006-01-02 15:04"),
			c.Direction,
			c.Scope,
			lo.Ellipsis(oneLine(c.Source), 40),
			lo.Ellipsis(oneLine(c.Result), 40),
		)
	}
	return nil
}

var newlines = strings.NewReplacer("\r\n", " ⏎ ", "\n", " ⏎ ", "\t", " ")

func oneLine(s string) string {
	return newlines.Replace(s)
}

func (a *app) schemes(_ context.Context, _ []string) error {
	for _, s := range transliteration.Schemes() {
		kind := "alphabet"
		if s.Abugida() {
			kind = "abugida"
		}
		fmt.Fprintf(a.stdout, "%-11s %-9s aliases: %s\n", s.Name(), kind, strings.Join(s.Aliases(), ", "))
	}
	return nil
}
