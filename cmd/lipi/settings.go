package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/editor"
)

// loadConfig reads the profile's saved settings, falling back to defaults
// when the profile has never been saved.
func loadConfig(ctx context.Context, repo db.Repository, profile string, defaults editor.Config) (editor.Config, error) {
	s, err := repo.GetSettings(ctx, profile)
	if db.IsNoRows(err) {
		return defaults, nil
	}
	if err != nil {
		return editor.Config{}, fmt.Errorf("loading settings for %s: %w", profile, err)
	}
	return configFromSettings(s)
}

func configFromSettings(s db.Settings) (editor.Config, error) {
	dir, err := editor.ParseDirection(s.Direction)
	if err != nil {
		return editor.Config{}, fmt.Errorf("stored settings for %s: %w", s.Profile, err)
	}
	mode, err := editor.ParseApplyMode(s.ApplyMode)
	if err != nil {
		return editor.Config{}, fmt.Errorf("stored settings for %s: %w", s.Profile, err)
	}
	return editor.Config{Direction: dir, ApplyMode: mode, PreviewBeforeApply: s.PreviewBeforeApply}, nil
}

func saveConfig(ctx context.Context, repo db.Repository, profile string, cfg editor.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	_, err := repo.SaveSettings(ctx, db.SaveSettingsParams{
		Profile:            profile,
		Direction:          string(cfg.Direction),
		ApplyMode:          string(cfg.ApplyMode),
		PreviewBeforeApply: cfg.PreviewBeforeApply,
	})
	if err != nil {
		return fmt.Errorf("saving settings for %s: %w", profile, err)
	}
	return nil
}

// settingsUpdate holds the --set-* flags; empty fields are left alone.
type settingsUpdate struct {
	direction string
	mode      string
	preview   string
}

func (u settingsUpdate) empty() bool {
	return u.direction == "" && u.mode == "" && u.preview == ""
}

func (u settingsUpdate) apply(cfg editor.Config) (editor.Config, error) {
	if u.direction != "" {
		dir, err := editor.ParseDirection(u.direction)
		if err != nil {
			return cfg, fmt.Errorf("--set-direction: %w", err)
		}
		cfg.Direction = dir
	}
	if u.mode != "" {
		mode, err := editor.ParseApplyMode(u.mode)
		if err != nil {
			return cfg, fmt.Errorf("--set-mode: %w", err)
		}
		cfg.ApplyMode = mode
	}
	if u.preview != "" {
		on, err := strconv.ParseBool(u.preview)
		if err != nil {
			return cfg, fmt.Errorf("--set-preview: %w", err)
		}
		cfg.PreviewBeforeApply = on
	}
	return cfg, nil
}

func (a *app) settings(ctx context.Context, u settingsUpdate) error {
	repo, cfg, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	next := cfg
	switch {
	case !u.empty():
		if next, err = u.apply(cfg); err != nil {
			return err
		}
	case isTerminal(a.stdin) && isTerminal(a.stdout):
		var ok bool
		next, ok, err = a.editSettings(ctx, *a.profile, cfg)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	default:
		a.printSettings(cfg)
		return nil
	}

	if err := saveConfig(ctx, repo, *a.profile, next); err != nil {
		return err
	}
	a.log.Info("saved settings", "profile", *a.profile, "direction", next.Direction, "mode", next.ApplyMode)
	a.printSettings(next)
	return nil
}

func (a *app) printSettings(cfg editor.Config) {
	fmt.Fprintf(a.stdout, "profile:   %s\n", *a.profile)
	fmt.Fprintf(a.stdout, "direction: %s\n", cfg.Direction.Label())
	fmt.Fprintf(a.stdout, "mode:      %s\n", cfg.ApplyMode)
	fmt.Fprintf(a.stdout, "preview:   %t\n", cfg.PreviewBeforeApply)
}

func (a *app) toggle(ctx context.Context, _ []string) error {
	repo, cfg, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	cmds := a.commands()
	next := cmds.ToggleDirection(cfg)
	if err := saveConfig(ctx, repo, *a.profile, next); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, cmds.Status(next))
	return nil
}

func (a *app) status(ctx context.Context, _ []string) error {
	repo, cfg, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	fmt.Fprintln(a.stdout, a.commands().Status(cfg))
	return nil
}
