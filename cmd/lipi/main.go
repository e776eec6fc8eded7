// lipi converts text between ITRANS and Devanagari.
//
// Settings are kept per profile in SQLite (default) or PostgreSQL, and every
// applied conversion is recorded for `lipi history`.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/db/postgres"
	"github.com/jusunglee/lipi/internal/db/sqlite"
	"github.com/jusunglee/lipi/internal/editor"
	"github.com/jusunglee/lipi/internal/envsetup"
	"github.com/jusunglee/lipi/internal/logger"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
)

func main() {
	if err := mainE(); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func mainE() error {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logger.Init()
	a := newApp(log, os.Stdin, os.Stdout, os.Stderr)
	return a.run(ctx, os.Args[1:])
}

// app carries the process streams and the flag values every subcommand
// shares.
type app struct {
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// Interactive surfaces. Tests replace these.
	previewer    editor.Previewer
	editSettings settingsEditor
	live         livePad
	setup        func(path string) (bool, error)

	databaseURL *string
	profile     *string
	direction   *string
	mode        *string
	preview     *bool
}

func newApp(log *slog.Logger, stdin io.Reader, stdout, stderr io.Writer) *app {
	return &app{
		log:          log,
		stdin:        stdin,
		stdout:       stdout,
		stderr:       stderr,
		previewer:    ttyPreviewer(stderr),
		editSettings: ttySettingsEditor(stderr),
		live:         ttyLivePad(stderr),
		setup:        envsetup.Run,
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	root := a.command()
	err := root.ParseAndRun(ctx, args, ff.WithEnvVarPrefix("LIPI"))
	switch {
	case errors.Is(err, ff.ErrHelp), errors.Is(err, ff.ErrNoExec):
		fmt.Fprintf(a.stderr, "%s\n", ffhelp.Command(selected(root)))
		return nil
	case err != nil && root.GetSelected() == nil:
		fmt.Fprintf(a.stderr, "%s\n", ffhelp.Command(root))
	}
	return err
}

func selected(root *ff.Command) *ff.Command {
	if cmd := root.GetSelected(); cmd != nil {
		return cmd
	}
	return root
}

func (a *app) command() *ff.Command {
	rootFlags := ff.NewFlagSet("lipi")
	a.databaseURL = rootFlags.StringLong("database-url", envsetup.DefaultDatabaseURL, "settings database (sqlite:// path or postgres:// URL)")
	a.profile = rootFlags.StringLong("profile", db.DefaultProfile, "settings profile")
	a.direction = rootFlags.StringLong("direction", string(editor.ItransToDev), "default direction for a profile with no saved settings")
	a.mode = rootFlags.StringLong("mode", string(editor.Append), "default apply mode (append|replace) for a profile with no saved settings")
	a.preview = rootFlags.BoolLong("preview", "default preview-before-apply for a profile with no saved settings")

	convertFlags := ff.NewFlagSet("convert").SetParent(rootFlags)
	convertTo := convertFlags.StringLong("to", "", "fixed direction (ITRANS_TO_DEV|DEV_TO_ITRANS|i2d|d2i) instead of the profile's")
	convertSel := convertFlags.StringLong("selection", "", "convert only runes start:end")
	convertWrite := convertFlags.BoolLong("write", "rewrite files in place instead of printing")
	convertJobs := convertFlags.IntLong("jobs", runtime.NumCPU(), "files converted concurrently")

	previewFlags := ff.NewFlagSet("preview").SetParent(rootFlags)
	previewSel := previewFlags.StringLong("selection", "", "preview only runes start:end (default: everything)")
	previewWrite := previewFlags.BoolLong("write", "rewrite the file in place on confirm")

	settingsFlags := ff.NewFlagSet("settings").SetParent(rootFlags)
	setDirection := settingsFlags.StringLong("set-direction", "", "save a new default direction")
	setMode := settingsFlags.StringLong("set-mode", "", "save a new apply mode (append|replace)")
	setPreview := settingsFlags.StringLong("set-preview", "", "save preview-before-apply (true|false)")

	historyFlags := ff.NewFlagSet("history").SetParent(rootFlags)
	historyLimit := historyFlags.IntLong("limit", 20, "conversions to show")
	historyPrune := historyFlags.DurationLong("prune", 0, "delete conversions older than this before listing")

	setupFlags := ff.NewFlagSet("setup").SetParent(rootFlags)
	setupPath := setupFlags.StringLong("env-file", ".env", "file to write")
	setupForce := setupFlags.BoolLong("force", "overwrite an existing file")

	return &ff.Command{
		Name:      "lipi",
		Usage:     "lipi [FLAGS] <SUBCOMMAND>",
		ShortHelp: "convert text between ITRANS and Devanagari",
		Flags:     rootFlags,
		Subcommands: []*ff.Command{
			{
				Name:      "convert",
				Usage:     "lipi convert [FLAGS] [FILE...]",
				ShortHelp: "convert stdin or files in the profile's direction",
				Flags:     convertFlags,
				Exec: func(ctx context.Context, args []string) error {
					return a.convert(ctx, args, convertOptions{
						to:        *convertTo,
						selection: *convertSel,
						write:     *convertWrite,
						jobs:      *convertJobs,
					})
				},
			},
			{
				Name:      "preview",
				Usage:     "lipi preview [FLAGS] [FILE]",
				ShortHelp: "show original (converted) and apply on confirm",
				Flags:     previewFlags,
				Exec: func(ctx context.Context, args []string) error {
					return a.previewCmd(ctx, args, *previewSel, *previewWrite)
				},
			},
			{
				Name:      "toggle",
				ShortHelp: "flip the profile's default direction",
				Flags:     ff.NewFlagSet("toggle").SetParent(rootFlags),
				Exec:      a.toggle,
			},
			{
				Name:      "status",
				ShortHelp: "print the profile's direction indicator",
				Flags:     ff.NewFlagSet("status").SetParent(rootFlags),
				Exec:      a.status,
			},
			{
				Name:      "settings",
				Usage:     "lipi settings [FLAGS]",
				ShortHelp: "print, set, or interactively edit the profile's settings",
				Flags:     settingsFlags,
				Exec: func(ctx context.Context, _ []string) error {
					return a.settings(ctx, settingsUpdate{
						direction: *setDirection,
						mode:      *setMode,
						preview:   *setPreview,
					})
				},
			},
			{
				Name:      "history",
				ShortHelp: "list recent conversions",
				Flags:     historyFlags,
				Exec: func(ctx context.Context, _ []string) error {
					return a.history(ctx, *historyLimit, *historyPrune)
				},
			},
			{
				Name:      "live",
				ShortHelp: "interactive pad that converts as you type",
				Flags:     ff.NewFlagSet("live").SetParent(rootFlags),
				Exec:      a.livePad,
			},
			{
				Name:      "setup",
				ShortHelp: "write a .env file interactively",
				Flags:     setupFlags,
				Exec: func(_ context.Context, _ []string) error {
					return a.runSetup(*setupPath, *setupForce)
				},
			},
			{
				Name:      "schemes",
				ShortHelp: "list supported schemes and their aliases",
				Flags:     ff.NewFlagSet("schemes").SetParent(rootFlags),
				Exec:      a.schemes,
			},
		},
	}
}

// openRepository picks the backend from the URL scheme.
func openRepository(ctx context.Context, databaseURL string) (db.Repository, error) {
	if db.Backend(databaseURL) == "postgres" {
		repo, err := postgres.New(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("opening postgres: %w", err)
		}
		return repo, nil
	}

	repo, err := sqlite.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite: %w", err)
	}
	return repo, nil
}

// session opens the store and resolves the active profile's Config.
func (a *app) session(ctx context.Context) (db.Repository, editor.Config, error) {
	defaults, err := a.defaults()
	if err != nil {
		return nil, editor.Config{}, err
	}

	repo, err := openRepository(ctx, *a.databaseURL)
	if err != nil {
		return nil, editor.Config{}, err
	}

	cfg, err := loadConfig(ctx, repo, *a.profile, defaults)
	if err != nil {
		repo.Close()
		return nil, editor.Config{}, err
	}
	return repo, cfg, nil
}

// defaults builds the Config used when the profile has nothing saved.
func (a *app) defaults() (editor.Config, error) {
	dir, err := editor.ParseDirection(*a.direction)
	if err != nil {
		return editor.Config{}, fmt.Errorf("--direction: %w", err)
	}
	mode, err := editor.ParseApplyMode(*a.mode)
	if err != nil {
		return editor.Config{}, fmt.Errorf("--mode: %w", err)
	}
	return editor.Config{Direction: dir, ApplyMode: mode, PreviewBeforeApply: *a.preview}, nil
}

func (a *app) runSetup(path string, force bool) error {
	if !envsetup.NeedsSetup(path) && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	ok, err := a.setup(path)
	if err != nil {
		return fmt.Errorf("running setup wizard: %w", err)
	}
	if ok {
		a.log.Info("wrote configuration", "path", path)
	}
	return nil
}
