package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jusunglee/lipi/internal/db"
	"github.com/jusunglee/lipi/internal/editor"
	"github.com/jusunglee/lipi/internal/tui"
	"golang.org/x/sync/errgroup"
)

type convertOptions struct {
	to        string
	selection string
	write     bool
	jobs      int
}

// parseSelection parses "start:end" rune offsets. An empty string means no
// selection.
func parseSelection(s string) (start, end int, ok bool, err error) {
	if s == "" {
		return 0, 0, false, nil
	}
	first, last, found := strings.Cut(s, ":")
	if !found {
		return 0, 0, false, fmt.Errorf("selection %q: want start:end", s)
	}
	if start, err = strconv.Atoi(first); err != nil {
		return 0, 0, false, fmt.Errorf("selection start %q: %w", first, err)
	}
	if end, err = strconv.Atoi(last); err != nil {
		return 0, 0, false, fmt.Errorf("selection end %q: %w", last, err)
	}
	return start, end, true, nil
}

// fileResult is one converted file, held until every job finishes so output
// keeps argument order.
type fileResult struct {
	path    string
	output  string
	result  editor.Result
	applied bool
}

func (a *app) commands() *editor.Commands {
	return editor.NewCommands(a.log, tui.NewNotifier(a.stderr), a.previewer)
}

func (a *app) convert(ctx context.Context, args []string, opts convertOptions) error {
	repo, cfg, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	var fixed editor.Direction
	if opts.to != "" {
		if fixed, err = editor.ParseDirection(opts.to); err != nil {
			return fmt.Errorf("--to: %w", err)
		}
	}
	start, end, hasSel, err := parseSelection(opts.selection)
	if err != nil {
		return err
	}
	if hasSel && len(args) > 1 {
		return errors.New("--selection needs a single input")
	}

	run := func(ctx context.Context, text string) (string, editor.Result, bool, error) {
		buf := editor.NewBuffer(text)
		if hasSel {
			if err := buf.Select(start, end); err != nil {
				return "", editor.Result{}, false, err
			}
		}

		var (
			res editor.Result
			err error
		)
		switch {
		case fixed != "" && hasSel:
			res, err = a.commands().ConvertSelection(ctx, buf, cfg, fixed)
		case fixed != "":
			c := cfg
			c.Direction = fixed
			res, err = a.commands().ConvertSelectionOrDocument(ctx, buf, c)
		default:
			res, err = a.commands().ConvertSelectionOrDocument(ctx, buf, cfg)
		}
		if errors.Is(err, editor.ErrNoText) || errors.Is(err, editor.ErrPreviewDeclined) {
			a.log.DebugContext(ctx, "nothing applied", "reason", err)
			return buf.Value(), editor.Result{}, false, nil
		}
		if err != nil {
			return "", editor.Result{}, false, err
		}
		return buf.Value(), res, true, nil
	}

	if len(args) == 0 {
		data, err := io.ReadAll(a.stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		out, res, applied, err := run(ctx, string(data))
		if err != nil {
			return err
		}
		if _, err := io.WriteString(a.stdout, out); err != nil {
			return err
		}
		if !applied {
			return nil
		}
		return a.record(ctx, repo, []editor.Result{res})
	}

	jobs := max(opts.jobs, 1)
	if cfg.PreviewBeforeApply {
		// One modal at a time.
		jobs = 1
	}

	results := make([]fileResult, len(args))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			out, res, applied, err := run(gctx, string(data))
			if err != nil {
				return fmt.Errorf("converting %s: %w", path, err)
			}
			if opts.write && applied {
				if err := os.WriteFile(path, []byte(out), info.Mode().Perm()); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				a.log.InfoContext(gctx, "rewrote file", "path", path, "direction", res.Direction)
			}
			results[i] = fileResult{path: path, output: out, result: res, applied: applied}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var applied []editor.Result
	for _, r := range results {
		if !opts.write {
			if len(results) > 1 {
				fmt.Fprintf(a.stdout, "==> %s <==\n", r.path)
			}
			io.WriteString(a.stdout, r.output)
			if len(results) > 1 && !strings.HasSuffix(r.output, "\n") {
				fmt.Fprintln(a.stdout)
			}
		}
		if r.applied {
			applied = append(applied, r.result)
		}
	}
	return a.record(ctx, repo, applied)
}

// record stores applied conversions in one transaction.
func (a *app) record(ctx context.Context, repo db.Repository, results []editor.Result) error {
	if len(results) == 0 {
		return nil
	}
	return repo.WithTx(ctx, func(tx db.Repository) error {
		for _, r := range results {
			if _, err := tx.CreateConversion(ctx, db.CreateConversionParams{
				Profile:   *a.profile,
				Direction: string(r.Direction),
				Scope:     string(r.Scope),
				Source:    r.Source,
				Result:    r.Converted,
			}); err != nil {
				return fmt.Errorf("recording conversion: %w", err)
			}
		}
		return nil
	})
}

func (a *app) previewCmd(ctx context.Context, args []string, selection string, write bool) error {
	if len(args) > 1 {
		return errors.New("preview takes at most one file")
	}
	repo, cfg, err := a.session(ctx)
	if err != nil {
		return err
	}
	defer repo.Close()

	var data []byte
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(a.stdin)
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	buf := editor.NewBuffer(string(data))
	start, end, hasSel, err := parseSelection(selection)
	if err != nil {
		return err
	}
	if !hasSel {
		start, end = 0, len([]rune(string(data)))
	}
	if err := buf.Select(start, end); err != nil {
		return err
	}

	res, err := a.commands().Preview(ctx, buf, cfg)
	if errors.Is(err, editor.ErrNoText) || errors.Is(err, editor.ErrPreviewDeclined) {
		return nil
	}
	if err != nil {
		return err
	}

	if write && len(args) == 1 {
		info, err := os.Stat(args[0])
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], []byte(buf.Value()), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", args[0], err)
		}
	} else {
		io.WriteString(a.stdout, buf.Value())
	}
	return a.record(ctx, repo, []editor.Result{res})
}
