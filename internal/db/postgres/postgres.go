package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/lipi/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New connects to databaseURL and applies the schema.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// A panicking fn would otherwise leak the connection held by tx.
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&Repository{pool: r.pool, q: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Settings methods

func (r *Repository) GetSettings(ctx context.Context, profile string) (db.Settings, error) {
	var s db.Settings
	err := r.q.QueryRow(ctx, `
		SELECT profile, direction, apply_mode, preview_before_apply, updated_at
		FROM settings
		WHERE profile = $1
	`, profile).Scan(&s.Profile, &s.Direction, &s.ApplyMode, &s.PreviewBeforeApply, &s.UpdatedAt)
	if err != nil {
		return db.Settings{}, noRows(err)
	}
	return s, nil
}

func (r *Repository) SaveSettings(ctx context.Context, arg db.SaveSettingsParams) (db.Settings, error) {
	var s db.Settings
	err := r.q.QueryRow(ctx, `
		INSERT INTO settings (profile, direction, apply_mode, preview_before_apply, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (profile) DO UPDATE SET
			direction = EXCLUDED.direction,
			apply_mode = EXCLUDED.apply_mode,
			preview_before_apply = EXCLUDED.preview_before_apply,
			updated_at = EXCLUDED.updated_at
		RETURNING profile, direction, apply_mode, preview_before_apply, updated_at
	`, arg.Profile, arg.Direction, arg.ApplyMode, arg.PreviewBeforeApply).
		Scan(&s.Profile, &s.Direction, &s.ApplyMode, &s.PreviewBeforeApply, &s.UpdatedAt)
	if err != nil {
		return db.Settings{}, noRows(err)
	}
	return s, nil
}

// Conversion methods

func (r *Repository) CreateConversion(ctx context.Context, arg db.CreateConversionParams) (db.Conversion, error) {
	var c db.Conversion
	err := r.q.QueryRow(ctx, `
		INSERT INTO conversions (profile, direction, scope, source, result)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, profile, direction, scope, source, result, created_at
	`, arg.Profile, arg.Direction, arg.Scope, arg.Source, arg.Result).
		Scan(&c.ID, &c.Profile, &c.Direction, &c.Scope, &c.Source, &c.Result, &c.CreatedAt)
	if err != nil {
		return db.Conversion{}, noRows(err)
	}
	return c, nil
}

func (r *Repository) ListConversions(ctx context.Context, limit int32) ([]db.Conversion, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, profile, direction, scope, source, result, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (db.Conversion, error) {
		var c db.Conversion
		err := row.Scan(&c.ID, &c.Profile, &c.Direction, &c.Scope, &c.Source, &c.Result, &c.CreatedAt)
		return c, err
	})
}

func (r *Repository) DeleteConversions(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM conversions WHERE created_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func noRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return db.ErrNoRows
	}
	return err
}
