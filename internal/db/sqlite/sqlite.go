package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/lipi/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// querier is the subset of *sql.DB and *sql.Tx the repository uses.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	sqlDB *sql.DB
	q     querier
}

// New opens (creating if needed) the SQLite database at dbPath. ":memory:"
// gives a private in-memory database.
func New(ctx context.Context, dbPath string) (*Repository, error) {
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if dbPath != ":memory:" {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			isNew = true
		}
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}
	// A single connection keeps :memory: databases shared and serializes writers.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if isNew {
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Repository{sqlDB: sqliteDB, q: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.sqlDB.Close()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{sqlDB: r.sqlDB, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Settings methods

func (r *Repository) GetSettings(ctx context.Context, profile string) (db.Settings, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT profile, direction, apply_mode, preview_before_apply, updated_at
		FROM settings
		WHERE profile = ?
	`, profile)
	return scanSettings(row)
}

func (r *Repository) SaveSettings(ctx context.Context, arg db.SaveSettingsParams) (db.Settings, error) {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO settings (profile, direction, apply_mode, preview_before_apply, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (profile) DO UPDATE SET
			direction = excluded.direction,
			apply_mode = excluded.apply_mode,
			preview_before_apply = excluded.preview_before_apply,
			updated_at = excluded.updated_at
	`, arg.Profile, arg.Direction, arg.ApplyMode, arg.PreviewBeforeApply, now())
	if err != nil {
		return db.Settings{}, err
	}
	return r.GetSettings(ctx, arg.Profile)
}

// Conversion methods

func (r *Repository) CreateConversion(ctx context.Context, arg db.CreateConversionParams) (db.Conversion, error) {
	result, err := r.q.ExecContext(ctx, `
		INSERT INTO conversions (profile, direction, scope, source, result, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, arg.Profile, arg.Direction, arg.Scope, arg.Source, arg.Result, now())
	if err != nil {
		return db.Conversion{}, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return db.Conversion{}, err
	}

	row := r.q.QueryRowContext(ctx, `
		SELECT id, profile, direction, scope, source, result, created_at
		FROM conversions
		WHERE id = ?
	`, id)
	return scanConversion(row)
}

func (r *Repository) ListConversions(ctx context.Context, limit int32) ([]db.Conversion, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, profile, direction, scope, source, result, created_at
		FROM conversions
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanConversions(rows)
}

func (r *Repository) DeleteConversions(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.q.ExecContext(ctx, `
		DELETE FROM conversions WHERE created_at < ?
	`, before.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Helper functions

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func scanSettings(row *sql.Row) (db.Settings, error) {
	var s db.Settings
	var updatedAtStr string
	err := row.Scan(&s.Profile, &s.Direction, &s.ApplyMode, &s.PreviewBeforeApply, &updatedAtStr)
	if err == sql.ErrNoRows {
		return db.Settings{}, db.ErrNoRows
	}
	if err != nil {
		return db.Settings{}, err
	}
	s.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return s, nil
}

func scanConversion(row *sql.Row) (db.Conversion, error) {
	var c db.Conversion
	var createdAtStr string
	err := row.Scan(&c.ID, &c.Profile, &c.Direction, &c.Scope, &c.Source, &c.Result, &createdAtStr)
	if err == sql.ErrNoRows {
		return db.Conversion{}, db.ErrNoRows
	}
	if err != nil {
		return db.Conversion{}, err
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
	return c, nil
}

func scanConversions(rows *sql.Rows) ([]db.Conversion, error) {
	var conversions []db.Conversion
	for rows.Next() {
		var c db.Conversion
		var createdAtStr string
		if err := rows.Scan(&c.ID, &c.Profile, &c.Direction, &c.Scope, &c.Source, &c.Result, &createdAtStr); err != nil {
			return nil, err
		}
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAtStr)
		conversions = append(conversions, c)
	}
	return conversions, rows.Err()
}
