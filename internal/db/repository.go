package db

import (
	"context"
	"time"
)

// DefaultProfile is the settings row used when no profile is named.
const DefaultProfile = "default"

// Settings is the persisted editor configuration for one profile. Direction
// and ApplyMode hold the editor package's string forms.
type Settings struct {
	Profile            string
	Direction          string
	ApplyMode          string
	PreviewBeforeApply bool
	UpdatedAt          time.Time
}

type SaveSettingsParams struct {
	Profile            string
	Direction          string
	ApplyMode          string
	PreviewBeforeApply bool
}

// Conversion is one applied conversion, kept for `lipi history`.
type Conversion struct {
	ID        int64
	Profile   string
	Direction string
	Scope     string
	Source    string
	Result    string
	CreatedAt time.Time
}

type CreateConversionParams struct {
	Profile   string
	Direction string
	Scope     string
	Source    string
	Result    string
}

// Repository defines the interface for database operations
type Repository interface {
	// Settings
	GetSettings(ctx context.Context, profile string) (Settings, error)
	SaveSettings(ctx context.Context, arg SaveSettingsParams) (Settings, error)

	// Conversions
	CreateConversion(ctx context.Context, arg CreateConversionParams) (Conversion, error)
	ListConversions(ctx context.Context, limit int32) ([]Conversion, error)
	DeleteConversions(ctx context.Context, before time.Time) (int64, error)

	WithTx(ctx context.Context, fn func(repo Repository) error) error
	Close() error
}
