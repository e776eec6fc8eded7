package editor

import (
	"errors"
	"fmt"
	"strings"
)

// ApplyMode decides how converted text lands in the editor.
type ApplyMode string

const (
	Replace ApplyMode = "replace"
	Append  ApplyMode = "append"
)

func ParseApplyMode(s string) (ApplyMode, error) {
	switch ApplyMode(strings.ToLower(strings.TrimSpace(s))) {
	case Replace:
		return Replace, nil
	case Append:
		return Append, nil
	}
	return "", fmt.Errorf("unknown apply mode %q (want %s or %s)", s, Replace, Append)
}

// Scope is what a conversion read from the editor.
type Scope string

const (
	ScopeSelection Scope = "selection"
	ScopeDocument  Scope = "document"
)

// Config is the product configuration. Hosts load it from their own storage
// and pass it to every command.
type Config struct {
	Direction          Direction
	ApplyMode          ApplyMode
	PreviewBeforeApply bool
}

func DefaultConfig() Config {
	return Config{
		Direction: ItransToDev,
		ApplyMode: Append,
	}
}

func (c Config) Validate() error {
	var errs []error
	if _, err := ParseDirection(string(c.Direction)); err != nil {
		errs = append(errs, err)
	}
	if _, err := ParseApplyMode(string(c.ApplyMode)); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Apply combines the original and converted text. Append keeps the original:
// a selection becomes "original (converted)", a document gets the conversion
// after a horizontal rule.
func Apply(original, converted string, mode ApplyMode, scope Scope) string {
	if mode != Append {
		return converted
	}
	if scope == ScopeDocument {
		return original + "\n\n---\n\n" + converted
	}
	return original + " (" + converted + ")"
}
