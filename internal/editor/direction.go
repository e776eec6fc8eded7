package editor

import (
	"fmt"
	"strings"

	"github.com/jusunglee/lipi/internal/transliteration"
)

// Direction is the conversion direction a command uses.
type Direction string

const (
	ItransToDev Direction = "ITRANS_TO_DEV"
	DevToItrans Direction = "DEV_TO_ITRANS"
)

// Directions lists every direction in settings-form order.
var Directions = []Direction{ItransToDev, DevToItrans}

// ParseDirection accepts the stored form case-insensitively, with '-' in
// place of '_' allowed, plus the short forms "i2d" and "d2i".
func ParseDirection(s string) (Direction, error) {
	switch strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_") {
	case string(ItransToDev), "I2D":
		return ItransToDev, nil
	case string(DevToItrans), "D2I":
		return DevToItrans, nil
	}
	return "", fmt.Errorf("unknown direction %q (want %s or %s)", s, ItransToDev, DevToItrans)
}

// Schemes returns the source and target scheme.
func (d Direction) Schemes() (from, to *transliteration.Scheme) {
	if d == DevToItrans {
		return transliteration.Devanagari, transliteration.ITRANS
	}
	return transliteration.ITRANS, transliteration.Devanagari
}

// Convert transliterates text in this direction.
func (d Direction) Convert(text string) string {
	from, to := d.Schemes()
	return transliteration.Transliterate(text, from, to)
}

func (d Direction) Toggle() Direction {
	if d == ItransToDev {
		return DevToItrans
	}
	return ItransToDev
}

// Icon is the status indicator text.
func (d Direction) Icon() string {
	if d == DevToItrans {
		return "🕉→🆎"
	}
	return "🆎→🕉"
}

// Label is the human-readable choice shown in settings forms.
func (d Direction) Label() string {
	if d == DevToItrans {
		return "🕉 → 🆎 Devanagari → ITRANS"
	}
	return "🆎 → 🕉 ITRANS → Devanagari"
}

func (d Direction) String() string {
	return string(d)
}
