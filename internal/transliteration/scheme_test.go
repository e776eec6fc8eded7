package transliteration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name string
		want *Scheme
	}{
		{"ITRANS", ITRANS},
		{"itrans", ITRANS},
		{" roman ", ITRANS},
		{"Devanagari", Devanagari},
		{"DEVANAGARI", Devanagari},
		{"dev", Devanagari},
		{"hindi", Devanagari},
	}
	for _, tt := range tests {
		got, err := Lookup(tt.name)
		require.NoError(t, err, tt.name)
		assert.Same(t, tt.want, got, tt.name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("tamil")
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestDetect(t *testing.T) {
	assert.Same(t, Devanagari, Detect("see राम here"))
	assert.Same(t, Devanagari, Detect("१२"))
	assert.Same(t, ITRANS, Detect("rAma"))
	assert.Same(t, ITRANS, Detect(""))
}

func TestSchemesAreIndependentCopies(t *testing.T) {
	list := Schemes()
	require.Len(t, list, 2)
	list[0] = nil
	assert.NotNil(t, Schemes()[0])
}

func TestSchemeTablesComplete(t *testing.T) {
	// Every sound one scheme can read, the other can write.
	for _, from := range Schemes() {
		for sym, entry := range from.tokens {
			if entry.kind == kindVirama || entry.kind == kindSeparator {
				continue
			}
			for _, sound := range entry.sounds {
				for _, to := range Schemes() {
					kind := entry.kind
					if kind == KindVowelMark {
						kind = KindVowel
					}
					_, ok := to.render(Phoneme{Kind: kind, Sound: sound})
					assert.True(t, ok, "%s symbol %q has no %s rendering", from, sym, to)
				}
			}
		}
	}
}

func TestSchemeAccessors(t *testing.T) {
	assert.True(t, Devanagari.Abugida())
	assert.False(t, ITRANS.Abugida())
	assert.Contains(t, Devanagari.Aliases(), "sanskrit")

	aliases := ITRANS.Aliases()
	aliases[0] = "changed"
	assert.NotEqual(t, "changed", ITRANS.Aliases()[0])
}
