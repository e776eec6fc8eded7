package transliteration

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// ErrUnknownScheme is returned by Lookup for names no scheme answers to.
var ErrUnknownScheme = errors.New("unknown scheme")

// entry lists the symbols a scheme writes a sound with. The first symbol is
// canonical and is the one the renderer emits; the rest are accepted aliases.
type entry struct {
	sound   Sound
	symbols []string
}

// cluster is an alias for a run of consonants, e.g. ITRANS "x" for k+Sh.
type cluster struct {
	symbol string
	sounds []Sound
}

type schemeDef struct {
	name       string
	aliases    []string
	abugida    bool
	virama     string
	separator  string
	vowels     []entry
	marks      []entry
	consonants []entry
	modifiers  []entry
	clusters   []cluster
}

type symbol struct {
	kind   Kind
	sounds []Sound
}

// Scheme is an immutable symbol table for one script. Schemes are built once
// at package init and are safe for concurrent use.
type Scheme struct {
	name    string
	aliases []string

	// abugida schemes give consonants an inherent vowel and join clusters
	// with a virama.
	abugida   bool
	virama    string
	separator string

	tokens map[string]symbol
	maxKey int

	consonants map[Sound]string
	vowels     map[Sound]string
	marks      map[Sound]string
	modifiers  map[Sound]string
}

func newScheme(def schemeDef) *Scheme {
	s := &Scheme{
		name:      def.name,
		aliases:   def.aliases,
		abugida:   def.abugida,
		virama:    def.virama,
		separator: def.separator,
		tokens:    make(map[string]symbol),
	}

	canonical := func(entries []entry) map[Sound]string {
		return lo.SliceToMap(entries, func(e entry) (Sound, string) {
			return e.sound, e.symbols[0]
		})
	}
	s.consonants = canonical(def.consonants)
	s.vowels = canonical(def.vowels)
	s.marks = canonical(def.marks)
	s.modifiers = canonical(def.modifiers)

	add := func(kind Kind, entries []entry) {
		for _, e := range entries {
			for _, sym := range lo.Uniq(e.symbols) {
				s.tokens[sym] = symbol{kind: kind, sounds: []Sound{e.sound}}
			}
		}
	}
	add(KindConsonant, def.consonants)
	add(KindVowel, def.vowels)
	add(KindVowelMark, def.marks)
	add(KindModifier, def.modifiers)
	for _, c := range def.clusters {
		s.tokens[c.symbol] = symbol{kind: KindConsonant, sounds: c.sounds}
	}
	if def.virama != "" {
		s.tokens[def.virama] = symbol{kind: kindVirama}
	}
	if def.separator != "" {
		s.tokens[def.separator] = symbol{kind: kindSeparator}
	}

	s.maxKey = lo.Max(lo.Map(lo.Keys(s.tokens), func(k string, _ int) int {
		return len(k)
	}))
	return s
}

// Name returns the scheme's canonical name.
func (s *Scheme) Name() string { return s.name }

func (s *Scheme) String() string { return s.name }

// Aliases returns the extra names Lookup accepts for the scheme.
func (s *Scheme) Aliases() []string { return append([]string(nil), s.aliases...) }

// Abugida reports whether consonants carry an inherent vowel.
func (s *Scheme) Abugida() bool { return s.abugida }

// match returns the longest table symbol that prefixes text and its length in
// bytes. A zero length means nothing matched.
func (s *Scheme) match(text string) (symbol, int) {
	for n := min(len(text), s.maxKey); n > 0; n-- {
		if sym, ok := s.tokens[text[:n]]; ok {
			return sym, n
		}
	}
	return symbol{}, 0
}

func (s *Scheme) render(p Phoneme) (string, bool) {
	var table map[Sound]string
	switch p.Kind {
	case KindConsonant:
		table = s.consonants
	case KindVowel:
		table = s.vowels
	case KindVowelMark:
		table = s.marks
	case KindModifier:
		table = s.modifiers
	default:
		return p.Literal, false
	}
	sym, ok := table[p.Sound]
	if !ok {
		return p.Literal, false
	}
	return sym, true
}

var (
	ITRANS     = newScheme(itransDef)
	Devanagari = newScheme(devanagariDef)
)

var registry = []*Scheme{ITRANS, Devanagari}

// Schemes lists every supported scheme.
func Schemes() []*Scheme {
	return append([]*Scheme(nil), registry...)
}

// Lookup resolves a scheme by name or alias, case-insensitively.
func Lookup(name string) (*Scheme, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, s := range registry {
		if key == strings.ToLower(s.name) || lo.Contains(s.aliases, key) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, name)
}

// Detect guesses the scheme of text: Devanagari if any rune falls in the
// Devanagari block, ITRANS otherwise.
func Detect(text string) *Scheme {
	for _, r := range text {
		if unicode.Is(unicode.Devanagari, r) {
			return Devanagari
		}
	}
	return ITRANS
}
