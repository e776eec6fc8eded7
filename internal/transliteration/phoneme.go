package transliteration

import "strings"

// Kind classifies a Phoneme.
type Kind uint8

const (
	KindOther Kind = iota
	KindConsonant
	KindVowel
	KindVowelMark
	KindModifier

	// Table-only kinds. They never appear in a Sequence.
	kindVirama
	kindSeparator
)

func (k Kind) String() string {
	switch k {
	case KindConsonant:
		return "consonant"
	case KindVowel:
		return "vowel"
	case KindVowelMark:
		return "vowel-mark"
	case KindModifier:
		return "modifier"
	case kindVirama:
		return "virama"
	case kindSeparator:
		return "separator"
	default:
		return "other"
	}
}

// Sound identifies a phonetic unit independently of any script.
type Sound uint8

const (
	NoSound Sound = iota

	// Vowels
	VowelA
	VowelAA
	VowelI
	VowelII
	VowelU
	VowelUU
	VowelR  // vocalic r
	VowelRR // long vocalic r
	VowelL  // vocalic l
	VowelLL // long vocalic l
	VowelE
	VowelAI
	VowelO
	VowelAU

	// Consonants
	ConsonantKa
	ConsonantKha
	ConsonantGa
	ConsonantGha
	ConsonantNga
	ConsonantCa
	ConsonantCha
	ConsonantJa
	ConsonantJha
	ConsonantNya
	ConsonantTta
	ConsonantTtha
	ConsonantDda
	ConsonantDdha
	ConsonantNna
	ConsonantTa
	ConsonantTha
	ConsonantDa
	ConsonantDha
	ConsonantNa
	ConsonantPa
	ConsonantPha
	ConsonantBa
	ConsonantBha
	ConsonantMa
	ConsonantYa
	ConsonantRa
	ConsonantLa
	ConsonantVa
	ConsonantSha
	ConsonantSsa
	ConsonantSa
	ConsonantHa
	ConsonantLla

	// Nukta consonants
	ConsonantQa
	ConsonantKhha
	ConsonantGhha
	ConsonantZa
	ConsonantRra
	ConsonantRha
	ConsonantFa
	ConsonantYya

	// Modifiers and signs
	ModAnusvara
	ModVisarga
	ModChandrabindu
	ModAvagraha
	ModOm
	ModDanda
	ModDoubleDanda
)

// Phoneme is one unit of a tokenized text. Literal holds the source text the
// phoneme was read from; Other phonemes render as their Literal verbatim and
// every other kind falls back to it when a scheme has no symbol for Sound.
type Phoneme struct {
	Kind    Kind
	Sound   Sound
	Literal string
}

// Other wraps raw text that no scheme transliterates.
func Other(literal string) Phoneme {
	return Phoneme{Kind: KindOther, Literal: literal}
}

func (p Phoneme) vowelClass() bool {
	return p.Kind == KindVowel || p.Kind == KindVowelMark
}

// Sequence is the scheme-independent form of one input text.
type Sequence []Phoneme

func (s Sequence) at(i int) Phoneme {
	if i < 0 || i >= len(s) {
		return Phoneme{}
	}
	return s[i]
}

func (s Sequence) endsWithConsonant() bool {
	return len(s) > 0 && s[len(s)-1].Kind == KindConsonant
}

// String is a debugging aid: kinds and literals joined by spaces.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, p := range s {
		parts[i] = p.Kind.String() + "(" + p.Literal + ")"
	}
	return strings.Join(parts, " ")
}
