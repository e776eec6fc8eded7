package transliteration

import "unicode/utf8"

// Tokenize splits text into phonemes using the scheme's symbol table, longest
// match first. Runes the table does not know become Other phonemes in place,
// so every byte of text is accounted for in the result.
func Tokenize(text string, s *Scheme) Sequence {
	seq := make(Sequence, 0, utf8.RuneCountInString(text))

	for i := 0; i < len(text); {
		sym, n := s.match(text[i:])
		if n == 0 {
			_, size := utf8.DecodeRuneInString(text[i:])
			seq = append(seq, Other(text[i:i+size]))
			i += size
			continue
		}
		literal := text[i : i+n]
		i += n

		switch sym.kind {
		case kindSeparator:
		case kindVirama:
			// A virama with no consonant before it has nothing to suppress.
			seq = append(seq, Other(literal))
		case KindConsonant:
			for _, sound := range sym.sounds {
				seq = append(seq, Phoneme{Kind: KindConsonant, Sound: sound, Literal: literal})
			}
			if s.abugida {
				var mark Phoneme
				mark, i = s.vowelAfterConsonant(text, i)
				if mark.Kind != KindOther {
					seq = append(seq, mark)
				}
			}
		case KindVowel:
			kind := KindVowel
			if !s.abugida && seq.endsWithConsonant() {
				kind = KindVowelMark
			}
			seq = append(seq, Phoneme{Kind: kind, Sound: sym.sounds[0], Literal: literal})
		default:
			seq = append(seq, Phoneme{Kind: sym.kind, Sound: sym.sounds[0], Literal: literal})
		}
	}
	return seq
}

// vowelAfterConsonant looks exactly one symbol past a consonant in an abugida
// and returns the vowel the consonant carries along with the new read
// position. A virama yields no vowel, a dependent mark yields that mark, and
// anything else yields the inherent vowel without consuming input.
func (s *Scheme) vowelAfterConsonant(text string, i int) (Phoneme, int) {
	next, n := s.match(text[i:])
	switch {
	case n > 0 && next.kind == kindVirama:
		return Phoneme{}, i + n
	case n > 0 && next.kind == KindVowelMark:
		return Phoneme{Kind: KindVowelMark, Sound: next.sounds[0], Literal: text[i : i+n]}, i + n
	default:
		return Phoneme{Kind: KindVowelMark, Sound: VowelA}, i
	}
}
