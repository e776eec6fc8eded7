package transliteration

import "strings"

// Render writes seq in the orthography of s. Rendering is a pure function of
// its arguments.
func Render(seq Sequence, s *Scheme) string {
	parts := make([]string, 0, len(seq)+len(seq)/2)

	for i, p := range seq {
		switch p.Kind {
		case KindConsonant:
			sym, _ := s.render(p)
			parts = append(parts, sym)
			if s.abugida && !seq.at(i+1).vowelClass() {
				parts = append(parts, s.virama)
			}

		case KindVowel, KindVowelMark:
			if s.abugida && seq.at(i-1).Kind == KindConsonant {
				if p.Sound == VowelA {
					continue
				}
				sym, _ := s.render(Phoneme{Kind: KindVowelMark, Sound: p.Sound, Literal: p.Literal})
				parts = append(parts, sym)
				continue
			}
			sym, _ := s.render(Phoneme{Kind: KindVowel, Sound: p.Sound, Literal: p.Literal})
			parts = append(parts, sym)

		default:
			sym, _ := s.render(p)
			parts = append(parts, sym)
		}
	}
	return s.join(parts)
}

// join concatenates rendered symbols. Schemes with a null separator get one
// wherever two neighbours would otherwise read back as a longer symbol, e.g.
// ITRANS "k"+"h" is written "k{}h" so it does not come back as "kh".
func (s *Scheme) join(parts []string) string {
	if s.separator == "" {
		return strings.Join(parts, "")
	}

	var b strings.Builder
	for i, part := range parts {
		b.WriteString(part)
		if i+1 < len(parts) && s.crosses(part, parts[i+1:]) {
			b.WriteString(s.separator)
		}
	}
	return b.String()
}

func (s *Scheme) crosses(part string, rest []string) bool {
	if part == "" {
		return false
	}
	var b strings.Builder
	b.WriteString(part)
	for _, r := range rest {
		if b.Len() >= len(part)+s.maxKey {
			break
		}
		b.WriteString(r)
	}
	_, n := s.match(b.String())
	return n > len(part)
}
