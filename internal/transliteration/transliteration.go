// Package transliteration converts text between ITRANS and Devanagari.
//
// Text is first tokenized into a scheme-independent Sequence of phonemes and
// then rendered in the target scheme. Conversion never fails: anything a
// scheme does not know is carried through verbatim.
package transliteration

// Transliterate converts text written in from into the script of to.
func Transliterate(text string, from, to *Scheme) string {
	if text == "" {
		return ""
	}
	return Render(Tokenize(text, from), to)
}
