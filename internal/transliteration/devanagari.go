package transliteration

import "golang.org/x/text/unicode/norm"

const devanagariVirama = "\u094D" // ्

// nukta returns the spellings of a precomposed nukta letter: its canonical
// decomposition (base + U+093C) first, then the precomposed code point.
// U+0958..U+095F are composition exclusions, so NFC text always carries the
// decomposed form.
func nukta(precomposed rune) []string {
	return []string{norm.NFD.String(string(precomposed)), string(precomposed)}
}

var devanagariDef = schemeDef{
	name:    "Devanagari",
	aliases: []string{"devanagari", "dev", "deva", "hindi", "sanskrit"},
	abugida: true,
	virama:  devanagariVirama,
	vowels: []entry{
		{VowelA, []string{"\u0905"}},  // अ
		{VowelAA, []string{"\u0906"}}, // आ
		{VowelI, []string{"\u0907"}},  // इ
		{VowelII, []string{"\u0908"}}, // ई
		{VowelU, []string{"\u0909"}},  // उ
		{VowelUU, []string{"\u090A"}}, // ऊ
		{VowelR, []string{"\u090B"}},  // ऋ
		{VowelRR, []string{"\u0960"}}, // ॠ
		{VowelL, []string{"\u090C"}},  // ऌ
		{VowelLL, []string{"\u0961"}}, // ॡ
		{VowelE, []string{"\u090F"}},  // ए
		{VowelAI, []string{"\u0910"}}, // ऐ
		{VowelO, []string{"\u0913"}},  // ओ
		{VowelAU, []string{"\u0914"}}, // औ
	},
	// The inherent vowel has no mark; the renderer writes nothing for it.
	marks: []entry{
		{VowelAA, []string{"\u093E"}}, // ा
		{VowelI, []string{"\u093F"}},  // ि
		{VowelII, []string{"\u0940"}}, // ी
		{VowelU, []string{"\u0941"}},  // ु
		{VowelUU, []string{"\u0942"}}, // ू
		{VowelR, []string{"\u0943"}},  // ृ
		{VowelRR, []string{"\u0944"}}, // ॄ
		{VowelL, []string{"\u0962"}},  // ॢ
		{VowelLL, []string{"\u0963"}}, // ॣ
		{VowelE, []string{"\u0947"}},  // े
		{VowelAI, []string{"\u0948"}}, // ै
		{VowelO, []string{"\u094B"}},  // ो
		{VowelAU, []string{"\u094C"}}, // ौ
	},
	consonants: []entry{
		{ConsonantKa, []string{"\u0915"}},   // क
		{ConsonantKha, []string{"\u0916"}},  // ख
		{ConsonantGa, []string{"\u0917"}},   // ग
		{ConsonantGha, []string{"\u0918"}},  // घ
		{ConsonantNga, []string{"\u0919"}},  // ङ
		{ConsonantCa, []string{"\u091A"}},   // च
		{ConsonantCha, []string{"\u091B"}},  // छ
		{ConsonantJa, []string{"\u091C"}},   // ज
		{ConsonantJha, []string{"\u091D"}},  // झ
		{ConsonantNya, []string{"\u091E"}},  // ञ
		{ConsonantTta, []string{"\u091F"}},  // ट
		{ConsonantTtha, []string{"\u0920"}}, // ठ
		{ConsonantDda, []string{"\u0921"}},  // ड
		{ConsonantDdha, []string{"\u0922"}}, // ढ
		{ConsonantNna, []string{"\u0923"}},  // ण
		{ConsonantTa, []string{"\u0924"}},   // त
		{ConsonantTha, []string{"\u0925"}},  // थ
		{ConsonantDa, []string{"\u0926"}},   // द
		{ConsonantDha, []string{"\u0927"}},  // ध
		{ConsonantNa, []string{"\u0928"}},   // न
		{ConsonantPa, []string{"\u092A"}},   // प
		{ConsonantPha, []string{"\u092B"}},  // फ
		{ConsonantBa, []string{"\u092C"}},   // ब
		{ConsonantBha, []string{"\u092D"}},  // भ
		{ConsonantMa, []string{"\u092E"}},   // म
		{ConsonantYa, []string{"\u092F"}},   // य
		{ConsonantRa, []string{"\u0930"}},   // र
		{ConsonantLa, []string{"\u0932"}},   // ल
		{ConsonantVa, []string{"\u0935"}},   // व
		{ConsonantSha, []string{"\u0936"}},  // श
		{ConsonantSsa, []string{"\u0937"}},  // ष
		{ConsonantSa, []string{"\u0938"}},   // स
		{ConsonantHa, []string{"\u0939"}},   // ह
		{ConsonantLla, []string{"\u0933"}},  // ळ
		{ConsonantQa, nukta('\u0958')},      // क़
		{ConsonantKhha, nukta('\u0959')},    // ख़
		{ConsonantGhha, nukta('\u095A')},    // ग़
		{ConsonantZa, nukta('\u095B')},      // ज़
		{ConsonantRra, nukta('\u095C')},     // ड़
		{ConsonantRha, nukta('\u095D')},     // ढ़
		{ConsonantFa, nukta('\u095E')},      // फ़
		{ConsonantYya, nukta('\u095F')},     // य़
	},
	modifiers: []entry{
		{ModAnusvara, []string{"\u0902"}},     // ं
		{ModVisarga, []string{"\u0903"}},      // ः
		{ModChandrabindu, []string{"\u0901"}}, // ँ
		{ModAvagraha, []string{"\u093D"}},     // ऽ
		{ModOm, []string{"\u0950"}},           // ॐ
		{ModDanda, []string{"\u0964"}},        // ।
		{ModDoubleDanda, []string{"\u0965"}},  // ॥
	},
}
