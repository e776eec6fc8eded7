package transliteration

import "testing"

func TestTransliterateITRANSToDevanagari(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"rAma", "राम"},
		{"namaste", "नमस्ते"},
		{"saMskRRitam", "संस्कृतम्"},
		{"dharmakShetre kurukShetre", "धर्मक्षेत्रे कुरुक्षेत्रे"},
		{"OM namaH shivAya |", "ॐ नमः शिवाय ।"},
		{"kai", "कै"},
		{"x", "क्ष्"},
		{"chha", "छ"},
	}
	for _, tt := range tests {
		got := Transliterate(tt.input, ITRANS, Devanagari)
		if got != tt.want {
			t.Errorf("Transliterate(%q, ITRANS, Devanagari) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterateDevanagariToITRANS(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"राम", "rAma"},
		{"क", "ka"},
		{"क्", "k"},
		{"नमस्ते", "namaste"},
		{"ॐ नमः शिवाय ।", "OM namaH shivAya |"},
		{"क्ह", "k{}ha"},
		{"अइ", "a{}i"},
		{"ळ्ळि", "L{}Li"},
		{"।।", "|{}|"},
	}
	for _, tt := range tests {
		got := Transliterate(tt.input, Devanagari, ITRANS)
		if got != tt.want {
			t.Errorf("Transliterate(%q, Devanagari, ITRANS) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTransliterateEmpty(t *testing.T) {
	got := Transliterate("", ITRANS, Devanagari)
	if got != "" {
		t.Errorf("Transliterate(empty) = %q, want empty string", got)
	}
}

func TestTransliterateNuktaForms(t *testing.T) {
	decomposed := "\u0921\u093C"
	precomposed := "\u095C"

	for _, input := range []string{decomposed, precomposed} {
		got := Transliterate(input, Devanagari, ITRANS)
		if got != ".Da" {
			t.Errorf("Transliterate(%q) = %q, want %q", input, got, ".Da")
		}
	}

	got := Transliterate(".Da", ITRANS, Devanagari)
	if got != decomposed {
		t.Errorf("Transliterate(.Da) = %q, want decomposed %q", got, decomposed)
	}
}
