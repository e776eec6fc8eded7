package transliteration

// itransDef follows ITRANS 5.3. Vowels double as their own dependent forms,
// so there is no marks table; the tokenizer decides mark vs independent from
// context. "{}" is the null separator.
var itransDef = schemeDef{
	name:      "ITRANS",
	aliases:   []string{"itrans", "roman", "latin"},
	separator: "{}",
	vowels: []entry{
		{VowelA, []string{"a"}},
		{VowelAA, []string{"A", "aa"}},
		{VowelI, []string{"i"}},
		{VowelII, []string{"I", "ii", "ee"}},
		{VowelU, []string{"u"}},
		{VowelUU, []string{"U", "uu", "oo"}},
		{VowelR, []string{"RRi", "R^i"}},
		{VowelRR, []string{"RRI", "R^I"}},
		{VowelL, []string{"LLi", "L^i"}},
		{VowelLL, []string{"LLI", "L^I"}},
		{VowelE, []string{"e"}},
		{VowelAI, []string{"ai"}},
		{VowelO, []string{"o"}},
		{VowelAU, []string{"au"}},
	},
	consonants: []entry{
		{ConsonantKa, []string{"k"}},
		{ConsonantKha, []string{"kh"}},
		{ConsonantGa, []string{"g"}},
		{ConsonantGha, []string{"gh"}},
		{ConsonantNga, []string{"~N", "N^"}},
		{ConsonantCa, []string{"ch", "c"}},
		{ConsonantCha, []string{"Ch", "chh"}},
		{ConsonantJa, []string{"j"}},
		{ConsonantJha, []string{"jh"}},
		{ConsonantNya, []string{"~n", "JN"}},
		{ConsonantTta, []string{"T"}},
		{ConsonantTtha, []string{"Th"}},
		{ConsonantDda, []string{"D"}},
		{ConsonantDdha, []string{"Dh"}},
		{ConsonantNna, []string{"N"}},
		{ConsonantTa, []string{"t"}},
		{ConsonantTha, []string{"th"}},
		{ConsonantDa, []string{"d"}},
		{ConsonantDha, []string{"dh"}},
		{ConsonantNa, []string{"n"}},
		{ConsonantPa, []string{"p"}},
		{ConsonantPha, []string{"ph"}},
		{ConsonantBa, []string{"b"}},
		{ConsonantBha, []string{"bh"}},
		{ConsonantMa, []string{"m"}},
		{ConsonantYa, []string{"y"}},
		{ConsonantRa, []string{"r"}},
		{ConsonantLa, []string{"l"}},
		{ConsonantVa, []string{"v", "w"}},
		{ConsonantSha, []string{"sh"}},
		{ConsonantSsa, []string{"Sh", "shh"}},
		{ConsonantSa, []string{"s"}},
		{ConsonantHa, []string{"h"}},
		{ConsonantLla, []string{"L", "ld"}},
		{ConsonantQa, []string{"q"}},
		{ConsonantKhha, []string{"K"}},
		{ConsonantGhha, []string{"G"}},
		{ConsonantZa, []string{"z"}},
		{ConsonantRra, []string{".D"}},
		{ConsonantRha, []string{".Dh"}},
		{ConsonantFa, []string{"f"}},
		{ConsonantYya, []string{"Y"}},
	},
	modifiers: []entry{
		{ModAnusvara, []string{"M", ".n", ".m"}},
		{ModVisarga, []string{"H"}},
		{ModChandrabindu, []string{".N"}},
		{ModAvagraha, []string{".a"}},
		{ModOm, []string{"OM", "AUM"}},
		{ModDanda, []string{"|"}},
		{ModDoubleDanda, []string{"||"}},
	},
	clusters: []cluster{
		{"x", []Sound{ConsonantKa, ConsonantSsa}},
		{"GY", []Sound{ConsonantJa, ConsonantNya}},
	},
}
