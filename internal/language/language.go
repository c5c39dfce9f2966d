package language

import "strings"

type entry struct {
	code2   string   // ISO 639-1
	code3   string   // ISO 639-2/T
	alt3    string   // ISO 639-2/B when it differs
	display string   // English name
	words   []string // lower-cased word forms, including endonyms
}

var languages = []entry{
	{"en", "eng", "", "English", []string{"english"}},
	{"hi", "hin", "", "Hindi", []string{"hindi", "bollywood"}},
	{"ta", "tam", "", "Tamil", []string{"tamil", "kollywood"}},
	{"te", "tel", "", "Telugu", []string{"telugu", "tollywood"}},
	{"ml", "mal", "", "Malayalam", []string{"malayalam"}},
	{"kn", "kan", "", "Kannada", []string{"kannada"}},
	{"bn", "ben", "", "Bengali", []string{"bengali", "bangla"}},
	{"mr", "mar", "", "Marathi", []string{"marathi"}},
	{"pa", "pan", "", "Punjabi", []string{"punjabi"}},
	{"ur", "urd", "", "Urdu", []string{"urdu"}},
	{"es", "spa", "", "Spanish", []string{"spanish", "español"}},
	{"fr", "fra", "fre", "French", []string{"french", "français"}},
	{"de", "deu", "ger", "German", []string{"german", "deutsch"}},
	{"it", "ita", "", "Italian", []string{"italian"}},
	{"pt", "por", "", "Portuguese", []string{"portuguese"}},
	{"ja", "jpn", "", "Japanese", []string{"japanese"}},
	{"ko", "kor", "", "Korean", []string{"korean"}},
	{"zh", "zho", "chi", "Chinese", []string{"chinese", "mandarin"}},
	{"cn", "yue", "", "Cantonese", []string{"cantonese"}},
	{"ru", "rus", "", "Russian", []string{"russian"}},
	{"ar", "ara", "", "Arabic", []string{"arabic"}},
	{"tr", "tur", "", "Turkish", []string{"turkish"}},
	{"fa", "fas", "per", "Persian", []string{"persian", "farsi"}},
	{"th", "tha", "", "Thai", []string{"thai"}},
	{"nl", "nld", "dut", "Dutch", []string{"dutch"}},
	{"pl", "pol", "", "Polish", []string{"polish"}},
	{"sv", "swe", "", "Swedish", []string{"swedish"}},
	{"da", "dan", "", "Danish", []string{"danish"}},
	{"no", "nor", "", "Norwegian", []string{"norwegian"}},
	{"fi", "fin", "", "Finnish", []string{"finnish"}},
}

// index maps every two-letter code, three-letter code, and word form to its
// entry. Codes take precedence over words when they collide.
var index = buildIndex()

func buildIndex() map[string]*entry {
	idx := make(map[string]*entry, len(languages)*4)
	for i := range languages {
		for _, w := range languages[i].words {
			idx[w] = &languages[i]
		}
	}
	for i := range languages {
		e := &languages[i]
		for _, code := range []string{e.code2, e.code3, e.alt3} {
			if code != "" {
				idx[code] = e
			}
		}
	}
	return idx
}

func lookup(code string) *entry {
	return index[strings.ToLower(strings.TrimSpace(code))]
}

// ToISO2 converts any recognized language code or word to ISO 639-1.
// Unknown two-letter input passes through lower-cased; anything else
// unrecognized yields "".
func ToISO2(code string) string {
	if e := lookup(code); e != nil {
		return e.code2
	}
	if code = strings.ToLower(strings.TrimSpace(code)); len(code) == 2 {
		return code
	}
	return ""
}

// DisplayName returns a human-readable name for any recognized code.
// Returns "Any" for empty input, or the upper-cased code when unrecognized.
func DisplayName(code string) string {
	code = strings.TrimSpace(code)
	switch e := lookup(code); {
	case code == "":
		return "Any"
	case e != nil:
		return e.display
	default:
		return strings.ToUpper(code)
	}
}
