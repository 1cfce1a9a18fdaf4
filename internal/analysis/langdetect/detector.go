package langdetect

import (
	"strings"
	"unicode"

	"github.com/zhouzirui/solace/backend/internal/analysis/tokens"
)

// Fallback is returned when no rule matches.
const Fallback = "en"

type scriptRule struct {
	code  string
	table *unicode.RangeTable
}

func block(lo, hi uint16) *unicode.RangeTable {
	return &unicode.RangeTable{R16: []unicode.Range16{{Lo: lo, Hi: hi, Stride: 1}}}
}

// scriptRules is checked in order; the first block with any matching rune
// yields the candidate. Han precedes Kana, so kanji-bearing Japanese reads as zh.
var scriptRules = []scriptRule{
	{"zh", block(0x4e00, 0x9fff)},
	{"ar", block(0x0600, 0x06ff)},
	{"ru", block(0x0400, 0x04ff)},
	{"ja", block(0x3040, 0x30ff)},
	{"ko", block(0xac00, 0xd7af)},
	{"th", block(0x0e00, 0x0e7f)},
	{"hi", block(0x0900, 0x097f)},
	{"bn", block(0x0980, 0x09ff)},
	{"pa", block(0x0a00, 0x0a7f)},
	{"gu", block(0x0a80, 0x0aff)},
	{"or", block(0x0b00, 0x0b7f)},
	{"ta", block(0x0b80, 0x0bff)},
	{"te", block(0x0c00, 0x0c7f)},
	{"kn", block(0x0c80, 0x0cff)},
	{"ml", block(0x0d00, 0x0d7f)},
	{"sat", block(0x1c50, 0x1c7f)},
	{"mni", block(0xabc0, 0xabff)},
}

type keywordRule struct {
	code    string
	words   map[string]struct{}
	phrases []tokens.List
}

func rule(code string, words []string, phrases ...string) keywordRule {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	split := make([]tokens.List, 0, len(phrases))
	for _, p := range phrases {
		split = append(split, tokens.Split(p))
	}
	return keywordRule{code: code, words: set, phrases: split}
}

// sharedScript lists, per script candidate, the languages that may override
// it. Precedence is the slice order.
var sharedScript = map[string][]keywordRule{
	"hi": {
		rule("sa", []string{"अहम्", "त्वम्", "एतत्", "तत्", "किम्"}),
		rule("mr", []string{"मी", "तू", "तुम्ही", "आम्ही", "माझा", "तुझा"}),
		rule("ne", []string{"म", "तिमी", "तपाईं", "हामी", "मेरो", "तिम्रो"}),
		rule("kok", []string{"हांव", "तूं", "आमी", "तुमी"}),
		rule("mai", []string{"अहाँ", "तोहर", "हमर"}),
		rule("brx", []string{"आं", "नों", "बे", "सिन"}),
		rule("doi", []string{"तुसां", "असां", "तुंदा"}),
	},
	"bn": {
		rule("as", []string{"মই", "আপুনি"}),
	},
	"ar": {
		rule("ur", []string{"میں", "تم", "آپ", "ہم"}),
		rule("ks", []string{"بہ", "تہ", "یہ", "اسہ"}),
		rule("sd", []string{"مان", "توهان", "هي", "اهو"}),
	},
}

// latinRules run only when no script block matched. Tokens that commonly
// stand alone in English sentences ("per", "van", "ha", "o") are left out.
var latinRules = []keywordRule{
	rule("es", []string{
		"soy", "estoy", "tengo", "quiero", "necesito", "mi", "tu", "su", "el", "la", "los", "las",
		"de", "que", "en", "es", "y", "por", "para", "se", "del", "al", "muy", "más", "pero",
		"como", "cuando", "donde", "hola", "adiós", "gracias",
	}, "por favor"),
	rule("fr", []string{
		"je", "tu", "il", "elle", "nous", "vous", "ils", "elles", "suis", "es", "est", "sommes",
		"êtes", "sont", "ai", "avons", "avez", "ont", "le", "la", "les", "de", "du", "des", "et", "en",
		"pour", "avec", "ce", "cette", "ces", "bonjour", "merci",
	}, "s'il vous plaît"),
	rule("de", []string{
		"ich", "du", "sie", "es", "wir", "ihr", "bist", "ist", "sind", "seid", "haben",
		"habe", "hast", "habt", "der", "das", "und", "zu", "mit", "auf", "für", "von", "dem",
		"aber", "wenn", "wie", "wo", "hallo", "danke", "bitte",
	}),
	rule("it", []string{
		"io", "tu", "lui", "lei", "noi", "voi", "loro", "sono", "sei", "è", "siamo", "siete",
		"hai", "abbiamo", "avete", "hanno", "il", "la", "lo", "gli", "le", "di", "che", "e",
		"del", "della", "se", "come", "dove", "ciao", "grazie", "prego",
	}),
	rule("pt", []string{
		"eu", "tu", "você", "ele", "ela", "nós", "vocês", "eles", "elas", "sou", "és", "é", "somos",
		"são", "tenho", "tens", "tem", "temos", "têm", "os", "de", "que", "e", "em", "para",
		"com", "dos", "das", "mas", "se", "como", "onde", "olá", "obrigado",
	}, "por favor"),
	rule("nl", []string{
		"ik", "jij", "hij", "zij", "wij", "jullie", "bent", "zijn", "heb", "hebt", "heeft",
		"hebben", "de", "het", "een", "en", "voor", "met", "maar", "als", "wat", "waar",
		"hallo", "dank", "alsjeblieft",
	}),
}

// Detect returns a best-guess language code for text. It never fails; on
// empty input, no match, or an internal panic it returns Fallback.
func Detect(text string) (code string) {
	defer func() {
		if r := recover(); r != nil {
			code = Fallback
		}
	}()

	if strings.TrimSpace(text) == "" {
		return Fallback
	}

	if candidate, ok := detectScript(text); ok {
		rules, shared := sharedScript[candidate]
		if !shared {
			return candidate
		}
		toks := tokens.Split(text)
		for _, r := range rules {
			if r.match(toks) {
				return r.code
			}
		}
		return candidate
	}

	toks := tokens.Split(text)
	for _, r := range latinRules {
		if r.match(toks) {
			return r.code
		}
	}
	return Fallback
}

func detectScript(text string) (string, bool) {
	for _, sr := range scriptRules {
		for _, r := range text {
			if unicode.Is(sr.table, r) {
				return sr.code, true
			}
		}
	}
	return "", false
}

func (r keywordRule) match(t tokens.List) bool {
	for _, w := range t.Words() {
		if _, ok := r.words[w]; ok {
			return true
		}
	}
	for _, p := range r.phrases {
		if t.HasPhrase(p) {
			return true
		}
	}
	return false
}
