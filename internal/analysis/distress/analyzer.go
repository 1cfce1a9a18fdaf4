package distress

import (
	"sort"
	"strings"
	"unicode"

	"github.com/zhouzirui/solace/backend/internal/analysis/tokens"
)

// Level 表示用户消息的风险等级。
type Level string

const (
	None     Level = "none"
	Elevated Level = "elevated"
	Crisis   Level = "crisis"
)

// Assessment is the outcome of scoring one message.
type Assessment struct {
	Level   Level
	Score   int
	Matches []string
}

// IsCrisis reports whether the message should be treated as crisis content.
func (a Assessment) IsCrisis() bool {
	return a.Level == Crisis
}

var keywordBuckets = map[Level][]string{
	Crisis: {
		"suicide", "suicidal", "kill myself", "end my life", "want to die", "wanna die", "better off dead",
		"self harm", "self-harm", "hurt myself", "cut myself", "no reason to live", "end it all",
		"suicidarme", "suicidio", "quiero morir", "matarme", "quitarme la vida",
		"me suicider", "envie de mourir", "me tuer", "en finir",
		"selbstmord", "umbringen", "sterben will", "nicht mehr leben",
		"uccidermi", "voglio morire", "farla finita",
		"me matar", "quero morrer", "suicídio",
		"zelfmoord", "dood willen",
		"самоубийств*", "покончить с собой", "хочу умереть",
		"自杀", "想死", "不想活", "轻生",
		"死にたい", "自殺", "消えたい",
		"자살", "죽고 싶",
		"انتحار", "أريد أن أموت", "خودکشی",
		"आत्महत्या", "मरना चाहता", "मरना चाहती", "जीना नहीं चाहता",
		"আত্মহত্যা*", "தற்கொலை*", "ఆత్మహత్య*", "ಆತ್ಮಹತ್ಯೆ*", "ആത്മഹത്യ*",
	},
	Elevated: {
		"hopeless", "worthless", "can't go on", "cant go on", "panic*", "anxious", "anxiety", "overwhelmed",
		"depressed", "depression", "lonely", "alone", "empty inside", "can't sleep", "exhausted", "numb",
		"triste", "ansiedad", "deprimido", "deprimida", "me siento solo", "sola", "agobiado", "sin esperanza",
		"seul", "seule", "angoisse", "déprimé", "épuisé",
		"einsam", "angst", "hoffnungslos", "traurig", "erschöpft",
		"solitudine", "ansia", "sconforto",
		"sozinho", "sozinha", "ansioso",
		"eenzaam", "somber",
		"одиноко", "тревог*", "депресс*",
		"孤独", "焦虑", "抑郁", "绝望", "崩溃",
		"不安", "寂しい", "つらい", "辛い",
		"우울", "외로", "불안",
		"وحيد", "قلق", "اكتئاب",
		"अकेला", "अकेली", "उदास", "चिंता", "तनाव",
		"একা", "দুঃখ*",
	},
}

// cjkFalseFriends lists continuations that turn a CJK keyword into an
// everyday idiom: "想死你了" means "I miss you so much".
var cjkFalseFriends = map[string][]string{
	"想死": {"你", "您", "他", "她", "我了", "人了"},
}

// keyword is one compiled entry of a bucket. Entries in a script without word
// separators match as substrings; all others match whole tokens, and a
// trailing "*" lets the last token match as a prefix ("депресс*").
type keyword struct {
	raw    string
	cjk    bool
	prefix bool
	phrase tokens.List
}

func compile(raw []string) []keyword {
	out := make([]keyword, 0, len(raw))
	for _, r := range raw {
		stem, prefix := strings.CutSuffix(r, "*")
		k := keyword{raw: stem, prefix: prefix, cjk: isCJK(stem)}
		if !k.cjk {
			k.phrase = tokens.Split(stem)
		}
		out = append(out, k)
	}
	return out
}

func isCJK(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
			return true
		}
	}
	return false
}

var compiled = map[Level][]keyword{
	Crisis:   compile(keywordBuckets[Crisis]),
	Elevated: compile(keywordBuckets[Elevated]),
}

// Analyze 根据关键词估计消息中的风险程度。Crisis 优先于 Elevated。
func Analyze(text string) Assessment {
	normalized := strings.TrimSpace(strings.ToLower(text))
	if normalized == "" {
		return Assessment{Level: None}
	}
	toks := tokens.Split(normalized)

	crisis := matchBucket(normalized, toks, compiled[Crisis])
	if len(crisis) > 0 {
		return Assessment{Level: Crisis, Score: len(crisis) * 3, Matches: crisis}
	}

	elevated := matchBucket(normalized, toks, compiled[Elevated])
	if len(elevated) > 0 {
		return Assessment{Level: Elevated, Score: len(elevated), Matches: elevated}
	}

	return Assessment{Level: None}
}

func matchBucket(normalized string, toks tokens.List, keywords []keyword) []string {
	seen := make(map[string]struct{})
	for _, k := range keywords {
		if k.raw == "" {
			continue
		}
		if k.matches(normalized, toks) {
			seen[k.raw] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for word := range seen {
		out = append(out, word)
	}
	sort.Strings(out)
	return out
}

func (k keyword) matches(normalized string, toks tokens.List) bool {
	if !k.cjk {
		if k.prefix {
			return toks.HasPhrasePrefix(k.phrase)
		}
		return toks.HasPhrase(k.phrase)
	}

	rest := normalized
	for {
		i := strings.Index(rest, k.raw)
		if i < 0 {
			return false
		}
		rest = rest[i+len(k.raw):]
		if !hasFalseFriend(k.raw, rest) {
			return true
		}
	}
}

func hasFalseFriend(word, after string) bool {
	for _, next := range cjkFalseFriends[word] {
		if strings.HasPrefix(after, next) {
			return true
		}
	}
	return false
}
