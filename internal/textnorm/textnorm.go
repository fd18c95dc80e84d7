// Package textnorm canonicalizes verification-prompt text so the downstream
// extractors can match against a single predictable form. All transforms are
// literal, ordered substring rewrites; none of them backtrack.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Marker tokens substituted for the many natural-language ways of saying
// "for example" and "please enter". Downstream extractors anchor on these.
const (
	MarkerExample = "範例"
	MarkerInput   = "輸入"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// punctReplacer unifies the full-width punctuation that shows up in
// Traditional Chinese prompts.
var punctReplacer = strings.NewReplacer(
	"：", ":",
	"？", "?",
	"（", "(",
	"）", ")",
)

// stopPhrases are filler verbs/particles removed outright. Order matters:
// the longer phrases must be removed before the bare 請.
var stopPhrases = []string{"輸入法", "請問", "請將", "請在", "請以", "請回答", "請"}

// examplePhrase rewrites every "for example" spelling to MarkerExample in a
// single pass, so inserted markers are never rescanned. Alternation order
// makes the two-character forms win over the bare 例.
var examplePhrase = regexp.MustCompile(`例如|如:|如為|舉例|例|ex:|Ex:`)

// conditionalPhrases introduce a hypothetical answer ("if your answer is X").
var conditionalPhrases = []string{"假設", "如果", "若"}

// Normalize canonicalizes a raw prompt: whitespace runs collapse to one
// space, full-width punctuation becomes half-width, stop phrases are removed,
// example/input phrasings become the marker tokens. An empty input stays
// empty.
func Normalize(raw string) string {
	if raw == "" {
		return raw
	}

	text := whitespaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
	text = punctReplacer.Replace(text)

	for _, stop := range stopPhrases {
		text = strings.ReplaceAll(text, stop, "")
	}
	text = examplePhrase.ReplaceAllString(text, MarkerExample)

	// "若你答案為 a" reads as an example of an answer, not a question about
	// one. The 覺得/認為 particles in between defeat the literal rewrite, so
	// they go first.
	if strings.Contains(text, "答案") {
		text = strings.ReplaceAll(text, "覺得", "")
		text = strings.ReplaceAll(text, "認為", "")
		for _, phrase := range conditionalPhrases {
			text = strings.ReplaceAll(text, phrase+"你答案", MarkerExample+"答案")
			text = strings.ReplaceAll(text, phrase+"答案", MarkerExample+"答案")
		}
	}

	text = strings.ReplaceAll(text, "填入", MarkerInput)

	return text
}

// bracketReplacer folds the whole quote/bracket family into 【…】 so a single
// pattern can match any of them.
var bracketReplacer = strings.NewReplacer(
	"「", "【",
	"『", "【",
	"〔", "【",
	"﹝", "【",
	"〈", "【",
	"《", "【",
	"［", "【",
	"〖", "【",
	"[", "【",
	"（", "【",
	"(", "【",
	"」", "】",
	"』", "】",
	"〕", "】",
	"﹞", "】",
	"〉", "】",
	"》", "】",
	"］", "】",
	"〗", "】",
	"]", "】",
	"）", "】",
	")", "】",
)

// CanonicalizeBrackets rewrites every known opening quote/bracket to 【 and
// every closing one to 】.
func CanonicalizeBrackets(s string) string {
	return bracketReplacer.Replace(s)
}

// FullToHalf folds full-width characters (ＡＢＣ１２３, ideographic space) to
// their half-width equivalents.
func FullToHalf(s string) string {
	if s == "" {
		return ""
	}
	return width.Narrow.String(s)
}

var keywordReplacer = strings.NewReplacer(
	"／", "/",
	"　", "",
	",", "",
	"，", "",
	"$", "",
	" ", "",
)

// FormatKeyword produces the canonical comparison form shared by the keyword
// mini-language: slashes unified, commas/spaces/dollar signs dropped,
// lower-cased.
func FormatKeyword(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToLower(keywordReplacer.Replace(s))
}

var htmlTag = regexp.MustCompile(`<.*?>`)

// StripHTMLTags removes markup tags and trims the result.
func StripHTMLTags(s string) string {
	return strings.TrimSpace(htmlTag.ReplaceAllString(s, ""))
}

// FindBetween returns the text between the first occurrence of start and the
// next occurrence of end, or "" when either is absent.
func FindBetween(s, start, end string) string {
	i := strings.Index(s, start)
	if i < 0 {
		return ""
	}
	i += len(start)
	j := strings.Index(s[i:], end)
	if j < 0 {
		return ""
	}
	return s[i : i+j]
}

// Truthy reports whether a config/env string reads as true. Any prefix of
// TRUE or YES counts, case-insensitively.
func Truthy(s string) bool {
	v := strings.ToUpper(strings.TrimSpace(s))
	return strings.HasPrefix("TRUE", v) || strings.HasPrefix("YES", v)
}
