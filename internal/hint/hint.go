// Package hint locates an explicit "example … input …" construction in a
// prompt and derives either a literal example answer or a character-class
// pattern from it. The pattern is then searched in the remainder of the
// prompt: text shaped like the example is taken as the candidate answers.
package hint

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"quizkey/internal/numeral"
	"quizkey/internal/options"
	"quizkey/internal/pattern"
	"quizkey/internal/textnorm"
)

// Result carries the candidate matches plus the raw example answer that was
// discovered along the way. RawAnswer is meaningful even when Matches is
// empty: the ordering combiner uses its length to size permutations.
type Result struct {
	Matches   []string
	RawAnswer string
}

// delimiters that may legitimately follow an answer slot in the prompt.
const answerDelimiters = ")].: }"

// countIdiom is one of the fixed Chinese phrasings that request a synthetic
// answer by character count ("please enter N uppercase letters"). The repeat
// idioms synthesize a literal; the class idioms synthesize a search pattern
// directly, bypassing literal abstraction.
type countIdiom struct {
	phrase string
	repeat string // repeated literal glyph, "" for class idioms
	class  string // repeated class token, "" for literal idioms
}

var countIdioms = []countIdiom{
	{phrase: "個半形英文大寫", repeat: "A"},
	{phrase: "個英文大寫", repeat: "A"},
	{phrase: "個半形英文小寫", repeat: "a"},
	{phrase: "個英文小寫", repeat: "a"},
	{phrase: "個英數半形字", class: pattern.ClassAlnum},
	{phrase: "個半形", class: pattern.ClassAlnum},
}

// Extract runs the full hint cascade against a raw prompt. Every step
// degrades to an empty value; the function never fails.
func Extract(raw string) Result {
	tmp := textnorm.Normalize(raw)

	// Question clause: prefix up to the first ? or 。, else the whole text.
	// Only its length matters below, as the part excluded from the search
	// region.
	question := questionClause(tmp)

	hintStr := ""
	rawAns := ""
	synthesized := ""

	// "若你覺得答案為 a，請輸入 a" — the input marker anchors the hint.
	if strings.Contains(tmp, "答案") && strings.Contains(tmp, textnorm.MarkerInput) {
		hintStr = hintFromAnchor(textnorm.MarkerInput, tmp)
		if hintStr != "" {
			hintStr, rawAns = splitHintAnswer(hintStr, textnorm.MarkerInput, tmp)
		}
	}

	if hintStr == "" {
		hintStr = hintFromAnchor(textnorm.MarkerExample, tmp)
		if hintStr != "" {
			hintStr, rawAns = splitHintAnswer(hintStr, textnorm.MarkerExample, tmp)
		}
	}

	// Re-window: when the options appear inside the hint span, cut the hint
	// at the answer so the answer text stays in the search region.
	if rawAns != "" {
		if i := strings.Index(hintStr, rawAns); i >= 0 {
			hintStr = hintStr[:i]
		}
	}

	// A bare * can mark the hint when no brackets were used.
	if hintStr == "" {
		if i := strings.Index(tmp, "*"); i >= 0 {
			hintStr = sliceToSpace(tmp, i, i+1)
		}
	}

	// The block after the hint merges in when it carries the example marker
	// ("ABC1 範例…" split across a space).
	if hintStr != "" {
		target := hintStr + " "
		if i := strings.Index(tmp, target); i >= 0 {
			next := sliceToSpace(tmp, i+len(target), i+len(target))
			if strings.Contains(next, textnorm.MarkerExample) {
				hintStr += " " + next
			}
		}
	}

	// Count idioms, each scanned in turn; a later phrase overwrites an
	// earlier match.
	if hintStr == "" {
		for _, idiom := range countIdioms {
			i := strings.Index(tmp, idiom.phrase)
			if i < 0 {
				continue
			}
			start := i
			if r, size := decodeLastRune(tmp[:i]); size > 0 && isNumericRune(r) {
				n, _ := numeral.RuneToDigit(r)
				start = i - size
				if idiom.repeat != "" {
					rawAns = strings.Repeat(idiom.repeat, n)
					synthesized = ""
				} else {
					synthesized = strings.Repeat(idiom.class, n)
					rawAns = ""
				}
			}
			hintStr = sliceToSpace(tmp, start, i)
		}
	}

	// Abstract the literal answer into a variable-length search pattern. A
	// synthesized class pattern from the idioms above is used as-is.
	searchPat := synthesized
	if searchPat == "" && hintStr != "" {
		searchPat = pattern.Abstract(rawAns, true)
	}

	region := searchRegion(raw, tmp, question, hintStr)

	if searchPat == "" {
		return Result{RawAnswer: rawAns}
	}

	re, err := regexp.Compile(searchPat)
	if err != nil {
		return Result{RawAnswer: rawAns}
	}

	delim := sniffDelimiter(re, region)

	full := re
	if delim != "" {
		full, err = regexp.Compile(searchPat + regexp.QuoteMeta(delim))
		if err != nil {
			full = re
			delim = ""
		}
	}

	matches := full.FindAllString(region, -1)
	if len(matches) == 1 {
		// Retry without the delimiter before concluding anything.
		matches = re.FindAllString(region, -1)
		if len(matches) == 1 {
			// A single occurrence means the pattern only matched the example
			// itself, not a real answer slot.
			matches = nil
		}
	}

	if matches != nil && delim != "" && !options.KeepSymbol(tmp) {
		for i := range matches {
			matches[i] = strings.ReplaceAll(matches[i], delim, "")
		}
	}

	return Result{Matches: matches, RawAnswer: rawAns}
}

func questionClause(tmp string) string {
	if i := strings.Index(tmp, "?"); i >= 0 {
		return tmp[:i+1]
	}
	if i := strings.Index(tmp, "。"); i >= 0 {
		return tmp[:i+len("。")]
	}
	return tmp
}

var hintSpanPatterns = []*regexp.Regexp{
	regexp.MustCompile(`【.*?】`),
	regexp.MustCompile(`\(.*?\)`),
	regexp.MustCompile(`\[.*?\]`),
}

// hintFromAnchor finds the bracketed span containing the anchor marker,
// trying each bracket family in priority order. With no such span the whole
// text serves as the hint.
func hintFromAnchor(anchor, tmp string) string {
	if !strings.Contains(tmp, anchor) {
		return ""
	}
	for _, re := range hintSpanPatterns {
		for _, span := range re.FindAllString(tmp, -1) {
			if strings.Contains(span, anchor) {
				return trimEnds(span)
			}
		}
	}
	return tmp
}

// splitHintAnswer keeps the right-hand part of the hint after the anchor and
// extracts the leading alphanumeric run as the raw example answer. A hint
// spanning the whole text collapses to just the right-hand part.
func splitHintAnswer(hintStr, anchor, tmp string) (string, string) {
	parts := strings.SplitN(hintStr, anchor, 2)
	if len(parts) < 2 {
		return hintStr, ""
	}
	right := parts[1]
	if runeLen(hintStr) == runeLen(tmp) {
		hintStr = right
	}
	return hintStr, pattern.LeadingAlnum(right)
}

// searchRegion is the text the pattern is matched against: the normalized
// text minus the question clause and the hint span. When stop-word removal
// destroyed useful context around an "ex:" example, the region re-anchors on
// the original text instead.
func searchRegion(raw, tmp, question, hintStr string) string {
	region := tmp
	if runeLen(question) < runeLen(tmp) {
		region = strings.ReplaceAll(region, question, "")
	}
	if hintStr != "" {
		region = strings.ReplaceAll(region, hintStr, "")
	}

	if hintStr != "" && strings.Contains(tmp, textnorm.MarkerExample) {
		org := strings.ReplaceAll(raw, "Ex:", "ex:")
		if i := strings.Index(org, "ex:"); i >= 0 {
			start := i
			if _, size := decodeLastRune(org[:i]); size > 0 {
				start = i - size
			}
			region = org[start:]
		}
	}
	return region
}

// sniffDelimiter looks at the single character following the pattern's first
// match; a character from the allowed set is recorded as the answer
// delimiter. A match near the end of the region records nothing: the
// delimiter must be followed by at least two more characters.
func sniffDelimiter(re *regexp.Regexp, region string) string {
	loc := re.FindStringIndex(region)
	if loc == nil {
		return ""
	}
	if runeLen(region[loc[1]:]) <= 2 {
		return ""
	}
	r, size := utf8.DecodeRuneInString(region[loc[1]:])
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	if strings.ContainsRune(answerDelimiters, r) {
		return string(r)
	}
	return ""
}

// sliceToSpace returns s[start:end] where end is the first space at or after
// searchFrom; with no space the last rune is dropped, mirroring the
// reference windowing.
func sliceToSpace(s string, start, searchFrom int) string {
	if start < 0 || start > len(s) || searchFrom > len(s) {
		return ""
	}
	end := strings.Index(s[searchFrom:], " ")
	if end >= 0 {
		return s[start : searchFrom+end]
	}
	_, size := decodeLastRune(s)
	if len(s)-size < start {
		return ""
	}
	return s[start : len(s)-size]
}

func decodeLastRune(s string) (rune, int) {
	if s == "" {
		return utf8.RuneError, 0
	}
	return utf8.DecodeLastRuneInString(s)
}

// isNumericRune accepts anything the numeral table knows plus any rune with
// a Unicode numeric property (一, ①, ５ …).
func isNumericRune(r rune) bool {
	if _, ok := numeral.RuneToDigit(r); ok {
		return true
	}
	return unicode.IsNumber(r)
}

func runeLen(s string) int {
	return len([]rune(s))
}

func trimEnds(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return ""
	}
	return string(r[1 : len(r)-1])
}
