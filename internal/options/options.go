// Package options finds enumerated multiple-choice option lists in a prompt.
// A priority-ordered chain of bracket and delimiter patterns is tried until
// one yields more than two tokens; majority-length voting then discards noise
// tokens. Two options is never a meaningful multiple-choice set, so any
// result that small is discarded entirely.
package options

import (
	"regexp"
	"strings"

	"quizkey/internal/pattern"
)

// optionPattern pairs a regexp with the cheap containment guard that must
// pass before the regexp runs.
type optionPattern struct {
	left, right string
	re          *regexp.Regexp
}

// bracket-style forms first, then the newline-delimited forms. Every span is
// constrained to 1-4 characters.
var optionPatterns = []optionPattern{
	{"【", "】", regexp.MustCompile(`【.{1,4}】`)},
	{"(", ")", regexp.MustCompile(`\(.{1,4}\)`)},
	{"[", "]", regexp.MustCompile(`\[.{1,4}\]`)},
	{"\n", ")", regexp.MustCompile(`\n.{1,4}\)`)},
	{"\n", "]", regexp.MustCompile(`\n.{1,4}\]`)},
	{"\n", "】", regexp.MustCompile(`\n.{1,4}】`)},
	{"\n", ":", regexp.MustCompile(`\n.{1,4}:`)},
}

// punctuation-delimited single-character options, e.g. "A.xx B.yy C.zz".
var punctDelimited = regexp.MustCompile(`[ /\n|;.?]{1}.{1}[.:)\]>]{1}.{2,3}`)

// punctLeaders are stripped, one each in this order, from the front of a raw
// punctuation-delimited match.
var punctLeaders = []string{".", "?", "|", ";", "/"}

// Extract returns the option list found in text, already trimmed and
// noise-filtered, or nil when no meaningful set exists. A pattern's match set
// only counts when it yields more than two items; smaller sets carry no
// signal and the chain moves on.
func Extract(text string) []string {
	var opts []string
	for _, p := range optionPatterns {
		if !strings.Contains(text, p.left) || !strings.Contains(text, p.right) {
			continue
		}
		if m := p.re.FindAllString(text, -1); len(m) > 2 {
			opts = m
			break
		}
	}

	if len(opts) == 0 {
		opts = extractPunctDelimited(text)
	}
	if len(opts) == 0 {
		return nil
	}

	trim := !KeepSymbol(text)
	result := voteAndTrim(opts, trim)

	// Something is wrong when filtering leaves two options or fewer.
	if len(result) <= 2 {
		return nil
	}

	// Drop stray CJK-word "option" noise when enough alphanumeric options
	// survive without it.
	var alnum []string
	for _, o := range result {
		if pattern.IsAlnum(o) {
			alnum = append(alnum, o)
		}
	}
	if len(alnum) >= 3 {
		return alnum
	}
	return result
}

// extractPunctDelimited handles the space-and-question-mark heuristic. Each
// match reduces to a single character.
func extractPunctDelimited(text string) []string {
	if !strings.Contains(text, " ") || !strings.Contains(text, "?") {
		return nil
	}
	if !strings.ContainsAny(text, ".:)]>") {
		return nil
	}
	m := punctDelimited.FindAllString(text, -1)
	if len(m) <= 2 {
		return nil
	}
	out := make([]string, 0, len(m))
	for _, item := range m {
		item = strings.TrimSpace(item)
		for _, leader := range punctLeaders {
			if strings.HasPrefix(item, leader) {
				item = item[len(leader):]
			}
		}
		item = strings.TrimSpace(item)
		out = append(out, firstRune(item))
	}
	return out
}

// voteAndTrim applies the same-length / majority-length policy. The length
// counts deliberately scan options[0..n-2]: the last option's length is only
// ever seen as a comparison target, matching the reference pair-wise scan.
func voteAndTrim(opts []string, trim bool) []string {
	allSame := true
	var seenLengths []int
	counts := map[int]int{}
	for i := 0; i < len(opts)-1; i++ {
		cur := runeLen(opts[i])
		if cur != runeLen(opts[i+1]) {
			allSame = false
		}
		if _, ok := counts[cur]; !ok {
			seenLengths = append(seenLengths, cur)
		}
		counts[cur]++
	}

	var result []string
	if allSame {
		for _, o := range opts {
			if runeLen(o) > 2 && trim {
				result = append(result, trimEnds(o))
			} else {
				result = append(result, o)
			}
		}
		return result
	}

	// Most frequent length wins; ties break to the first length encountered
	// in scan order.
	target, best := 0, 0
	for _, l := range seenLengths {
		if counts[l] > best {
			best = counts[l]
			target = l
		}
	}
	if target == 0 {
		return nil
	}
	for _, o := range opts {
		if runeLen(o) != target {
			continue
		}
		if trim {
			result = append(result, trimEnds(o))
		} else {
			result = append(result, o)
		}
	}
	return result
}

// symbolPairs for the delimiter fallback. The space-left pairs catch
// "A: B: C:" style enumerations.
var (
	symbolLefts  = []string{"(", "[", "{", " ", " ", " ", " "}
	symbolRights = []string{")", "]", "}", ":", ".", ")", "-"}
)

// ExtractSymbolDelimited is the last-resort extractor: paired delimiters
// around word runs, gated on the prompt demanding half-width input. Accepted
// only when more than one span is found.
func ExtractSymbolDelimited(text string) []string {
	tmp := strings.NewReplacer("?", " ", "？", " ", "。", " ").Replace(text)

	var out []string
	for i := range symbolLefts {
		left, right := symbolLefts[i], symbolRights[i]
		if !strings.Contains(tmp, left) || !strings.Contains(tmp, right) || !strings.Contains(tmp, "半形") {
			continue
		}
		re, err := regexp.Compile(regexp.QuoteMeta(left) + `[\w]+` + regexp.QuoteMeta(right))
		if err != nil {
			continue
		}
		if spans := re.FindAllString(tmp, -1); len(spans) > 1 {
			out = nil
			for _, span := range spans {
				if runeLen(span) > 2 {
					if inner := trimEnds(span); inner != "" {
						out = append(out, inner)
					}
				}
			}
		}
		if len(out) > 0 {
			break
		}
	}
	return out
}

func runeLen(s string) int {
	return len([]rune(s))
}

// trimEnds drops the first and last rune (quote/bracket removal).
func trimEnds(s string) string {
	r := []rune(s)
	if len(r) < 2 {
		return ""
	}
	return string(r[1 : len(r)-1])
}

func firstRune(s string) string {
	for _, r := range s {
		return string(r)
	}
	return ""
}
