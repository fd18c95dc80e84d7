// Package engine composes the extractors into the answer-inference pipeline.
// Rules are an ordered list of independent strategies evaluated
// first-match-wins; every rule is a pure function of the question, so the
// pipeline is idempotent and safe to call concurrently on independent
// inputs.
package engine

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"quizkey/internal/hint"
	"quizkey/internal/numeral"
	"quizkey/internal/options"
	"quizkey/internal/textnorm"
	"quizkey/internal/webdate"
)

// Question is the engine's input: the rendered text of the verification
// prompt plus the nearby table-cell strings believed to contain the event
// date/time.
type Question struct {
	Text          string
	DateTimeCells []string
}

// Config tunes a Pipeline. Zero values get sensible defaults.
type Config struct {
	Logger *zap.Logger
	// MaxPermutations caps the ordering expansion; an expansion that would
	// exceed it is refused and the plain option list stands.
	MaxPermutations int
	// Now supplies the clock for date/time rules. Defaults to time.Now.
	Now func() time.Time
}

// DefaultMaxPermutations bounds the k!/(k-m)! blow-up of ordering questions.
const DefaultMaxPermutations = 5000

// rule is one strategy in the cascade. ok reports whether the rule claimed
// the question; a claimed empty answer still terminates the cascade.
type rule struct {
	name  string
	apply func(p *Pipeline, q Question) (answer string, ok bool)
}

// Pipeline is the question-answer inference engine. Construct with New;
// the zero value is not usable.
type Pipeline struct {
	log      *zap.Logger
	maxPerms int
	now      func() time.Time
	rules    []rule
}

// New builds a Pipeline from cfg.
func New(cfg Config) *Pipeline {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	maxPerms := cfg.MaxPermutations
	if maxPerms <= 0 {
		maxPerms = DefaultMaxPermutations
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Pipeline{
		log:      log,
		maxPerms: maxPerms,
		now:      now,
		rules: []rule{
			{"agreement-literal", (*Pipeline).ruleAgreementLiteral},
			{"quoted-literal", (*Pipeline).ruleQuotedLiteral},
			{"bracket-numeral", (*Pipeline).ruleBracketNumeral},
			{"bracket-alt", (*Pipeline).ruleBracketAlt},
			{"web-date", (*Pipeline).ruleWebDate},
			{"web-time", (*Pipeline).ruleWebTime},
			{"named-event-field", (*Pipeline).ruleNamedEventField},
		},
	}
}

// Solve runs the cascade and returns the candidate answers, primary guess
// first. The result is never nil; an empty slice means no answer could be
// inferred, which is an expected outcome, not a failure.
func (p *Pipeline) Solve(q Question) []string {
	if q.Text == "" {
		return []string{}
	}

	// A prompt bundling two sub-questions can't be answered with a single
	// field value; abstain outright, whatever the individual rules think.
	if isTwoQuestions(q.Text) {
		p.log.Debug("two-question prompt, abstaining")
		return []string{}
	}

	for _, r := range p.rules {
		if ans, ok := r.apply(p, q); ok {
			p.log.Debug("rule matched", zap.String("rule", r.name), zap.String("answer", ans))
			return []string{ans}
		}
	}

	return p.solveOptionsOrHint(q.Text)
}

// ruleAgreementLiteral answers the fixed consent prompts: 請輸入"YES"，代表您
// 已詳閱且瞭解並同意 and the 輸入【同意】 variant.
func (p *Pipeline) ruleAgreementLiteral(q Question) (string, bool) {
	text := textnorm.CanonicalizeBrackets(q.Text)

	if strings.Contains(text, `輸入"YES"`) &&
		(strings.Contains(text, "已詳閱") || strings.Contains(text, "請詳閱")) &&
		strings.Contains(text, "同意") {
		return "YES", true
	}

	if (strings.Contains(text, "驗證碼") || strings.Contains(text, "驗證欄位")) &&
		(strings.Contains(text, "已詳閱") || strings.Contains(text, "請詳閱")) &&
		strings.Contains(text, "輸入【同意】") {
		return "同意", true
	}
	return "", false
}

// ruleQuotedLiteral answers 請在下方空白處輸入引號內文字：「…」.
func (p *Pipeline) ruleQuotedLiteral(q Question) (string, bool) {
	if !strings.Contains(q.Text, "「") || !strings.Contains(q.Text, "」") {
		return "", false
	}
	for _, cue := range []string{"空白", "輸入", "引號", "文字"} {
		if !strings.Contains(q.Text, cue) {
			return "", false
		}
	}
	ans := strings.TrimSpace(textnorm.FindBetween(q.Text, "「", "」"))
	if ans == "" {
		return "", false
	}
	return ans, true
}

// bracketSynonyms rewrites the prompt so one phrase family covers the many
// spellings of "enter the text inside the brackets". 數字→文字 folds the
// number variant into the same gate; the raw text decides later whether the
// extracted literal needs numeral normalization.
var bracketSynonyms = [][2]string{
	{"請輸入", "輸入"},
	{"的", ""},
	{"之內", "內"},
	{"之中", "中"},
	{"括弧", "括號"},
	{"引號", "括號"},
	{"括號中", "括號內"},
	{"數字", "文字"},
}

// ruleBracketNumeral answers 請在下方空白處輸入括號內數字【…】, normalizing
// Chinese numerals to their digit string when the prompt asked for numbers.
func (p *Pipeline) ruleBracketNumeral(q Question) (string, bool) {
	text := textnorm.CanonicalizeBrackets(strings.TrimSpace(q.Text))
	for _, pair := range bracketSynonyms {
		text = strings.ReplaceAll(text, pair[0], pair[1])
	}

	if len([]rune(text)) > 30 || strings.Contains(text, "\n") {
		return "", false
	}
	if !strings.Contains(text, "【") || !strings.Contains(text, "】") {
		return "", false
	}
	for _, cue := range []string{"輸入", "括號", "文字"} {
		if !strings.Contains(text, cue) {
			return "", false
		}
	}

	ans := strings.TrimSpace(textnorm.FindBetween(text, "【", "】"))
	if ans == "" {
		return "", false
	}
	ans = strings.ReplaceAll(ans, " ", "")
	if strings.Contains(q.Text, "數字") {
		ans = numeral.NormalizeRun(ans)
	}
	return ans, true
}

// ruleBracketAlt is the second quote-bracket pattern, matched against the
// raw text without numeral normalization.
func (p *Pipeline) ruleBracketAlt(q Question) (string, bool) {
	if !strings.Contains(q.Text, "【") || !strings.Contains(q.Text, "】") {
		return "", false
	}

	gate := func(cues ...string) bool {
		for _, cue := range cues {
			if !strings.Contains(q.Text, cue) {
				return false
			}
		}
		return true
	}
	if !gate("下", "空", textnorm.MarkerInput, "引號", "字") &&
		!gate("半形", textnorm.MarkerInput, "引號", "字") {
		return "", false
	}

	return strings.TrimSpace(textnorm.FindBetween(q.Text, "【", "】")), true
}

func (p *Pipeline) ruleWebDate(q Question) (string, bool) {
	return webdate.ResolveDate(q.Text, q.DateTimeCells, p.now())
}

func (p *Pipeline) ruleWebTime(q Question) (string, bool) {
	return webdate.ResolveTime(q.Text, q.DateTimeCells, p.now())
}

// ruleNamedEventField answers the English "name of event (ans: …)" form:
// the answer sits between the first colon after the first parenthesis and
// the closing parenthesis.
func (p *Pipeline) ruleNamedEventField(q Question) (string, bool) {
	if !strings.Contains(q.Text, "name of event") {
		return "", false
	}
	if !strings.Contains(q.Text, "(") || !strings.Contains(q.Text, ")") {
		return "", false
	}
	if !strings.Contains(strings.ToLower(q.Text), "ans:") {
		return "", false
	}

	open := strings.Index(q.Text, "(")
	colon := strings.Index(q.Text[open:], ":")
	if colon < 0 {
		return "", false
	}
	colon += open
	closing := strings.Index(q.Text[colon:], ")")
	if closing < 0 {
		return "", false
	}
	return q.Text[colon+1 : colon+closing], true
}

// twoQuestionSpellings are the Q1/Q2 label pairs that, with a "two
// questions" cue, mark a bundled prompt.
var twoQuestionSpellings = [][2]string{
	{"Q1.", "Q2."},
	{"Q1:", "Q2:"},
	{"Q1 ", "Q2 "},
}

func isTwoQuestions(text string) bool {
	if strings.Contains(text, "第一題") && strings.Contains(text, "第二題") {
		return true
	}
	for _, pair := range twoQuestionSpellings {
		if strings.Contains(text, pair[0]) && strings.Contains(text, pair[1]) {
			if strings.Contains(text, "二題") || strings.Contains(text, "2題") {
				return true
			}
		}
	}
	return false
}

// solveOptionsOrHint is the terminal state: enumerated options first, the
// hint-derived matches second, the symbol-delimiter heuristic last. When
// options exist they stand even if the hint also matched; only the ordering
// expansion replaces them. Option extraction sees the normalized text so
// full-width brackets and punctuation enumerate too; the symbol-delimiter
// fallback works on the raw text.
func (p *Pipeline) solveOptionsOrHint(text string) []string {
	opts := options.Extract(textnorm.Normalize(text))
	h := hint.Extract(text)

	if len(opts) > 0 {
		if len(h.Matches) == 0 {
			if expanded, ok := p.expandOrdering(text, opts, h.RawAnswer); ok {
				p.log.Debug("ordering expansion", zap.Int("candidates", len(expanded)))
				return expanded
			}
		}
		return opts
	}

	if len(h.Matches) > 0 {
		return h.Matches
	}

	if spans := options.ExtractSymbolDelimited(text); len(spans) > 0 {
		return spans
	}

	return []string{}
}
