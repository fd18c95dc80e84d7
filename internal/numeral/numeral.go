// Package numeral translates between the digit glyphs that appear in
// verification prompts (ASCII, full-width, English words, Han numerals in
// both common and financial forms, circled and parenthesized digits) and the
// integers 0-9.
package numeral

import "strings"

// digitGlyphs is the closed glyph table. Index = digit value. English words
// are stored lower-case; lookups fold case. Both the traditional financial
// forms (貳) and their simplified variants (贰) are accepted so mixed
// numerals normalize uniformly.
var digitGlyphs = [10][]string{
	{"0", "０", "zero", "零"},
	{"1", "１", "one", "一", "壹", "①", "❶", "⑴"},
	{"2", "２", "two", "二", "貳", "贰", "②", "❷", "⑵"},
	{"3", "３", "three", "三", "叁", "參", "③", "❸", "⑶"},
	{"4", "４", "four", "四", "肆", "④", "❹", "⑷"},
	{"5", "５", "five", "五", "伍", "⑤", "❺", "⑸"},
	{"6", "６", "six", "六", "陸", "陆", "⑥", "❻", "⑹"},
	{"7", "７", "seven", "七", "柒", "⑦", "❼", "⑺"},
	{"8", "８", "eight", "八", "捌", "⑧", "❽", "⑻"},
	{"9", "９", "nine", "九", "玖", "⑨", "❾", "⑼"},
}

// ToDigit resolves a glyph (single rune or English word) to its digit value.
func ToDigit(glyph string) (int, bool) {
	glyph = strings.ToLower(glyph)
	for d, glyphs := range digitGlyphs {
		for _, g := range glyphs {
			if glyph == g {
				return d, true
			}
		}
	}
	return 0, false
}

// RuneToDigit resolves a single rune through the glyph table.
func RuneToDigit(r rune) (int, bool) {
	return ToDigit(string(r))
}

// NormalizeRun maps every rune of s through the glyph table and concatenates
// the resulting digits in order. Runes with no mapping are dropped, not
// substituted: the input is read as a sequence of digits, not a place-value
// number.
func NormalizeRun(s string) string {
	var b strings.Builder
	for _, r := range s {
		if d, ok := RuneToDigit(r); ok {
			b.WriteByte(byte('0' + d))
		}
	}
	return b.String()
}

// Synonyms returns the accepted glyphs for a digit. The slice is a copy.
func Synonyms(d int) []string {
	if d < 0 || d > 9 {
		return nil
	}
	out := make([]string, len(digitGlyphs[d]))
	copy(out, digitGlyphs[d])
	return out
}
