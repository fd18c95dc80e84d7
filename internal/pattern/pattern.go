// Package pattern abstracts literal exemplar strings into coarse
// character-class signatures. A signature doubles as a regexp source string:
// extractors abstract the example answer from a prompt, then search the rest
// of the prompt for "shaped-alike" text.
package pattern

import (
	"strings"
	"unicode"
)

// Class tokens. These are regexp fragments; Abstract concatenates them.
const (
	ClassUpper = "[A-Z]"
	ClassLower = "[a-z]"
	ClassDigit = `[\d]`
	ClassAlnum = `[A-Za-z\d]`
)

// passthrough characters are escaped and kept literally in the signature.
const passthrough = "[]{}()<>-"

// Abstract converts a literal string into its character-class signature.
// Uppercase letters map to ClassUpper, lowercase to ClassLower, digits to
// ClassDigit; characters from the passthrough set are escaped and kept; every
// other rune is dropped silently. With collapseRuns, consecutive identical
// class tokens fold into a single one-or-more token, producing a
// variable-length pattern; without it every rune keeps its own token, so the
// signature also encodes exact length.
func Abstract(s string, collapseRuns bool) string {
	var toks []string
	for _, r := range s {
		switch {
		case strings.ContainsRune(passthrough, r):
			toks = append(toks, `\`+string(r))
		case unicode.IsUpper(r):
			toks = append(toks, ClassUpper)
		case unicode.IsLower(r):
			toks = append(toks, ClassLower)
		case unicode.IsDigit(r):
			toks = append(toks, ClassDigit)
		}
	}

	if !collapseRuns {
		return strings.Join(toks, "")
	}

	var b strings.Builder
	for i := 0; i < len(toks); {
		tok := toks[i]
		j := i + 1
		if isClass(tok) {
			for j < len(toks) && toks[j] == tok {
				j++
			}
		}
		b.WriteString(tok)
		if j-i > 1 {
			b.WriteByte('+')
		}
		i = j
	}
	return b.String()
}

func isClass(tok string) bool {
	return tok == ClassUpper || tok == ClassLower || tok == ClassDigit
}

const (
	digitChars = "0123456789"
	alnumChars = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// LeadingRun returns the longest leading run of allowed characters in s,
// skipping any disallowed prefix: scanning stops at the first disallowed
// character encountered after at least one allowed one.
func LeadingRun(allowed, s string) string {
	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(allowed, r) {
			b.WriteRune(r)
		} else if b.Len() > 0 {
			break
		}
	}
	return b.String()
}

// LeadingDigits returns the first continuous digit run in s.
func LeadingDigits(s string) string {
	return LeadingRun(digitChars, s)
}

// LeadingAlnum returns the first continuous ASCII alphanumeric run in s.
func LeadingAlnum(s string) string {
	return LeadingRun(alnumChars, s)
}

// IsAlnum reports whether s is non-empty and consists solely of ASCII
// letters and digits.
func IsAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune(alnumChars, r) {
			return false
		}
	}
	return true
}
