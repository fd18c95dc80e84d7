// Package keyword implements the keyword mini-language used to match option
// rows and to hold user-supplied guess strings. A keyword string is a JSON
// array once wrapped in brackets: "" matches everything, a phrase with
// spaces is an AND of its terms, anything else is a plain substring match.
// Malformed input fails closed — it matches nothing and never raises.
package keyword

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"strings"

	"quizkey/internal/textnorm"
)

// quoteWrap ensures a bare keyword string is valid as a JSON value.
func quoteWrap(s string) string {
	if strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s
	}
	return `"` + s + `"`
}

// FormatForJSON normalizes a configured keyword value to a single JSON
// value. A JSON object reduces to its first value, an array to its first
// element, both in document order; scalars and malformed input pass through
// wrapped.
func FormatForJSON(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return quoteWrap(s)
	}
	s = quoteWrap(s)

	dec := json.NewDecoder(strings.NewReader(trimmed))
	tok, err := dec.Token()
	if err != nil {
		return s
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return s
	}

	switch delim {
	case '{':
		if !dec.More() {
			return s
		}
		if _, err := dec.Token(); err != nil { // key
			return s
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return s
		}
		return string(bytes.TrimSpace(raw))
	case '[':
		if !dec.More() {
			return s
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return s
		}
		return string(bytes.TrimSpace(raw))
	}
	return s
}

// Match reports whether text matches any keyword group in keywordString.
// An empty group matches everything; a group containing spaces requires all
// of its space-separated terms; otherwise plain substring containment.
func Match(keywordString, text string) bool {
	if keywordString == "" || text == "" {
		return false
	}

	groups, ok := parseGroups(keywordString)
	if !ok {
		return false
	}

	for _, group := range groups {
		if group == "" {
			return true
		}
		if strings.Contains(group, " ") {
			if containsAllTerms(text, group) {
				return true
			}
		} else if strings.Contains(text, group) {
			return true
		}
	}
	return false
}

// MatchRow is the row-text variant used against scraped table rows: both
// sides pass through the keyword canonical form first, and an empty keyword
// string matches every row.
func MatchRow(keywordString, rowText string) bool {
	rowText = textnorm.FormatKeyword(rowText)
	if keywordString == "" || rowText == "" {
		return true
	}

	groups, ok := parseGroups(keywordString)
	if !ok {
		return false
	}

	for _, group := range groups {
		if group == "" {
			return true
		}
		if strings.Contains(group, " ") {
			all := true
			for _, term := range strings.Fields(group) {
				if !strings.Contains(rowText, textnorm.FormatKeyword(term)) {
					all = false
				}
			}
			if all {
				return true
			}
		} else if strings.Contains(rowText, textnorm.FormatKeyword(group)) {
			return true
		}
	}
	return false
}

func parseGroups(keywordString string) ([]string, bool) {
	var groups []string
	if err := json.Unmarshal([]byte("["+quoteWrap(keywordString)+"]"), &groups); err != nil {
		return nil, false
	}
	return groups, true
}

func containsAllTerms(text, group string) bool {
	for _, term := range strings.Fields(group) {
		if !strings.Contains(text, term) {
			return false
		}
	}
	return true
}

// LoadGuesses merges the configured literal guess string with the
// single-line remotely-supplied guess file. Either source being absent or
// malformed simply contributes nothing.
func LoadGuesses(userGuess, onlinePath string) []string {
	var out []string
	out = append(out, parseGuessArray(userGuess)...)

	if onlinePath != "" {
		if line, err := readFirstLine(onlinePath); err == nil {
			out = append(out, parseGuessArray(line)...)
		}
	}
	return out
}

func parseGuessArray(s string) []string {
	if s == "" {
		return nil
	}
	s = FormatForJSON(s)
	var arr []string
	if err := json.Unmarshal([]byte("["+s+"]"), &arr); err != nil {
		return nil
	}
	return arr
}

func readFirstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if sc.Scan() {
		return sc.Text(), nil
	}
	return "", sc.Err()
}
