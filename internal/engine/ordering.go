package engine

import (
	"strings"

	"quizkey/internal/textnorm"
)

// orderingCues are the words that mark a prompt as asking for the options in
// some sequence rather than a single pick.
var orderingCues = []string{
	"排列", "排序", "依序", "順序", "遞增", "遞減", "升冪", "降冪",
	"新到舊", "舊到新", "小到大", "大到小", "高到低", "低到高",
}

// expandOrdering turns an option list into every m-length arrangement of the
// options when the prompt asks for an ordered combination. m is sized from
// the example answer: its length divided by the length of one option. The
// expansion is refused when the arrangement count would exceed the
// configured cap, leaving the plain options in place.
func (p *Pipeline) expandOrdering(text string, opts []string, rawAns string) ([]string, bool) {
	if len(opts) < 3 || rawAns == "" {
		return nil, false
	}
	ansLen := len([]rune(rawAns))
	optLen := len([]rune(opts[0]))
	if ansLen < 3 || optLen == 0 {
		return nil, false
	}
	multiple := ansLen / optLen
	if multiple < 3 {
		return nil, false
	}

	tmp := textnorm.Normalize(text)
	cued := false
	for _, cue := range orderingCues {
		if strings.Contains(tmp, cue) {
			cued = true
			break
		}
	}
	if !cued {
		return nil, false
	}

	if n := permutationCount(len(opts), multiple); n == 0 || n > p.maxPerms {
		return nil, false
	}

	var out []string
	for _, tuple := range Permutations(opts, multiple) {
		out = append(out, strings.Join(tuple, ""))
	}
	return out, true
}

// permutationCount is k!/(k-m)!, the number of m-length arrangements of k
// items, 0 when m > k.
func permutationCount(k, m int) int {
	if m > k {
		return 0
	}
	n := 1
	for i := 0; i < m; i++ {
		n *= k - i
	}
	return n
}

// Permutations enumerates every r-length arrangement of items in index
// order, matching the order a nested loop over ascending indices would
// produce. items is never mutated.
func Permutations(items []string, r int) [][]string {
	if r <= 0 || r > len(items) {
		return nil
	}

	var out [][]string
	used := make([]bool, len(items))
	tuple := make([]string, 0, r)

	var walk func()
	walk = func() {
		if len(tuple) == r {
			out = append(out, append([]string(nil), tuple...))
			return
		}
		for i, item := range items {
			if used[i] {
				continue
			}
			used[i] = true
			tuple = append(tuple, item)
			walk()
			tuple = tuple[:len(tuple)-1]
			used[i] = false
		}
	}
	walk()
	return out
}
