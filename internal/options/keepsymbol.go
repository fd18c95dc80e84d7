package options

import "strings"

// keepSynonyms collapses the phrasings of "must / all / identical" so the
// three fixed directive phrases below can match any spelling. The rewrites
// are applied in order: a later pair may match text produced by an earlier
// one.
var keepSynonyms = [][2]string{
	{"也", "須"},
	{"必須", "須"},
	{"全都", "都"},
	{"全部都", "都"},
	{"一致", "相同"},
	{"一樣", "相同"},
	{"相等", "相同"},
}

var keepPhrases = []string{"符號須都相同", "符號都相同", "符號須相同"}

// conjunction particles stripped before the case-and-brackets check.
var conjunctionParticles = []string{
	"含", "和", "與", "還有", "及", "以及", "需", "必須", "而且", "且", "一模",
}

// KeepSymbol reports whether the prompt demands that symbols (quotes,
// brackets, delimiters) be reproduced verbatim in the answer. When true, the
// extractors suppress their default trimming.
func KeepSymbol(text string) bool {
	collapsed := text
	for _, pair := range keepSynonyms {
		collapsed = strings.ReplaceAll(collapsed, pair[0], pair[1])
	}
	for _, phrase := range keepPhrases {
		if strings.Contains(collapsed, phrase) {
			return true
		}
	}

	// e.g. 大小寫含括號需一模一樣
	stripped := collapsed
	for _, p := range conjunctionParticles {
		stripped = strings.ReplaceAll(stripped, p, "")
	}
	return strings.Contains(stripped, "大小寫括號相同")
}
