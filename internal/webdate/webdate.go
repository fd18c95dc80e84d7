// Package webdate answers date/time verification questions. The prompt only
// ever asks for "the performance date" in some numeric format; the actual
// value comes from a short list of visible table-cell strings scraped near
// the question, and the format is inferred from the prompt's example digits.
package webdate

import (
	"strconv"
	"strings"
	"time"

	"quizkey/internal/pattern"
	"quizkey/internal/textnorm"
)

// Reference strings parse as these layouts.
const (
	refDateLayout     = "2006/01/02"
	refDateTimeLayout = "2006/01/02 15:04"
)

// Inferred output layouts (the strftime formats of the original prompts,
// expressed as Go reference layouts).
const (
	layoutMMDD       = "0102"
	layoutYYYYMMDD   = "20060102"
	layoutYMDSlashed = "2006/01/02"
	layoutHHMM       = "1504"
	layoutHHcMM      = "15:04"
	layoutIIMM       = "0304"
	layoutIIcMM      = "03:04"
)

// Exact (non-collapsed) class signatures the inferred hints are matched
// against.
var (
	sigFourDigits  = strings.Repeat(pattern.ClassDigit, 4)
	sigEightDigits = strings.Repeat(pattern.ClassDigit, 8)
	sigSlashedDate = sigFourDigits + "/" + strings.Repeat(pattern.ClassDigit, 2) + "/" + strings.Repeat(pattern.ClassDigit, 2)
	sigColonTime   = strings.Repeat(pattern.ClassDigit, 2) + ":" + strings.Repeat(pattern.ClassDigit, 2)
)

// classSignature is the exact per-rune abstraction used for format
// inference. Unlike pattern.Abstract it keeps the date/time separators, so
// the slashed and colon signatures above are matchable.
func classSignature(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteString(pattern.ClassDigit)
		case r == '/' || r == ':':
			b.WriteRune(r)
		}
	}
	return b.String()
}

var datePhrases = []string{
	"演出日期", "活動日期", "表演日期", "開始日期", "演唱會日期", "展覽日期", "音樂會日期",
}

var timePhrases = []string{
	"演出時間", "表演時間", "開始時間", "演唱會時間", "展覽時間", "音樂會時間",
}

const (
	englishDatePhrase = "the date of the show you purchased"
	englishTimePhrase = "the time of the show you purchased"
)

// ReferenceFromCells picks the reference date/time string: the first cell
// containing a plausible event year (this year up to two years out) together
// with a slash.
func ReferenceFromCells(cells []string, now time.Time) (string, bool) {
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		for year := now.Year(); year < now.Year()+3; year++ {
			if strings.Contains(cell, strconv.Itoa(year)) && strings.Contains(cell, "/") {
				return cell, true
			}
		}
	}
	return "", false
}

// ResolveDate renders the event date in the format the prompt asks for.
// Absent gate phrases, reference cells, or an inferrable format all yield
// (_, false); so does a reference that fails to parse.
func ResolveDate(raw string, cells []string, now time.Time) (string, bool) {
	if !wantsDate(raw) {
		return "", false
	}
	ref, ok := ReferenceFromCells(cells, now)
	if !ok {
		return "", false
	}

	formatted := textnorm.Normalize(raw)
	layout := inferDateLayout(formatted, now)
	if layout == "" {
		return "", false
	}

	if i := strings.Index(ref, " "); i >= 0 {
		ref = ref[:i]
	}
	t, err := time.Parse(refDateLayout, ref)
	if err != nil {
		return "", false
	}
	return t.Format(layout), true
}

func wantsDate(raw string) bool {
	if strings.Contains(raw, englishDatePhrase) {
		return true
	}
	if !strings.Contains(raw, "半形") || !strings.Contains(raw, "字") {
		return false
	}
	for _, p := range datePhrases {
		if strings.Contains(raw, p) {
			return true
		}
	}
	return false
}

func inferDateLayout(formatted string, now time.Time) string {
	// Explicit "4-digit half-width" cue.
	if strings.Contains(formatted, "4位半形") {
		return layoutMMDD
	}

	// "如為2月30日，請輸入0230" — digits of the example between the markers.
	if layout := layoutFromExample(formatted); layout != "" {
		return layout
	}

	// Last resort: a literal year in the text, with the span after it
	// abstracted exactly.
	for year := now.Year() - 4; year < now.Year()+2; year++ {
		i := strings.Index(formatted, strconv.Itoa(year))
		if i < 0 {
			continue
		}
		span := formatted[i:]
		if j := strings.Index(span, textnorm.MarkerExample); j >= 0 {
			span = span[j+len(textnorm.MarkerExample):]
		}
		for _, cut := range []string{"，", "。", " "} {
			if j := strings.Index(span, cut); j >= 0 {
				span = span[:j]
			}
		}
		for _, tail := range []string{")", "(", ".", "。", "）", "（", "[", "]"} {
			span = strings.TrimSuffix(span, tail)
		}

		switch classSignature(span) {
		case sigEightDigits:
			return layoutYYYYMMDD
		case sigSlashedDate:
			return layoutYMDSlashed
		}
		break
	}
	return ""
}

func layoutFromExample(formatted string) string {
	i := strings.Index(formatted, textnorm.MarkerExample)
	if i < 0 {
		return ""
	}
	right := formatted[i+len(textnorm.MarkerExample):]
	j := strings.Index(right, textnorm.MarkerInput)
	if j < 0 {
		return ""
	}
	digits := pattern.LeadingDigits(right[j+len(textnorm.MarkerInput):])
	switch classSignature(digits) {
	case sigEightDigits:
		return layoutYYYYMMDD
	case sigFourDigits:
		return layoutMMDD
	}
	return ""
}

// ResolveTime renders the event time. The reference string must carry both
// date and time (YYYY/MM/DD HH:MM), optionally with a trailing parenthetical
// weekday annotation, which is stripped.
func ResolveTime(raw string, cells []string, now time.Time) (string, bool) {
	if !wantsTime(raw) {
		return "", false
	}
	ref, ok := ReferenceFromCells(cells, now)
	if !ok {
		return "", false
	}

	formatted := textnorm.Normalize(raw)
	layout := inferTimeLayout(formatted)
	if layout == "" {
		return "", false
	}

	if i := strings.Index(ref, "("); i > 8 {
		ref = ref[:i-1]
	}
	t, err := time.Parse(refDateTimeLayout, ref)
	if err != nil {
		return "", false
	}
	return t.Format(layout), true
}

// wantsTime requires the half-width cue for the English phrase as well; the
// sites that use it always include it.
func wantsTime(raw string) bool {
	if !strings.Contains(raw, "半形") {
		return false
	}
	if strings.Contains(raw, englishTimePhrase) {
		return true
	}
	for _, p := range timePhrases {
		if strings.Contains(raw, p) {
			return true
		}
	}
	return false
}

func inferTimeLayout(formatted string) string {
	span := formatted
	if i := strings.Index(span, textnorm.MarkerExample); i >= 0 {
		span = span[i+len(textnorm.MarkerExample):]
	}
	for _, cut := range []string{"，", "。", " "} {
		if j := strings.Index(span, cut); j >= 0 {
			span = span[:j]
		}
	}

	twelveHour := strings.Contains(formatted, "12小時")
	switch classSignature(span) {
	case sigFourDigits:
		if twelveHour {
			return layoutIIMM
		}
		return layoutHHMM
	case sigColonTime:
		if twelveHour {
			return layoutIIcMM
		}
		return layoutHHcMM
	}
	return ""
}
