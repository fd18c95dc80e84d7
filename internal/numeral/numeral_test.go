package numeral

import "testing"

func TestToDigit(t *testing.T) {
	tests := []struct {
		glyph string
		want  int
		ok    bool
	}{
		{"0", 0, true},
		{"７", 7, true},
		{"TWO", 2, true},
		{"two", 2, true},
		{"貳", 2, true},
		{"贰", 2, true},
		{"參", 3, true},
		{"⑤", 5, true},
		{"❾", 9, true},
		{"x", 0, false},
		{"", 0, false},
		{"ten", 0, false},
	}
	for _, tt := range tests {
		got, ok := ToDigit(tt.glyph)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ToDigit(%q) = (%d, %v), want (%d, %v)", tt.glyph, got, ok, tt.want, tt.ok)
		}
	}
}

func TestRuneToDigit(t *testing.T) {
	if d, ok := RuneToDigit('伍'); !ok || d != 5 {
		t.Errorf("RuneToDigit('伍') = (%d, %v), want (5, true)", d, ok)
	}
	if _, ok := RuneToDigit('拾'); ok {
		t.Error("RuneToDigit('拾') matched, want no match")
	}
}

func TestNormalizeRun(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"壹贰三", "123"},
		{"參拾玖", "39"},
		{"a1二c", "12"},
		{"", ""},
		{"中文", ""},
	}
	for _, tt := range tests {
		if got := NormalizeRun(tt.input); got != tt.want {
			t.Errorf("NormalizeRun(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSynonyms(t *testing.T) {
	syns := Synonyms(2)
	found := false
	for _, s := range syns {
		if s == "贰" {
			found = true
		}
	}
	if !found {
		t.Errorf("Synonyms(2) = %v, missing simplified financial form", syns)
	}
	if Synonyms(10) != nil || Synonyms(-1) != nil {
		t.Error("Synonyms out of range should return nil")
	}
}
