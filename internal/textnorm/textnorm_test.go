package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"whitespace and punctuation", "一年  有幾個月？", "一年 有幾個月?"},
		{"stop phrase removed", "請回答下列問題", "下列問題"},
		{"example phrase becomes marker", "例如:AB12", "範例:AB12"},
		{"example phrase rewritten once", "如為3月5日", "範例3月5日"},
		{"bare example glyph", "舉例:AB 或 例:CD", "範例:AB 或 範例:CD"},
		{"conditional answer becomes example", "若你覺得答案為aB3", "範例答案為aB3"},
		{"fill-in becomes input marker", "把驗證碼填入欄位", "把驗證碼輸入欄位"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeBrackets(t *testing.T) {
	got := CanonicalizeBrackets("(A)[B]「C」《D》")
	want := "【A】【B】【C】【D】"
	if got != want {
		t.Errorf("CanonicalizeBrackets = %q, want %q", got, want)
	}
}

func TestFullToHalf(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ＡＢ１２３", "AB123"},
		{"abc", "abc"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FullToHalf(tt.input); got != tt.want {
			t.Errorf("FullToHalf(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatKeyword(t *testing.T) {
	got := FormatKeyword("週六, 週日／ $VIP")
	want := "週六週日/vip"
	if got != want {
		t.Errorf("FormatKeyword = %q, want %q", got, want)
	}
}

func TestStripHTMLTags(t *testing.T) {
	got := StripHTMLTags("<p>Hello <b>World</b></p>")
	if got != "Hello World" {
		t.Errorf("StripHTMLTags = %q, want %q", got, "Hello World")
	}
}

func TestFindBetween(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		start, end string
		want       string
	}{
		{"found", "ab【cd】ef", "【", "】", "cd"},
		{"missing start", "abcd】ef", "【", "】", ""},
		{"missing end", "ab【cdef", "【", "】", ""},
		{"empty span", "ab【】ef", "【", "】", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindBetween(tt.s, tt.start, tt.end); got != tt.want {
				t.Errorf("FindBetween(%q) = %q, want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	for _, v := range []string{"t", "T", "true", "TRUE", "y", "Yes", "YES"} {
		if !Truthy(v) {
			t.Errorf("Truthy(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"no", "false", "0", "off"} {
		if Truthy(v) {
			t.Errorf("Truthy(%q) = true, want false", v)
		}
	}
}
