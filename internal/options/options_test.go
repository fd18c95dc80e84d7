package options

import (
	"reflect"
	"testing"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "parenthesized options",
			text: "請問一年有幾個月? (A)10 (B)11 (C)12",
			want: []string{"A", "B", "C"},
		},
		{
			name: "cjk bracketed options",
			text: "由小到大排序? 【七】 【三】 【九】",
			want: []string{"七", "三", "九"},
		},
		{
			name: "keep symbol suppresses trimming",
			text: "(甲) (乙) (丙) 符號必須一致",
			want: []string{"(甲)", "(乙)", "(丙)"},
		},
		{
			name: "majority length wins",
			text: "選一個? (A)x (B)y (C)z (DD)w",
			want: []string{"A", "B", "C"},
		},
		{
			name: "newline delimited",
			text: "下列何者正確\nA)甲\nB)乙\nC)丙",
			want: []string{"A", "B", "C"},
		},
		{
			name: "two options carry no signal",
			text: "(A)1 (B)2",
			want: nil,
		},
		{
			name: "no options",
			text: "請輸入驗證碼",
			want: nil,
		},
		{
			name: "empty",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Extract(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestExtractPunctDelimited(t *testing.T) {
	text := "哪個? A.ab\nB.cd\nC.ef\nD.gh"
	got := Extract(text)
	want := []string{"A", "B", "C", "D"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract(%q) = %v, want %v", text, got, want)
	}
}

func TestKeepSymbol(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"符號須都相同", true},
		{"符號必須一致", true},
		{"符號全部都一樣", true},
		{"大小寫含括號需一模一樣", true},
		{"大小寫括號需相同", true},
		{"請輸入文字", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := KeepSymbol(tt.text); got != tt.want {
			t.Errorf("KeepSymbol(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestExtractSymbolDelimited(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "parenthesized spans",
			text: "請以半形輸入 (a1) 或 (b2)",
			want: []string{"a1", "b2"},
		},
		{
			name: "missing half-width gate",
			text: "請輸入 (a1) 或 (b2)",
			want: nil,
		},
		{
			name: "single span rejected",
			text: "半形 (a1)",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSymbolDelimited(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractSymbolDelimited(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
