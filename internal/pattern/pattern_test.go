package pattern

import "testing"

func TestAbstract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		collapse bool
		want     string
	}{
		{"collapsed runs", "AB12", true, `[A-Z]+[\d]+`},
		{"exact classes", "AB12", false, `[A-Z][A-Z][\d][\d]`},
		{"mixed single runs", "Ab1", true, `[A-Z][a-z][\d]`},
		{"passthrough escaped", "a-b", true, `[a-z]\-[a-z]`},
		{"cjk dropped", "中文A", true, `[A-Z]`},
		{"empty", "", true, ""},
		{"long lower run", "abcde", true, `[a-z]+`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Abstract(tt.input, tt.collapse); got != tt.want {
				t.Errorf("Abstract(%q, %v) = %q, want %q", tt.input, tt.collapse, got, tt.want)
			}
		})
	}
}

func TestLeadingRuns(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"digits after prefix", LeadingDigits, "abc123def456", "123"},
		{"digits only", LeadingDigits, "0314 (半形)", "0314"},
		{"digits none", LeadingDigits, "abc", ""},
		{"alnum after space", LeadingAlnum, " ab12中cd", "ab12"},
		{"alnum stops at cjk", LeadingAlnum, ":zz99)", "zz99"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsAlnum(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"aB9", true},
		{"", false},
		{"a b", false},
		{"七", false},
		{"１２３", false},
	}
	for _, tt := range tests {
		if got := IsAlnum(tt.in); got != tt.want {
			t.Errorf("IsAlnum(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
