package engine

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = func() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func newTestPipeline() *Pipeline {
	return New(Config{Now: testNow})
}

func TestSolve(t *testing.T) {
	p := newTestPipeline()

	tests := []struct {
		name string
		q    Question
		want []string
	}{
		{
			name: "empty input",
			q:    Question{},
			want: []string{},
		},
		{
			name: "two question prompt abstains",
			q:    Question{Text: "本關卡共有二題 Q1.請輸入A Q2.請輸入B"},
			want: []string{},
		},
		{
			name: "cjk two question prompt abstains",
			q:    Question{Text: "第一題:請輸入A 第二題:請輸入B"},
			want: []string{},
		},
		{
			name: "agreement literal yes",
			q:    Question{Text: `請輸入"YES"，代表您已詳閱且瞭解並同意會員條款`},
			want: []string{"YES"},
		},
		{
			name: "agreement literal consent",
			q:    Question{Text: "請詳閱注意事項，並於驗證碼欄位輸入【同意】"},
			want: []string{"同意"},
		},
		{
			name: "quoted literal",
			q:    Question{Text: "請在下方空白處輸入引號內文字：「天下無敵」"},
			want: []string{"天下無敵"},
		},
		{
			name: "bracketed numeral normalized",
			q:    Question{Text: "請在空白處輸入括號內的數字【參拾玖】"},
			want: []string{"39"},
		},
		{
			name: "enumerated options",
			q:    Question{Text: "請問一年有幾個月? (A)10 (B)11 (C)12"},
			want: []string{"A", "B", "C"},
		},
		{
			name: "full width enumerated options",
			q:    Question{Text: "請問一年有幾個月？（Ａ）10（Ｂ）11（Ｃ）12"},
			want: []string{"Ａ", "Ｂ", "Ｃ"},
		},
		{
			name: "named event field",
			q:    Question{Text: "Please enter the name of event (ans:MAYDAY)"},
			want: []string{"MAYDAY"},
		},
		{
			name: "web date",
			q: Question{
				Text:          "請輸入演出日期，如為3月14日，請輸入0314 (半形數字)",
				DateTimeCells: []string{"2026/03/14 19:30 (六)"},
			},
			want: []string{"0314"},
		},
		{
			name: "web time",
			q: Question{
				Text:          "請以半形數字輸入演出時間，例如19:30。",
				DateTimeCells: []string{"2026/03/14 19:30 (六)"},
			},
			want: []string{"19:30"},
		},
		{
			name: "nothing inferred",
			q:    Question{Text: "這題沒有任何線索"},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Solve(tt.q)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Solve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSolveOrderingExpansion(t *testing.T) {
	p := newTestPipeline()
	q := Question{Text: "將數字由小到大排列? 【七】 【三】 【九】 例如:379"}

	want := []string{"七三九", "七九三", "三七九", "三九七", "九七三", "九三七"}
	got := p.Solve(q)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ordering expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveOrderingRespectsCap(t *testing.T) {
	p := New(Config{Now: testNow, MaxPermutations: 5})
	q := Question{Text: "將數字由小到大排列? 【七】 【三】 【九】 例如:379"}

	// P(3,3) = 6 exceeds the cap, so the plain option list stands.
	want := []string{"七", "三", "九"}
	got := p.Solve(q)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("capped expansion mismatch (-want +got):\n%s", diff)
	}
}

func TestSolveDeterministic(t *testing.T) {
	p := newTestPipeline()
	q := Question{Text: "本場驗證碼? (例如:zz99) aa11.bb22.cc33"}

	first := p.Solve(q)
	for i := 0; i < 3; i++ {
		if diff := cmp.Diff(first, p.Solve(q)); diff != "" {
			t.Fatalf("Solve not deterministic (-first +later):\n%s", diff)
		}
	}
}

func TestPermutations(t *testing.T) {
	got := Permutations([]string{"a", "b", "c"}, 2)
	want := [][]string{
		{"a", "b"}, {"a", "c"},
		{"b", "a"}, {"b", "c"},
		{"c", "a"}, {"c", "b"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Permutations mismatch (-want +got):\n%s", diff)
	}

	if Permutations([]string{"a"}, 2) != nil {
		t.Error("r > len(items) should yield nil")
	}
	if Permutations([]string{"a", "b"}, 0) != nil {
		t.Error("r = 0 should yield nil")
	}
}

func TestPermutationCount(t *testing.T) {
	tests := []struct {
		k, m, want int
	}{
		{3, 3, 6},
		{3, 2, 6},
		{4, 3, 24},
		{2, 3, 0},
		{10, 4, 5040},
	}
	for _, tt := range tests {
		if got := permutationCount(tt.k, tt.m); got != tt.want {
			t.Errorf("permutationCount(%d, %d) = %d, want %d", tt.k, tt.m, got, tt.want)
		}
	}
}
