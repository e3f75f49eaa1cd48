package retrieval

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "trims whitespace", in: "  Hello World  ", out: "hello world"},
		{name: "removes punctuation", in: "What's the check-in time?", out: "what s the check in time"},
		{name: "collapses runs", in: "pool -- timings!!", out: "pool timings"},
		{name: "punctuation only", in: "?!...", out: ""},
	}

	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.out {
			t.Fatalf("%s: expected %q got %q", tc.name, tc.out, got)
		}
	}
}

func TestTokenizeDropsStopwords(t *testing.T) {
	tok := NewTokenizer(true)
	got := tok.Tokenize("Is the pool on the roof?")
	want := []string{"pool", "roof"}
	if len(got) != len(want) {
		t.Fatalf("expected %v got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v got %v", want, got)
		}
	}
}

func TestTokenizeKeepsStopwordsWhenDisabled(t *testing.T) {
	tok := NewTokenizer(false)
	if got := tok.Tokenize("is the pool open"); len(got) != 4 {
		t.Fatalf("expected 4 tokens got %v", got)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	tok := NewTokenizer(true)
	if got := tok.Tokenize("?!"); got != nil {
		t.Fatalf("expected nil tokens got %v", got)
	}
}
