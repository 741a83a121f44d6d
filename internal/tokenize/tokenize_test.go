package tokenize

import "testing"

func TestSplitRoundTrips(t *testing.T) {
	inputs := []string{
		"",
		"banks",
		"Iranin financal banks are strongss",
		"  leading and trailing  ",
		"hello, world! 42 times",
		"tabs\tand\nnewlines",
	}
	s := New()
	for _, in := range inputs {
		if got := Join(s.Split(in)); got != in {
			t.Errorf("Join(Split(%q)) = %q", in, got)
		}
	}
}

func TestSplitMarksWords(t *testing.T) {
	tokens := New().Split("banks, 42 strongss!")

	var words []string
	for _, tok := range tokens {
		if tok.Word {
			words = append(words, tok.Text)
		}
	}
	want := []string{"banks", "strongss"}
	if len(words) != len(want) {
		t.Fatalf("word tokens = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("word[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestSplitSeparatorsPreserved(t *testing.T) {
	tokens := New().Split("a  b")
	if len(tokens) != 3 {
		t.Fatalf("tokens = %v, want 3 pieces", tokens)
	}
	if tokens[1].Word || tokens[1].Text != "  " {
		t.Errorf("separator token = %+v, want two spaces, not a word", tokens[1])
	}
}

func TestSplitEmpty(t *testing.T) {
	if got := New().Split(""); len(got) != 0 {
		t.Errorf("Split(\"\") = %v, want empty", got)
	}
}
