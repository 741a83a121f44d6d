package levenshtein

import "testing"

func TestDistanceBasics(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "stay", 4},
		{"play", "", 4},
		{"play", "stay", 2},
		{"play", "play", 0},
		{"financal", "financial", 1},
		{"financal", "financing", 3},
		{"kitten", "sitting", 3},
		{"Elephant", "relevant", 4},
		{"호랑이", "호랑이굴", 1},
	}
	for _, c := range cases {
		if got := Distance(c.a, c.b); got != c.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDistanceIdentity(t *testing.T) {
	for _, s := range []string{"", "a", "banks", "strongss", "편지"} {
		if got := Distance(s, s); got != 0 {
			t.Errorf("Distance(%q, %q) = %d, want 0", s, s, got)
		}
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"iranian", "iranin"},
		{"strong", "strongss"},
		{"", "banks"},
		{"abc", "xyz"},
	}
	for _, p := range pairs {
		ab, ba := Distance(p[0], p[1]), Distance(p[1], p[0])
		if ab != ba {
			t.Errorf("Distance(%q, %q) = %d but Distance(%q, %q) = %d", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestDistanceEmptyIsLength(t *testing.T) {
	for _, s := range []string{"a", "query", "편지지"} {
		n := len([]rune(s))
		if got := Distance("", s); got != n {
			t.Errorf("Distance(\"\", %q) = %d, want %d", s, got, n)
		}
		if got := Distance(s, ""); got != n {
			t.Errorf("Distance(%q, \"\") = %d, want %d", s, got, n)
		}
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	triples := [][3]string{
		{"financal", "financial", "financing"},
		{"play", "stay", "pray"},
		{"", "ab", "abcd"},
		{"iranin", "iranian", "iran"},
	}
	for _, tr := range triples {
		ac := Distance(tr[0], tr[2])
		ab := Distance(tr[0], tr[1])
		bc := Distance(tr[1], tr[2])
		if ac > ab+bc {
			t.Errorf("triangle inequality violated for %v: %d > %d + %d", tr, ac, ab, bc)
		}
	}
}

func TestDistanceThreshold(t *testing.T) {
	if got := DistanceThreshold("play", "stay", 2); got != 2 {
		t.Errorf("DistanceThreshold(play, stay, 2) = %d, want 2", got)
	}
	// Length difference alone exceeds the cutoff.
	if got := DistanceThreshold("a", "abcdef", 2); got != 3 {
		t.Errorf("DistanceThreshold(a, abcdef, 2) = %d, want 3", got)
	}
	if got := DistanceThreshold("kitten", "sitting", 2); got != 3 {
		t.Errorf("DistanceThreshold(kitten, sitting, 2) = %d, want 3", got)
	}
}

func TestRatio(t *testing.T) {
	if got := Ratio("", ""); got != 1.0 {
		t.Errorf("Ratio(\"\", \"\") = %v, want 1.0", got)
	}
	if got := Ratio("play", "play"); got != 1.0 {
		t.Errorf("Ratio(play, play) = %v, want 1.0", got)
	}
	if got := Ratio("play", "stay"); got != 0.5 {
		t.Errorf("Ratio(play, stay) = %v, want 0.5", got)
	}
}
