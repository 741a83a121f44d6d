package respell

import (
	"errors"
	"testing"

	"github.com/kyrelabs/respell/internal/model"
	"github.com/kyrelabs/respell/internal/vocab"
)

func demoVocabulary(t *testing.T) *vocab.Vocabulary {
	t.Helper()
	v, err := vocab.FromMap(map[string]int{
		"iranian":   10,
		"financial": 10,
		"financing": 1,
		"banks":     5,
		"are":       8,
		"strong":    7,
	})
	if err != nil {
		t.Fatalf("building vocabulary: %v", err)
	}
	return v
}

func mustCorrector(t *testing.T, v *vocab.Vocabulary, opts ...Option) *Corrector {
	t.Helper()
	c, err := New(v, opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestNewNilVocabulary(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilVocabulary) {
		t.Fatalf("New(nil) error = %v, want ErrNilVocabulary", err)
	}
}

func TestNewNegativeMaxDistance(t *testing.T) {
	if _, err := New(vocab.New(), WithMaxDistance(-1)); err == nil {
		t.Fatal("New with negative max distance should fail")
	}
}

func TestCorrectEmptyQuery(t *testing.T) {
	c := mustCorrector(t, demoVocabulary(t))
	got, err := c.Correct("")
	if err != nil {
		t.Fatalf("Correct(\"\"): %v", err)
	}
	if got != "" {
		t.Errorf("Correct(\"\") = %q, want \"\"", got)
	}
}

func TestCorrectAllKnownUnchanged(t *testing.T) {
	c := mustCorrector(t, demoVocabulary(t))
	in := "iranian banks are strong"
	got, err := c.Correct(in)
	if err != nil {
		t.Fatal(err)
	}
	if got != in {
		t.Errorf("Correct(%q) = %q, want unchanged", in, got)
	}
}

func TestCorrectSingleToken(t *testing.T) {
	// Lower distance and higher frequency both favor "financial".
	v, err := vocab.FromMap(map[string]int{"financial": 10, "financing": 1})
	if err != nil {
		t.Fatal(err)
	}
	c := mustCorrector(t, v)

	got, err := c.Correct("financal")
	if err != nil {
		t.Fatal(err)
	}
	if got != "financial" {
		t.Errorf("Correct(financal) = %q, want financial", got)
	}
}

func TestCorrectEndToEnd(t *testing.T) {
	c := mustCorrector(t, demoVocabulary(t))

	got, err := c.Correct("Iranin financal banks are strongss")
	if err != nil {
		t.Fatal(err)
	}
	want := "Iranian financial banks are strong"
	if got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}
}

func TestCorrectIdempotent(t *testing.T) {
	c := mustCorrector(t, demoVocabulary(t))

	once, err := c.Correct("Iranin financal banks are strongss")
	if err != nil {
		t.Fatal(err)
	}
	twice, err := c.Correct(once)
	if err != nil {
		t.Fatal(err)
	}
	if twice != once {
		t.Errorf("Correct(Correct(q)) = %q, want %q", twice, once)
	}
}

func TestCorrectPreservesCasing(t *testing.T) {
	c := mustCorrector(t, demoVocabulary(t))

	cases := []struct{ in, want string }{
		{"Iranin", "Iranian"},     // title case survives
		{"FINANCAL", "FINANCIAL"}, // all-caps survives
		{"financal", "financial"}, // lower stays canonical
	}
	for _, cs := range cases {
		got, err := c.Correct(cs.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != cs.want {
			t.Errorf("Correct(%q) = %q, want %q", cs.in, got, cs.want)
		}
	}
}

func TestCorrectPreservesSeparators(t *testing.T) {
	c := mustCorrector(t, demoVocabulary(t))

	got, err := c.Correct("financal,  banks! 42")
	if err != nil {
		t.Fatal(err)
	}
	want := "financial,  banks! 42"
	if got != want {
		t.Errorf("Correct() = %q, want %q", got, want)
	}
}

func TestCorrectEmptyVocabularyDegradesGracefully(t *testing.T) {
	c := mustCorrector(t, vocab.New())

	res, err := c.CorrectResult("hello world")
	if err != nil {
		t.Fatalf("empty vocabulary must not error: %v", err)
	}
	if res.Corrected != "hello world" {
		t.Errorf("Corrected = %q, want input unchanged", res.Corrected)
	}
	if len(res.Corrections) != 2 {
		t.Fatalf("Corrections = %d entries, want 2", len(res.Corrections))
	}
	for _, corr := range res.Corrections {
		if !corr.Uncorrectable {
			t.Errorf("token %q should be flagged uncorrectable", corr.Origin)
		}
	}
}

func TestCorrectTieBreakLexicographic(t *testing.T) {
	v, err := vocab.FromMap(map[string]int{"bat": 3, "cat": 3})
	if err != nil {
		t.Fatal(err)
	}
	c := mustCorrector(t, v)

	// Both candidates sit at distance 1 with equal probability;
	// the lexicographically smallest must win, deterministically.
	for i := 0; i < 10; i++ {
		got, err := c.Correct("aat")
		if err != nil {
			t.Fatal(err)
		}
		if got != "bat" {
			t.Fatalf("Correct(aat) = %q, want bat", got)
		}
	}
}

func TestCorrectMaxDistanceCutoff(t *testing.T) {
	c := mustCorrector(t, demoVocabulary(t), WithMaxDistance(1))

	// "strongss" is 2 edits from "strong": beyond the cutoff.
	res, err := c.CorrectResult("strongss")
	if err != nil {
		t.Fatal(err)
	}
	if res.Corrected != "strongss" {
		t.Errorf("Corrected = %q, want input unchanged", res.Corrected)
	}
	if len(res.Corrections) != 1 || !res.Corrections[0].Uncorrectable {
		t.Errorf("Corrections = %+v, want one uncorrectable entry", res.Corrections)
	}

	// "financal" is 1 edit away and still corrects.
	got, err := c.Correct("financal")
	if err != nil {
		t.Fatal(err)
	}
	if got != "financial" {
		t.Errorf("Correct(financal) = %q, want financial", got)
	}
}

func TestCorrectResultDetails(t *testing.T) {
	c := mustCorrector(t, demoVocabulary(t))

	res, err := c.CorrectResult("Iranin banks")
	if err != nil {
		t.Fatal(err)
	}
	if res.TokenCount != 2 {
		t.Errorf("TokenCount = %d, want 2", res.TokenCount)
	}
	if res.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", res.ErrorCount)
	}
	if len(res.Corrections) != 1 {
		t.Fatalf("Corrections = %+v, want one entry", res.Corrections)
	}

	corr := res.Corrections[0]
	if corr.Origin != "Iranin" || corr.Chosen != "Iranian" {
		t.Errorf("correction = %q -> %q, want Iranin -> Iranian", corr.Origin, corr.Chosen)
	}
	if corr.Distance != 1 {
		t.Errorf("Distance = %d, want 1", corr.Distance)
	}
	if corr.Probability != 1.0 {
		t.Errorf("Probability = %v, want 1.0 for a lone candidate", corr.Probability)
	}
	if res.EditDistance != EditDistance(res.Original, res.Corrected) {
		t.Errorf("EditDistance = %d, inconsistent with corrected text", res.EditDistance)
	}
}

// lowFrequencyScorer inverts the usual preference, proving the strategy is
// actually consulted.
type lowFrequencyScorer struct{}

func (lowFrequencyScorer) Score(_ string, cands []model.Candidate) []float64 {
	out := make([]float64, len(cands))
	for i, c := range cands {
		out[i] = 1.0 / float64(c.Frequency)
	}
	return out
}

func TestCorrectCustomScorer(t *testing.T) {
	v, err := vocab.FromMap(map[string]int{"bat": 10, "cat": 1})
	if err != nil {
		t.Fatal(err)
	}

	def := mustCorrector(t, v)
	got, err := def.Correct("aat")
	if err != nil {
		t.Fatal(err)
	}
	if got != "bat" {
		t.Fatalf("default scorer chose %q, want bat", got)
	}

	inv := mustCorrector(t, v, WithScorer(lowFrequencyScorer{}))
	got, err = inv.Correct("aat")
	if err != nil {
		t.Fatal(err)
	}
	if got != "cat" {
		t.Errorf("custom scorer chose %q, want cat", got)
	}
}

func TestCorrectDoesNotMutateVocabulary(t *testing.T) {
	v := demoVocabulary(t)
	before := v.Len()
	c := mustCorrector(t, v)

	if _, err := c.Correct("Iranin financal banks are strongss"); err != nil {
		t.Fatal(err)
	}
	if v.Len() != before {
		t.Errorf("vocabulary size changed from %d to %d", before, v.Len())
	}
}

func TestCorrectResultWithDict(t *testing.T) {
	v, err := vocab.FromMap(map[string]int{"cluster": 3})
	if err != nil {
		t.Fatal(err)
	}
	c := mustCorrector(t, v)

	res, err := c.CorrectResultWithDict("kafka clustr", NewDict("kafka"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Corrected != "kafka cluster" {
		t.Errorf("Corrected = %q, want %q", res.Corrected, "kafka cluster")
	}
	if v.Contains("kafka") {
		t.Error("per-request dictionary leaked into the shared vocabulary")
	}
}

func TestScorerByName(t *testing.T) {
	if _, err := ScorerByName("naive"); err != nil {
		t.Errorf("ScorerByName(naive): %v", err)
	}
	if _, err := ScorerByName("weighted"); err != nil {
		t.Errorf("ScorerByName(weighted): %v", err)
	}
	if _, err := ScorerByName("markov"); !errors.Is(err, ErrUnknownScorer) {
		t.Errorf("ScorerByName(markov) error = %v, want ErrUnknownScorer", err)
	}
}

func TestNaiveScorerNormalizes(t *testing.T) {
	cands := []model.Candidate{
		{Word: "financial", Frequency: 10, Distance: 1},
		{Word: "financing", Frequency: 1, Distance: 1},
	}
	scores := NaiveScorer{}.Score("financal", cands)
	if len(scores) != 2 {
		t.Fatalf("scores = %v, want 2 entries", scores)
	}
	sum := scores[0] + scores[1]
	if sum < 0.999 || sum > 1.001 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}
	if scores[0] <= scores[1] {
		t.Errorf("higher frequency should score higher: %v", scores)
	}
}
