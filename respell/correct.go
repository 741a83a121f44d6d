// Package respell corrects spelling errors in short free-text queries by
// ranking vocabulary words at minimal edit distance from each unknown token.
//
// A Corrector is bound to one vocabulary at construction and is stateless per
// call: it may be shared across goroutines, each Correct call being a pure
// computation over its inputs.
package respell

import (
	"fmt"
	"strings"

	"github.com/kyrelabs/respell/internal/model"
	"github.com/kyrelabs/respell/internal/tokenize"
	"github.com/kyrelabs/respell/internal/util"
	"github.com/kyrelabs/respell/internal/vocab"
	"github.com/kyrelabs/respell/pkg/levenshtein"
)

// Corrector replaces out-of-vocabulary tokens with their best candidate.
type Corrector struct {
	vocab   *vocab.Vocabulary
	tok     tokenize.Tokenizer
	scorer  Scorer
	maxDist int
}

// Option configures a Corrector.
type Option func(*Corrector)

// WithScorer swaps the candidate ranking strategy (default NaiveScorer).
func WithScorer(s Scorer) Option { return func(c *Corrector) { c.scorer = s } }

// WithTokenizer swaps the query tokenizer.
func WithTokenizer(t tokenize.Tokenizer) Option { return func(c *Corrector) { c.tok = t } }

// WithMaxDistance sets a correction cutoff: tokens whose nearest vocabulary
// word is further than n edits are left unchanged and flagged uncorrectable.
// 0 (the default) disables the cutoff.
func WithMaxDistance(n int) Option { return func(c *Corrector) { c.maxDist = n } }

// New builds a Corrector bound to v. The vocabulary is never mutated by
// correction calls; it may be shared with other correctors.
func New(v *vocab.Vocabulary, opts ...Option) (*Corrector, error) {
	if v == nil {
		return nil, ErrNilVocabulary
	}
	c := &Corrector{
		vocab:  v,
		tok:    tokenize.New(),
		scorer: NaiveScorer{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tok == nil {
		return nil, fmt.Errorf("respell: nil tokenizer")
	}
	if c.scorer == nil {
		return nil, fmt.Errorf("respell: nil scorer")
	}
	if c.maxDist < 0 {
		return nil, fmt.Errorf("respell: max distance must be >= 0, got %d", c.maxDist)
	}
	return c, nil
}

// Correct returns the corrected query string.
func (c *Corrector) Correct(query string) (string, error) {
	res, err := c.CorrectResult(query)
	if err != nil {
		return "", err
	}
	return res.Corrected, nil
}

// CorrectResult corrects the query and reports what happened to each
// misspelled token: the candidate set, its scores, and the chosen word.
//
// Tokens found in the vocabulary (case-insensitively) pass through untouched,
// as do separators and non-word tokens. A token with no usable candidate is
// kept as-is and flagged, never treated as an error: one unresolvable word
// must not abort the rest of the query.
func (c *Corrector) CorrectResult(query string) (*model.Result, error) {
	tokens := c.tok.Split(query)
	out := make([]tokenize.Token, len(tokens))
	copy(out, tokens)

	res := &model.Result{Original: query}

	for i, tok := range tokens {
		if !tok.Word {
			continue
		}
		res.TokenCount++

		lower := strings.ToLower(tok.Text)
		if c.vocab.Contains(lower) {
			continue
		}
		res.ErrorCount++

		corr, err := c.correctToken(i, tok.Text, lower)
		if err != nil {
			return nil, err
		}
		if !corr.Uncorrectable {
			out[i].Text = corr.Chosen
		}
		res.Corrections = append(res.Corrections, corr)
	}

	res.Corrected = tokenize.Join(out)
	res.EditDistance = levenshtein.Distance(res.Original, res.Corrected)
	return res, nil
}

// correctToken scans the vocabulary for the minimum-distance candidate set,
// scores it, and picks the winner.
//
// The scan walks vocab.Words() in sorted order, so the candidate set is
// always sorted too; combined with a strict greater-than comparison on
// scores this makes the tie-break deterministic: of equally probable
// candidates, the lexicographically smallest word wins.
func (c *Corrector) correctToken(idx int, origin, lower string) (model.Correction, error) {
	corr := model.Correction{Index: idx, Origin: origin}

	minDist := -1
	var set []model.Candidate
	for _, w := range c.vocab.Words() {
		var d int
		if c.maxDist > 0 {
			d = levenshtein.DistanceThreshold(lower, w, c.maxDist)
			if d > c.maxDist {
				continue
			}
		} else {
			d = levenshtein.Distance(lower, w)
		}

		switch {
		case minDist < 0 || d < minDist:
			minDist = d
			set = append(set[:0], model.Candidate{
				Word:      w,
				Frequency: c.vocab.Frequency(w),
				Distance:  d,
			})
		case d == minDist:
			set = append(set, model.Candidate{
				Word:      w,
				Frequency: c.vocab.Frequency(w),
				Distance:  d,
			})
		}
	}

	if len(set) == 0 {
		// Empty vocabulary, or nothing within the cutoff.
		corr.Uncorrectable = true
		return corr, nil
	}

	scores := c.scorer.Score(lower, set)
	if len(scores) != len(set) {
		return corr, fmt.Errorf("respell: scorer returned %d scores for %d candidates", len(scores), len(set))
	}

	best := 0
	for i := range set {
		set[i].Probability = scores[i]
		if scores[i] > scores[best] {
			best = i
		}
	}

	corr.Distance = minDist
	corr.Probability = scores[best]
	corr.Chosen = util.MatchCase(origin, set[best].Word)
	corr.Candidates = set
	return corr, nil
}

// AddWord folds a word into the bound vocabulary; used by the server's
// custom-word endpoints.
func (c *Corrector) AddWord(word string, count int) error {
	return c.vocab.Add(word, count)
}

// RemoveWord drops a word from the bound vocabulary.
func (c *Corrector) RemoveWord(word string) {
	c.vocab.Remove(word)
}

// EditDistance returns the Levenshtein distance between two strings. For the
// full matrix and edit script, use pkg/levenshtein.NewMatrix directly.
func EditDistance(source, target string) int {
	return levenshtein.Distance(source, target)
}
