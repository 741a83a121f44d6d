package respell

import (
	"fmt"
	"math"

	"github.com/kyrelabs/respell/internal/model"
)

// Scorer assigns a score to every candidate in the minimum-distance set of
// one misspelled token. Implementations must return exactly one value per
// candidate; higher is better. Swapping the scorer changes ranking only,
// never the surrounding pipeline.
type Scorer interface {
	Score(misspelled string, candidates []model.Candidate) []float64
}

// NaiveScorer is the default: candidate frequency normalized by the total
// frequency mass of the minimum-distance set. A maximum-likelihood estimate
// restricted to the candidate set, deliberately simple.
type NaiveScorer struct{}

func (NaiveScorer) Score(_ string, candidates []model.Candidate) []float64 {
	total := 0
	for _, c := range candidates {
		total += c.Frequency
	}
	out := make([]float64, len(candidates))
	if total == 0 {
		return out
	}
	for i, c := range candidates {
		out[i] = float64(c.Frequency) / float64(total)
	}
	return out
}

// WeightedScorer balances frequency against edit distance:
// (freq · 1/(distance+1))^Lambda. Scores are comparable within one candidate
// set but are not normalized probabilities.
type WeightedScorer struct {
	Lambda float64 // 0 means the default 0.5
}

func (s WeightedScorer) Score(_ string, candidates []model.Candidate) []float64 {
	lambda := s.Lambda
	if lambda == 0 {
		lambda = 0.5
	}
	out := make([]float64, len(candidates))
	for i, c := range candidates {
		out[i] = math.Pow(float64(c.Frequency)/float64(c.Distance+1), lambda)
	}
	return out
}

// ScorerByName resolves "naive" or "weighted" to a Scorer.
func ScorerByName(name string) (Scorer, error) {
	switch name {
	case "naive":
		return NaiveScorer{}, nil
	case "weighted":
		return WeightedScorer{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownScorer, name)
	}
}
