package respell

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/kyrelabs/respell/internal/model"
)

// DictFrequency is the count given to user-dictionary words when merged into
// a vocabulary; high enough that an exact match on a dictionary word always
// dominates scoring.
const DictFrequency = 1_000_000_000

// Dict is a user dictionary: words accepted as correctly spelled even when
// the reference vocabulary does not know them.
type Dict struct {
	Words []string `json:"words"`
}

// NewDict creates a Dict from the given words.
func NewDict(words ...string) *Dict {
	return &Dict{Words: words}
}

// LoadDict reads a JSON file of the form {"words": ["grafana", ...]}.
func LoadDict(path string) (*Dict, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var d Dict
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("respell: parse dict %s: %w", path, err)
	}
	return &d, nil
}

// CorrectResultWithDict is like CorrectResult but treats every word in d as
// part of the vocabulary for this one call. The bound vocabulary is cloned,
// not mutated.
func (c *Corrector) CorrectResultWithDict(query string, d *Dict) (*model.Result, error) {
	if d == nil || len(d.Words) == 0 {
		return c.CorrectResult(query)
	}

	v := c.vocab.Clone()
	for _, w := range d.Words {
		if strings.TrimSpace(w) == "" {
			continue
		}
		if err := v.Add(w, DictFrequency); err != nil {
			return nil, err
		}
	}

	ext := *c
	ext.vocab = v
	return ext.CorrectResult(query)
}
