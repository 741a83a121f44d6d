// Package vocab holds the reference vocabulary: a mapping from normalized
// word to positive occurrence count. The corrector only reads it; writers
// (loaders, the custom-word endpoints) go through Add/Remove, which keep the
// structure safe to share across concurrent correction calls.
package vocab

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var (
	// ErrInvalidFrequency rejects non-positive counts at load time so they
	// can never reach probability computation.
	ErrInvalidFrequency = errors.New("vocab: frequency must be positive")

	// ErrEmptyWord rejects empty or all-whitespace entries.
	ErrEmptyWord = errors.New("vocab: empty word")
)

// Vocabulary maps lower-cased words to occurrence counts.
type Vocabulary struct {
	mu    sync.RWMutex
	freq  map[string]int
	words []string // sorted; rebuilt lazily after writes
	dirty bool
}

// New returns an empty vocabulary.
func New() *Vocabulary {
	return &Vocabulary{freq: make(map[string]int)}
}

// FromMap builds a vocabulary from word → count. Keys are lower-cased;
// counts for keys that collide after normalization are summed.
func FromMap(counts map[string]int) (*Vocabulary, error) {
	v := New()
	for w, c := range counts {
		if err := v.Add(w, c); err != nil {
			return nil, fmt.Errorf("entry %q: %w", w, err)
		}
	}
	return v, nil
}

// Add inserts word with the given count, accumulating onto any existing
// entry. The word is normalized to lower case.
func (v *Vocabulary) Add(word string, count int) error {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return ErrEmptyWord
	}
	if count <= 0 {
		return fmt.Errorf("%w: %q has count %d", ErrInvalidFrequency, word, count)
	}
	v.mu.Lock()
	v.freq[w] += count
	v.dirty = true
	v.mu.Unlock()
	return nil
}

// Remove deletes word from the vocabulary, if present.
func (v *Vocabulary) Remove(word string) {
	w := strings.ToLower(strings.TrimSpace(word))
	v.mu.Lock()
	if _, ok := v.freq[w]; ok {
		delete(v.freq, w)
		v.dirty = true
	}
	v.mu.Unlock()
}

// Contains reports whether the lower-cased word is a known entry.
func (v *Vocabulary) Contains(word string) bool {
	v.mu.RLock()
	_, ok := v.freq[strings.ToLower(word)]
	v.mu.RUnlock()
	return ok
}

// Frequency returns the count for word, 0 if unknown.
func (v *Vocabulary) Frequency(word string) int {
	v.mu.RLock()
	c := v.freq[strings.ToLower(word)]
	v.mu.RUnlock()
	return c
}

// Len returns the number of distinct words.
func (v *Vocabulary) Len() int {
	v.mu.RLock()
	n := len(v.freq)
	v.mu.RUnlock()
	return n
}

// Words returns all entries in sorted order. The slice is shared between
// callers and must not be mutated; sorting makes vocabulary scans (and
// therefore tie handling downstream) deterministic.
func (v *Vocabulary) Words() []string {
	v.mu.RLock()
	if !v.dirty && v.words != nil {
		w := v.words
		v.mu.RUnlock()
		return w
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.dirty || v.words == nil {
		v.words = make([]string, 0, len(v.freq))
		for w := range v.freq {
			v.words = append(v.words, w)
		}
		sort.Strings(v.words)
		v.dirty = false
	}
	return v.words
}

// Clone returns an independent copy, used to extend a shared vocabulary
// with per-request words without mutating it.
func (v *Vocabulary) Clone() *Vocabulary {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := New()
	for w, c := range v.freq {
		out.freq[w] = c
	}
	out.dirty = true
	return out
}
