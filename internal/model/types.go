package model

// Result is JSON-serialisable as-is.
type Result struct {
	Original     string       `json:"original"`              // raw input query
	Corrected    string       `json:"corrected"`             // query after replacements
	EditDistance int          `json:"editDistance"`          // Levenshtein(original, corrected)
	TokenCount   int          `json:"tokenCount"`            // word tokens in the query
	ErrorCount   int          `json:"errorCount"`            // tokens absent from the vocabulary
	Corrections  []Correction `json:"corrections,omitempty"` // nil if nothing was misspelled
}

// Correction describes the handling of one out-of-vocabulary token.
type Correction struct {
	Index         int         `json:"index"`                   // token position in the tokenized query
	Origin        string      `json:"origin"`                  // token as it appeared in the input
	Chosen        string      `json:"chosen,omitempty"`        // winning replacement, original casing applied
	Distance      int         `json:"distance"`                // minimum edit distance found
	Probability   float64     `json:"probability"`             // score of the winning candidate
	Candidates    []Candidate `json:"candidates,omitempty"`    // the minimum-distance set, scored
	Uncorrectable bool        `json:"uncorrectable,omitempty"` // no usable candidate; token kept as-is
}

// Candidate is one vocabulary word proposed for a misspelled token.
type Candidate struct {
	Word        string  `json:"word"`
	Frequency   int     `json:"frequency"`
	Distance    int     `json:"distance"`
	Probability float64 `json:"probability"`
}
