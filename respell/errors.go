package respell

import "errors"

var (
	// ErrNilVocabulary signals a corrector constructed without a vocabulary.
	ErrNilVocabulary = errors.New("respell: nil vocabulary")

	// ErrUnknownScorer signals an unrecognized scorer name.
	ErrUnknownScorer = errors.New("respell: unknown scorer")
)
