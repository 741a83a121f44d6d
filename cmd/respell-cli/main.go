// Command respell-cli pipes stdin (or a file) through the corrector and
// prints the corrected text, a colored diff, or the full JSON result.
//
// Usage:
//
//	echo "Iranin financal banks are strongss" | respell-cli -vocab en.txt
//	respell-cli -f query.txt -corpus corpus.txt -json
//	respell-cli -source play -target stay
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/kyrelabs/respell/internal/util"
	"github.com/kyrelabs/respell/internal/vocab"
	"github.com/kyrelabs/respell/pkg/levenshtein"
	"github.com/kyrelabs/respell/respell"
)

func main() {
	file    := flag.String("f", "", "file to read instead of stdin")
	vocPath := flag.String("vocab", "", "vocabulary file with 'word count' lines")
	corpus  := flag.String("corpus", "", "raw text corpus to count words from")
	dict    := flag.String("dict", "", "user dictionary JSON file (optional)")
	scorer  := flag.String("scorer", "naive", "candidate scorer: naive | weighted")
	maxDist := flag.Int("max", 0, "maximum edit distance for corrections (0 = unlimited)")
	asJSON  := flag.Bool("json", false, "print the full JSON result")
	colored := flag.Bool("color", false, "highlight replaced tokens")
	source  := flag.String("source", "", "distance mode: source string")
	target  := flag.String("target", "", "distance mode: target string")
	flag.Parse()

	// Distance mode: print the matrix, backtrace and edit script for one pair.
	if *source != "" || *target != "" {
		printDistance(*source, *target)
		return
	}

	v, err := loadVocabulary(*vocPath, *corpus)
	must(err)

	sc, err := respell.ScorerByName(*scorer)
	must(err)

	c, err := respell.New(v, respell.WithScorer(sc), respell.WithMaxDistance(*maxDist))
	must(err)

	var r io.Reader = os.Stdin
	if *file != "" {
		f, ferr := os.Open(*file)
		must(ferr)
		defer f.Close()
		r = f
	}
	data, err := io.ReadAll(r)
	must(err)
	query := strings.TrimRight(string(data), "\n")

	var d *respell.Dict
	if *dict != "" {
		d, err = respell.LoadDict(*dict)
		must(err)
	}

	res, err := c.CorrectResultWithDict(query, d)
	must(err)

	switch {
	case *asJSON:
		out, merr := util.MarshalNoEscape(res, true)
		must(merr)
		fmt.Println(string(out))
	case *colored:
		corrected := res.Corrected
		green := color.New(color.FgGreen, color.Bold)
		for _, corr := range res.Corrections {
			if corr.Uncorrectable {
				continue
			}
			corrected = strings.Replace(corrected, corr.Chosen, green.Sprint(corr.Chosen), 1)
		}
		fmt.Println(corrected)
	default:
		fmt.Println(res.Corrected)
	}
}

func loadVocabulary(vocPath, corpus string) (*vocab.Vocabulary, error) {
	switch {
	case vocPath != "" && corpus != "":
		return nil, fmt.Errorf("-vocab and -corpus are mutually exclusive")
	case vocPath != "":
		return vocab.LoadCounts(vocPath)
	case corpus != "":
		return vocab.LoadCorpus(corpus)
	default:
		return nil, fmt.Errorf("one of -vocab or -corpus is required")
	}
}

func printDistance(source, target string) {
	m, err := levenshtein.NewMatrix(source, target)
	must(err)

	fmt.Printf("distance(%q, %q) = %d\n\n", source, target, m.Distance())
	fmt.Println(m.Format())
	for _, op := range m.Operations() {
		switch op.Op {
		case levenshtein.OpInsert:
			fmt.Printf("insert     %q at %d\n", op.TargetRune, op.TargetIndex)
		case levenshtein.OpDelete:
			fmt.Printf("delete     %q at %d\n", op.SourceRune, op.SourceIndex)
		case levenshtein.OpSubstitute:
			fmt.Printf("substitute %q -> %q at %d\n", op.SourceRune, op.TargetRune, op.SourceIndex)
		}
	}
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "respell-cli:", err)
		os.Exit(1)
	}
}
