package vocab

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/kyrelabs/respell/internal/netutil"
)

// ReadCounts parses "word count" lines, one entry per line. Blank lines and
// lines starting with '#' are skipped; malformed lines are ignored rather
// than aborting the load, matching how frequency lists in the wild look.
func ReadCounts(r io.Reader) (*Vocabulary, error) {
	v := New()
	s := bufio.NewScanner(r)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}
		count, err := strconv.Atoi(parts[1])
		if err != nil {
			// Some lists carry float frequencies; truncate them.
			fv, ferr := strconv.ParseFloat(parts[1], 64)
			if ferr != nil {
				continue
			}
			count = int(fv)
		}
		if count <= 0 {
			continue
		}
		if err := v.Add(parts[0], count); err != nil {
			continue
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("vocab: read counts: %w", err)
	}
	return v, nil
}

// LoadCounts reads a "word count" file from disk.
func LoadCounts(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCounts(f)
}

var corpusWordRe = regexp.MustCompile(`[\p{L}]+`)

// ReadCorpus builds a vocabulary by counting word occurrences in raw text.
func ReadCorpus(r io.Reader) (*Vocabulary, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("vocab: read corpus: %w", err)
	}
	v := New()
	for _, w := range corpusWordRe.FindAllString(strings.ToLower(string(data)), -1) {
		v.freq[w]++
	}
	v.dirty = true
	return v, nil
}

// LoadCorpus reads a raw text corpus from disk and counts its words.
func LoadCorpus(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vocab: open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCorpus(f)
}

// FetchCounts downloads a "word count" list from url.
func FetchCounts(ctx context.Context, url string) (*Vocabulary, error) {
	resp, err := netutil.Get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("vocab: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("vocab: fetch %s: unexpected status %s", url, resp.Status)
	}
	return ReadCounts(resp.Body)
}
