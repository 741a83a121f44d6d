// Package levenshtein computes edit distances between strings.
//
// Distance is the fast path: a rolling-row DP scan that never materializes
// the full matrix, meant for scanning large vocabularies. NewMatrix builds
// the complete distance and backtrace matrices for callers that need to
// inspect the computation (diagnostics, edit scripts, tests).
package levenshtein

// Distance returns the edit distance between two strings (rune-aware).
// Uses the standard DP approach with a single rolling row to keep allocations minimal.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	if la == 0 {
		return lb
	}
	if lb == 0 {
		return la
	}

	// row[j] = distance(ra[:i], rb[:j])
	row := make([]int, lb+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= la; i++ {
		prev := i
		for j := 1; j <= lb; j++ {
			cost := row[j-1]
			if ra[i-1] != rb[j-1] {
				cost++ // substitute
				if row[j]+1 < cost {
					cost = row[j] + 1 // delete
				}
				if prev+1 < cost {
					cost = prev + 1 // insert
				}
			}
			row[j-1] = prev
			prev = cost
		}
		row[lb] = prev
	}
	return row[lb]
}

// DistanceThreshold is like Distance but returns max+1 as soon as the
// distance provably exceeds max. Useful when scanning a vocabulary with a
// correction cutoff: most entries fail the length check alone.
func DistanceThreshold(a, b string, max int) int {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)

	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if diff > max {
		return max + 1
	}

	d := Distance(a, b)
	if d > max {
		return max + 1
	}
	return d
}

// Ratio returns the similarity of two strings in [0, 1]; identical strings
// score 1.
func Ratio(a, b string) float64 {
	la, lb := len([]rune(a)), len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(Distance(a, b))/float64(maxLen)
}
