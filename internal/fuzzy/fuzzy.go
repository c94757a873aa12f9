// Package fuzzy implements the edit-distance matching behind "did you
// mean" suggestions for misspelled option names.
package fuzzy

import "strings"

// MaxDistance is the edit distance beyond which two names are not
// considered related.
const MaxDistance = 2

// minInputLen keeps one-character queries from matching half the
// vocabulary.
const minInputLen = 2

// Closest returns the candidate nearest to input, or "" when none is
// within MaxDistance. Matching is case-insensitive. Ties go to the
// candidate sharing the longer prefix with the input, then to the earlier
// candidate.
func Closest(input string, candidates []string) string {
	if len(input) < minInputLen {
		return ""
	}
	in := strings.ToLower(input)

	best := ""
	bestDist := MaxDistance + 1
	bestPrefix := -1
	for _, c := range candidates {
		cand := strings.ToLower(c)
		if cand == in {
			// Exact matches are not suggestions; the caller already
			// has the name.
			continue
		}
		d := distance(in, cand, MaxDistance)
		if d < 0 {
			continue
		}
		prefix := commonPrefixLen(in, cand)
		if d < bestDist || (d == bestDist && prefix > bestPrefix) {
			best, bestDist, bestPrefix = c, d, prefix
		}
	}
	return best
}

// distance returns the Levenshtein distance between a and b, or -1 once it
// is known to exceed maxDist. Two rows instead of the full matrix, with an
// early exit when a whole row is already past the cap.
func distance(a, b string, maxDist int) int {
	if a == b {
		return 0
	}
	if d := len(a) - len(b); d > maxDist || -d > maxDist {
		return -1
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		rowMin := i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := min(prev[j-1]+cost, prev[j]+1, curr[j-1]+1)
			curr[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if rowMin > maxDist {
			return -1
		}
		prev, curr = curr, prev
	}

	if prev[len(b)] > maxDist {
		return -1
	}
	return prev[len(b)]
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
