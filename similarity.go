package headscan

import (
	"math"
	"strings"
)

// Similarity computes the textual overlap between two strings as an
// integer percentage in [0, 100]. Both inputs are trimmed and lowercased
// before comparison; identical normalized strings (including two empty
// ones) score 100, and a single empty string scores 0.
//
// The metric is the classic longest-common-substring composition: find the
// longest common contiguous run, recurse into the left and right
// remainders, and report round(2*matched/(len(a)+len(b))*100). It operates
// on runes so multi-byte text compares character by character. Pure and
// deterministic; quadratic in the worst case, which is acceptable for the
// short strings (titles, headings) it is applied to.
func Similarity(a, b string) int {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))

	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)
	matched := matchedChars(ra, rb)

	percent := float64(matched) * 2 * 100 / float64(len(ra)+len(rb))
	return int(math.Round(percent))
}

// matchedChars returns the total number of characters covered by the
// recursive longest-common-substring decomposition of a and b.
func matchedChars(a, b []rune) int {
	pa, pb, max := longestCommonRun(a, b)
	if max == 0 {
		return 0
	}

	sum := max
	if pa > 0 && pb > 0 {
		sum += matchedChars(a[:pa], b[:pb])
	}
	if pa+max < len(a) && pb+max < len(b) {
		sum += matchedChars(a[pa+max:], b[pb+max:])
	}
	return sum
}

// longestCommonRun finds the first longest common contiguous run between a
// and b, returning its start positions and length. Ties keep the earliest
// match so the decomposition is deterministic.
func longestCommonRun(a, b []rune) (pa, pb, max int) {
	for i := range a {
		for j := range b {
			n := 0
			for i+n < len(a) && j+n < len(b) && a[i+n] == b[j+n] {
				n++
			}
			if n > max {
				pa, pb, max = i, j, n
			}
		}
	}
	return pa, pb, max
}
