// Package match implements threshold-bounded approximate substring
// matching by dynamic programming over the full edit-distance table.
package match

// Contains reports whether pattern occurs somewhere within text with at
// most maxErrors character substitutions, insertions, or deletions. With
// maxErrors of 0 it reduces to exact substring containment.
//
// dp[i][j] is the minimal cost of aligning the first j pattern symbols
// against a suffix of the first i text symbols ending at position i.
// dp[i][0] = 0 for all i: the text may carry an arbitrary free prefix
// before the pattern starts, which is what makes this a substring search
// rather than whole-string comparison. dp[0][j] = j: an unmatched pattern
// prefix costs one insertion per symbol. The predicate holds iff some
// alignment consuming at least the full pattern length finishes within
// the budget.
//
// The full (|text|+1) x (|pattern|+1) table is built every call; there is
// no banded or incremental shortcut, so cost is O(|text|*|pattern|) in
// both time and space. Callers with large inputs must bound them
// externally.
func Contains(text, pattern string, maxErrors int) bool {
	t, p := []rune(text), []rune(pattern)
	n, m := len(t), len(p)

	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for j := 0; j <= m; j++ {
		dp[0][j] = j
	}

	for i := 1; i <= n; i++ {
		dp[i][0] = 0
		for j := 1; j <= m; j++ {
			if t[i-1] == p[j-1] {
				dp[i][j] = dp[i-1][j-1]
			} else {
				// Substitution, insertion, deletion.
				dp[i][j] = 1 + min(dp[i-1][j-1], dp[i][j-1], dp[i-1][j])
			}
		}
	}

	// An occurrence cannot plausibly end before the full pattern length.
	for i := m; i <= n; i++ {
		if dp[i][m] <= maxErrors {
			return true
		}
	}
	return false
}
