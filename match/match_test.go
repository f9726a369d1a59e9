package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	for _, x := range []struct {
		text, pattern string
		maxErrors     int
		want          bool
	}{
		// Exact substring, zero budget.
		{"abcde", "bcd", 0, true},
		{"abcde", "abcde", 0, true},
		{"abcde", "bcx", 0, false},
		// One substitution.
		{"abcde", "xcd", 1, true},
		// No 3-length window of "abcde" gets within one edit of "xyz".
		{"abcde", "xyz", 1, false},
		// The text prefix before the occurrence is free.
		{"xxxxxab", "ab", 0, true},
		// Insertions and deletions count too.
		{"zabde", "abcde", 1, true},
		{"abcxde", "abcde", 1, true},
		// Budget exhausted.
		{"abcxde", "abcde", 0, false},
		{"", "a", 0, false},
		// Pattern longer than any alignment window.
		{"ab", "abcde", 1, false},
	} {
		t.Run(fmt.Sprintf("%s/%s/%d", x.text, x.pattern, x.maxErrors), func(t *testing.T) {
			require.Equal(t, x.want, Contains(x.text, x.pattern, x.maxErrors))
		})
	}
}

func TestContainsDNASequences(t *testing.T) {
	require.True(t, Contains("GATTACA", "TAC", 0))
	require.True(t, Contains("GATTACA", "TAG", 1))
	require.False(t, Contains("GATTACA", "CCC", 1))
}

// The empty pattern occurs everywhere at zero cost.
func TestContainsEmptyPattern(t *testing.T) {
	require.True(t, Contains("", "", 0))
	require.True(t, Contains("abc", "", 0))
}

// A negative budget can never be met by a nonempty pattern; still a normal
// reject, not a fault.
func TestContainsNegativeBudget(t *testing.T) {
	require.False(t, Contains("abc", "abc", -1))
}
