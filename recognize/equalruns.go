// Package recognize implements a stack-based recognizer for the fixed
// context-free language of equal-count symbol runs. It is a single-grammar
// recognizer, not a general pushdown-automaton interpreter.
package recognize

// Language is the two-symbol language { A^n B^n : n >= 0 }. The symbol
// pair is the only configurable part; the grammar itself is fixed.
type Language struct {
	A, B rune
}

// Accepts scans input in two phases over a marker stack, one pass, no
// backtracking. Phase 1 consumes a maximal leading run of A, pushing one
// marker per symbol. Phase 2 consumes the rest, which must be entirely B,
// popping one marker per symbol. It rejects on a B with the stack empty
// (more B's than A's), on any symbol outside the pair, and on an A after
// phase 2 has begun, so only inputs of the exact form A*B* survive the
// scan. It accepts iff the whole input was consumed and the stack drained,
// including n = 0 for the empty string.
func (l Language) Accepts(input string) bool {
	var stack []rune
	runes := []rune(input)
	i := 0

	for ; i < len(runes) && runes[i] == l.A; i++ {
		stack = append(stack, l.A)
	}
	for ; i < len(runes) && runes[i] == l.B; i++ {
		if len(stack) == 0 {
			return false
		}
		stack = stack[:len(stack)-1]
	}

	return i == len(runes) && len(stack) == 0
}

// EqualRuns recognizes { a^n b^n : n >= 0 } over the default pair {a, b}.
func EqualRuns(input string) bool {
	return Language{A: 'a', B: 'b'}.Accepts(input)
}
