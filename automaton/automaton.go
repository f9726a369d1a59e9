// Package automaton builds and simulates finite automata over literal
// patterns: a chain NFA per pattern, an equivalent DFA by subset
// construction, and acceptance walks for both.
package automaton

// State identifies one automaton state. States are assigned densely from
// zero within a single automaton and carry no payload.
type State int

// Symbol is a single input character.
type Symbol = rune

// stateSet is a dense membership vector over one automaton's states. Subset
// construction and the multi-state walk both work in terms of it.
type stateSet []bool

func (s stateSet) empty() bool {
	for _, active := range s {
		if active {
			return false
		}
	}
	return true
}
