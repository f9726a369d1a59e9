package automaton

import "slices"

// NFA is a nondeterministic finite automaton: a transition may lead to a
// set of states. Built once, then immutable; simulation never mutates it.
//
// Invariants: Start is in States; every state mentioned in Trans is in
// States; every symbol with a target is in Alphabet. AddTransition
// maintains all three.
type NFA struct {
	States   []State                      // dense, ascending
	Alphabet []Symbol                     // distinct, sorted
	Trans    map[State]map[Symbol][]State // targets distinct, sorted
	Start    State
	Finals   []State
}

// BuildNfa Pattern -> NFA (Nondeterministic Finite Automaton)
// Only literal concatenation is supported: a pattern of length L becomes a
// chain of L+1 states where state i steps to i+1 on the i-th pattern
// symbol. State 0 is the start state, state L the only final state, and
// the alphabet is the set of distinct pattern symbols. The empty pattern
// yields a single state that is both start and final, accepting only the
// empty string.
//
// The chain never branches, so although the type permits nondeterminism,
// the built automaton is already deterministic.
func BuildNfa(pattern string) *NFA {
	nfa := &NFA{
		States: []State{0},
		Trans:  make(map[State]map[Symbol][]State),
	}
	last := State(0)
	for _, r := range pattern {
		next := last + 1
		nfa.States = append(nfa.States, next)
		nfa.AddTransition(last, r, next)
		last = next
	}
	nfa.Finals = []State{last}
	return nfa
}

// AddTransition records from --sym--> to, keeping target lists sorted and
// duplicate-free and adding sym to the alphabet.
func (n *NFA) AddTransition(from State, sym Symbol, to State) {
	m := n.Trans[from]
	if m == nil {
		m = make(map[Symbol][]State)
		n.Trans[from] = m
	}
	if i, found := slices.BinarySearch(m[sym], to); !found {
		m[sym] = slices.Insert(m[sym], i, to)
	}
	if i, found := slices.BinarySearch(n.Alphabet, sym); !found {
		n.Alphabet = slices.Insert(n.Alphabet, i, sym)
	}
}

// Accepts simulates the NFA over input with a multi-state walk. The active
// set starts as {Start}; each input symbol replaces it with the union of
// transition targets from every active state. Once the active set goes
// empty no suffix can revive it, so simulation rejects without reading the
// rest of the input. After the input is exhausted it accepts iff some
// active state is final.
func (n *NFA) Accepts(input string) bool {
	current := n.newStateSet()
	current[n.Start] = true
	n.closure(current)
	for _, r := range input {
		current = n.move(current, r)
		if current.empty() {
			return false
		}
	}
	for _, f := range n.Finals {
		if current[f] {
			return true
		}
	}
	return false
}

// move returns the union of transition targets on sym from every state in
// the set, closed over epsilon edges.
func (n *NFA) move(set stateSet, sym Symbol) stateSet {
	next := n.newStateSet()
	for i, active := range set {
		if !active {
			continue
		}
		for _, t := range n.Trans[State(i)][sym] {
			next[t] = true
		}
	}
	n.closure(next)
	return next
}

// closure expands the set over epsilon edges. The chain construction emits
// none, so this is the identity; it keeps move shaped for constructions
// that do.
func (n *NFA) closure(stateSet) {}

func (n *NFA) newStateSet() stateSet {
	return make(stateSet, len(n.States))
}
