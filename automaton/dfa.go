package automaton

import "slices"

// DFA is a deterministic finite automaton: at most one target per
// (state, symbol). A missing entry is the implicit dead state, which is
// never materialized. Derived once from an NFA, then immutable.
type DFA struct {
	States   []State
	Alphabet []Symbol // distinct, sorted
	Trans    map[State]map[Symbol]State
	Start    State
	Finals   []State
}

// BuildDfa NFA -> DFA by subset construction.
//
// Reachable subsets of NFA states become DFA states. Exploration is
// breadth-first from {nfa.Start}, which takes id 0; a canonical key over
// each subset memoizes assigned ids, so equal subsets resolve to the same
// DFA state no matter how they were reached. The alphabet is walked in
// sorted order and ids are handed out in discovery order, which makes the
// numbering reproducible. An empty move result is skipped rather than
// recorded as an explicit sink; a subset's id is final iff the subset
// contains an NFA final state.
//
// Every subset is enqueued at most once, so the walk terminates after at
// most 2^|nfa.States| subsets. The NFA is read, never mutated.
func BuildDfa(nfa *NFA) *DFA {
	b := &dfaBuilder{
		nfa: nfa,
		tab: make(map[string]State),
	}
	dfa := &DFA{
		Alphabet: slices.Clone(nfa.Alphabet),
		Trans:    make(map[State]map[Symbol]State),
		Start:    0,
	}

	start := nfa.newStateSet()
	start[nfa.Start] = true
	nfa.closure(start)
	b.get(start)

	// b.todo doubles as the BFS queue and the discovery-order id list:
	// queue position qi holds the subset assigned id qi.
	for qi := 0; qi < len(b.todo); qi++ {
		cur := b.todo[qi]
		id := State(qi)
		dfa.States = append(dfa.States, id)
		if b.anyFinal(cur) {
			dfa.Finals = append(dfa.Finals, id)
		}
		for _, sym := range dfa.Alphabet {
			next := nfa.move(cur, sym)
			if next.empty() {
				continue
			}
			dfa.addTransition(id, sym, b.get(next))
		}
	}

	return dfa
}

type dfaBuilder struct {
	nfa  *NFA
	tab  map[string]State // canonical subset key -> assigned id
	todo []stateSet
}

// get resolves a nonempty subset to its DFA state id, assigning the next
// id and enqueueing the subset the first time it is seen.
func (b *dfaBuilder) get(st stateSet) State {
	key := subsetKey(st)
	id, found := b.tab[key]
	if !found {
		id = State(len(b.todo))
		b.tab[key] = id
		b.todo = append(b.todo, st)
	}
	return id
}

func (b *dfaBuilder) anyFinal(st stateSet) bool {
	for _, f := range b.nfa.Finals {
		if st[f] {
			return true
		}
	}
	return false
}

// subsetKey builds the canonical, order-independent key for a subset: one
// '0' or '1' per NFA state. Subset equality, not derivation path, decides
// DFA state identity.
func subsetKey(st stateSet) string {
	buf := make([]byte, len(st))
	for i, active := range st {
		if active {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

func (d *DFA) addTransition(from State, sym Symbol, to State) {
	m := d.Trans[from]
	if m == nil {
		m = make(map[Symbol]State)
		d.Trans[from] = m
	}
	m[sym] = to
}

// Accepts runs the single-state walk. A symbol with no recorded entry,
// including any symbol never seen during construction, steps into the
// implicit dead state and rejects immediately. After the input is
// exhausted it accepts iff the current state is final.
func (d *DFA) Accepts(input string) bool {
	current := d.Start
	for _, r := range input {
		next, ok := d.Trans[current][r]
		if !ok {
			return false
		}
		current = next
	}
	return slices.Contains(d.Finals, current)
}
