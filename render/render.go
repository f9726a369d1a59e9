// Package render formats automata for display. It is presentation only:
// the core packages never print, and everything here writes to a caller
// supplied io.Writer.
package render

import (
	"fmt"
	"io"
	"strconv"

	"automata/automaton"
)

// edge is one row of an automaton's transition listing. Listings are
// produced in sorted state-then-symbol order so output is reproducible.
type edge struct {
	from automaton.State
	sym  automaton.Symbol
	to   automaton.State
}

// WriteNFATable writes the NFA's transition table followed by its start
// and final states.
func WriteNFATable(out io.Writer, nfa *automaton.NFA) {
	writeTable(out, "NFA Transitions:", nfaEdges(nfa), nfa.Start, nfa.Finals)
}

// WriteDFATable writes the DFA's transition table followed by its start
// and final states. Missing entries (the implicit dead state) produce no
// rows.
func WriteDFATable(out io.Writer, dfa *automaton.DFA) {
	writeTable(out, "DFA Transitions:", dfaEdges(dfa), dfa.Start, dfa.Finals)
}

// WriteNFADot writes the NFA in DOT format.
//
//	$ dot -Tps input.dot -o output.ps
func WriteNFADot(out io.Writer, nfa *automaton.NFA, id string) {
	writeDot(out, id, nfaEdges(nfa), nfa.Start, nfa.Finals)
}

// WriteDFADot writes the DFA in DOT format.
func WriteDFADot(out io.Writer, dfa *automaton.DFA, id string) {
	writeDot(out, id, dfaEdges(dfa), dfa.Start, dfa.Finals)
}

func nfaEdges(nfa *automaton.NFA) []edge {
	var edges []edge
	for _, from := range nfa.States {
		for _, sym := range nfa.Alphabet {
			for _, to := range nfa.Trans[from][sym] {
				edges = append(edges, edge{from, sym, to})
			}
		}
	}
	return edges
}

func dfaEdges(dfa *automaton.DFA) []edge {
	var edges []edge
	for _, from := range dfa.States {
		for _, sym := range dfa.Alphabet {
			if to, ok := dfa.Trans[from][sym]; ok {
				edges = append(edges, edge{from, sym, to})
			}
		}
	}
	return edges
}

func writeTable(out io.Writer, title string, edges []edge, start automaton.State, finals []automaton.State) {
	_, _ = fmt.Fprintln(out, title)
	for _, e := range edges {
		_, _ = fmt.Fprintf(out, "  %v --%v--> %v\n", e.from, symbolLabel(e.sym), e.to)
	}
	_, _ = fmt.Fprintf(out, "Start: %v\nFinal:", start)
	for _, f := range finals {
		_, _ = fmt.Fprintf(out, " %v", f)
	}
	_, _ = fmt.Fprintln(out)
}

func writeDot(out io.Writer, id string, edges []edge, start automaton.State, finals []automaton.State) {
	_, _ = fmt.Fprintf(out, "digraph %v {\n  %v[shape=box];\n", id, start)
	for _, f := range finals {
		_, _ = fmt.Fprintf(out, "  %v[style=filled,color=green];\n", f)
	}
	for _, e := range edges {
		_, _ = fmt.Fprintf(out, "  %v -> %v[label=%q];\n", e.from, e.to, symbolLabel(e.sym))
	}
	_, _ = fmt.Fprintln(out, "}")
}

func symbolLabel(sym automaton.Symbol) string {
	if strconv.IsPrint(sym) {
		return string(sym)
	}
	return fmt.Sprintf("U+%X", int(sym))
}
