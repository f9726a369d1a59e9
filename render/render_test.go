package render

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"automata/automaton"
)

func TestWriteNFATable(t *testing.T) {
	var buf bytes.Buffer
	WriteNFATable(&buf, automaton.BuildNfa("ab"))
	require.Equal(t, `NFA Transitions:
  0 --a--> 1
  1 --b--> 2
Start: 0
Final: 2
`, buf.String())
}

func TestWriteDFATable(t *testing.T) {
	var buf bytes.Buffer
	WriteDFATable(&buf, automaton.BuildDfa(automaton.BuildNfa("ab")))
	require.Equal(t, `DFA Transitions:
  0 --a--> 1
  1 --b--> 2
Start: 0
Final: 2
`, buf.String())
}

func TestWriteTableEmptyPattern(t *testing.T) {
	var buf bytes.Buffer
	WriteNFATable(&buf, automaton.BuildNfa(""))
	require.Equal(t, `NFA Transitions:
Start: 0
Final: 0
`, buf.String())
}

func TestWriteNFADot(t *testing.T) {
	var buf bytes.Buffer
	WriteNFADot(&buf, automaton.BuildNfa("ab"), "nfa")
	require.Equal(t, `digraph nfa {
  0[shape=box];
  2[style=filled,color=green];
  0 -> 1[label="a"];
  1 -> 2[label="b"];
}
`, buf.String())
}

func TestWriteDFADot(t *testing.T) {
	var buf bytes.Buffer
	WriteDFADot(&buf, automaton.BuildDfa(automaton.BuildNfa("ab")), "dfa")
	require.Contains(t, buf.String(), "digraph dfa {")
	require.Contains(t, buf.String(), `  0 -> 1[label="a"];`)
	require.Contains(t, buf.String(), `  1 -> 2[label="b"];`)
}

func TestNonPrintableSymbolLabel(t *testing.T) {
	var buf bytes.Buffer
	WriteNFATable(&buf, automaton.BuildNfa("a\tb"))
	require.Contains(t, buf.String(), "  1 --U+9--> 2")
}
