// Package exec is the program framing for the simulator: flag parsing and
// the interactive console session. All IO streams are injected so the
// session can run under test.
package exec

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"automata/automaton"
	"automata/match"
	"automata/recognize"
	"automata/render"
)

var ErrUnexpectedEOF = errors.New("unexpected EOF")

type Params struct {
	MaxErrors            int
	NfaDotOutputFilename string
	DfaDotOutputFilename string
	Stdin                io.Reader
	Stdout               io.Writer
	Stderr               io.Writer
}

func ParseParams(name string, args ...string) (*Params, error) {
	f := flag.NewFlagSet(name, flag.ExitOnError)
	p := &Params{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	f.IntVar(&p.MaxErrors, "e", 1, `error budget for approximate matching`)
	f.StringVar(&p.NfaDotOutputFilename, "nfadot", "", `show NFA graph in DOT format`)
	f.StringVar(&p.DfaDotOutputFilename, "dfadot", "", `show DFA graph in DOT format`)

	// Ignore errors; the flag set is configured for ExitOnError.
	_ = f.Parse(args)

	if f.NArg() > 0 {
		return nil, fmt.Errorf("extraneous arguments after %s", f.Arg(0))
	}
	return p, nil
}

func Execute(name string, args ...string) error {
	p, err := ParseParams(name, args...)
	if err != nil {
		return fmt.Errorf("parse-params: %w", err)
	}
	return ExecuteWithParams(p)
}

// ExecuteWithParams runs one interactive session: build both automata from
// a literal pattern and print their transition tables, run an exact-match
// string through each, run a DNA sequence through the approximate matcher
// against the same pattern, and finish with the equal-runs PDA test.
func ExecuteWithParams(p *Params) error {
	in := bufio.NewScanner(p.Stdin)
	out := p.Stdout
	_, _ = fmt.Fprintln(out, "=== Formal Language Simulator ===")

	pattern, err := prompt(in, out, "\nEnter pattern (literal concatenation): ")
	if err != nil {
		return fmt.Errorf("read pattern: %w", err)
	}

	nfa := automaton.BuildNfa(pattern)
	_, _ = fmt.Fprintln(out)
	render.WriteNFATable(out, nfa)

	dfa := automaton.BuildDfa(nfa)
	_, _ = fmt.Fprintln(out)
	render.WriteDFATable(out, dfa)

	if err = writeWithWriter(p.NfaDotOutputFilename, func(w io.Writer) {
		render.WriteNFADot(w, nfa, "nfa")
	}); err != nil {
		return err
	}
	if err = writeWithWriter(p.DfaDotOutputFilename, func(w io.Writer) {
		render.WriteDFADot(w, dfa, "dfa")
	}); err != nil {
		return err
	}

	test, err := prompt(in, out, "\nEnter string for exact match: ")
	if err != nil {
		return fmt.Errorf("read test string: %w", err)
	}
	writeVerdict(out, nfa.Accepts(test), "NFA ACCEPT", "NFA REJECT")
	writeVerdict(out, dfa.Accepts(test), "DFA ACCEPT", "DFA REJECT")

	dna, err := prompt(in, out, "\nEnter DNA sequence for approximate matching: ")
	if err != nil {
		return fmt.Errorf("read DNA sequence: %w", err)
	}
	writeVerdict(out, match.Contains(dna, pattern, p.MaxErrors),
		"Approximate match found", "No approximate match")

	cfl, err := prompt(in, out, "\nEnter string for PDA test (a^n b^n): ")
	if err != nil {
		return fmt.Errorf("read PDA string: %w", err)
	}
	writeVerdict(out, recognize.EqualRuns(cfl),
		"PDA ACCEPT (Context-Free Language)", "PDA REJECT")

	return nil
}

func prompt(in *bufio.Scanner, out io.Writer, msg string) (string, error) {
	_, _ = fmt.Fprint(out, msg)
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", ErrUnexpectedEOF
	}
	return strings.TrimSpace(in.Text()), nil
}

func writeVerdict(out io.Writer, accepted bool, accept, reject string) {
	if accepted {
		_, _ = fmt.Fprintln(out, accept)
	} else {
		_, _ = fmt.Fprintln(out, reject)
	}
}

func closeFile(f *os.File) {
	_ = f.Close()
}

func writeWithWriter(filepath string, write func(io.Writer)) error {
	if filepath == "" {
		return nil
	}
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("write graph: %w", err)
	}
	defer closeFile(f)
	write(f)
	return nil
}
