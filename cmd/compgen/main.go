/*
Compgen compiles a grammar written in the meta-grammar language into
LR(1) or LALR(1) parse tables.

Usage:

	compgen [flags] [GRAMMAR-FILE]

If GRAMMAR-FILE is omitted, the grammar is read from stdin. The flags
are:

	-m, --mode {lr1,lalr}
		Table construction mode. Defaults to "lr1".

	-o, --output FILE
		Write the emitted Go source to FILE instead of stdout.

	-b, --binary FILE
		Additionally write the binary table artifact to FILE.

	-d, --dot
		Write Graphviz DOT dumps of the NFA and DFA alongside the
		grammar's table output, to <FILE>.nfa.dot and <FILE>.dfa.dot
		(stdout-named "stdout.nfa.dot"/"stdout.dfa.dot" if -o is
		omitted).

	-p, --project FILE
		Read defaults for the grammar path and mode from a TOML
		project file. Flags given on the command line override it.
		Defaults to "compgen.toml" if present in the current directory.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/pflag"

	"github.com/ZhukDmitryOlegovich/compgen/automaton"
	"github.com/ZhukDmitryOlegovich/compgen/emit"
	"github.com/ZhukDmitryOlegovich/compgen/meta"
	"github.com/ZhukDmitryOlegovich/compgen/table"
)

const (
	ExitSuccess = iota
	ExitUsageError
	ExitGenerationError
	ExitIOError
)

// project is the optional compgen.toml shape: a grammar path and
// default table mode, both overridable by flags.
type project struct {
	Grammar string `toml:"grammar"`
	Mode    string `toml:"mode"`
}

var (
	returnCode  = ExitSuccess
	flagMode    = pflag.StringP("mode", "m", "", `table construction mode: "lr1" or "lalr"`)
	flagOutput  = pflag.StringP("output", "o", "", "write emitted Go source here instead of stdout")
	flagBinary  = pflag.StringP("binary", "b", "", "additionally write the binary table artifact here")
	flagDot     = pflag.BoolP("dot", "d", false, "write Graphviz DOT dumps of the NFA and DFA")
	flagProject = pflag.StringP("project", "p", "compgen.toml", "TOML project file providing defaults")
)

func main() {
	defer func() { os.Exit(returnCode) }()
	pflag.Parse()

	proj := loadProject(*flagProject)

	mode := table.LR1
	modeName := firstNonEmpty(*flagMode, proj.Mode, "lr1")
	switch modeName {
	case "lr1":
		mode = table.LR1
	case "lalr":
		mode = table.LALR
	default:
		fmt.Fprintf(os.Stderr, "ERROR: unknown table mode %q (want \"lr1\" or \"lalr\")\n", modeName)
		returnCode = ExitUsageError
		return
	}

	src, err := readGrammarSource(proj)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitIOError
		return
	}

	g, err := meta.Parse(src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitGenerationError
		return
	}

	aug := g.Augment()
	if err := aug.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitGenerationError
		return
	}
	nfa, err := automaton.BuildNFA(aug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitGenerationError
		return
	}
	dfa := automaton.BuildDFA(nfa)
	tables, err := table.Build(dfa, mode, aug.Root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitGenerationError
		return
	}

	genID := emit.GenerationID()
	literal := emit.SourceLiteralHeader(genID) + emit.SourceLiteral(tables)
	if err := writeOutput(*flagOutput, literal); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		returnCode = ExitIOError
		return
	}

	if *flagBinary != "" {
		if err := os.WriteFile(*flagBinary, emit.EncodeBinary(tables), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitIOError
			return
		}
	}

	if *flagDot {
		base := *flagOutput
		if base == "" {
			base = "stdout"
		}
		if err := os.WriteFile(base+".nfa.dot", []byte(nfa.DOT()), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitIOError
			return
		}
		if err := os.WriteFile(base+".dfa.dot", []byte(dfa.DOT()), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
			returnCode = ExitIOError
			return
		}
	}

	fmt.Fprintf(os.Stderr, "compgen: generated %s tables for axiom %q (generation-id %s)\n", modeName, g.Axiom, genID)
}

func loadProject(path string) project {
	var p project
	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	if _, err := toml.Decode(string(data), &p); err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: ignoring malformed project file %q: %s\n", path, err)
	}
	return p
}

func readGrammarSource(proj project) (string, error) {
	path := proj.Grammar
	if pflag.NArg() > 0 {
		path = pflag.Arg(0)
	}
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading grammar from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading grammar file %q: %w", path, err)
	}
	return string(data), nil
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := fmt.Fprint(os.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
