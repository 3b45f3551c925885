package table

import (
	"github.com/ZhukDmitryOlegovich/compgen/automaton"
	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

// Generate runs the full pipeline from an unaugmented grammar to a
// projected table: augment, validate, build the NFA, collapse to a DFA,
// and project. The meta/calc bootstrap grammars call it; cmd/compgen runs
// the same steps itself so that it can also dump the NFA and DFA.
func Generate(g grammar.Grammar, mode Mode) (*Tables, error) {
	aug := g.Augment()
	if err := aug.Validate(); err != nil {
		return nil, err
	}
	nfa, err := automaton.BuildNFA(aug)
	if err != nil {
		return nil, err
	}
	dfa := automaton.BuildDFA(nfa)
	return Build(dfa, mode, aug.Root)
}
