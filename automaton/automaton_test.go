package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

func balancedParensGrammar() grammar.Grammar {
	return grammar.Grammar{
		Axiom: "S",
		Rules: []grammar.Rule{
			grammar.NewRule("S"),
			grammar.NewRule("S", grammar.Term("("), grammar.NTerm("S"), grammar.Term(")"), grammar.NTerm("S")),
		},
	}
}

func TestBuildNFARequiresAugmentedGrammar(t *testing.T) {
	_, err := BuildNFA(balancedParensGrammar())
	assert.Error(t, err)
}

func TestBuildNFAStartItem(t *testing.T) {
	g := balancedParensGrammar().Augment()
	nfa, err := BuildNFA(g)
	require.NoError(t, err)

	start := nfa.Items[nfa.Start]
	assert.Equal(t, g.Root, start.Rule.NonTerminal)
	assert.Equal(t, 0, start.Dot)
	assert.True(t, start.La.End)
}

func TestBuildDFADeterministicNodeCount(t *testing.T) {
	g := balancedParensGrammar().Augment()
	nfa, err := BuildNFA(g)
	require.NoError(t, err)

	dfa1 := BuildDFA(nfa)
	dfa2 := BuildDFA(nfa)
	assert.Equal(t, len(dfa1.Nodes), len(dfa2.Nodes))
	assert.Equal(t, dfa1.Start, dfa2.Start)

	for key := range dfa1.Nodes {
		_, ok := dfa2.Nodes[key]
		assert.True(t, ok, "node %q present in one DFA build but not the other", key)
	}
}

func TestBuildDFAShiftOnOpenParen(t *testing.T) {
	g := balancedParensGrammar().Augment()
	nfa, err := BuildNFA(g)
	require.NoError(t, err)
	dfa := BuildDFA(nfa)

	target, ok := dfa.Edges[dfa.Start][grammar.Term("(")]
	require.True(t, ok, "expected a shift on '(' out of the start state")
	assert.NotEmpty(t, dfa.Nodes[target])
}

func TestDOTOutputsAreStable(t *testing.T) {
	g := balancedParensGrammar().Augment()
	nfa, err := BuildNFA(g)
	require.NoError(t, err)
	dfa := BuildDFA(nfa)

	assert.Equal(t, nfa.DOT(), nfa.DOT())
	assert.Equal(t, dfa.DOT(), dfa.DOT())
	assert.Contains(t, nfa.DOT(), "digraph NFA")
	assert.Contains(t, dfa.DOT(), "digraph DFA")
}
