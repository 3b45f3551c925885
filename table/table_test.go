package table

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

type noAttr struct{}

func tok(tag string) Token[noAttr] { return Token[noAttr]{Tag: grammar.La(tag)} }
func end() Token[noAttr]           { return Token[noAttr]{Tag: grammar.EndOfInput} }

func TestParseBalancedParensAccepts(t *testing.T) {
	for _, mode := range []Mode{LR1, LALR} {
		tbl, err := Generate(balancedParensGrammar(), mode)
		require.NoError(t, err, "mode %s", mode)

		_, err = Parse(tbl, []Token[noAttr]{end()})
		assert.NoError(t, err, "empty string, mode %s", mode)

		_, err = Parse(tbl, []Token[noAttr]{tok("("), tok(")"), tok("("), tok("("), tok(")"), tok(")"), end()})
		assert.NoError(t, err, "nested balanced, mode %s", mode)
	}
}

func TestParseBalancedParensRejectsUnbalanced(t *testing.T) {
	tbl, err := Generate(balancedParensGrammar(), LR1)
	require.NoError(t, err)

	_, err = Parse(tbl, []Token[noAttr]{tok("("), tok(")"), tok("("), tok("("), tok(")"), end()})
	assert.Error(t, err)
}

// S -> ε | a S a is not LR(1): after an "a", the item S -> •, a (reduce
// the empty production on lookahead "a") conflicts with S -> • a S a, a
// (shift another "a"), a shift-reduce conflict.
func TestGenerateRejectsNonLR1Grammar(t *testing.T) {
	g := grammar.Grammar{
		Axiom: "S",
		Rules: []grammar.Rule{
			grammar.NewRule("S"),
			grammar.NewRule("S", grammar.Term("a"), grammar.NTerm("S"), grammar.Term("a")),
		},
	}
	_, err := Generate(g, LR1)
	var scErr *ShiftReduceConflictError
	assert.ErrorAs(t, err, &scErr)
}

// S -> aEa | bEb | aFb | bFa; E -> e; F -> e is LR(1) but not LALR(1):
// the state reached by "a e" holds {E -> e •, a; F -> e •, b} and the one
// reached by "b e" holds {E -> e •, b; F -> e •, a}; they share an LR(0)
// kernel, and fusing them puts both reductions on lookahead "a" and on
// "b", a reduce-reduce conflict that doesn't exist in the unfused LR1
// automaton.
func notLALRGrammar() grammar.Grammar {
	return grammar.Grammar{
		Axiom: "S",
		Rules: []grammar.Rule{
			grammar.NewRule("S", grammar.Term("a"), grammar.NTerm("E"), grammar.Term("a")),
			grammar.NewRule("S", grammar.Term("b"), grammar.NTerm("E"), grammar.Term("b")),
			grammar.NewRule("S", grammar.Term("a"), grammar.NTerm("F"), grammar.Term("b")),
			grammar.NewRule("S", grammar.Term("b"), grammar.NTerm("F"), grammar.Term("a")),
			grammar.NewRule("E", grammar.Term("e")),
			grammar.NewRule("F", grammar.Term("e")),
		},
	}
}

func TestNotLALRButLR1(t *testing.T) {
	_, err := Generate(notLALRGrammar(), LR1)
	assert.NoError(t, err)

	_, err = Generate(notLALRGrammar(), LALR)
	var rrErr *ReduceReduceConflictError
	assert.ErrorAs(t, err, &rrErr)
}

func TestGenerateRejectsUndeclaredNonTerminal(t *testing.T) {
	g := grammar.Grammar{
		Axiom: "S",
		Rules: []grammar.Rule{
			grammar.NewRule("S", grammar.NTerm("A")),
		},
	}
	_, err := Generate(g, LR1)
	var uerr *grammar.UndeclaredNonTerminalError
	assert.ErrorAs(t, err, &uerr)
}

func TestTablesStringIncludesHeaders(t *testing.T) {
	tbl, err := Generate(balancedParensGrammar(), LR1)
	require.NoError(t, err)
	out := tbl.String()
	assert.Contains(t, out, "state")
	assert.Contains(t, out, "A:(")
}
