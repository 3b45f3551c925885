package meta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

func assertSameGrammar(t *testing.T, want, got grammar.Grammar) {
	t.Helper()
	assert.Equal(t, want.Axiom, got.Axiom)
	require.Len(t, got.Rules, len(want.Rules))
	for i := range want.Rules {
		assert.True(t, want.Rules[i].Equal(got.Rules[i]),
			"rule %d: want %q, got %q", i, want.Rules[i].String(), got.Rules[i].String())
	}
}

func TestLexSkipsCommentsAndWhitespace(t *testing.T) {
	tokens := Lex("' a comment\n<axiom <S>>")
	tags := make([]string, len(tokens))
	for i, tok := range tokens {
		tags[i] = tok.Tag.String()
	}
	assert.Equal(t, []string{"open", "ax", "open", "nterm", "close", "close", "$"}, tags)
	assert.Equal(t, "S", tokens[3].Attribute.NonTerminal)
}

func TestParseBalancedParens(t *testing.T) {
	src := `
	<axiom <S>>
	<S <>
	   <lparen S rparen S>>`

	got, err := Parse(src)
	require.NoError(t, err)

	want := grammar.Grammar{
		Axiom: "S",
		Rules: []grammar.Rule{
			grammar.NewRule("S"),
			grammar.NewRule("S", grammar.Term("lparen"), grammar.NTerm("S"), grammar.Term("rparen"), grammar.NTerm("S")),
		},
	}
	assertSameGrammar(t, want, got)
}

// TestParseMetaGrammarBootstraps feeds the meta-grammar's own textual
// description back through Parse, exercising the bootstrap tables
// against the language they describe.
func TestParseMetaGrammarBootstraps(t *testing.T) {
	src := `
	<axiom <S>>
	<S <A R>>
	<A <open ax open nterm close close>>
	<R <T R>
	   <>>
	<T <open nterm P close>>
	<P <open I close P>
	   <>>
	<I <term I>
	   <nterm I>
	   <>>`

	got, err := Parse(src)
	require.NoError(t, err)
	assertSameGrammar(t, Grammar(), got)
}
