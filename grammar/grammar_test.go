package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// arithmeticGrammar is the "x"-terminal toy grammar from the original
// generator's test suite: S -> T; T -> M Topt; Topt -> + M Topt | ε;
// M -> N Mopt; Mopt -> * N Mopt | ε; N -> x | ( S ).
func arithmeticGrammar() Grammar {
	return Grammar{
		Axiom: "S",
		Rules: []Rule{
			NewRule("S", NTerm("T")),
			NewRule("T", NTerm("M"), NTerm("Topt")),
			NewRule("Topt", Term("+"), NTerm("M"), NTerm("Topt")),
			NewRule("Topt"),
			NewRule("M", NTerm("N"), NTerm("Mopt")),
			NewRule("Mopt", Term("*"), NTerm("N"), NTerm("Mopt")),
			NewRule("Mopt"),
			NewRule("N", Term("x")),
			NewRule("N", Term("("), NTerm("S"), Term(")")),
		},
	}
}

// balancedParensGrammar is the "cbs" (correctly-bracketed-sequence)
// grammar: S -> ε | ( S ) S.
func balancedParensGrammar() Grammar {
	return Grammar{
		Axiom: "S",
		Rules: []Rule{
			NewRule("S"),
			NewRule("S", Term("("), NTerm("S"), Term(")"), NTerm("S")),
		},
	}
}

func TestAugmentDisambiguatesReservedName(t *testing.T) {
	g := Grammar{
		Axiom: "S",
		Rules: []Rule{
			NewRule("S", NTerm("ROOT")),
			NewRule("ROOT", Term("x")),
		},
	}
	aug := g.Augment()
	assert.Equal(t, "ROOT_", aug.Root)
	assert.Equal(t, NewRule("ROOT_", NTerm("S")), aug.Rules[len(aug.Rules)-1])
}

func TestAugmentUsesReservedNameWhenFree(t *testing.T) {
	aug := balancedParensGrammar().Augment()
	assert.Equal(t, "ROOT", aug.Root)
}

func TestValidateRejectsUndeclaredNonTerminal(t *testing.T) {
	g := Grammar{
		Axiom: "S",
		Rules: []Rule{
			NewRule("S", NTerm("A")),
		},
	}
	err := g.Validate()
	var uerr *UndeclaredNonTerminalError
	assert.ErrorAs(t, err, &uerr)
	assert.Equal(t, "A", uerr.NonTerminal)
}

func TestValidateAcceptsArithmeticGrammar(t *testing.T) {
	assert.NoError(t, arithmeticGrammar().Validate())
}
