package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func terminalSet(names ...string) map[string]bool {
	s := map[string]bool{}
	for _, n := range names {
		s[n] = true
	}
	return s
}

func TestNullableBalancedParens(t *testing.T) {
	n := Nullable(balancedParensGrammar())
	assert.True(t, n["S"])
}

func TestFirstBalancedParens(t *testing.T) {
	first := First(balancedParensGrammar())
	s := first["S"]
	assert.True(t, s.Epsilon)
	assert.Equal(t, terminalSet("("), s.Terminals)
}

func TestFirstArithmetic(t *testing.T) {
	first := First(arithmeticGrammar())

	assert.False(t, first["S"].Epsilon)
	assert.Equal(t, terminalSet("x", "("), first["S"].Terminals)

	assert.True(t, first["Topt"].Epsilon)
	assert.Equal(t, terminalSet("+"), first["Topt"].Terminals)

	assert.False(t, first["M"].Epsilon)
	assert.Equal(t, terminalSet("x", "("), first["M"].Terminals)

	assert.True(t, first["Mopt"].Epsilon)
	assert.Equal(t, terminalSet("*"), first["Mopt"].Terminals)

	assert.False(t, first["N"].Epsilon)
	assert.Equal(t, terminalSet("x", "("), first["N"].Terminals)
}
