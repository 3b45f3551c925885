package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateArithmetic(t *testing.T) {
	got, err := Evaluate("(1+2)*3-4/5")
	require.NoError(t, err)
	assert.InDelta(t, 8.2, got, 1e-9)
}

func TestEvaluateZeroDivision(t *testing.T) {
	_, err := Evaluate("(1+2)*3-4/0")
	var zde *ZeroDivisionError
	assert.ErrorAs(t, err, &zde)
}

func TestEvaluateSimpleSum(t *testing.T) {
	got, err := Evaluate("1+2+3")
	require.NoError(t, err)
	assert.InDelta(t, 6.0, got, 1e-9)
}

func TestLexRejectsUnknownCharacter(t *testing.T) {
	_, err := Lex("1 + @")
	var lerr *LexerError
	assert.ErrorAs(t, err, &lerr)
}

func TestEvaluateRejectsMalformedExpression(t *testing.T) {
	_, err := Evaluate("1+")
	assert.Error(t, err)
}
