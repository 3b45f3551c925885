package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
	"github.com/ZhukDmitryOlegovich/compgen/table"
)

func balancedParensTables(t *testing.T) *table.Tables {
	t.Helper()
	g := grammar.Grammar{
		Axiom: "S",
		Rules: []grammar.Rule{
			grammar.NewRule("S"),
			grammar.NewRule("S", grammar.Term("("), grammar.NTerm("S"), grammar.Term(")"), grammar.NTerm("S")),
		},
	}
	tbl, err := table.Generate(g, table.LR1)
	require.NoError(t, err)
	return tbl
}

func TestBinaryRoundTrip(t *testing.T) {
	tbl := balancedParensTables(t)

	data := EncodeBinary(tbl)
	require.NotEmpty(t, data)

	got, err := DecodeBinary(data)
	require.NoError(t, err)

	assert.Equal(t, tbl.Start, got.Start)
	assert.Equal(t, len(tbl.Action), len(got.Action))
	assert.Equal(t, len(tbl.Goto), len(got.Goto))
	for key, act := range tbl.Action {
		gotAct, ok := got.Action[key]
		require.True(t, ok, "missing action for key %+v", key)
		assert.True(t, act.Equal(gotAct))
	}
	for key, target := range tbl.Goto {
		gotTarget, ok := got.Goto[key]
		require.True(t, ok, "missing goto for key %+v", key)
		assert.Equal(t, target, gotTarget)
	}
}

func TestSourceLiteralSplice(t *testing.T) {
	tbl := balancedParensTables(t)
	literal := SourceLiteral(tbl)
	assert.Contains(t, literal, "func GetParseTables() *table.Tables")

	template := []byte("package driver\n\n//@START_PARSE_TABLES@\n\n//@END_PARSE_TABLES@\n\nfunc main() {}\n")
	spliced, err := Splice(template, literal)
	require.NoError(t, err)
	assert.Contains(t, string(spliced), "GetParseTables")
	assert.Contains(t, string(spliced), "func main() {}")
}

func TestSpliceRequiresBothMarkers(t *testing.T) {
	_, err := Splice([]byte("package driver\n"), "x")
	assert.Error(t, err)
}

func TestGenerationIDsAreUnique(t *testing.T) {
	assert.NotEqual(t, GenerationID(), GenerationID())
}
