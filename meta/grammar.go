package meta

import (
	"sync"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
	"github.com/ZhukDmitryOlegovich/compgen/table"
)

// Grammar returns the fixed grammar of the meta-grammar language itself:
//
//	S -> A R
//	A -> open ax open nterm close close
//	R -> T R | ε
//	T -> open nterm P close
//	P -> open I close P | ε
//	I -> term I | nterm I | ε
func Grammar() grammar.Grammar {
	return grammar.Grammar{
		Axiom: "S",
		Rules: []grammar.Rule{
			grammar.NewRule("S", grammar.NTerm("A"), grammar.NTerm("R")),
			grammar.NewRule("A",
				grammar.Term("open"), grammar.Term("ax"), grammar.Term("open"),
				grammar.Term("nterm"), grammar.Term("close"), grammar.Term("close")),
			grammar.NewRule("R", grammar.NTerm("T"), grammar.NTerm("R")),
			grammar.NewRule("R"),
			grammar.NewRule("T", grammar.Term("open"), grammar.Term("nterm"), grammar.NTerm("P"), grammar.Term("close")),
			grammar.NewRule("P", grammar.Term("open"), grammar.NTerm("I"), grammar.Term("close"), grammar.NTerm("P")),
			grammar.NewRule("P"),
			grammar.NewRule("I", grammar.Term("term"), grammar.NTerm("I")),
			grammar.NewRule("I", grammar.Term("nterm"), grammar.NTerm("I")),
			grammar.NewRule("I"),
		},
	}
}

var (
	tablesOnce sync.Once
	tables     *table.Tables
	tablesErr  error
)

// Tables lazily builds and caches the bootstrapped LR(1) tables for the
// meta-grammar language, by running the real generation pipeline over
// Grammar() rather than hand-transcribing a precomputed literal (see
// DESIGN.md's Open Question note on the meta-grammar bootstrap).
func Tables() (*table.Tables, error) {
	tablesOnce.Do(func() {
		tables, tablesErr = table.Generate(Grammar(), table.LR1)
	})
	return tables, tablesErr
}
