package calc

import (
	"sync"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
	"github.com/ZhukDmitryOlegovich/compgen/table"
)

// Grammar returns the arithmetic expression grammar:
//
//	E  -> T E'
//	E' -> + T E' | - T E' | ε
//	T  -> F T'
//	T' -> * F T' | / F T' | ε
//	F  -> n | ( E )
func Grammar() grammar.Grammar {
	return grammar.Grammar{
		Axiom: "E",
		Rules: []grammar.Rule{
			grammar.NewRule("E", grammar.NTerm("T"), grammar.NTerm("E'")),
			grammar.NewRule("E'", grammar.Term("+"), grammar.NTerm("T"), grammar.NTerm("E'")),
			grammar.NewRule("E'", grammar.Term("-"), grammar.NTerm("T"), grammar.NTerm("E'")),
			grammar.NewRule("E'"),
			grammar.NewRule("T", grammar.NTerm("F"), grammar.NTerm("T'")),
			grammar.NewRule("T'", grammar.Term("*"), grammar.NTerm("F"), grammar.NTerm("T'")),
			grammar.NewRule("T'", grammar.Term("/"), grammar.NTerm("F"), grammar.NTerm("T'")),
			grammar.NewRule("T'"),
			grammar.NewRule("F", grammar.Term("n")),
			grammar.NewRule("F", grammar.Term("("), grammar.NTerm("E"), grammar.Term(")")),
		},
	}
}

var (
	tablesOnce sync.Once
	tables     *table.Tables
	tablesErr  error
)

// Tables lazily builds and caches the LR(1) tables for Grammar.
func Tables() (*table.Tables, error) {
	tablesOnce.Do(func() {
		tables, tablesErr = table.Generate(Grammar(), table.LR1)
	})
	return tables, tablesErr
}
