package meta

import (
	"fmt"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
	"github.com/ZhukDmitryOlegovich/compgen/table"
)

// Parse lexes and parses a meta-grammar source string into a Grammar
// value. The returned grammar is unaugmented: callers that need tables
// from it should call Augment/Validate (or table.Generate) themselves.
func Parse(src string) (grammar.Grammar, error) {
	tables, err := Tables()
	if err != nil {
		return grammar.Grammar{}, fmt.Errorf("meta: building bootstrap tables: %w", err)
	}

	tokens := Lex(src)
	tree, err := table.Parse(tables, tokens)
	if err != nil {
		return grammar.Grammar{}, fmt.Errorf("meta: parsing source: %w", err)
	}

	return grammarFromTree(tree), nil
}

// grammarFromTree performs the fixed structural walk matching the
// meta-grammar's shape: S -> A R, where A carries the axiom name and R
// unrolls to the rule list.
func grammarFromTree(root *table.Tree[Attribute]) grammar.Grammar {
	a, r := root.Children[0], root.Children[1]
	axiom := a.Children[3].Leaf.Attribute.NonTerminal
	return grammar.Grammar{Axiom: axiom, Rules: rulesFromTree(r)}
}

// rulesFromTree unrolls R -> T R | ε into a flat rule list.
func rulesFromTree(root *table.Tree[Attribute]) []grammar.Rule {
	if len(root.Children) == 0 {
		return nil
	}
	t, r := root.Children[0], root.Children[1]
	nterm := t.Children[1].Leaf.Attribute.NonTerminal
	rules := subrulesFromTree(nterm, t.Children[2])
	rules = append(rules, rulesFromTree(r)...)
	return rules
}

// subrulesFromTree unrolls P -> open I close P | ε into one Rule per
// production alternative for the given left-hand non-terminal.
func subrulesFromTree(left string, root *table.Tree[Attribute]) []grammar.Rule {
	if len(root.Children) == 0 {
		return nil
	}
	i, p := root.Children[1], root.Children[3]
	rules := []grammar.Rule{grammar.NewRule(left, termsFromTree(i)...)}
	rules = append(rules, subrulesFromTree(left, p)...)
	return rules
}

// termsFromTree unrolls I -> term I | nterm I | ε into a right-hand-side
// symbol sequence.
func termsFromTree(root *table.Tree[Attribute]) []grammar.Symbol {
	if len(root.Children) == 0 {
		return nil
	}
	leaf, i := root.Children[0], root.Children[1]
	rest := termsFromTree(i)

	attr := leaf.Leaf.Attribute
	var sym grammar.Symbol
	switch {
	case attr.NonTerminal != "":
		sym = grammar.NTerm(attr.NonTerminal)
	case attr.Terminal != "":
		sym = grammar.Term(attr.Terminal)
	default:
		panic("meta: I-subtree leaf carries neither a terminal nor a non-terminal name")
	}
	return append([]grammar.Symbol{sym}, rest...)
}
