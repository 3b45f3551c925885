package grammar

import "fmt"

// rootName is the reserved non-terminal name Augment tries first for the
// synthetic start rule. If the user grammar already declares it, Augment
// disambiguates by appending underscores until the name is free.
const rootName = "ROOT"

// Grammar is a context-free grammar: an axiom (start symbol) plus an
// ordered list of rules. Root is set by Augment and names the synthetic
// start non-terminal; it is empty until Augment has run.
type Grammar struct {
	Axiom string
	Rules []Rule
	Root  string
}

// Augmented reports whether Augment has already been applied.
func (g Grammar) Augmented() bool { return g.Root != "" }

// Augment returns a copy of g with a synthetic rule Root -> Axiom
// appended, where Root is "ROOT" or, if that name collides with an
// existing non-terminal, the shortest "ROOT_", "ROOT__", ... that
// doesn't.
func (g Grammar) Augment() Grammar {
	declared := map[string]bool{}
	for _, r := range g.Rules {
		declared[r.NonTerminal] = true
	}
	root := rootName
	for declared[root] {
		root += "_"
	}

	out := Grammar{Axiom: g.Axiom, Root: root, Rules: make([]Rule, len(g.Rules), len(g.Rules)+1)}
	for i, r := range g.Rules {
		out.Rules[i] = r.Copy()
	}
	out.Rules = append(out.Rules, NewRule(root, NTerm(g.Axiom)))
	return out
}

// RulesFor returns, in declaration order, every rule whose left-hand side
// is nonTerminal.
func (g Grammar) RulesFor(nonTerminal string) []Rule {
	var out []Rule
	for _, r := range g.Rules {
		if r.NonTerminal == nonTerminal {
			out = append(out, r)
		}
	}
	return out
}

// UndeclaredNonTerminalError reports a non-terminal used on some rule's
// right-hand side with no rule defining it.
type UndeclaredNonTerminalError struct {
	NonTerminal string
}

func (e *UndeclaredNonTerminalError) Error() string {
	return fmt.Sprintf("grammar: non-terminal %q is used but never declared", e.NonTerminal)
}

// Validate checks that every non-terminal referenced on a rule's
// right-hand side is declared as the left-hand side of at least one
// rule. It does not require the axiom itself to have a rule unless it is
// also referenced from some right-hand side; callers that need a rule
// for the axiom should check that separately (Augment's synthetic rule
// always supplies one for the pre-augmentation axiom).
func (g Grammar) Validate() error {
	declared := map[string]bool{}
	for _, r := range g.Rules {
		declared[r.NonTerminal] = true
	}
	for _, r := range g.Rules {
		for _, sym := range r.Right {
			if !sym.IsTerminal() && !declared[sym.Name] {
				return &UndeclaredNonTerminalError{NonTerminal: sym.Name}
			}
		}
	}
	return nil
}
