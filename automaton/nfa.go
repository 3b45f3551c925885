// Package automaton builds the non-deterministic LR(1) item graph from a
// grammar and collapses it to a deterministic item-set automaton by
// subset construction.
package automaton

import (
	"fmt"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

// edgeLabel is either an ε-transition (a new item begun with lookahead
// propagated in from the predecessor) or a shift on a real symbol.
type edgeLabel struct {
	Epsilon bool
	Symbol  grammar.Symbol
}

// NFA is the non-deterministic LR(1) item graph: one node per distinct
// item, reached by following ε-closures (predictions) and real-symbol
// edges (the eventual DFA shifts) out from the start item.
type NFA struct {
	Start string // canonical item key
	Items map[string]grammar.Item
	Edges map[string]map[string]edgeLabel // item key -> target item key -> label
}

// BuildNFA constructs the item graph for an augmented grammar g (g.Root
// must be set; call grammar.Grammar.Augment first). It is a memoized
// recursive descent from the start item ROOT -> • Axiom, $: each item
// visited exactly once, shift edges following the dot, ε edges
// predicting a non-terminal's rules with a lookahead propagated from the
// scan of the remaining right-hand side (stopping at the first
// non-nullable symbol, falling back to the predecessor's own lookahead
// if the whole suffix is nullable).
func BuildNFA(g grammar.Grammar) (*NFA, error) {
	if !g.Augmented() {
		return nil, fmt.Errorf("automaton: BuildNFA requires an augmented grammar")
	}

	rootRules := g.RulesFor(g.Root)
	if len(rootRules) != 1 {
		return nil, fmt.Errorf("automaton: augmented grammar must have exactly one rule for %q, got %d", g.Root, len(rootRules))
	}

	first := grammar.First(g)

	nfa := &NFA{
		Items: map[string]grammar.Item{},
		Edges: map[string]map[string]edgeLabel{},
	}
	start := grammar.Item{Rule: rootRules[0], Dot: 0, La: grammar.EndOfInput}
	nfa.Start = start.String()

	build(nfa, g, first, start)
	return nfa, nil
}

func build(nfa *NFA, g grammar.Grammar, first map[string]grammar.FirstSet, cur grammar.Item) {
	key := cur.String()
	if _, seen := nfa.Edges[key]; seen {
		return
	}
	nfa.Items[key] = cur
	nfa.Edges[key] = map[string]edgeLabel{}

	if cur.Reducible() {
		return
	}

	sym := cur.Rule.Right[cur.Dot]
	next := cur.Advance()
	nfa.Edges[key][next.String()] = edgeLabel{Symbol: sym}
	build(nfa, g, first, next)

	if sym.IsTerminal() {
		return
	}

	lookaheads := lookaheadsAfterDot(cur, first)
	for _, rule := range g.RulesFor(sym.Name) {
		for la := range lookaheads {
			predicted := grammar.Item{Rule: rule, Dot: 0, La: la}
			nfa.Edges[key][predicted.String()] = edgeLabel{Epsilon: true}
			build(nfa, g, first, predicted)
		}
	}
}

// lookaheadsAfterDot computes the set of lookaheads to propagate into
// items predicted by the non-terminal just after cur's dot: FIRST of the
// symbols following that non-terminal in cur's production, falling back
// to cur's own lookahead if that remainder is entirely nullable.
func lookaheadsAfterDot(cur grammar.Item, first map[string]grammar.FirstSet) map[grammar.Lookahead]bool {
	out := map[grammar.Lookahead]bool{}
	beta := cur.Rule.Right[cur.Dot+1:]
	allNullable := true
	for _, sym := range beta {
		if sym.IsTerminal() {
			out[grammar.La(sym.Name)] = true
			allNullable = false
			break
		}
		fs := first[sym.Name]
		for t := range fs.Terminals {
			out[grammar.La(t)] = true
		}
		if !fs.Epsilon {
			allNullable = false
			break
		}
	}
	if allNullable {
		out[cur.La] = true
	}
	return out
}
