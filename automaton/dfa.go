package automaton

import (
	"sort"
	"strings"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

// DFA is the deterministic item-set automaton produced by subset
// construction over an NFA. Each node is identified by a canonical key
// (the sorted, NUL-joined keys of its member items) so that identity is
// a function of item-set content, never of map iteration order or
// discovery order.
type DFA struct {
	Start string
	Nodes map[string][]grammar.Item
	Edges map[string]map[grammar.Symbol]string
}

// BuildDFA collapses an NFA to a DFA by repeatedly taking ε-closures and
// grouping outgoing real-symbol edges by symbol.
func BuildDFA(nfa *NFA) *DFA {
	dfa := &DFA{
		Nodes: map[string][]grammar.Item{},
		Edges: map[string]map[grammar.Symbol]string{},
	}
	startClosure := epsilonClosure(nfa, map[string]bool{nfa.Start: true})
	dfa.Start = nodeKey(startClosure)
	visit(nfa, dfa, startClosure)
	return dfa
}

func epsilonClosure(nfa *NFA, items map[string]bool) map[string]bool {
	closure := map[string]bool{}
	stack := make([]string, 0, len(items))
	for k := range items {
		stack = append(stack, k)
	}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if closure[k] {
			continue
		}
		closure[k] = true
		for target, label := range nfa.Edges[k] {
			if label.Epsilon && !closure[target] {
				stack = append(stack, target)
			}
		}
	}
	return closure
}

func nodeKey(items map[string]bool) string {
	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}

func visit(nfa *NFA, dfa *DFA, items map[string]bool) {
	key := nodeKey(items)
	if _, seen := dfa.Nodes[key]; seen {
		return
	}

	itemList := make([]grammar.Item, 0, len(items))
	for k := range items {
		itemList = append(itemList, nfa.Items[k])
	}
	sort.Slice(itemList, func(i, j int) bool { return itemList[i].String() < itemList[j].String() })
	dfa.Nodes[key] = itemList
	dfa.Edges[key] = map[grammar.Symbol]string{}

	bySymbol := map[grammar.Symbol]map[string]bool{}
	for ik := range items {
		for target, label := range nfa.Edges[ik] {
			if label.Epsilon {
				continue
			}
			set, ok := bySymbol[label.Symbol]
			if !ok {
				set = map[string]bool{}
				bySymbol[label.Symbol] = set
			}
			set[target] = true
		}
	}

	symbols := make([]grammar.Symbol, 0, len(bySymbol))
	for sym := range bySymbol {
		symbols = append(symbols, sym)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].Name < symbols[j].Name })

	for _, sym := range symbols {
		closure := epsilonClosure(nfa, bySymbol[sym])
		targetKey := nodeKey(closure)
		dfa.Edges[key][sym] = targetKey
		visit(nfa, dfa, closure)
	}
}
