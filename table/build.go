package table

import (
	"sort"

	"github.com/ZhukDmitryOlegovich/compgen/automaton"
	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

// Tables is a projected ACTION/GOTO table pair, ready to drive Parse.
type Tables struct {
	Start  int
	Action map[ActionKey]Action
	Goto   map[GotoKey]int
}

// Build projects a DFA into numeric ACTION/GOTO tables. State numbers
// are assigned to every distinct DFA node in one pass (sorted by node
// key, for determinism) before any node's transitions are scanned: in
// LR1 mode every node gets its own fresh number, in LALR mode nodes that
// share an LR(0) kernel set share a number. Transitions are then scanned
// in the same sorted order, using tryAddAction's add-or-check rule to
// detect shift-reduce and reduce-reduce conflicts.
func Build(dfa *automaton.DFA, mode Mode, root string) (*Tables, error) {
	nodeKeys := sortedNodeKeys(dfa)

	ids := map[string]int{}
	switch mode {
	case LALR:
		kernelIDs := map[string]int{}
		next := 0
		for _, key := range nodeKeys {
			kernel := kernelSetKey(dfa.Nodes[key])
			id, ok := kernelIDs[kernel]
			if !ok {
				id = next
				kernelIDs[kernel] = id
				next++
			}
			ids[key] = id
		}
	default: // LR1
		for i, key := range nodeKeys {
			ids[key] = i
		}
	}

	t := &Tables{Start: ids[dfa.Start], Action: map[ActionKey]Action{}, Goto: map[GotoKey]int{}}

	for _, key := range nodeKeys {
		state := ids[key]

		symbols := sortedEdgeSymbols(dfa.Edges[key])
		for _, sym := range symbols {
			target := ids[dfa.Edges[key][sym]]
			if sym.IsTerminal() {
				if err := tryAddAction(t, state, grammar.La(sym.Name), Action{Kind: Shift, State: target}); err != nil {
					return nil, err
				}
			} else {
				t.Goto[GotoKey{State: state, NonTerminal: sym.Name}] = target
			}
		}

		for _, item := range dfa.Nodes[key] {
			if !item.Reducible() {
				continue
			}
			if item.Rule.NonTerminal == root {
				// Accept never conflicts: the augmenting rule is unique
				// and its only possible lookahead is $.
				t.Action[ActionKey{State: state, La: grammar.EndOfInput}] = Action{Kind: Accept}
				continue
			}
			if err := tryAddAction(t, state, item.La, Action{Kind: Reduce, Rule: item.Rule}); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

func tryAddAction(t *Tables, state int, la grammar.Lookahead, act Action) error {
	key := ActionKey{State: state, La: la}
	if existing, ok := t.Action[key]; ok {
		if existing.Equal(act) {
			return nil
		}
		return conflictError(existing, act, la)
	}
	t.Action[key] = act
	return nil
}

func sortedNodeKeys(dfa *automaton.DFA) []string {
	keys := make([]string, 0, len(dfa.Nodes))
	for k := range dfa.Nodes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedEdgeSymbols(edges map[grammar.Symbol]string) []grammar.Symbol {
	syms := make([]grammar.Symbol, 0, len(edges))
	for s := range edges {
		syms = append(syms, s)
	}
	sort.Slice(syms, func(i, j int) bool {
		if syms[i].Kind != syms[j].Kind {
			return syms[i].Kind < syms[j].Kind
		}
		return syms[i].Name < syms[j].Name
	})
	return syms
}

// kernelSetKey canonicalizes an item set down to its LR(0) kernel
// members for LALR state fusion.
func kernelSetKey(items []grammar.Item) string {
	keys := make([]string, len(items))
	for i, it := range items {
		keys[i] = it.Kernel().String()
	}
	sort.Strings(keys)
	joined := ""
	for i, k := range keys {
		if i > 0 {
			joined += "\x00"
		}
		joined += k
	}
	return joined
}
