package emit

import (
	"fmt"

	"github.com/dekarrin/rezi"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
	"github.com/ZhukDmitryOlegovich/compgen/table"
)

// wireSymbol, wireRule, wireAction, and wireGoto are flat, rezi-friendly
// stand-ins for the grammar/table types, which use struct-keyed maps
// that don't round-trip cleanly through reflection-based binary codecs.
type wireSymbol struct {
	Terminal bool
	Name     string
}

type wireRule struct {
	NonTerminal string
	Right       []wireSymbol
}

type wireAction struct {
	State       int
	End         bool
	Lookahead   string
	Kind        int
	ShiftState  int
	ReduceRule  wireRule
}

type wireGoto struct {
	State       int
	NonTerminal string
	Target      int
}

type wireTables struct {
	Start   int
	Actions []wireAction
	Gotos   []wireGoto
}

func toWire(t *table.Tables) wireTables {
	w := wireTables{Start: t.Start}
	for key, act := range t.Action {
		wa := wireAction{State: key.State, End: key.La.End, Lookahead: key.La.Terminal, Kind: int(act.Kind)}
		switch act.Kind {
		case table.Shift:
			wa.ShiftState = act.State
		case table.Reduce:
			wa.ReduceRule = toWireRule(act.Rule)
		}
		w.Actions = append(w.Actions, wa)
	}
	for key, target := range t.Goto {
		w.Gotos = append(w.Gotos, wireGoto{State: key.State, NonTerminal: key.NonTerminal, Target: target})
	}
	return w
}

func toWireRule(r grammar.Rule) wireRule {
	wr := wireRule{NonTerminal: r.NonTerminal, Right: make([]wireSymbol, len(r.Right))}
	for i, sym := range r.Right {
		wr.Right[i] = wireSymbol{Terminal: sym.IsTerminal(), Name: sym.Name}
	}
	return wr
}

func fromWire(w wireTables) *table.Tables {
	t := &table.Tables{Start: w.Start, Action: map[table.ActionKey]table.Action{}, Goto: map[table.GotoKey]int{}}
	for _, wa := range w.Actions {
		la := grammar.La(wa.Lookahead)
		if wa.End {
			la = grammar.EndOfInput
		}
		key := table.ActionKey{State: wa.State, La: la}
		switch table.ActionKind(wa.Kind) {
		case table.Shift:
			t.Action[key] = table.Action{Kind: table.Shift, State: wa.ShiftState}
		case table.Reduce:
			t.Action[key] = table.Action{Kind: table.Reduce, Rule: fromWireRule(wa.ReduceRule)}
		default:
			t.Action[key] = table.Action{Kind: table.Accept}
		}
	}
	for _, wg := range w.Gotos {
		t.Goto[table.GotoKey{State: wg.State, NonTerminal: wg.NonTerminal}] = wg.Target
	}
	return t
}

func fromWireRule(w wireRule) grammar.Rule {
	right := make([]grammar.Symbol, len(w.Right))
	for i, ws := range w.Right {
		if ws.Terminal {
			right[i] = grammar.Term(ws.Name)
		} else {
			right[i] = grammar.NTerm(ws.Name)
		}
	}
	return grammar.Rule{NonTerminal: w.NonTerminal, Right: right}
}

// EncodeBinary serializes t to the rezi binary structural format.
func EncodeBinary(t *table.Tables) []byte {
	return rezi.EncBinary(toWire(t))
}

// DecodeBinary deserializes a table artifact previously produced by
// EncodeBinary.
func DecodeBinary(data []byte) (*table.Tables, error) {
	var w wireTables
	if _, err := rezi.DecBinary(data, &w); err != nil {
		return nil, fmt.Errorf("emit: decoding binary table artifact: %w", err)
	}
	return fromWire(w), nil
}
