package table

import (
	"fmt"
	"sort"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

// Token is a single lexed input symbol: its tag (terminal name, or the
// end-of-input marker) plus a caller-supplied attribute payload.
type Token[T any] struct {
	Tag       grammar.Lookahead
	Attribute T
}

// Tree is a parse tree node: either a leaf wrapping the Token that
// matched a terminal, or an internal node labeled by a non-terminal
// with its children in left-to-right production order.
type Tree[T any] struct {
	Terminal    bool
	NonTerminal string
	Leaf        Token[T]
	Children    []*Tree[T]
}

// UnexpectedTokenError reports that no ACTION table entry exists for the
// current state and lookahead: either a genuine syntax error, or (after
// a reduce) a state with no GOTO entry for the produced non-terminal,
// which can only happen if the tables and the token stream disagree
// about the grammar.
type UnexpectedTokenError[T any] struct {
	Token Token[T]
	State int
}

func (e *UnexpectedTokenError[T]) Error() string {
	return fmt.Sprintf("table: unexpected token %q in state %d", e.Token.Tag.String(), e.State)
}

// Driver runs the shift-reduce algorithm against Tables, with an
// optional trace hook for observing each step. It holds no grammar of
// its own; Tables is assumed already built for whatever grammar
// produced tokens.
type Driver[T any] struct {
	Tables *Tables
	Trace  func(string)
}

func (d *Driver[T]) notify(format string, args ...interface{}) {
	if d.Trace != nil {
		d.Trace(fmt.Sprintf(format, args...))
	}
}

// Parse drives tokens (which must end with a Token whose Tag is
// grammar.EndOfInput) through the table, building and returning the
// resulting parse tree.
func (d *Driver[T]) Parse(tokens []Token[T]) (*Tree[T], error) {
	states := []int{d.Tables.Start}
	var trees []*Tree[T]
	idx := 0

	for {
		tok := tokens[idx]
		state := states[len(states)-1]
		d.notify("state %d, lookahead %s", state, tok.Tag.String())

		act, ok := d.Tables.Action[ActionKey{State: state, La: tok.Tag}]
		if !ok {
			return nil, &UnexpectedTokenError[T]{Token: tok, State: state}
		}

		switch act.Kind {
		case Shift:
			d.notify("shift -> state %d", act.State)
			states = append(states, act.State)
			trees = append(trees, &Tree[T]{Terminal: true, Leaf: tok})
			idx++

		case Reduce:
			d.notify("reduce %s", act.Rule.String())
			k := len(act.Rule.Right)
			children := make([]*Tree[T], k)
			for i := 0; i < k; i++ {
				states = states[:len(states)-1]
				children[k-1-i] = trees[len(trees)-1]
				trees = trees[:len(trees)-1]
			}
			trees = append(trees, &Tree[T]{NonTerminal: act.Rule.NonTerminal, Children: children})

			top := states[len(states)-1]
			next, ok := d.Tables.Goto[GotoKey{State: top, NonTerminal: act.Rule.NonTerminal}]
			if !ok {
				return nil, &UnexpectedTokenError[T]{Token: tok, State: top}
			}
			d.notify("goto -> state %d", next)
			states = append(states, next)

		case Accept:
			d.notify("accept")
			return trees[len(trees)-1], nil
		}
	}
}

// Parse is a convenience wrapper over Driver for callers that don't need
// a trace hook.
func Parse[T any](t *Tables, tokens []Token[T]) (*Tree[T], error) {
	d := &Driver[T]{Tables: t}
	return d.Parse(tokens)
}

// ExpectedLookaheads returns, for diagnostics, every lookahead that has
// a non-error ACTION entry in the given state, sorted for stable
// messages.
func (t *Tables) ExpectedLookaheads(state int) []grammar.Lookahead {
	var out []grammar.Lookahead
	for key := range t.Action {
		if key.State == state {
			out = append(out, key.La)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
