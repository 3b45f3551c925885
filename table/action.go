// Package table projects a DFA into numeric ACTION/GOTO tables and
// drives a shift-reduce parse against them.
package table

import (
	"fmt"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

// Mode selects whether Build fuses states sharing an LR(0) kernel
// (LALR) or keeps every distinct LR(1) item set as its own state (LR1).
type Mode int

const (
	LR1 Mode = iota
	LALR
)

func (m Mode) String() string {
	if m == LALR {
		return "lalr"
	}
	return "lr1"
}

// ActionKind tags the variant held by an Action.
type ActionKind int

const (
	Shift ActionKind = iota
	Reduce
	Accept
)

// Action is a single ACTION table entry.
type Action struct {
	Kind  ActionKind
	State int         // valid when Kind == Shift
	Rule  grammar.Rule // valid when Kind == Reduce
}

func (a Action) Equal(o Action) bool {
	if a.Kind != o.Kind {
		return false
	}
	switch a.Kind {
	case Shift:
		return a.State == o.State
	case Reduce:
		return a.Rule.Equal(o.Rule)
	default:
		return true
	}
}

func (a Action) String() string {
	switch a.Kind {
	case Shift:
		return fmt.Sprintf("s%d", a.State)
	case Reduce:
		return fmt.Sprintf("r(%s)", a.Rule.String())
	case Accept:
		return "acc"
	default:
		return "?"
	}
}

// ActionKey indexes the ACTION table by state and lookahead.
type ActionKey struct {
	State int
	La    grammar.Lookahead
}

// GotoKey indexes the GOTO table by state and non-terminal.
type GotoKey struct {
	State       int
	NonTerminal string
}

// ShiftReduceConflictError reports a state where both a shift and a
// reduce are viable on the same lookahead. Per the generator's conflict
// policy, this is reported whenever either participant of a clash is a
// shift, even if the other participant is itself a reduce (shift-reduce
// is considered the more informative diagnosis than reduce-reduce in
// that situation).
type ShiftReduceConflictError struct {
	Lookahead grammar.Lookahead
}

func (e *ShiftReduceConflictError) Error() string {
	return fmt.Sprintf("table: shift-reduce conflict on lookahead %q", e.Lookahead.String())
}

// ReduceReduceConflictError reports a state where two distinct
// reductions are both viable on the same lookahead.
type ReduceReduceConflictError struct {
	Lookahead grammar.Lookahead
	Rule1     grammar.Rule
	Rule2     grammar.Rule
}

func (e *ReduceReduceConflictError) Error() string {
	return fmt.Sprintf("table: reduce-reduce conflict on lookahead %q between %q and %q",
		e.Lookahead.String(), e.Rule1.String(), e.Rule2.String())
}

func conflictError(existing, incoming Action, la grammar.Lookahead) error {
	if existing.Kind == Shift || incoming.Kind == Shift {
		return &ShiftReduceConflictError{Lookahead: la}
	}
	return &ReduceReduceConflictError{Lookahead: la, Rule1: existing.Rule, Rule2: incoming.Rule}
}
