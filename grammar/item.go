package grammar

import (
	"fmt"
	"strings"
)

// Item is an LR(1) item: a rule, a dot position within its right-hand
// side, and a single lookahead terminal (or $) carried from the
// construction that produced it. Lookahead is baked in from the start,
// matching the original generator's item model rather than the
// teacher's separate-LALR-propagation design.
type Item struct {
	Rule Rule
	Dot  int
	La   Lookahead
}

// Kernel is the LR(0) core of an Item: its rule and dot position without
// the lookahead. Two items with equal Kernel belong to the same LALR
// state-fusion class.
type Kernel struct {
	Rule Rule
	Dot  int
}

func (it Item) Kernel() Kernel { return Kernel{Rule: it.Rule, Dot: it.Dot} }

// Reducible reports whether the dot has reached the end of the
// production's right-hand side.
func (it Item) Reducible() bool { return it.Dot >= len(it.Rule.Right) }

// NextSymbol returns the symbol immediately after the dot, if any.
func (it Item) NextSymbol() (Symbol, bool) {
	if it.Reducible() {
		return Symbol{}, false
	}
	return it.Rule.Right[it.Dot], true
}

// Advance returns the item with the dot moved one position to the
// right. Callers must not call Advance on a reducible item.
func (it Item) Advance() Item {
	return Item{Rule: it.Rule, Dot: it.Dot + 1, La: it.La}
}

// String renders a canonical textual form suitable for use as a map key:
// two items compare equal iff their String() values match, provided no
// name is used both as a terminal and as a non-terminal and no terminal
// is named "$" (symbols and lookaheads render by name only).
func (it Item) String() string {
	var sb strings.Builder
	sb.WriteString(it.Rule.NonTerminal)
	sb.WriteString(" ->")
	for i, sym := range it.Rule.Right {
		if i == it.Dot {
			sb.WriteString(" •")
		}
		sb.WriteRune(' ')
		sb.WriteString(sym.String())
	}
	if it.Dot == len(it.Rule.Right) {
		sb.WriteString(" •")
	}
	sb.WriteString(", ")
	sb.WriteString(it.La.String())
	return sb.String()
}

func (k Kernel) String() string {
	return fmt.Sprintf("%s|%d", k.Rule.String(), k.Dot)
}

func (it Item) Equal(o Item) bool {
	return it.Dot == o.Dot && it.La.Equal(o.La) && it.Rule.Equal(o.Rule)
}
