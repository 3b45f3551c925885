package grammar

import "strings"

// Rule is a single production: NonTerminal -> Right (Right may be empty,
// an epsilon production).
type Rule struct {
	NonTerminal string
	Right       []Symbol
}

// NewRule builds a Rule from a left-hand non-terminal name and a sequence
// of right-hand symbols.
func NewRule(nonTerminal string, right ...Symbol) Rule {
	r := Rule{NonTerminal: nonTerminal, Right: make([]Symbol, len(right))}
	copy(r.Right, right)
	return r
}

func (r Rule) Equal(o Rule) bool {
	if r.NonTerminal != o.NonTerminal || len(r.Right) != len(o.Right) {
		return false
	}
	for i := range r.Right {
		if r.Right[i] != o.Right[i] {
			return false
		}
	}
	return true
}

func (r Rule) Copy() Rule {
	cp := Rule{NonTerminal: r.NonTerminal, Right: make([]Symbol, len(r.Right))}
	copy(cp.Right, r.Right)
	return cp
}

func (r Rule) String() string {
	var sb strings.Builder
	sb.WriteString(r.NonTerminal)
	sb.WriteString(" ->")
	if len(r.Right) == 0 {
		sb.WriteString(" ε")
		return sb.String()
	}
	for _, sym := range r.Right {
		sb.WriteRune(' ')
		sb.WriteString(sym.String())
	}
	return sb.String()
}
