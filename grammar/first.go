package grammar

// Nullable computes, for every non-terminal that appears as some rule's
// left-hand side, whether it can derive the empty string. It is a
// standard fixed-point: a non-terminal is nullable if some rule for it
// has an all-nullable (possibly empty) right-hand side.
func Nullable(g Grammar) map[string]bool {
	nullable := map[string]bool{}
	for changed := true; changed; {
		changed = false
		for _, r := range g.Rules {
			if nullable[r.NonTerminal] {
				continue
			}
			allNullable := true
			for _, sym := range r.Right {
				if sym.IsTerminal() || !nullable[sym.Name] {
					allNullable = false
					break
				}
			}
			if allNullable {
				nullable[r.NonTerminal] = true
				changed = true
			}
		}
	}
	return nullable
}

// FirstSet is the FIRST set of a single non-terminal: the terminals that
// can begin some derivation from it, plus whether it can derive epsilon.
type FirstSet struct {
	Terminals map[string]bool
	Epsilon   bool
}

func newFirstSet() FirstSet {
	return FirstSet{Terminals: map[string]bool{}}
}

// First computes FIRST(N) for every non-terminal N appearing anywhere in
// g (as a rule's left-hand side or referenced on some right-hand side),
// via the two-pass fixed point: nullability first, then FIRST terminals
// propagated through each rule's right-hand side, stopping at the first
// terminal or the first non-nullable symbol.
func First(g Grammar) map[string]FirstSet {
	nullable := Nullable(g)

	first := map[string]FirstSet{}
	ensure := func(name string) {
		if _, ok := first[name]; !ok {
			first[name] = newFirstSet()
		}
	}
	for _, r := range g.Rules {
		ensure(r.NonTerminal)
		for _, sym := range r.Right {
			if !sym.IsTerminal() {
				ensure(sym.Name)
			}
		}
	}
	for nt := range first {
		if nullable[nt] {
			fs := first[nt]
			fs.Epsilon = true
			first[nt] = fs
		}
	}

	for changed := true; changed; {
		changed = false
		for _, r := range g.Rules {
			cur := first[r.NonTerminal]
			for _, sym := range r.Right {
				if sym.IsTerminal() {
					if !cur.Terminals[sym.Name] {
						cur.Terminals[sym.Name] = true
						changed = true
					}
					break
				}
				other := first[sym.Name]
				for t := range other.Terminals {
					if !cur.Terminals[t] {
						cur.Terminals[t] = true
						changed = true
					}
				}
				if !other.Epsilon {
					break
				}
			}
			first[r.NonTerminal] = cur
		}
	}

	return first
}

// FirstOfSequence computes the FIRST set of a symbol sequence (e.g. the
// remainder of a production after the dot), given precomputed FIRST sets
// for individual non-terminals. It stops at the first terminal or the
// first non-nullable symbol, exactly as the per-rule propagation in
// First does.
func FirstOfSequence(seq []Symbol, first map[string]FirstSet) FirstSet {
	out := newFirstSet()
	out.Epsilon = true
	for _, sym := range seq {
		if sym.IsTerminal() {
			out.Terminals[sym.Name] = true
			out.Epsilon = false
			return out
		}
		fs := first[sym.Name]
		for t := range fs.Terminals {
			out.Terminals[t] = true
		}
		if !fs.Epsilon {
			out.Epsilon = false
			return out
		}
	}
	return out
}
