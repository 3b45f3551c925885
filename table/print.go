package table

import (
	"fmt"
	"sort"

	"github.com/dekarrin/rosed"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
)

// String renders a human-readable ACTION/GOTO table dump: one row per
// state, one column per terminal (under an "A:" prefix) followed by one
// column per non-terminal (under a "G:" prefix).
func (t *Tables) String() string {
	states := t.allStates()
	terminals := t.allTerminals()
	nonTerminals := t.allNonTerminals()

	headers := []string{"state", "|"}
	for _, term := range terminals {
		headers = append(headers, fmt.Sprintf("A:%s", term))
	}
	headers = append(headers, "|")
	for _, nt := range nonTerminals {
		headers = append(headers, fmt.Sprintf("G:%s", nt))
	}

	data := [][]string{headers}
	for _, s := range states {
		row := []string{fmt.Sprintf("%d", s), "|"}
		for _, term := range terminals {
			cell := ""
			if act, ok := t.Action[ActionKey{State: s, La: grammar.La(term)}]; ok {
				cell = act.String()
			}
			row = append(row, cell)
		}
		row = append(row, "|")
		for _, nt := range nonTerminals {
			cell := ""
			if target, ok := t.Goto[GotoKey{State: s, NonTerminal: nt}]; ok {
				cell = fmt.Sprintf("%d", target)
			}
			row = append(row, cell)
		}
		data = append(data, row)
	}

	return rosed.Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

func (t *Tables) allStates() []int {
	set := map[int]bool{}
	for k := range t.Action {
		set[k.State] = true
	}
	for k := range t.Goto {
		set[k.State] = true
	}
	out := make([]int, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Ints(out)
	return out
}

func (t *Tables) allTerminals() []string {
	set := map[string]bool{}
	for k := range t.Action {
		if !k.La.End {
			set[k.La.Terminal] = true
		}
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (t *Tables) allNonTerminals() []string {
	set := map[string]bool{}
	for k := range t.Goto {
		set[k.NonTerminal] = true
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
