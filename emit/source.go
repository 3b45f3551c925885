// Package emit renders a projected table as a Go source literal or a
// binary artifact, and stamps the artifact with a generation ID.
package emit

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/ZhukDmitryOlegovich/compgen/grammar"
	"github.com/ZhukDmitryOlegovich/compgen/table"
)

// StartMarker and EndMarker bound the region Splice replaces in a
// template source file.
const (
	StartMarker = "//@START_PARSE_TABLES@"
	EndMarker   = "//@END_PARSE_TABLES@"
)

// SourceLiteral renders t as a Go function declaration, GetParseTables,
// returning *table.Tables, built from Go composite literals so the emitted file
// has no runtime dependency on the generator itself.
func SourceLiteral(t *table.Tables) string {
	var sb strings.Builder
	sb.WriteString("func GetParseTables() *table.Tables {\n")
	sb.WriteString("\treturn &table.Tables{\n")
	fmt.Fprintf(&sb, "\t\tStart: %d,\n", t.Start)

	sb.WriteString("\t\tAction: map[table.ActionKey]table.Action{\n")
	for _, key := range sortedActionKeys(t.Action) {
		act := t.Action[key]
		fmt.Fprintf(&sb, "\t\t\t{State: %d, La: %s}: %s,\n", key.State, lookaheadLiteral(key.La), actionLiteral(act))
	}
	sb.WriteString("\t\t},\n")

	sb.WriteString("\t\tGoto: map[table.GotoKey]int{\n")
	for _, key := range sortedGotoKeys(t.Goto) {
		fmt.Fprintf(&sb, "\t\t\t{State: %d, NonTerminal: %q}: %d,\n", key.State, key.NonTerminal, t.Goto[key])
	}
	sb.WriteString("\t\t},\n")

	sb.WriteString("\t}\n")
	sb.WriteString("}\n")
	return sb.String()
}

func lookaheadLiteral(la grammar.Lookahead) string {
	if la.End {
		return "grammar.EndOfInput"
	}
	return fmt.Sprintf("grammar.La(%q)", la.Terminal)
}

func ruleLiteral(r grammar.Rule) string {
	var parts []string
	for _, sym := range r.Right {
		if sym.IsTerminal() {
			parts = append(parts, fmt.Sprintf("grammar.Term(%q)", sym.Name))
		} else {
			parts = append(parts, fmt.Sprintf("grammar.NTerm(%q)", sym.Name))
		}
	}
	return fmt.Sprintf("grammar.NewRule(%q, %s)", r.NonTerminal, strings.Join(parts, ", "))
}

func actionLiteral(act table.Action) string {
	switch act.Kind {
	case table.Shift:
		return fmt.Sprintf("table.Action{Kind: table.Shift, State: %d}", act.State)
	case table.Reduce:
		return fmt.Sprintf("table.Action{Kind: table.Reduce, Rule: %s}", ruleLiteral(act.Rule))
	default:
		return "table.Action{Kind: table.Accept}"
	}
}

func sortedActionKeys(m map[table.ActionKey]table.Action) []table.ActionKey {
	keys := make([]table.ActionKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].La.String() < keys[j].La.String()
	})
	return keys
}

func sortedGotoKeys(m map[table.GotoKey]int) []table.GotoKey {
	keys := make([]table.GotoKey, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].State != keys[j].State {
			return keys[i].State < keys[j].State
		}
		return keys[i].NonTerminal < keys[j].NonTerminal
	})
	return keys
}

// Splice replaces the region between StartMarker and EndMarker (the
// marker lines themselves are kept) in template with literal, matching
// the original generator's to_rust_source/to_rust_function template
// splice, adapted to Go source.
func Splice(template []byte, literal string) ([]byte, error) {
	lines := bytes.Split(template, []byte("\n"))

	start, end := -1, -1
	for i, line := range lines {
		switch {
		case bytes.HasPrefix(line, []byte(StartMarker)):
			start = i
		case bytes.HasPrefix(line, []byte(EndMarker)):
			end = i
		}
	}
	if start == -1 {
		return nil, fmt.Errorf("emit: no %s marker in template", StartMarker)
	}
	if end == -1 {
		return nil, fmt.Errorf("emit: no %s marker in template", EndMarker)
	}
	if end <= start {
		return nil, fmt.Errorf("emit: %s appears before %s", EndMarker, StartMarker)
	}

	var out bytes.Buffer
	out.Write(bytes.Join(lines[:start+1], []byte("\n")))
	out.WriteString("\n")
	out.WriteString(literal)
	out.Write(bytes.Join(lines[end:], []byte("\n")))
	return out.Bytes(), nil
}
