package table

import (
	"fmt"
	"strings"
)

// DOT renders the parse tree as Graphviz source. attr formats a leaf's
// attribute payload for display; pass nil to omit attribute text.
func (tr *Tree[T]) DOT(attr func(T) string) string {
	var sb strings.Builder
	sb.WriteString("digraph Tree {\n")
	sb.WriteString("\tnode [shape=box];\n")
	next := 0
	writeTreeDOT(&sb, tr, attr, &next)
	sb.WriteString("}\n")
	return sb.String()
}

func writeTreeDOT[T any](sb *strings.Builder, tr *Tree[T], attr func(T) string, next *int) int {
	id := *next
	*next++

	label := tr.NonTerminal
	if tr.Terminal {
		label = tr.Leaf.Tag.String()
		if attr != nil {
			label = fmt.Sprintf("%s (%s)", label, attr(tr.Leaf.Attribute))
		}
	}
	fmt.Fprintf(sb, "\tn%d [label=\"%s\"];\n", id, escapeDOTLabel(label))

	for _, child := range tr.Children {
		childID := writeTreeDOT(sb, child, attr, next)
		fmt.Fprintf(sb, "\tn%d -> n%d;\n", id, childID)
	}
	return id
}

func escapeDOTLabel(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
