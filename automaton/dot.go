package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// DOT renders the NFA as Graphviz source: one node per item, solid
// edges for shifts, dashed edges for ε-transitions.
func (n *NFA) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph NFA {\n")
	sb.WriteString("\trankdir=LR;\n")
	sb.WriteString("\tnode [shape=box];\n")

	keys := keysOf(n.Items)
	ids := stableIDs(keys)
	sort.Strings(keys)
	for _, key := range keys {
		label := escapeDOT(n.Items[key].String())
		fmt.Fprintf(&sb, "\tn%d [label=\"%s\"];\n", ids[key], label)
	}
	fmt.Fprintf(&sb, "\tstart [shape=point];\n\tstart -> n%d;\n", ids[n.Start])

	type edge struct {
		from, to int
		label    string
		style    string
	}
	var edges []edge
	for from, out := range n.Edges {
		for to, label := range out {
			style := "solid"
			text := label.Symbol.String()
			if label.Epsilon {
				style = "dashed"
				text = "ε"
			}
			edges = append(edges, edge{from: ids[from], to: ids[to], label: escapeDOT(text), style: style})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		if edges[i].to != edges[j].to {
			return edges[i].to < edges[j].to
		}
		return edges[i].label < edges[j].label
	})
	for _, e := range edges {
		fmt.Fprintf(&sb, "\tn%d -> n%d [label=\"%s\", style=%s];\n", e.from, e.to, e.label, e.style)
	}
	sb.WriteString("}\n")
	return sb.String()
}

// DOT renders the DFA as Graphviz source: one node per item set,
// labeled with its member items, edges labeled by the shifting symbol.
func (d *DFA) DOT() string {
	var sb strings.Builder
	sb.WriteString("digraph DFA {\n")
	sb.WriteString("\trankdir=LR;\n")
	sb.WriteString("\tnode [shape=box];\n")

	keys := keysOf(d.Nodes)
	ids := stableIDs(keys)
	sort.Strings(keys)
	for _, key := range keys {
		var lines []string
		for _, it := range d.Nodes[key] {
			lines = append(lines, it.String())
		}
		label := escapeDOT(strings.Join(lines, "\\n"))
		fmt.Fprintf(&sb, "\tn%d [label=\"%s\"];\n", ids[key], label)
	}
	fmt.Fprintf(&sb, "\tstart [shape=point];\n\tstart -> n%d;\n", ids[d.Start])

	type edge struct {
		from, to int
		label    string
	}
	var edges []edge
	for from, out := range d.Edges {
		for sym, to := range out {
			edges = append(edges, edge{from: ids[from], to: ids[to], label: escapeDOT(sym.String())})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		if edges[i].to != edges[j].to {
			return edges[i].to < edges[j].to
		}
		return edges[i].label < edges[j].label
	})
	for _, e := range edges {
		fmt.Fprintf(&sb, "\tn%d -> n%d [label=\"%s\"];\n", e.from, e.to, e.label)
	}
	sb.WriteString("}\n")
	return sb.String()
}

func keysOf[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// stableIDs assigns a deterministic integer to each key, ordered by the
// key's own sort order, so repeated DOT() calls over the same automaton
// produce byte-identical output.
func stableIDs(keys []string) map[string]int {
	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	ids := make(map[string]int, len(sorted))
	for i, k := range sorted {
		ids[k] = i
	}
	return ids
}

func escapeDOT(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
