package segtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a segment tree in Graphviz DOT
// format (for debugging purposes). Every slot is labeled with the range of
// leaves it covers and with its value, as rendered by format. If format is
// nil, values are printed with %v.
//
// Padding leaves beyond Len() are drawn dashed.
func Tree2Dot[V any](tree *Tree[V], w io.Writer, format func(V) string) {
	if tree == nil {
		tracer().Errorf("segtree DOT: tree is nil")
		return
	}
	format = valueFormatter(format)
	var nodelist, edgelist strings.Builder
	tree.eachSlot(func(node, left, right int) {
		label := fmt.Sprintf("[%d,%d)\\n%s", left, right, escapeDot(format(tree.values[node])))
		style := "shape=box"
		if right-left == 1 {
			style = "shape=ellipse"
			if left >= tree.size {
				style += ",style=dashed"
			}
		}
		fmt.Fprintf(&nodelist, "\"%d\" [label=\"%s\" %s];\n", node, label, style)
		if right-left > 1 {
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", node, 2*node+1)
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", node, 2*node+2)
		}
	})
	writeAll(w,
		"strict digraph {\n",
		"\tnode [fontname=Arial,fontsize=12];\n",
		nodelist.String(),
		edgelist.String(),
		"}\n")
}

// eachSlot walks all slots in pre-order, together with the range of leaves
// covered by each slot.
func (t *Tree[V]) eachSlot(fn func(node, left, right int)) {
	var walk func(node, left, right int)
	walk = func(node, left, right int) {
		fn(node, left, right)
		if right-left == 1 {
			return
		}
		mid := (left + right) / 2
		walk(2*node+1, left, mid)
		walk(2*node+2, mid, right)
	}
	walk(0, 0, t.nLeaves)
}

func valueFormatter[V any](format func(V) string) func(V) string {
	if format != nil {
		return format
	}
	return func(v V) string {
		return fmt.Sprintf("%v", v)
	}
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

func escapeDot(s string) string {
	return dotEscaper.Replace(s)
}

func writeAll(w io.Writer, parts ...string) {
	for _, s := range parts {
		if _, err := io.WriteString(w, s); err != nil {
			tracer().Errorf("segtree output: %s", err.Error())
			return
		}
	}
}
