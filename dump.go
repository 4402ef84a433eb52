package segtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes a level-by-level text rendering of tree to w, one line per
// tree level, root first. Each slot is printed as its leaf range and its
// value, as rendered by format (%v if format is nil).
func Dump[V any](tree *Tree[V], w io.Writer, format func(V) string) {
	dump(w, tree, format, nil)
}

// DumpCover is Dump, but slots which a query for [begin, end) reads directly
// are marked with a '*'. On terminals they are highlighted in color as well.
// DumpCover panics under the same conditions as Query.
func DumpCover[V any](tree *Tree[V], w io.Writer, begin, end int, format func(V) string) {
	if tree == nil {
		tracer().Errorf("segtree dump: tree is nil")
		return
	}
	covered := make(map[int]bool)
	for _, slot := range tree.Cover(begin, end) {
		covered[slot] = true
	}
	dump(w, tree, format, covered)
}

func dump[V any](w io.Writer, tree *Tree[V], format func(V) string, covered map[int]bool) {
	if tree == nil {
		tracer().Errorf("segtree dump: tree is nil")
		return
	}
	format = valueFormatter(format)
	highlight := color.New(color.FgGreen, color.Bold)
	if isTerminal(w) {
		highlight.EnableColor()
	} else {
		highlight.DisableColor()
	}
	var lines []string
	for level, first := 0, 0; first < len(tree.values); level, first = level+1, 2*first+1 {
		width := tree.nLeaves >> level
		var b strings.Builder
		fmt.Fprintf(&b, "%2d:", level)
		for k := 0; k < 1<<level; k++ {
			node := first + k
			cell := fmt.Sprintf("[%d,%d) %s", k*width, (k+1)*width, format(tree.values[node]))
			if covered[node] {
				cell = highlight.Sprint("*" + cell)
			}
			b.WriteString(" ")
			b.WriteString(cell)
		}
		b.WriteString("\n")
		lines = append(lines, b.String())
	}
	writeAll(w, lines...)
}

// isTerminal reports whether w is a file connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
