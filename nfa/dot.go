package nfa

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDot writes n in Graphviz dot syntax. Edges are labelled with their
// matcher and with their insertion index, which is the reverse of the
// order the backtracker explores them in.
func (n *NFA) WriteDot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph nfa {")
	fmt.Fprintln(bw, "\trankdir=LR;")
	fmt.Fprintln(bw, "\tnode [shape=circle];")
	fmt.Fprintln(bw, "\tentry [shape=point];")
	fmt.Fprintf(bw, "\t%d [shape=doublecircle];\n", n.end)
	fmt.Fprintf(bw, "\tentry -> %d;\n", n.start)
	for i := range n.states {
		s := &n.states[i]
		for j, t := range s.transitions {
			label := t.Matcher.String()
			if len(s.transitions) > 1 {
				label += " #" + strconv.Itoa(j)
			}
			fmt.Fprintf(bw, "\t%d -> %d [label=%s];\n", s.id, t.Next, strconv.Quote(label))
		}
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
