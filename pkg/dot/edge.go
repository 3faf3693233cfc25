package dot

import "bufio"

// Edge is a directed or undirected connection between two nodes. The edge
// holds non-owning references: the endpoints may belong to any scope in the
// same document, including a different one than the edge's owner.
//
// Removing a node does not remove edges elsewhere that reference it; such an
// edge keeps printing the removed node's identifier. This mirrors the
// documented gap in the composition model rather than an invariant.
type Edge struct {
	src   *Node
	dst   *Node
	label string
	attrs EdgeAttributes
}

// Source returns the edge's source node.
func (e *Edge) Source() *Node { return e.src }

// Dest returns the edge's destination node.
func (e *Edge) Dest() *Node { return e.dst }

// Label returns the display label.
func (e *Edge) Label() string { return e.label }

// SetLabel sets the display label, injected into output at encode time.
func (e *Edge) SetLabel(label string) { e.label = label }

// Attributes returns the edge's attribute set for direct manipulation.
func (e *Edge) Attributes() *EdgeAttributes { return &e.attrs }

// print writes the edge statement with the operator matching the document's
// directedness.
func (e *Edge) print(w *bufio.Writer, directed bool, depth int) {
	writeIndent(w, depth)
	w.WriteString(e.src.id)
	if directed {
		w.WriteString(" -> ")
	} else {
		w.WriteString(" -- ")
	}
	w.WriteString(e.dst.id)

	var extra []Attribute
	if e.label != "" {
		extra = append(extra, NewCustomAttribute("label", e.label))
	}
	if !e.attrs.Empty() || len(extra) > 0 {
		w.WriteString(" [")
		e.attrs.printWith(w, extra...)
		w.WriteString("]")
	}
	w.WriteString(";\n")
}
