package dot

import "bufio"

// Node is a leaf entity in a graph scope. Nodes are created through
// [Graph.AddNode] or [Graph.AddNodeWithID] and are owned by the scope that
// created them; the returned handle stays valid for the owner's lifetime.
type Node struct {
	id    string
	label string
	attrs NodeAttributes
}

// ID returns the node's document-unique identifier.
func (n *Node) ID() string { return n.id }

// Label returns the display label.
func (n *Node) Label() string { return n.label }

// SetLabel sets the display label. The label is injected into the printed
// attribute list at encode time, so only the latest value appears in output.
func (n *Node) SetLabel(label string) { n.label = label }

// Attributes returns the node's attribute set for direct manipulation.
func (n *Node) Attributes() *NodeAttributes { return &n.attrs }

// print writes the node statement: id, optional bracketed attribute list
// (with the label injected transiently), terminating semicolon.
func (n *Node) print(w *bufio.Writer, depth int) {
	writeIndent(w, depth)
	w.WriteString(n.id)

	var extra []Attribute
	if n.label != "" {
		extra = append(extra, NewCustomAttribute("label", n.label))
	}
	if !n.attrs.Empty() || len(extra) > 0 {
		w.WriteString(" [")
		n.attrs.printWith(w, extra...)
		w.WriteString("]")
	}
	w.WriteString(";\n")
}
