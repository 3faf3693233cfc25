package dot

import "bufio"

// Subgraph is a plain (non-cluster) nested scope. It groups statements
// without implying a visual boundary; layout engines use it mainly for rank
// constraints.
type Subgraph struct {
	Graph
	attrs SubgraphAttributes
}

// Attributes returns the subgraph's scope-level attribute collection.
func (sg *Subgraph) Attributes() *SubgraphAttributes { return &sg.attrs }

func (sg *Subgraph) print(w *bufio.Writer, depth int) {
	writeIndent(w, depth)
	w.WriteString("subgraph ")
	w.WriteString(sg.id)
	w.WriteString(" {\n")

	if !sg.attrs.Empty() {
		writeIndent(w, depth+1)
		w.WriteString("graph [")
		sg.attrs.print(w)
		w.WriteString("];\n")
	}

	sg.printBody(w, depth+1)
	writeIndent(w, depth)
	w.WriteString("}\n")
}
