package dot

import "bufio"

// Cluster is a nested scope whose identifier carries the reserved "cluster"
// prefix, which layout engines interpret as a bounded region. Unlike plain
// subgraphs, a cluster's label is printed: it is injected into the scope's
// graph attribute statement at encode time.
type Cluster struct {
	Graph
	attrs ClusterAttributes
}

// Attributes returns the cluster's scope-level attribute collection.
func (c *Cluster) Attributes() *ClusterAttributes { return &c.attrs }

func (c *Cluster) print(w *bufio.Writer, depth int) {
	writeIndent(w, depth)
	w.WriteString("subgraph ")
	w.WriteString(c.id)
	w.WriteString(" {\n")

	var extra []Attribute
	if c.label != "" {
		extra = append(extra, NewCustomAttribute("label", c.label))
	}
	if !c.attrs.Empty() || len(extra) > 0 {
		writeIndent(w, depth+1)
		w.WriteString("graph [")
		c.attrs.printWith(w, extra...)
		w.WriteString("];\n")
	}

	c.printBody(w, depth+1)
	writeIndent(w, depth)
	w.WriteString("}\n")
}
