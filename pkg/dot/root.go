package dot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// RootGraph is the document root. It owns the [IDManager] shared by every
// scope in the document and the graph-level attribute collection.
type RootGraph struct {
	Graph
	attrs GraphAttributes
}

// NewRootGraph creates a document root. directed fixes the edge operator
// for the whole document (`->` vs `--`); it cannot be changed afterwards
// and is inherited by every nested scope. An empty id defaults to "G".
func NewRootGraph(directed bool, id string) *RootGraph {
	if id == "" {
		id = "G"
	}
	ids := NewIDManager()
	return &RootGraph{
		Graph: Graph{directed: directed, ids: ids, id: ids.CustomID(id)},
	}
}

// IDs exposes the document's identifier registry, shared by all scopes.
func (g *RootGraph) IDs() *IDManager { return g.ids }

// Attributes returns the graph-level attribute collection, printed as a
// `graph [...]` statement at the top of the document body.
func (g *RootGraph) Attributes() *GraphAttributes { return &g.attrs }

// Print encodes the document and writes it to w through a buffered writer.
// Output is streamed scope by scope; the full document is never
// materialized. The returned error is the sink's write failure, if any.
func (g *RootGraph) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if g.directed {
		bw.WriteString("digraph ")
	} else {
		bw.WriteString("graph ")
	}
	bw.WriteString(g.id)
	bw.WriteString(" {\n")

	if !g.attrs.Empty() {
		writeIndent(bw, 1)
		bw.WriteString("graph [")
		g.attrs.print(bw)
		bw.WriteString("];\n")
	}

	g.printBody(bw, 1)
	bw.WriteString("}\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	return nil
}

// WriteFile encodes the document into a file at path, created with 0644
// permissions.
func (g *RootGraph) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := g.Print(f); err != nil {
		return err
	}
	return f.Close()
}

// String returns the encoded document. Prefer [RootGraph.Print] for large
// documents; String buffers everything in memory.
func (g *RootGraph) String() string {
	var sb strings.Builder
	g.Print(&sb) // strings.Builder writes cannot fail
	return sb.String()
}

// writeIndent writes two spaces per depth level.
func writeIndent(w *bufio.Writer, depth int) {
	for i := 0; i < depth; i++ {
		w.WriteString("  ")
	}
}
