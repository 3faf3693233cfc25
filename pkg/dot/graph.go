package dot

import (
	"bufio"
	"slices"
)

// Graph is the composite shared by the document root and nested scopes:
// four insertion-ordered owned sequences (nodes, edges, subgraphs,
// clusters) plus default node and edge attribute collections.
//
// Directedness is fixed when the document root is constructed and inherited
// by every nested scope; it cannot be overridden per scope. All scopes share
// the root's [IDManager].
type Graph struct {
	directed bool
	ids      *IDManager // owned by the root graph
	id       string
	label    string

	nodes     []*Node
	edges     []*Edge
	subgraphs []*Subgraph
	clusters  []*Cluster

	nodeDefaults NodeAttributes
	edgeDefaults EdgeAttributes
}

// IsDirected reports whether the document uses directed edges.
func (g *Graph) IsDirected() bool { return g.directed }

// ID returns the scope's document-unique identifier.
func (g *Graph) ID() string { return g.id }

// Label returns the scope label.
func (g *Graph) Label() string { return g.label }

// SetLabel sets the scope label. For clusters the label is injected into
// the printed graph attribute statement at encode time; plain subgraph and
// root labels are carried but not printed.
func (g *Graph) SetLabel(label string) { g.label = label }

// NodeDefaults returns the scope's default node attribute collection,
// printed as a `node [...]` statement before any node in the scope.
func (g *Graph) NodeDefaults() *NodeAttributes { return &g.nodeDefaults }

// EdgeDefaults returns the scope's default edge attribute collection,
// printed as an `edge [...]` statement before any edge in the scope.
func (g *Graph) EdgeDefaults() *EdgeAttributes { return &g.edgeDefaults }

// Nodes returns the scope's nodes in insertion order.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns the scope's edges in insertion order.
func (g *Graph) Edges() []*Edge { return g.edges }

// Subgraphs returns the scope's child subgraphs in insertion order.
func (g *Graph) Subgraphs() []*Subgraph { return g.subgraphs }

// Clusters returns the scope's child clusters in insertion order.
func (g *Graph) Clusters() []*Cluster { return g.clusters }

// AddNode creates a node with a generated identifier and appends it to this
// scope. An empty label leaves the node unlabeled.
func (g *Graph) AddNode(label string) *Node {
	n := &Node{id: g.ids.NodeID(), label: label}
	g.nodes = append(g.nodes, n)
	return n
}

// AddNodeWithID creates a node with a user-supplied identifier. The id is
// registered with the document's IDManager and uniquified on collision, so
// the node's effective id may differ from the requested one.
func (g *Graph) AddNodeWithID(label, id string) *Node {
	n := &Node{id: g.ids.CustomID(id), label: label}
	g.nodes = append(g.nodes, n)
	return n
}

// AddEdge creates an edge from src to dst and appends it to this scope.
// The endpoints are not checked for ownership: they may live in any scope
// of the same document.
func (g *Graph) AddEdge(src, dst *Node) *Edge {
	e := &Edge{src: src, dst: dst}
	g.edges = append(g.edges, e)
	return e
}

// AddEdgeWithLabel creates a labeled edge from src to dst.
func (g *Graph) AddEdgeWithLabel(src, dst *Node, label string) *Edge {
	e := &Edge{src: src, dst: dst, label: label}
	g.edges = append(g.edges, e)
	return e
}

// AddSubgraph creates a child subgraph with a generated identifier, sharing
// the document's IDManager and directedness.
func (g *Graph) AddSubgraph(label string) *Subgraph {
	return g.appendSubgraph(g.ids.SubgraphID(), label)
}

// AddSubgraphWithID creates a child subgraph with a user-supplied
// identifier, uniquified on collision.
func (g *Graph) AddSubgraphWithID(label, id string) *Subgraph {
	return g.appendSubgraph(g.ids.CustomID(id), label)
}

func (g *Graph) appendSubgraph(id, label string) *Subgraph {
	sg := &Subgraph{Graph: Graph{directed: g.directed, ids: g.ids, id: id, label: label}}
	g.subgraphs = append(g.subgraphs, sg)
	return sg
}

// AddCluster creates a child cluster with a generated "cluster_<n>"
// identifier.
func (g *Graph) AddCluster(label string) *Cluster {
	return g.appendCluster(g.ids.ClusterID(), label)
}

// AddClusterWithID creates a child cluster with a user-supplied identifier.
// The reserved "cluster" prefix is prepended when absent so downstream
// layout tools treat the scope as a bounded cluster.
func (g *Graph) AddClusterWithID(label, id string) *Cluster {
	return g.appendCluster(g.ids.CustomClusterID(id), label)
}

func (g *Graph) appendCluster(id, label string) *Cluster {
	c := &Cluster{Graph: Graph{directed: g.directed, ids: g.ids, id: id, label: label}}
	g.clusters = append(g.clusters, c)
	return c
}

// RemoveNode removes the node from this scope. The node's identifier stays
// registered and is never reissued. Edges elsewhere that reference the node
// are not removed (documented gap).
func (g *Graph) RemoveNode(node *Node) {
	if i := slices.Index(g.nodes, node); i >= 0 {
		g.nodes = slices.Delete(g.nodes, i, i+1)
	}
}

// RemoveEdge removes the edge from this scope.
func (g *Graph) RemoveEdge(edge *Edge) {
	if i := slices.Index(g.edges, edge); i >= 0 {
		g.edges = slices.Delete(g.edges, i, i+1)
	}
}

// RemoveSubgraph removes the child subgraph and everything it owns.
func (g *Graph) RemoveSubgraph(sg *Subgraph) {
	if i := slices.Index(g.subgraphs, sg); i >= 0 {
		g.subgraphs = slices.Delete(g.subgraphs, i, i+1)
	}
}

// RemoveCluster removes the child cluster and everything it owns.
func (g *Graph) RemoveCluster(c *Cluster) {
	if i := slices.Index(g.clusters, c); i >= 0 {
		g.clusters = slices.Delete(g.clusters, i, i+1)
	}
}

// printBody writes the scope's statements in the fixed order the DOT
// grammar requires: default-attribute statements first (they only apply to
// statements after them), then nodes, edges, subgraphs, clusters.
func (g *Graph) printBody(w *bufio.Writer, depth int) {
	if !g.nodeDefaults.Empty() {
		writeIndent(w, depth)
		w.WriteString("node [")
		g.nodeDefaults.print(w)
		w.WriteString("];\n")
	}
	if !g.edgeDefaults.Empty() {
		writeIndent(w, depth)
		w.WriteString("edge [")
		g.edgeDefaults.print(w)
		w.WriteString("];\n")
	}

	for _, n := range g.nodes {
		n.print(w, depth)
	}
	for _, e := range g.edges {
		e.print(w, g.directed, depth)
	}
	for _, sg := range g.subgraphs {
		sg.print(w, depth)
	}
	for _, c := range g.clusters {
		c.print(w, depth)
	}
}
