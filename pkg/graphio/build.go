package graphio

import (
	"maps"
	"slices"

	"github.com/matzehuels/dotkit/pkg/dot"
	"github.com/matzehuels/dotkit/pkg/errors"
)

// Build compiles a graph document into a [dot.RootGraph].
//
// Compilation is two-pass. The first pass walks every scope and creates all
// nodes, so the second pass can resolve edge endpoints declared anywhere in
// the document. Attribute maps are applied in sorted key order, making the
// compiled output deterministic for a given document.
func Build(doc *Document) (*dot.RootGraph, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	g := dot.NewRootGraph(doc.IsDirected(), doc.Name)
	applyAttrs(&g.Attributes().AttributeSet, doc.Graph)

	b := &builder{nodes: make(map[string]*dot.Node)}
	b.addScopeContents(&g.Graph, doc.NodeDefaults, doc.EdgeDefaults, doc.Nodes, doc.Subgraphs, doc.Clusters)
	b.queueEdges(&g.Graph, doc.Edges)

	for _, pe := range b.pending {
		src, ok := b.nodes[pe.spec.From]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "edge references unknown node %q", pe.spec.From)
		}
		dst, ok := b.nodes[pe.spec.To]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidDocument, "edge references unknown node %q", pe.spec.To)
		}
		e := pe.owner.AddEdgeWithLabel(src, dst, pe.spec.Label)
		applyAttrs(&e.Attributes().AttributeSet, pe.spec.Attrs)
	}

	return g, nil
}

type pendingEdge struct {
	owner *dot.Graph
	spec  Edge
}

type builder struct {
	nodes   map[string]*dot.Node
	pending []pendingEdge
}

// addScopeContents creates one scope's nodes and child scopes. Edges are
// queued for the second pass; node and scope insertion order follows the
// document.
func (b *builder) addScopeContents(g *dot.Graph, nodeDefaults, edgeDefaults map[string]string, nodes []Node, subgraphs, clusters []Scope) {
	applyAttrs(&g.NodeDefaults().AttributeSet, nodeDefaults)
	applyAttrs(&g.EdgeDefaults().AttributeSet, edgeDefaults)

	for _, n := range nodes {
		node := g.AddNodeWithID(n.Label, n.ID)
		applyAttrs(&node.Attributes().AttributeSet, n.Attrs)
		b.nodes[n.ID] = node
	}

	for _, s := range subgraphs {
		var sg *dot.Subgraph
		if s.ID != "" {
			sg = g.AddSubgraphWithID(s.Label, s.ID)
		} else {
			sg = g.AddSubgraph(s.Label)
		}
		applyAttrs(&sg.Attributes().AttributeSet, s.Attrs)
		b.addScopeContents(&sg.Graph, s.NodeDefaults, s.EdgeDefaults, s.Nodes, s.Subgraphs, s.Clusters)
		b.queueEdges(&sg.Graph, s.Edges)
	}

	for _, s := range clusters {
		var c *dot.Cluster
		if s.ID != "" {
			c = g.AddClusterWithID(s.Label, s.ID)
		} else {
			c = g.AddCluster(s.Label)
		}
		applyAttrs(&c.Attributes().AttributeSet, s.Attrs)
		b.addScopeContents(&c.Graph, s.NodeDefaults, s.EdgeDefaults, s.Nodes, s.Subgraphs, s.Clusters)
		b.queueEdges(&c.Graph, s.Edges)
	}
}

func (b *builder) queueEdges(g *dot.Graph, edges []Edge) {
	for _, e := range edges {
		b.pending = append(b.pending, pendingEdge{owner: g, spec: e})
	}
}

func applyAttrs(s *dot.AttributeSet, attrs map[string]string) {
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		s.SetCustom(k, attrs[k])
	}
}
