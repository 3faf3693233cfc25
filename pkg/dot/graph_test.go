package dot

import (
	"strings"
	"testing"
)

func TestGraphOwnership(t *testing.T) {
	g := NewRootGraph(true, "deps")

	a := g.AddNode("app")
	b := g.AddNodeWithID("library", "lib")
	e := g.AddEdge(a, b)
	sg := g.AddSubgraph("")
	c := g.AddCluster("backend")

	if len(g.Nodes()) != 2 || len(g.Edges()) != 1 {
		t.Fatalf("nodes = %d, edges = %d, want 2 and 1", len(g.Nodes()), len(g.Edges()))
	}
	if len(g.Subgraphs()) != 1 || len(g.Clusters()) != 1 {
		t.Fatalf("subgraphs = %d, clusters = %d, want 1 and 1", len(g.Subgraphs()), len(g.Clusters()))
	}
	if b.ID() != "lib" {
		t.Errorf("custom node id = %q, want %q", b.ID(), "lib")
	}
	if e.Source() != a || e.Dest() != b {
		t.Error("edge endpoints do not match the nodes passed in")
	}
	if sg.ID() != "Graph0" {
		t.Errorf("subgraph id = %q, want %q", sg.ID(), "Graph0")
	}
	if !strings.HasPrefix(c.ID(), "cluster") {
		t.Errorf("cluster id = %q, want cluster prefix", c.ID())
	}
	if !sg.IsDirected() || !c.IsDirected() {
		t.Error("nested scopes should inherit directedness")
	}
}

func TestGraphRemove(t *testing.T) {
	g := NewRootGraph(false, "")
	a := g.AddNode("a")
	b := g.AddNode("b")
	e := g.AddEdge(a, b)
	sg := g.AddSubgraph("")
	c := g.AddCluster("")

	g.RemoveNode(a)
	g.RemoveEdge(e)
	g.RemoveSubgraph(sg)
	g.RemoveCluster(c)

	if len(g.Nodes()) != 1 || g.Nodes()[0] != b {
		t.Errorf("RemoveNode left %d nodes", len(g.Nodes()))
	}
	if len(g.Edges()) != 0 || len(g.Subgraphs()) != 0 || len(g.Clusters()) != 0 {
		t.Error("removal left entities behind")
	}

	// Removing again is a no-op.
	g.RemoveNode(a)
	g.RemoveEdge(e)
	if len(g.Nodes()) != 1 {
		t.Error("double removal changed the graph")
	}
}

func TestStatementOrder(t *testing.T) {
	g := NewRootGraph(true, "")
	// Populate in scrambled order; output order must still be defaults,
	// nodes, edges, subgraphs, clusters.
	sg := g.AddSubgraph("")
	a := g.AddNode("a")
	g.AddCluster("c")
	b := g.AddNode("b")
	g.AddEdge(a, b)
	g.NodeDefaults().SetShape(ShapeBox)
	g.EdgeDefaults().SetStyle(EdgeStyleDashed)
	g.Attributes().SetRankDir(RankDirLR)
	_ = sg

	out := g.String()
	order := []string{
		`graph [rankdir="LR"];`,
		`node [shape="box"];`,
		`edge [style="dashed"];`,
		`Node0 [label="a"];`,
		`Node1 [label="b"];`,
		"Node0 -> Node1;",
		"subgraph Graph0 {",
		"subgraph cluster_1 {",
	}
	pos := -1
	for _, stmt := range order {
		i := strings.Index(out, stmt)
		if i < 0 {
			t.Fatalf("statement %q missing from output:\n%s", stmt, out)
		}
		if i < pos {
			t.Errorf("statement %q out of order:\n%s", stmt, out)
		}
		pos = i
	}
}

func TestCrossScopeEdge(t *testing.T) {
	g := NewRootGraph(true, "")
	c := g.AddCluster("grouped")
	inner := c.AddNode("inner")
	outer := g.AddNode("outer")
	g.AddEdge(outer, inner)

	out := g.String()
	if !strings.Contains(out, "Node1 -> Node0;") {
		t.Errorf("cross-scope edge missing:\n%s", out)
	}
}

func TestDanglingEdgeKeepsPrinting(t *testing.T) {
	g := NewRootGraph(true, "")
	a := g.AddNode("a")
	b := g.AddNode("b")
	g.AddEdge(a, b)
	g.RemoveNode(b)

	// The edge is not cleaned up and keeps printing the removed id.
	out := g.String()
	if !strings.Contains(out, "Node0 -> Node1;") {
		t.Errorf("edge to removed node missing:\n%s", out)
	}
	if strings.Contains(out, `Node1 [`) {
		t.Errorf("removed node statement still present:\n%s", out)
	}
}

func TestClusterLabelInjection(t *testing.T) {
	g := NewRootGraph(true, "")
	c := g.AddCluster("Back \"End\"")
	c.Attributes().SetBGColor(ColorLightGray)

	out := g.String()
	if !strings.Contains(out, `graph [bgcolor="lightgray", label="Back \"End\""];`) {
		t.Errorf("cluster label not injected into graph statement:\n%s", out)
	}

	// Replacing the label replaces the printed value; nothing accumulates.
	c.SetLabel("Backend")
	out = g.String()
	if strings.Contains(out, "End") {
		t.Errorf("stale label survived relabeling:\n%s", out)
	}
	if !strings.Contains(out, `label="Backend"`) {
		t.Errorf("new label missing:\n%s", out)
	}
}

func TestSubgraphLabelNotPrinted(t *testing.T) {
	g := NewRootGraph(true, "")
	sg := g.AddSubgraph("hidden label")
	sg.Attributes().SetRank(RankSame)

	out := g.String()
	if strings.Contains(out, "hidden label") {
		t.Errorf("plain subgraph label should not be printed:\n%s", out)
	}
	if !strings.Contains(out, `graph [rank="same"];`) {
		t.Errorf("subgraph rank statement missing:\n%s", out)
	}
}

func TestNodeRelabel(t *testing.T) {
	g := NewRootGraph(true, "")
	n := g.AddNode("old")
	n.SetLabel("new")

	out := g.String()
	if strings.Contains(out, "old") {
		t.Errorf("stale node label survived relabeling:\n%s", out)
	}
	if !strings.Contains(out, `label="new"`) {
		t.Errorf("new label missing:\n%s", out)
	}
}
