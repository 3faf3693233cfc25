package dot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPrintDirectedDocument(t *testing.T) {
	g := NewRootGraph(true, "deps")
	g.Attributes().SetRankDir(RankDirLR)
	g.NodeDefaults().SetShape(ShapeBox)

	app := g.AddNode("app")
	lib := g.AddNodeWithID("library \"v2\"", "lib")
	e := g.AddEdge(app, lib)
	e.Attributes().SetStyle(EdgeStyleDashed)

	want := `digraph deps {
  graph [rankdir="LR"];
  node [shape="box"];
  Node0 [label="app"];
  lib [label="library \"v2\""];
  Node0 -> lib [style="dashed"];
}
`
	if got := g.String(); got != want {
		t.Errorf("String() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintUndirectedDocument(t *testing.T) {
	g := NewRootGraph(false, "")
	a := g.AddNode("")
	b := g.AddNode("")
	g.AddEdge(a, b)

	want := `graph G {
  Node0;
  Node1;
  Node0 -- Node1;
}
`
	if got := g.String(); got != want {
		t.Errorf("String() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintNestedScopes(t *testing.T) {
	g := NewRootGraph(true, "G")
	c := g.AddCluster("Backend")
	c.Attributes().SetStyle(NodeStyleFilled)
	api := c.AddNode("api")
	db := c.AddNode("db")
	c.AddEdge(api, db)

	sg := c.AddSubgraph("")
	sg.Attributes().SetRank(RankSame)
	sg.AddNode("worker")

	want := `digraph G {
  subgraph cluster_0 {
    graph [style="filled", label="Backend"];
    Node0 [label="api"];
    Node1 [label="db"];
    Node0 -> Node1;
    subgraph Graph1 {
      graph [rank="same"];
      Node2 [label="worker"];
    }
  }
}
`
	if got := g.String(); got != want {
		t.Errorf("String() mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrintStable(t *testing.T) {
	g := NewRootGraph(true, "")
	n := g.AddNode("has \"quotes\"\nand newline")
	n.Attributes().SetFillColor(ColorSkyBlue)

	first := g.String()
	second := g.String()
	if first != second {
		t.Errorf("repeated printing differs:\n%s\n%s", first, second)
	}
	if !strings.Contains(first, `label="has \"quotes\"\nand newline"`) {
		t.Errorf("escaping wrong:\n%s", first)
	}
}

func TestWriteFile(t *testing.T) {
	g := NewRootGraph(true, "out")
	g.AddNode("only")

	path := filepath.Join(t.TempDir(), "graph.dot")
	if err := g.WriteFile(path); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if string(data) != g.String() {
		t.Errorf("file contents differ from String():\n%s", data)
	}
}

func TestRootIDDefaults(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"explicit", "pipeline", "digraph pipeline {"},
		{"empty defaults to G", "", "digraph G {"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewRootGraph(true, tt.id)
			if !strings.HasPrefix(g.String(), tt.want) {
				t.Errorf("header = %q, want prefix %q", g.String(), tt.want)
			}
		})
	}
}
