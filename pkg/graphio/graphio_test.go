package graphio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
)

func TestReadJSON(t *testing.T) {
	input := `{
	  "name": "deps",
	  "graph": {"rankdir": "LR"},
	  "nodes": [
	    {"id": "app", "label": "Application"},
	    {"id": "lib"}
	  ],
	  "edges": [
	    {"from": "app", "to": "lib", "attrs": {"style": "dashed"}}
	  ]
	}`

	doc, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}
	if doc.Name != "deps" {
		t.Errorf("Name = %q, want %q", doc.Name, "deps")
	}
	if !doc.IsDirected() {
		t.Error("IsDirected() should default to true")
	}
	if len(doc.Nodes) != 2 || len(doc.Edges) != 1 {
		t.Errorf("nodes = %d, edges = %d, want 2 and 1", len(doc.Nodes), len(doc.Edges))
	}
	if doc.Graph["rankdir"] != "LR" {
		t.Errorf("graph attrs = %v", doc.Graph)
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "malformed json",
			input:    `{"nodes": [`,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "unknown field",
			input:    `{"vertices": []}`,
			wantCode: errors.ErrCodeInvalidFormat,
		},
		{
			name:     "empty node id",
			input:    `{"nodes": [{"id": ""}]}`,
			wantCode: errors.ErrCodeInvalidDocument,
		},
		{
			name:     "duplicate node id",
			input:    `{"nodes": [{"id": "a"}, {"id": "a"}]}`,
			wantCode: errors.ErrCodeInvalidDocument,
		},
		{
			name:     "duplicate across scopes",
			input:    `{"nodes": [{"id": "a"}], "clusters": [{"nodes": [{"id": "a"}]}]}`,
			wantCode: errors.ErrCodeInvalidDocument,
		},
		{
			name:     "unknown edge endpoint",
			input:    `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "ghost"}]}`,
			wantCode: errors.ErrCodeInvalidDocument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("ReadJSON() expected error, got nil")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("error code = %v, want %v (err: %v)", errors.GetCode(err), tt.wantCode, err)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	directed := true
	doc := &Document{
		Name:         "deps",
		Directed:     &directed,
		Graph:        map[string]string{"rankdir": "LR"},
		NodeDefaults: map[string]string{"shape": "box"},
		Nodes: []Node{
			{ID: "app", Label: "Application"},
			{ID: "lib", Attrs: map[string]string{"color": "blue", "bgcolor": "white"}},
		},
		Edges: []Edge{
			{From: "app", To: "lib", Label: "uses"},
		},
		Clusters: []Scope{
			{
				ID:    "backend",
				Label: "Backend",
				Nodes: []Node{{ID: "db"}},
				Edges: []Edge{{From: "lib", To: "db"}},
			},
		},
	}

	g, err := Build(doc)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}

	out := g.String()
	want := []string{
		"digraph deps {",
		`graph [rankdir="LR"];`,
		`node [shape="box"];`,
		`app [label="Application"];`,
		`lib [bgcolor="white", color="blue"];`, // sorted key order
		`app -> lib [label="uses"];`,
		"subgraph clusterbackend {",
		`graph [label="Backend"];`,
		"lib -> db;", // cross-scope endpoint resolved
	}
	for _, stmt := range want {
		if !strings.Contains(out, stmt) {
			t.Errorf("output missing %q:\n%s", stmt, out)
		}
	}
}

func TestBuildUndirected(t *testing.T) {
	directed := false
	doc := &Document{
		Directed: &directed,
		Nodes:    []Node{{ID: "a"}, {ID: "b"}},
		Edges:    []Edge{{From: "a", To: "b"}},
	}

	g, err := Build(doc)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	out := g.String()
	if !strings.HasPrefix(out, "graph G {") {
		t.Errorf("header = %q", out)
	}
	if !strings.Contains(out, "a -- b;") {
		t.Errorf("undirected edge missing:\n%s", out)
	}
}

func TestBuildForwardReference(t *testing.T) {
	// An edge may reference a node declared after it, in a later scope.
	doc := &Document{
		Edges: []Edge{{From: "early", To: "late"}},
		Nodes: []Node{{ID: "early"}},
		Subgraphs: []Scope{
			{Nodes: []Node{{ID: "late"}}},
		},
	}

	g, err := Build(doc)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if !strings.Contains(g.String(), "early -> late;") {
		t.Errorf("forward reference not resolved:\n%s", g.String())
	}
}

func TestRoundTripFile(t *testing.T) {
	doc := &Document{
		Name:  "rt",
		Nodes: []Node{{ID: "a", Label: "first"}, {ID: "b"}},
		Edges: []Edge{{From: "a", To: "b"}},
	}

	path := filepath.Join(t.TempDir(), "doc.json")
	if err := ExportJSON(doc, path); err != nil {
		t.Fatalf("ExportJSON() error: %v", err)
	}

	got, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error: %v", err)
	}
	if got.Name != doc.Name || len(got.Nodes) != 2 || len(got.Edges) != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.Nodes[0].Label != "first" {
		t.Errorf("node label = %q, want %q", got.Nodes[0].Label, "first")
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ImportJSON() on missing file expected error")
	}
	_ = os.Remove(path)
}
