package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graphio"
)

const darkProfile = `
name = "dark"

[graph]
bgcolor = "black"
rankdir = "LR"

[node]
shape = "box"
fontcolor = "white"

[edge]
color = "gray"

[cluster]
style = "filled"
`

func TestParse(t *testing.T) {
	p, err := Parse([]byte(darkProfile))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if p.Name != "dark" {
		t.Errorf("Name = %q, want %q", p.Name, "dark")
	}
	if p.Graph["bgcolor"] != "black" || p.Node["shape"] != "box" {
		t.Errorf("profile values wrong: %+v", p)
	}
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("[graph\nbad"))
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}
	if !errors.Is(err, errors.ErrCodeInvalidStyle) {
		t.Errorf("error code = %v, want INVALID_STYLE", errors.GetCode(err))
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dark.toml")
	if err := os.WriteFile(path, []byte(darkProfile), 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if p.Edge["color"] != "gray" {
		t.Errorf("Edge = %v", p.Edge)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load() on missing file expected error")
	}
}

func TestApplyDocumentWins(t *testing.T) {
	p, err := Parse([]byte(darkProfile))
	if err != nil {
		t.Fatal(err)
	}

	doc := &graphio.Document{
		Graph:        map[string]string{"rankdir": "TB"}, // explicit, must survive
		NodeDefaults: map[string]string{"fontcolor": "red"},
		Clusters: []graphio.Scope{
			{ID: "backend"},
			{ID: "frontend", Attrs: map[string]string{"style": "dashed"}},
		},
	}
	p.Apply(doc)

	if doc.Graph["rankdir"] != "TB" {
		t.Errorf("document value overwritten: rankdir = %q", doc.Graph["rankdir"])
	}
	if doc.Graph["bgcolor"] != "black" {
		t.Errorf("profile default not merged: bgcolor = %q", doc.Graph["bgcolor"])
	}
	if doc.NodeDefaults["fontcolor"] != "red" || doc.NodeDefaults["shape"] != "box" {
		t.Errorf("node defaults merged wrong: %v", doc.NodeDefaults)
	}
	if doc.EdgeDefaults["color"] != "gray" {
		t.Errorf("edge defaults merged wrong: %v", doc.EdgeDefaults)
	}
	if doc.Clusters[0].Attrs["style"] != "filled" {
		t.Errorf("cluster defaults not applied: %v", doc.Clusters[0].Attrs)
	}
	if doc.Clusters[1].Attrs["style"] != "dashed" {
		t.Errorf("explicit cluster attr overwritten: %v", doc.Clusters[1].Attrs)
	}
}

func TestApplyNestedClusters(t *testing.T) {
	p := &Profile{Cluster: map[string]string{"style": "filled"}}
	doc := &graphio.Document{
		Subgraphs: []graphio.Scope{
			{Clusters: []graphio.Scope{{ID: "deep"}}},
		},
	}
	p.Apply(doc)

	if doc.Subgraphs[0].Clusters[0].Attrs["style"] != "filled" {
		t.Error("cluster below a plain subgraph not styled")
	}
	if doc.Subgraphs[0].Attrs != nil {
		t.Errorf("plain subgraph should not receive cluster styling: %v", doc.Subgraphs[0].Attrs)
	}
}
