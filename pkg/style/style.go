// Package style loads TOML style profiles and applies them to graph
// documents as attribute defaults.
//
// A profile supplies raw attribute name/value pairs per entity class:
//
//	name = "dark"
//
//	[graph]
//	bgcolor = "black"
//	rankdir = "LR"
//
//	[node]
//	shape = "box"
//	fontcolor = "white"
//
//	[edge]
//	color = "gray"
//
//	[cluster]
//	style = "filled"
//
// Profiles are defaults, not overrides: a value already present in the
// document always wins over the profile value.
package style

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graphio"
)

// Profile is one named set of attribute defaults.
type Profile struct {
	Name    string            `toml:"name"`
	Graph   map[string]string `toml:"graph"`
	Node    map[string]string `toml:"node"`
	Edge    map[string]string `toml:"edge"`
	Cluster map[string]string `toml:"cluster"`
}

// Parse decodes a TOML profile.
func Parse(data []byte) (*Profile, error) {
	var p Profile
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse style profile")
	}
	return &p, nil
}

// Load reads and decodes a TOML profile from a file at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "read style profile %s", path)
	}
	return Parse(data)
}

// Apply merges the profile into a graph document. Graph attributes merge
// into the document's graph map, node and edge attributes into the root
// default statements, and cluster attributes into every cluster scope,
// recursively. Document values take precedence over profile values.
func (p *Profile) Apply(doc *graphio.Document) {
	doc.Graph = merge(doc.Graph, p.Graph)
	doc.NodeDefaults = merge(doc.NodeDefaults, p.Node)
	doc.EdgeDefaults = merge(doc.EdgeDefaults, p.Edge)

	// Plain subgraphs carry no cluster styling, but clusters nested below
	// them still do.
	var applyClusters func(clusters []graphio.Scope)
	var visitSubgraphs func(subgraphs []graphio.Scope)
	applyClusters = func(clusters []graphio.Scope) {
		for i := range clusters {
			clusters[i].Attrs = merge(clusters[i].Attrs, p.Cluster)
			applyClusters(clusters[i].Clusters)
			visitSubgraphs(clusters[i].Subgraphs)
		}
	}
	visitSubgraphs = func(subgraphs []graphio.Scope) {
		for i := range subgraphs {
			applyClusters(subgraphs[i].Clusters)
			visitSubgraphs(subgraphs[i].Subgraphs)
		}
	}
	applyClusters(doc.Clusters)
	visitSubgraphs(doc.Subgraphs)
}

func merge(doc, profile map[string]string) map[string]string {
	if len(profile) == 0 {
		return doc
	}
	if doc == nil {
		doc = make(map[string]string, len(profile))
	}
	for k, v := range profile {
		if _, set := doc[k]; !set {
			doc[k] = v
		}
	}
	return doc
}
