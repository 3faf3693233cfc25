package graphio

import (
	"time"

	"github.com/matzehuels/dotkit/pkg/errors"
)

// Document is a declarative graph description. The zero value is a valid
// empty directed graph. Struct tags cover both the JSON wire format and the
// BSON form used by the mongo-backed store.
type Document struct {
	// ID is assigned by the document store; it is empty for documents that
	// only live in files or request bodies.
	ID string `json:"id,omitempty" bson:"_id,omitempty"`

	// Name becomes the root graph identifier. Empty defaults to "G".
	Name string `json:"name,omitempty" bson:"name,omitempty"`

	// Directed selects the edge operator. Absent means directed.
	Directed *bool `json:"directed,omitempty" bson:"directed,omitempty"`

	// Graph holds root-level graph attributes as raw name/value pairs.
	Graph map[string]string `json:"graph,omitempty" bson:"graph,omitempty"`

	NodeDefaults map[string]string `json:"node_defaults,omitempty" bson:"node_defaults,omitempty"`
	EdgeDefaults map[string]string `json:"edge_defaults,omitempty" bson:"edge_defaults,omitempty"`

	Nodes     []Node  `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Edges     []Edge  `json:"edges,omitempty" bson:"edges,omitempty"`
	Subgraphs []Scope `json:"subgraphs,omitempty" bson:"subgraphs,omitempty"`
	Clusters  []Scope `json:"clusters,omitempty" bson:"clusters,omitempty"`

	// CreatedAt and UpdatedAt are maintained by the document store.
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty"`
}

// Node declares one node. ID is the document-level reference edges use; it
// is required and must be unique across the whole document, all scopes
// included.
type Node struct {
	ID    string            `json:"id" bson:"id"`
	Label string            `json:"label,omitempty" bson:"label,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// Edge declares one edge between two node references. The endpoints may be
// declared in any scope of the document.
type Edge struct {
	From  string            `json:"from" bson:"from"`
	To    string            `json:"to" bson:"to"`
	Label string            `json:"label,omitempty" bson:"label,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty" bson:"attrs,omitempty"`
}

// Scope declares a nested subgraph or cluster. Whether it compiles to a
// plain subgraph or a cluster depends on which Document or Scope array it
// sits in; cluster ids get the reserved "cluster" prefix at compile time.
type Scope struct {
	ID    string            `json:"id,omitempty" bson:"id,omitempty"`
	Label string            `json:"label,omitempty" bson:"label,omitempty"`
	Attrs map[string]string `json:"attrs,omitempty" bson:"attrs,omitempty"`

	NodeDefaults map[string]string `json:"node_defaults,omitempty" bson:"node_defaults,omitempty"`
	EdgeDefaults map[string]string `json:"edge_defaults,omitempty" bson:"edge_defaults,omitempty"`

	Nodes     []Node  `json:"nodes,omitempty" bson:"nodes,omitempty"`
	Edges     []Edge  `json:"edges,omitempty" bson:"edges,omitempty"`
	Subgraphs []Scope `json:"subgraphs,omitempty" bson:"subgraphs,omitempty"`
	Clusters  []Scope `json:"clusters,omitempty" bson:"clusters,omitempty"`
}

// IsDirected resolves the Directed field, defaulting to true.
func (d *Document) IsDirected() bool {
	return d.Directed == nil || *d.Directed
}

// Validate checks document-level constraints without compiling: node
// references must be present and unique, and every edge endpoint must name
// a declared node. Build runs the same checks; Validate exists for callers
// that accept documents without compiling them, such as the store API.
func (d *Document) Validate() error {
	refs := make(map[string]struct{})

	var walk func(nodes []Node, scopes ...[]Scope) error
	walk = func(nodes []Node, scopes ...[]Scope) error {
		for _, n := range nodes {
			if n.ID == "" {
				return errors.New(errors.ErrCodeInvalidDocument, "node with empty id")
			}
			if _, dup := refs[n.ID]; dup {
				return errors.New(errors.ErrCodeInvalidDocument, "duplicate node id %q", n.ID)
			}
			refs[n.ID] = struct{}{}
		}
		for _, list := range scopes {
			for _, s := range list {
				if err := walk(s.Nodes, s.Subgraphs, s.Clusters); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := walk(d.Nodes, d.Subgraphs, d.Clusters); err != nil {
		return err
	}

	var checkEdges func(edges []Edge, scopes ...[]Scope) error
	checkEdges = func(edges []Edge, scopes ...[]Scope) error {
		for _, e := range edges {
			if _, ok := refs[e.From]; !ok {
				return errors.New(errors.ErrCodeInvalidDocument, "edge references unknown node %q", e.From)
			}
			if _, ok := refs[e.To]; !ok {
				return errors.New(errors.ErrCodeInvalidDocument, "edge references unknown node %q", e.To)
			}
		}
		for _, list := range scopes {
			for _, s := range list {
				if err := checkEdges(s.Edges, s.Subgraphs, s.Clusters); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return checkEdges(d.Edges, d.Subgraphs, d.Clusters)
}
