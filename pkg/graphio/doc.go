// Package graphio provides the declarative graph document format: a JSON
// (and BSON) description of a DOT graph that can be stored, shipped, and
// compiled into a [dot.RootGraph].
//
// # Overview
//
// The document format decouples graph content from the encoder API. It is
// designed for:
//
//   - Driving the build pipeline from files and HTTP request bodies
//   - Persisting graph descriptions in the document store
//   - Integration with external tools that produce graph data
//
// # JSON Format
//
// A document has an optional header and four entity arrays:
//
//	{
//	  "name": "deps",
//	  "directed": true,
//	  "graph": {"rankdir": "LR"},
//	  "nodes": [
//	    {"id": "app", "label": "Application"},
//	    {"id": "lib"}
//	  ],
//	  "edges": [
//	    {"from": "app", "to": "lib"}
//	  ],
//	  "clusters": [
//	    {"id": "backend", "label": "Backend", "nodes": [{"id": "db"}]}
//	  ]
//	}
//
// Node "id" values are document references: edges name their endpoints by
// them, and they also seed the identifier registry of the compiled graph.
// Attribute maps hold raw name/value pairs and are applied in sorted key
// order so compilation is deterministic.
//
// # Compilation
//
// [Build] compiles a validated document into a [dot.RootGraph]:
//
//	doc, err := graphio.ImportJSON("deps.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g, err := graphio.Build(doc)
//
// Compilation is two-pass: every node in every scope is created first, then
// edges are resolved, so an edge may reference a node declared later or in a
// different scope. Unknown endpoints and duplicate node references fail with
// an INVALID_DOCUMENT error.
//
// [dot.RootGraph]: github.com/matzehuels/dotkit/pkg/dot.RootGraph
package graphio
