// Package dot builds in-memory graph documents and encodes them in the
// Graphviz DOT language.
//
// This package is a producer only: it writes DOT for consumption by layout
// tools (dot, neato, sfdp, or the in-process renderer in pkg/render) and
// never parses DOT back.
//
// # Architecture
//
// A document is a tree of scopes rooted at a [RootGraph]:
//
//   - [RootGraph]: the document root; owns the [IDManager] and the
//     graph-level attribute set
//   - [Subgraph], [Cluster]: nested scopes created through their parent
//   - [Node], [Edge]: leaf entities with their own attribute sets
//
// Every identifier in a document (node, subgraph, or cluster, hand-picked or
// generated) lives in one shared namespace managed by the root's IDManager,
// so a user-supplied node id can never collide with a generated cluster id.
//
// # Usage
//
// Build a document through factory methods and write it out:
//
//	g := dot.NewRootGraph(true, "deps")
//	a := g.AddNode("")
//	b := g.AddNode("lib-a")
//	g.AddEdge(a, b)
//	err := g.WriteFile("deps.dot")
//
// Attributes are set through typed catalogues that mirror the Graphviz
// attribute reference:
//
//	b.Attributes().SetShape(dot.ShapeBox)
//	g.NodeDefaults().SetFontName("Helvetica")
//	g.Attributes().SetRankDir(dot.RankDirLR)
//
// Unrecognized attribute names go through the custom path:
//
//	b.Attributes().SetCustom("weightclass", "heavy")
//
// # Output ordering
//
// Within a scope the encoder always writes default node/edge attribute
// statements before node and edge statements. DOT applies `node [...]` and
// `edge [...]` as standing defaults only to statements after them, so this
// ordering is a correctness requirement, not a formatting choice.
//
// # Concurrency
//
// A document is single-threaded: scopes share the root's IDManager, so
// concurrent mutation of one document requires external synchronization.
// Distinct documents are fully independent.
package dot
