// Package pkg provides the core libraries for dotkit DOT generation.
//
// # Overview
//
// dotkit compiles declarative graph documents into Graphviz DOT text and
// rendered diagrams. The pkg directory is organized into these areas:
//
//  1. [dot] - The DOT document model (identifiers, attributes, graphs, serialization)
//  2. [graphio] - JSON document import/export and compilation into the model
//  3. [style] - TOML style profiles applied to documents
//  4. [render] - Graphviz rendering of DOT text to SVG/PNG
//  5. [cache] - Build and artifact caching (file, Redis)
//  6. [store] - Document persistence (memory, MongoDB)
//  7. [pipeline] - Orchestration (build → render) shared by CLI and server
//
// # Architecture
//
// The typical data flow through dotkit:
//
//	JSON graph document
//	         ↓
//	    [style] package (apply profile defaults)
//	         ↓
//	    [graphio] package (compile into the dot model)
//	         ↓
//	    [dot] package (serialize to DOT text)
//	         ↓
//	    [render] package (Graphviz SVG/PNG output)
//
// # Quick Start
//
// Build a graph directly against the model:
//
//	g := dot.NewRootGraph(true, "deps")
//	app := g.AddNodeWithID("app", "app")
//	lib := g.AddNodeWithID("lib", "lib")
//	g.AddEdge(app, lib)
//	fmt.Print(g.String())
//
// Or compile a document through the pipeline:
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	dotText, err := runner.Build(ctx, doc, pipeline.Options{})
package pkg
