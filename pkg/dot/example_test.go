package dot_test

import (
	"fmt"

	"github.com/matzehuels/dotkit/pkg/dot"
)

func Example_basic() {
	// Build a small dependency graph and print the DOT document.
	g := dot.NewRootGraph(true, "deps")
	g.Attributes().SetRankDir(dot.RankDirLR)

	app := g.AddNode("app")
	lib := g.AddNode("lib")
	g.AddEdge(app, lib)

	fmt.Print(g.String())
	// Output:
	// digraph deps {
	//   graph [rankdir="LR"];
	//   Node0 [label="app"];
	//   Node1 [label="lib"];
	//   Node0 -> Node1;
	// }
}

func Example_cluster() {
	// Clusters are subgraphs whose id carries the reserved prefix; layout
	// engines draw them with a bounding box.
	g := dot.NewRootGraph(true, "services")
	c := g.AddCluster("Backend")
	api := c.AddNode("api")
	db := c.AddNode("db")
	c.AddEdge(api, db)

	fmt.Print(g.String())
	// Output:
	// digraph services {
	//   subgraph cluster_0 {
	//     graph [label="Backend"];
	//     Node0 [label="api"];
	//     Node1 [label="db"];
	//     Node0 -> Node1;
	//   }
	// }
}
