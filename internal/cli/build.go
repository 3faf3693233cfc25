package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotkit/pkg/graphio"
	"github.com/matzehuels/dotkit/pkg/pipeline"
	"github.com/matzehuels/dotkit/pkg/render"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output  string // output file path, "-" for stdout
	style   string // style profile TOML path
	noCache bool   // disable the build cache
	refresh bool   // recompute even when cached
}

// buildCommand creates the build command, which compiles a graph document
// to DOT text without invoking Graphviz.
func (c *CLI) buildCommand() *cobra.Command {
	var opts buildOpts

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Compile a graph document to DOT text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBuild(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with .dot, '-' for stdout)")
	cmd.Flags().StringVarP(&opts.style, "style", "s", "", "style profile TOML file")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the build cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when a cached result exists")

	return cmd
}

func (c *CLI) runBuild(cmd *cobra.Command, input string, opts *buildOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	doc, err := graphio.ImportJSON(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	dot, _, cached, err := runner.BuildWithCacheInfo(ctx, doc, pipeline.Options{
		Style:   opts.style,
		Formats: []string{string(render.FormatDOT)},
		Refresh: opts.refresh,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compiled %s", input))

	if opts.output == "-" {
		fmt.Print(dot)
		return nil
	}

	path := opts.output
	if path == "" {
		path = outputBase("", input) + ".dot"
	}
	if err := os.WriteFile(path, []byte(dot), 0o644); err != nil {
		return err
	}

	printSuccess("Built %s", path)
	printStats(countDocNodes(doc), countDocEdges(doc), cached)
	printNextStep("Render it", fmt.Sprintf("%s render %s -f svg", appName, input))
	return nil
}

func countDocNodes(doc *graphio.Document) int {
	n := len(doc.Nodes)
	var walk func(scopes []graphio.Scope)
	walk = func(scopes []graphio.Scope) {
		for _, s := range scopes {
			n += len(s.Nodes)
			walk(s.Subgraphs)
			walk(s.Clusters)
		}
	}
	walk(doc.Subgraphs)
	walk(doc.Clusters)
	return n
}

func countDocEdges(doc *graphio.Document) int {
	n := len(doc.Edges)
	var walk func(scopes []graphio.Scope)
	walk = func(scopes []graphio.Scope) {
		for _, s := range scopes {
			n += len(s.Edges)
			walk(s.Subgraphs)
			walk(s.Clusters)
		}
	}
	walk(doc.Subgraphs)
	walk(doc.Clusters)
	return n
}
