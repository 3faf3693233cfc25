package pipeline

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graphio"
	"github.com/matzehuels/dotkit/pkg/style"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func testDoc() *graphio.Document {
	return &graphio.Document{
		Name:  "deps",
		Nodes: []graphio.Node{{ID: "app"}, {ID: "lib"}},
		Edges: []graphio.Edge{{From: "app", To: "lib"}},
	}
}

func TestOptionsDefaults(t *testing.T) {
	var opts Options
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != "dot" {
		t.Errorf("Formats = %v, want [dot]", opts.Formats)
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	// Idempotent
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Errorf("second call error: %v", err)
	}
}

func TestOptionsRejectsBadFormat(t *testing.T) {
	opts := Options{Formats: []string{"dot", "gif"}}
	err := opts.ValidateAndSetDefaults()
	if err == nil {
		t.Fatal("expected error for bad format")
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want UNSUPPORTED", errors.GetCode(err))
	}
}

func TestRunnerBuild(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, testLogger())
	defer r.Close()

	dot, err := r.Build(ctx, testDoc(), Options{Formats: []string{"dot"}})
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	for _, want := range []string{"digraph deps {", "app;", "lib;", "app -> lib;"} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestRunnerExecuteDOT(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, testLogger())
	defer r.Close()

	opts := Options{Formats: []string{"dot"}}
	result, err := r.Execute(ctx, testDoc(), opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if result.DocHash == "" {
		t.Error("DocHash should be set")
	}
	if result.Stats.NodeCount != 2 || result.Stats.EdgeCount != 1 {
		t.Errorf("stats = %+v", result.Stats)
	}
	if string(result.Artifacts["dot"]) != result.DOT {
		t.Error("dot artifact should match the built text")
	}
	if result.CacheInfo.BuildHit || result.CacheInfo.RenderHit {
		t.Error("first run should not hit the cache")
	}

	// Second run hits both stages.
	again, err := r.Execute(ctx, testDoc(), Options{Formats: []string{"dot"}})
	if err != nil {
		t.Fatalf("Execute() second run error: %v", err)
	}
	if !again.CacheInfo.BuildHit || !again.CacheInfo.RenderHit {
		t.Errorf("second run should hit the cache: %+v", again.CacheInfo)
	}
	if again.DOT != result.DOT {
		t.Error("cached DOT differs from built DOT")
	}

	// Refresh bypasses the cache.
	fresh, err := r.Execute(ctx, testDoc(), Options{Formats: []string{"dot"}, Refresh: true})
	if err != nil {
		t.Fatalf("Execute() refresh error: %v", err)
	}
	if fresh.CacheInfo.BuildHit || fresh.CacheInfo.RenderHit {
		t.Error("refresh run should not hit the cache")
	}
}

func TestRunnerStyleChangesHash(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, testLogger())

	_, plainHash, _, err := r.BuildWithCacheInfo(ctx, testDoc(), Options{})
	if err != nil {
		t.Fatalf("BuildWithCacheInfo() error: %v", err)
	}

	profile := &style.Profile{Name: "dark", Node: map[string]string{"shape": "box"}}
	styledDot, styledHash, _, err := r.BuildWithCacheInfo(ctx, testDoc(), Options{Profile: profile})
	if err != nil {
		t.Fatalf("BuildWithCacheInfo() styled error: %v", err)
	}
	if plainHash == styledHash {
		t.Error("style profile should change the document hash")
	}
	if !strings.Contains(styledDot, `node [shape="box"];`) {
		t.Errorf("profile not applied:\n%s", styledDot)
	}
}

func TestRunnerDoesNotMutateDocument(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, testLogger())

	doc := testDoc()
	profile := &style.Profile{Node: map[string]string{"shape": "box"}}
	if _, err := r.Build(ctx, doc, Options{Profile: profile}); err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if doc.NodeDefaults != nil {
		t.Errorf("styling mutated the caller's document: %v", doc.NodeDefaults)
	}
}

func TestRunnerInvalidDocument(t *testing.T) {
	ctx := context.Background()
	r := NewRunner(nil, nil, testLogger())

	bad := &graphio.Document{Nodes: []graphio.Node{{ID: "a"}, {ID: "a"}}}
	if _, err := r.Execute(ctx, bad, Options{}); !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("error = %v, want INVALID_DOCUMENT", err)
	}
}
