// Package pipeline provides the core document-to-artifact pipeline.
//
// This package implements the complete build → render flow that is shared
// by the CLI and the HTTP server. By centralizing this logic, both entry
// points get identical caching and validation behavior.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Build: Compile a graph document (optionally merged with a style
//     profile) into DOT text
//  2. Render: Produce output artifacts (DOT, SVG, PNG) from the DOT text
//
// Each stage can be run independently or as part of the complete pipeline,
// and each stage consults the cache before doing work.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, doc, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/render"
	"github.com/matzehuels/dotkit/pkg/style"
)

// DefaultFormat is the artifact format produced when none is requested.
const DefaultFormat = string(render.FormatDOT)

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Style is the path of a TOML style profile merged into the document
	// before building. Empty disables styling.
	Style string `json:"style,omitempty"`

	// Formats lists the output formats to render ("dot", "svg", "png").
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache and recomputes every stage.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger    `json:"-"`
	Profile *style.Profile `json:"-"` // preloaded profile, overrides Style

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// DOT is the encoded document text.
	DOT string

	// DocHash is the content hash of the input document plus style, used
	// for cache keys and API responses.
	DocHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	EdgeCount  int
	BuildTime  time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	BuildHit  bool // Whether the DOT text came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for _, f := range o.Formats {
		if _, err := render.ParseFormat(f); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// LoadProfile resolves the style profile: a preloaded Profile wins, then
// the Style path, then no styling.
func (o *Options) LoadProfile() (*style.Profile, error) {
	if o.Profile != nil {
		return o.Profile, nil
	}
	if o.Style == "" {
		return nil, nil
	}
	p, err := style.Load(o.Style)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidStyle, err, "load style %s", o.Style)
	}
	return p, nil
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	styleName := ""
	if o.Profile != nil {
		styleName = o.Profile.Name
	} else if o.Style != "" {
		styleName = o.Style
	}
	return cache.ArtifactKeyOpts{
		Format: format,
		Style:  styleName,
	}
}
