package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dotkit/pkg/cache"
	"github.com/matzehuels/dotkit/pkg/errors"
	"github.com/matzehuels/dotkit/pkg/graphio"
	"github.com/matzehuels/dotkit/pkg/observability"
	"github.com/matzehuels/dotkit/pkg/render"
	"github.com/matzehuels/dotkit/pkg/style"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete build → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, doc *graphio.Document, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}
	r.applyLogger(&opts)

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Build
	buildStart := time.Now()
	observability.Pipeline().OnBuildStart(ctx, doc.Name)
	dot, docHash, buildHit, err := r.BuildWithCacheInfo(ctx, doc, opts)
	observability.Pipeline().OnBuildComplete(ctx, doc.Name, countNodes(doc), time.Since(buildStart), err)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "build")
	}
	result.DOT = dot
	result.DocHash = docHash
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.NodeCount = countNodes(doc)
	result.Stats.EdgeCount = countEdges(doc)
	result.CacheInfo.BuildHit = buildHit

	r.Logger.Info("built document",
		"nodes", result.Stats.NodeCount,
		"edges", result.Stats.EdgeCount,
		"cached", buildHit,
		"duration", result.Stats.BuildTime)

	// Stage 2: Render
	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, dot, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(renderStart), err)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "render")
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// BuildWithCacheInfo compiles the document to DOT text with caching and
// returns the document content hash alongside cache hit info. The hash
// covers the document and the applied style, so restyled documents never
// share cache entries.
func (r *Runner) BuildWithCacheInfo(ctx context.Context, doc *graphio.Document, opts Options) (string, string, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return "", "", false, err
	}
	r.applyLogger(&opts)

	profile, err := opts.LoadProfile()
	if err != nil {
		return "", "", false, err
	}

	docHash, err := hashDocument(doc, profile)
	if err != nil {
		return "", "", false, err
	}
	cacheKey := r.Keyer.DotKey(docHash)

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "dot")
			return string(data), docHash, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "dot")
	}

	// Apply style and compile. Styling works on a deep copy so the
	// caller's document (possibly a stored one) is never mutated.
	styled := doc
	if profile != nil {
		clone, err := cloneDocument(doc)
		if err != nil {
			return "", "", false, err
		}
		profile.Apply(clone)
		styled = clone
	}
	g, err := graphio.Build(styled)
	if err != nil {
		return "", "", false, err
	}
	dot := g.String()

	_ = r.Cache.Set(ctx, cacheKey, []byte(dot), cache.TTLDot)
	observability.Cache().OnCacheSet(ctx, "dot", len(dot))

	return dot, docHash, false, nil
}

// Build is a convenience wrapper that discards the cache hit info.
func (r *Runner) Build(ctx context.Context, doc *graphio.Document, opts Options) (string, error) {
	dot, _, _, err := r.BuildWithCacheInfo(ctx, doc, opts)
	return dot, err
}

// RenderWithCacheInfo renders artifacts from DOT text with caching and
// returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, dot string, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	dotHash := cache.Hash([]byte(dot))

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(dotHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	rendered := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := render.Render(ctx, dot, render.Format(format))
		if err != nil {
			return nil, false, err
		}
		rendered[format] = data
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(dotHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, dot string, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, dot, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// hashDocument computes the content hash covering the document and the
// style profile applied to it.
func hashDocument(doc *graphio.Document, profile *style.Profile) (string, error) {
	payload := struct {
		Doc     *graphio.Document `json:"doc"`
		Profile *style.Profile    `json:"profile,omitempty"`
	}{doc, profile}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "hash document")
	}
	return cache.Hash(data), nil
}

func cloneDocument(doc *graphio.Document) (*graphio.Document, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "clone document")
	}
	var clone graphio.Document
	if err := json.Unmarshal(data, &clone); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "clone document")
	}
	return &clone, nil
}

func countNodes(doc *graphio.Document) int {
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

func countEdges(doc *graphio.Document) int {
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
