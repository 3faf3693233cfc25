// Package cache provides pluggable byte caches for pipeline artifacts:
// encoded DOT text and rendered images. Backends cover local CLI usage
// (file), server deployments (redis), and disabled caching (null).
package cache

import (
	"context"
	"time"
)

// Default TTLs per artifact class. DOT text is cheap to regenerate, so it
// expires sooner than rendered images.
const (
	TTLDot      = 6 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented cache with optional per-entry TTL.
// A zero TTL means the entry never expires.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer generates cache keys for pipeline artifacts. Keys are derived from
// content hashes, so identical inputs share cache entries regardless of
// where they came from.
type Keyer interface {
	// DotKey keys the encoded DOT text of a graph document by the
	// document's content hash.
	DotKey(docHash string) string

	// ArtifactKey keys a rendered artifact by the hash of its DOT source
	// and the render options.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts captures the render options that distinguish artifacts
// produced from the same DOT source.
type ArtifactKeyOpts struct {
	Format string // "svg", "png"
	Style  string // style profile name, empty for none
}

// DefaultKeyer generates hash-based keys with stable prefixes.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DotKey generates a key for encoded DOT text.
func (k *DefaultKeyer) DotKey(docHash string) string {
	return "dot:" + docHash
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts.Format, opts.Style)
}
