// Package cache stores rendered diagram artifacts between runs.
//
// Rendering a view to SVG goes through Graphviz and is by far the slowest
// step of the pipeline. The DOT source fully determines the output, so the
// pipeline keys rendered artifacts by a hash of the DOT text and skips
// Graphviz when nothing changed.
//
// # Backends
//
//   - [FileCache]: one JSON file per entry below a directory, for CLI use
//   - [NullCache]: stores nothing, for tests and --no-cache runs
//
// # Keys
//
// Keys are built by a [Keyer] so that every caller agrees on the layout:
//
//	k := cache.NewDefaultKeyer()
//	key := k.ArtifactKey(cache.Hash([]byte(dot)), cache.ArtifactKeyOpts{Format: "svg"})
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store with optional expiry.
type Cache interface {
	// Get returns the stored data and true, or nil and false on a miss.
	// Expired and unreadable entries count as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey returns the key of an artifact rendered from the DOT
	// source with hash dotHash.
	ArtifactKey(dotHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render settings that change an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// DefaultKeyer hashes every key component into a fixed-length key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(dotHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dotHash, opts)
}
