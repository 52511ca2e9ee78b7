// Package cache stores rendered chart artifacts.
//
// Rendering a chart file at a given offset, viewport and transform progress
// is deterministic, so the result can be reused. The CLI keeps artifacts in
// a [FileCache] under the user cache directory; the server can share a
// [RedisCache] between instances. [NullCache] disables caching.
//
// Keys are built by a [Keyer] from the hash of the chart file and the
// render options, so editing the file or changing any option produces a
// new key.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts are kept.
const TTLArtifact = 24 * time.Hour

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Missing keys are not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// ArtifactKeyOpts are the render options that affect an artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"w"`
	Height   float64 `json:"h"`
	Progress float64 `json:"progress"`
}

// Keyer builds cache keys.
type Keyer interface {
	ArtifactKey(chartHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<sha256 of chart hash and options>".
func (DefaultKeyer) ArtifactKey(chartHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", chartHash, opts)
}
