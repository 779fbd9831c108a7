// Package cache provides pluggable byte caches for the rendering pipeline.
//
// Three backends are available:
//   - FileCache: on-disk cache for CLI usage
//   - RedisCache: shared cache for the HTTP server
//   - NullCache: no-op cache for tests or disabled caching
//
// Cache keys are produced by a [Keyer], which hashes the inputs of each
// pipeline stage so that a change in any input (product data, media size,
// render options) invalidates the dependent entries.
package cache

import (
	"context"
	"time"
)

// Default TTLs per pipeline stage. Label documents are rebuilt on every
// preview open, so their cache window stays short; rendered artifacts are
// pure functions of their layout and can live longer.
const (
	TTLDocument = 5 * time.Minute
	TTLLayout   = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache is a byte-oriented cache with TTL support.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A TTL of 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// DocumentKeyOpts are the assembler inputs that participate in document keys.
type DocumentKeyOpts struct {
	BackendURL string `json:"backend_url"`
}

// LayoutKeyOpts are the layout inputs that participate in layout keys.
type LayoutKeyOpts struct {
	Size string `json:"size"`
}

// ArtifactKeyOpts are the render inputs that participate in artifact keys.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// DocumentKey generates a key for an assembled label document.
	DocumentKey(productID string, opts DocumentKeyOpts) string

	// LayoutKey generates a key for a computed layout, derived from the
	// content hash of the document it was built from.
	LayoutKey(documentHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, derived from the
	// content hash of the layout it was rendered from.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard key generator.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// DocumentKey generates a key for an assembled label document.
func (k *DefaultKeyer) DocumentKey(productID string, opts DocumentKeyOpts) string {
	return hashKey("doc:"+productID, opts)
}

// LayoutKey generates a key for a computed layout.
func (k *DefaultKeyer) LayoutKey(documentHash string, opts LayoutKeyOpts) string {
	return hashKey("layout:"+documentHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+layoutHash, opts)
}
