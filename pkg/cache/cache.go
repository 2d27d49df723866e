// Package cache stores rendered documents between runs.
//
// A [Cache] is a plain byte store with per-entry TTL. Keys come from a
// [Keyer] so that every backend agrees on how a scene and its render options
// map to an entry. Three backends are provided: [FileCache] for the CLI,
// [RedisCache] for the server and [NullCache] when caching is disabled.
package cache

import (
	"context"
	"time"
)

// Cache is a key/value store for rendered artifacts.
//
// Get reports a miss with found == false and a nil error; errors are reserved
// for backend failures. Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DocumentKeyOpts are the options that change a document artifact.
// Unvalidated artifacts are keyed apart so a run that skipped validation
// never serves one that requires it.
type DocumentKeyOpts struct {
	Format      string `json:"format"`
	Indent      int    `json:"indent"`
	Detailed    bool   `json:"detailed,omitempty"`
	Unvalidated bool   `json:"unvalidated,omitempty"`
}

// Keyer derives cache keys.
type Keyer interface {
	// DocumentKey returns the key of the document rendered from the scene
	// whose content hash is sceneHash.
	DocumentKey(sceneHash string, opts DocumentKeyOpts) string
}

// DefaultKeyer produces keys of the form "doc:<sha256>".
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// DocumentKey hashes the scene hash together with the options.
func (DefaultKeyer) DocumentKey(sceneHash string, opts DocumentKeyOpts) string {
	return hashKey("doc", sceneHash, opts)
}

var _ Keyer = DefaultKeyer{}
