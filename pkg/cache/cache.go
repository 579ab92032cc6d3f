// Package cache stores rendered diagram artifacts.
//
// Rendering SVG through Graphviz is the only expensive operation in xrpg, so
// SVG output is cached by a hash of the DOT source it was rendered from. The
// same world always produces the same DOT text, which makes the hash a
// stable key.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under the XDG cache directory
//   - [RedisCache]: shared cache for several diagram servers
//   - [NullCache]: disables caching
package cache

import (
	"context"
	"time"

	"github.com/matzehuels/xrpg/pkg/observability"
)

// DefaultTTL is how long rendered artifacts stay cached.
const DefaultTTL = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the cached value and whether it was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// GetOrCompute returns the cached value for key, or calls compute, stores the
// result with ttl and returns it. The reported bool is true on a cache hit.
//
// A failing cache read is treated as a miss and a failing write is ignored:
// the cache only ever saves work, it never blocks a render.
func GetOrCompute(ctx context.Context, c Cache, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, bool, error) {
	hooks := observability.Cache()
	keyType := keyTypeOf(key)

	if data, hit, err := c.Get(ctx, key); err == nil && hit {
		hooks.OnCacheHit(ctx, keyType)
		return data, true, nil
	}
	hooks.OnCacheMiss(ctx, keyType)

	data, err := compute()
	if err != nil {
		return nil, false, err
	}
	if err := c.Set(ctx, key, data, ttl); err == nil {
		hooks.OnCacheSet(ctx, keyType, len(data))
	}
	return data, false, nil
}
