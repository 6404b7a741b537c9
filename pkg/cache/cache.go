// Package cache stores computed layouts keyed by a content hash of their
// inputs.
//
// Three backends implement [Cache]:
//
//   - [FileCache]: one JSON file per entry under the user cache directory,
//     used by the CLI
//   - [RedisCache]: a shared Redis instance, used by the HTTP server
//   - [NullCache]: never stores anything
//
// Keys come from a [Keyer]. The default keyer hashes the graph together with
// every option that affects placement, so a cached entry is only ever reused
// for byte-identical output.
package cache

import (
	"context"
	"os"
	"path/filepath"
	"time"
)

// TTLLayout is how long a computed layout stays cached.
const TTLLayout = 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A zero ttl in Set means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultDir returns the directory the file cache uses when none is
// configured: $XDG_CACHE_HOME/linkchart, falling back to the OS cache
// directory and finally the temp directory.
func DefaultDir() string {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, "linkchart")
	}
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "linkchart")
	}
	return filepath.Join(os.TempDir(), "linkchart-cache")
}
