// Package cache provides a small file-based TTL cache.
//
// It is used to remember slow-changing, non-API data between runs — today
// only the release update check. API responses are never cached.
// Cache files are JSON under the user cache directory. Disable with
// BIRDSONG_NO_CACHE=1.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const DefaultTTL = 24 * time.Hour

type entry struct {
	CachedAt time.Time       `json:"cached_at"`
	Value    json.RawMessage `json:"value"`
}

// Store reads and writes a single cache key.
type Store struct {
	path string
	ttl  time.Duration
}

// NewStore creates a Store for key under dir with the default TTL.
func NewStore(dir, key string) *Store {
	return NewStoreWithTTL(dir, key, DefaultTTL)
}

// NewStoreWithTTL creates a Store with a custom TTL.
func NewStoreWithTTL(dir, key string, ttl time.Duration) *Store {
	return &Store{
		path: filepath.Join(dir, sanitizeKey(key)+".json"),
		ttl:  ttl,
	}
}

// DefaultDir returns the per-user cache directory for the CLI.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "birdsong")
}

// Get loads the cached value into dst. Returns false on miss (no file,
// expired, unreadable, disabled).
func (s *Store) Get(dst any) bool {
	if disabled() || s.path == "" {
		return false
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return false
	}
	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return false
	}
	if time.Since(e.CachedAt) > s.ttl {
		return false
	}
	return json.Unmarshal(e.Value, dst) == nil
}

// Put writes the value to the cache. Silently no-ops on error or when
// disabled.
func (s *Store) Put(value any) {
	if disabled() || s.path == "" {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	data, err := json.Marshal(entry{CachedAt: time.Now(), Value: raw})
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.path, data, 0o600)
}

// Invalidate removes the cache file.
func (s *Store) Invalidate() {
	if s.path != "" {
		_ = os.Remove(s.path)
	}
}

func disabled() bool {
	return os.Getenv("BIRDSONG_NO_CACHE") == "1"
}

func sanitizeKey(key string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", " ", "_")
	key = replacer.Replace(strings.TrimSpace(key))
	if key == "" {
		key = "default"
	}
	return key
}
