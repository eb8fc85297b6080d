// Package cache is a small file cache for the rendered public payload.
// The public read path is hit far more often than content is published,
// so the serialized response is kept on disk and dropped on every publish
// or reset.
package cache

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
)

const cacheRoot = "cache"

// PathFor returns the cache file path for a named payload.
func PathFor(name string) string {
	hash := xxhash.Sum64String(name)
	return filepath.Join(cacheRoot, fmt.Sprintf("%s_%016x.json", name, hash))
}

// Write stores a payload under name.
func Write(name string, payload []byte) error {
	if err := os.MkdirAll(cacheRoot, 0755); err != nil {
		return err
	}
	return os.WriteFile(PathFor(name), payload, 0644)
}

// Read returns the cached payload if it exists and is younger than maxAge.
func Read(name string, maxAge time.Duration) ([]byte, bool) {
	path := PathFor(name)

	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > maxAge {
		return nil, false
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	return payload, true
}

// Clear removes a named payload. Missing files are not an error.
func Clear(name string) error {
	err := os.Remove(PathFor(name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// ClearAll drops the whole cache directory.
func ClearAll() error {
	return os.RemoveAll(cacheRoot)
}
