package cache

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// artifactExt is the extension of stored artifact files.
const artifactExt = ".artifact"

// FileCache keeps artifacts on disk, one file per key. Files live in a
// subdirectory named after the first two hex digits of the key digest.
//
// A file holds a header line with the expiry as Unix nanoseconds (0 for
// none) followed by the raw artifact bytes, so SVG and PNG output is stored
// without re-encoding.
type FileCache struct {
	dir string
}

// NewFileCache opens the cache rooted at dir, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get reads the artifact stored under key. Expired and unreadable entries
// are removed and reported as misses.
func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	data, expires, ok := decodeArtifact(raw)
	if !ok || (!expires.IsZero() && time.Now().After(expires)) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return data, true, nil
}

// Set writes data under key. The file is written to a temporary name and
// renamed so readers never see a partial artifact.
func (c *FileCache) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, encodeArtifact(data, expires), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Delete removes the artifact under key if present.
func (c *FileCache) Delete(_ context.Context, key string) error {
	if err := os.Remove(c.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// Clear removes every entry and recreates the empty directory.
func (c *FileCache) Clear() error {
	if err := os.RemoveAll(c.dir); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0755)
}

func (c *FileCache) path(key string) string {
	digest := Hash([]byte(key))
	return filepath.Join(c.dir, digest[:2], digest[2:]+artifactExt)
}

func encodeArtifact(data []byte, expires time.Time) []byte {
	var stamp int64
	if !expires.IsZero() {
		stamp = expires.UnixNano()
	}
	buf := make([]byte, 0, len(data)+21)
	buf = strconv.AppendInt(buf, stamp, 10)
	buf = append(buf, '\n')
	return append(buf, data...)
}

func decodeArtifact(raw []byte) ([]byte, time.Time, bool) {
	header, data, found := bytes.Cut(raw, []byte{'\n'})
	if !found {
		return nil, time.Time{}, false
	}
	stamp, err := strconv.ParseInt(string(header), 10, 64)
	if err != nil || stamp < 0 {
		return nil, time.Time{}, false
	}
	if stamp == 0 {
		return data, time.Time{}, true
	}
	return data, time.Unix(0, stamp), true
}

var _ Cache = (*FileCache)(nil)
