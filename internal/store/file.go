package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileKV persists one JSON-encoded value per key as a file in a data
// directory. It is safe for concurrent use within one process; across
// processes the last writer wins.
type FileKV struct {
	mu      sync.RWMutex
	dataDir string
	// written records the mtime of our own writes so Watch can tell
	// externally modified keys apart from keys this process changed.
	written map[string]time.Time
}

// NewFileKV creates the data directory if needed and returns a store over it.
func NewFileKV(dataDir string) (*FileKV, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, &Error{Op: "open", Err: err}
	}
	return &FileKV{
		dataDir: dataDir,
		written: make(map[string]time.Time),
	}, nil
}

func (kv *FileKV) filePath(key string) string {
	return filepath.Join(kv.dataDir, key+".json")
}

// Get returns the stored value for key.
func (kv *FileKV) Get(key string) ([]byte, bool, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	data, err := os.ReadFile(kv.filePath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, &Error{Op: "get", Key: key, Err: err}
	}
	return data, true, nil
}

// Set overwrites the value for key in a single file write.
func (kv *FileKV) Set(key string, value []byte) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	path := kv.filePath(key)
	if err := os.WriteFile(path, value, 0o644); err != nil {
		return &Error{Op: "set", Key: key, Err: err}
	}
	if info, err := os.Stat(path); err == nil {
		kv.written[key] = info.ModTime()
	}
	return nil
}

// Delete removes the key's file if present.
func (kv *FileKV) Delete(key string) error {
	kv.mu.Lock()
	defer kv.mu.Unlock()

	if err := os.Remove(kv.filePath(key)); err != nil && !os.IsNotExist(err) {
		return &Error{Op: "delete", Key: key, Err: err}
	}
	delete(kv.written, key)
	return nil
}

// Keys lists all stored keys.
func (kv *FileKV) Keys() ([]string, error) {
	kv.mu.RLock()
	defer kv.mu.RUnlock()

	entries, err := os.ReadDir(kv.dataDir)
	if err != nil {
		return nil, &Error{Op: "keys", Err: err}
	}
	var keys []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, ".json"))
	}
	return keys, nil
}

// Close is a no-op; files are closed after every operation.
func (kv *FileKV) Close() error {
	return nil
}

// Watch polls the data directory and reports keys modified by another
// process, the file-backed equivalent of the browser's cross-tab storage
// event. Keys written through this FileKV are not reported. Watch blocks
// until ctx is canceled.
func (kv *FileKV) Watch(ctx context.Context, interval time.Duration, onChange func(key string)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	seen := kv.snapshot()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			current := kv.snapshot()
			for key, mtime := range current {
				if prev, ok := seen[key]; ok && prev.Equal(mtime) {
					continue
				}
				if kv.selfWrite(key, mtime) {
					continue
				}
				onChange(key)
			}
			seen = current
		}
	}
}

func (kv *FileKV) snapshot() map[string]time.Time {
	snap := make(map[string]time.Time)
	keys, err := kv.Keys()
	if err != nil {
		return snap
	}
	for _, key := range keys {
		if info, err := os.Stat(kv.filePath(key)); err == nil {
			snap[key] = info.ModTime()
		}
	}
	return snap
}

func (kv *FileKV) selfWrite(key string, mtime time.Time) bool {
	kv.mu.RLock()
	defer kv.mu.RUnlock()
	written, ok := kv.written[key]
	return ok && written.Equal(mtime)
}
