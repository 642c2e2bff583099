// Package fs stores slots as files under a root directory, one file per
// key. This is the default backend.
package fs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/suraksha-dev/suraksha/internal/storage"
)

type Backend struct {
	rootPath string
}

// Ensure Backend implements the interface at compile time.
var _ storage.Backend = (*Backend)(nil)

func New(rootPath string) (*Backend, error) {
	// filepath.Clean prevents path traversal like "store/../"
	p := filepath.Clean(rootPath)

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", p, err)
	}

	return &Backend{rootPath: p}, nil
}

func (b *Backend) path(key string) string {
	// Keys are store-internal constants, but clean anyway.
	return filepath.Join(b.rootPath, filepath.Clean(key)+".json")
}

func (b *Backend) Load(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read slot %s: %w", key, err)
	}
	return data, true, nil
}

// Save writes through a temp file and renames so a crash mid-write
// never leaves a truncated slot.
func (b *Backend) Save(key string, data []byte) error {
	target := b.path(key)
	tmp := target + ".tmp"

	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		os.Remove(tmp) // Best effort, ignore error here.
		return fmt.Errorf("failed to replace slot %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Delete(key string) error {
	err := os.Remove(b.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
