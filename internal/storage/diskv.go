package storage

import (
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// DiskvKV is the default backend: one file per document under a base path.
type DiskvKV struct {
	d *diskv.Diskv
}

// NewDiskvKV opens (creating if needed) a diskv store rooted at basePath.
func NewDiskvKV(basePath string) (*DiskvKV, error) {
	if basePath == "" {
		return nil, errors.New("storage: base path required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure base path: %w", err)
	}
	// Flat layout: every document sits directly under the base path.
	flat := func(string) []string { return nil }
	return &DiskvKV{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flat,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

func (s *DiskvKV) Read(key string) ([]byte, error) {
	return s.d.Read(key)
}

func (s *DiskvKV) Write(key string, value []byte) error {
	return s.d.Write(key, value)
}

func (s *DiskvKV) Erase(key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}
