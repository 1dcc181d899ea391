// Package filestore stores uploaded images on local disk.
package filestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store writes uploaded files into a directory.
//
// Files are named <millisecond-timestamp>.<original-extension>, so two uploads
// finishing within the same millisecond collide and the later one wins.
type Store struct {
	dir string
}

// New creates new instance of Store and makes sure the directory exists.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Save writes r into the store and returns the path of the written file.
func (s *Store) Save(originalName string, r io.Reader) (string, error) {
	ts := time.Now().UnixNano() / int64(time.Millisecond)

	// everything after the last dot, the whole name when there is no dot
	parts := strings.Split(originalName, ".")
	ext := parts[len(parts)-1]

	path := filepath.Join(s.dir, fmt.Sprintf("%d.%s", ts, ext))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return path, nil
}
