package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Store holds uploaded binaries on the local filesystem under generated
// names. Names are always reduced to their base component, so a stored
// file can never escape the directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	if dir == "" {
		dir = "./uploads"
	}
	return &Store{dir: dir}
}

// Save writes src to disk under name, creating the directory on first use.
// Returns the number of bytes written.
func (s *Store) Save(name string, src io.Reader) (int64, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create upload directory: %w", err)
	}

	path := filepath.Join(s.dir, filepath.Base(name))
	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(path)
		return 0, fmt.Errorf("failed to write file: %w", err)
	}
	return n, nil
}

// Resolve returns the on-disk path for a stored name, or ErrFileNotFound
// if no such file exists.
func (s *Store) Resolve(name string) (string, error) {
	path := filepath.Join(s.dir, filepath.Base(name))
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrFileNotFound
	}
	return path, nil
}

// Remove deletes a stored file. Missing files are not an error — the file
// may already be gone.
func (s *Store) Remove(name string) {
	_ = os.Remove(filepath.Join(s.dir, filepath.Base(name)))
}
