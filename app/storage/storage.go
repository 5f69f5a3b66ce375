package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store persists uploaded files and returns the public name they were
// stored under.
type Store interface {
	Save(name string, data []byte) (string, error)
}

// Local writes uploads under a single configured directory, the same way the
// served static folder works.
type Local struct {
	Dir string
}

func (s *Local) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("upload dir: %w", err)
	}
	// name is server-generated; Base guards against traversal anyway.
	name = filepath.Base(name)
	if err := os.WriteFile(filepath.Join(s.Dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return name, nil
}
