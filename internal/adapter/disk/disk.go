// Package disk reads model artifacts from a directory.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"diabetesai/internal/domain"
)

// Store serves artifacts from files under Dir.
type Store struct {
	Dir string
}

// New creates a Store rooted at dir.
func New(dir string) *Store {
	return &Store{Dir: dir}
}

var _ domain.ArtifactStore = (*Store)(nil)

// Artifact reads the named file. Names may not escape Dir.
func (s *Store) Artifact(ctx context.Context, name string) ([]byte, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("artifact name %q is not a local path", name)
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrArtifactNotFound)
	}
	return data, err
}
