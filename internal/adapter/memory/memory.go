// Package memory implements an in-memory artifact store for development and testing.
package memory

import (
	"context"
	"fmt"
	"sync"

	"diabetesai/internal/domain"
)

// Store keeps artifacts in a map keyed by name.
type Store struct {
	mu        sync.RWMutex
	artifacts map[string][]byte
	reads     int
}

// New creates an empty Store.
func New() *Store {
	return &Store{artifacts: make(map[string][]byte)}
}

// Ensure interfaces are met.
var _ domain.ArtifactStore = (*Store)(nil)

// Artifact returns a copy of the named artifact.
func (s *Store) Artifact(ctx context.Context, name string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	data, ok := s.artifacts[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrArtifactNotFound)
	}
	return append([]byte(nil), data...), nil
}

// PutArtifact stores or replaces an artifact.
func (s *Store) PutArtifact(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.artifacts[name] = append([]byte(nil), data...)
	return nil
}

// Reads reports how many Artifact calls the store has served.
func (s *Store) Reads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reads
}
