// Package redisstore reads model artifacts from Redis string keys.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"diabetesai/internal/domain"
)

// DefaultKeyPrefix namespaces artifact keys.
const DefaultKeyPrefix = "artifact:"

// Store implements domain.ArtifactStore over a Redis client.
type Store struct {
	client redis.Cmdable
	prefix string
}

var _ domain.ArtifactStore = (*Store)(nil)

// New creates a Store that owns a new client for addr.
func New(addr, password string, db int, prefix string) *Store {
	return NewWithClient(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}), prefix)
}

// NewWithClient wraps an existing client.
func NewWithClient(client redis.Cmdable, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Key returns the Redis key holding the named artifact.
func (s *Store) Key(name string) string {
	return s.prefix + name
}

// Artifact returns the named artifact.
func (s *Store) Artifact(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.Key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%s: %w", name, domain.ErrArtifactNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artifact from Redis: %w", err)
	}
	return data, nil
}

// PutArtifact stores the named artifact without expiry.
func (s *Store) PutArtifact(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, s.Key(name), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save artifact to Redis: %w", err)
	}
	return nil
}

// CheckConnection pings the server.
func (s *Store) CheckConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.client.Ping(ctx).Err()
}

// Close closes the client when the store owns it.
func (s *Store) Close() error {
	if c, ok := s.client.(*redis.Client); ok {
		return c.Close()
	}
	return nil
}
