// Package docstore is a small JSON document store on top of a Redis hash.
// Each collection is one hash; the field is the record id and the value is
// the JSON document.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/blanklearn/marketplace-backend/internal/config"
	"github.com/blanklearn/marketplace-backend/internal/database"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

var (
	// ErrUnavailable means the store is not configured or cannot be reached.
	ErrUnavailable = errors.New("document store unavailable")
	ErrNotFound    = errors.New("document not found")
)

// Config selects the Redis instance backing the store.
type Config struct {
	URL string
}

// hashClient is the part of *redis.Client the store uses.
type hashClient interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
	HGet(ctx context.Context, key, field string) *redis.StringCmd
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
	Close() error
}

// Document is one stored record. ID is the hash field it lives under.
type Document struct {
	ID   string
	Data json.RawMessage
}

// Store reads and writes JSON documents grouped in collections.
type Store struct {
	rdb hashClient
	log zerolog.Logger
}

// Open connects to the store described by cfg. It returns ErrUnavailable
// (wrapped with the cause) when cfg is empty or the server does not answer;
// callers decide how to degrade.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (*Store, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("%w: no URL configured", ErrUnavailable)
	}

	rdb, err := database.NewRedisClient(ctx, "docstore", cfg.URL, log)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return &Store{rdb: rdb, log: log}, nil
}

// NewStore wraps an existing client.
func NewStore(rdb hashClient, log zerolog.Logger) *Store {
	return &Store{rdb: rdb, log: log}
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.rdb.Close()
}

// All returns every document of the collection ordered by id.
func (s *Store) All(ctx context.Context, collection string) ([]Document, error) {
	docs, err := s.rdb.HGetAll(ctx, config.CacheKey.DocStoreCollectionKey(collection)).Result()
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", collection, err)
	}

	ids := make([]string, 0, len(docs))
	for id := range docs {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	out := make([]Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, Document{ID: id, Data: json.RawMessage(docs[id])})
	}
	return out, nil
}

// Get returns one document by id.
func (s *Store) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	raw, err := s.rdb.HGet(ctx, config.CacheKey.DocStoreCollectionKey(collection), id).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s/%s: %w", collection, id, err)
	}
	return json.RawMessage(raw), nil
}

// Put stores doc under id, replacing any previous version.
func (s *Store) Put(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s/%s: %w", collection, id, err)
	}
	if err := s.rdb.HSet(ctx, config.CacheKey.DocStoreCollectionKey(collection), id, data).Err(); err != nil {
		return fmt.Errorf("write %s/%s: %w", collection, id, err)
	}
	return nil
}
