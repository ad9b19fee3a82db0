package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/markers"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.MarkerStore using Redis.
// Each table is a hash of node id to pipe-joined markers; a sorted set indexes
// the stored taxonomies by expiry.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for stored tables.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored tables.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "dendro:markers:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(taxonomy string) string {
	return s.prefix + taxonomy
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save replaces the stored table in a single transaction.
func (s *Store) Save(ctx context.Context, taxonomy string, enriched domain.EnrichedMarkers) error {
	fields := make(map[string]any, len(enriched))
	for id, set := range enriched {
		fields[string(id)] = set.String()
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, s.key(taxonomy))
	if len(fields) > 0 {
		pipe.HSet(ctx, s.key(taxonomy), fields)
		if s.ttl > 0 {
			pipe.Expire(ctx, s.key(taxonomy), s.ttl)
		}
	}

	// Score = Now + TTL. If TTL = 0, Score = +Inf (approx).
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: taxonomy,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the stored table. A taxonomy saved with no nodes is known
// only through the index.
func (s *Store) Load(ctx context.Context, taxonomy string) (domain.EnrichedMarkers, error) {
	vals, err := s.client.HGetAll(ctx, s.key(taxonomy)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	if len(vals) == 0 {
		_, err := s.client.ZScore(ctx, s.indexKey(), taxonomy).Result()
		if errors.Is(err, backend.Nil) {
			return nil, domain.ErrTaxonomyNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check redis index: %w", err)
		}
	}

	enriched := make(domain.EnrichedMarkers, len(vals))
	for id, raw := range vals {
		enriched[domain.NodeID(id)] = domain.NewMarkerSet(markers.ParseList(raw)...)
	}
	return enriched, nil
}

// Delete removes the table and its index entry.
func (s *Store) Delete(ctx context.Context, taxonomy string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(taxonomy))
	pipe.ZRem(ctx, s.indexKey(), taxonomy)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns stored taxonomies, pruning expired index entries first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())

	err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err()
	if err != nil {
		return nil, fmt.Errorf("failed to prune expired tables: %w", err)
	}

	taxonomies, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return taxonomies, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
