package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/dendro/pkg/domain"
)

// Store implements ports.MarkerStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]domain.EnrichedMarkers
	mu   sync.RWMutex
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{
		data: make(map[string]domain.EnrichedMarkers),
	}
}

// Save stores a copy of the table.
func (s *Store) Save(ctx context.Context, taxonomy string, enriched domain.EnrichedMarkers) error {
	copied := enriched.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[taxonomy] = copied
	return nil
}

// Load returns a copy so callers cannot mutate the stored table.
func (s *Store) Load(ctx context.Context, taxonomy string) (domain.EnrichedMarkers, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	enriched, ok := s.data[taxonomy]
	if !ok {
		return nil, domain.ErrTaxonomyNotFound
	}
	return enriched.Clone(), nil
}

// Delete removes the table.
func (s *Store) Delete(ctx context.Context, taxonomy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, taxonomy)
	return nil
}

// List returns the stored taxonomies, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	taxonomies := make([]string, 0, len(s.data))
	for id := range s.data {
		taxonomies = append(taxonomies, id)
	}
	sort.Strings(taxonomies)
	return taxonomies, nil
}
