package ports

import (
	"context"

	"github.com/aretw0/dendro/pkg/domain"
)

// MarkerStore defines the interface for persisting enriched marker tables.
type MarkerStore interface {
	// Save replaces the table stored for taxonomy.
	Save(ctx context.Context, taxonomy string, enriched domain.EnrichedMarkers) error

	// Load retrieves the table stored for taxonomy.
	// Returns domain.ErrTaxonomyNotFound if nothing is stored.
	Load(ctx context.Context, taxonomy string) (domain.EnrichedMarkers, error)

	// Delete removes the table stored for taxonomy.
	Delete(ctx context.Context, taxonomy string) error

	// List returns the taxonomies with a stored table.
	List(ctx context.Context) ([]string, error)
}
