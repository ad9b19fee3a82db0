package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunMarkerStoreContract runs a suite of tests to verify that a MarkerStore implementation
// adheres to the defined interface contract.
func RunMarkerStoreContract(t *testing.T, store MarkerStore) {
	ctx := context.Background()
	taxonomy := "CCN" + time.Now().Format("20060102150405")

	table := domain.EnrichedMarkers{
		"CS202002013_86":  domain.NewMarkerSet("ensembl:ENSMUSG00000039519", "ensembl:ENSMUSG00000004151"),
		"CS202002013_123": domain.MarkerSet{},
	}

	t.Run("Save and Load", func(t *testing.T) {
		err := store.Save(ctx, taxonomy, table)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, taxonomy)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, table.Rows(), loaded.Rows())

		_, ok := loaded["CS202002013_123"]
		assert.True(t, ok, "empty entries must survive a round trip")
	})

	t.Run("Save Replaces", func(t *testing.T) {
		replacement := domain.EnrichedMarkers{"CS202002013_9": domain.NewMarkerSet("m")}
		require.NoError(t, store.Save(ctx, taxonomy, replacement))

		loaded, err := store.Load(ctx, taxonomy)
		require.NoError(t, err)
		assert.Equal(t, replacement.Rows(), loaded.Rows())
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+taxonomy)
		assert.ErrorIs(t, err, domain.ErrTaxonomyNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, taxonomy, table))

		err := store.Delete(ctx, taxonomy)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, taxonomy)
		assert.ErrorIs(t, err, domain.ErrTaxonomyNotFound, "Load after Delete should return ErrTaxonomyNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := taxonomy + "-1"
		id2 := taxonomy + "-2"
		_ = store.Save(ctx, id1, table)
		_ = store.Save(ctx, id2, table)

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		taxonomies, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, taxonomies, id1)
		assert.Contains(t, taxonomies, id2)
	})
}
