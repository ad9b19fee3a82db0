package memory_test

import (
	"context"
	"testing"

	"github.com/aretw0/dendro/internal/adapters/memory"
	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.New()
	ports.RunMarkerStoreContract(t, store)
}

func TestMemoryStore_Isolation(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	table := domain.EnrichedMarkers{"n": domain.NewMarkerSet("a")}
	require.NoError(t, store.Save(ctx, "tax", table))

	table["n"][0] = "mutated"
	loaded, err := store.Load(ctx, "tax")
	require.NoError(t, err)
	assert.Equal(t, domain.NewMarkerSet("a"), loaded["n"])

	loaded["other"] = nil
	again, err := store.Load(ctx, "tax")
	require.NoError(t, err)
	assert.Len(t, again, 1)
}
