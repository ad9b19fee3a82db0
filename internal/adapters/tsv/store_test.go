package tsv_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/aretw0/dendro/internal/adapters/tsv"
	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	ports.RunMarkerStoreContract(t, tsv.New(t.TempDir()))
}

func TestWrite(t *testing.T) {
	enriched := domain.EnrichedMarkers{
		"n2": domain.NewMarkerSet("b", "a"),
		"n1": domain.MarkerSet{},
	}

	var buf bytes.Buffer
	require.NoError(t, tsv.Write(&buf, enriched))
	assert.Equal(t, "Taxonomy_node_ID\tMarkers\nn1\t\nn2\ta|b\n", buf.String())

	back, err := tsv.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, enriched.Rows(), back.Rows())
}

func TestWrite_QuotedIDsRoundTrip(t *testing.T) {
	enriched := domain.EnrichedMarkers{
		`"n1`: domain.NewMarkerSet(`"q`),
		"n2":  domain.NewMarkerSet("a", "b"),
		"n3":  domain.MarkerSet{},
	}

	var buf bytes.Buffer
	require.NoError(t, tsv.Write(&buf, enriched))

	back, err := tsv.Read(&buf)
	require.NoError(t, err)
	require.Len(t, back, 3)
	assert.Equal(t, enriched.Rows(), back.Rows())
}

func TestStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := tsv.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "CCN202002013", domain.EnrichedMarkers{"n": domain.NewMarkerSet("m")}))
	require.NoError(t, store.Save(ctx, "CCN202002013", domain.EnrichedMarkers{"n": domain.NewMarkerSet("x")}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CCN202002013"+tsv.Suffix, entries[0].Name())

	list, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"CCN202002013"}, list)
}

func TestStore_ListMissingDir(t *testing.T) {
	list, err := tsv.New(t.TempDir() + "/absent").List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStore_EmptyTaxonomy(t *testing.T) {
	store := tsv.New(t.TempDir())
	assert.Error(t, store.Save(context.Background(), "", nil))
	_, err := store.Load(context.Background(), "")
	assert.Error(t, err)
}
