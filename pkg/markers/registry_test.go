package markers_test

import (
	"testing"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/markers"
	"github.com/stretchr/testify/assert"
)

func TestParseList(t *testing.T) {
	tests := []struct {
		raw  string
		want []domain.MarkerID
	}{
		{"a|b|c", []domain.MarkerID{"a", "b", "c"}},
		{" a | b ", []domain.MarkerID{"a", "b"}},
		{"", nil},
		{"|| |", nil},
		{"ensembl:ENSMUSG00000039519", []domain.MarkerID{"ensembl:ENSMUSG00000039519"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, markers.ParseList(tt.raw))
		})
	}
}

func TestRegistry_DeclaredVersusAbsent(t *testing.T) {
	reg := markers.NewRegistry()
	reg.Declare("empty")
	reg.DeclareRaw("full", "m2|m1|m2")

	set, ok := reg.Lookup("empty")
	assert.True(t, ok, "empty declaration must still be present")
	assert.Equal(t, 0, set.Len())

	set, ok = reg.Lookup("full")
	assert.True(t, ok)
	assert.Equal(t, domain.MarkerSet{"m1", "m2"}, set)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)

	assert.Equal(t, []domain.NodeID{"empty", "full"}, reg.IDs())
	assert.Equal(t, 2, reg.MaxMarkerCount())
}

func TestRegistry_DeclareMerges(t *testing.T) {
	reg := markers.NewRegistry()
	reg.Declare("n", "a", "b")
	reg.Declare("n", "b", "c")

	set, _ := reg.Lookup("n")
	assert.Equal(t, domain.MarkerSet{"a", "b", "c"}, set)
	assert.Equal(t, 1, reg.Len())
}

func TestFromEnriched(t *testing.T) {
	enriched := domain.EnrichedMarkers{"n": domain.NewMarkerSet("x")}
	reg := markers.FromEnriched(enriched)

	set, ok := reg.Lookup("n")
	assert.True(t, ok)
	assert.Equal(t, domain.MarkerSet{"x"}, set)
}
