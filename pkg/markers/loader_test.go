package markers_test

import (
	"strings"
	"testing"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/markers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const markerTable = "Taxonomy_node_ID\tclusterName\tMarkers\n" +
	"CS202002013_86\tL5 IT\tensembl:ENSMUSG00000039519| ensembl:ENSMUSG00000028031\n" +
	"CS202002013_121\tGlia\t\n" +
	"CS202002013_207\tL5\tensembl:ENSMUSG00000004151|ensembl:UNKNOWN\n" +
	"CS202002013_9\tshort\n"

func TestLoadTSV(t *testing.T) {
	reg, issues, err := markers.LoadTSV(strings.NewReader(markerTable))
	require.NoError(t, err)

	assert.Equal(t, 4, reg.Len())

	set, ok := reg.Lookup("CS202002013_86")
	require.True(t, ok)
	assert.Equal(t, domain.MarkerSet{"ensembl:ENSMUSG00000028031", "ensembl:ENSMUSG00000039519"}, set)

	set, ok = reg.Lookup("CS202002013_121")
	require.True(t, ok, "empty marker cell still declares the node")
	assert.Equal(t, 0, set.Len())

	set, ok = reg.Lookup("CS202002013_9")
	require.True(t, ok)
	assert.Equal(t, 0, set.Len())

	require.Len(t, issues, 1)
	assert.Equal(t, domain.NodeID("CS202002013_9"), issues[0].Node)
	assert.Equal(t, "missing marker column", issues[0].Reason)
}

func TestLoadTSV_KnownMarkers(t *testing.T) {
	known := map[domain.MarkerID]string{
		"ensembl:ENSMUSG00000039519": "Cdh13",
		"ensembl:ENSMUSG00000028031": "Dkk2",
		"ensembl:ENSMUSG00000004151": "Etv1",
	}

	reg, issues, err := markers.LoadTSV(strings.NewReader(markerTable), markers.WithKnownMarkers(known))
	require.NoError(t, err)

	set, ok := reg.Lookup("CS202002013_207")
	require.True(t, ok)
	assert.Equal(t, domain.MarkerSet{"ensembl:ENSMUSG00000004151"}, set)

	var unknown []domain.MarkerID
	for _, issue := range issues {
		if issue.Marker != "" {
			unknown = append(unknown, issue.Marker)
		}
	}
	assert.Equal(t, []domain.MarkerID{"ensembl:UNKNOWN"}, unknown)
	assert.Contains(t, issues[0].String(), "row 4")
}

func TestLoadTSV_CustomColumns(t *testing.T) {
	input := "id,markers\nn1,a|b\n"
	reg, _, err := markers.LoadTSV(strings.NewReader(input), markers.WithComma(','), markers.WithMarkerColumn(1))
	require.NoError(t, err)

	set, ok := reg.Lookup("n1")
	require.True(t, ok)
	assert.Equal(t, domain.MarkerSet{"a", "b"}, set)
}

func TestLoadTSV_IDColumn(t *testing.T) {
	input := "markers\tid\na|b\tn1\n"
	reg, _, err := markers.LoadTSV(strings.NewReader(input), markers.WithIDColumn(1), markers.WithMarkerColumn(0))
	require.NoError(t, err)

	set, ok := reg.Lookup("n1")
	require.True(t, ok)
	assert.Equal(t, domain.MarkerSet{"a", "b"}, set)
}

func TestLoadTSV_DuplicateRows(t *testing.T) {
	input := "id\tlabel\tmarkers\nn1\tx\ta\nn2\ty\tc\nn1\tx\tb\n"
	reg, issues, err := markers.LoadTSV(strings.NewReader(input))
	require.NoError(t, err)

	set, ok := reg.Lookup("n1")
	require.True(t, ok)
	assert.Equal(t, domain.MarkerSet{"a", "b"}, set)

	require.Len(t, issues, 1)
	assert.Equal(t, 4, issues[0].Row)
	assert.Equal(t, domain.NodeID("n1"), issues[0].Node)
	assert.Contains(t, issues[0].Reason, "duplicate row")
}

func TestLoadGeneIndex(t *testing.T) {
	input := "ID\tTYPE\tLABEL\n" +
		"ID\tSC %\tA rdfs:label\n" +
		"ensembl:ENSMUSG00000039519\tSO:0000704\tCdh13\n" +
		"ensembl:ENSMUSG00000028031\tSO:0000704\n"

	genes, err := markers.LoadGeneIndex(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, map[domain.MarkerID]string{
		"ensembl:ENSMUSG00000039519": "Cdh13",
		"ensembl:ENSMUSG00000028031": "",
	}, genes)
}
