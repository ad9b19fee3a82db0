package config_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/aretw0/dendro/internal/config"
	"github.com/aretw0/dendro/internal/testutils"
	"github.com/aretw0/dendro/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const detailsYAML = `
- Taxonomy_id: CCN202002013
  Species: Mus musculus
  Species_abbv: [Mmus]
  Brain_region: [primary motor cortex]
  Brain_region_abbv: MOp
  Reference_gene_list: [ENSMUSG]
  Root_nodes:
    - Node: CS202002013_123
      Cell_type: interneuron
      Location_relation: part_of
    - Node: CS202002013_179
      Cell_type: excitatory neuron
      Location_relation: has_soma_location
- Taxonomy_id: CS1908210
  Species: [Homo sapiens]
  Root_nodes: []
`

func TestParse(t *testing.T) {
	details, err := config.Parse(strings.NewReader(detailsYAML))
	require.NoError(t, err)
	require.Len(t, details.Taxonomies, 2)

	tax, ok := details.Find("CCN202002013")
	require.True(t, ok)
	assert.Equal(t, []string{"Mus musculus"}, tax.Species, "scalar is promoted to a list")
	assert.Equal(t, []string{"MOp"}, tax.BrainRegionAbbv)
	assert.Equal(t, "ensmusg", tax.GeneList())
	assert.Equal(t, filepath.Join("templates", "ensmusg.tsv"), tax.GeneFile(""))
	assert.Equal(t, filepath.Join("genes", "ensmusg.tsv"), tax.GeneFile("genes"))
	assert.Equal(t, domain.NodeIDs("CS202002013_123", "CS202002013_179"), tax.ScopeRoots())
	assert.Equal(t, "excitatory neuron", tax.CellTypeOf("CS202002013_179"))
	assert.Equal(t, "", tax.CellTypeOf("CS202002013_1"))

	root, ok := tax.RootNode("CS202002013_123")
	require.True(t, ok)
	assert.Equal(t, "part_of", root.LocationRelation)
}

func TestFind_PrefixAliases(t *testing.T) {
	details, err := config.Parse(strings.NewReader(detailsYAML))
	require.NoError(t, err)

	tax, ok := details.Find("CS202002013")
	require.True(t, ok)
	assert.Equal(t, "CCN202002013", tax.ID)

	tax, ok = details.Find("CS1908210")
	require.True(t, ok)
	assert.Empty(t, tax.ScopeRoots())
	assert.Equal(t, "", tax.GeneList())
	assert.Equal(t, "", tax.GeneFile("genes"))

	_, ok = details.Find("CCN000")
	assert.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	_, err := config.Parse(strings.NewReader("- Species: [x]\n"))
	assert.ErrorContains(t, err, "missing Taxonomy_id")

	_, err = config.Parse(strings.NewReader("not: [a list"))
	assert.Error(t, err)

	details, err := config.Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, details.Taxonomies)
}

func TestLoad(t *testing.T) {
	path := testutils.WriteFile(t, "taxonomy_details.yaml", detailsYAML)
	details, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, details.Taxonomies, 2)

	_, err = config.Load(path + ".missing")
	assert.ErrorContains(t, err, "failed to open taxonomy details")
}
