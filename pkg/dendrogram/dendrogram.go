package dendrogram

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/taxonomy"
)

// Node holds the attributes of one dendrogram node.
// It uses "mapstructure" tags to match the cell-set attribute keys.
type Node struct {
	Accession         string `mapstructure:"cell_set_accession"`
	Label             string `mapstructure:"cell_set_label"`
	PreferredAlias    string `mapstructure:"cell_set_preferred_alias"`
	OriginalLabel     string `mapstructure:"original_label"`
	AlignedAlias      string `mapstructure:"cell_set_aligned_alias"`
	AdditionalAliases string `mapstructure:"cell_set_additional_aliases"`
	AliasAssignee     string `mapstructure:"cell_set_alias_assignee"`
	AliasCitation     string `mapstructure:"cell_set_alias_citation"`
	CellTypeCard      string `mapstructure:"cell_type_card"`

	// Extra keeps every attribute not mapped above.
	Extra map[string]any `mapstructure:",remain"`
}

// ID returns the node identifier.
func (n Node) ID() domain.NodeID { return domain.NodeID(n.Accession) }

// Synonyms returns the distinct non-empty naming attributes of the node, sorted.
func (n Node) Synonyms() []string {
	var out []string
	for _, v := range []string{n.PreferredAlias, n.OriginalLabel, n.Label, n.AlignedAlias, n.AdditionalAliases} {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Dendrogram is a parsed taxonomy: its nodes in file order and its edges.
type Dendrogram struct {
	Nodes []Node
	edges []domain.Edge
}

// Edges returns the parent/child edges.
func (d *Dendrogram) Edges() []domain.Edge { return slices.Clone(d.edges) }

// NodeIDs returns the node identifiers in file order.
func (d *Dendrogram) NodeIDs() []domain.NodeID {
	out := make([]domain.NodeID, len(d.Nodes))
	for i, n := range d.Nodes {
		out[i] = n.ID()
	}
	return out
}

// Index maps node ids to their attributes.
func (d *Dendrogram) Index() map[domain.NodeID]Node {
	out := make(map[domain.NodeID]Node, len(d.Nodes))
	for _, n := range d.Nodes {
		out[n.ID()] = n
	}
	return out
}

// Tree validates the dendrogram and builds its taxonomy tree.
func (d *Dendrogram) Tree() (*taxonomy.Tree, error) {
	return taxonomy.NewWithNodes(d.NodeIDs(), d.edges)
}

// Open parses a dendrogram file, choosing the format from its extension:
// .json for dendrogram JSON, .tsv and .csv for edge tables.
func Open(path string) (*Dendrogram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dendrogram: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(f)
	case ".tsv", ".txt":
		return ParseEdgeList(f, '\t')
	case ".csv":
		return ParseEdgeList(f, ',')
	}
	return nil, fmt.Errorf("unsupported dendrogram format %q", filepath.Ext(path))
}

// TaxonomyName derives the taxonomy id from a dendrogram path, e.g.
// "dendrograms/CCN202002013.json" or "nomenclature_table_CCN201912131.csv".
func TaxonomyName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return strings.TrimPrefix(name, "nomenclature_table_")
}
