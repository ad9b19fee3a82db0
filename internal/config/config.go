// Package config loads the taxonomy details file that lists, per taxonomy, its
// species, brain region, reference gene list and scope roots.
//
// The file is a YAML sequence of taxonomy entries:
//
//   - Taxonomy_id: CCN202002013
//     Species: [Mus musculus]
//     Brain_region: [primary motor cortex]
//     Reference_gene_list: [ENSMUSG]
//     Root_nodes:
//   - Node: CS202002013_123
//     Cell_type: interneuron
//     Location_relation: part_of
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the taxonomy details file is looked up when no path is given.
const DefaultPath = "dendrograms/taxonomy_details.yaml"

// DefaultGeneDir holds the reference gene templates named by Reference_gene_list.
const DefaultGeneDir = "templates"

// RootNode is one scope root of a taxonomy.
type RootNode struct {
	Node             string `mapstructure:"Node"`
	CellType         string `mapstructure:"Cell_type"`
	LocationRelation string `mapstructure:"Location_relation"`
}

// Taxonomy is one entry of the taxonomy details file. List-valued keys also
// accept a single scalar.
type Taxonomy struct {
	ID                string     `mapstructure:"Taxonomy_id"`
	Species           []string   `mapstructure:"Species"`
	SpeciesAbbv       []string   `mapstructure:"Species_abbv"`
	BrainRegion       []string   `mapstructure:"Brain_region"`
	BrainRegionAbbv   []string   `mapstructure:"Brain_region_abbv"`
	ReferenceGeneList []string   `mapstructure:"Reference_gene_list"`
	RootNodes         []RootNode `mapstructure:"Root_nodes"`
}

// ScopeRoots returns the configured root nodes in file order.
func (t *Taxonomy) ScopeRoots() []domain.NodeID {
	out := make([]domain.NodeID, 0, len(t.RootNodes))
	for _, r := range t.RootNodes {
		out = append(out, domain.NodeID(r.Node))
	}
	return out
}

// RootNode returns the entry configured for id.
func (t *Taxonomy) RootNode(id domain.NodeID) (RootNode, bool) {
	for _, r := range t.RootNodes {
		if domain.NodeID(r.Node) == id {
			return r, true
		}
	}
	return RootNode{}, false
}

// CellTypeOf returns the gross cell type configured for root.
func (t *Taxonomy) CellTypeOf(root domain.NodeID) string {
	r, _ := t.RootNode(root)
	return r.CellType
}

// GeneList returns the first reference gene list, lower-cased, or "" when unset.
func (t *Taxonomy) GeneList() string {
	if len(t.ReferenceGeneList) == 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(t.ReferenceGeneList[0]))
}

// GeneFile returns the reference gene template for the taxonomy under dir,
// e.g. templates/ensmusg.tsv, or "" when no gene list is configured.
func (t *Taxonomy) GeneFile(dir string) string {
	name := t.GeneList()
	if name == "" {
		return ""
	}
	if dir == "" {
		dir = DefaultGeneDir
	}
	return filepath.Join(dir, name+".tsv")
}

// Details is the parsed taxonomy details file.
type Details struct {
	Taxonomies []Taxonomy
}

// Load reads the taxonomy details file at path.
func Load(path string) (*Details, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open taxonomy details: %w", err)
	}
	defer f.Close()

	details, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return details, nil
}

// Parse decodes a taxonomy details document.
func Parse(r io.Reader) (*Details, error) {
	var raw []map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return &Details{}, nil
		}
		return nil, fmt.Errorf("failed to parse taxonomy details: %w", err)
	}

	details := &Details{Taxonomies: make([]Taxonomy, 0, len(raw))}
	for i, entry := range raw {
		var tax Taxonomy
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &tax,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(entry); err != nil {
			return nil, fmt.Errorf("taxonomy entry %d: %w", i, err)
		}
		if tax.ID == "" {
			return nil, fmt.Errorf("taxonomy entry %d: missing Taxonomy_id", i)
		}
		details.Taxonomies = append(details.Taxonomies, tax)
	}
	return details, nil
}

// Find returns the configuration of taxonomy id. Ids match exactly or after
// dropping the "CCN"/"CS" accession prefix, so CS202002013 finds CCN202002013.
func (d *Details) Find(id string) (*Taxonomy, bool) {
	for i := range d.Taxonomies {
		if d.Taxonomies[i].ID == id {
			return &d.Taxonomies[i], true
		}
	}
	key := normalizeID(id)
	for i := range d.Taxonomies {
		if normalizeID(d.Taxonomies[i].ID) == key {
			return &d.Taxonomies[i], true
		}
	}
	return nil, false
}

func normalizeID(id string) string {
	id = strings.TrimSpace(id)
	for _, prefix := range []string{"CCN", "CS"} {
		if strings.HasPrefix(id, prefix) {
			return strings.TrimPrefix(id, prefix)
		}
	}
	return id
}
