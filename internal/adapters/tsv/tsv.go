// Package tsv reads and writes enriched marker tables as two-column TSV files
// (Taxonomy_node_ID, Markers) and stores them in a directory.
package tsv

import (
	"encoding/csv"
	"io"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/markers"
)

// Header is the column header row of an enriched marker table.
var Header = []string{"Taxonomy_node_ID", "Markers"}

// Write serializes enriched as TSV, rows sorted by node id. Fields are quoted
// with the same rules Read unquotes them.
func Write(w io.Writer, enriched domain.EnrichedMarkers) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range enriched.Rows() {
		if err := cw.Write([]string{string(row.NodeID), row.Markers}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read parses a table written by Write.
func Read(r io.Reader) (domain.EnrichedMarkers, error) {
	reg, _, err := markers.LoadTSV(r, markers.WithMarkerColumn(1))
	if err != nil {
		return nil, err
	}
	return reg.Table(), nil
}
