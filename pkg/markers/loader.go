package markers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/dendro/pkg/domain"
)

// Issue is a non-fatal data-quality problem found while loading a marker file.
// Callers decide whether to log it.
type Issue struct {
	Row    int
	Node   domain.NodeID
	Marker domain.MarkerID
	Reason string
}

func (i Issue) String() string {
	if i.Marker != "" {
		return fmt.Sprintf("row %d: node %s: marker %q %s", i.Row, i.Node, i.Marker, i.Reason)
	}
	return fmt.Sprintf("row %d: node %s: %s", i.Row, i.Node, i.Reason)
}

type loadConfig struct {
	comma        rune
	idColumn     int
	markerColumn int
	headerRows   int
	known        map[domain.MarkerID]bool
}

// LoadOption configures LoadTSV.
type LoadOption func(*loadConfig)

// WithMarkerColumn selects the column holding the pipe-delimited markers (default 2).
func WithMarkerColumn(col int) LoadOption {
	return func(c *loadConfig) { c.markerColumn = col }
}

// WithIDColumn selects the column holding the node id (default 0).
func WithIDColumn(col int) LoadOption {
	return func(c *loadConfig) { c.idColumn = col }
}

// WithComma overrides the field delimiter (default tab).
func WithComma(r rune) LoadOption {
	return func(c *loadConfig) { c.comma = r }
}

// WithKnownMarkers drops markers that are not keys of known, reporting each as an Issue.
func WithKnownMarkers[V any](known map[domain.MarkerID]V) LoadOption {
	return func(c *loadConfig) {
		c.known = make(map[domain.MarkerID]bool, len(known))
		for id := range known {
			c.known[id] = true
		}
	}
}

// LoadTSV reads a marker table whose first row is a header. Every data row
// declares its node, even when the marker cell is empty or every marker in it
// was rejected. A node on several rows gets the union of their markers and an
// Issue per repeated row.
func LoadTSV(r io.Reader, opts ...LoadOption) (*Registry, []Issue, error) {
	cfg := loadConfig{comma: '\t', markerColumn: 2, headerRows: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	rows, err := readRows(r, cfg.comma)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read marker table: %w", err)
	}

	reg := NewRegistry()
	var issues []Issue
	for i, row := range rows {
		rowNum := i + 1
		if i < cfg.headerRows || len(row) <= cfg.idColumn {
			continue
		}
		node := domain.NodeID(strings.TrimSpace(row[cfg.idColumn]))
		if node == "" {
			continue
		}
		if reg.Has(node) {
			issues = append(issues, Issue{Row: rowNum, Node: node, Reason: "duplicate row, markers merged with the earlier rows"})
		}

		if len(row) <= cfg.markerColumn {
			reg.Declare(node)
			issues = append(issues, Issue{Row: rowNum, Node: node, Reason: "missing marker column"})
			continue
		}

		var accepted []domain.MarkerID
		for _, id := range ParseList(row[cfg.markerColumn]) {
			if cfg.known != nil && !cfg.known[id] {
				issues = append(issues, Issue{Row: rowNum, Node: node, Marker: id, Reason: "not found in reference gene list"})
				continue
			}
			accepted = append(accepted, id)
		}
		reg.Declare(node, accepted...)
	}
	return reg, issues, nil
}

// LoadGeneIndex reads a reference gene template: two header rows, then the
// marker id in column 0 and the gene symbol in column 2.
func LoadGeneIndex(r io.Reader) (map[domain.MarkerID]string, error) {
	rows, err := readRows(r, '\t')
	if err != nil {
		return nil, fmt.Errorf("failed to read gene list: %w", err)
	}

	genes := make(map[domain.MarkerID]string)
	for i, row := range rows {
		if i < 2 || len(row) == 0 {
			continue
		}
		id := domain.MarkerID(strings.TrimSpace(row[0]))
		if id == "" {
			continue
		}
		name := ""
		if len(row) > 2 {
			name = strings.TrimSpace(row[2])
		}
		genes[id] = name
	}
	return genes, nil
}

func readRows(r io.Reader, comma rune) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var rows [][]string
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}
