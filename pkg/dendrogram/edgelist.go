package dendrogram

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/dendro/pkg/domain"
)

// ParseEdgeList reads a delimited table whose header names a "parent" and a
// "child" column, in any order. Rows with an empty parent declare a root.
func ParseEdgeList(r io.Reader, comma rune) (*Dendrogram, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read edge list header: %w", err)
	}
	parentCol, childCol := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "parent":
			parentCol = i
		case "child":
			childCol = i
		}
	}
	if parentCol < 0 || childCol < 0 {
		return nil, fmt.Errorf("edge list header must contain parent and child columns, got %v", header)
	}

	d := &Dendrogram{}
	seen := make(map[domain.NodeID]bool)
	add := func(id domain.NodeID) {
		if id != "" && !seen[id] {
			seen[id] = true
			d.Nodes = append(d.Nodes, Node{Accession: string(id)})
		}
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read edge list: %w", err)
		}
		if len(row) <= parentCol || len(row) <= childCol {
			continue
		}
		parent := domain.NodeID(strings.TrimSpace(row[parentCol]))
		child := domain.NodeID(strings.TrimSpace(row[childCol]))
		if child == "" {
			continue
		}
		add(parent)
		add(child)
		if parent != "" {
			d.edges = append(d.edges, domain.Edge{Parent: parent, Child: child})
		}
	}
	return d, nil
}
