package domain

import (
	"maps"
	"slices"
)

// EnrichedMarkers maps every declared node to its effective marker set.
type EnrichedMarkers map[NodeID]MarkerSet

// Row is the two-column serialized form of one enriched entry.
type Row struct {
	NodeID  NodeID
	Markers string
}

// IDs returns the node ids in lexicographic order.
func (e EnrichedMarkers) IDs() []NodeID {
	return slices.Sorted(maps.Keys(e))
}

// Rows returns the entries sorted by node id, markers joined with MarkerSeparator.
func (e EnrichedMarkers) Rows() []Row {
	rows := make([]Row, 0, len(e))
	for _, id := range e.IDs() {
		rows = append(rows, Row{NodeID: id, Markers: e[id].Join(MarkerSeparator)})
	}
	return rows
}

// Clone deep-copies the mapping so the result shares no backing arrays.
func (e EnrichedMarkers) Clone() EnrichedMarkers {
	out := make(EnrichedMarkers, len(e))
	for id, set := range e {
		out[id] = set.Clone()
	}
	return out
}
