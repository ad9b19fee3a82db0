package markers

import (
	"maps"
	"slices"
	"strings"

	"github.com/aretw0/dendro/pkg/domain"
)

// Registry maps declared nodes to their own marker sets.
// It is not safe for concurrent mutation; reads after construction are.
type Registry struct {
	decl map[domain.NodeID]domain.MarkerSet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{decl: make(map[domain.NodeID]domain.MarkerSet)}
}

// FromMap builds a registry from plain declarations.
func FromMap(m map[domain.NodeID][]domain.MarkerID) *Registry {
	r := NewRegistry()
	for id, ids := range m {
		r.Declare(id, ids...)
	}
	return r
}

// FromEnriched turns an enrichment result back into declarations.
func FromEnriched(e domain.EnrichedMarkers) *Registry {
	r := NewRegistry()
	for id, set := range e {
		r.decl[id] = set.Clone()
	}
	return r
}

// Declare records ids as the own markers of node. Declaring a node twice
// merges both declarations. Calling it with no ids declares an empty set.
func (r *Registry) Declare(node domain.NodeID, ids ...domain.MarkerID) {
	set := domain.NewMarkerSet(ids...)
	if prev, ok := r.decl[node]; ok {
		set = prev.Union(set)
	}
	r.decl[node] = set
}

// DeclareRaw declares node from a pipe-delimited marker list.
func (r *Registry) DeclareRaw(node domain.NodeID, raw string) {
	r.Declare(node, ParseList(raw)...)
}

// Lookup returns the own markers of node and whether node is declared at all.
func (r *Registry) Lookup(node domain.NodeID) (domain.MarkerSet, bool) {
	set, ok := r.decl[node]
	return set, ok
}

// Has reports whether node is declared.
func (r *Registry) Has(node domain.NodeID) bool {
	_, ok := r.decl[node]
	return ok
}

// Len returns the number of declared nodes.
func (r *Registry) Len() int { return len(r.decl) }

// IDs returns the declared node ids in lexicographic order.
func (r *Registry) IDs() []domain.NodeID {
	return slices.Sorted(maps.Keys(r.decl))
}

// MaxMarkerCount returns the size of the largest declaration.
func (r *Registry) MaxMarkerCount() int {
	most := 0
	for _, set := range r.decl {
		if set.Len() > most {
			most = set.Len()
		}
	}
	return most
}

// ParseList splits a pipe-delimited marker list, trimming whitespace and
// dropping empty entries. Malformed input degrades to an empty list.
func ParseList(raw string) []domain.MarkerID {
	var out []domain.MarkerID
	for _, part := range strings.Split(raw, domain.MarkerSeparator) {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, domain.MarkerID(id))
		}
	}
	return out
}

// Table returns the declarations as an independent enriched-style mapping.
func (r *Registry) Table() domain.EnrichedMarkers {
	out := make(domain.EnrichedMarkers, len(r.decl))
	for id, set := range r.decl {
		out[id] = set.Clone()
	}
	return out
}
