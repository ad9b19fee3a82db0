package domain

import (
	"slices"
	"strings"
)

// MarkerSeparator joins marker identifiers in serialized rows.
const MarkerSeparator = "|"

// MarkerID is a namespaced marker identifier such as "ensembl:ENSMUSG00000039519".
type MarkerID string

// MarkerSet is a sorted, duplicate-free list of marker identifiers.
// Values are treated as immutable once built; operations return new sets.
type MarkerSet []MarkerID

// NewMarkerSet builds a set from arbitrary ids, dropping empty ones.
func NewMarkerSet(ids ...MarkerID) MarkerSet {
	set := make(MarkerSet, 0, len(ids))
	for _, id := range ids {
		if id != "" {
			set = append(set, id)
		}
	}
	slices.Sort(set)
	return slices.Clip(slices.Compact(set))
}

// Len returns the number of markers in the set.
func (s MarkerSet) Len() int { return len(s) }

// Has reports whether id is a member of the set.
func (s MarkerSet) Has(id MarkerID) bool {
	_, ok := slices.BinarySearch(s, id)
	return ok
}

// Contains reports whether every member of other is also in s.
func (s MarkerSet) Contains(other MarkerSet) bool {
	i := 0
	for _, id := range other {
		for i < len(s) && s[i] < id {
			i++
		}
		if i == len(s) || s[i] != id {
			return false
		}
	}
	return true
}

// Union merges two sets. When one side already covers the other the covering
// set is returned as is, so callers must not mutate the result.
func (s MarkerSet) Union(other MarkerSet) MarkerSet {
	switch {
	case len(other) == 0:
		return s
	case len(s) == 0:
		return other
	case s.Contains(other):
		return s
	case other.Contains(s):
		return other
	}

	out := make(MarkerSet, 0, len(s)+len(other))
	i, j := 0, 0
	for i < len(s) && j < len(other) {
		switch {
		case s[i] < other[j]:
			out = append(out, s[i])
			i++
		case s[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			out = append(out, s[i])
			i++
			j++
		}
	}
	out = append(out, s[i:]...)
	out = append(out, other[j:]...)
	return slices.Clip(out)
}

// Clone returns an independent copy of the set. A nil set clones to an empty one.
func (s MarkerSet) Clone() MarkerSet {
	out := make(MarkerSet, len(s))
	copy(out, s)
	return out
}

// Strings returns the members as plain strings.
func (s MarkerSet) Strings() []string {
	out := make([]string, len(s))
	for i, id := range s {
		out[i] = string(id)
	}
	return out
}

// Join concatenates the members with sep.
func (s MarkerSet) Join(sep string) string {
	return strings.Join(s.Strings(), sep)
}

// String renders the set with MarkerSeparator.
func (s MarkerSet) String() string {
	return s.Join(MarkerSeparator)
}
