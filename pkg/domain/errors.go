package domain

import (
	"errors"
	"fmt"
)

// ErrStructural is matched by every error describing a malformed taxonomy tree.
var ErrStructural = errors.New("invalid taxonomy structure")

// ErrConfiguration is matched by errors raised for invalid enrichment settings.
var ErrConfiguration = errors.New("invalid enrichment configuration")

// StructuralKind names the structural defect found while building a tree.
type StructuralKind string

const (
	KindEmpty         StructuralKind = "empty"
	KindNoRoot        StructuralKind = "no_root"
	KindMultipleRoots StructuralKind = "multiple_roots"
	KindCycle         StructuralKind = "cycle"
)

// StructuralError reports a tree that is not a single connected rooted tree.
type StructuralError struct {
	Kind  StructuralKind
	Nodes []NodeID // Offending nodes (roots found, or a node on the cycle)
}

func (e *StructuralError) Error() string {
	switch e.Kind {
	case KindEmpty:
		return "taxonomy has no nodes"
	case KindNoRoot:
		return "taxonomy has no root: every node has a parent"
	case KindMultipleRoots:
		return fmt.Sprintf("taxonomy has %d roots: %v", len(e.Nodes), e.Nodes)
	case KindCycle:
		return fmt.Sprintf("taxonomy contains a cycle through %v", e.Nodes)
	}
	return fmt.Sprintf("taxonomy structure error (%s)", e.Kind)
}

func (e *StructuralError) Unwrap() error { return ErrStructural }

// DuplicateNodeError reports a node declared under two different parents.
type DuplicateNodeError struct {
	Node    NodeID
	Parents [2]NodeID
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %q declared with conflicting parents %q and %q", e.Node, e.Parents[0], e.Parents[1])
}

func (e *DuplicateNodeError) Unwrap() error { return ErrStructural }

// ConfigurationError reports an enrichment setting that does not match the tree.
type ConfigurationError struct {
	Key    string // Setting name, e.g. "scope_roots"
	Value  NodeID
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %q %s", e.Key, e.Value, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

// ErrTaxonomyNotFound is returned when a marker store holds no table for a taxonomy.
var ErrTaxonomyNotFound = errors.New("taxonomy not found")
