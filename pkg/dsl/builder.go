package dsl

import (
	"fmt"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/markers"
	"github.com/aretw0/dendro/pkg/taxonomy"
)

// Builder manages the tree construction.
type Builder struct {
	nodes map[domain.NodeID]*NodeBuilder
	order []domain.NodeID
	edges []domain.Edge
}

// New creates a new tree builder.
func New() *Builder {
	return &Builder{
		nodes: make(map[domain.NodeID]*NodeBuilder),
	}
}

// Add creates a new node in the tree.
// If the node already exists, it returns the existing builder.
func (b *Builder) Add(id string) *NodeBuilder {
	nid := domain.NodeID(id)
	if nb, ok := b.nodes[nid]; ok {
		return nb
	}
	nb := &NodeBuilder{id: nid, builder: b}
	b.nodes[nid] = nb
	b.order = append(b.order, nid)
	return nb
}

// Edges returns the parent/child edges declared so far.
func (b *Builder) Edges() []domain.Edge {
	out := make([]domain.Edge, len(b.edges))
	copy(out, b.edges)
	return out
}

// Registry returns the marker declarations made so far.
func (b *Builder) Registry() *markers.Registry {
	reg := markers.NewRegistry()
	for _, id := range b.order {
		nb := b.nodes[id]
		if nb.declared {
			reg.Declare(id, nb.markers...)
		}
	}
	return reg
}

// Build validates the hierarchy and returns the tree with its declarations.
func (b *Builder) Build() (*taxonomy.Tree, *markers.Registry, error) {
	tree, err := taxonomy.NewWithNodes(b.order, b.edges)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build taxonomy: %w", err)
	}
	return tree, b.Registry(), nil
}

// NodeBuilder provides a fluent API for configuring a node.
type NodeBuilder struct {
	id       domain.NodeID
	builder  *Builder
	markers  []domain.MarkerID
	declared bool
}

// Children attaches the given nodes below this one, creating them if needed.
func (n *NodeBuilder) Children(ids ...string) *NodeBuilder {
	for _, id := range ids {
		child := n.builder.Add(id)
		n.builder.edges = append(n.builder.edges, domain.Edge{Parent: n.id, Child: child.id})
	}
	return n
}

// Markers declares the node's own markers. It can be called repeatedly.
func (n *NodeBuilder) Markers(ids ...string) *NodeBuilder {
	n.declared = true
	for _, id := range ids {
		n.markers = append(n.markers, domain.MarkerID(id))
	}
	return n
}

// Declared marks the node as present in the marker table with no markers.
func (n *NodeBuilder) Declared() *NodeBuilder {
	n.declared = true
	return n
}

// ID returns the node identifier.
func (n *NodeBuilder) ID() domain.NodeID { return n.id }
