package taxonomy

import (
	"slices"

	"github.com/aretw0/dendro/pkg/domain"
)

// Root returns the true root of the tree.
func (t *Tree) Root() domain.NodeID { return t.root }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.order) }

// Nodes returns every node in first-seen order.
func (t *Tree) Nodes() []domain.NodeID { return slices.Clone(t.order) }

// Contains reports whether id is a node of the tree.
func (t *Tree) Contains(id domain.NodeID) bool {
	if id == t.root {
		return true
	}
	_, ok := t.parent[id]
	return ok
}

// IsRoot reports whether id has no parent.
func (t *Tree) IsRoot(id domain.NodeID) bool {
	return id == t.root
}

// Parent returns the parent of id. The root and unknown nodes have none.
func (t *Tree) Parent(id domain.NodeID) (domain.NodeID, bool) {
	p, ok := t.parent[id]
	return p, ok
}

// Children returns the direct children of id in edge order.
func (t *Tree) Children(id domain.NodeID) []domain.NodeID {
	return slices.Clone(t.children[id])
}

// Ancestors returns the strict ancestors of id, nearest first, ending at the root.
func (t *Tree) Ancestors(id domain.NodeID) []domain.NodeID {
	var out []domain.NodeID
	for cur, ok := t.parent[id]; ok; cur, ok = t.parent[cur] {
		out = append(out, cur)
	}
	return out
}

// Descendants returns every node below id in pre-order, excluding id itself.
func (t *Tree) Descendants(id domain.NodeID) []domain.NodeID {
	if !t.Contains(id) {
		return nil
	}
	var out []domain.NodeID
	t.walk(id, func(n domain.NodeID, depth int) bool {
		if depth > 0 {
			out = append(out, n)
		}
		return true
	})
	return out
}

// IsAncestor reports whether a is a strict ancestor of n.
func (t *Tree) IsAncestor(a, n domain.NodeID) bool {
	for cur, ok := t.parent[n]; ok; cur, ok = t.parent[cur] {
		if cur == a {
			return true
		}
	}
	return false
}

// Depth returns the number of edges between id and the root.
func (t *Tree) Depth(id domain.NodeID) int {
	depth := 0
	for cur, ok := t.parent[id]; ok; cur, ok = t.parent[cur] {
		depth++
	}
	return depth
}

// Walk visits the subtree under from in pre-order, children in edge order.
// Returning false from fn prunes the subtree below the visited node.
func (t *Tree) Walk(from domain.NodeID, fn func(id domain.NodeID, depth int) bool) {
	if !t.Contains(from) {
		return
	}
	t.walk(from, fn)
}
