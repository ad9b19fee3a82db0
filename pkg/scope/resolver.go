package scope

import (
	"slices"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/taxonomy"
)

// Kind classifies a node relative to the configured scope roots.
type Kind int

const (
	// KindWholeTree applies when no scope roots are configured.
	KindWholeTree Kind = iota
	// KindScopeRoot marks a configured scope root; its output is empty.
	KindScopeRoot
	// KindEnclosed marks a strict descendant of some scope root.
	KindEnclosed
	// KindUnscoped marks a node outside every scope; it inherits nothing.
	KindUnscoped
)

func (k Kind) String() string {
	switch k {
	case KindWholeTree:
		return "whole_tree"
	case KindScopeRoot:
		return "scope_root"
	case KindEnclosed:
		return "enclosed"
	case KindUnscoped:
		return "unscoped"
	}
	return "unknown"
}

// Placement is the resolved boundary of one node.
type Placement struct {
	Kind Kind
	// Root is the boundary node: the true root in whole-tree mode, the node
	// itself for a scope root, the nearest enclosing root when enclosed.
	Root domain.NodeID
}

// Resolver answers scope questions for one tree and one root list.
type Resolver struct {
	tree  *taxonomy.Tree
	roots []domain.NodeID // Configuration order, duplicates removed
	index map[domain.NodeID]int
}

// NewResolver validates roots against tree. An unknown root fails with a
// domain.ConfigurationError.
func NewResolver(tree *taxonomy.Tree, roots []domain.NodeID) (*Resolver, error) {
	r := &Resolver{
		tree:  tree,
		index: make(map[domain.NodeID]int, len(roots)),
	}
	for _, id := range roots {
		if !tree.Contains(id) {
			return nil, &domain.ConfigurationError{Key: "scope_roots", Value: id, Reason: "is not a node of the taxonomy"}
		}
		if _, dup := r.index[id]; dup {
			continue
		}
		r.index[id] = len(r.roots)
		r.roots = append(r.roots, id)
	}
	return r, nil
}

// Tree returns the tree the resolver was built for.
func (r *Resolver) Tree() *taxonomy.Tree { return r.tree }

// WholeTree reports whether no scope roots are configured.
func (r *Resolver) WholeTree() bool { return len(r.roots) == 0 }

// Roots returns the configured scope roots in configuration order.
func (r *Resolver) Roots() []domain.NodeID { return slices.Clone(r.roots) }

// IsScopeRoot reports whether id is a configured scope root.
func (r *Resolver) IsScopeRoot(id domain.NodeID) bool {
	_, ok := r.index[id]
	return ok
}

// Resolve places id relative to the scope roots. Nested roots resolve to the
// nearest enclosing one.
func (r *Resolver) Resolve(id domain.NodeID) Placement {
	if r.WholeTree() {
		return Placement{Kind: KindWholeTree, Root: r.tree.Root()}
	}
	if r.IsScopeRoot(id) {
		return Placement{Kind: KindScopeRoot, Root: id}
	}
	if root, ok := r.EnclosingRoot(id); ok {
		return Placement{Kind: KindEnclosed, Root: root}
	}
	return Placement{Kind: KindUnscoped}
}

// EnclosingRoot returns the nearest scope root that is a strict ancestor of id.
func (r *Resolver) EnclosingRoot(id domain.NodeID) (domain.NodeID, bool) {
	for _, a := range r.tree.Ancestors(id) {
		if r.IsScopeRoot(a) {
			return a, true
		}
	}
	return "", false
}

// SubtreeRoot returns the scope root whose subtree holds id, as listed by
// Subtrees: the nearest enclosing root, or id itself when it is a root
// without children.
func (r *Resolver) SubtreeRoot(id domain.NodeID) (domain.NodeID, bool) {
	if root, ok := r.EnclosingRoot(id); ok {
		return root, true
	}
	if r.IsScopeRoot(id) && len(r.tree.Children(id)) == 0 {
		return id, true
	}
	return "", false
}

// Chain returns the ancestors id may inherit from, nearest first: the full
// chain in whole-tree mode, the ancestors below the enclosing root when
// enclosed, and nothing for scope roots and unscoped nodes.
func (r *Resolver) Chain(id domain.NodeID) []domain.NodeID {
	p := r.Resolve(id)
	switch p.Kind {
	case KindWholeTree:
		return r.tree.Ancestors(id)
	case KindEnclosed:
		ancestors := r.tree.Ancestors(id)
		return ancestors[:slices.Index(ancestors, p.Root)]
	}
	return nil
}

// Subtrees returns the descendant set of every scope root in configuration
// order. A scope root without children forms a subtree of itself.
func (r *Resolver) Subtrees() [][]domain.NodeID {
	out := make([][]domain.NodeID, 0, len(r.roots))
	for _, root := range r.roots {
		nodes := r.tree.Descendants(root)
		if len(nodes) == 0 {
			nodes = []domain.NodeID{root}
		}
		out = append(out, nodes)
	}
	return out
}
