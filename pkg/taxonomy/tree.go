package taxonomy

import (
	"github.com/aretw0/dendro/pkg/domain"
)

// Tree is a validated rooted hierarchy.
type Tree struct {
	root     domain.NodeID
	parent   map[domain.NodeID]domain.NodeID
	children map[domain.NodeID][]domain.NodeID
	order    []domain.NodeID // First-seen order
}

// New builds a tree from parent/child edges.
func New(edges []domain.Edge) (*Tree, error) {
	return NewWithNodes(nil, edges)
}

// NewWithNodes builds a tree from edges plus nodes that may not appear in any
// edge, such as the single node of a one-node taxonomy.
func NewWithNodes(nodes []domain.NodeID, edges []domain.Edge) (*Tree, error) {
	t := &Tree{
		parent:   make(map[domain.NodeID]domain.NodeID, len(edges)),
		children: make(map[domain.NodeID][]domain.NodeID),
	}

	seen := make(map[domain.NodeID]bool, len(edges)+1)
	add := func(id domain.NodeID) {
		if !seen[id] {
			seen[id] = true
			t.order = append(t.order, id)
		}
	}

	for _, id := range nodes {
		add(id)
	}

	for _, e := range edges {
		add(e.Parent)
		add(e.Child)

		if existing, ok := t.parent[e.Child]; ok {
			if existing == e.Parent {
				continue // Repeated edge
			}
			return nil, &domain.DuplicateNodeError{Node: e.Child, Parents: [2]domain.NodeID{existing, e.Parent}}
		}
		t.parent[e.Child] = e.Parent
		t.children[e.Parent] = append(t.children[e.Parent], e.Child)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// validate enforces a single root and full reachability from it.
func (t *Tree) validate() error {
	if len(t.order) == 0 {
		return &domain.StructuralError{Kind: domain.KindEmpty}
	}

	var roots []domain.NodeID
	for _, id := range t.order {
		if _, ok := t.parent[id]; !ok {
			roots = append(roots, id)
		}
	}

	switch len(roots) {
	case 0:
		return &domain.StructuralError{Kind: domain.KindNoRoot, Nodes: t.findCycle(t.order[0])}
	case 1:
		t.root = roots[0]
	default:
		return &domain.StructuralError{Kind: domain.KindMultipleRoots, Nodes: roots}
	}

	reached := make(map[domain.NodeID]bool, len(t.order))
	t.walk(t.root, func(id domain.NodeID, _ int) bool {
		reached[id] = true
		return true
	})
	if len(reached) == len(t.order) {
		return nil
	}

	// With one root and single parents, anything unreachable sits on or below a cycle.
	for _, id := range t.order {
		if !reached[id] {
			return &domain.StructuralError{Kind: domain.KindCycle, Nodes: t.findCycle(id)}
		}
	}
	return nil
}

// findCycle climbs parent pointers from start, bounded by the node count, and
// returns the nodes of the first loop encountered.
func (t *Tree) findCycle(start domain.NodeID) []domain.NodeID {
	onPath := make(map[domain.NodeID]int)
	var path []domain.NodeID

	cur := start
	for steps := 0; steps <= len(t.order); steps++ {
		if i, ok := onPath[cur]; ok {
			return path[i:]
		}
		onPath[cur] = len(path)
		path = append(path, cur)

		next, ok := t.parent[cur]
		if !ok {
			break
		}
		cur = next
	}
	return []domain.NodeID{start}
}

// walk visits the subtree under from in pre-order without recursion. Returning
// false from fn skips the node's children.
func (t *Tree) walk(from domain.NodeID, fn func(id domain.NodeID, depth int) bool) {
	type frame struct {
		id    domain.NodeID
		depth int
	}
	stack := []frame{{id: from}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(f.id, f.depth) {
			continue
		}
		kids := t.children[f.id]
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: kids[i], depth: f.depth + 1})
		}
	}
}
