package scope_test

import (
	"testing"

	"github.com/aretw0/dendro/internal/testutils"
	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const p = "CS202002013_"

func ids(suffixes ...string) []domain.NodeID {
	out := make([]domain.NodeID, len(suffixes))
	for i, s := range suffixes {
		out[i] = domain.NodeID(p + s)
	}
	return out
}

func TestNewResolver_UnknownRoot(t *testing.T) {
	tree, _ := testutils.BuildMouseFixture(t)

	r, err := scope.NewResolver(tree, []domain.NodeID{p + "123", "nope"})
	assert.Nil(t, r)
	require.ErrorIs(t, err, domain.ErrConfiguration)

	var cerr *domain.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, domain.NodeID("nope"), cerr.Value)
}

func TestResolver_WholeTree(t *testing.T) {
	tree, _ := testutils.BuildMouseFixture(t)
	r, err := scope.NewResolver(tree, nil)
	require.NoError(t, err)

	assert.True(t, r.WholeTree())
	assert.Equal(t, scope.Placement{Kind: scope.KindWholeTree, Root: tree.Root()}, r.Resolve(p+"86"))
	assert.Equal(t, ids("207", "179", "220"), r.Chain(p+"86"))
}

func TestResolver_Scoped(t *testing.T) {
	tree, _ := testutils.BuildMouseFixture(t)
	r, err := scope.NewResolver(tree, ids("123"))
	require.NoError(t, err)

	tests := []struct {
		node  string
		want  scope.Placement
		chain []domain.NodeID
	}{
		{"123", scope.Placement{Kind: scope.KindScopeRoot, Root: p + "123"}, nil},
		{"125", scope.Placement{Kind: scope.KindEnclosed, Root: p + "123"}, []domain.NodeID{}},
		{"8", scope.Placement{Kind: scope.KindEnclosed, Root: p + "123"}, ids("125")},
		{"207", scope.Placement{Kind: scope.KindUnscoped}, nil},
		{"121", scope.Placement{Kind: scope.KindUnscoped}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.node, func(t *testing.T) {
			id := domain.NodeID(p + tt.node)
			assert.Equal(t, tt.want, r.Resolve(id))
			assert.Equal(t, tt.chain, r.Chain(id))
		})
	}
}

func TestResolver_NestedRootsNearestWins(t *testing.T) {
	tree, _ := testutils.BuildMouseFixture(t)
	r, err := scope.NewResolver(tree, ids("121", "125"))
	require.NoError(t, err)

	assert.Equal(t, scope.Placement{Kind: scope.KindEnclosed, Root: p + "125"}, r.Resolve(p+"8"))
	assert.Equal(t, []domain.NodeID{}, r.Chain(p+"8"))
	assert.Equal(t, scope.Placement{Kind: scope.KindEnclosed, Root: p + "121"}, r.Resolve(p+"123"))
	assert.Equal(t, scope.KindScopeRoot, r.Resolve(p+"125").Kind)
}

func TestResolver_DuplicateRootsCollapsed(t *testing.T) {
	tree, _ := testutils.BuildMouseFixture(t)
	r, err := scope.NewResolver(tree, ids("179", "132", "179"))
	require.NoError(t, err)
	assert.Equal(t, ids("179", "132"), r.Roots())
}

func TestResolver_Subtrees(t *testing.T) {
	tree, _ := testutils.BuildMouseFixture(t)
	r, err := scope.NewResolver(tree, ids("132", "60"))
	require.NoError(t, err)

	subtrees := r.Subtrees()
	require.Len(t, subtrees, 2)
	assert.ElementsMatch(t, ids("133", "9", "11"), subtrees[0])
	assert.Equal(t, ids("60"), subtrees[1], "leaf root is its own subtree")
}

func TestResolver_EnclosingRoot(t *testing.T) {
	tree, _ := testutils.BuildMouseFixture(t)
	r, err := scope.NewResolver(tree, ids("121", "125", "60"))
	require.NoError(t, err)

	tests := []struct {
		node        string
		enclosing   string
		subtreeRoot string
	}{
		{"8", "125", "125"},
		{"125", "121", "121"},
		{"123", "121", "121"},
		{"121", "", ""},
		{"60", "", "60"},
		{"207", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.node, func(t *testing.T) {
			id := domain.NodeID(p + tt.node)

			root, ok := r.EnclosingRoot(id)
			if tt.enclosing == "" {
				assert.False(t, ok)
			} else {
				assert.True(t, ok)
				assert.Equal(t, domain.NodeID(p+tt.enclosing), root)
			}

			root, ok = r.SubtreeRoot(id)
			if tt.subtreeRoot == "" {
				assert.False(t, ok)
			} else {
				assert.True(t, ok)
				assert.Equal(t, domain.NodeID(p+tt.subtreeRoot), root)
			}
		})
	}
}

func TestResolver_SubtreeRootAgreesWithSubtrees(t *testing.T) {
	tree, _ := testutils.BuildMouseFixture(t)
	r, err := scope.NewResolver(tree, ids("132", "60"))
	require.NoError(t, err)

	for i, nodes := range r.Subtrees() {
		for _, id := range nodes {
			root, ok := r.SubtreeRoot(id)
			require.True(t, ok, id)
			assert.Equal(t, r.Roots()[i], root, id)
		}
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "scope_root", scope.KindScopeRoot.String())
	assert.Equal(t, "unscoped", scope.KindUnscoped.String())
}
