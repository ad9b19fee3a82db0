package dsl

import (
	"testing"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_SimpleTree(t *testing.T) {
	b := New()

	b.Add("root").Children("a", "b")
	b.Add("a").Markers("m1", "m2").Children("a1")
	b.Add("b").Declared()

	tree, reg, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, domain.NodeID("root"), tree.Root())
	assert.Equal(t, 4, tree.Len())
	assert.Equal(t, []domain.NodeID{"a", "root"}, tree.Ancestors("a1"))

	set, ok := reg.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, domain.MarkerSet{"m1", "m2"}, set)

	set, ok = reg.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, 0, set.Len())

	assert.False(t, reg.Has("a1"))
}

func TestBuilder_SingleNode(t *testing.T) {
	b := New()
	b.Add("only").Markers("x")

	tree, reg, err := b.Build()
	require.NoError(t, err)
	assert.True(t, tree.IsRoot("only"))
	assert.Equal(t, 1, reg.Len())
}

func TestBuilder_InvalidTree(t *testing.T) {
	b := New()
	b.Add("r1").Children("x")
	b.Add("r2").Children("x")

	_, _, err := b.Build()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStructural)

	var dup *domain.DuplicateNodeError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, domain.NodeID("x"), dup.Node)
}

func TestBuilder_AddReturnsExisting(t *testing.T) {
	b := New()
	first := b.Add("n")
	assert.Same(t, first, b.Add("n"))
	assert.Equal(t, domain.NodeID("n"), first.ID())
}
