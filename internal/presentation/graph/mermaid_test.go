package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/dendro/internal/presentation/graph"
	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/taxonomy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree(t *testing.T) *taxonomy.Tree {
	t.Helper()
	tree, err := taxonomy.New([]domain.Edge{
		{Parent: "R", Child: "A"},
		{Parent: "R", Child: "B"},
		{Parent: "A", Child: "A.1"},
	})
	require.NoError(t, err)
	return tree
}

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name        string
		roots       []domain.NodeID
		overlay     *graph.Overlay
		contains    []string
		notContains []string
	}{
		{
			name:  "Whole Tree Shapes",
			roots: nil,
			contains: []string{
				"graph TD\n",
				`R(("R"))`,
				`A["A"]`,
				`A_1["A.1"]`,
				"R --> A",
				"A --> A_1",
			},
			notContains: []string{"classDef"},
		},
		{
			name:  "Scope Root Styling",
			roots: []domain.NodeID{"A"},
			contains: []string{
				`A[["A"]]`,
				`B[/"B"/]`,
				"R -.-> A",
				"R --> B",
				"class A scope;",
			},
		},
		{
			name: "Declared Overlay",
			overlay: &graph.Overlay{
				Declared: map[domain.NodeID]bool{"A.1": true},
				Markers:  domain.EnrichedMarkers{"A.1": domain.NewMarkerSet("m1", "m2")},
				Labels:   map[domain.NodeID]string{"A.1": `Sst "Chodl"`},
			},
			contains: []string{
				`A_1["Sst 'Chodl' <br/> 2 markers"]`,
				"class A_1 declared;",
			},
			notContains: []string{"class A declared;"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := graph.Render(sampleTree(t), tt.roots, tt.overlay)
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.True(t, strings.Contains(out, want), "expected output to contain %q\n%s", want, out)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRender_UnknownRoot(t *testing.T) {
	_, err := graph.Render(sampleTree(t), []domain.NodeID{"missing"}, nil)
	assert.ErrorIs(t, err, domain.ErrConfiguration)
}
