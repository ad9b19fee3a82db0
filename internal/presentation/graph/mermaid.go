package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/scope"
	"github.com/aretw0/dendro/pkg/taxonomy"
)

// Overlay contains enrichment data to visualize on the graph.
type Overlay struct {
	// Declared nodes carry a marker declaration; Markers shows their effective set size.
	Declared map[domain.NodeID]bool
	Markers  domain.EnrichedMarkers
	// Labels replaces node ids in the rendered boxes (e.g. cell set labels).
	Labels map[domain.NodeID]string
}

// GenerateMermaid produces a Mermaid flowchart of the taxonomy.
// It applies semantic styling:
// - True root: ((Circle))
// - Scope root: [[Subroutine]]
// - Outside every scope: [/Parallelogram/]
// - Default: [Rectangle]
// Edges entering a scope root are dotted. Declared nodes get the "declared" class
// when an overlay is provided.
func GenerateMermaid(res *scope.Resolver, overlay *Overlay) string {
	tree := res.Tree()
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	tree.Walk(tree.Root(), func(id domain.NodeID, depth int) bool {
		safeID := sanitizeMermaidID(string(id))

		opener, closer := "[", "]"
		switch res.Resolve(id).Kind {
		case scope.KindScopeRoot:
			opener, closer = "[[", "]]" // Subroutine
		case scope.KindUnscoped:
			opener, closer = "[/", "/]" // Parallelogram
		}
		if tree.IsRoot(id) {
			opener, closer = "((", "))" // Circle
		}

		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, label(id, overlay), closer))

		for _, child := range tree.Children(id) {
			arrow := "-->"
			if res.IsScopeRoot(child) {
				arrow = "-.->"
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, sanitizeMermaidID(string(child))))
		}
		return true
	})

	if overlay != nil && len(overlay.Declared) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef declared fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		for _, id := range tree.Nodes() {
			if overlay.Declared[id] {
				sb.WriteString(fmt.Sprintf("    class %s declared;\n", sanitizeMermaidID(string(id))))
			}
		}
	}
	if len(res.Roots()) > 0 {
		sb.WriteString("    classDef scope fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		for _, id := range res.Roots() {
			sb.WriteString(fmt.Sprintf("    class %s scope;\n", sanitizeMermaidID(string(id))))
		}
	}

	return sb.String()
}

// Render is a convenience wrapper building the resolver from tree and roots.
func Render(tree *taxonomy.Tree, roots []domain.NodeID, overlay *Overlay) (string, error) {
	res, err := scope.NewResolver(tree, roots)
	if err != nil {
		return "", err
	}
	return GenerateMermaid(res, overlay), nil
}

func label(id domain.NodeID, overlay *Overlay) string {
	text := string(id)
	if overlay == nil {
		return text
	}
	if l, ok := overlay.Labels[id]; ok && l != "" {
		text = l
	}
	if set, ok := overlay.Markers[id]; ok {
		text = fmt.Sprintf("%s <br/> %d markers", text, set.Len())
	}
	// Escape double quotes for Mermaid labels
	return strings.ReplaceAll(text, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, ":", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
