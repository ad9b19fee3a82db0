// Package report renders a markdown summary of an enrichment run.
package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/enrichment"
	"github.com/aretw0/dendro/pkg/markers"
	"github.com/aretw0/dendro/pkg/scope"
)

// DefaultLimit caps the largest-sets table and the issue list.
const DefaultLimit = 10

// Input gathers what a report describes. Only Result and Resolver are required.
type Input struct {
	Taxonomy  string
	Result    *enrichment.Result
	Resolver  *scope.Resolver
	Registry  *markers.Registry
	Issues    []markers.Issue
	CellTypes map[domain.NodeID]string
	Labels    map[domain.NodeID]string
	Synonyms  map[domain.NodeID][]string
	Limit     int
}

// Markdown renders the report.
func Markdown(in Input) string {
	limit := in.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	tree := in.Resolver.Tree()
	res := in.Result

	var sb strings.Builder
	title := "Marker enrichment"
	if in.Taxonomy != "" {
		title += ": " + in.Taxonomy
	}
	fmt.Fprintf(&sb, "# %s\n\n", title)

	sb.WriteString("| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Taxonomy nodes | %d |\n", tree.Len())
	fmt.Fprintf(&sb, "| Declared nodes | %d |\n", res.Stats.Declared)
	fmt.Fprintf(&sb, "| Scope roots | %d |\n", len(in.Resolver.Roots()))
	fmt.Fprintf(&sb, "| Inherited markers | %d |\n", res.Stats.Inherited)
	fmt.Fprintf(&sb, "| Orphans | %d |\n", len(res.Orphans))
	if in.Registry != nil {
		fmt.Fprintf(&sb, "| Max markers per node | %d |\n", in.Registry.MaxMarkerCount())
	}

	if roots := in.Resolver.Roots(); len(roots) > 0 {
		sb.WriteString("\n## Scope roots\n\n")
		sb.WriteString("| Root | Cell type | Synonyms | Subtree | Declared |\n|---|---|---|---|---|\n")
		for i, nodes := range in.Resolver.Subtrees() {
			declared := 0
			for _, id := range nodes {
				if _, ok := res.Markers[id]; ok {
					declared++
				}
			}
			fmt.Fprintf(&sb, "| %s | %s | %s | %d | %d |\n", in.name(roots[i]), orDash(in.CellTypes[roots[i]]),
				orDash(strings.Join(in.Synonyms[roots[i]], "; ")), len(nodes), declared)
		}
	} else {
		sb.WriteString("\nNo scope roots configured: markers propagate across the whole tree.\n")
	}

	if rows := in.largest(limit); len(rows) > 0 {
		sb.WriteString("\n## Largest marker sets\n\n")
		sb.WriteString("| Node | Placement | Cell type | Own | Effective |\n|---|---|---|---|---|\n")
		for _, row := range rows {
			fmt.Fprintf(&sb, "| %s | %s | %s | %d | %d |\n", in.name(row.id), row.kind, orDash(in.cellType(row.id)), row.own, row.effective)
		}
	}

	if len(res.Orphans) > 0 {
		sb.WriteString("\n## Orphans\n\nDeclared but absent from the taxonomy:\n\n")
		for _, id := range res.Orphans {
			fmt.Fprintf(&sb, "- `%s`\n", id)
		}
	}

	if len(in.Issues) > 0 {
		sb.WriteString("\n## Issues\n\n")
		for i, issue := range in.Issues {
			if i == limit {
				fmt.Fprintf(&sb, "- ... and %d more\n", len(in.Issues)-limit)
				break
			}
			fmt.Fprintf(&sb, "- %s\n", issue)
		}
	}

	return sb.String()
}

type sizeRow struct {
	id             domain.NodeID
	kind           scope.Kind
	own, effective int
}

// largest returns the nodes with the biggest effective sets, ties broken by id.
func (in Input) largest(limit int) []sizeRow {
	rows := make([]sizeRow, 0, len(in.Result.Markers))
	for id, set := range in.Result.Markers {
		row := sizeRow{id: id, kind: in.Resolver.Resolve(id).Kind, effective: set.Len()}
		if in.Registry != nil {
			if own, ok := in.Registry.Lookup(id); ok {
				row.own = own.Len()
			}
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b sizeRow) int {
		if c := cmp.Compare(b.effective, a.effective); c != 0 {
			return c
		}
		return cmp.Compare(a.id, b.id)
	})
	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// cellType is the gross cell type of the scope subtree holding id.
func (in Input) cellType(id domain.NodeID) string {
	root, ok := in.Resolver.SubtreeRoot(id)
	if !ok {
		return ""
	}
	return in.CellTypes[root]
}

func (in Input) name(id domain.NodeID) string {
	if l := in.Labels[id]; l != "" {
		return fmt.Sprintf("%s (`%s`)", l, id)
	}
	return fmt.Sprintf("`%s`", id)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
