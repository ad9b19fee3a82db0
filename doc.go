/*
Package dendro propagates marker-gene declarations down a cell-type taxonomy.

A taxonomy is a rooted tree of cell sets. Curators declare "self" markers on a
sparse subset of nodes; dendro computes, for every declared node, the effective
marker set obtained by adding the declarations of its ancestors. Scope roots
bound that propagation: a scope root itself yields an empty set, nodes below it
inherit only from ancestors strictly below the nearest enclosing root, and
nodes outside every scope keep their own declaration.

# Packages

  - pkg/taxonomy: tree construction and structural validation.
  - pkg/scope: scope root resolution.
  - pkg/markers: the sparse declaration registry and marker-file loader.
  - pkg/enrichment: the single-pass propagation.
  - pkg/dendrogram: dendrogram JSON and edge-list parsing.

# Usage

	tree, err := taxonomy.New([]domain.Edge{
		{Parent: "CS202002013_220", Child: "CS202002013_179"},
		{Parent: "CS202002013_179", Child: "CS202002013_207"},
	})
	if err != nil {
		log.Fatal(err)
	}

	reg := markers.NewRegistry()
	reg.DeclareRaw("CS202002013_179", "ensembl:ENSMUSG00000004151")
	reg.DeclareRaw("CS202002013_207", "ensembl:ENSMUSG00000039519")

	eng := dendro.New(dendro.WithLogger(slog.Default()))
	result, err := eng.Enrich(ctx, dendro.Input{Taxonomy: "CCN202002013", Tree: tree, Registry: reg})

The Engine fires domain.LifecycleHooks around every run; see pkg/observability
for prometheus metrics built on them. The dendro command in cmd/dendro wraps the
same pipeline for dendrogram and marker files on disk.
*/
package dendro
