/*
Package ports defines the driven ports (interfaces) of the dendro toolkit.

These interfaces decouple the enrichment pipeline from where its output goes,
allowing the same run to write a TSV file, an in-memory table or a Redis hash.

# Key Interfaces

  - MarkerStore: Persists and retrieves enriched marker tables per taxonomy.
*/
package ports
