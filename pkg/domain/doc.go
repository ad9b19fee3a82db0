/*
Package domain contains the core data model of the dendro enrichment engine.

It defines the identifiers of a cell-type taxonomy, the marker sets attached to
its nodes and the error taxonomy shared by the tree, scope and enrichment
packages. This package is kept pure and free of I/O.

# Key Entities

  - NodeID: An opaque taxonomy node identifier (e.g. a cell-set accession).
  - Edge: A parent/child relation between two nodes.
  - MarkerSet: A sorted, duplicate-free set of namespaced marker identifiers.
  - EnrichedMarkers: The per-node result of marker enrichment.
*/
package domain
