// Package scope interprets an optional list of scope roots into a per-node
// enrichment boundary.
//
// Without scope roots every node inherits from its full ancestor chain. With
// scope roots, a node inherits only from the ancestors strictly below its
// nearest enclosing root; a scope root itself contributes nothing and reports
// no markers; nodes outside every scope inherit nothing.
package scope
