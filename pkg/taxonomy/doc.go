// Package taxonomy builds a rooted cell-type hierarchy from a parent/child edge
// list and answers ancestor and descendant queries over it.
//
// A Tree is immutable once built. Construction fails atomically with a
// domain.StructuralError or domain.DuplicateNodeError when the edges do not
// describe exactly one connected rooted tree.
package taxonomy
