// Package dendrogram parses taxonomy dendrogram files into the node and edge
// lists consumed by the taxonomy package.
//
// Two formats are supported: the nested dendrogram JSON exported by the
// taxonomy pipeline (node_attributes / leaf_attributes / children) and flat
// parent/child edge tables in TSV or CSV form.
package dendrogram
