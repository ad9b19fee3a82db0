/*
Package dsl provides a fluent builder for constructing taxonomy trees and their
marker declarations in Go code.

It is useful for unit tests and for callers that assemble a hierarchy
programmatically instead of parsing a dendrogram file.

Example usage:

	b := dsl.New()

	b.Add("root").Children("neuron", "glia")
	b.Add("neuron").Markers("ensembl:ENSMUSG00000004151").Children("L5_IT")
	b.Add("L5_IT").Markers("ensembl:ENSMUSG00000039519")
	b.Add("glia").Declared()

	tree, registry, err := b.Build()
*/
package dsl
