/*
Package markers holds the sparse table of marker declarations per taxonomy node
and the loaders that fill it from marker files.

A node that appears in a Registry has an opinion about its markers, even when
the declared set is empty; a node that does not appear has none. Lookup's
comma-ok form keeps the two cases apart:

	reg := markers.NewRegistry()
	reg.DeclareRaw("CS202002013_86", "ensembl:ENSMUSG00000039519|ensembl:ENSMUSG00000028031")
	reg.Declare("CS202002013_123") // declared, no markers

	set, ok := reg.Lookup("CS202002013_86")
*/
package markers
