package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/dendro/pkg/dsl"
	"github.com/aretw0/dendro/pkg/markers"
	"github.com/aretw0/dendro/pkg/taxonomy"
	"github.com/stretchr/testify/require"
)

// ens prefixes a mouse Ensembl gene number.
func ens(n string) string { return "ensembl:ENSMUSG" + n }

// MouseFixture builds a reduced copy of the CCN202002013 mouse motor cortex
// taxonomy used across the enrichment tests:
//
//	CS202002013_220
//	├── _121 ── _123* ── _125* ── _8*
//	├── _179* ── _207* ─┬ _86*
//	│                   └ _88*
//	├── _132 ── _133* ─┬ _9*
//	│                  └ _11*
//	├── _117 ── _118 ── _212 ── _213
//	└── _183 ─┬ _60
//	          └ _184 ─┬ _58
//	                  └ _59
//
// Nodes marked * carry marker declarations.
func MouseFixture() *dsl.Builder {
	b := dsl.New()
	id := func(n string) string { return "CS202002013_" + n }

	b.Add(id("220")).Children(id("121"), id("179"), id("132"), id("117"), id("183"))

	b.Add(id("121")).Children(id("123"))
	b.Add(id("123")).Markers(ens("00000070880"), ens("00000098326")).Children(id("125"))
	b.Add(id("125")).Markers(ens("00000029819"), ens("00000075270")).Children(id("8"))
	b.Add(id("8")).Markers(ens("00000110002"), ens("00000029361"))

	b.Add(id("179")).Markers(ens("00000053025"), ens("00000032503")).Children(id("207"))
	b.Add(id("207")).Markers(ens("00000004151"), ens("00000047907")).Children(id("86"), id("88"))
	b.Add(id("86")).Markers(ens("00000039519"), ens("00000028031"), ens("00000045648"))
	b.Add(id("88")).Markers(ens("00000026344"), ens("00000047907"))

	b.Add(id("132")).Children(id("133"))
	b.Add(id("133")).Markers(ens("00000044288"), ens("00000058897")).Children(id("9"), id("11"))
	b.Add(id("9")).Markers(ens("00000039385"), ens("00000058897"), ens("00000015766"))
	b.Add(id("11")).Markers(ens("00000063661"), ens("00000042045"), ens("00000027849"))

	b.Add(id("117")).Children(id("118"))
	b.Add(id("118")).Children(id("212"))
	b.Add(id("212")).Children(id("213"))

	b.Add(id("183")).Children(id("60"), id("184"))
	b.Add(id("184")).Children(id("58"), id("59"))

	return b
}

// BuildMouseFixture returns the built fixture, failing the test on error.
func BuildMouseFixture(t *testing.T) (*taxonomy.Tree, *markers.Registry) {
	t.Helper()

	tree, reg, err := MouseFixture().Build()
	require.NoError(t, err, "Failed to build mouse fixture")
	return tree, reg
}

// WriteFile writes content under a temporary directory and returns its path.
// It fails the test immediately on error.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755), "Failed to create fixture directory")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644), "Failed to write fixture file")
	return path
}
