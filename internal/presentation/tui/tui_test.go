package tui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/aretw0/dendro/internal/presentation/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	var buf bytes.Buffer
	status := tui.NewStatus(&buf)

	status.OK("tree has %d nodes", 3)
	status.Warn("1 orphan")
	status.Fail("no root")

	out := buf.String()
	assert.Contains(t, out, "✔ tree has 3 nodes\n")
	assert.Contains(t, out, "! 1 orphan\n")
	assert.Contains(t, out, "✘ no root\n")
}

func TestNewRenderer(t *testing.T) {
	render, err := tui.NewRenderer(80)
	require.NoError(t, err)

	out, err := render("# Report\n\nSome **bold** text.")
	require.NoError(t, err)
	assert.Contains(t, out, "Report")
	assert.Contains(t, out, "bold")
}

func TestIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, tui.IsTerminal(f))
}
