package observability_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	m := observability.NewMetrics()
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnRunComplete(ctx, &domain.RunEvent{
		Type:      domain.EventRunComplete,
		Taxonomy:  "CCN202002013",
		Nodes:     20,
		Declared:  12,
		Inherited: 7,
		Duration:  5 * time.Millisecond,
	})
	hooks.OnRunFailed(ctx, &domain.RunEvent{Type: domain.EventRunFailed, Err: errors.New("boom")})

	count, err := testutil.GatherAndCount(m.Registry(), "dendro_enrich_runs_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = testutil.GatherAndCount(m.Registry(), "dendro_enrich_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMetrics_WriteToTextfile(t *testing.T) {
	m := observability.NewMetrics()
	m.Hooks().OnRunComplete(context.Background(), &domain.RunEvent{Taxonomy: "CCN202002013", Nodes: 3, Declared: 2})

	path := filepath.Join(t.TempDir(), "dendro.prom")
	require.NoError(t, m.WriteToTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `dendro_enrich_runs_total{outcome="success"} 1`)
	assert.Contains(t, string(content), `dendro_taxonomy_nodes{taxonomy="CCN202002013"} 3`)
}

func TestChain(t *testing.T) {
	var order []string
	a := domain.LifecycleHooks{OnRunStart: func(context.Context, *domain.RunEvent) { order = append(order, "a") }}
	b := domain.LifecycleHooks{
		OnRunStart:    func(context.Context, *domain.RunEvent) { order = append(order, "b") },
		OnRunComplete: func(context.Context, *domain.RunEvent) { order = append(order, "b-done") },
	}

	chained := observability.Chain(a, b)
	chained.OnRunStart(context.Background(), &domain.RunEvent{})
	chained.OnRunComplete(context.Background(), &domain.RunEvent{})

	assert.Equal(t, []string{"a", "b", "b-done"}, order)
	assert.Nil(t, chained.OnRunFailed)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	hooks := observability.LogHooks(logger)
	hooks.OnRunComplete(context.Background(), &domain.RunEvent{Taxonomy: "CCN202002013", Declared: 4})
	hooks.OnRunFailed(context.Background(), &domain.RunEvent{Taxonomy: "CCN202002013", Err: errors.New("no root")})

	out := buf.String()
	assert.Contains(t, out, "msg=run_complete")
	assert.Contains(t, out, "declared=4")
	assert.Contains(t, out, `err="no root"`)
}
