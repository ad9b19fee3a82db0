package dendro

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/enrichment"
	"github.com/aretw0/dendro/pkg/markers"
	"github.com/aretw0/dendro/pkg/ports"
	"github.com/aretw0/dendro/pkg/scope"
	"github.com/aretw0/dendro/pkg/taxonomy"
)

// Engine is the high-level entry point for the dendro library.
// It wraps the enrichment core with logging, lifecycle hooks and optional persistence.
type Engine struct {
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	store   ports.MarkerStore
	workers int
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithStore persists every successful result under its taxonomy name.
func WithStore(store ports.MarkerStore) Option {
	return func(e *Engine) {
		e.store = store
	}
}

// WithWorkers evaluates the subtrees below the root on up to n goroutines.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// New initializes a new Engine.
func New(opts ...Option) *Engine {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}
	if eng.logger == nil {
		eng.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return eng
}

// Input is one enrichment job.
type Input struct {
	// Taxonomy names the job in logs, metrics and the store.
	Taxonomy   string
	Tree       *taxonomy.Tree
	Registry   *markers.Registry
	ScopeRoots []domain.NodeID
}

// Enrich resolves the scope roots, runs the enrichment and stores the result
// when a store is configured. Scope roots are validated before any work is done.
func (e *Engine) Enrich(ctx context.Context, in Input) (*enrichment.Result, error) {
	if in.Tree == nil {
		return nil, fmt.Errorf("taxonomy tree is required")
	}
	if in.Registry == nil {
		in.Registry = markers.NewRegistry()
	}
	logger := e.logger.With("taxonomy", in.Taxonomy)

	start := time.Now()
	event := &domain.RunEvent{
		Timestamp:  start,
		Taxonomy:   in.Taxonomy,
		Nodes:      in.Tree.Len(),
		Declared:   in.Registry.Len(),
		ScopeRoots: len(in.ScopeRoots),
	}
	e.fire(ctx, e.hooks.OnRunStart, event, domain.EventRunStart)

	result, err := e.run(ctx, in)
	event.Duration = time.Since(start)
	if err != nil {
		event.Err = err
		e.fire(ctx, e.hooks.OnRunFailed, event, domain.EventRunFailed)
		logger.Error("enrichment failed", "err", err)
		return nil, err
	}

	for _, id := range result.Orphans {
		logger.Warn("declared node not in taxonomy", "node_id", id)
	}
	event.Declared = result.Stats.Declared
	event.Orphans = len(result.Orphans)
	event.Inherited = result.Stats.Inherited
	e.fire(ctx, e.hooks.OnRunComplete, event, domain.EventRunComplete)

	logger.Debug("enrichment complete",
		"declared", result.Stats.Declared,
		"visited", result.Stats.Visited,
		"inherited", result.Stats.Inherited,
		"duration", event.Duration,
	)
	return result, nil
}

func (e *Engine) run(ctx context.Context, in Input) (*enrichment.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	resolver, err := scope.NewResolver(in.Tree, in.ScopeRoots)
	if err != nil {
		return nil, err
	}

	result, err := enrichment.Enrich(in.Tree, in.Registry, resolver, enrichment.WithWorkers(e.workers))
	if err != nil {
		return nil, err
	}

	if e.store != nil {
		if in.Taxonomy == "" {
			return nil, fmt.Errorf("taxonomy name is required to store results")
		}
		if err := e.store.Save(ctx, in.Taxonomy, result.Markers); err != nil {
			return nil, fmt.Errorf("failed to store enriched markers: %w", err)
		}
	}
	return result, nil
}

func (e *Engine) fire(ctx context.Context, hook func(context.Context, *domain.RunEvent), event *domain.RunEvent, typ domain.EventType) {
	if hook == nil {
		return
	}
	event.Type = typ
	hook(ctx, event)
}
