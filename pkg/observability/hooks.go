package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/dendro/pkg/domain"
)

// LogHooks returns hooks that log every run event.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnRunStart: func(ctx context.Context, e *domain.RunEvent) {
			logger.DebugContext(ctx, "run_start",
				"taxonomy", e.Taxonomy,
				"nodes", e.Nodes,
				"declared", e.Declared,
				"scope_roots", e.ScopeRoots,
			)
		},
		OnRunComplete: func(ctx context.Context, e *domain.RunEvent) {
			logger.InfoContext(ctx, "run_complete",
				"taxonomy", e.Taxonomy,
				"declared", e.Declared,
				"inherited", e.Inherited,
				"orphans", e.Orphans,
				"duration", e.Duration,
			)
		},
		OnRunFailed: func(ctx context.Context, e *domain.RunEvent) {
			logger.ErrorContext(ctx, "run_failed", "taxonomy", e.Taxonomy, "err", e.Err)
		},
	}
}

// Chain combines hook sets; each event is delivered in argument order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var starts, completes, fails []func(context.Context, *domain.RunEvent)
	for _, h := range hooks {
		if h.OnRunStart != nil {
			starts = append(starts, h.OnRunStart)
		}
		if h.OnRunComplete != nil {
			completes = append(completes, h.OnRunComplete)
		}
		if h.OnRunFailed != nil {
			fails = append(fails, h.OnRunFailed)
		}
	}
	return domain.LifecycleHooks{
		OnRunStart:    fanOut(starts),
		OnRunComplete: fanOut(completes),
		OnRunFailed:   fanOut(fails),
	}
}

func fanOut(fns []func(context.Context, *domain.RunEvent)) func(context.Context, *domain.RunEvent) {
	if len(fns) == 0 {
		return nil
	}
	return func(ctx context.Context, e *domain.RunEvent) {
		for _, fn := range fns {
			fn(ctx, e)
		}
	}
}
