package cli

import (
	"errors"
	"log/slog"

	"github.com/aretw0/dendro"
	"github.com/aretw0/dendro/internal/adapters/redis"
	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/observability"
)

// createEngine initializes a dendro engine with standard CLI conventions.
// The returned finish func flushes metrics and releases the store; call it
// once the engine is no longer used.
func createEngine(opts Options, logger *slog.Logger) (*dendro.Engine, func() error) {
	engineOpts := []dendro.Option{
		dendro.WithLogger(logger),
		dendro.WithWorkers(opts.Workers),
	}
	var finishers []func() error

	// 1. Hooks: debug logging and optional metrics textfile
	hooks := []domain.LifecycleHooks{}
	if opts.Debug {
		hooks = append(hooks, observability.LogHooks(logger))
	}
	if opts.MetricsFile != "" {
		metrics := observability.NewMetrics()
		hooks = append(hooks, metrics.Hooks())
		finishers = append(finishers, func() error {
			return metrics.WriteToTextfile(opts.MetricsFile)
		})
	}
	if len(hooks) > 0 {
		engineOpts = append(engineOpts, dendro.WithLifecycleHooks(observability.Chain(hooks...)))
	}

	// 2. Optional Redis persistence
	if opts.RedisAddr != "" {
		store := redis.New(opts.RedisAddr, opts.RedisPassword, opts.RedisDB)
		engineOpts = append(engineOpts, dendro.WithStore(store))
		finishers = append(finishers, store.Close)
	}

	finish := func() error {
		var errs []error
		for _, fn := range finishers {
			errs = append(errs, fn())
		}
		return errors.Join(errs...)
	}
	return dendro.New(engineOpts...), finish
}
