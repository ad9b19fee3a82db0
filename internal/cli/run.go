package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/dendro"
	"github.com/aretw0/dendro/internal/adapters/tsv"
	"github.com/aretw0/dendro/internal/presentation/graph"
	"github.com/aretw0/dendro/internal/presentation/report"
	"github.com/aretw0/dendro/internal/presentation/tui"
	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/enrichment"
	"github.com/aretw0/dendro/pkg/scope"
)

// Options contains the configuration shared by the dendro commands.
type Options struct {
	Dendrogram    string
	Markers       string
	Output        string // "" or "-" writes to stdout
	Taxonomy      string // Defaults to the dendrogram file name
	ConfigPath    string
	ScopeRoots    []string
	Genes         string // Overrides the configured reference gene list
	GeneDir       string // Where configured gene lists live (default templates)
	IDColumn      int
	MarkerColumn  int // 0 selects the default column
	Workers       int
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MetricsFile   string
	Debug         bool
}

// RunEnrich computes the enriched marker table and writes it as TSV.
func RunEnrich(ctx context.Context, opts Options, stdout io.Writer, logger *slog.Logger) error {
	j, err := loadJob(opts)
	if err != nil {
		return err
	}
	logIssues(logger, opts.Markers, j.issues)

	result, err := enrich(ctx, j, opts, logger)
	if err != nil {
		return err
	}

	if opts.Output == "" || opts.Output == "-" {
		return tsv.Write(stdout, result.Markers)
	}
	if err := tsv.WriteFile(opts.Output, result.Markers); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}
	logger.Info("enriched markers written", "path", opts.Output, "nodes", len(result.Markers))
	return nil
}

// RunValidate checks the taxonomy structure and scope configuration, printing
// one status line per check. A marker file, when given, is checked for
// declarations outside the taxonomy.
func RunValidate(opts Options, stdout io.Writer) error {
	status := tui.NewStatus(stdout)

	j, err := loadJob(opts)
	if err != nil {
		status.Fail("%v", err)
		return err
	}
	status.OK("taxonomy %s: %d nodes, root %s", j.name, j.tree.Len(), j.tree.Root())

	res, err := scope.NewResolver(j.tree, j.scopeRoots)
	if err != nil {
		status.Fail("%v", err)
		return err
	}
	if res.WholeTree() {
		status.Warn("no scope roots: markers propagate across the whole tree")
	} else {
		status.OK("%d scope roots resolved", len(res.Roots()))
	}

	if opts.Markers != "" {
		orphans := 0
		for _, id := range j.registry.IDs() {
			if !j.tree.Contains(id) {
				orphans++
			}
		}
		switch {
		case orphans > 0:
			status.Warn("%d of %d declared nodes are not in the taxonomy", orphans, j.registry.Len())
		default:
			status.OK("%d declared nodes", j.registry.Len())
		}
		if len(j.issues) > 0 {
			status.Warn("%d marker table issues", len(j.issues))
		}
	}
	return nil
}

// RunGraph prints a Mermaid diagram of the taxonomy.
func RunGraph(opts Options, stdout io.Writer) error {
	j, err := loadJob(opts)
	if err != nil {
		return err
	}
	res, err := scope.NewResolver(j.tree, j.scopeRoots)
	if err != nil {
		return err
	}

	overlay := &graph.Overlay{Labels: j.labels()}
	if opts.Markers != "" {
		result, err := enrichment.Enrich(j.tree, j.registry, res)
		if err != nil {
			return err
		}
		overlay.Markers = result.Markers
		overlay.Declared = make(map[domain.NodeID]bool, j.registry.Len())
		for _, id := range j.registry.IDs() {
			overlay.Declared[id] = true
		}
	}

	_, err = fmt.Fprint(stdout, graph.GenerateMermaid(res, overlay))
	return err
}

// RunReport enriches and prints a markdown summary, rendered with glamour
// when stdout is a terminal.
func RunReport(ctx context.Context, opts Options, stdout io.Writer, logger *slog.Logger) error {
	j, err := loadJob(opts)
	if err != nil {
		return err
	}
	logIssues(logger, opts.Markers, j.issues)

	result, err := enrich(ctx, j, opts, logger)
	if err != nil {
		return err
	}
	res, err := scope.NewResolver(j.tree, j.scopeRoots)
	if err != nil {
		return err
	}

	md := report.Markdown(report.Input{
		Taxonomy:  j.name,
		Result:    result,
		Resolver:  res,
		Registry:  j.registry,
		Issues:    j.issues,
		CellTypes: j.cellTypes(),
		Labels:    j.labels(),
		Synonyms:  j.synonyms(),
	})

	if f, ok := stdout.(*os.File); ok && tui.IsTerminal(f) {
		render, err := tui.NewRenderer(0)
		if err != nil {
			return err
		}
		if md, err = render(md); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
	}
	_, err = fmt.Fprint(stdout, md)
	return err
}

func enrich(ctx context.Context, j *job, opts Options, logger *slog.Logger) (*enrichment.Result, error) {
	eng, finish := createEngine(opts, logger)
	result, err := eng.Enrich(ctx, dendro.Input{
		Taxonomy:   j.name,
		Tree:       j.tree,
		Registry:   j.registry,
		ScopeRoots: j.scopeRoots,
	})
	if ferr := finish(); ferr != nil {
		logger.Warn("failed to finalize run", "err", ferr)
	}
	return result, err
}
