package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/dendro/internal/config"
	"github.com/aretw0/dendro/internal/logging"
	"github.com/aretw0/dendro/pkg/dendrogram"
	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/markers"
	"github.com/aretw0/dendro/pkg/taxonomy"
)

// InterruptError is the cancellation cause of a context stopped by SIGINT or SIGTERM.
type InterruptError struct {
	Signal os.Signal
}

func (e *InterruptError) Error() string {
	return "interrupted by " + e.Signal.String()
}

// WithInterrupt returns a context cancelled on SIGINT or SIGTERM with an
// *InterruptError cause. The returned stop function releases the signal handler.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			cancel(&InterruptError{Signal: sig})
		case <-ctx.Done():
		}
	}()
	return ctx, func() { cancel(nil) }
}

// Interrupted attaches the interrupting signal to err when a signal cancelled ctx.
func Interrupted(ctx context.Context, err error) error {
	var ie *InterruptError
	if err == nil || !errors.As(context.Cause(ctx), &ie) {
		return err
	}
	return fmt.Errorf("%w: %w", ie, err)
}

// CreateLogger configures the application logger.
// In debug mode, it writes to Stderr (to separate from Stdout table output).
func CreateLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelWarn)
}

// job is everything loaded from disk for one command invocation.
type job struct {
	name       string
	dendrogram *dendrogram.Dendrogram
	tree       *taxonomy.Tree
	registry   *markers.Registry
	issues     []markers.Issue
	taxonomy   *config.Taxonomy // nil when no configuration applies
	scopeRoots []domain.NodeID
}

// loadJob reads the dendrogram, the optional marker file and the scope configuration.
func loadJob(opts Options) (*job, error) {
	d, err := dendrogram.Open(opts.Dendrogram)
	if err != nil {
		return nil, err
	}
	tree, err := d.Tree()
	if err != nil {
		return nil, fmt.Errorf("invalid taxonomy %s: %w", opts.Dendrogram, err)
	}

	j := &job{
		name:       opts.Taxonomy,
		dendrogram: d,
		tree:       tree,
		registry:   markers.NewRegistry(),
	}
	if j.name == "" {
		j.name = dendrogram.TaxonomyName(opts.Dendrogram)
	}

	if err := j.loadScope(opts); err != nil {
		return nil, err
	}
	if opts.Markers != "" {
		if err := j.loadMarkers(opts); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// loadScope applies explicit --scope-root flags, or the roots configured for
// the taxonomy. The default configuration path is optional; an explicit one is not.
func (j *job) loadScope(opts Options) error {
	path := opts.ConfigPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultPath
	}

	details, err := config.Load(path)
	switch {
	case err == nil:
		if tax, ok := details.Find(j.name); ok {
			j.taxonomy = tax
		} else if opts.Taxonomy != "" {
			return fmt.Errorf("taxonomy %s not found in %s", opts.Taxonomy, path)
		}
	case explicit || !errors.Is(err, os.ErrNotExist):
		return err
	}

	for _, id := range opts.ScopeRoots {
		j.scopeRoots = append(j.scopeRoots, domain.NodeID(id))
	}
	if len(j.scopeRoots) == 0 && j.taxonomy != nil {
		j.scopeRoots = j.taxonomy.ScopeRoots()
	}
	return nil
}

func (j *job) loadMarkers(opts Options) error {
	loadOpts := []markers.LoadOption{markers.WithIDColumn(opts.IDColumn)}
	if opts.MarkerColumn > 0 {
		loadOpts = append(loadOpts, markers.WithMarkerColumn(opts.MarkerColumn))
	}
	if path := j.genesPath(opts); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open gene list: %w", err)
		}
		genes, err := markers.LoadGeneIndex(f)
		f.Close()
		if err != nil {
			return err
		}
		loadOpts = append(loadOpts, markers.WithKnownMarkers(genes))
	}

	f, err := os.Open(opts.Markers)
	if err != nil {
		return fmt.Errorf("failed to open marker table: %w", err)
	}
	defer f.Close()

	reg, issues, err := markers.LoadTSV(f, loadOpts...)
	if err != nil {
		return err
	}
	j.registry = reg
	j.issues = issues
	return nil
}

// genesPath is --genes when given, otherwise the template of the taxonomy's
// configured reference gene list.
func (j *job) genesPath(opts Options) string {
	if opts.Genes != "" {
		return opts.Genes
	}
	if j.taxonomy == nil {
		return ""
	}
	return j.taxonomy.GeneFile(opts.GeneDir)
}

// cellTypes maps each scope root to its configured cell type.
func (j *job) cellTypes() map[domain.NodeID]string {
	out := make(map[domain.NodeID]string)
	if j.taxonomy == nil {
		return out
	}
	for _, id := range j.scopeRoots {
		if ct := j.taxonomy.CellTypeOf(id); ct != "" {
			out[id] = ct
		}
	}
	return out
}

// labels maps node ids to their cell set labels.
func (j *job) labels() map[domain.NodeID]string {
	out := make(map[domain.NodeID]string, len(j.dendrogram.Nodes))
	for _, n := range j.dendrogram.Nodes {
		if n.Label != "" {
			out[n.ID()] = n.Label
		}
	}
	return out
}

// synonyms maps node ids to their alternative names, the label excluded.
func (j *job) synonyms() map[domain.NodeID][]string {
	out := make(map[domain.NodeID][]string)
	for _, n := range j.dendrogram.Nodes {
		var names []string
		for _, s := range n.Synonyms() {
			if s != n.Label {
				names = append(names, s)
			}
		}
		if len(names) > 0 {
			out[n.ID()] = names
		}
	}
	return out
}

func logIssues(logger *slog.Logger, file string, issues []markers.Issue) {
	for _, issue := range issues {
		logger.Warn("marker table issue", "file", file, "row", issue.Row, "node_id", issue.Node, "marker", issue.Marker, "reason", issue.Reason)
	}
}
