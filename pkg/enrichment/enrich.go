package enrichment

import (
	"slices"

	"github.com/aretw0/dendro/pkg/domain"
	"github.com/aretw0/dendro/pkg/markers"
	"github.com/aretw0/dendro/pkg/scope"
	"github.com/aretw0/dendro/pkg/taxonomy"
	"golang.org/x/sync/errgroup"
)

// Stats summarizes one enrichment run.
type Stats struct {
	Visited   int // Tree nodes traversed
	Declared  int // Nodes present in the output
	Inherited int // Marker ids gained from ancestors, summed over nodes
}

// Result holds the enriched mapping and the data-quality findings a caller may log.
type Result struct {
	Markers domain.EnrichedMarkers
	// Orphans are declared nodes missing from the tree. They keep their own markers.
	Orphans []domain.NodeID
	Stats   Stats
}

type config struct {
	workers int
}

// Option configures Enrich.
type Option func(*config)

// WithWorkers evaluates the subtrees below the true root on up to n goroutines.
// Values below 2 keep the traversal sequential.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}

// Enrich computes the enriched mapping for reg over tree, bounded by resolver.
// A nil resolver means whole-tree mode.
func Enrich(tree *taxonomy.Tree, reg *markers.Registry, resolver *scope.Resolver, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if resolver == nil {
		resolver, _ = scope.NewResolver(tree, nil)
	} else if resolver.Tree() != tree {
		return nil, &domain.ConfigurationError{Key: "scope_resolver", Value: tree.Root(), Reason: "was built for a different taxonomy"}
	}

	w := &walker{tree: tree, reg: reg, resolver: resolver}
	res := &Result{Markers: make(domain.EnrichedMarkers, reg.Len())}

	root := frame{id: tree.Root(), inherit: resolver.WholeTree()}
	children := w.visit(root, res)

	if cfg.workers < 2 || len(children) < 2 {
		w.run(children, res)
	} else {
		w.fanOut(children, cfg.workers, res)
	}

	for _, id := range reg.IDs() {
		if tree.Contains(id) {
			continue
		}
		own, _ := reg.Lookup(id)
		res.Markers[id] = own.Clone()
		res.Orphans = append(res.Orphans, id)
		res.Stats.Declared++
	}
	return res, nil
}

// EnrichWithRoots resolves roots against tree before enriching. An unknown
// root fails with a domain.ConfigurationError and no enrichment is attempted.
func EnrichWithRoots(tree *taxonomy.Tree, reg *markers.Registry, roots []domain.NodeID, opts ...Option) (*Result, error) {
	resolver, err := scope.NewResolver(tree, roots)
	if err != nil {
		return nil, err
	}
	return Enrich(tree, reg, resolver, opts...)
}

// frame is the traversal state on entry to a node.
type frame struct {
	id domain.NodeID
	// acc is the union of declarations inherited on the path. Shared between
	// frames and never mutated.
	acc domain.MarkerSet
	// inherit is false outside every scope.
	inherit bool
}

type walker struct {
	tree     *taxonomy.Tree
	reg      *markers.Registry
	resolver *scope.Resolver
}

// run drains a depth-first stack seeded with frames.
func (w *walker) run(seed []frame, res *Result) {
	stack := slices.Clone(seed)
	slices.Reverse(stack)
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kids := w.visit(f, res)
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

// visit records the output for f.id and returns the frames of its children.
func (w *walker) visit(f frame, res *Result) []frame {
	res.Stats.Visited++
	own, declared := w.reg.Lookup(f.id)

	var next frame
	switch {
	case !w.resolver.WholeTree() && w.resolver.IsScopeRoot(f.id):
		if declared {
			res.Markers[f.id] = domain.MarkerSet{}
			res.Stats.Declared++
		}
		next = frame{inherit: true}

	case f.inherit:
		acc := f.acc
		if declared {
			acc = acc.Union(own)
			res.Markers[f.id] = acc.Clone()
			res.Stats.Declared++
			res.Stats.Inherited += acc.Len() - own.Len()
		}
		next = frame{acc: acc, inherit: true}

	default:
		if declared {
			res.Markers[f.id] = own.Clone()
			res.Stats.Declared++
		}
		next = frame{inherit: false}
	}

	kids := w.tree.Children(f.id)
	frames := make([]frame, len(kids))
	for i, kid := range kids {
		frames[i] = next
		frames[i].id = kid
	}
	return frames
}

// fanOut evaluates independent subtrees concurrently and merges the partial results.
func (w *walker) fanOut(seed []frame, workers int, res *Result) {
	partials := make([]*Result, len(seed))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, f := range seed {
		g.Go(func() error {
			part := &Result{Markers: make(domain.EnrichedMarkers)}
			w.run([]frame{f}, part)
			partials[i] = part
			return nil
		})
	}
	_ = g.Wait() // Workers never fail

	for _, part := range partials {
		for id, set := range part.Markers {
			res.Markers[id] = set
		}
		res.Stats.Visited += part.Stats.Visited
		res.Stats.Declared += part.Stats.Declared
		res.Stats.Inherited += part.Stats.Inherited
	}
}
