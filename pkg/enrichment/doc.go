/*
Package enrichment computes the effective marker set of every declared taxonomy
node by folding in the declarations of its ancestors, bounded by scope roots.

For each declared node n:

	scope root  → ∅
	unscoped    → own(n)
	otherwise   → own(n) ∪ own(a) for every declared a in the scoped chain of n

The computation is a single depth-first traversal from the true root. Each
frame carries the union of the declarations seen on its path as an immutable
sorted set; a child shares its parent's set unless its own declaration adds new
ids, so no per-node ancestor chain is ever rebuilt.

The keys of the result are exactly the declared nodes. Enrichment is pure: the
tree and registry are only read, and the function does no I/O or logging.
*/
package enrichment
