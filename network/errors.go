package network

import "errors"

// Sentinel errors for network construction. Callers should use errors.Is to
// branch on semantics; sentinels are never wrapped with formatted context at
// definition site (wrap with %w at the call site instead).
var (
	// ErrBadTopology wraps one of the more specific topology errors below.
	ErrBadTopology = errors.New("network: invalid topology")

	// ErrNoRoot indicates no vertex has in-degree 0.
	ErrNoRoot = errors.New("network: no root vertex (every vertex has a parent)")

	// ErrMultipleRoots indicates more than one vertex has in-degree 0.
	ErrMultipleRoots = errors.New("network: more than one root vertex")

	// ErrMixedDegree indicates a vertex with both in-degree > 1 and
	// out-degree > 1, which spec.md §3 explicitly forbids.
	ErrMixedDegree = errors.New("network: vertex has both in-degree > 1 and out-degree > 1")

	// ErrMalformedVertex indicates a vertex whose in-degree/out-degree pair
	// matches none of ROOT/TREE/RET/LEAF.
	ErrMalformedVertex = errors.New("network: vertex matches no valid classification")

	// ErrDuplicateLeafLabel indicates two distinct leaf vertices share a
	// label. Construction via Builder's label interner makes this
	// unreachable in practice (one label always maps to one index), but the
	// sentinel is kept for the invariant named in spec.md §3 and is checked
	// defensively in Build.
	ErrDuplicateLeafLabel = errors.New("network: duplicate leaf label")
)
