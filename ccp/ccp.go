package ccp

import (
	"context"
	"time"

	"github.com/nuslab/phylonet/component"
	"github.com/nuslab/phylonet/network"
)

// Result is the outcome of a successful Run: the identifying vertex whose
// soft cluster equals B, the number of branching (split) events the search
// performed along the way, and the residual tree's leaf labels — the
// witness's descendant leaf-set, which by the definition of "soft cluster"
// is exactly B's labels (ported from ClusterContainment.c's CLI, which
// prints this alongside the witness vertex on success).
type Result struct {
	Witness      string
	NoBreak      int
	ResidualTree []string
}

// Option configures a Run call, following the functional-option idiom used
// throughout this codebase's construction APIs.
type Option func(*driver)

// WithContext makes the search cooperatively cancellable: the deadline is
// checked before descending into either sibling branch of a split.
func WithContext(ctx context.Context) Option {
	return func(d *driver) { d.ctx = ctx }
}

// WithDeadline is a convenience wrapper over WithContext.
func WithDeadline(deadline time.Time) Option {
	return func(d *driver) {
		ctx, cancel := context.WithDeadline(context.Background(), deadline)
		d.ctx = ctx
		d.cancel = cancel
	}
}

type driver struct {
	n       *network.Network
	ctx     context.Context
	cancel  context.CancelFunc
	noBreak int
}

func (d *driver) checkDeadline() error {
	if d.ctx == nil {
		return nil
	}

	return d.ctx.Err()
}

// Run decides whether B is the soft cluster of some vertex of n. It returns
// ErrNotACluster (for errors.Is) when the decision is negative, and any
// fatal construction error (e.g. component.ErrCyclic) otherwise.
//
// ErrNotACluster is returned from exactly this function and nowhere else:
// every branch-local negative outcome inside resolveStable/splitUnstable
// propagates as (0, false, nil), so an error surfacing out of runComponents
// is always genuinely fatal (bad topology, cyclic dependency order, context
// cancellation) and never something a sibling branch could route around.
func Run(n *network.Network, B *network.LeafSet, opts ...Option) (Result, error) {
	d := &driver{n: n, ctx: context.Background()}
	for _, opt := range opts {
		opt(d)
	}
	if d.cancel != nil {
		defer d.cancel()
	}

	if B.Len() == 0 || B.Len() == n.NumLeaves() {
		// Empty and full sets are always trivial and never reach the
		// resolver or splitter.
		if B.Len() == 0 {
			return Result{}, ErrNotACluster
		}

		return Result{Witness: n.Label(n.Root()), ResidualTree: labelsOf(n, B.Indices())}, nil
	}
	if B.Len() == 1 {
		return Result{Witness: n.Label(B.Indices()[0]), ResidualTree: labelsOf(n, B.Indices())}, nil
	}

	s, err := NewState(n)
	if err != nil {
		return Result{}, err
	}

	v, ok, err := runComponents(d, s, 0, B.Clone())
	if err != nil {
		return Result{}, err
	}
	if !ok {
		return Result{NoBreak: d.noBreak}, ErrNotACluster
	}

	return Result{Witness: n.Label(v), NoBreak: d.noBreak, ResidualTree: labelsOf(n, B.Indices())}, nil
}

// labelsOf translates a sorted leaf-index slice into network labels, used to
// populate Result.ResidualTree: by the definition of "soft cluster", a
// successful witness's descendant leaf-set is exactly the original B.
func labelsOf(n *network.Network, idx []int) []string {
	out := make([]string, len(idx))
	for i, v := range idx {
		out[i] = n.Label(v)
	}

	return out
}

// runComponents walks s.Comps starting at idx, routing each component
// through the stable resolver or the unstable splitter and mutating s and B
// as components resolve.
func runComponents(d *driver, s *State, idx int, B *network.LeafSet) (int, bool, error) {
	if idx >= len(s.Comps) {
		return 0, false, nil
	}
	if err := d.checkDeadline(); err != nil {
		return 0, false, err
	}

	c := s.Comps[idx]
	if c.Tree.Len() == 0 {
		// Defensive: an internal invariant violation that should never
		// occur for a network that passed validation.
		if c.RetNode != component.RootComponent {
			cutEdgesExcept(s, c.RetNode, -1)
		}

		return runComponents(d, s, idx+1, B)
	}

	if isStable(s, c) {
		v, ok, err := resolveStable(d.n, s, c, B)
		if err != nil {
			return 0, false, err
		}
		if ok {
			return v, true, nil
		}

		return runComponents(d, s, idx+1, B)
	}

	return splitUnstable(d, s, c, idx, B)
}
