package ccp

import (
	"errors"

	"github.com/nuslab/phylonet/component"
	"github.com/nuslab/phylonet/network"
)

// crossRet pairs a cross-reticulation with its current visible leaf.
type crossRet struct {
	Ret  int
	Leaf int
}

// collectCross splits c's CROSS-frontier reticulations (those with a known
// visible leaf) into rets_in (visible leaf in B) and rets_out (visible leaf
// outside B). Reticulations still untreated (lf_below
// unknown) take no side.
func collectCross(s *State, c *component.Component, B *network.LeafSet) (in, out []crossRet) {
	c.Tree.Walk(c.Tree.Root(), component.Visitor{Leaf: func(idx int32) {
		if !c.Tree.IsRetFrontier(idx) {
			return
		}
		r := c.Tree.Label(idx)
		if s.Inner[r] != component.Cross {
			return
		}
		lf := s.LfBelow[r]
		if lf == component.NoLeaf {
			return
		}
		cr := crossRet{Ret: r, Leaf: lf}
		if B.Contains(lf) {
			in = append(in, cr)
		} else {
			out = append(out, cr)
		}
	}})

	return in, out
}

// commitSide flags each r in committed as INNER/super_deg=1 in the clone
// where it is resolved inside the component, and REVISED (decremented
// super_deg, renormalized) in the sibling clone where it is excluded. It
// then cuts the corresponding edges in each clone.
func commitSide(insideState, outsideState *State, compIdx int, committed []crossRet) {
	for _, cr := range committed {
		r := cr.Ret

		insideState.Inner[r] = component.Inner
		insideState.SuperDeg[r] = 1
		cutEdgesExcept(insideState, r, compIdx)

		outsideState.SuperDeg[r]--
		if outsideState.SuperDeg[r] <= 1 {
			outsideState.SuperDeg[r] = 1
			outsideState.Inner[r] = component.Inner
		} else {
			outsideState.Inner[r] = component.Cross
		}
		cutEdgeIn(outsideState, r, compIdx)
	}
}

// applyRepresentative sets the component's own visible leaf (lf_below[p]) to
// the first committed leaf, clears any other reticulation previously
// mirroring that same leaf, and clears lf_below for every just-committed
// reticulation, as the representative-leaf substitution step.
func applyRepresentative(s *State, p int, committed []crossRet) {
	if len(committed) == 0 {
		if p != component.RootComponent {
			s.LfBelow[p] = component.NoLeaf
		}

		return
	}
	rep := committed[0].Leaf
	for r, lf := range s.LfBelow {
		if lf == rep {
			s.LfBelow[r] = component.NoLeaf
		}
	}
	if p != component.RootComponent {
		s.LfBelow[p] = rep
	}
	for _, cr := range committed {
		s.LfBelow[cr.Ret] = component.NoLeaf
	}
}

// leavesAllWrongSide reports whether every leaf reachable from v (following
// only currently-live edges in s.Adj, and treating an untreated
// reticulation as ambiguous rather than conclusive) sits on the side
// opposite wantInB. An untreated reticulation makes the answer false
// immediately: such a node is still-live for the purpose of feasibility
// pruning.
func leavesAllWrongSide(n *network.Network, s *State, v int, wantInB bool, B *network.LeafSet) bool {
	switch n.Classify(v) {
	case network.Leaf:
		return B.Contains(v) != wantInB
	case network.Ret:
		lf := s.LfBelow[v]
		if lf == component.NoLeaf {
			return false
		}

		return B.Contains(lf) != wantInB
	default:
		for _, c := range n.Children(v) {
			if !s.Adj.Get(v, c) {
				continue
			}
			if !leavesAllWrongSide(n, s, c, wantInB, B) {
				return false
			}
		}

		return true
	}
}

// isFeasible walks upward from r through its (currently live) network
// parents, and at every TREE ancestor inspects its other live children: if
// any such sibling subtree is entirely composed of leaves opposite wantInB,
// the branch being tested can never reconcile with the commit and the clone
// is pruned. A RET or ROOT parent stops the walk along that path without
// deciding anything. Every sibling is
// inspected; the walk never returns early on the first TREE ancestor, since
// a later sibling can still veto feasibility.
func isFeasible(n *network.Network, s *State, r int, wantInB bool, B *network.LeafSet) bool {
	visited := make(map[int]bool)
	var walkUp func(v int) bool
	walkUp = func(v int) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for _, p := range n.Parents(v) {
			if !s.Adj.Get(p, v) {
				continue
			}
			switch n.Classify(p) {
			case network.Ret, network.Root:
				continue
			default: // Tree
				for _, sib := range n.Children(p) {
					if sib == v || !s.Adj.Get(p, sib) {
						continue
					}
					if leavesAllWrongSide(n, s, sib, wantInB, B) {
						return false
					}
				}
				if !walkUp(p) {
					return false
				}
			}
		}

		return true
	}

	return walkUp(r)
}

// contractB replaces every leaf in rep[1:] by rep[0] inside B, used when
// |lf_in| > 1 commits multiple reticulations to the same representative.
func contractB(B *network.LeafSet, rep []int) {
	if len(rep) < 2 {
		return
	}
	for _, l := range rep[1:] {
		B.Remove(l)
	}
	B.Add(rep[0])
}

// splitUnstable resolves an unstable component c (at index idx of s.Comps)
// by cloning the search state into two sibling branches and recursing into
// the remaining components.
func splitUnstable(d *driver, s *State, c *component.Component, idx int, B *network.LeafSet) (int, bool, error) {
	in, out := collectCross(s, c, B)

	if len(in) == B.Len() {
		if c.RetNode == component.RootComponent {
			return d.n.Root(), true, nil
		}

		return c.RetNode, true, nil
	}

	if len(in) == 0 && len(out) == 0 {
		if c.RetNode != component.RootComponent {
			cutEdgesExcept(s, c.RetNode, -1)
		}

		return runComponents(d, s, idx+1, B)
	}

	d.noBreak++

	plus := s.Clone()
	minus := s.Clone()

	commitSide(plus, minus, idx, in)
	commitSide(minus, plus, idx, out)

	applyRepresentative(plus, c.RetNode, in)
	applyRepresentative(minus, c.RetNode, out)

	plusFeasible := true
	for _, cr := range in {
		if !isFeasible(d.n, plus, cr.Ret, true, B) {
			plusFeasible = false

			break
		}
	}
	minusFeasible := true
	for _, cr := range out {
		if !isFeasible(d.n, minus, cr.Ret, false, B) {
			minusFeasible = false

			break
		}
	}

	if !plusFeasible && !minusFeasible {
		// Both clones pruned: a branch-local failure, not a fatal error — see
		// the note on ErrNotACluster's single point of return in ccp.Run.
		return 0, false, nil
	}

	if plusFeasible {
		if err := d.checkDeadline(); err != nil {
			return 0, false, err
		}
		bPlus := B.Clone()
		if len(in) > 1 {
			rep := make([]int, len(in))
			for i, cr := range in {
				rep[i] = cr.Leaf
			}
			contractB(bPlus, rep)
		}
		// A negative outcome from this clone is branch-local: ErrNotACluster
		// never escapes runComponents mid-recursion (see ccp.Run), so any err
		// here is a genuinely fatal error (e.g. context cancellation) and
		// must abort both branches; errors.Is guards that invariant rather
		// than assuming it silently.
		if v, ok, err := runComponents(d, plus, idx+1, bPlus); err != nil && !errors.Is(err, ErrNotACluster) {
			return 0, false, err
		} else if ok {
			return v, true, nil
		}
	}

	if minusFeasible {
		if err := d.checkDeadline(); err != nil {
			return 0, false, err
		}
		bMinus := B.Clone()
		if v, ok, err := runComponents(d, minus, idx+1, bMinus); err != nil && !errors.Is(err, ErrNotACluster) {
			return 0, false, err
		} else if ok {
			return v, true, nil
		}
	}

	// Neither feasible clone produced a witness: branch-local failure, not a
	// fatal error — see the note on ErrNotACluster's single point of return
	// in ccp.Run.
	return 0, false, nil
}
