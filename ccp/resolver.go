package ccp

import (
	"github.com/nuslab/phylonet/component"
	"github.com/nuslab/phylonet/network"
)

// isStable reports whether c's subtree contains a LEAF, or some RET-frontier
// node whose current inner flag is INNER with a known visible leaf.
func isStable(s *State, c *component.Component) bool {
	stable := false
	c.Tree.Walk(c.Tree.Root(), component.Visitor{Leaf: func(idx int32) {
		if stable {
			return
		}
		if !c.Tree.IsRetFrontier(idx) {
			stable = true // a network LEAF

			return
		}
		r := c.Tree.Label(idx)
		if s.Inner[r] == component.Inner && s.LfBelow[r] >= 0 {
			stable = true
		}
	}})

	return stable
}

// substitution holds the leaf bookkeeping accumulated by replaceRet.
type substitution struct {
	sleaves  []int // deduplicated stable leaves of T(C)
	ambig    []int
	optional []int
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}

	return false
}

func addUnique(xs *[]int, v int) {
	if !containsInt(*xs, v) {
		*xs = append(*xs, v)
	}
}

// replaceRet rewrites c's tree into a multi-labelled tree of leaves only,
// categorizing every reticulation-turned-leaf into the stable, ambiguous,
// or optional leaf sets the DP decision below consumes.
func replaceRet(s *State, c *component.Component) *substitution {
	sub := &substitution{}
	t := c.Tree
	var walk func(idx int32)
	walk = func(idx int32) {
		if !t.IsLeaf(idx) {
			for _, ch := range t.Children(idx) {
				walk(ch)
			}

			return
		}
		if !t.IsRetFrontier(idx) {
			addUnique(&sub.sleaves, t.Label(idx))

			return
		}
		r := t.Label(idx)
		lf := s.LfBelow[r]
		if lf < 0 {
			return // untreated, left as is
		}
		switch s.Inner[r] {
		case component.Inner:
			t.SetLabel(idx, lf)
			addUnique(&sub.sleaves, lf)
			addUnique(&sub.ambig, lf)
		case component.Cross:
			s.Inner[r] = component.Revised
			t.SetLabel(idx, lf)
			addUnique(&sub.optional, lf)
		case component.Revised:
			t.SetLabel(idx, lf)
			if s.SuperDeg[r] > 2 {
				addUnique(&sub.optional, lf)
			} else {
				addUnique(&sub.ambig, lf)
			}
		}
	}
	walk(t.Root())

	// Normalize every REVISED reticulation in the global table now that
	// substitution has finished.
	for r, flag := range s.Inner {
		if flag != component.Revised {
			continue
		}
		if s.SuperDeg[r] > 2 {
			s.SuperDeg[r]--
			s.Inner[r] = component.Cross
		} else {
			s.SuperDeg[r] = 1
			s.Inner[r] = component.Inner
		}
	}

	return sub
}

// markVmax performs the Vmax marking pass: for every excluded leaf (one in
// ambig or sleaves-minus-ambig, but not in B), mark the unique root-to-leaf
// path, then collect the unflagged children of flagged nodes (and the root
// itself, if nothing was flagged) as Vmax.
func markVmax(t *component.Tree, sub *substitution, B *network.LeafSet) []int32 {
	t.ResetFlags()
	excluded := append([]int(nil), sub.sleaves...)
	for _, l := range sub.ambig {
		addUnique(&excluded, l)
	}

	contains := func(idx int32, target int) bool {
		found := false
		t.Walk(idx, component.Visitor{Leaf: func(i int32) {
			if t.Label(i) == target {
				found = true
			}
		}})

		return found
	}

	var markPath func(idx int32, target int)
	markPath = func(idx int32, target int) {
		if t.IsLeaf(idx) {
			return
		}
		var hit int32 = -1
		count := 0
		for _, c := range t.Children(idx) {
			if contains(c, target) {
				hit = c
				count++
			}
		}
		if count == 1 {
			t.SetFlag(idx, 1)
			t.SetFlag(hit, 1)
			markPath(hit, target)
		} else if count > 1 {
			t.SetFlag(idx, 1)
		}
	}

	for _, l := range excluded {
		if B.Contains(l) {
			continue
		}
		markPath(t.Root(), l)
	}

	var vmax []int32
	anyFlagged := false
	for idx := int32(0); idx < int32(t.Len()); idx++ {
		if t.Flag(idx) == 1 {
			anyFlagged = true
		}
	}
	if !anyFlagged {
		return []int32{t.Root()}
	}
	var walk func(idx int32)
	walk = func(idx int32) {
		if t.Flag(idx) != 1 {
			return
		}
		for _, c := range t.Children(idx) {
			if t.Flag(c) == 1 {
				walk(c)
			} else {
				vmax = append(vmax, c)
			}
		}
	}
	walk(t.Root())

	return vmax
}

// bBelow reports whether every leaf of B is among the current labels below
// idx (ported from Is_Below: one-directional containment, not set equality
// — a Vmax candidate can carry extra leaf-label copies from an ambiguous
// INNER-reticulation substitution and still be the correct witness).
func bBelow(t *component.Tree, idx int32, B *network.LeafSet) bool {
	below := t.LeavesBelow(idx)
	seen := make(map[int]bool, len(below))
	for _, l := range below {
		seen[l] = true
	}
	for _, l := range B.Indices() {
		if !seen[l] {
			return false
		}
	}

	return true
}

// sliceSubset reports whether every element of xs is a member of B.
func sliceSubset(xs []int, B *network.LeafSet) bool {
	for _, x := range xs {
		if !B.Contains(x) {
			return false
		}
	}

	return true
}

// resolveStable resolves a stable component c, mutating s and B in place,
// and returns the witness vertex label on success.
func resolveStable(n *network.Network, s *State, c *component.Component, B *network.LeafSet) (int, bool, error) {
	sub := replaceRet(s, c)
	t := c.Tree

	// owner is the vertex reported when the whole component matches B: the
	// component's reticulation, or the network root for the root component.
	owner := c.RetNode
	if owner == component.RootComponent {
		owner = n.Root()
	}

	// (b) trivial case.
	if len(sub.sleaves) == 1 && len(sub.optional) == 0 {
		restoreComponent(t)
		if B.Len() == 1 && B.Contains(sub.sleaves[0]) {
			return owner, true, nil
		}
		if c.RetNode != component.RootComponent {
			s.LfBelow[c.RetNode] = sub.sleaves[0]
		}

		return 0, false, nil
	}

	vmax := markVmax(t, sub, B)

	var witness int32 = -1
	for _, v := range vmax {
		if bBelow(t, v, B) {
			witness = v

			break
		}
	}

	restoreComponent(t)

	if witness != -1 {
		crCleanup(s, c, sub, B, true)

		return t.Label(witness), true, nil
	}

	if sliceSubset(sub.sleaves, complementOf(B, n)) {
		// sleaves disjoint from B.
		crCleanup(s, c, sub, B, false)
		if c.RetNode != component.RootComponent {
			s.LfBelow[c.RetNode] = representativeOf(sub)
		}

		return 0, false, nil
	}

	if sliceSubset(sub.sleaves, B) {
		exact := true
		for _, l := range B.Indices() {
			if !containsInt(sub.sleaves, l) && !containsInt(sub.optional, l) {
				exact = false

				break
			}
		}
		if exact {
			return owner, true, nil
		}
		crCleanup(s, c, sub, B, true)
		for _, l := range sub.sleaves {
			B.Remove(l)
		}
		for _, l := range sub.optional {
			B.Remove(l)
		}
		B.Add(sub.sleaves[0])
		if c.RetNode != component.RootComponent {
			s.LfBelow[c.RetNode] = sub.sleaves[0]
		}

		return 0, false, nil
	}

	// sleaves straddles B and its complement: B is not a soft cluster
	// through this component. The search is not stopped here: this return
	// is the same (0, false, nil) as the propagating returns above, so
	// runComponents goes on to the next component with B and lf_below of
	// this component's reticulation left unchanged. ErrNotACluster is only
	// returned by the top-level Run.
	return 0, false, nil
}

// restoreComponent undoes every SetLabel applied by replaceRet, via Tree's
// own OrigLabel bookkeeping.
func restoreComponent(t *component.Tree) {
	for idx := int32(0); idx < int32(t.Len()); idx++ {
		if t.IsRetFrontier(idx) {
			t.RestoreLabel(idx)
		}
	}
}

// crCleanup applies cross-reticulation cleanup over every optional
// reticulation in sub. When in is true this is CR-in
// (cut other components for members of B, this component otherwise);
// when false it is the mirrored CR-out.
func crCleanup(s *State, c *component.Component, sub *substitution, B *network.LeafSet, in bool) {
	compIdx := indexOfComponent(s.Comps, c)
	for _, l := range sub.optional {
		r := retOfLeaf(s, l)
		if r < 0 {
			continue
		}
		member := B.Contains(l)
		cutOther := member == in
		if cutOther {
			cutEdgesExcept(s, r, compIdx)
		} else {
			cutEdgeIn(s, r, compIdx)
		}
		if in && member {
			s.LfBelow[r] = component.NoLeaf
		}
	}
}

// retOfLeaf finds the reticulation index whose LfBelow currently equals l,
// scanning the global table.
func retOfLeaf(s *State, l int) int {
	for r, lf := range s.LfBelow {
		if lf == l {
			return r
		}
	}

	return -1
}

func indexOfComponent(comps component.List, c *component.Component) int {
	for i, cc := range comps {
		if cc == c {
			return i
		}
	}

	return -1
}

func representativeOf(sub *substitution) int {
	if len(sub.sleaves) > 0 {
		return sub.sleaves[0]
	}

	return component.NoLeaf
}

// complementOf returns a LeafSet view of every leaf not in B.
func complementOf(B *network.LeafSet, n *network.Network) *network.LeafSet {
	idx := make([]int, 0, n.NumLeaves()-B.Len())
	for i := 0; i < n.NumLeaves(); i++ {
		if !B.Contains(i) {
			idx = append(idx, i)
		}
	}

	return network.NewLeafSet(n, idx)
}
