// Package ccp implements the cluster-containment decision procedure:
// stable-component resolution, unstable-component splitting, and the
// driver that walks the tree-component list routing each component through
// one or the other.
package ccp

import (
	"github.com/nuslab/phylonet/component"
	"github.com/nuslab/phylonet/matrix"
	"github.com/nuslab/phylonet/network"
)

// State is the full mutable per-search table: the cloned tree-component
// list, the three reticulation arrays, and the cloned adjacency matrix. It
// belongs to exactly one in-progress CCP call; the splitter clones it in
// full before recursing into each sibling branch, so that neither branch
// can observe the other's edits.
type State struct {
	Comps    component.List
	Inner    []component.RetFlag
	SuperDeg []int
	LfBelow  []int
	Adj      *matrix.Bool
}

// NewState decomposes n and builds the initial search state.
func NewState(n *network.Network) (*State, error) {
	comps, err := component.Build(n)
	if err != nil {
		return nil, err
	}
	cls := component.Classify(n, comps)

	return &State{
		Comps:    comps,
		Inner:    cls.InnerFlag,
		SuperDeg: cls.SuperDeg,
		LfBelow:  cls.LfBelow,
		Adj:      n.CloneAdjacency(),
	}, nil
}

// Clone returns a State sharing nothing mutable with s: a fresh component
// list (each component's tree independently cloned), fresh reticulation
// arrays, and a fresh adjacency matrix.
func (s *State) Clone() *State {
	return &State{
		Comps:    s.Comps.Clone(),
		Inner:    append([]component.RetFlag(nil), s.Inner...),
		SuperDeg: append([]int(nil), s.SuperDeg...),
		LfBelow:  append([]int(nil), s.LfBelow...),
		Adj:      s.Adj.Clone(),
	}
}

// incomingEdge pairs a network parent vertex with the index, in s.Comps, of
// the tree component that reaches reticulation r through that parent.
type incomingEdge struct {
	Parent  int
	CompIdx int
}

// incomingEdges enumerates every current edge into reticulation r across
// the full component list, identifying which component owns each one.
func incomingEdges(comps component.List, r int) []incomingEdge {
	var out []incomingEdge
	for i, c := range comps {
		for _, fe := range c.Tree.FrontierEdges() {
			if !c.Tree.IsRetFrontier(fe.Node) || c.Tree.OrigLabel(fe.Node) != r {
				continue
			}
			parent := fe.Parent
			if parent == -1 {
				// Degenerate single-node component: its root IS the
				// frontier node, so the real network edge is from the
				// owning reticulation of this component.
				parent = c.RetNode
			}
			out = append(out, incomingEdge{Parent: parent, CompIdx: i})
		}
	}

	return out
}

// cutEdgesExcept removes, from s.Adj, every current edge into r except the
// one owned by keepCompIdx (or every edge, if keepCompIdx is -1).
func cutEdgesExcept(s *State, r int, keepCompIdx int) {
	for _, e := range incomingEdges(s.Comps, r) {
		if e.CompIdx == keepCompIdx {
			continue
		}
		s.Adj.Clear(e.Parent, r)
	}
}

// cutEdgeIn removes, from s.Adj, the edge into r owned by compIdx only.
func cutEdgeIn(s *State, r int, compIdx int) {
	for _, e := range incomingEdges(s.Comps, r) {
		if e.CompIdx == compIdx {
			s.Adj.Clear(e.Parent, r)
		}
	}
}
