// Package component builds the tree-component decomposition of a network,
// classifies each reticulation as INNER or CROSS, and exposes the
// arena-backed multi-labelled tree type used by the ccp package to resolve
// or split each component in turn.
package component

import "github.com/nuslab/phylonet/network"

// RootComponent is the sentinel RetNode value of the synthetic final
// component rooted at the network root.
const RootComponent = -1

// Component is one tree component of the decomposition: a maximal subtree
// rooted at a reticulation's child (or the network root), whose internal
// nodes are TREE/ROOT vertices and whose frontier is LEAF or RET vertices.
type Component struct {
	RetNode    int // parent reticulation index, or RootComponent
	Tree       *Tree
	Size       int // node count
	NoTreeNode int // count of non-RET descendants
}

// Clone returns a component with an independently cloned Tree; RetNode,
// Size and NoTreeNode are value-copied.
func (c *Component) Clone() *Component {
	return &Component{
		RetNode:    c.RetNode,
		Tree:       c.Tree.Clone(),
		Size:       c.Size,
		NoTreeNode: c.NoTreeNode,
	}
}

// List is the full decomposition, ordered by resolution-dependency level.
type List []*Component

// Clone returns a List whose components are all independently cloned.
func (l List) Clone() List {
	out := make(List, len(l))
	for i, c := range l {
		out[i] = c.Clone()
	}

	return out
}

// RetFlag classifies a reticulation's resolution state.
type RetFlag uint8

const (
	// Inner: all of the reticulation's parent-paths (skipping TREE nodes)
	// converge on one ancestor reticulation or the root.
	Inner RetFlag = iota
	// Cross: the reticulation's parent-paths reach distinct ancestors, so
	// it straddles more than one tree component.
	Cross
	// Revised: a transient state used during stable-component resolution.
	Revised
)

// NoLeaf is the sentinel LfBelow value meaning "not currently represented by
// any leaf".
const NoLeaf = -2

// ClassifyResult holds the three parallel per-reticulation tables that
// evolve throughout a CCP search. They are indexed by network vertex index
// (only reticulation and root indices are meaningful).
type ClassifyResult struct {
	InnerFlag []RetFlag
	SuperDeg  []int
	LfBelow   []int
}

// Classify computes the initial INNER/CROSS tagging, super-degree, and
// visible-leaf table for every reticulation in n, given its decomposition.
func Classify(n *network.Network, comps List) *ClassifyResult {
	nv := n.NumVertices()
	res := &ClassifyResult{
		InnerFlag: make([]RetFlag, nv),
		SuperDeg:  make([]int, nv),
		LfBelow:   make([]int, nv),
	}
	for v := 0; v < nv; v++ {
		res.LfBelow[v] = NoLeaf
	}

	for v := 0; v < nv; v++ {
		if n.Classify(v) != network.Ret {
			continue
		}
		res.InnerFlag[v] = classifyOne(n, v)
		child := n.Children(v)[0]
		if n.Classify(child) == network.Leaf {
			res.LfBelow[v] = child
		}
	}
	res.InnerFlag[n.Root()] = Cross

	for _, c := range comps {
		t := c.Tree
		t.Walk(t.Root(), Visitor{Leaf: func(idx int32) {
			if t.IsRetFrontier(idx) {
				res.SuperDeg[t.Label(idx)]++
			}
		}})
	}

	return res
}

// classifyOne walks up every parent of reticulation r, skipping TREE nodes,
// until reaching a RET or ROOT ancestor, and tags r INNER iff every such
// walk reaches the same ancestor.
func classifyOne(n *network.Network, r int) RetFlag {
	var ancestor = -1
	mixed := false
	var climb func(v int)
	climb = func(v int) {
		switch n.Classify(v) {
		case network.Ret, network.Root:
			if ancestor == -1 {
				ancestor = v
			} else if ancestor != v {
				mixed = true
			}
		default: // Tree: keep climbing through every parent
			for _, p := range n.Parents(v) {
				climb(p)
			}
		}
	}
	for _, p := range n.Parents(r) {
		climb(p)
	}
	if mixed {
		return Cross
	}

	return Inner
}
