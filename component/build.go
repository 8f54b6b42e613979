package component

import (
	"sort"

	"github.com/nuslab/phylonet/network"
)

// Build decomposes n into its tree components and returns them in level
// order: every reticulation whose tree-component subtree contains no
// unresolved reticulation is emitted before any component that depends on
// it, and the synthetic component rooted at the network root is emitted
// last.
//
// Reticulations whose own component subtree contains no further
// reticulation — whether because every child is a LEAF, or because the
// subtree is a pure tree down to leaves with no RET frontier at all — are
// merged into a single base level here: both are vacuously "ready" since
// neither has an unresolved dependency, and nothing downstream distinguishes
// between them once a component is stable.
func Build(n *network.Network) (List, error) {
	byRet := make(map[int]*Component)
	for v := 0; v < n.NumVertices(); v++ {
		if n.Classify(v) != network.Ret {
			continue
		}
		byRet[v] = buildOne(n, n.Children(v)[0])
	}

	order, err := levelOrder(n, byRet)
	if err != nil {
		return nil, err
	}

	out := make(List, 0, len(order)+1)
	for _, r := range order {
		c := byRet[r]
		c.RetNode = r
		out = append(out, c)
	}
	root := buildOne(n, n.Root())
	root.RetNode = RootComponent
	out = append(out, root)

	return out, nil
}

// buildOne grows the tree component rooted at vertex root via bounded BFS,
// expanding only TREE/ROOT children and stopping at LEAF/RET frontier
// vertices.
func buildOne(n *network.Network, root int) *Component {
	t := newTree(root, n.Classify(root) == network.Ret, 1)
	size, noTree := 1, 0
	if n.Classify(root) != network.Ret {
		noTree = 1
	}

	type frame struct {
		arena  int32
		vertex int
	}
	queue := []frame{{t.Root(), root}}
	for len(queue) > 0 {
		f := queue[0]
		queue = queue[1:]
		switch n.Classify(f.vertex) {
		case network.Tree, network.Root:
			for _, c := range n.Children(f.vertex) {
				isRet := n.Classify(c) == network.Ret
				idx := t.addChild(f.arena, c, isRet)
				size++
				if !isRet {
					noTree++
				}
				if n.Classify(c) == network.Tree || n.Classify(c) == network.Root {
					queue = append(queue, frame{idx, c})
				}
			}
		default:
			// LEAF or RET: frontier, nothing to expand.
		}
	}

	return &Component{Tree: t, Size: size, NoTreeNode: noTree}
}

// dependencies returns the reticulation vertex indices appearing as frontier
// nodes of c's tree (the reticulations c's resolution depends on).
func dependencies(c *Component) []int {
	var deps []int
	c.Tree.Walk(c.Tree.Root(), Visitor{Leaf: func(idx int32) {
		if c.Tree.IsRetFrontier(idx) {
			deps = append(deps, c.Tree.Label(idx))
		}
	}})

	return deps
}

// levelOrder computes the resolution-dependency order over the
// reticulations in byRet.
func levelOrder(n *network.Network, byRet map[int]*Component) ([]int, error) {
	remaining := make([]int, 0, len(byRet))
	for r := range byRet {
		remaining = append(remaining, r)
	}
	sort.Ints(remaining) // deterministic base iteration order (first-appearance proxy)

	emitted := make(map[int]bool, len(remaining))
	var order []int
	for len(remaining) > 0 {
		var ready []int
		var next []int
		for _, r := range remaining {
			ok := true
			for _, dep := range dependencies(byRet[r]) {
				if !emitted[dep] {
					ok = false

					break
				}
			}
			if ok {
				ready = append(ready, r)
			} else {
				next = append(next, r)
			}
		}
		if len(ready) == 0 {
			return nil, ErrCyclic
		}
		sort.SliceStable(ready, func(i, j int) bool {
			return byRet[ready[i]].Size > byRet[ready[j]].Size
		})
		for _, r := range ready {
			emitted[r] = true
		}
		order = append(order, ready...)
		remaining = next
	}

	return order, nil
}
