package component

// treeNode is one node of an arena-backed multiway tree. Children are
// indices into the owning Tree's node slice rather than pointers, so that
// Tree.Clone is a small set of slice copies instead of a recursive pointer
// walk.
type treeNode struct {
	label    int     // current label: a network vertex index, or a leaf index after substitution
	origLabel int    // label at construction time, never overwritten; identifies the node across substitution
	flag     uint8   // Vmax marking flag; reset to 0 by ResetFlags before each decision
	isRet    bool    // true iff this node was originally a reticulation frontier (even after relabeling)
	children []int32 // indices into the arena; empty for frontier (LEAF or RET) nodes
}

// Tree is an arena-backed multiway tree: the multi-labelled tree T(C) of a
// tree component, or a working copy of it during resolution.
type Tree struct {
	nodes []treeNode
	root  int32
}

// newTree allocates a Tree with capacity for n nodes and a single root node.
func newTree(rootLabel int, rootIsRet bool, n int) *Tree {
	t := &Tree{nodes: make([]treeNode, 1, n)}
	t.nodes[0] = treeNode{label: rootLabel, origLabel: rootLabel, isRet: rootIsRet}
	t.root = 0

	return t
}

// addChild appends a new leaf arena node as a child of parent and returns its
// index.
func (t *Tree) addChild(parent int32, label int, isRet bool) int32 {
	idx := int32(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{label: label, origLabel: label, isRet: isRet})
	t.nodes[parent].children = append(t.nodes[parent].children, idx)

	return idx
}

// Root returns the arena index of the tree's root node.
func (t *Tree) Root() int32 { return t.root }

// Label returns the current label stored at node idx.
func (t *Tree) Label(idx int32) int { return t.nodes[idx].label }

// SetLabel overwrites the label stored at node idx (used by leaf
// substitution and by rebuild to restore it).
func (t *Tree) SetLabel(idx int32, label int) { t.nodes[idx].label = label }

// OrigLabel returns the label node idx was constructed with, which never
// changes across substitution. RestoreLabel rewrites Label(idx) back to it
// (ported from Rebuilt_Component, simplified: since every node remembers its
// own original label directly, rebuild needs no rpl_comp lookup table keyed
// by a possibly-colliding leaf value).
func (t *Tree) OrigLabel(idx int32) int { return t.nodes[idx].origLabel }

// RestoreLabel undoes a prior SetLabel, restoring the node's original label.
func (t *Tree) RestoreLabel(idx int32) { t.nodes[idx].label = t.nodes[idx].origLabel }

// IsRetFrontier reports whether node idx was originally a reticulation
// frontier node, regardless of any relabeling since.
func (t *Tree) IsRetFrontier(idx int32) bool { return t.nodes[idx].isRet }

// IsLeaf reports whether node idx has no children, i.e. it is a frontier
// node (originally a network LEAF or RET).
func (t *Tree) IsLeaf(idx int32) bool { return len(t.nodes[idx].children) == 0 }

// Children returns the arena indices of idx's children. Callers must not
// mutate the returned slice.
func (t *Tree) Children(idx int32) []int32 { return t.nodes[idx].children }

// Flag returns the Vmax-marking flag of node idx.
func (t *Tree) Flag(idx int32) uint8 { return t.nodes[idx].flag }

// SetFlag sets the Vmax-marking flag of node idx.
func (t *Tree) SetFlag(idx int32, f uint8) { t.nodes[idx].flag = f }

// ResetFlags zeroes every node's flag, ahead of a fresh Vmax marking pass.
func (t *Tree) ResetFlags() {
	for i := range t.nodes {
		t.nodes[i].flag = 0
	}
}

// Len returns the number of arena nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Clone returns a deep copy whose node slice shares no backing array with t.
// Child index slices are copied too, since leaf substitution and marking
// never change tree shape in place (they only relabel/flag), but a cloned
// search branch must still be free to do so without affecting its sibling.
func (t *Tree) Clone() *Tree {
	nodes := make([]treeNode, len(t.nodes))
	for i, n := range t.nodes {
		nodes[i] = n
		if len(n.children) > 0 {
			nodes[i].children = make([]int32, len(n.children))
			copy(nodes[i].children, n.children)
		}
	}

	return &Tree{nodes: nodes, root: t.root}
}

// Visitor holds the callbacks for Walk, the shared leaf-enumerating
// traversal used by the stability check, super-degree counting, the
// leaf-containment test of Vmax marking and the DP leaf-set scan. Leaf
// substitution, Vmax path marking and label restore do not use Walk; they
// run their own recursion or arena loop.
type Visitor struct {
	// Leaf is called for every frontier node (network LEAF or RET, whether
	// or not it has been relabeled).
	Leaf func(idx int32)
	// Internal is called for every non-frontier node, after its children
	// have already been visited (post-order). Walk always visits every node.
	Internal func(idx int32)
}

// Walk performs a full post-order traversal of the subtree rooted at idx.
func (t *Tree) Walk(idx int32, v Visitor) {
	n := &t.nodes[idx]
	if len(n.children) == 0 {
		if v.Leaf != nil {
			v.Leaf(idx)
		}

		return
	}
	for _, c := range n.children {
		t.Walk(c, v)
	}
	if v.Internal != nil {
		v.Internal(idx)
	}
}

// LeavesBelow returns the current labels of every frontier node in the
// subtree rooted at idx (ported from Is_Below's leaf enumeration).
func (t *Tree) LeavesBelow(idx int32) []int {
	var out []int
	t.Walk(idx, Visitor{Leaf: func(i int32) { out = append(out, t.nodes[i].label) }})

	return out
}

// FrontierEdge pairs a frontier arena node with the network vertex label of
// its tree-internal parent (-1 if the node is itself the tree's root, i.e. a
// degenerate single-node component).
type FrontierEdge struct {
	Node   int32
	Parent int
	Label  int
}

// FrontierEdges returns one FrontierEdge per frontier node in the tree,
// used to recover which network edge a RET-frontier leaf corresponds to
// when the splitter commits or cuts edges (spec.md §4.5's Modify family).
func (t *Tree) FrontierEdges() []FrontierEdge {
	var out []FrontierEdge
	var walk func(idx int32, parentLabel int)
	walk = func(idx int32, parentLabel int) {
		n := &t.nodes[idx]
		if len(n.children) == 0 {
			out = append(out, FrontierEdge{Node: idx, Parent: parentLabel, Label: n.label})

			return
		}
		for _, c := range n.children {
			walk(c, n.label)
		}
	}
	walk(t.root, -1)

	return out
}
