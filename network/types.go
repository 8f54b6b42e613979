// Package network defines the immutable rooted-network data model: vertex
// classification, parent/child adjacency, and the leaf-set bitmap used
// throughout cluster containment and soft Robinson-Foulds distance.
//
// A Network is built once from a stream of (parent, child) label pairs via
// Builder and is read-only afterwards; every mutable per-search table lives
// in ccp.State, which is cloned independently of the Network it points at.
package network

import "github.com/nuslab/phylonet/matrix"

// VertexKind classifies a vertex by its in-degree/out-degree shape.
type VertexKind uint8

const (
	// Root has in-degree 0 and out-degree > 1.
	Root VertexKind = iota
	// Tree has in-degree 1 and out-degree >= 1.
	Tree
	// Ret (reticulation) has in-degree > 1 and out-degree 1.
	Ret
	// Leaf has in-degree 1 and out-degree 0.
	Leaf
)

// String implements fmt.Stringer for diagnostics and test output.
func (k VertexKind) String() string {
	switch k {
	case Root:
		return "ROOT"
	case Tree:
		return "TREE"
	case Ret:
		return "RET"
	case Leaf:
		return "LEAF"
	default:
		return "UNKNOWN"
	}
}

// Network is the immutable, post-validation phylogenetic network. Vertices
// are identified by dense indices in [0, NumVertices); leaves occupy the
// first NumLeaves indices, sorted lexicographically by label.
type Network struct {
	labels   []string
	kind     []VertexKind
	children [][]int // insertion order
	parents  [][]int // insertion order
	adj      *matrix.Bool

	numLeaves int
	root      int
}

// NumVertices returns the total vertex count.
func (n *Network) NumVertices() int { return len(n.labels) }

// NumLeaves returns the number of leaves, which occupy indices [0, NumLeaves).
func (n *Network) NumLeaves() int { return n.numLeaves }

// Root returns the index of the unique root vertex.
func (n *Network) Root() int { return n.root }

// Label returns the label of vertex v.
func (n *Network) Label(v int) string { return n.labels[v] }

// Classify returns the vertex kind of v.
func (n *Network) Classify(v int) VertexKind { return n.kind[v] }

// Children returns v's children in insertion order. The returned slice must
// not be mutated by callers.
func (n *Network) Children(v int) []int { return n.children[v] }

// Parents returns v's parents in insertion order. The returned slice must
// not be mutated by callers.
func (n *Network) Parents(v int) []int { return n.parents[v] }

// HasEdge reports whether (u, v) is an edge, in O(1) via the adjacency matrix.
func (n *Network) HasEdge(u, v int) bool { return n.adj.Get(u, v) }

// CloneAdjacency returns an independent copy of the network's adjacency
// matrix, seeding the mutable per-search edge table a ccp.State clones and
// mutates (edge removals only) as a search branches.
func (n *Network) CloneAdjacency() *matrix.Bool { return n.adj.Clone() }

// RetNodes returns the reticulation indices in ascending index order. This is
// a structural accessor only: the resolution-dependency level order required
// by spec.md §4.2 is computed by component.Build (the order of the List it
// returns), which needs the full tree-component decomposition and therefore
// lives in the component package to avoid an import cycle.
func (n *Network) RetNodes() []int {
	out := make([]int, 0, len(n.labels)-n.numLeaves)
	for v := range n.labels {
		if n.kind[v] == Ret {
			out = append(out, v)
		}
	}

	return out
}
