package network

import (
	"fmt"
	"sort"

	"github.com/nuslab/phylonet/intern"
	"github.com/nuslab/phylonet/matrix"
)

// Builder ingests a stream of (parent, child) label pairs and produces a
// validated, leaves-first-renumbered Network. It is not safe for concurrent
// use; build one Network per Builder.
type Builder struct {
	labels *intern.Interner
	from   []int
	to     []int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{labels: intern.New()}
}

// AddEdge records a directed edge parentLabel -> childLabel. Unknown labels
// are interned on first mention, in first-seen order.
func (b *Builder) AddEdge(parentLabel, childLabel string) {
	p := b.labels.Intern(parentLabel)
	c := b.labels.Intern(childLabel)
	b.from = append(b.from, p)
	b.to = append(b.to, c)
}

// Build validates the accumulated edges and returns the canonical Network.
//
// Stage 1: compute raw in/out-degree and adjacency per interned index.
// Stage 2: classify every vertex; reject on the first invalid shape.
// Stage 3: renumber so leaves occupy [0, numLeaves) in lexicographic order.
// Stage 4: remap all per-vertex tables and the adjacency matrix into the new
// index space.
func (b *Builder) Build() (*Network, error) {
	rawN := b.labels.Len()
	rawLabels := b.labels.Labels()

	indeg := make([]int, rawN)
	outdeg := make([]int, rawN)
	rawChildren := make([][]int, rawN)
	rawParents := make([][]int, rawN)
	for i, p := range b.from {
		c := b.to[i]
		rawChildren[p] = append(rawChildren[p], c)
		rawParents[c] = append(rawParents[c], p)
		outdeg[p]++
		indeg[c]++
	}

	rootIdx, rootCount := -1, 0
	for v := 0; v < rawN; v++ {
		if indeg[v] == 0 {
			rootIdx = v
			rootCount++
		}
	}
	switch rootCount {
	case 0:
		return nil, fmt.Errorf("%w: %w", ErrBadTopology, ErrNoRoot)
	default:
		if rootCount > 1 {
			return nil, fmt.Errorf("%w: %w", ErrBadTopology, ErrMultipleRoots)
		}
	}

	rawKind := make([]VertexKind, rawN)
	for v := 0; v < rawN; v++ {
		switch {
		case indeg[v] == 0 && outdeg[v] > 1:
			rawKind[v] = Root
		case indeg[v] == 1 && outdeg[v] == 0:
			rawKind[v] = Leaf
		case indeg[v] == 1 && outdeg[v] >= 1:
			rawKind[v] = Tree
		case indeg[v] > 1 && outdeg[v] == 1:
			rawKind[v] = Ret
		case indeg[v] > 1 && outdeg[v] > 1:
			return nil, fmt.Errorf("%w: vertex %q: %w", ErrBadTopology, rawLabels[v], ErrMixedDegree)
		default:
			return nil, fmt.Errorf("%w: vertex %q (indeg=%d, outdeg=%d): %w",
				ErrBadTopology, rawLabels[v], indeg[v], outdeg[v], ErrMalformedVertex)
		}
	}

	// Leaves first, lexicographic by label; everything else keeps its
	// first-seen relative order after the leaf block.
	var leaves, rest []int
	for v := 0; v < rawN; v++ {
		if rawKind[v] == Leaf {
			leaves = append(leaves, v)
		} else {
			rest = append(rest, v)
		}
	}
	sort.SliceStable(leaves, func(i, j int) bool {
		return rawLabels[leaves[i]] < rawLabels[leaves[j]]
	})
	for i := 1; i < len(leaves); i++ {
		if rawLabels[leaves[i]] == rawLabels[leaves[i-1]] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLeafLabel, rawLabels[leaves[i]])
		}
	}

	newIndex := make([]int, rawN)
	order := append(append(make([]int, 0, rawN), leaves...), rest...)
	for newIdx, oldIdx := range order {
		newIndex[oldIdx] = newIdx
	}

	labels := make([]string, rawN)
	kind := make([]VertexKind, rawN)
	children := make([][]int, rawN)
	parents := make([][]int, rawN)
	adj := matrix.NewBool(rawN)
	for oldIdx, ni := range newIndex {
		labels[ni] = rawLabels[oldIdx]
		kind[ni] = rawKind[oldIdx]
		for _, c := range rawChildren[oldIdx] {
			children[ni] = append(children[ni], newIndex[c])
		}
		for _, p := range rawParents[oldIdx] {
			parents[ni] = append(parents[ni], newIndex[p])
		}
	}
	for i, p := range b.from {
		c := b.to[i]
		adj.Set(newIndex[p], newIndex[c])
	}

	return &Network{
		labels:    labels,
		kind:      kind,
		children:  children,
		parents:   parents,
		adj:       adj,
		numLeaves: len(leaves),
		root:      newIndex[rootIdx],
	}, nil
}
