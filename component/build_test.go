package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuslab/phylonet/component"
	"github.com/nuslab/phylonet/network"
)

// buildRef builds the spec.md §8 reference network:
// 1->2, 1->3, 3->4, 4->5, 2->6, 3->6, 6->leaf1, 5->leaf2, 5->leaf3, 4->leaf4.
// Leaf order after Builder's leaves-first renumbering: leaf1=0, leaf2=1,
// leaf3=2, leaf4=3; non-leaf vertices keep first-seen relative order after
// that: "1"=4 (root), "2"=5, "3"=6, "4"=7, "5"=8, "6"=9 (the reticulation).
func buildRef(t *testing.T) *network.Network {
	t.Helper()
	b := network.NewBuilder()
	for _, e := range [][2]string{
		{"1", "2"}, {"1", "3"}, {"3", "4"}, {"4", "5"},
		{"2", "6"}, {"3", "6"},
		{"6", "leaf1"}, {"5", "leaf2"}, {"5", "leaf3"}, {"4", "leaf4"},
	} {
		b.AddEdge(e[0], e[1])
	}
	n, err := b.Build()
	require.NoError(t, err)

	return n
}

func TestBuild_ReferenceNetwork_TwoComponents(t *testing.T) {
	n := buildRef(t)
	comps, err := component.Build(n)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	// First component is owned by the single reticulation ("6" = index 9);
	// the synthetic root component is emitted last.
	assert.NotEqual(t, component.RootComponent, comps[0].RetNode)
	assert.Equal(t, network.Ret, n.Classify(comps[0].RetNode))
	assert.Equal(t, component.RootComponent, comps[1].RetNode)

	assert.Equal(t, 1, comps[0].Size)
	assert.Equal(t, 1, comps[0].NoTreeNode)
}

func TestBuild_NoReticulation_SingleRootComponent(t *testing.T) {
	b := network.NewBuilder()
	b.AddEdge("root", "a")
	b.AddEdge("root", "b")
	n, err := b.Build()
	require.NoError(t, err)

	comps, err := component.Build(n)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, component.RootComponent, comps[0].RetNode)
	assert.Equal(t, 3, comps[0].Size) // root + two leaves
}

func TestComponent_Clone_Independent(t *testing.T) {
	n := buildRef(t)
	comps, err := component.Build(n)
	require.NoError(t, err)

	cloned := comps.Clone()
	require.Len(t, cloned, len(comps))

	root := cloned[1].Tree.Root()
	cloned[1].Tree.SetLabel(root, 999)
	assert.NotEqual(t, comps[1].Tree.Label(comps[1].Tree.Root()), cloned[1].Tree.Label(root))
}
