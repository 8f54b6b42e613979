package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nuslab/phylonet/component"
	"github.com/nuslab/phylonet/network"
)

func TestClassify_ReferenceNetwork(t *testing.T) {
	n := buildRef(t)
	comps, err := component.Build(n)
	require.NoError(t, err)

	cls := component.Classify(n, comps)

	retIdx := comps[0].RetNode
	// Both of the reticulation's parents ("2" and "3") reach the same
	// ancestor (the root) through Tree nodes only, so it is Inner.
	assert.Equal(t, component.Inner, cls.InnerFlag[retIdx])
	// It appears as a frontier leaf of the root component twice (once via
	// each parent's branch), so its super-degree is 2.
	assert.Equal(t, 2, cls.SuperDeg[retIdx])
	// Its child is leaf1 (index 0).
	assert.Equal(t, 0, cls.LfBelow[retIdx])

	assert.Equal(t, component.Cross, cls.InnerFlag[n.Root()])
}

func TestClassify_NoLeafSentinel(t *testing.T) {
	b := network.NewBuilder()
	b.AddEdge("root", "a")
	b.AddEdge("root", "b")
	b.AddEdge("a", "r")
	b.AddEdge("b", "r")
	b.AddEdge("r", "mid")
	b.AddEdge("mid", "leaf1")
	n, err := b.Build()
	require.NoError(t, err)

	comps, err := component.Build(n)
	require.NoError(t, err)
	cls := component.Classify(n, comps)

	var retIdx = -1
	for v := 0; v < n.NumVertices(); v++ {
		if n.Classify(v) == network.Ret {
			retIdx = v
		}
	}
	require.NotEqual(t, -1, retIdx)
	// r's child is "mid", a Tree node, not a Leaf, so lf_below starts unset.
	assert.Equal(t, component.NoLeaf, cls.LfBelow[retIdx])
}
