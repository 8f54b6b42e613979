package intern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuslab/phylonet/intern"
)

func TestInterner_FirstSeenOrder(t *testing.T) {
	in := intern.New()
	assert.Equal(t, 0, in.Intern("b"))
	assert.Equal(t, 1, in.Intern("a"))
	assert.Equal(t, 0, in.Intern("b"), "re-interning an existing label returns its original index")
	assert.Equal(t, 2, in.Len())
	assert.Equal(t, []string{"b", "a"}, in.Labels())
}

func TestInterner_Lookup(t *testing.T) {
	in := intern.New()
	in.Intern("x")

	idx, ok := in.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	_, ok = in.Lookup("y")
	assert.False(t, ok)
}

func TestInterner_Empty(t *testing.T) {
	in := intern.New()
	assert.Equal(t, 0, in.Len())
	assert.Empty(t, in.Labels())
}
