package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nuslab/phylonet/matrix"
)

func TestBool_GetSetClear(t *testing.T) {
	m := matrix.NewBool(4)
	assert.False(t, m.Get(0, 1))

	m.Set(0, 1)
	assert.True(t, m.Get(0, 1))
	assert.False(t, m.Get(1, 0))

	m.Clear(0, 1)
	assert.False(t, m.Get(0, 1))
}

func TestBool_Clone_Independent(t *testing.T) {
	m := matrix.NewBool(3)
	m.Set(0, 2)

	cp := m.Clone()
	assert.True(t, cp.Get(0, 2))

	cp.Clear(0, 2)
	assert.False(t, cp.Get(0, 2))
	assert.True(t, m.Get(0, 2), "clearing the clone must not affect the original")

	m.Set(1, 1)
	assert.False(t, cp.Get(1, 1), "mutating the original after Clone must not affect the clone")
}

func TestBool_N(t *testing.T) {
	m := matrix.NewBool(5)
	assert.Equal(t, 5, m.N())
}
