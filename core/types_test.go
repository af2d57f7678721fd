package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/pathfill/core"
)

func TestCheckVertex(t *testing.T) {
	assert.NoError(t, core.CheckVertex(0, 1))
	assert.NoError(t, core.CheckVertex(4, 5))

	for _, v := range []int{-1, 5, 100} {
		err := core.CheckVertex(v, 5)
		assert.ErrorIs(t, err, core.ErrInvalidVertex, "v=%d", v)
	}
	// empty graph has no valid index
	assert.ErrorIs(t, core.CheckVertex(0, 0), core.ErrInvalidVertex)
}
