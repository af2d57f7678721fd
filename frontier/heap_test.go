package frontier_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathfill/frontier"
)

func TestMinHeap_EmptyAccess(t *testing.T) {
	h := frontier.NewMinHeap[float64, int](0)
	assert.True(t, h.IsEmpty())

	_, err := h.ExtractMin()
	assert.ErrorIs(t, err, frontier.ErrEmpty)
	_, err = h.Peek()
	assert.ErrorIs(t, err, frontier.ErrEmpty)
}

func TestMinHeap_SingleEntry(t *testing.T) {
	var h frontier.MinHeap[int, string]
	h.Insert(5, "five")
	top, err := h.Peek()
	require.NoError(t, err)
	assert.Equal(t, frontier.Entry[int, string]{Key: 5, Value: "five"}, top)

	e, err := h.ExtractMin()
	require.NoError(t, err)
	assert.Equal(t, "five", e.Value)
	assert.True(t, h.IsEmpty())
}

// TestMinHeap_ExtractsNonDecreasing drains heaps of random keys, duplicates
// included, and checks the extraction order against a sorted copy.
func TestMinHeap_ExtractsNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, n := range []int{1, 2, 3, 10, 257} {
		h := frontier.NewMinHeap[int, int](n)
		keys := make([]int, n)
		for i := range keys {
			keys[i] = rng.Intn(20) // forces duplicate keys
			h.Insert(keys[i], i)
		}
		require.Equal(t, n, h.Len())

		sort.Ints(keys)
		got := make([]int, 0, n)
		for !h.IsEmpty() {
			e, err := h.ExtractMin()
			require.NoError(t, err)
			got = append(got, e.Key)
		}
		assert.Equal(t, keys, got, "n=%d", n)
	}
}

// TestMinHeap_DuplicateValues keeps stale entries for the same value; the
// caller is the one that filters them.
func TestMinHeap_DuplicateValues(t *testing.T) {
	h := frontier.NewMinHeap[float64, int](4)
	h.Insert(-0.25, 7)
	h.Insert(-0.5, 7)
	h.Insert(-0.1, 3)

	e, _ := h.ExtractMin()
	assert.Equal(t, frontier.Entry[float64, int]{Key: -0.5, Value: 7}, e)
	e, _ = h.ExtractMin()
	assert.Equal(t, frontier.Entry[float64, int]{Key: -0.25, Value: 7}, e)
	e, _ = h.ExtractMin()
	assert.Equal(t, 3, e.Value)
	assert.True(t, h.IsEmpty())
}

func TestMinHeap_InterleavedInsertExtract(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	h := frontier.NewMinHeap[int, struct{}](0)
	var model []int
	for i := 0; i < 2000; i++ {
		if rng.Intn(3) > 0 || len(model) == 0 {
			k := rng.Intn(1000)
			h.Insert(k, struct{}{})
			model = append(model, k)
			continue
		}
		sort.Ints(model)
		e, err := h.ExtractMin()
		require.NoError(t, err)
		assert.Equal(t, model[0], e.Key)
		model = model[1:]
	}
	assert.Equal(t, len(model), h.Len())
}
