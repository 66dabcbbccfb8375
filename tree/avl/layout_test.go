package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_Empty(t *testing.T) {
	l := New[int]().Layout()
	assert.NotNil(t, l)
	assert.Empty(t, l)
}

func TestLayout_Demo(t *testing.T) {
	tr := newDemoTree(t)

	// ids follow insertion order: 30 is 1, 20 is 2, ... 27 is 10
	want := []LayoutNode[int]{
		{ID: 8, Value: 5, Rank: 0, Depth: 3},
		{ID: 4, Value: 10, Rank: 1, Depth: 2, Left: 8, Right: 9},
		{ID: 9, Value: 15, Rank: 2, Depth: 3},
		{ID: 2, Value: 20, Rank: 3, Depth: 1, Left: 4, Right: 5},
		{ID: 5, Value: 25, Rank: 4, Depth: 2, Right: 10},
		{ID: 10, Value: 27, Rank: 5, Depth: 3},
		{ID: 1, Value: 30, Rank: 6, Depth: 0, Left: 2, Right: 3},
		{ID: 6, Value: 35, Rank: 7, Depth: 2},
		{ID: 3, Value: 40, Rank: 8, Depth: 1, Left: 6, Right: 7},
		{ID: 7, Value: 50, Rank: 9, Depth: 2},
	}
	assert.Equal(t, want, tr.Layout())
}

func TestLayout_IDsSurviveRotation(t *testing.T) {
	tr := New[int]()
	require.NoError(t, tr.InsertAll(1, 2, 3)) // RR at 1

	l := tr.Layout()
	require.Len(t, l, 3)
	assert.Equal(t, LayoutNode[int]{ID: 1, Value: 1, Rank: 0, Depth: 1}, l[0])
	assert.Equal(t, LayoutNode[int]{ID: 2, Value: 2, Rank: 1, Depth: 0, Left: 1, Right: 3}, l[1])
	assert.Equal(t, LayoutNode[int]{ID: 3, Value: 3, Rank: 2, Depth: 1}, l[2])
}

func TestLayout_Consistent(t *testing.T) {
	tr := BuildRandom(300, 99)
	for _, v := range []int{17, 150, 151, 299, 0} {
		_, err := tr.Remove(v)
		require.NoError(t, err)
	}

	l := tr.Layout()
	require.Len(t, l, tr.Size())

	byID := make(map[uint64]LayoutNode[int], len(l))
	values := tr.Values()
	roots := 0
	for i, n := range l {
		assert.Equal(t, i, n.Rank)
		assert.Equal(t, values[i], n.Value)
		assert.NotZero(t, n.ID)
		_, dup := byID[n.ID]
		assert.False(t, dup, "duplicate id %d", n.ID)
		byID[n.ID] = n
		if n.Depth == 0 {
			roots++
		}
	}
	assert.Equal(t, 1, roots)

	maxDepth := 0
	for _, n := range l {
		if n.Left != 0 {
			c := byID[n.Left]
			assert.Equal(t, n.Depth+1, c.Depth)
			assert.Less(t, c.Rank, n.Rank)
		}
		if n.Right != 0 {
			c := byID[n.Right]
			assert.Equal(t, n.Depth+1, c.Depth)
			assert.Greater(t, c.Rank, n.Rank)
		}
		maxDepth = max(maxDepth, n.Depth)
	}
	assert.Equal(t, tr.Height(), maxDepth)
}
