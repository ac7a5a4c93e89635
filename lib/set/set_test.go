package set

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/emmonbear/containers/lib/tree"
)

func TestSetInsertAndTraversal(t *testing.T) {
	s := NewSet[int]()
	require.True(t, s.Empty())

	for _, k := range []int{10, 20, 30} {
		_, inserted := s.Insert(k)
		require.True(t, inserted)
	}
	require.Equal(t, []int{10, 20, 30}, s.Slice())
	require.Equal(t, int64(3), s.Len())
	require.False(t, s.Empty())
	require.True(t, s.Find(20).Valid())
	require.Equal(t, 20, s.Find(20).Key())
}

func TestSetDuplicateInsertIsIdempotent(t *testing.T) {
	s := NewSetOf(1, 2, 3)

	first := s.Find(2)
	it, inserted := s.Insert(2)
	require.False(t, inserted)
	require.True(t, it.Eq(first))
	require.Equal(t, int64(3), s.Len())

	// Inserting twice more changes nothing.
	_, inserted = s.Insert(2)
	require.False(t, inserted)
	require.Equal(t, []int{1, 2, 3}, s.Slice())
}

func TestSetRemove(t *testing.T) {
	s := NewSetOf(5, 3, 8)

	require.NoError(t, s.Remove(3))
	require.False(t, s.Contains(3))
	require.Equal(t, []int{5, 8}, s.Slice())

	require.ErrorIs(t, s.Remove(3), ErrKeyNotFound)

	it := s.Find(8)
	require.NoError(t, s.RemoveIter(it))
	require.Equal(t, []int{5}, s.Slice())

	require.ErrorIs(t, s.RemoveIter(s.End()), ErrInvalidIterator)
}

func TestSetMinMax(t *testing.T) {
	s := NewSet[string]()
	_, err := s.Min()
	require.ErrorIs(t, err, ErrEmptyContainer)
	_, err = s.Max()
	require.ErrorIs(t, err, ErrEmptyContainer)

	s = NewSetOf("pear", "apple", "quince")
	mn, err := s.Min()
	require.NoError(t, err)
	require.Equal(t, "apple", mn)
	mx, err := s.Max()
	require.NoError(t, err)
	require.Equal(t, "quince", mx)
}

func TestSetBoundsAndIteration(t *testing.T) {
	s := NewSetOf(10, 20, 30, 40)

	lb := s.LowerBound(25)
	require.Equal(t, 30, lb.Key())
	ub := s.UpperBound(30)
	require.Equal(t, 40, ub.Key())

	keys := make([]int, 0, 4)
	for it := s.Begin(); it.Valid(); it.Next() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{10, 20, 30, 40}, keys)

	keys = keys[:0]
	it := s.End()
	for it.Prev() {
		keys = append(keys, it.Key())
	}
	require.Equal(t, []int{40, 30, 20, 10}, keys)
}

func TestSetDescOrdering(t *testing.T) {
	s := NewSet[int](WithSetDesc())
	for _, k := range []int{3, 1, 2} {
		s.Insert(k)
	}
	require.Equal(t, []int{3, 2, 1}, s.Slice())
}

func TestSetCloneAndEqual(t *testing.T) {
	s := NewSetOf(lo.Range(50)...)
	cp := s.Clone()
	require.True(t, s.Equal(cp))

	require.NoError(t, cp.Remove(25))
	require.False(t, s.Equal(cp))
	require.True(t, s.Contains(25))
}

func TestSetMerge(t *testing.T) {
	a := NewSetOf(1, 3, 5)
	b := NewSetOf(3, 4, 6)

	a.Merge(b)
	require.Equal(t, []int{1, 3, 4, 5, 6}, a.Slice())
	// 3 collided and stays behind.
	require.Equal(t, []int{3}, b.Slice())
}

func TestSetClear(t *testing.T) {
	s := NewSetOf(1, 2, 3)
	s.Clear()
	require.True(t, s.Empty())
	require.Equal(t, int64(0), s.Len())

	_, inserted := s.Insert(9)
	require.True(t, inserted)
	require.Equal(t, []int{9}, s.Slice())
}

func TestSetAscendingInsertStaysBalanced(t *testing.T) {
	s := NewSet[int]()
	for i := 0; i < 1000; i++ {
		s.Insert(i)
		if i%97 == 0 {
			require.NoError(t, tree.InvariantValidate(s.t))
		}
	}
	require.NoError(t, tree.InvariantValidate(s.t))
	require.Equal(t, lo.Range(1000), s.Slice())
}

func TestSetMaxSize(t *testing.T) {
	s := NewSet[uint8]()
	require.Greater(t, s.MaxSize(), int64(0))
}
