package list

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestListPushAndPop(t *testing.T) {
	l := NewList[int]()
	require.True(t, l.Empty())

	l.PushBack(2)
	l.PushBack(3)
	l.PushFront(1)

	require.Equal(t, int64(3), l.Len())
	require.Equal(t, []int{1, 2, 3}, l.Slice())

	v, err := l.PopFront()
	require.NoError(t, err)
	require.Equal(t, 1, v)

	v, err = l.PopBack()
	require.NoError(t, err)
	require.Equal(t, 3, v)

	require.Equal(t, []int{2}, l.Slice())
}

func TestListPopEmpty(t *testing.T) {
	l := NewList[string]()

	_, err := l.PopFront()
	require.ErrorIs(t, err, ErrEmptyContainer)
	_, err = l.PopBack()
	require.ErrorIs(t, err, ErrEmptyContainer)

	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
}

func TestListElementNavigation(t *testing.T) {
	l := NewListOf(10, 20, 30)

	e := l.Front()
	require.Equal(t, 10, e.Value)
	e = e.Next()
	require.Equal(t, 20, e.Value)
	require.Equal(t, 30, e.Next().Value)
	require.Nil(t, l.Back().Next())
	require.Nil(t, l.Front().Prev())
	require.Equal(t, 20, l.Back().Prev().Value)
}

func TestListInsertRelative(t *testing.T) {
	l := NewListOf(1, 4)

	mid := l.InsertAfter(2, l.Front())
	require.NotNil(t, mid)
	require.NotNil(t, l.InsertBefore(3, l.Back()))
	require.Equal(t, []int{1, 2, 3, 4}, l.Slice())

	// Elements of another list are rejected.
	other := NewListOf(9)
	require.Nil(t, l.InsertAfter(5, other.Front()))
	require.Nil(t, l.InsertBefore(5, nil))
}

func TestListRemove(t *testing.T) {
	l := NewListOf("a", "b", "c")

	mid := l.Front().Next()
	v, err := l.Remove(mid)
	require.NoError(t, err)
	require.Equal(t, "b", v)
	require.Equal(t, []string{"a", "c"}, l.Slice())

	// A detached element cannot be removed twice.
	_, err = l.Remove(mid)
	require.ErrorIs(t, err, ErrNotInList)

	other := NewListOf("x")
	_, err = l.Remove(other.Front())
	require.ErrorIs(t, err, ErrNotInList)
}

func TestListForeach(t *testing.T) {
	l := NewListOf(lo.Range(6)...)

	var seen []int
	l.Foreach(func(idx int64, v int) bool {
		require.Equal(t, int64(v), idx)
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{0, 1, 2, 3}, seen)

	seen = seen[:0]
	l.ReverseForeach(func(idx int64, v int) bool {
		seen = append(seen, v)
		return true
	})
	require.Equal(t, []int{5, 4, 3, 2, 1, 0}, seen)
}

func TestListRemoveDuringForeach(t *testing.T) {
	l := NewListOf(0, 1, 2, 3)

	l.Foreach(func(idx int64, v int) bool {
		if v%2 == 0 {
			front := l.Front()
			for front.Value != v {
				front = front.Next()
			}
			_, err := l.Remove(front)
			require.NoError(t, err)
		}
		return true
	})
	require.Equal(t, []int{1, 3}, l.Slice())
}

func TestListSwap(t *testing.T) {
	a := NewListOf(1, 2)
	b := NewListOf(3, 4, 5)
	held := a.Front()

	a.Swap(b)
	require.Equal(t, []int{3, 4, 5}, a.Slice())
	require.Equal(t, []int{1, 2}, b.Slice())

	// Ownership follows the contents across the swap.
	v, err := b.Remove(held)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	_, err = a.Remove(held)
	require.ErrorIs(t, err, ErrNotInList)
}

func TestListCloneIsIndependent(t *testing.T) {
	l := NewListOf(1, 2, 3)
	cp := l.Clone()

	cp.PushBack(4)
	require.Equal(t, []int{1, 2, 3}, l.Slice())
	require.Equal(t, []int{1, 2, 3, 4}, cp.Slice())
}

func TestListClear(t *testing.T) {
	l := NewListOf(1, 2, 3)
	held := l.Front()

	l.Clear()
	require.True(t, l.Empty())
	require.Nil(t, held.Next())

	l.PushBack(7)
	require.Equal(t, []int{7}, l.Slice())
}
