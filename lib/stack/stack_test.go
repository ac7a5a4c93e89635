package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackLIFO(t *testing.T) {
	s := NewStack[int]()
	require.True(t, s.Empty())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, int64(3), s.Len())

	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, 3, top)
	require.Equal(t, int64(3), s.Len())

	for _, want := range []int{3, 2, 1} {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
	require.True(t, s.Empty())
}

func TestStackEmptyErrors(t *testing.T) {
	s := NewStack[string]()
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrEmptyContainer)
	_, err = s.Top()
	require.ErrorIs(t, err, ErrEmptyContainer)
}

func TestStackOfTopIsLastValue(t *testing.T) {
	s := NewStackOf("a", "b", "c")
	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, "c", top)
	require.Equal(t, []string{"a", "b", "c"}, s.Slice())
}

func TestStackSwap(t *testing.T) {
	a := NewStackOf(1, 2)
	b := NewStackOf(7)

	a.Swap(b)
	require.Equal(t, []int{7}, a.Slice())
	require.Equal(t, []int{1, 2}, b.Slice())

	a.Swap(a) // self swap is a no-op
	require.Equal(t, []int{7}, a.Slice())
}

func TestStackCloneAndClear(t *testing.T) {
	s := NewStackOf(1, 2, 3)
	cp := s.Clone()

	s.Clear()
	require.True(t, s.Empty())
	require.Equal(t, []int{1, 2, 3}, cp.Slice())
}
