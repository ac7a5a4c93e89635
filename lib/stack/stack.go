package stack

import (
	"errors"

	"github.com/emmonbear/containers/lib/list"
)

var ErrEmptyContainer = errors.New("[stack] empty container")

// Stack is a LIFO adapter over a doubly linked list: pushes and pops
// happen at the back. Not thread safe.
type Stack[T any] struct {
	l *list.List[T]
}

func NewStack[T any]() *Stack[T] {
	return &Stack[T]{l: list.NewList[T]()}
}

// NewStackOf builds a stack whose top is the last value given.
func NewStackOf[T any](values ...T) *Stack[T] {
	return &Stack[T]{l: list.NewListOf(values...)}
}

func (s *Stack[T]) Push(v T) {
	s.l.PushBack(v)
}

// Pop removes and returns the top value.
func (s *Stack[T]) Pop() (T, error) {
	v, err := s.l.PopBack()
	if err != nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return v, nil
}

// Top returns the top value without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.l.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return s.l.Back().Value, nil
}

func (s *Stack[T]) Len() int64 {
	return s.l.Len()
}

func (s *Stack[T]) Empty() bool {
	return s.l.Empty()
}

func (s *Stack[T]) Clear() {
	s.l.Clear()
}

func (s *Stack[T]) Swap(other *Stack[T]) {
	if other == nil || other == s {
		return
	}
	s.l.Swap(other.l)
}

func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{l: s.l.Clone()}
}

// Slice returns the values from bottom to top.
func (s *Stack[T]) Slice() []T {
	return s.l.Slice()
}
