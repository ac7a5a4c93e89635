package queue

import (
	"errors"

	"github.com/emmonbear/containers/lib/list"
)

var ErrEmptyContainer = errors.New("[queue] empty container")

// Queue is a FIFO adapter over a doubly linked list: pushes happen at
// the back, pops at the front. Not thread safe.
type Queue[T any] struct {
	l *list.List[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{l: list.NewList[T]()}
}

// NewQueueOf builds a queue whose front is the first value given.
func NewQueueOf[T any](values ...T) *Queue[T] {
	return &Queue[T]{l: list.NewListOf(values...)}
}

func (q *Queue[T]) Push(v T) {
	q.l.PushBack(v)
}

// Pop removes and returns the front value.
func (q *Queue[T]) Pop() (T, error) {
	v, err := q.l.PopFront()
	if err != nil {
		var zero T
		return zero, ErrEmptyContainer
	}
	return v, nil
}

// Front returns the oldest value without removing it.
func (q *Queue[T]) Front() (T, error) {
	if q.l.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.l.Front().Value, nil
}

// Back returns the most recently pushed value without removing it.
func (q *Queue[T]) Back() (T, error) {
	if q.l.Empty() {
		var zero T
		return zero, ErrEmptyContainer
	}
	return q.l.Back().Value, nil
}

func (q *Queue[T]) Len() int64 {
	return q.l.Len()
}

func (q *Queue[T]) Empty() bool {
	return q.l.Empty()
}

func (q *Queue[T]) Clear() {
	q.l.Clear()
}

func (q *Queue[T]) Swap(other *Queue[T]) {
	if other == nil || other == q {
		return
	}
	q.l.Swap(other.l)
}

func (q *Queue[T]) Clone() *Queue[T] {
	return &Queue[T]{l: q.l.Clone()}
}

// Slice returns the values from front to back.
func (q *Queue[T]) Slice() []T {
	return q.l.Slice()
}
