// Package set provides ordered unique and multi-key collections backed
// by the red-black tree engine of lib/tree.
package set

import (
	"errors"

	"github.com/emmonbear/containers/lib/infra"
	"github.com/emmonbear/containers/lib/tree"
)

var (
	ErrEmptyContainer  = errors.New("[set] empty container")
	ErrKeyNotFound     = errors.New("[set] key not found")
	ErrInvalidIterator = errors.New("[set] invalid iterator")
)

type SetOpt func(*setOpts)

type setOpts struct {
	isDesc bool
}

// WithSetDesc orders the elements descending instead of ascending.
func WithSetDesc() SetOpt {
	return func(o *setOpts) {
		o.isDesc = true
	}
}

// Iterator is a bidirectional cursor over the sorted element sequence.
type Iterator[K infra.OrderedKey] struct {
	it tree.Iterator[K, struct{}]
}

// The read-only accessors take value receivers so they chain directly
// off Find and the bound lookups; only Next and Prev mutate the cursor.
func (it Iterator[K]) Valid() bool {
	return it.it.Valid()
}

func (it *Iterator[K]) Next() bool {
	return it.it.Next()
}

func (it *Iterator[K]) Prev() bool {
	return it.it.Prev()
}

func (it Iterator[K]) Key() K {
	return it.it.Key()
}

func (it Iterator[K]) Eq(other Iterator[K]) bool {
	return it.it.Eq(other.it)
}

// Set is an ordered collection of unique keys. Not safe for concurrent
// mutation; callers serialize externally.
type Set[K infra.OrderedKey] struct {
	t tree.RBTree[K, struct{}]
}

func NewSet[K infra.OrderedKey](opts ...SetOpt) *Set[K] {
	var o setOpts
	for _, opt := range opts {
		opt(&o)
	}
	treeOpts := make([]tree.RBTreeOpt[K, struct{}], 0, 1)
	if o.isDesc {
		treeOpts = append(treeOpts, tree.WithRBTreeDesc[K, struct{}]())
	}
	return &Set[K]{t: tree.NewRBTree[K, struct{}](treeOpts...)}
}

// NewSetOf builds a set holding the given keys; duplicates collapse.
func NewSetOf[K infra.OrderedKey](keys ...K) *Set[K] {
	s := NewSet[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// Insert adds key and reports whether it was absent. An already present
// key is left untouched and its position is returned.
func (s *Set[K]) Insert(key K) (Iterator[K], bool) {
	it, inserted := s.t.Insert(key, struct{}{})
	return Iterator[K]{it: it}, inserted
}

// Remove erases key, failing with ErrKeyNotFound when absent.
func (s *Set[K]) Remove(key K) error {
	_, err := s.t.Remove(key)
	return liftErr(err)
}

// RemoveIter erases the element the iterator references.
func (s *Set[K]) RemoveIter(it Iterator[K]) error {
	return liftErr(s.t.RemoveIter(it.it))
}

func (s *Set[K]) Contains(key K) bool {
	return s.t.Contains(key)
}

func (s *Set[K]) Find(key K) Iterator[K] {
	return Iterator[K]{it: s.t.Find(key)}
}

func (s *Set[K]) LowerBound(key K) Iterator[K] {
	return Iterator[K]{it: s.t.LowerBound(key)}
}

func (s *Set[K]) UpperBound(key K) Iterator[K] {
	return Iterator[K]{it: s.t.UpperBound(key)}
}

// Min returns the first key in order, failing on an empty set.
func (s *Set[K]) Min() (K, error) {
	n, err := s.t.Min()
	if err != nil {
		var zero K
		return zero, liftErr(err)
	}
	return n.Key(), nil
}

func (s *Set[K]) Max() (K, error) {
	n, err := s.t.Max()
	if err != nil {
		var zero K
		return zero, liftErr(err)
	}
	return n.Key(), nil
}

func (s *Set[K]) Len() int64 {
	return s.t.Len()
}

func (s *Set[K]) Empty() bool {
	return s.t.Empty()
}

func (s *Set[K]) MaxSize() int64 {
	return s.t.MaxSize()
}

func (s *Set[K]) Clear() {
	s.t.Release()
}

func (s *Set[K]) Clone() *Set[K] {
	return &Set[K]{t: s.t.Clone()}
}

// Merge moves the keys of other into s; keys already present stay in
// other.
func (s *Set[K]) Merge(other *Set[K]) {
	if other == nil {
		return
	}
	s.t.Merge(other.t)
}

// Equal reports whether both sets hold the same keys.
func (s *Set[K]) Equal(other *Set[K]) bool {
	if other == nil {
		return false
	}
	return tree.Equal(s.t, other.t)
}

func (s *Set[K]) Begin() Iterator[K] {
	return Iterator[K]{it: s.t.Begin()}
}

func (s *Set[K]) End() Iterator[K] {
	return Iterator[K]{it: s.t.End()}
}

func (s *Set[K]) Foreach(action func(idx int64, key K) bool) {
	s.t.Foreach(func(idx int64, _ tree.RBColor, key K, _ struct{}) bool {
		return action(idx, key)
	})
}

// Slice returns the keys in order.
func (s *Set[K]) Slice() []K {
	keys := make([]K, 0, s.t.Len())
	s.Foreach(func(_ int64, key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// liftErr rewrites engine sentinels into the package's own taxonomy.
func liftErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tree.ErrEmptyContainer):
		return ErrEmptyContainer
	case errors.Is(err, tree.ErrKeyNotFound):
		return ErrKeyNotFound
	case errors.Is(err, tree.ErrInvalidIterator):
		return ErrInvalidIterator
	default:
		return err
	}
}
