package set

import (
	"github.com/emmonbear/containers/lib/infra"
	"github.com/emmonbear/containers/lib/tree"
)

// MultiSet is an ordered collection permitting duplicate keys. Equal
// keys stay contiguous in insertion order; the rebalancing discipline is
// the same as for Set.
type MultiSet[K infra.OrderedKey] struct {
	t tree.RBTree[K, struct{}]
}

func NewMultiSet[K infra.OrderedKey](opts ...SetOpt) *MultiSet[K] {
	var o setOpts
	for _, opt := range opts {
		opt(&o)
	}
	treeOpts := []tree.RBTreeOpt[K, struct{}]{
		tree.WithRBTreeDupKeys[K, struct{}](),
	}
	if o.isDesc {
		treeOpts = append(treeOpts, tree.WithRBTreeDesc[K, struct{}]())
	}
	return &MultiSet[K]{t: tree.NewRBTree[K, struct{}](treeOpts...)}
}

func NewMultiSetOf[K infra.OrderedKey](keys ...K) *MultiSet[K] {
	s := NewMultiSet[K]()
	for _, k := range keys {
		s.Insert(k)
	}
	return s
}

// Insert always succeeds; equal keys chain behind the existing run.
func (s *MultiSet[K]) Insert(key K) Iterator[K] {
	it, _ := s.t.Insert(key, struct{}{})
	return Iterator[K]{it: it}
}

// Remove erases a single occurrence of key, the leftmost one.
func (s *MultiSet[K]) Remove(key K) error {
	_, err := s.t.Remove(key)
	return liftErr(err)
}

// RemoveAll erases every occurrence of key and reports how many were
// removed.
func (s *MultiSet[K]) RemoveAll(key K) int64 {
	removed := int64(0)
	for {
		if _, err := s.t.Remove(key); err != nil {
			return removed
		}
		removed++
	}
}

func (s *MultiSet[K]) RemoveIter(it Iterator[K]) error {
	return liftErr(s.t.RemoveIter(it.it))
}

// Count walks the contiguous equal-key run starting at the lower bound.
func (s *MultiSet[K]) Count(key K) int64 {
	n := int64(0)
	for it := s.t.LowerBound(key); it.Valid() && it.Key() == key; it.Next() {
		n++
	}
	return n
}

func (s *MultiSet[K]) Contains(key K) bool {
	return s.t.Contains(key)
}

// Find returns the first occurrence of key in order.
func (s *MultiSet[K]) Find(key K) Iterator[K] {
	return Iterator[K]{it: s.t.Find(key)}
}

func (s *MultiSet[K]) LowerBound(key K) Iterator[K] {
	return Iterator[K]{it: s.t.LowerBound(key)}
}

func (s *MultiSet[K]) UpperBound(key K) Iterator[K] {
	return Iterator[K]{it: s.t.UpperBound(key)}
}

func (s *MultiSet[K]) Min() (K, error) {
	n, err := s.t.Min()
	if err != nil {
		var zero K
		return zero, liftErr(err)
	}
	return n.Key(), nil
}

func (s *MultiSet[K]) Max() (K, error) {
	n, err := s.t.Max()
	if err != nil {
		var zero K
		return zero, liftErr(err)
	}
	return n.Key(), nil
}

func (s *MultiSet[K]) Len() int64 {
	return s.t.Len()
}

func (s *MultiSet[K]) Empty() bool {
	return s.t.Empty()
}

func (s *MultiSet[K]) MaxSize() int64 {
	return s.t.MaxSize()
}

func (s *MultiSet[K]) Clear() {
	s.t.Release()
}

func (s *MultiSet[K]) Clone() *MultiSet[K] {
	return &MultiSet[K]{t: s.t.Clone()}
}

// Merge moves every occurrence out of other; duplicates are always
// accepted, so other always drains.
func (s *MultiSet[K]) Merge(other *MultiSet[K]) {
	if other == nil {
		return
	}
	s.t.Merge(other.t)
}

func (s *MultiSet[K]) Equal(other *MultiSet[K]) bool {
	if other == nil {
		return false
	}
	return tree.Equal(s.t, other.t)
}

func (s *MultiSet[K]) Begin() Iterator[K] {
	return Iterator[K]{it: s.t.Begin()}
}

func (s *MultiSet[K]) End() Iterator[K] {
	return Iterator[K]{it: s.t.End()}
}

func (s *MultiSet[K]) Foreach(action func(idx int64, key K) bool) {
	s.t.Foreach(func(idx int64, _ tree.RBColor, key K, _ struct{}) bool {
		return action(idx, key)
	})
}

func (s *MultiSet[K]) Slice() []K {
	keys := make([]K, 0, s.t.Len())
	s.Foreach(func(_ int64, key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
