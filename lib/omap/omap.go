// Package omap provides an ordered map backed by the red-black tree
// engine of lib/tree. Keys are kept sorted by the configured ordering
// and every operation stays O(log n).
package omap

import (
	"errors"

	"github.com/emmonbear/containers/lib/infra"
	"github.com/emmonbear/containers/lib/tree"
)

var (
	ErrEmptyContainer  = errors.New("[omap] empty container")
	ErrKeyNotFound     = errors.New("[omap] key not found")
	ErrInvalidIterator = errors.New("[omap] invalid iterator")
)

type MapOpt func(*mapOpts)

type mapOpts struct {
	isDesc bool
}

// WithMapDesc orders the keys descending instead of ascending.
func WithMapDesc() MapOpt {
	return func(o *mapOpts) {
		o.isDesc = true
	}
}

// Pair is one key-value entry of a Map.
type Pair[K infra.OrderedKey, V any] struct {
	Key K
	Val V
}

// Iterator is a bidirectional cursor over the sorted entry sequence.
type Iterator[K infra.OrderedKey, V any] struct {
	it tree.Iterator[K, V]
}

// The read-only accessors take value receivers so they chain directly
// off Find and the bound lookups; only Next and Prev mutate the cursor.
func (it Iterator[K, V]) Valid() bool {
	return it.it.Valid()
}

func (it *Iterator[K, V]) Next() bool {
	return it.it.Next()
}

func (it *Iterator[K, V]) Prev() bool {
	return it.it.Prev()
}

func (it Iterator[K, V]) Key() K {
	return it.it.Key()
}

func (it Iterator[K, V]) Val() V {
	return it.it.Val()
}

func (it Iterator[K, V]) Eq(other Iterator[K, V]) bool {
	return it.it.Eq(other.it)
}

// Map is an ordered collection of unique keys with mapped values. Not
// safe for concurrent mutation; callers serialize externally.
type Map[K infra.OrderedKey, V any] struct {
	t tree.RBTree[K, V]
}

func NewMap[K infra.OrderedKey, V any](opts ...MapOpt) *Map[K, V] {
	var o mapOpts
	for _, opt := range opts {
		opt(&o)
	}
	treeOpts := make([]tree.RBTreeOpt[K, V], 0, 1)
	if o.isDesc {
		treeOpts = append(treeOpts, tree.WithRBTreeDesc[K, V]())
	}
	return &Map[K, V]{t: tree.NewRBTree[K, V](treeOpts...)}
}

// NewMapOf builds a map holding the given pairs; on key collision the
// first pair wins, matching Insert.
func NewMapOf[K infra.OrderedKey, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, p := range pairs {
		m.Insert(p.Key, p.Val)
	}
	return m
}

// Insert adds the entry and reports whether the key was absent. An
// already present key keeps its value and its position is returned.
func (m *Map[K, V]) Insert(key K, val V) (Iterator[K, V], bool) {
	it, inserted := m.t.Insert(key, val)
	return Iterator[K, V]{it: it}, inserted
}

// Assign inserts the entry or overwrites the value of an existing key.
func (m *Map[K, V]) Assign(key K, val V) Iterator[K, V] {
	it, _ := m.t.InsertOrAssign(key, val)
	return Iterator[K, V]{it: it}
}

// Get returns the mapped value and whether the key is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	it := m.t.Find(key)
	if !it.Valid() {
		var zero V
		return zero, false
	}
	return it.Val(), true
}

// At returns the mapped value, failing with ErrKeyNotFound on a miss.
func (m *Map[K, V]) At(key K) (V, error) {
	it := m.t.Find(key)
	if !it.Valid() {
		var zero V
		return zero, ErrKeyNotFound
	}
	return it.Val(), nil
}

// GetOrInsert returns the mapped value of key, inserting def under it
// first when the key is absent. It reports whether an insert happened.
// This is the operator[]-style accessor of the original interface.
func (m *Map[K, V]) GetOrInsert(key K, def V) (V, bool) {
	it, inserted := m.t.Insert(key, def)
	return it.Val(), inserted
}

// Remove erases key, failing with ErrKeyNotFound when absent.
func (m *Map[K, V]) Remove(key K) error {
	_, err := m.t.Remove(key)
	return liftErr(err)
}

// RemoveIter erases the entry the iterator references.
func (m *Map[K, V]) RemoveIter(it Iterator[K, V]) error {
	return liftErr(m.t.RemoveIter(it.it))
}

func (m *Map[K, V]) Contains(key K) bool {
	return m.t.Contains(key)
}

func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.t.Find(key)}
}

func (m *Map[K, V]) LowerBound(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.t.LowerBound(key)}
}

func (m *Map[K, V]) UpperBound(key K) Iterator[K, V] {
	return Iterator[K, V]{it: m.t.UpperBound(key)}
}

// Min returns the first entry in order, failing on an empty map.
func (m *Map[K, V]) Min() (Pair[K, V], error) {
	n, err := m.t.Min()
	if err != nil {
		return Pair[K, V]{}, liftErr(err)
	}
	return Pair[K, V]{Key: n.Key(), Val: n.Val()}, nil
}

func (m *Map[K, V]) Max() (Pair[K, V], error) {
	n, err := m.t.Max()
	if err != nil {
		return Pair[K, V]{}, liftErr(err)
	}
	return Pair[K, V]{Key: n.Key(), Val: n.Val()}, nil
}

func (m *Map[K, V]) Len() int64 {
	return m.t.Len()
}

func (m *Map[K, V]) Empty() bool {
	return m.t.Empty()
}

func (m *Map[K, V]) MaxSize() int64 {
	return m.t.MaxSize()
}

func (m *Map[K, V]) Clear() {
	m.t.Release()
}

func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{t: m.t.Clone()}
}

// Merge moves the entries of other into m; keys already present stay in
// other with their values.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	if other == nil {
		return
	}
	m.t.Merge(other.t)
}

// EqualFunc reports whether both maps hold the same entries in the same
// order, comparing values with valEq.
func (m *Map[K, V]) EqualFunc(other *Map[K, V], valEq func(x, y V) bool) bool {
	if other == nil {
		return false
	}
	return tree.EqualFunc(m.t, other.t, valEq)
}

// Equal reports whether both maps hold the same entries in the same
// order, for comparable value types.
func Equal[K infra.OrderedKey, V comparable](a, b *Map[K, V]) bool {
	if a == nil || b == nil {
		return a == b
	}
	return tree.Equal(a.t, b.t)
}

func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{it: m.t.Begin()}
}

func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{it: m.t.End()}
}

func (m *Map[K, V]) Foreach(action func(idx int64, key K, val V) bool) {
	m.t.Foreach(func(idx int64, _ tree.RBColor, key K, val V) bool {
		return action(idx, key, val)
	})
}

// Keys returns the keys in order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.t.Len())
	m.Foreach(func(_ int64, key K, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns the values in key order.
func (m *Map[K, V]) Values() []V {
	vals := make([]V, 0, m.t.Len())
	m.Foreach(func(_ int64, _ K, val V) bool {
		vals = append(vals, val)
		return true
	})
	return vals
}

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
