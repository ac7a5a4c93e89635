package tree

import (
	"errors"

	"github.com/emmonbear/containers/lib/infra"
)

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

var (
	// ErrEmptyContainer reports an element access on an empty tree.
	ErrEmptyContainer = errors.New("[rbtree] empty container")
	// ErrKeyNotFound reports a lookup or removal of an absent key.
	ErrKeyNotFound = errors.New("[rbtree] key not found")
	// ErrInvalidIterator reports an erase through an end iterator, an
	// iterator of another tree or an iterator whose node has been erased.
	ErrInvalidIterator = errors.New("[rbtree] invalid iterator")
)

type RBNode[K infra.OrderedKey, V any] interface {
	Key() K
	Val() V
	HasKeyVal() bool
	Color() RBColor
	Left() RBNode[K, V]
	Right() RBNode[K, V]
	Parent() RBNode[K, V]
}

type RBTree[K infra.OrderedKey, V any] interface {
	Len() int64
	Empty() bool
	MaxSize() int64
	Root() RBNode[K, V]
	// Insert places key into the tree. Under the unique-key policy an
	// already present key is left untouched and the iterator of the
	// existing node is returned together with false. Under the dup-keys
	// policy every insert succeeds and equal keys stay contiguous in
	// insertion order.
	Insert(key K, val V) (Iterator[K, V], bool)
	// InsertOrAssign behaves like Insert but overwrites the value of an
	// existing key instead of leaving it untouched.
	InsertOrAssign(key K, val V) (Iterator[K, V], bool)
	// Remove detaches one occurrence of key (the leftmost one under the
	// dup-keys policy) and returns the detached entry.
	Remove(key K) (RBNode[K, V], error)
	// RemoveIter erases the node the iterator references.
	RemoveIter(it Iterator[K, V]) error
	RemoveMin() (RBNode[K, V], error)
	// Find returns the iterator of the leftmost node comparing equal to
	// key, or the end iterator.
	Find(key K) Iterator[K, V]
	Contains(key K) bool
	// LowerBound returns the iterator of the first node whose key is not
	// less than key; UpperBound the first strictly greater one.
	LowerBound(key K) Iterator[K, V]
	UpperBound(key K) Iterator[K, V]
	Min() (RBNode[K, V], error)
	Max() (RBNode[K, V], error)
	Begin() Iterator[K, V]
	End() Iterator[K, V]
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	// Merge moves the entries of other into the tree. Entries rejected by
	// the unique-key policy stay in other.
	Merge(other RBTree[K, V])
	Clone() RBTree[K, V]
	Release()
}
