package tree

import "github.com/emmonbear/containers/lib/infra"

// Iterator is a bidirectional cursor over the in-order node sequence of
// one tree. The zero node denotes the end position, one step past the
// maximum. Moving and reading never mutate the tree, so any number of
// iterators may walk it at once.
//
// Invalidation policy: erasing a node invalidates only the iterators
// referencing the physically removed node. When a node with two children
// is erased, the borrowed neighbor's entry is copied into its position;
// an iterator parked on that position stays usable and observes the
// surviving entry.
type Iterator[K infra.OrderedKey, V any] struct {
	tree *rbTree[K, V]
	node *rbNode[K, V]
}

// Valid reports whether the iterator references a live node. End
// iterators and iterators whose node has been erased are invalid.
// The read-only accessors take value receivers so they chain directly
// off Find and the bound lookups; only Next and Prev mutate the cursor.
func (it Iterator[K, V]) Valid() bool {
	return it.node.HasKeyVal()
}

// Next advances to the in-order successor and reports whether the
// iterator still references a node. Advancing past the maximum parks the
// iterator at end; advancing an end iterator is a no-op.
func (it *Iterator[K, V]) Next() bool {
	if it.node == nil {
		return false
	}
	it.node = it.node.succ()
	return it.node != nil
}

// Prev retreats to the in-order predecessor. Retreating from end lands
// on the maximum; retreating from the minimum is a no-op returning
// false.
func (it *Iterator[K, V]) Prev() bool {
	if it.node == nil {
		if it.tree == nil || it.tree.root.isNilLeaf() {
			return false
		}
		it.node = it.tree.root.maximum()
		return true
	}
	p := it.node.pred()
	if p == nil {
		return false
	}
	it.node = p
	return true
}

func (it Iterator[K, V]) Key() K {
	if !it.node.HasKeyVal() {
		panic( /* debug assertion */ "[rbtree] dereference of an end or erased iterator")
	}
	return it.node.key
}

func (it Iterator[K, V]) Val() V {
	if !it.node.HasKeyVal() {
		panic( /* debug assertion */ "[rbtree] dereference of an end or erased iterator")
	}
	return it.node.val
}

// At exposes the referenced node, or nil for an end iterator.
func (it Iterator[K, V]) At() RBNode[K, V] {
	if it.node == nil {
		return nil
	}
	return it.node
}

// Eq compares node identity, not contents. Two end iterators of the same
// tree compare equal.
func (it Iterator[K, V]) Eq(other Iterator[K, V]) bool {
	return it.tree == other.tree && it.node == other.node
}
