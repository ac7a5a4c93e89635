package list

import "errors"

var (
	ErrEmptyContainer = errors.New("[list] empty container")
	ErrNotInList      = errors.New("[list] element is not owned by this list")
)

// Element is a node of a doubly linked list. Its neighbours are reached
// through Next and Prev, which return nil once the traversal runs off
// either end.
type Element[T any] struct {
	prev, next *Element[T]
	listRef    *List[T]
	Value      T
}

func (e *Element[T]) Next() *Element[T] {
	if e == nil || e.listRef == nil || e.next == e.listRef.root {
		return nil
	}
	return e.next
}

func (e *Element[T]) Prev() *Element[T] {
	if e == nil || e.listRef == nil || e.prev == e.listRef.root {
		return nil
	}
	return e.prev
}

// List is a doubly linked list over a root sentinel. The sentinel is
// both the head's prev and the tail's next, so link updates never
// branch on empty or boundary positions. Not thread safe.
type List[T any] struct {
	root *Element[T]
	size int64
}

func NewList[T any]() *List[T] {
	l := &List[T]{}
	l.root = &Element[T]{listRef: l}
	l.root.prev = l.root
	l.root.next = l.root
	return l
}

func NewListOf[T any](values ...T) *List[T] {
	l := NewList[T]()
	for _, v := range values {
		l.PushBack(v)
	}
	return l
}

func (l *List[T]) Len() int64 {
	return l.size
}

func (l *List[T]) Empty() bool {
	return l.size == 0
}

// checkElement reports whether e is a live element of l. The link
// consistency probes guard against elements detached by a previous
// remove but still held by the caller.
func (l *List[T]) checkElement(e *Element[T]) bool {
	if e == nil || e == l.root || e.listRef != l || e.prev == nil || e.next == nil {
		return false
	}
	return e.prev.next == e && e.next.prev == e
}

// insertBetween links e after prev and before next, both already in l.
func (l *List[T]) insertBetween(e, prev, next *Element[T]) *Element[T] {
	e.prev, e.next = prev, next
	prev.next = e
	next.prev = e
	l.size++
	return e
}

func (l *List[T]) PushFront(v T) *Element[T] {
	return l.insertBetween(&Element[T]{listRef: l, Value: v}, l.root, l.root.next)
}

func (l *List[T]) PushBack(v T) *Element[T] {
	return l.insertBetween(&Element[T]{listRef: l, Value: v}, l.root.prev, l.root)
}

// InsertBefore inserts v immediately before at and returns the new
// element, or nil if at is not an element of l.
func (l *List[T]) InsertBefore(v T, at *Element[T]) *Element[T] {
	if !l.checkElement(at) {
		return nil
	}
	return l.insertBetween(&Element[T]{listRef: l, Value: v}, at.prev, at)
}

// InsertAfter inserts v immediately after at and returns the new
// element, or nil if at is not an element of l.
func (l *List[T]) InsertAfter(v T, at *Element[T]) *Element[T] {
	if !l.checkElement(at) {
		return nil
	}
	return l.insertBetween(&Element[T]{listRef: l, Value: v}, at, at.next)
}

// Remove unlinks e from l and returns its value. Elements of other
// lists and already removed elements yield ErrNotInList.
func (l *List[T]) Remove(e *Element[T]) (T, error) {
	if !l.checkElement(e) {
		var zero T
		return zero, ErrNotInList
	}
	e.prev.next = e.next
	e.next.prev = e.prev
	// Detach so reads through a stale handle stop at nil.
	e.prev, e.next, e.listRef = nil, nil, nil
	l.size--
	return e.Value, nil
}

func (l *List[T]) PopFront() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.Remove(l.root.next)
}

func (l *List[T]) PopBack() (T, error) {
	if l.size == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return l.Remove(l.root.prev)
}

// Front returns the first element of l, or nil if l is empty.
func (l *List[T]) Front() *Element[T] {
	if l.size == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of l, or nil if l is empty.
func (l *List[T]) Back() *Element[T] {
	if l.size == 0 {
		return nil
	}
	return l.root.prev
}

// Clear detaches every element and resets l to the empty state.
func (l *List[T]) Clear() {
	for e := l.root.next; e != l.root; {
		next := e.next
		e.prev, e.next, e.listRef = nil, nil, nil
		e = next
	}
	l.root.prev = l.root
	l.root.next = l.root
	l.size = 0
}

// Foreach visits elements from front to back until action returns
// false. Removing the visited element inside action is allowed.
func (l *List[T]) Foreach(action func(idx int64, v T) bool) {
	if action == nil {
		return
	}
	idx := int64(0)
	for e := l.root.next; e != l.root; idx++ {
		next := e.next
		if !action(idx, e.Value) {
			return
		}
		e = next
	}
}

// ReverseForeach visits elements from back to front until action
// returns false.
func (l *List[T]) ReverseForeach(action func(idx int64, v T) bool) {
	if action == nil {
		return
	}
	idx := int64(0)
	for e := l.root.prev; e != l.root; idx++ {
		prev := e.prev
		if !action(idx, e.Value) {
			return
		}
		e = prev
	}
}

// Swap exchanges the contents of l and other in O(n): each element is
// re-homed so ownership checks keep working after the swap.
func (l *List[T]) Swap(other *List[T]) {
	if other == nil || other == l {
		return
	}
	l.root, other.root = other.root, l.root
	l.size, other.size = other.size, l.size
	l.root.listRef = l
	other.root.listRef = other
	for e := l.root.next; e != l.root; e = e.next {
		e.listRef = l
	}
	for e := other.root.next; e != other.root; e = e.next {
		e.listRef = other
	}
}

// Clone returns a list holding copies of l's values in the same order.
func (l *List[T]) Clone() *List[T] {
	cp := NewList[T]()
	for e := l.root.next; e != l.root; e = e.next {
		cp.PushBack(e.Value)
	}
	return cp
}

// Slice returns the values from front to back.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.size)
	for e := l.root.next; e != l.root; e = e.next {
		out = append(out, e.Value)
	}
	return out
}
