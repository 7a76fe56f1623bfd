package plist

import "iter"

// node is a single immutable cell of the list. Nodes are never mutated
// after construction, which is what makes sharing between lists safe.
type node[T any] struct {
	value T
	prev  *node[T]
}

// List is an immutable singly-linked list with structural sharing.
// The zero value is the empty list. List values are cheap to copy;
// copying shares the underlying nodes.
type List[T any] struct {
	head   *node[T]
	length int
}

// New returns an empty list. Equivalent to the zero value.
func New[T any]() List[T] {
	return List[T]{}
}

// Append returns a new list whose head is value and whose tail is l.
// Neither l nor any list sharing nodes with it is affected.
func (l List[T]) Append(value T) List[T] {
	return List[T]{
		head:   &node[T]{value: value, prev: l.head},
		length: l.length + 1,
	}
}

// Len returns the number of elements. O(1).
func (l List[T]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool {
	return l.length == 0
}

// All iterates elements in head-to-tail order: the most recently
// appended element comes first.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Equal reports whether two lists hold equal elements in the same order.
// Shared suffixes are detected by node identity, so comparing a list with
// one of its extensions costs only the non-shared prefix.
func Equal[T comparable](a, b List[T]) bool {
	if a.length != b.length {
		return false
	}
	for an, bn := a.head, b.head; an != nil; an, bn = an.prev, bn.prev {
		if an == bn {
			return true
		}
		if an.value != bn.value {
			return false
		}
	}
	return true
}
