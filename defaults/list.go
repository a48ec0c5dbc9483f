package defaults

// List is an immutable singly linked sequence of T.
//
// It is the linked, head-first counterpart of a slice: prepending shares the
// tail instead of copying, and elements are reached by walking from the head.
// The zero value is the empty list. Lists are safe to share; nothing mutates
// a node after construction.
type List[T any] struct {
	head   *node[T]
	length int
}

type node[T any] struct {
	value T
	next  *node[T]
}

// NewList returns a list holding items in order.
func NewList[T any](items ...T) List[T] {
	l := List[T]{}
	for i := len(items) - 1; i >= 0; i-- {
		l = Cons(items[i], l)
	}
	return l
}

// Cons returns a new list with head prepended to tail.
//
// The tail is shared, not copied.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{
		head:   &node[T]{value: head, next: tail.head},
		length: tail.length + 1,
	}
}

// Len returns the number of elements.
func (l List[T]) Len() int { return l.length }

// IsEmpty reports whether the list has no elements.
func (l List[T]) IsEmpty() bool { return l.head == nil }

// Head returns the first element. ok is false for the empty list.
func (l List[T]) Head() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}
	return l.head.value, true
}

// Tail returns the list without its first element.
//
// The tail of the empty list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return List[T]{}
	}
	return List[T]{head: l.head.next, length: l.length - 1}
}

// ToSlice returns the elements in order as a fresh slice.
//
// The empty list yields nil.
func (l List[T]) ToSlice() []T {
	if l.head == nil {
		return nil
	}
	out := make([]T, 0, l.length)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}
