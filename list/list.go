// Package list implements an intrusive doubly linked list. It is based on
// Go's built-in list.List, but simplified so that elements are allocated by
// the caller and can move between lists without further allocation. Unlike
// the built-in list, a List must be initialized prior to use.
package list

// List is a doubly linked list of caller-owned elements.
type List[T any] struct {
	// To simplify the implementation, internally a list l is implemented as a
	// ring, such that root is both the next element of l.Back() and the
	// previous element of l.Front().
	root Element[T]

	// Current list length excluding the root.
	len int
}

// New returns an initialized list.
func New[T any]() *List[T] { return new(List[T]).Init() }

// Init initializes or clears the list.
func (l *List[T]) Init() *List[T] {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
	return l
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int { return l.len }

// Front returns the first element of the list or nil if the list is empty.
func (l *List[T]) Front() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.next
}

// Back returns the last element of the list or nil if the list is empty.
func (l *List[T]) Back() *Element[T] {
	if l.len == 0 {
		return nil
	}
	return l.root.prev
}

// PushFront inserts an element at the front of the list, removing it from its
// current list first if needed.
func (l *List[T]) PushFront(e *Element[T]) {
	if e.list != nil {
		e.Remove()
	}
	e.next = l.root.next
	e.prev = &l.root
	l.root.next = e
	e.next.prev = e
	e.list = l
	l.len++
}

// PushBack inserts an element at the back of the list, removing it from its
// current list first if needed.
func (l *List[T]) PushBack(e *Element[T]) {
	if e.list != nil {
		e.Remove()
	}
	e.prev = l.root.prev
	e.next = &l.root
	l.root.prev = e
	e.prev.next = e
	e.list = l
	l.len++
}

// Element is a node within a linked list.
type Element[T any] struct {
	next, prev *Element[T]
	list       *List[T]

	Value T
}

// Next returns the next list element or nil.
func (e *Element[T]) Next() *Element[T] {
	if p := e.next; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// Prev returns the previous list element or nil.
func (e *Element[T]) Prev() *Element[T] {
	if p := e.prev; e.list != nil && p != &e.list.root {
		return p
	}
	return nil
}

// List returns the list containing the element or nil.
func (e *Element[T]) List() *List[T] {
	return e.list
}

// Remove removes an element from its list.
func (e *Element[T]) Remove() {
	if e.list == nil {
		return
	}

	e.list.len--
	e.prev.next = e.next
	e.next.prev = e.prev
	e.next = nil
	e.prev = nil
	e.list = nil
}

// MoveToFront moves an element to the front of its list. The element must be
// initialized and inserted into a list.
func (e *Element[T]) MoveToFront() {
	root := &e.list.root
	if root.next == e {
		return
	}

	e.prev.next = e.next
	e.next.prev = e.prev
	e.prev = root
	e.next = root.next
	root.next.prev = e
	root.next = e
}
