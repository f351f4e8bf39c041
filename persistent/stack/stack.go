/*
Package stack implements an immutable persistent stack.

A persistent stack is a singly linked list of cells, shared between all
incarnations that contain them: pushing allocates one cell, popping
allocates nothing. Both run in O(1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package stack

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"
)

// Stack is an immutable persistent stack. The zero value is an empty stack,
// ready to use. Every operation returns a new incarnation and leaves the
// receiver unchanged.
type Stack[T any] struct {
	head   *cell[T]
	length int
}

type cell[T any] struct {
	value T
	next  *cell[T]
}

// Immutable creates an empty stack. It is equivalent to the zero value and
// exists for symmetry with the other containers of this module.
func Immutable[T any]() Stack[T] {
	return Stack[T]{}
}

// From creates a stack with the given items, the last one on top.
func From[T any](items ...T) Stack[T] {
	s := Stack[T]{}
	for _, item := range items {
		s = s.Push(item)
	}
	return s
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the stack holds no elements.
func (s Stack[T]) IsEmpty() bool {
	return s.head == nil
}

// Len returns the number of elements on the stack.
func (s Stack[T]) Len() int {
	return s.length
}

// Push returns a stack with item on top.
func (s Stack[T]) Push(item T) Stack[T] {
	return Stack[T]{head: &cell[T]{value: item, next: s.head}, length: s.length + 1}
}

// Pop removes the top element, returning it together with the remaining
// stack. Popping an empty stack is a contract violation and panics.
func (s Stack[T]) Pop() (T, Stack[T]) {
	assertThat(s.head != nil, "attempt to pop item from empty stack")
	return s.head.value, Stack[T]{head: s.head.next, length: s.length - 1}
}

// Top returns the top element, or Nothing for an empty stack.
func (s Stack[T]) Top() maybe.Maybe[T] {
	if s.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.head.value)
}

// Each walks the elements top-down, calling f for every element until f
// returns false or the stack is exhausted.
func (s Stack[T]) Each(f func(T) bool) {
	for c := s.head; c != nil; c = c.next {
		if !f(c.value) {
			return
		}
	}
}

// Reverse returns a stack with the element order reversed.
func (s Stack[T]) Reverse() Stack[T] {
	r := Stack[T]{}
	s.Each(func(item T) bool {
		r = r.Push(item)
		return true
	})
	return r
}

// Equal compares two stacks element-wise using eq.
func (s Stack[T]) Equal(other Stack[T], eq func(a, b T) bool) bool {
	if s.length != other.length {
		return false
	}
	a, b := s.head, other.head
	for a != nil {
		if a == b { // shared tail, no need to look further
			return true
		}
		if !eq(a.value, b.value) {
			return false
		}
		a, b = a.next, b.next
	}
	return true
}

// Eq compares two stacks of comparable element type element-wise.
func Eq[T comparable](a, b Stack[T]) bool {
	return a.Equal(b, func(x, y T) bool { return x == y })
}

func (s Stack[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('<')
	first := true
	s.Each(func(item T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", item))
		return true
	})
	b.WriteByte('>')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("stack: "+msg, msgargs...)
		panic(msg)
	}
}
