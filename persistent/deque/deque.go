/*
Package deque implements an immutable persistent double-ended queue.

The deque is the classic pair-of-stacks construction: one stack holds the
front part of the queue (top = first element), the other holds the back
part in reverse (top = last element). Taking from an exhausted side
reverses the opposite stack, which makes push, add, pop and remove run in
amortized O(1).

The API mirrors package seq, so the two are interchangeable for queue
workloads; seq additionally offers cheap concatenation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package deque

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"

	"github.com/naasking/immutable/persistent/stack"
)

// Deque is an immutable persistent double-ended queue. The zero value is an
// empty deque, ready to use. Every operation returns a new incarnation and
// leaves the receiver unchanged.
type Deque[T any] struct {
	front stack.Stack[T] // top = first element of the deque
	back  stack.Stack[T] // top = last element of the deque
}

// Immutable creates an empty deque. It is equivalent to the zero value and
// exists for symmetry with the other containers of this module.
func Immutable[T any]() Deque[T] {
	return Deque[T]{}
}

// From creates a deque holding the given items, in order.
func From[T any](items ...T) Deque[T] {
	q := Deque[T]{}
	for _, item := range items {
		q = q.Add(item)
	}
	return q
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the deque holds no elements.
func (q Deque[T]) IsEmpty() bool {
	return q.front.IsEmpty() && q.back.IsEmpty()
}

// Len returns the number of elements in the deque.
func (q Deque[T]) Len() int {
	return q.front.Len() + q.back.Len()
}

// Push returns a deque with item prepended at the front.
func (q Deque[T]) Push(item T) Deque[T] {
	return Deque[T]{front: q.front.Push(item), back: q.back}
}

// Add returns a deque with item appended at the back.
func (q Deque[T]) Add(item T) Deque[T] {
	return Deque[T]{front: q.front, back: q.back.Push(item)}
}

// Pop removes the front element, returning it together with the remaining
// deque. Popping an empty deque is a contract violation and panics.
func (q Deque[T]) Pop() (T, Deque[T]) {
	assertThat(!q.IsEmpty(), "attempt to pop item from empty deque")
	if q.front.IsEmpty() {
		q = Deque[T]{front: q.back.Reverse()}
	}
	item, front := q.front.Pop()
	return item, Deque[T]{front: front, back: q.back}
}

// Remove removes the back element, returning it together with the remaining
// deque. Removing from an empty deque is a contract violation and panics.
func (q Deque[T]) Remove() (T, Deque[T]) {
	assertThat(!q.IsEmpty(), "attempt to remove item from empty deque")
	if q.back.IsEmpty() {
		q = Deque[T]{back: q.front.Reverse()}
	}
	item, back := q.back.Pop()
	return item, Deque[T]{front: q.front, back: back}
}

// First returns the front element, or Nothing for an empty deque.
func (q Deque[T]) First() maybe.Maybe[T] {
	if !q.front.IsEmpty() {
		return q.front.Top()
	}
	return bottom(q.back)
}

// Last returns the back element, or Nothing for an empty deque.
func (q Deque[T]) Last() maybe.Maybe[T] {
	if !q.back.IsEmpty() {
		return q.back.Top()
	}
	return bottom(q.front)
}

// Each walks the elements front to back, calling f for every element until
// f returns false or the deque is exhausted.
func (q Deque[T]) Each(f func(T) bool) {
	stopped := false
	q.front.Each(func(item T) bool {
		stopped = !f(item)
		return !stopped
	})
	if stopped {
		return
	}
	q.back.Reverse().Each(f)
}

// Values returns the elements of the deque as a slice, front to back.
func (q Deque[T]) Values() []T {
	values := make([]T, 0, q.Len())
	q.Each(func(item T) bool {
		values = append(values, item)
		return true
	})
	return values
}

// Equal compares two deques element-wise using eq. The internal split
// between the two stacks does not influence the comparison.
func (q Deque[T]) Equal(other Deque[T], eq func(a, b T) bool) bool {
	if q.Len() != other.Len() {
		return false
	}
	a, b := q.Values(), other.Values()
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Eq compares two deques of comparable element type element-wise.
func Eq[T comparable](a, b Deque[T]) bool {
	return a.Equal(b, func(x, y T) bool { return x == y })
}

func (q Deque[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('<')
	first := true
	q.Each(func(item T) bool {
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

// bottom returns the bottommost element of a stack.
func bottom[T any](s stack.Stack[T]) maybe.Maybe[T] {
	last := maybe.Nothing[T]()
	s.Each(func(item T) bool {
		last = maybe.Just(item)
		return true
	})
	return last
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("deque: "+msg, msgargs...)
		panic(msg)
	}
}
