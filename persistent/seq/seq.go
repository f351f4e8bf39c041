package seq

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"
)

// Seq is an immutable persistent sequence. The zero value is an empty
// sequence, ready to use, i.e. this is legal:
//
//	s := seq.Seq[int]{}.Add(1).Add(2).Add(3)
//
// Every operation returns a new incarnation of the sequence and leaves the
// receiver unchanged; unmodified substructure is shared between the two.
type Seq[T any] struct {
	root   *ftree[T]
	length int
}

// Immutable creates an empty sequence. It is equivalent to the zero value
// and exists for symmetry with the other containers of this module.
func Immutable[T any]() Seq[T] {
	return Seq[T]{}
}

// From creates a sequence holding the given items, in order.
func From[T any](items ...T) Seq[T] {
	s := Seq[T]{}
	for _, item := range items {
		s = s.Add(item)
	}
	return s
}

// --- API -------------------------------------------------------------------

// IsEmpty returns true iff the sequence holds no elements.
func (s Seq[T]) IsEmpty() bool {
	return s.root.isEmpty()
}

// IsSingleton returns true iff the sequence holds exactly one element.
func (s Seq[T]) IsSingleton() bool {
	return s.root.isSingleton()
}

// Len returns the number of elements in the sequence.
func (s Seq[T]) Len() int {
	return s.length
}

// Push returns a sequence with item prepended at the front.
// Amortized O(1).
func (s Seq[T]) Push(item T) Seq[T] {
	return Seq[T]{root: s.root.push(leaf(item)), length: s.length + 1}
}

// Add returns a sequence with item appended at the back.
// Amortized O(1).
func (s Seq[T]) Add(item T) Seq[T] {
	return Seq[T]{root: s.root.add(leaf(item)), length: s.length + 1}
}

// Pop removes the front element, returning it together with the remaining
// sequence. Popping an empty sequence is a contract violation and panics.
func (s Seq[T]) Pop() (T, Seq[T]) {
	e, rest := s.root.pop()
	return e.value, Seq[T]{root: rest, length: s.length - 1}
}

// Remove removes the back element, returning it together with the remaining
// sequence. Removing from an empty sequence is a contract violation and
// panics.
func (s Seq[T]) Remove() (T, Seq[T]) {
	e, rest := s.root.eject()
	return e.value, Seq[T]{root: rest, length: s.length - 1}
}

// First returns the front element, or Nothing for an empty sequence. O(1).
func (s Seq[T]) First() maybe.Maybe[T] {
	if s.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.root.first().value)
}

// Last returns the back element, or Nothing for an empty sequence. O(1).
func (s Seq[T]) Last() maybe.Maybe[T] {
	if s.root == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(s.root.last().value)
}

// Concat returns the concatenation of s and other, s in front.
// O(log min(n,m)) for sequence lengths n and m.
func (s Seq[T]) Concat(other Seq[T]) Seq[T] {
	return Seq[T]{root: s.root.concat(other.root), length: s.length + other.length}
}

// Each walks the elements front to back, calling f for every element until
// f returns false or the sequence is exhausted.
func (s Seq[T]) Each(f func(T) bool) {
	s.root.each(f)
}

// Values returns the elements of the sequence as a slice, front to back.
func (s Seq[T]) Values() []T {
	values := make([]T, 0, s.length)
	s.Each(func(item T) bool {
		values = append(values, item)
		return true
	})
	return values
}

// Equal compares two sequences element-wise using eq. Sequences sharing
// their root are equal without inspecting elements.
func (s Seq[T]) Equal(other Seq[T], eq func(a, b T) bool) bool {
	if s.length != other.length {
		return false
	}
	if s.root == other.root {
		return true
	}
	it, jt := s.Iterate(), other.Iterate()
	for {
		a, ok := it.Next()
		if !ok {
			return true
		}
		b, _ := jt.Next()
		if !eq(a, b) {
			return false
		}
	}
}

// Eq compares two sequences of comparable element type element-wise.
func Eq[T comparable](a, b Seq[T]) bool {
	return a.Equal(b, func(x, y T) bool { return x == y })
}

// hashSalt distinguishes sequence hashes from plain element-fold hashes of
// other container types.
const hashSalt uint64 = 0x736571 // "seq"

// HashWith folds the element hashes produced by hash, in traversal order,
// into a single hash value. Sequences that are Equal hash equally,
// regardless of internal tree shape.
func (s Seq[T]) HashWith(hash func(T) uint64) uint64 {
	h := hashSalt
	s.Each(func(item T) bool {
		h = h*1099511628211 ^ hash(item)
		return true
	})
	return h
}

func (s Seq[T]) String() string {
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
