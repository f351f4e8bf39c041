package vector

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fp/maybe"

	"github.com/naasking/immutable/persistent/arrays"
)

// Vector is an immutable persistent vector. The zero value is an empty
// vector with default degree, ready to use.
type Vector[T any] struct {
	props
	count  int
	height int // 0 means the root is a leaf (or nil)
	root   *vnode[T]
	tail   []T
}

// Immutable constructs an empty vector with options, if you need any.
// Use it like this:
//
//	vec := vector.Immutable[int](DegreeExponent(3))
func Immutable[T any](opts ...Option) Vector[T] {
	v := Vector[T]{}
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing vectors at creation time.
type Option struct {
	config func(props) props
}

// DegreeExponent is an option to indirectly set the degree of the
// underlying trie for a vector. The degree of the trie will be 2^exp.
// Accepted exponents are [1…5]; default is 5, i.e. a degree of 32.
//
// Use it like this:
//
//	vec := vector.Immutable[int](DegreeExponent(5))
func DegreeExponent(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 1
		} else if n > 5 {
			n = 5
		}
		return makeProps(uint32(n))
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the vector.
func (v Vector[T]) Len() int {
	return v.count
}

// Last returns the last element, or Nothing for an empty vector.
func (v Vector[T]) Last() maybe.Maybe[T] {
	if v.count == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// Get returns the element at index i. Indexing out of bounds is a contract
// violation and panics.
func (v Vector[T]) Get(i int) T {
	assertThat(i >= 0 && i < v.count, "vector index out of bounds: %d with length %d", i, v.count)
	v.props = v.props.init()
	return v.sliceFor(uint32(i))[uint32(i)&v.mask]
}

// Set returns a vector with the element at index i replaced by value. Only
// the path from the root to the element's leaf is copied.
func (v Vector[T]) Set(i int, value T) Vector[T] {
	assertThat(i >= 0 && i < v.count, "vector index out of bounds: %d with length %d", i, v.count)
	v.props = v.props.init()
	w := v
	if uint32(i) >= v.tailOffset() {
		w.tail = arrays.Replace(v.tail, int(uint32(i)&v.mask), value)
		return w
	}
	w.root = v.assoc(v.root, uint32(v.height)*v.bits, uint32(i), value)
	return w
}

// Push returns a vector with value appended at the back. Amortized O(1):
// most pushes only copy the tail; a full tail is sunk into the trie as one
// leaf.
func (v Vector[T]) Push(value T) Vector[T] {
	v.props = v.props.init()
	w := v
	w.count++
	if len(v.tail) < int(v.degree) {
		w.tail = arrays.Append(v.tail, value)
		return w
	}
	// tail is full ⇒ sink it into the trie
	tracer().Debugf("tail is full, sinking %v into the trie", v.tail)
	tailNode := &vnode[T]{leaves: v.tail}
	w.tail = []T{value}
	switch {
	case v.root == nil: // trie was empty, the old tail becomes the root
		w.root = tailNode
	case v.rootFull():
		newRoot := v.emptyNode()
		newRoot.children[0] = v.root
		newRoot.children[1] = v.newPath(uint32(v.height)*v.bits, tailNode)
		w.root = newRoot
		w.height++
	default:
		w.root = v.pushTail(v.root, uint32(v.height)*v.bits, uint32(v.count)-1, tailNode)
	}
	return w
}

// Pop returns a vector with the last element removed. Popping an empty
// vector is a contract violation and panics.
func (v Vector[T]) Pop() Vector[T] {
	assertThat(v.count > 0, "attempt to remove item from empty vector")
	v.props = v.props.init()
	w := v
	w.count--
	if v.count == 1 {
		w.root, w.tail, w.height = nil, nil, 0
		return w
	}
	if len(v.tail) > 1 {
		w.tail = arrays.DropLast(v.tail)
		return w
	}
	// tail is down to one element ⇒ the rightmost trie leaf becomes the tail
	w.tail = v.sliceFor(uint32(v.count) - 2)
	w.root = v.popTail(v.root, uint32(v.height)*v.bits, uint32(v.count)-2)
	switch {
	case w.root == nil:
		w.height = 0
	case w.height > 0 && w.root.children[1] == nil: // root down to one child
		w.root = w.root.children[0]
		w.height--
	}
	return w
}

// Each walks the elements in index order, calling f for every element until
// f returns false or the vector is exhausted.
func (v Vector[T]) Each(f func(T) bool) {
	if !v.root.each(f) {
		return
	}
	for _, value := range v.tail {
		if !f(value) {
			return
		}
	}
}

// Values returns the elements of the vector as a slice.
func (v Vector[T]) Values() []T {
	values := make([]T, 0, v.count)
	v.Each(func(value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (v Vector[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	first := true
	v.Each(func(value T) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(fmt.Sprintf("%v", value))
		return true
	})
	b.WriteByte(']')
	return b.String()
}
