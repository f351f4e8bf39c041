package seq

/*
Remarks:
--------

- The classic formulation of finger trees nests the element type: the middle
  subtree of a tree over T is a tree over nodes of T. Go generics do not
  allow this kind of unbounded type recursion, so levels are encoded as a
  runtime property instead: an elem is either a leaf carrying a user value
  or a group of 2–4 sub-elems. How deep the group tags nest corresponds to
  how far down in the tree an elem lives.

- A nil *ftree is the canonical empty tree. All operations on *ftree are
  aware of this.

- Digits and groups are never mutated after construction; every change goes
  through the copy primitives of package arrays. Subtrees not on the spine
  being modified are shared between incarnations.
*/

import (
	"fmt"
	"strings"

	"github.com/naasking/immutable/persistent/arrays"
)

const (
	maxDigit = 4 // digits anchor the ends of a tree with 1…4 elements
	maxGroup = 4 // groups carry 2…4 elements of the level below
)

// elem is a single element at some level of the tree: either a leaf holding
// a client value, or a group bundling 2–4 elems of the level below.
type elem[T any] struct {
	value T
	group []elem[T] // nil for leaves
}

func leaf[T any](value T) elem[T] {
	return elem[T]{value: value}
}

// digit is an ordered group of 1…4 elems anchoring one end of a tree level.
type digit[T any] []elem[T]

// ftree is one level of the finger tree. It has one of three shapes:
// the empty tree (nil), a singleton (solo non-nil, no digits, no middle),
// or a deep tree with a left digit, an optional middle subtree and a right
// digit. The elements of the middle subtree are groups of elements of this
// level.
type ftree[T any] struct {
	solo  *elem[T]
	left  digit[T]
	mid   *ftree[T]
	right digit[T]
}

func singleton[T any](e elem[T]) *ftree[T] {
	return &ftree[T]{solo: &e}
}

func (t *ftree[T]) isEmpty() bool {
	return t == nil
}

func (t *ftree[T]) isSingleton() bool {
	return t != nil && t.solo != nil
}

// --- Push and add ----------------------------------------------------------

// push prepends an elem, returning a new tree.
//
// If the left digit is already full, the whole digit is handed down to the
// middle subtree as a single group and the digit restarts with e alone.
// This is carry propagation: a cascade reaches level k only when the digits
// of all levels below are full, which makes cascades exponentially rare and
// keeps push amortized O(1).
func (t *ftree[T]) push(e elem[T]) *ftree[T] {
	if t == nil {
		return singleton(e)
	}
	if t.solo != nil {
		return &ftree[T]{left: digit[T]{e}, right: digit[T]{*t.solo}}
	}
	if len(t.left) < maxDigit {
		return &ftree[T]{left: arrays.Prepend(t.left, e), mid: t.mid, right: t.right}
	}
	tracer().Debugf("push: left digit full, carrying group into middle")
	carry := elem[T]{group: t.left}
	return &ftree[T]{left: digit[T]{e}, mid: t.mid.push(carry), right: t.right}
}

// add appends an elem; the mirror image of push.
func (t *ftree[T]) add(e elem[T]) *ftree[T] {
	if t == nil {
		return singleton(e)
	}
	if t.solo != nil {
		return &ftree[T]{left: digit[T]{*t.solo}, right: digit[T]{e}}
	}
	if len(t.right) < maxDigit {
		return &ftree[T]{left: t.left, mid: t.mid, right: arrays.Append(t.right, e)}
	}
	tracer().Debugf("add: right digit full, carrying group into middle")
	carry := elem[T]{group: t.right}
	return &ftree[T]{left: t.left, mid: t.mid.add(carry), right: digit[T]{e}}
}

// --- Pop and eject ---------------------------------------------------------

// pop removes the first elem, returning it together with the remaining tree.
//
// When the left digit holds a single elem, the replacement digit is fetched
// by popping the middle subtree: the group obtained there unpacks into a
// valid digit of 2–4 elems. With an empty middle, the right digit is
// promoted to a tree of its own.
func (t *ftree[T]) pop() (elem[T], *ftree[T]) {
	assertThat(t != nil, "attempt to pop item from empty sequence")
	if t.solo != nil {
		return *t.solo, nil
	}
	e := t.left[0]
	if len(t.left) > 1 {
		return e, &ftree[T]{left: arrays.DropFirst(t.left), mid: t.mid, right: t.right}
	}
	if t.mid == nil {
		return e, fromDigit(t.right)
	}
	g, rest := t.mid.pop()
	assertThat(g.group != nil, "inconsistency: middle subtree yielded a non-group elem")
	return e, &ftree[T]{left: digit[T](g.group), mid: rest, right: t.right}
}

// eject removes the last elem; the mirror image of pop.
func (t *ftree[T]) eject() (elem[T], *ftree[T]) {
	assertThat(t != nil, "attempt to remove item from empty sequence")
	if t.solo != nil {
		return *t.solo, nil
	}
	e := t.right[len(t.right)-1]
	if len(t.right) > 1 {
		return e, &ftree[T]{left: t.left, mid: t.mid, right: arrays.DropLast(t.right)}
	}
	if t.mid == nil {
		return e, fromDigit(t.left)
	}
	g, rest := t.mid.eject()
	assertThat(g.group != nil, "inconsistency: middle subtree yielded a non-group elem")
	return e, &ftree[T]{left: t.left, mid: rest, right: digit[T](g.group)}
}

// fromDigit promotes a digit of 1–4 elems to a tree of its own.
func fromDigit[T any](d digit[T]) *ftree[T] {
	assertThat(len(d) > 0, "inconsistency: attempt to promote an empty digit")
	if len(d) == 1 {
		return singleton(d[0])
	}
	return &ftree[T]{left: digit[T]{d[0]}, right: arrays.DropFirst(d)}
}

// --- Concatenation ---------------------------------------------------------

// concat joins two trees, t in front.
//
// The digits at the seam (t.right and other.left) are re-partitioned into
// groups and appended to t's middle subtree; the middles are then joined by
// a recursive concat one level up. The middles shrink geometrically with
// each level, giving O(log min(n,m)) overall.
func (t *ftree[T]) concat(other *ftree[T]) *ftree[T] {
	if t == nil {
		return other
	}
	if other == nil {
		return t
	}
	if t.solo != nil {
		return other.push(*t.solo)
	}
	if other.solo != nil {
		return t.add(*other.solo)
	}
	mid := t.mid
	for _, g := range regroup(t.right, other.left) {
		mid = mid.add(g)
	}
	return &ftree[T]{left: t.left, mid: mid.concat(other.mid), right: other.right}
}

// regroup partitions the concatenation of two adjoining digits (2–8 elems
// total) into an ordered run of groups sized 2–4. Groups of 3 are preferred;
// the final group takes whatever remains. The exact split is not observable
// from the outside, it only affects internal node shape.
func regroup[T any](a, b digit[T]) []elem[T] {
	buf := make([]elem[T], 0, len(a)+len(b))
	buf = append(buf, a...)
	buf = append(buf, b...)
	var groups []elem[T]
	for len(buf) > maxGroup {
		groups = append(groups, elem[T]{group: arrays.Copy(buf[:3])})
		buf = buf[3:]
	}
	return append(groups, elem[T]{group: arrays.Copy(buf)})
}

// --- Traversal helpers -----------------------------------------------------

func (t *ftree[T]) first() elem[T] {
	assertThat(t != nil, "attempt to get first item of empty sequence")
	if t.solo != nil {
		return *t.solo
	}
	return t.left[0]
}

func (t *ftree[T]) last() elem[T] {
	assertThat(t != nil, "attempt to get last item of empty sequence")
	if t.solo != nil {
		return *t.solo
	}
	return t.right[len(t.right)-1]
}

func eachElem[T any](e elem[T], f func(T) bool) bool {
	if e.group == nil {
		return f(e.value)
	}
	for _, child := range e.group {
		if !eachElem(child, f) {
			return false
		}
	}
	return true
}

// each walks the tree in element order: left digit, middle (groups expanded
// recursively), right digit. f returning false stops the walk.
func (t *ftree[T]) each(f func(T) bool) bool {
	if t == nil {
		return true
	}
	if t.solo != nil {
		return eachElem(*t.solo, f)
	}
	for _, e := range t.left {
		if !eachElem(e, f) {
			return false
		}
	}
	if !t.mid.each(f) {
		return false
	}
	for _, e := range t.right {
		if !eachElem(e, f) {
			return false
		}
	}
	return true
}

// --- Debugging -------------------------------------------------------------

func (e elem[T]) String() string {
	if e.group == nil {
		return fmt.Sprintf("%v", e.value)
	}
	b := strings.Builder{}
	b.WriteByte('(')
	for i, child := range e.group {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(child.String())
	}
	b.WriteByte(')')
	return b.String()
}

func (d digit[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for i, e := range d {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("seq: "+msg, msgargs...)
		panic(msg)
	}
}
