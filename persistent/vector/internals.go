package vector

import (
	"fmt"
	"strings"
)

const defaultBits uint32 = 5 // will produce nodes with degree 2^5 = 32

type props struct {
	bits   uint32 // number of bits to use per level
	degree uint32 // degree is always 2^bits
	mask   uint32 // mask is degree-1, i.e. a bit pattern with trailing 1s of length 'bits'
}

func makeProps(bits uint32) props {
	p := props{bits: bits}
	p.degree = 1 << p.bits
	p.mask = p.degree - 1
	return p
}

func (p props) init() props {
	if p.degree == 0 {
		return makeProps(defaultBits)
	}
	return p
}

// vnode represents a node in the trie a vector is made of. Inner nodes
// carry a fixed-size children array, filled left to right; leaves carry a
// full chunk of elements.
type vnode[T any] struct {
	children []*vnode[T]
	leaves   []T
}

func (v Vector[T]) emptyNode() *vnode[T] {
	return &vnode[T]{children: make([]*vnode[T], v.degree)}
}

func (node *vnode[T]) clone() *vnode[T] {
	cow := &vnode[T]{}
	if node.leaves != nil {
		cow.leaves = make([]T, len(node.leaves))
		copy(cow.leaves, node.leaves)
	}
	if node.children != nil {
		cow.children = make([]*vnode[T], len(node.children))
		copy(cow.children, node.children)
	}
	return cow
}

// tailOffset returns the index of the first element held in the tail;
// everything below lives in the trie.
func (v Vector[T]) tailOffset() uint32 {
	return uint32(v.count-1) &^ v.mask
}

// rootFull reports whether the trie below the root has no space left for
// another leaf.
func (v Vector[T]) rootFull() bool {
	return uint32(v.count)>>v.bits > 1<<(uint32(v.height)*v.bits)
}

// sliceFor returns the chunk (trie leaf or tail) holding element i.
func (v Vector[T]) sliceFor(i uint32) []T {
	if i >= v.tailOffset() {
		return v.tail
	}
	node := v.root
	for shift := uint32(v.height) * v.bits; shift > 0; shift -= v.bits {
		node = node.children[(i>>shift)&v.mask]
	}
	return node.leaves
}

// assoc copies the path from node down to the leaf holding element i and
// replaces the element there.
func (v Vector[T]) assoc(node *vnode[T], shift, i uint32, value T) *vnode[T] {
	if shift == 0 {
		cow := &vnode[T]{leaves: make([]T, len(node.leaves))}
		copy(cow.leaves, node.leaves)
		cow.leaves[i&v.mask] = value
		return cow
	}
	cow := node.clone()
	sub := (i >> shift) & v.mask
	cow.children[sub] = v.assoc(node.children[sub], shift-v.bits, i, value)
	return cow
}

// pushTail sinks a full tail as a new rightmost leaf, copying the path from
// the root down to the insertion point. idx is the index of the last
// element of the sinking tail.
func (v Vector[T]) pushTail(node *vnode[T], shift, idx uint32, tailNode *vnode[T]) *vnode[T] {
	cow := node.clone()
	sub := (idx >> shift) & v.mask
	switch {
	case shift == v.bits: // bottom-most inner level links leaves directly
		cow.children[sub] = tailNode
	case node.children[sub] == nil:
		cow.children[sub] = v.newPath(shift-v.bits, tailNode)
	default:
		cow.children[sub] = v.pushTail(node.children[sub], shift-v.bits, idx, tailNode)
	}
	return cow
}

// newPath wraps a leaf in a chain of single-child inner nodes, one per
// level down to the given shift.
func (v Vector[T]) newPath(shift uint32, node *vnode[T]) *vnode[T] {
	for ; shift > 0; shift -= v.bits {
		wrap := v.emptyNode()
		wrap.children[0] = node
		node = wrap
	}
	return node
}

// popTail removes the rightmost leaf of the trie, copying the path towards
// it. idx is the index of the last element remaining after the pop. A nil
// return means the subtree became empty.
func (v Vector[T]) popTail(node *vnode[T], shift, idx uint32) *vnode[T] {
	if shift == 0 { // root is the leaf moving into the tail
		return nil
	}
	sub := (idx >> shift) & v.mask
	if shift > v.bits {
		child := v.popTail(node.children[sub], shift-v.bits, idx)
		if child == nil && sub == 0 {
			return nil
		}
		cow := node.clone()
		cow.children[sub] = child
		return cow
	}
	if sub == 0 {
		return nil
	}
	cow := node.clone()
	cow.children[sub] = nil
	return cow
}

// each walks all elements below node in index order. Children of inner
// nodes are filled left to right, so a nil child ends the walk of a node.
func (node *vnode[T]) each(f func(T) bool) bool {
	if node == nil {
		return true
	}
	if node.leaves != nil {
		for _, value := range node.leaves {
			if !f(value) {
				return false
			}
		}
		return true
	}
	for _, child := range node.children {
		if child == nil {
			break
		}
		if !child.each(f) {
			return false
		}
	}
	return true
}

func (node vnode[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	if node.leaves != nil {
		for i, l := range node.leaves {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(fmt.Sprintf("%v", l))
		}
	} else {
		for i, c := range node.children {
			if i > 0 {
				b.WriteByte(',')
			}
			if c == nil {
				b.WriteByte('_')
			} else {
				b.WriteString("▪︎")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
