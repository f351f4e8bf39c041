package seq

// Iterator yields the elements of a sequence front to back, expanding the
// tree lazily as it advances. An Iterator is a one-shot consumer: it cannot
// be restarted, but the sequence it was created from is unaffected and may
// be iterated again. Iterators must not be shared between goroutines.
type Iterator[T any] struct {
	work []iterStep[T]
}

// iterStep is a pending piece of traversal work: either a run of elems
// (digits and unpacked groups) or a subtree not yet expanded. Exactly one
// of the two fields is set.
type iterStep[T any] struct {
	elems []elem[T]
	tree  *ftree[T]
}

// Iterate creates an iterator positioned at the front of the sequence.
func (s Seq[T]) Iterate() *Iterator[T] {
	it := &Iterator[T]{}
	if s.root != nil {
		it.work = append(it.work, iterStep[T]{tree: s.root})
	}
	return it
}

// Next returns the next element, or ok=false once the iterator is
// exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	for len(it.work) > 0 {
		top := &it.work[len(it.work)-1]
		if top.tree != nil {
			t := top.tree
			it.work = it.work[:len(it.work)-1]
			if t.solo != nil {
				it.work = append(it.work, iterStep[T]{elems: []elem[T]{*t.solo}})
				continue
			}
			// pending work is a stack: push in reverse traversal order
			it.work = append(it.work, iterStep[T]{elems: t.right})
			if t.mid != nil {
				it.work = append(it.work, iterStep[T]{tree: t.mid})
			}
			it.work = append(it.work, iterStep[T]{elems: t.left})
			continue
		}
		if len(top.elems) == 0 {
			it.work = it.work[:len(it.work)-1]
			continue
		}
		e := top.elems[0]
		top.elems = top.elems[1:]
		if e.group != nil {
			it.work = append(it.work, iterStep[T]{elems: e.group})
			continue
		}
		return e.value, true
	}
	var none T
	return none, false
}
