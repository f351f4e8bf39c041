/*
Package arrays provides copy primitives for small immutable element groups.

Persistent containers in this module never mutate an allocated group of
elements. Whenever a digit or node changes, a fresh copy with the change
applied is allocated instead. This package bundles the handful of copy
operations the containers need. Groups handled here are small (at most a
handful of elements), so plain copying is cheaper than any sharing scheme.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package arrays

import "fmt"

// Copy returns a fresh copy of a group.
func Copy[T any](group []T) []T {
	c := make([]T, len(group))
	copy(c, group)
	return c
}

// Append returns a copy of a group with x appended at the end.
func Append[T any](group []T, x T) []T {
	c := make([]T, len(group)+1)
	copy(c, group)
	c[len(group)] = x
	return c
}

// Prepend returns a copy of a group with x inserted at the front.
func Prepend[T any](group []T, x T) []T {
	c := make([]T, len(group)+1)
	c[0] = x
	copy(c[1:], group)
	return c
}

// Replace returns a copy of a group with the slot at `at` replaced by x.
func Replace[T any](group []T, at int, x T) []T {
	assertThat(at >= 0 && at < len(group), "group index out of bounds: %d with length %d", at, len(group))
	c := Copy(group)
	c[at] = x
	return c
}

// DropFirst returns a copy of a group without its first element.
func DropFirst[T any](group []T) []T {
	assertThat(len(group) > 0, "attempt to drop first element of an empty group")
	return Copy(group[1:])
}

// DropLast returns a copy of a group without its last element.
func DropLast[T any](group []T) []T {
	assertThat(len(group) > 0, "attempt to drop last element of an empty group")
	return Copy(group[:len(group)-1])
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("arrays: "+msg, msgargs...)
		panic(msg)
	}
}
