/*
Package vector implements an immutable persistent vector, designed for
use-cases similar to Go slices.

An immutable persistent vector has copy-on-write behaviour: Each
“modification” of the vector (insertion, replacement or deletion) creates a
copy, leaving the original unmodified. Under the hood, copy-on-write retains
most of the memory held by the original, and creates a new incarnation of
parts of the structure only. Thus, most of the structure/memory is shared
between original and copy, transparently to clients.

The vector is a bit-partitioned trie with a tail buffer: the last partial
chunk of elements lives outside the trie, making appends at the back cheap.
Unlike the sequence of package seq, the vector supports indexed access, but
offers no operations at the front and no cheap concatenation.

Immutable vectors are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.vector'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.vector")
}
