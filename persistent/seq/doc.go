/*
Package seq implements an immutable persistent sequence, backed by a
finger tree.

A persistent sequence has copy-on-write behaviour: each “modification”
(pushing or popping at either end, concatenation) creates a new incarnation
of the sequence, leaving the original unmodified. Under the hood most of the
structure/memory is shared between original and copy, transparently to
clients. Pushing and popping at both ends run in amortized constant time,
concatenating two sequences of n and m elements runs in O(log min(n,m)).

Immutable sequences are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package seq

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'immutable.seq'.
func tracer() tracing.Trace {
	return tracing.Select("immutable.seq")
}
