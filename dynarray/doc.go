/*
Package dynarray provides the growable backing store shared by the sequential
lists of package seqlist.

A Store is a contiguous, owning sequence of keyed.Element handles with

	Cap() ≥ Len() ≥ 0

Slots [0, Len()) hold live elements, slots [Len(), Cap()) are empty. When an
insert finds the store full, capacity doubles before the insert proceeds.
Capacity never shrinks. Growth is reported to the core tracer and to an
optional Config.OnGrow hook; callers must not rely on it for correctness.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package dynarray

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
