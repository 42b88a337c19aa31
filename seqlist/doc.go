/*
Package seqlist implements sequential lists of keyed elements on top of a
dynarray.Store.

Unordered keeps insertion order and finds elements by linear search. Ordered
keeps elements sorted ascending by key at all times and uses binary search
for lookup and for the insertion point.

Both lists name their front and back operations separately, because their
costs differ: removing at the back is O(1), removing at the front shifts all
remaining elements. For an Ordered list, "insert at front" and "insert at back"
both mean "insert in sorted position".

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package seqlist

// DefaultCapacity is a reasonable initial capacity for lists of unknown size.
// Lists grow beyond it as needed.
const DefaultCapacity = 10

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
