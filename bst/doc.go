/*
Package bst provides an unbalanced binary search tree of keyed elements.

Every key in a node's left subtree is smaller than the node's key, every key
in its right subtree is larger. Duplicate keys are never stored: inserting an
element whose key is already present is silently ignored and the element
already in the tree is kept.

The tree does not rebalance. Inserting keys in sorted order degenerates it
into a list with O(n) operations; random insertion order gives O(log n) on
average.

Removal of a node with two children promotes the in-order successor, i.e.,
the leftmost element of the right subtree, into the node. The caller always
receives the element carrying the requested key.

Traversals are available in-order (ascending keys), pre-order and post-order,
either with a visit callback or as an iter.Seq.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
