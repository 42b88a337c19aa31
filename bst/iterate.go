package bst

import (
	"iter"

	"github.com/npillmayer/keyed"
)

// Traversal selects the order in which a tree walk visits nodes.
type Traversal int

const (
	InOrder   Traversal = iota // left, node, right: ascending keys
	PreOrder                   // node, left, right
	PostOrder                  // left, right, node
)

func (tr Traversal) String() string {
	switch tr {
	case InOrder:
		return "in-order"
	case PreOrder:
		return "pre-order"
	case PostOrder:
		return "post-order"
	}
	return "unknown traversal"
}

// InOrder visits all elements in ascending key order.
//
// Iteration stops early if visit returns false.
func (t *Tree) InOrder(visit func(keyed.Element) bool) {
	t.walk(InOrder, visit)
}

// PreOrder visits each node before its subtrees, left subtree first.
//
// Iteration stops early if visit returns false.
func (t *Tree) PreOrder(visit func(keyed.Element) bool) {
	t.walk(PreOrder, visit)
}

// PostOrder visits each node after its subtrees, left subtree first.
//
// Iteration stops early if visit returns false.
func (t *Tree) PostOrder(visit func(keyed.Element) bool) {
	t.walk(PostOrder, visit)
}

// All returns an iterator over all elements in ascending key order.
func (t *Tree) All() iter.Seq[keyed.Element] {
	return t.Walk(InOrder)
}

// Walk returns an iterator over all elements in the given traversal order.
// The tree must not be modified during iteration.
func (t *Tree) Walk(order Traversal) iter.Seq[keyed.Element] {
	return func(yield func(keyed.Element) bool) {
		t.walk(order, yield)
	}
}

func (t *Tree) walk(order Traversal, visit func(keyed.Element) bool) {
	if t == nil || t.root == nil || visit == nil {
		return
	}
	switch order {
	case InOrder:
		walkIn(t.root, visit)
	case PreOrder:
		walkPre(t.root, visit)
	case PostOrder:
		walkPost(t.root, visit)
	default:
		assert(false, "bst: unknown traversal order")
	}
}

func walkIn(n *node, visit func(keyed.Element) bool) bool {
	if n == nil {
		return true
	}
	return walkIn(n.left, visit) && visit(n.elem) && walkIn(n.right, visit)
}

func walkPre(n *node, visit func(keyed.Element) bool) bool {
	if n == nil {
		return true
	}
	return visit(n.elem) && walkPre(n.left, visit) && walkPre(n.right, visit)
}

func walkPost(n *node, visit func(keyed.Element) bool) bool {
	if n == nil {
		return true
	}
	return walkPost(n.left, visit) && walkPost(n.right, visit) && visit(n.elem)
}
