package bst

import (
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/keyed"
	"github.com/npillmayer/keyed/display"
)

// Tree is an unbalanced binary search tree.
//
// A tree created by
//
//	Tree{}
//
// is a valid, empty tree. A Tree must not be copied after first use.
type Tree struct {
	root *node
	size int
}

// node owns an element and its two subtrees. Nodes never leave the package.
type node struct {
	elem        keyed.Element
	left, right *node
}

func (n *node) key() int64 {
	return n.elem.Key()
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// Len returns the number of elements in the tree.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Clear drops all elements.
func (t *Tree) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.size = 0
}

// Insert inserts e, taking ownership of it. It returns false, leaving the
// tree unchanged, if e is nil or an element with the same key is present.
func (t *Tree) Insert(e keyed.Element) bool {
	if keyed.IsNil(e) {
		return false
	}
	var inserted bool
	t.root, inserted = insert(t.root, e)
	if inserted {
		t.size++
	}
	return inserted
}

func insert(n *node, e keyed.Element) (*node, bool) {
	if n == nil {
		return &node{elem: e}, true
	}
	var inserted bool
	switch k := e.Key(); {
	case k < n.key():
		n.left, inserted = insert(n.left, e)
	case k > n.key():
		n.right, inserted = insert(n.right, e)
	}
	return n, inserted
}

// Search returns the element with the given key.
func (t *Tree) Search(key int64) (keyed.Element, bool) {
	if t == nil {
		return nil, false
	}
	if n := search(t.root, key); n != nil {
		return n.elem, true
	}
	return nil, false
}

func search(n *node, key int64) *node {
	if n == nil {
		return nil
	}
	switch {
	case key < n.key():
		return search(n.left, key)
	case key > n.key():
		return search(n.right, key)
	}
	return n
}

// Remove removes the element with the given key and returns it to the
// caller.
func (t *Tree) Remove(key int64) (keyed.Element, bool) {
	if t == nil {
		return nil, false
	}
	var removed keyed.Element
	t.root, removed = remove(t.root, key)
	if removed == nil {
		return nil, false
	}
	t.size--
	return removed, true
}

// remove deletes key from the subtree at n and returns the new subtree root
// together with the removed element.
func remove(n *node, key int64) (*node, keyed.Element) {
	if n == nil {
		return nil, nil
	}
	var removed keyed.Element
	switch {
	case key < n.key():
		n.left, removed = remove(n.left, key)
		return n, removed
	case key > n.key():
		n.right, removed = remove(n.right, key)
		return n, removed
	}
	removed = n.elem
	switch {
	case n.left == nil: // leaf or right child only
		return n.right, removed
	case n.right == nil:
		return n.left, removed
	}
	// Two children: take over the element of the in-order successor. The
	// successor has no left child, so removing it is a leaf or one-child case.
	succ := leftmost(n.right)
	var promoted keyed.Element
	n.right, promoted = remove(n.right, succ.key())
	assert(promoted != nil, "bst: in-order successor vanished")
	n.elem = promoted
	return n, removed
}

func leftmost(n *node) *node {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost(n *node) *node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the element with the smallest key.
func (t *Tree) Min() (keyed.Element, bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return leftmost(t.root).elem, true
}

// Max returns the element with the largest key.
func (t *Tree) Max() (keyed.Element, bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return rightmost(t.root).elem, true
}

// Root returns the element at the root of the tree.
func (t *Tree) Root() (keyed.Element, bool) {
	if t.IsEmpty() {
		return nil, false
	}
	return t.root.elem, true
}

// Height returns the number of nodes on the longest path from the root to a
// leaf, where 0 means empty.
func (t *Tree) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height(n *node) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Print writes an in-order dump of the tree to w.
func (t *Tree) Print(w io.Writer) {
	t.PrintTraversal(w, InOrder)
}

// PrintTraversal writes a dump of the tree to w, listing elements in the
// given traversal order.
func (t *Tree) PrintTraversal(w io.Writer, order Traversal) {
	display.Table(w, display.Header{
		Title: "BINARY SEARCH TREE, height " + strconv.Itoa(t.Height()),
		Order: order.String(),
		Count: t.Len(),
	}, t.Walk(order))
}

// PrintShape writes the structure of the tree to w as a single line in
// parenthesized notation. A missing child of a node with one child is
// written as "-":
//
//	50(25(15,35),75(-,85))
func (t *Tree) PrintShape(w io.Writer) {
	var sb strings.Builder
	if !t.IsEmpty() {
		writeShape(&sb, t.root)
	}
	display.Line(w, display.Header{
		Title: "BINARY SEARCH TREE, height " + strconv.Itoa(t.Height()),
		Order: "shape",
		Count: t.Len(),
	}, sb.String())
}

func writeShape(sb *strings.Builder, n *node) {
	if n == nil {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(strconv.FormatInt(n.key(), 10))
	if n.left == nil && n.right == nil {
		return
	}
	sb.WriteByte('(')
	writeShape(sb, n.left)
	sb.WriteByte(',')
	writeShape(sb, n.right)
	sb.WriteByte(')')
}
