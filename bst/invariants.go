package bst

import (
	"github.com/cockroachdb/errors"
)

// Check validates the search tree property for every reachable node and the
// element count.
//
// This checker is meant for tests; no tree operation calls it.
func (t *Tree) Check() error {
	if t == nil {
		return nil
	}
	count, err := checkNode(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return errors.Wrapf(ErrInvariant, "size mismatch (%d != %d)", t.size, count)
	}
	return nil
}

// checkNode verifies that all keys of the subtree at n lie strictly between
// the optional bounds lo and hi, and returns the number of nodes.
func checkNode(n *node, lo, hi *int64) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.elem == nil {
		return 0, errors.Wrap(ErrInvariant, "node without element")
	}
	k := n.key()
	if lo != nil && k <= *lo {
		return 0, errors.Wrapf(ErrInvariant, "key %d in right subtree of %d", k, *lo)
	}
	if hi != nil && k >= *hi {
		return 0, errors.Wrapf(ErrInvariant, "key %d in left subtree of %d", k, *hi)
	}
	l, err := checkNode(n.left, lo, &k)
	if err != nil {
		return 0, err
	}
	r, err := checkNode(n.right, &k, hi)
	if err != nil {
		return 0, err
	}
	return l + r + 1, nil
}
