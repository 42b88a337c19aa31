package bst

import "github.com/cockroachdb/errors"

// ErrInvariant signals a violation of the search tree property or of the
// size bookkeeping, as detected by Check.
var ErrInvariant = errors.New("bst: invariant violated")
