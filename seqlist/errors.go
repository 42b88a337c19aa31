package seqlist

import "github.com/cockroachdb/errors"

// ErrUnsorted is returned by Ordered.Check if two adjacent elements are
// out of order.
var ErrUnsorted = errors.New("seqlist: elements out of order")
