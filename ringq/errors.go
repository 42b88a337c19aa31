package ringq

import "github.com/cockroachdb/errors"

// ErrElementsNotCloned is returned by Clone if the source queue held elements.
// It is not fatal: the accompanying queue is valid, but empty.
var ErrElementsNotCloned = errors.New("ringq: elements are not cloned")

// ErrCursor signals inconsistent cursors or element count, as detected by
// Check.
var ErrCursor = errors.New("ringq: cursor out of bounds")
