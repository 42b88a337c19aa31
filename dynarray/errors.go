package dynarray

import "github.com/cockroachdb/errors"

var (
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("dynarray: index out of bounds")
	// ErrNilElement signals an attempt to store an absent element.
	ErrNilElement = errors.New("dynarray: element must not be nil")
)
