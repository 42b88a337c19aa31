/*
Package keyed offers a small family of containers for records identified by an
integer key.

Elements

Every item stored in one of the containers implements Element: it exposes a
64-bit signed key and is able to display itself. The containers never look
behind this interface; ordering is defined by key alone.

	type Element interface {
	    Key() int64
	    Display(w io.Writer)
	}

Containers

Sub-packages provide the containers:

	dynarray   growable backing store (doubling, never shrinking)
	seqlist    unordered and ordered (binary search) sequential lists
	bst        unbalanced binary search tree
	ringq      fixed capacity circular-buffer queue
	adapter    bounded stack and FIFO queue composed over seqlist.Unordered

Package records provides ready-made elements (students, employees, products),
package display renders the Print output shared by all containers.

A container owns the elements handed to it. Removal returns an element to the
caller; lookups return a view which the caller must not hand to a second
container. Looking up a missing key, or removing from an empty container,
yields an absent result (nil, false), never an error. The only error produced
by the containers is ErrInvalidArgument at construction time.

None of the containers is safe for concurrent use. Clients sharing a container
between goroutines have to guard it, e.g., with a mutex per container.

_________________________________________________________________________

Performance characteristics:

	Operation        | Unordered | Ordered   | BST (avg) | Ring queue
	-----------------+-----------+-----------+-----------+-----------
	Search by key    |  O(n)     |  O(log n) |  O(log n) |     –
	Insert front     |  O(n)     |  O(n)     |  O(log n) |     –
	Insert back      |  O(1)*    |  O(n)     |  O(log n) |  O(1)
	Remove front     |  O(n)     |  O(n)     |     –     |  O(1)
	Remove back      |  O(1)     |  O(1)     |     –     |     –
	Remove by key    |  O(n)     |  O(n)     |  O(log n) |     –

	* amortized

The tree is not balanced; degenerate insertion orders give O(n) cost.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package keyed

import (
	"github.com/cockroachdb/errors"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// ErrInvalidArgument is flagged whenever a container is constructed with
// invalid parameters, e.g. a non-positive capacity. It is the only error
// which containers return; absent results are signalled by return values.
var ErrInvalidArgument = errors.New("keyed: invalid argument")

// CheckCapacity returns a wrapped ErrInvalidArgument if capacity is not positive.
// what names the parameter in the error message.
func CheckCapacity(capacity int, what string) error {
	if capacity <= 0 {
		return errors.Wrapf(ErrInvalidArgument, "%s must be greater than zero, is %d",
			what, capacity)
	}
	return nil
}
