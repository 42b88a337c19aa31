package ringq

import (
	"io"
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/keyed"
	"github.com/npillmayer/keyed/display"
)

// Queue is a bounded FIFO queue on a circular buffer.
//
//	  head               tail
//	   ↓                  ↓
//	[  B  |  C  |  D  |     ]    count = 3
//
// Slots outside the live range [head, head+count) are always nil.
//
// A Queue must not be copied; use Clone. A value copy would share the
// buffer with the original, and go vet reports such copies.
type Queue struct {
	noCopy noCopy
	buf    []keyed.Element
	head   int // slot of the front element
	tail   int // slot for the next enqueue
	count  int
}

// New creates an empty queue holding at most capacity elements.
// A non-positive capacity results in keyed.ErrInvalidArgument.
func New(capacity int) (*Queue, error) {
	if err := keyed.CheckCapacity(capacity, "queue capacity"); err != nil {
		return nil, err
	}
	return &Queue{buf: make([]keyed.Element, capacity)}, nil
}

// Enqueue appends e at the back of the queue. It returns false, leaving the
// queue unchanged, if the queue is full or e is nil.
func (q *Queue) Enqueue(e keyed.Element) bool {
	if q.IsFull() || keyed.IsNil(e) {
		return false
	}
	q.buf[q.tail] = e
	q.tail = q.next(q.tail)
	q.count++
	return true
}

// Dequeue removes and returns the front element.
func (q *Queue) Dequeue() (keyed.Element, bool) {
	if q.IsEmpty() {
		return nil, false
	}
	e := q.buf[q.head]
	assert(e != nil, "ringq: empty slot at head of non-empty queue")
	q.buf[q.head] = nil
	q.head = q.next(q.head)
	q.count--
	return e, true
}

// Front returns the front element without removing it.
func (q *Queue) Front() (keyed.Element, bool) {
	if q.IsEmpty() {
		return nil, false
	}
	return q.buf[q.head], true
}

// Len returns the number of elements in the queue.
func (q *Queue) Len() int {
	return q.count
}

// Cap returns the fixed capacity of the queue.
func (q *Queue) Cap() int {
	return len(q.buf)
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue) IsEmpty() bool {
	return q.count == 0
}

// IsFull reports whether an Enqueue would be rejected for lack of space.
func (q *Queue) IsFull() bool {
	return q.count == len(q.buf)
}

// Clear drops all elements. Capacity is unchanged.
func (q *Queue) Clear() {
	clear(q.buf)
	q.head, q.tail, q.count = 0, 0, 0
}

// All returns an iterator over the elements, front to back.
// The queue must not be modified during iteration.
func (q *Queue) All() iter.Seq[keyed.Element] {
	return func(yield func(keyed.Element) bool) {
		for i, pos := 0, q.head; i < q.count; i, pos = i+1, q.next(pos) {
			if !yield(q.buf[pos]) {
				return
			}
		}
	}
}

// Clone returns an empty queue with the capacity of q.
//
// Enqueued elements are owned by q and cannot be duplicated. If q is not
// empty, Clone returns the new queue together with ErrElementsNotCloned.
func (q *Queue) Clone() (*Queue, error) {
	c := &Queue{buf: make([]keyed.Element, len(q.buf))}
	if q.IsEmpty() {
		return c, nil
	}
	keyed.T().Infof("ringq: clone of queue with %d elements is empty", q.count)
	return c, errors.Wrapf(ErrElementsNotCloned, "%d elements left in source queue", q.count)
}

// Print writes a dump of the queue to w.
func (q *Queue) Print(w io.Writer) {
	display.Table(w, display.Header{
		Title:    "RING QUEUE",
		Order:    "front→back",
		Count:    q.Len(),
		Capacity: q.Cap(),
		Mark: func(pos int) string {
			switch {
			case pos == 0 && pos == q.count-1:
				return "front/back"
			case pos == 0:
				return "front"
			case pos == q.count-1:
				return "back"
			}
			return ""
		},
	}, q.All())
}

// Check validates cursor bounds, the element count and the occupancy of
// slots.
//
// This checker is meant for tests; no queue operation calls it.
func (q *Queue) Check() error {
	n := len(q.buf)
	if n == 0 {
		return errors.Wrap(ErrCursor, "queue without buffer")
	}
	if q.count < 0 || q.count > n {
		return errors.Wrapf(ErrCursor, "count %d outside [0, %d]", q.count, n)
	}
	if q.head < 0 || q.head >= n || q.tail < 0 || q.tail >= n {
		return errors.Wrapf(ErrCursor, "head %d or tail %d outside [0, %d)", q.head, q.tail, n)
	}
	if (q.head+q.count)%n != q.tail {
		return errors.Wrapf(ErrCursor, "tail %d does not follow head %d by %d", q.tail, q.head, q.count)
	}
	for i := range n {
		live := (i-q.head+n)%n < q.count
		if live == (q.buf[i] == nil) {
			return errors.Wrapf(ErrCursor, "slot %d occupancy does not match live range", i)
		}
	}
	return nil
}

func (q *Queue) next(pos int) int {
	return (pos + 1) % len(q.buf)
}

// noCopy makes go vet's copylocks check flag value copies of a Queue.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
