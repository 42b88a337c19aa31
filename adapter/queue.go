package adapter

import (
	"io"

	"github.com/npillmayer/keyed"
)

// Queue is a bounded FIFO queue. Dequeue is O(n).
type Queue struct {
	bounded
}

// NewQueue creates an empty queue holding at most max elements.
// A non-positive max results in keyed.ErrInvalidArgument.
func NewQueue(max int) (*Queue, error) {
	b, err := newBounded(max, "queue size")
	if err != nil {
		return nil, err
	}
	return &Queue{bounded: b}, nil
}

// Enqueue appends e at the back. It returns false if the queue is full or
// e is nil.
func (q *Queue) Enqueue(e keyed.Element) bool {
	return q.push(e)
}

// Dequeue removes and returns the front element. All remaining elements
// move one position towards the front.
func (q *Queue) Dequeue() (keyed.Element, bool) {
	return q.list.RemoveFront()
}

// Front returns the front element without removing it.
func (q *Queue) Front() (keyed.Element, bool) {
	return q.list.At(0)
}

// Print writes a dump of the queue to w.
func (q *Queue) Print(w io.Writer) {
	q.print(w, "LIST QUEUE", "front→back", func(pos int) string {
		if pos == 0 {
			return "front"
		}
		return ""
	})
}
