/*
Package ringq implements a bounded FIFO queue of keyed elements on a circular
buffer.

A queue is created with a fixed capacity and never grows. Enqueue and Dequeue
run in O(1) without moving elements: the head and tail cursors advance
modulo the capacity. Full and empty are decided by the element count, not by
comparing cursors, so a queue may use every slot of its buffer.

Elements are owned by the queue while enqueued. As a consequence, a queue
cannot be duplicated with its contents: Clone returns an empty queue of the
same capacity and reports ErrElementsNotCloned if elements were left behind.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package ringq

// DefaultCapacity is a reasonable capacity for queues of unknown size.
const DefaultCapacity = 100

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
