/*
Package adapter composes a bounded stack and a bounded FIFO queue over
seqlist.Unordered.

Both adapters enforce a maximum size on top of the growing list. A Stack
works at the back of the list only, so all its operations are O(1). A Queue
enqueues at the back and dequeues at the front, which shifts all remaining
elements and costs O(n). Use ringq.Queue where dequeue cost matters.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package adapter

// DefaultCapacity is a reasonable maximum size for stacks and queues of
// unknown size.
const DefaultCapacity = 100
