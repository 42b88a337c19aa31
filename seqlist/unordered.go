package seqlist

import (
	"io"
	"iter"

	"github.com/npillmayer/keyed"
	"github.com/npillmayer/keyed/display"
	"github.com/npillmayer/keyed/dynarray"
)

// Unordered is a sequential list which keeps elements in insertion order.
//
// Lookup by key is a linear scan returning the first match. Keys are not
// required to be unique; duplicates occupy distinct slots.
//
//	Operation      |  Cost
//	---------------+-----------------
//	InsertFront    |  O(n)
//	InsertBack     |  O(1) amortized
//	RemoveFront    |  O(n)
//	RemoveBack     |  O(1)
//	RemoveByKey    |  O(n)
//	Search         |  O(n)
//	Replace        |  O(n)
type Unordered struct {
	store *dynarray.Store
}

// NewUnordered creates an empty list with an initial capacity.
// A non-positive capacity results in keyed.ErrInvalidArgument.
func NewUnordered(capacity int) (*Unordered, error) {
	return NewUnorderedWithConfig(dynarray.Config{InitialCapacity: capacity})
}

// NewUnorderedWithConfig creates an empty list from a store configuration.
func NewUnorderedWithConfig(cfg dynarray.Config) (*Unordered, error) {
	store, err := dynarray.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Unordered{store: store}, nil
}

// InsertFront inserts e as the first element. Returns false if e is nil.
func (l *Unordered) InsertFront(e keyed.Element) bool {
	return l.store.InsertAt(0, e) == nil
}

// InsertBack appends e. Returns false if e is nil.
func (l *Unordered) InsertBack(e keyed.Element) bool {
	return l.store.InsertAt(l.store.Len(), e) == nil
}

// RemoveFront removes and returns the first element.
func (l *Unordered) RemoveFront() (keyed.Element, bool) {
	return l.store.RemoveAt(0)
}

// RemoveBack removes and returns the last element.
func (l *Unordered) RemoveBack() (keyed.Element, bool) {
	return l.store.RemoveAt(l.store.Len() - 1)
}

// RemoveByKey removes and returns the first element with the given key.
// Elements after it move one position towards the front.
func (l *Unordered) RemoveByKey(key int64) (keyed.Element, bool) {
	i := l.indexOf(key)
	if i < 0 {
		return nil, false
	}
	return l.store.RemoveAt(i)
}

// Search returns the first element with the given key.
func (l *Unordered) Search(key int64) (keyed.Element, bool) {
	return l.store.Get(l.indexOf(key))
}

// Replace overwrites the first element with the given key by e, keeping its
// position. Returns false if e is nil or no element carries key.
func (l *Unordered) Replace(key int64, e keyed.Element) bool {
	if keyed.IsNil(e) {
		return false
	}
	i := l.indexOf(key)
	if i < 0 {
		return false
	}
	_, ok := l.store.Set(i, e)
	return ok
}

// At returns the element at position i.
func (l *Unordered) At(i int) (keyed.Element, bool) {
	return l.store.Get(i)
}

// Len returns the number of elements.
func (l *Unordered) Len() int {
	return l.store.Len()
}

// Cap returns the current capacity of the backing store.
func (l *Unordered) Cap() int {
	return l.store.Cap()
}

// IsEmpty reports whether the list has no elements.
func (l *Unordered) IsEmpty() bool {
	return l.store.Len() == 0
}

// Clear drops all elements.
func (l *Unordered) Clear() {
	l.store.Clear()
}

// All returns an iterator over the elements, front to back.
func (l *Unordered) All() iter.Seq[keyed.Element] {
	return values(l.store)
}

// Print writes a dump of the list to w.
func (l *Unordered) Print(w io.Writer) {
	display.Table(w, display.Header{
		Title:    "UNORDERED LIST",
		Order:    "front→back",
		Count:    l.Len(),
		Capacity: l.Cap(),
	}, l.All())
}

func (l *Unordered) indexOf(key int64) int {
	for i, e := range l.store.All() {
		if e.Key() == key {
			return i
		}
	}
	return -1
}

func values(store *dynarray.Store) iter.Seq[keyed.Element] {
	return func(yield func(keyed.Element) bool) {
		for _, e := range store.All() {
			if !yield(e) {
				return
			}
		}
	}
}
