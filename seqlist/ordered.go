package seqlist

import (
	"io"
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/keyed"
	"github.com/npillmayer/keyed/display"
	"github.com/npillmayer/keyed/dynarray"
)

// Ordered is a sequential list which keeps its elements sorted ascending by
// key.
//
// Sortedness holds after every mutation by construction. IsSorted and Check
// exist for verification only.
//
//	Operation      |  Cost
//	---------------+----------------------------
//	Insert         |  O(log n) search + O(n) shift
//	Search         |  O(log n)
//	RemoveByKey    |  O(log n) search + O(n) shift
//	RemoveFront    |  O(n)
//	RemoveBack     |  O(1)
//	Replace        |  O(log n) same key, O(n) re-key
//	Min, Max       |  O(1)
type Ordered struct {
	store *dynarray.Store
}

// NewOrdered creates an empty ordered list with an initial capacity.
// A non-positive capacity results in keyed.ErrInvalidArgument.
func NewOrdered(capacity int) (*Ordered, error) {
	return NewOrderedWithConfig(dynarray.Config{InitialCapacity: capacity})
}

// NewOrderedWithConfig creates an empty ordered list from a store configuration.
func NewOrderedWithConfig(cfg dynarray.Config) (*Ordered, error) {
	store, err := dynarray.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Ordered{store: store}, nil
}

// Insert inserts e in sorted position. An element with a key equal to
// existing ones is placed before them. Returns false if e is nil.
func (l *Ordered) Insert(e keyed.Element) bool {
	if keyed.IsNil(e) {
		return false
	}
	return l.store.InsertAt(l.lowerBound(e.Key()), e) == nil
}

// InsertFront inserts e in sorted position, which is not necessarily the
// front. It exists to mirror Unordered.
func (l *Ordered) InsertFront(e keyed.Element) bool {
	return l.Insert(e)
}

// InsertBack inserts e in sorted position, which is not necessarily the
// back. It exists to mirror Unordered.
func (l *Ordered) InsertBack(e keyed.Element) bool {
	return l.Insert(e)
}

// Search finds the element with the given key by binary search.
func (l *Ordered) Search(key int64) (keyed.Element, bool) {
	i, _ := l.binarySearch(key)
	return l.store.Get(i)
}

// RemoveByKey removes and returns the element with the given key.
func (l *Ordered) RemoveByKey(key int64) (keyed.Element, bool) {
	i, _ := l.binarySearch(key)
	if i < 0 {
		return nil, false
	}
	return l.store.RemoveAt(i)
}

// RemoveFront removes and returns the element with the smallest key.
func (l *Ordered) RemoveFront() (keyed.Element, bool) {
	return l.store.RemoveAt(0)
}

// RemoveBack removes and returns the element with the largest key.
func (l *Ordered) RemoveBack() (keyed.Element, bool) {
	return l.store.RemoveAt(l.store.Len() - 1)
}

// Replace substitutes the element with the given key by e.
//
// If e carries the same key, it is overwritten in place. Otherwise the old
// element is removed and e is inserted at its sorted position.
// Returns false if e is nil or no element carries key.
func (l *Ordered) Replace(key int64, e keyed.Element) bool {
	if keyed.IsNil(e) {
		return false
	}
	i, _ := l.binarySearch(key)
	if i < 0 {
		return false
	}
	if e.Key() == key {
		_, ok := l.store.Set(i, e)
		return ok
	}
	_, ok := l.store.RemoveAt(i)
	assert(ok, "seqlist: binary search returned an invalid index")
	return l.Insert(e)
}

// Min returns the element with the smallest key.
func (l *Ordered) Min() (keyed.Element, bool) {
	return l.store.Get(0)
}

// Max returns the element with the largest key.
func (l *Ordered) Max() (keyed.Element, bool) {
	return l.store.Get(l.store.Len() - 1)
}

// At returns the element at position i, i.e., the element of rank i.
func (l *Ordered) At(i int) (keyed.Element, bool) {
	return l.store.Get(i)
}

// Len returns the number of elements.
func (l *Ordered) Len() int {
	return l.store.Len()
}

// Cap returns the current capacity of the backing store.
func (l *Ordered) Cap() int {
	return l.store.Cap()
}

// IsEmpty reports whether the list has no elements.
func (l *Ordered) IsEmpty() bool {
	return l.store.Len() == 0
}

// Clear drops all elements.
func (l *Ordered) Clear() {
	l.store.Clear()
}

// All returns an iterator over the elements in ascending key order.
func (l *Ordered) All() iter.Seq[keyed.Element] {
	return values(l.store)
}

// IsSorted reports whether no two adjacent elements are inverted.
func (l *Ordered) IsSorted() bool {
	return l.Check() == nil
}

// Check validates the sort order and the backing store.
func (l *Ordered) Check() error {
	if err := l.store.Check(); err != nil {
		return err
	}
	var prev keyed.Element
	for i, e := range l.store.All() {
		if prev != nil && prev.Key() > e.Key() {
			return errors.Wrapf(ErrUnsorted, "key %d at %d follows key %d",
				e.Key(), i, prev.Key())
		}
		prev = e
	}
	return nil
}

// Print writes a dump of the list to w.
func (l *Ordered) Print(w io.Writer) {
	display.Table(w, display.Header{
		Title:    "ORDERED LIST",
		Order:    "ascending key",
		Count:    l.Len(),
		Capacity: l.Cap(),
	}, l.All())
}

// lowerBound returns the first index whose key is not less than key, or
// Len() if there is none.
func (l *Ordered) lowerBound(key int64) int {
	lo, hi := 0, l.store.Len()
	for lo < hi {
		mid := lo + (hi-lo)/2
		if l.keyAt(mid) < key {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// binarySearch returns the index of an element with the given key, or -1.
// probes counts the midpoints inspected.
func (l *Ordered) binarySearch(key int64) (index int, probes int) {
	lo, hi := 0, l.store.Len()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		probes++
		k := l.keyAt(mid)
		switch {
		case k == key:
			return mid, probes
		case k < key:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1, probes
}

func (l *Ordered) keyAt(i int) int64 {
	e, ok := l.store.Get(i)
	assert(ok, "seqlist: key index out of range")
	return e.Key()
}
