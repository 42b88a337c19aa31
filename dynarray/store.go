package dynarray

import (
	"iter"

	"github.com/cockroachdb/errors"
	"github.com/npillmayer/keyed"
)

// Store is a growable, owning array of elements.
//
// A Store has to be created with New. It is not safe for concurrent use.
type Store struct {
	cfg   Config
	slots []keyed.Element // len(slots) is the capacity
	n     int             // number of live elements
}

// New creates an empty store with validated configuration.
func New(cfg Config) (*Store, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Store{
		cfg:   cfg,
		slots: make([]keyed.Element, cfg.InitialCapacity),
	}, nil
}

// Len returns the number of live elements.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return s.n
}

// Cap returns the number of allocated slots.
func (s *Store) Cap() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}

// InsertAt inserts e at index i, taking ownership of it. Elements at or after
// i move one slot towards the end. i may equal Len(), which appends.
//
// If the store is full, capacity doubles before the insert proceeds.
func (s *Store) InsertAt(i int, e keyed.Element) error {
	if keyed.IsNil(e) {
		return ErrNilElement
	}
	if i < 0 || i > s.n {
		return ErrIndexOutOfBounds
	}
	if s.n == len(s.slots) {
		s.grow()
	}
	copy(s.slots[i+1:s.n+1], s.slots[i:s.n])
	s.slots[i] = e
	s.n++
	return nil
}

// RemoveAt removes the element at index i and returns ownership of it to the
// caller. Trailing elements move one slot towards the front.
// Returns false if i is not a valid index.
func (s *Store) RemoveAt(i int) (keyed.Element, bool) {
	if s == nil || i < 0 || i >= s.n {
		return nil, false
	}
	e := s.slots[i]
	copy(s.slots[i:s.n-1], s.slots[i+1:s.n])
	s.n--
	s.slots[s.n] = nil // release for the collector
	return e, true
}

// Get returns the element at index i without transferring ownership.
func (s *Store) Get(i int) (keyed.Element, bool) {
	if s == nil || i < 0 || i >= s.n {
		return nil, false
	}
	return s.slots[i], true
}

// Set overwrites the element at index i with e and returns the previous
// occupant. It fails for nil elements and invalid indices.
func (s *Store) Set(i int, e keyed.Element) (keyed.Element, bool) {
	if s == nil || keyed.IsNil(e) || i < 0 || i >= s.n {
		return nil, false
	}
	old := s.slots[i]
	s.slots[i] = e
	return old, true
}

// Clear drops all elements. Capacity is kept.
func (s *Store) Clear() {
	if s == nil {
		return
	}
	clear(s.slots[:s.n])
	s.n = 0
}

// All returns an iterator over index/element pairs in slot order.
// The store must not be modified during iteration.
func (s *Store) All() iter.Seq2[int, keyed.Element] {
	return func(yield func(int, keyed.Element) bool) {
		if s == nil {
			return
		}
		for i := 0; i < s.n; i++ {
			if !yield(i, s.slots[i]) {
				return
			}
		}
	}
}

// Check validates the slot invariants of the store.
func (s *Store) Check() error {
	if s == nil {
		return nil
	}
	if s.n < 0 || s.n > len(s.slots) {
		return errors.Wrapf(ErrIndexOutOfBounds, "length %d exceeds capacity %d", s.n, len(s.slots))
	}
	for i := 0; i < s.n; i++ {
		if s.slots[i] == nil {
			return errors.Wrapf(ErrNilElement, "live slot %d is empty", i)
		}
	}
	for i := s.n; i < len(s.slots); i++ {
		if s.slots[i] != nil {
			return errors.Wrapf(ErrIndexOutOfBounds, "free slot %d is occupied", i)
		}
	}
	return nil
}

func (s *Store) grow() {
	from := len(s.slots)
	to := from * GrowthFactor
	assert(to > from, "dynarray: capacity overflow")
	slots := make([]keyed.Element, to)
	copy(slots, s.slots[:s.n])
	s.slots = slots
	keyed.T().Debugf("dynarray: capacity %d -> %d", from, to)
	if s.cfg.OnGrow != nil {
		s.cfg.OnGrow(from, to)
	}
}
