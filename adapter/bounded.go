package adapter

import (
	"io"

	"github.com/npillmayer/keyed"
	"github.com/npillmayer/keyed/display"
	"github.com/npillmayer/keyed/seqlist"
)

// bounded is the common base of Stack and Queue: an unordered list with a
// size limit.
type bounded struct {
	list *seqlist.Unordered
	max  int
}

func newBounded(limit int, what string) (bounded, error) {
	if err := keyed.CheckCapacity(limit, what); err != nil {
		return bounded{}, err
	}
	list, err := seqlist.NewUnordered(min(limit, seqlist.DefaultCapacity))
	if err != nil {
		return bounded{}, err
	}
	return bounded{list: list, max: limit}, nil
}

// Len returns the number of elements.
func (b bounded) Len() int { return b.list.Len() }

// Cap returns the maximum number of elements.
func (b bounded) Cap() int { return b.max }

// IsEmpty reports whether there are no elements.
func (b bounded) IsEmpty() bool { return b.list.IsEmpty() }

// IsFull reports whether the maximum size is reached.
func (b bounded) IsFull() bool { return b.list.Len() >= b.max }

// Clear drops all elements.
func (b bounded) Clear() { b.list.Clear() }

func (b bounded) push(e keyed.Element) bool {
	if b.IsFull() {
		return false
	}
	return b.list.InsertBack(e)
}

func (b bounded) print(w io.Writer, title, order string, mark func(int) string) {
	display.Table(w, display.Header{
		Title:    title,
		Order:    order,
		Count:    b.Len(),
		Capacity: b.max,
		Mark:     mark,
	}, b.list.All())
}
