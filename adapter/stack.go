package adapter

import (
	"io"

	"github.com/npillmayer/keyed"
)

// Stack is a bounded LIFO stack.
type Stack struct {
	bounded
}

// NewStack creates an empty stack holding at most max elements.
// A non-positive max results in keyed.ErrInvalidArgument.
func NewStack(max int) (*Stack, error) {
	b, err := newBounded(max, "stack size")
	if err != nil {
		return nil, err
	}
	return &Stack{bounded: b}, nil
}

// Push puts e on top of the stack. It returns false if the stack is full or
// e is nil.
func (s *Stack) Push(e keyed.Element) bool {
	return s.push(e)
}

// Pop removes and returns the top element.
func (s *Stack) Pop() (keyed.Element, bool) {
	return s.list.RemoveBack()
}

// Top returns the top element without removing it.
func (s *Stack) Top() (keyed.Element, bool) {
	return s.list.At(s.list.Len() - 1)
}

// Print writes a dump of the stack to w, bottom to top.
func (s *Stack) Print(w io.Writer) {
	s.print(w, "STACK", "bottom→top", func(pos int) string {
		if pos == s.Len()-1 {
			return "top"
		}
		return ""
	})
}
