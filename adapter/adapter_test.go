package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/keyed"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type item int64

func (it item) Key() int64          { return int64(it) }
func (it item) Display(w io.Writer) { fmt.Fprintf(w, "item %d", int64(it)) }

func TestConstructionFailure(t *testing.T) {
	if s, err := NewStack(0); s != nil || !errors.Is(err, keyed.ErrInvalidArgument) {
		t.Errorf("NewStack(0): expected ErrInvalidArgument, got %v", err)
	}
	if q, err := NewQueue(-3); q != nil || !errors.Is(err, keyed.ErrInvalidArgument) {
		t.Errorf("NewQueue(-3): expected ErrInvalidArgument, got %v", err)
	}
}

func TestStackIsLIFO(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "keyed")
	defer teardown()

	s, err := NewStack(3)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.Pop(); ok {
		t.Errorf("pop on empty stack must be absent")
	}
	if _, ok := s.Top(); ok {
		t.Errorf("top of empty stack must be absent")
	}
	for i := 1; i <= 3; i++ {
		if !s.Push(item(i)) {
			t.Fatalf("push %d rejected", i)
		}
	}
	if !s.IsFull() || s.Push(item(4)) {
		t.Errorf("expected full stack to reject push")
	}
	if top, _ := s.Top(); top.Key() != 3 {
		t.Errorf("expected 3 on top, got %d", top.Key())
	}
	for want := int64(3); want >= 1; want-- {
		e, ok := s.Pop()
		if !ok || e.Key() != want {
			t.Fatalf("expected to pop %d, got %v", want, e)
		}
	}
	if !s.IsEmpty() {
		t.Errorf("expected empty stack")
	}
}

func TestQueueIsFIFO(t *testing.T) {
	q, err := NewQueue(DefaultCapacity)
	if err != nil {
		t.Fatal(err)
	}
	if q.Cap() != DefaultCapacity {
		t.Errorf("expected capacity %d, got %d", DefaultCapacity, q.Cap())
	}
	for i := range DefaultCapacity {
		if !q.Enqueue(item(i)) {
			t.Fatalf("enqueue %d rejected", i)
		}
	}
	if q.Enqueue(item(-1)) {
		t.Errorf("expected full queue to reject enqueue")
	}
	if q.Enqueue(nil) {
		t.Errorf("expected nil to be rejected")
	}
	if f, _ := q.Front(); f.Key() != 0 {
		t.Errorf("expected 0 at front, got %d", f.Key())
	}
	for i := range DefaultCapacity {
		e, ok := q.Dequeue()
		if !ok || e.Key() != int64(i) {
			t.Fatalf("expected to dequeue %d, got %v", i, e)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Errorf("dequeue on empty queue must be absent")
	}
}

func TestPrintMarks(t *testing.T) {
	s, _ := NewStack(2)
	s.Push(item(10))
	s.Push(item(20))
	var bf bytes.Buffer
	s.Print(&bf)
	if !strings.Contains(bf.String(), "STACK (bottom→top) | 2 elements | capacity 2") ||
		!strings.Contains(bf.String(), "top") {
		t.Errorf("unexpected stack dump:\n%s", bf.String())
	}
	q, _ := NewQueue(2)
	q.Enqueue(item(10))
	bf.Reset()
	q.Print(&bf)
	if !strings.Contains(bf.String(), "front") || !strings.Contains(bf.String(), "item 10") {
		t.Errorf("unexpected queue dump:\n%s", bf.String())
	}
	q.Clear()
	if !q.IsEmpty() {
		t.Errorf("expected empty queue after Clear")
	}
}
