package bst

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/keyed"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type item struct {
	key int64
	tag string
}

func (it *item) Key() int64          { return it.key }
func (it *item) Display(w io.Writer) { fmt.Fprintf(w, "item #%d %s", it.key, it.tag) }

func newTree(t *testing.T, keys ...int64) *Tree {
	t.Helper()
	tree := New()
	for _, k := range keys {
		if !tree.Insert(&item{key: k}) {
			t.Fatalf("Insert(%d) rejected", k)
		}
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("tree invalid after inserts: %v", err)
	}
	return tree
}

func keysOf(seq func(func(keyed.Element) bool)) []int64 {
	var keys []int64
	for e := range seq {
		keys = append(keys, e.Key())
	}
	return keys
}

var balanced = []int64{50, 25, 75, 15, 35, 60, 85}

func TestEmptyTree(t *testing.T) {
	var tree Tree
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("expected zero tree to be empty")
	}
	if _, ok := tree.Search(1); ok {
		t.Errorf("search in empty tree must be absent")
	}
	if _, ok := tree.Remove(1); ok {
		t.Errorf("remove from empty tree must be absent")
	}
	if _, ok := tree.Min(); ok {
		t.Errorf("min of empty tree must be absent")
	}
	if _, ok := tree.Max(); ok {
		t.Errorf("max of empty tree must be absent")
	}
	tree.InOrder(func(keyed.Element) bool {
		t.Errorf("visit called for empty tree")
		return true
	})
}

func TestInsertAndTraversals(t *testing.T) {
	tree := newTree(t, balanced...)
	if tree.Len() != 7 || tree.Height() != 3 {
		t.Errorf("expected 7 elements at height 3, got %d at %d", tree.Len(), tree.Height())
	}
	if diff := cmp.Diff([]int64{15, 25, 35, 50, 60, 75, 85}, keysOf(tree.All())); diff != "" {
		t.Errorf("in-order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{50, 25, 15, 35, 75, 60, 85}, keysOf(tree.Walk(PreOrder))); diff != "" {
		t.Errorf("pre-order (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{15, 35, 25, 60, 85, 75, 50}, keysOf(tree.Walk(PostOrder))); diff != "" {
		t.Errorf("post-order (-want +got):\n%s", diff)
	}
	var visited []int64
	tree.PostOrder(func(e keyed.Element) bool {
		visited = append(visited, e.Key())
		return len(visited) < 3
	})
	if diff := cmp.Diff([]int64{15, 35, 25}, visited); diff != "" {
		t.Errorf("early stop (-want +got):\n%s", diff)
	}
	if min, _ := tree.Min(); min.Key() != 15 {
		t.Errorf("expected min 15, got %d", min.Key())
	}
	if max, _ := tree.Max(); max.Key() != 85 {
		t.Errorf("expected max 85, got %d", max.Key())
	}
}

func TestDuplicateKeyIsIgnored(t *testing.T) {
	tree := newTree(t, 2, 1, 3)
	first, _ := tree.Search(2)
	if tree.Insert(&item{key: 2, tag: "dup"}) {
		t.Errorf("duplicate insert must be rejected")
	}
	if tree.Len() != 3 {
		t.Errorf("duplicate insert must not change size, is %d", tree.Len())
	}
	if e, _ := tree.Search(2); e != first {
		t.Errorf("duplicate insert must keep the element already present")
	}
	if tree.Insert(nil) {
		t.Errorf("nil insert must be rejected")
	}
	var nobody *item
	if tree.Insert(nobody) {
		t.Errorf("typed nil insert must be rejected")
	}
}

func TestRemoveLeafAndOneChild(t *testing.T) {
	tree := newTree(t, 50, 30, 70, 20, 80)
	if e, ok := tree.Remove(20); !ok || e.Key() != 20 {
		t.Fatalf("expected to remove leaf 20")
	}
	// 70 has only a right child now
	if e, ok := tree.Remove(70); !ok || e.Key() != 70 {
		t.Fatalf("expected to remove one-child node 70")
	}
	if tree.root.right.key() != 80 {
		t.Errorf("expected 80 to be spliced into place of 70, is %d", tree.root.right.key())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if diff := cmp.Diff([]int64{30, 50, 80}, keysOf(tree.All())); diff != "" {
		t.Errorf("in-order (-want +got):\n%s", diff)
	}
	if _, ok := tree.Remove(20); ok {
		t.Errorf("expected second removal of 20 to be absent")
	}
}

func TestRemoveTwoChildrenPromotesSuccessor(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tree := New()
	for _, k := range balanced {
		tree.Insert(&item{key: k, tag: fmt.Sprintf("k%d", k)})
	}
	e, ok := tree.Remove(50)
	if !ok {
		t.Fatalf("expected to remove 50")
	}
	if e.Key() != 50 || e.(*item).tag != "k50" {
		t.Errorf("expected the requested element to be returned, got %v", e)
	}
	if diff := cmp.Diff([]int64{15, 25, 35, 60, 75, 85}, keysOf(tree.All())); diff != "" {
		t.Errorf("in-order (-want +got):\n%s", diff)
	}
	if root, _ := tree.Root(); root.Key() != 60 {
		t.Errorf("expected successor 60 as new root, got %d", root.Key())
	}
	if tree.Len() != 6 {
		t.Errorf("expected 6 elements, is %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestRemoveSuccessorWithRightChild(t *testing.T) {
	// successor 60 of 50 has a right child 65
	tree := newTree(t, 50, 25, 75, 60, 85, 65)
	tree.Remove(50)
	if root, _ := tree.Root(); root.Key() != 60 {
		t.Errorf("expected successor 60 as new root, got %d", root.Key())
	}
	if tree.root.right.left.key() != 65 {
		t.Errorf("expected 65 to take the successor's place")
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
}

func TestDegenerateTreeHeight(t *testing.T) {
	keys := make([]int64, 100)
	for i := range keys {
		keys[i] = int64(i)
	}
	tree := newTree(t, keys...)
	if tree.Height() != 100 {
		t.Errorf("expected sorted inserts to degenerate to height 100, is %d", tree.Height())
	}
	for _, k := range keys {
		if _, ok := tree.Remove(k); !ok {
			t.Fatalf("expected to remove %d", k)
		}
	}
	if !tree.IsEmpty() || tree.Height() != 0 {
		t.Errorf("expected empty tree")
	}
}

func TestCheckDetectsViolation(t *testing.T) {
	tree := newTree(t, 10, 5, 15)
	tree.root.left.elem = &item{key: 12}
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected ErrInvariant, got %v", err)
	}
	tree = newTree(t, 10)
	tree.size = 2
	if err := tree.Check(); !errors.Is(err, ErrInvariant) {
		t.Errorf("expected size mismatch, got %v", err)
	}
}

func TestPrintAndDot(t *testing.T) {
	tree := newTree(t, 2, 1, 3, 4)
	var bf bytes.Buffer
	tree.PrintTraversal(&bf, PreOrder)
	if !strings.Contains(bf.String(), "pre-order") || !strings.Contains(bf.String(), "4 elements") {
		t.Errorf("unexpected dump:\n%s", bf.String())
	}
	bf.Reset()
	if err := tree.WriteDot(&bf); err != nil {
		t.Fatal(err)
	}
	out := bf.String()
	t.Logf("\n%s", out)
	if !strings.HasPrefix(strings.TrimSpace(out), "digraph") {
		t.Errorf("expected a digraph, got\n%s", out)
	}
	// 3 has a right child only and gets a placeholder for the left one
	if n := strings.Count(out, "->"); n != 4 {
		t.Errorf("expected 4 edges including the placeholder, have %d", n)
	}
	tree.Clear()
	if tree.Len() != 0 || !slices.Equal(keysOf(tree.All()), nil) {
		t.Errorf("expected tree to be empty after Clear")
	}
}

func TestNilTreeIsEmpty(t *testing.T) {
	var tree *Tree
	tree.Clear()
	if !tree.IsEmpty() || tree.Len() != 0 || tree.Height() != 0 {
		t.Errorf("expected nil tree to be empty")
	}
	if _, ok := tree.Search(1); ok {
		t.Errorf("search in nil tree must be absent")
	}
	if _, ok := tree.Remove(1); ok {
		t.Errorf("remove from nil tree must be absent")
	}
	if keysOf(tree.All()) != nil {
		t.Errorf("expected no elements in nil tree")
	}
}

func TestPrintShape(t *testing.T) {
	tree := newTree(t, balanced...)
	tree.Remove(60)
	var bf bytes.Buffer
	tree.PrintShape(&bf)
	out := bf.String()
	if !strings.HasPrefix(out, "BINARY SEARCH TREE, height 3 (shape) | 6 elements\n") {
		t.Errorf("unexpected title line in\n%s", out)
	}
	if !strings.Contains(out, "\n50(25(15,35),75(-,85))\n") {
		t.Errorf("unexpected shape in\n%s", out)
	}
	bf.Reset()
	New().PrintShape(&bf)
	if !strings.Contains(bf.String(), "0 elements") {
		t.Errorf("unexpected dump of empty tree:\n%s", bf.String())
	}
}
