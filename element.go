package keyed

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"bytes"
	"io"
	"reflect"
	"strings"
)

// Element is the capability every item stored in a keyed container has to
// provide.
//
// Keys have to be unique within a single container instance. Containers which
// maintain an order silently reject duplicates (bst) or place them adjacent
// (seqlist.Ordered); seqlist.Unordered keeps them in distinct slots.
type Element interface {
	Key() int64         // ordering key
	Display(w io.Writer) // write a human readable representation to w
}

// Less reports whether a orders before b. Nil elements are not ordered.
func Less(a, b Element) bool {
	return a.Key() < b.Key()
}

// Equal reports whether a and b carry the same key.
func Equal(a, b Element) bool {
	return a.Key() == b.Key()
}

// IsNil reports whether e is absent. An interface holding a nil pointer of
// a concrete element type counts as absent as well.
func IsNil(e Element) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// Describe returns the output of e.Display as a single line, with line breaks
// replaced by a separator. It returns an empty string for a nil element.
func Describe(e Element) string {
	if e == nil {
		return ""
	}
	var bf bytes.Buffer
	e.Display(&bf)
	lines := strings.Split(strings.TrimSpace(bf.String()), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	return strings.Join(lines, " · ")
}

// Keys collects the keys of a sequence of elements, in order. It is a
// helper for tests and diagnostics.
func Keys(elems []Element) []int64 {
	keys := make([]int64, len(elems))
	for i, e := range elems {
		keys[i] = e.Key()
	}
	return keys
}
