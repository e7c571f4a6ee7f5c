// Package specialize pairs a generic slice function with explicit
// implementations for particular lengths, and picks the most specific one
// for each call.
//
// The element type is a compile-time parameter; the length is a runtime key,
// since Go arrays cannot be generic over their size.
package specialize

import (
	"fmt"
	"io"
	"slices"
	"strings"
)

// Func operates on a slice of T and writes its result to w.
type Func[T any] func(w io.Writer, s []T) error

// Table resolves a call to either an explicit specialization registered for
// the slice's length or the generic fallback.
type Table[T any] struct {
	generic Func[T]
	byLen   map[int]Func[T]
}

// New returns a Table that uses generic for every length until a
// specialization is registered. It panics if generic is nil.
func New[T any](generic Func[T]) *Table[T] {
	if generic == nil {
		panic("specialize: nil generic implementation")
	}
	return &Table[T]{generic: generic, byLen: make(map[int]Func[T])}
}

// Specialize registers f for slices of exactly n elements and returns t so
// registrations can be chained. Registering n again replaces the previous f.
func (t *Table[T]) Specialize(n int, f Func[T]) *Table[T] {
	if n < 0 {
		panic(fmt.Sprintf("specialize: negative length %d", n))
	}
	if f == nil {
		panic(fmt.Sprintf("specialize: nil specialization for length %d", n))
	}
	t.byLen[n] = f
	return t
}

// Resolve returns the implementation used for n elements. The boolean is
// true when it is an explicit specialization.
func (t *Table[T]) Resolve(n int) (Func[T], bool) {
	if f, ok := t.byLen[n]; ok {
		return f, true
	}
	return t.generic, false
}

// Call resolves on len(s) and invokes the chosen implementation.
func (t *Table[T]) Call(w io.Writer, s []T) error {
	f, _ := t.Resolve(len(s))
	return f(w, s)
}

// Lengths returns the specialized lengths in ascending order.
func (t *Table[T]) Lengths() []int {
	out := make([]int, 0, len(t.byLen))
	for n := range t.byLen {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Write prints the elements of s with %v, separated by a single space and
// followed by a newline. An empty slice prints just the newline.
func Write[T any](w io.Writer, s []T) error {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = fmt.Sprint(v)
	}
	_, err := io.WriteString(w, strings.Join(parts, " ")+"\n")
	return err
}
