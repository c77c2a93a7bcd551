// Package sorted provides a generic slice-backed collection that keeps its
// elements ordered by a caller supplied comparator.
package sorted

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Array keeps elements sorted by a less function reporting whether a must
// sort before b. The function must be a strict weak ordering.
// The zero value is not usable; create arrays with New, NewOrdered, FromSorted or FromUnsorted.
type Array[E any] struct {
	elements []E
	less     func(a, b E) bool
}

// New creates an empty array ordered by less.
func New[E any](less func(a, b E) bool) *Array[E] {
	return &Array[E]{less: less}
}

// NewOrdered creates an empty array ordered by the natural order of E.
func NewOrdered[E cmp.Ordered]() *Array[E] {
	return New(cmp.Less[E])
}

// FromUnsorted copies items and sorts them. Equal elements keep their input order.
func FromUnsorted[E any](items []E, less func(a, b E) bool) *Array[E] {
	a := &Array[E]{elements: slices.Clone(items), less: less}
	a.sort()
	return a
}

// FromSorted wraps items that the caller guarantees are already sorted by less.
func FromSorted[E any](items []E, less func(a, b E) bool) *Array[E] {
	return &Array[E]{elements: slices.Clone(items), less: less}
}

func (a *Array[E]) sort() {
	slices.SortStableFunc(a.elements, a.compare)
}

func (a *Array[E]) compare(x, y E) int {
	switch {
	case a.less(x, y):
		return -1
	case a.less(y, x):
		return 1
	default:
		return 0
	}
}

// Len returns the number of elements.
func (a *Array[E]) Len() int {
	return len(a.elements)
}

// IsEmpty reports whether the array has no elements.
func (a *Array[E]) IsEmpty() bool {
	return len(a.elements) == 0
}

// At returns the element at index i. It panics when i is out of range.
func (a *Array[E]) At(i int) E {
	return a.elements[i]
}

// Values returns a copy of the elements in order.
func (a *Array[E]) Values() []E {
	return slices.Clone(a.elements)
}

// All iterates over index/element pairs in order.
func (a *Array[E]) All() iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		for i, e := range a.elements {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Min returns the first element.
func (a *Array[E]) Min() (E, bool) {
	var zero E
	if len(a.elements) == 0 {
		return zero, false
	}
	return a.elements[0], true
}

// Max returns the last element.
func (a *Array[E]) Max() (E, bool) {
	var zero E
	if len(a.elements) == 0 {
		return zero, false
	}
	return a.elements[len(a.elements)-1], true
}

// Insert adds e after any elements that compare equal to it and returns the
// index it was stored at. Appending past the current maximum costs no shifting.
func (a *Array[E]) Insert(e E) int {
	n := len(a.elements)
	if n == 0 || !a.less(e, a.elements[n-1]) {
		a.elements = append(a.elements, e)
		return n
	}
	i := a.upperBound(e)
	a.elements = slices.Insert(a.elements, i, e)
	return i
}

// InsertAll adds every item and restores the ordering once.
func (a *Array[E]) InsertAll(items ...E) {
	if len(items) == 0 {
		return
	}
	a.elements = append(a.elements, items...)
	a.sort()
}

// lowerBound returns the first index whose element is not less than e.
func (a *Array[E]) lowerBound(e E) int {
	lo, hi := 0, len(a.elements)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if a.less(a.elements[m], e) {
			lo = m + 1
		} else {
			hi = m
		}
	}
	return lo
}

// upperBound returns the first index whose element sorts after e.
func (a *Array[E]) upperBound(e E) int {
	lo, hi := 0, len(a.elements)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if a.less(e, a.elements[m]) {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return lo
}

// Search returns the first index at which pred is true, or Len() when it never is.
// pred must be false for a prefix of the array and true for the rest.
func (a *Array[E]) Search(pred func(E) bool) int {
	lo, hi := 0, len(a.elements)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		if pred(a.elements[m]) {
			hi = m
		} else {
			lo = m + 1
		}
	}
	return lo
}

// AnyIndex returns the index of some element equal to e.
func (a *Array[E]) AnyIndex(e E) (int, bool) {
	lo, hi := 0, len(a.elements)
	for lo < hi {
		m := int(uint(lo+hi) >> 1)
		switch {
		case a.less(a.elements[m], e):
			lo = m + 1
		case a.less(e, a.elements[m]):
			hi = m
		default:
			return m, true
		}
	}
	return -1, false
}

// Index returns the first index whose element is equal to e under the ordering.
func (a *Array[E]) Index(e E) (int, bool) {
	i := a.lowerBound(e)
	if i == len(a.elements) || a.less(e, a.elements[i]) {
		return -1, false
	}
	return i, true
}

// LastIndex returns the last index whose element is equal to e under the ordering.
func (a *Array[E]) LastIndex(e E) (int, bool) {
	i := a.upperBound(e) - 1
	if i < 0 || a.less(a.elements[i], e) {
		return -1, false
	}
	return i, true
}

// Contains reports whether an element equal to e is stored.
func (a *Array[E]) Contains(e E) bool {
	_, ok := a.AnyIndex(e)
	return ok
}

// RemoveAt removes and returns the element at index i. It panics when i is out of range.
func (a *Array[E]) RemoveAt(i int) E {
	e := a.elements[i]
	a.elements = slices.Delete(a.elements, i, i+1)
	return e
}

// RemoveRange removes the elements in [lo, hi). It panics when the range is invalid.
func (a *Array[E]) RemoveRange(lo, hi int) {
	a.elements = slices.Delete(a.elements, lo, hi)
}

// RemoveFirst removes and returns the first element. It panics on an empty array.
func (a *Array[E]) RemoveFirst() E {
	return a.RemoveAt(0)
}

// RemoveFirstN removes the first n elements.
func (a *Array[E]) RemoveFirstN(n int) {
	a.RemoveRange(0, n)
}

// RemoveLast removes and returns the last element. It panics on an empty array.
func (a *Array[E]) RemoveLast() E {
	return a.RemoveAt(len(a.elements) - 1)
}

// RemoveLastN removes the last n elements.
func (a *Array[E]) RemoveLastN(n int) {
	a.RemoveRange(len(a.elements)-n, len(a.elements))
}

// RemoveAll drops every element, keeping the allocated capacity.
func (a *Array[E]) RemoveAll() {
	clear(a.elements)
	a.elements = a.elements[:0]
}

// Remove deletes the first element equal to e.
func (a *Array[E]) Remove(e E) bool {
	i, ok := a.Index(e)
	if !ok {
		return false
	}
	a.RemoveAt(i)
	return true
}

// Filter returns a new array holding the elements for which keep returns true.
func (a *Array[E]) Filter(keep func(E) bool) *Array[E] {
	out := &Array[E]{less: a.less}
	for _, e := range a.elements {
		if keep(e) {
			out.elements = append(out.elements, e)
		}
	}
	return out
}

func (a *Array[E]) String() string {
	parts := make([]string, len(a.elements))
	for i, e := range a.elements {
		parts[i] = fmt.Sprint(e)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
