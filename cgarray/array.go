// Package cgarray implements Array, an owned and growable sequence of values.
//
// Elements are copied with a strategy picked from their type: types which
// implement Duplicator are duplicated one at a time, all others are copied in
// bulk. An Array of cgtext.Buffer therefore never shares a Buffer's storage
// with another Array, and an Array of Arrays copies all the way down.
//
// As with cgtext.Buffer, assigning an Array variable to another shares the
// storage until the copy is written to, at which point the copy moves to
// storage of its own. Writes through the Array that owns the storage stay
// visible to values read from it with Get and At, the same way writes to a
// slice element do. Use Copy for an independent duplicate and Move to hand it over.
package cgarray

import (
	"iter"

	"cleangenerics.dev/generics/internal/alloc"
)

// Granularity is the slab size step of an Array, in elements.
const Granularity = 16

var _ Duplicator[Array[int]] = Array[int]{}

// Array is a growable sequence of T.
// The zero value is an empty Array which has allocated nothing.
type Array[T any] struct {
	// owner is the only Array allowed to write into elems.
	owner  *Array[T]
	elems  []T
	length int
}

// New returns an empty Array.
func New[T any]() Array[T] {
	return Array[T]{}
}

// Of returns an Array holding copies of vals.
func Of[T any](vals ...T) Array[T] {
	var a Array[T]
	a.Reserve(len(vals))
	for _, v := range vals {
		a.Append(v)
	}
	return a
}

// Len returns the number of elements.
func (a Array[T]) Len() int {
	return a.length
}

// Cap returns the number of allocated slots, which is 0 or a multiple of Granularity.
func (a Array[T]) Cap() int {
	return len(a.elems)
}

// Get returns the element at i.
// The element still belongs to the Array; Duplicate it to keep it past the next mutation.
func (a Array[T]) Get(i int) (T, error) {
	if err := a.check(i); err != nil {
		var zero T
		return zero, err
	}
	return a.elems[i], nil
}

// At returns the element at i, and panics with an *OutOfBoundsError if there is none.
func (a Array[T]) At(i int) T {
	if err := a.check(i); err != nil {
		panic(err)
	}
	return a.elems[i]
}

// Slot returns a pointer to the element at i, for mutating it in place.
// The pointer is invalidated by any operation which grows or clears the Array.
func (a *Array[T]) Slot(i int) (*T, error) {
	if err := a.check(i); err != nil {
		return nil, err
	}
	a.own()
	return &a.elems[i], nil
}

// Set replaces the element at i with a copy of v.
func (a *Array[T]) Set(i int, v T) error {
	if err := a.check(i); err != nil {
		return err
	}
	a.own()
	a.elems[i] = duplicate(v)
	return nil
}

// Append adds a copy of v to the end of the Array.
func (a *Array[T]) Append(v T) {
	a.AppendOwned(duplicate(v))
}

// AppendOwned adds v to the end of the Array without copying it.
// The Array takes ownership of v; the caller must not use v afterwards.
func (a *Array[T]) AppendOwned(v T) {
	if a.length == len(a.elems) {
		a.grow(alloc.RoundUp(len(a.elems)+1, Granularity))
	}
	a.own()
	a.elems[a.length] = v
	a.length++
}

// AppendArray adds copies of every element of other, in order.
// other may be a itself.
func (a *Array[T]) AppendArray(other Array[T]) {
	n := other.length
	if n == 0 {
		return
	}
	a.Reserve(a.length + n)
	for i := 0; i < n; i++ {
		a.AppendOwned(duplicate(other.elems[i]))
	}
}

// Reserve grows the Array so it holds at least slots elements without
// reallocating. It never shrinks the Array.
func (a *Array[T]) Reserve(slots int) {
	if len(a.elems) >= slots {
		return
	}
	a.grow(alloc.RoundUp(slots, Granularity))
}

// Clear releases the storage. The Array is empty afterwards.
func (a *Array[T]) Clear() {
	*a = Array[T]{}
}

// Copy returns an independent Array holding copies of every element.
func (a Array[T]) Copy() Array[T] {
	var out Array[T]
	if a.length == 0 {
		return out
	}
	out.elems = alloc.Realloc[T]("array", nil, 0, alloc.RoundUp(a.length, Granularity), nil)
	strategy[T]()(out.elems[:a.length], a.elems[:a.length])
	out.length = a.length
	return out
}

// Duplicate is Copy. It makes Arrays of Arrays copy their inner Arrays.
func (a Array[T]) Duplicate() Array[T] {
	return a.Copy()
}

// Move returns an Array owning a's storage and leaves a empty.
func (a *Array[T]) Move() Array[T] {
	out := *a
	*a = Array[T]{}
	return out
}

// MoveFrom releases a's elements and takes over src's storage. src is left empty.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	if a == src {
		return
	}
	*a = src.Move()
}

// Assign replaces the elements of a with copies of other's.
func (a *Array[T]) Assign(other Array[T]) {
	fresh := other.Copy()
	a.MoveFrom(&fresh)
}

// All iterates over the index and value of every element, in order.
// Mutating the Array during iteration is not supported.
func (a Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(i, a.elems[i]) {
				return
			}
		}
	}
}

// Values iterates over every element, in order.
func (a Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < a.length; i++ {
			if !yield(a.elems[i]) {
				return
			}
		}
	}
}

func (a Array[T]) check(i int) error {
	if i < 0 || i >= a.length {
		return &OutOfBoundsError{Index: i, Len: a.length}
	}
	return nil
}

func (a *Array[T]) grow(slots int) {
	a.elems = alloc.Realloc("array", a.elems, a.length, slots, strategy[T]())
	a.owner = a
}

// own moves a to storage of its own if a was copied from another Array.
func (a *Array[T]) own() {
	if a.owner != a && a.elems != nil {
		a.grow(len(a.elems))
	}
	a.owner = a
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b Array[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller supplied element comparison.
func EqualFunc[T any](a, b Array[T], eq func(x, y T) bool) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if !eq(a.elems[i], b.elems[i]) {
			return false
		}
	}
	return true
}
