package cgarray

import (
	"golang.org/x/exp/constraints"

	"cleangenerics.dev/generics/cgfunc"
)

// Map replaces every element with fn applied to it, in order.
// An unset fn replaces every element with the zero T.
func (a *Array[T]) Map(fn cgfunc.Func[T, T]) {
	a.own()
	for i := 0; i < a.length; i++ {
		a.elems[i] = fn.Call(a.elems[i])
	}
}

// Filter returns a new Array holding copies of the elements for which keep
// returns true, in their original order. a is not modified.
func (a Array[T]) Filter(keep cgfunc.Func[bool, T]) Array[T] {
	var out Array[T]
	for i := 0; i < a.length; i++ {
		if keep.Call(a.elems[i]) {
			out.Append(a.elems[i])
		}
	}
	return out
}

// Reduce folds the elements from left to right, starting from a copy of the
// first one. An empty Array reduces to the zero T.
func (a Array[T]) Reduce(fn cgfunc.Func2[T, T, T]) T {
	if a.length == 0 {
		var zero T
		return zero
	}
	acc := duplicate(a.elems[0])
	for i := 1; i < a.length; i++ {
		acc = fn.Call(acc, a.elems[i])
	}
	return acc
}

// Produce appends count elements, calling fn with 0, 1, ... count-1 in order.
// The Array takes ownership of every value fn returns.
func (a *Array[T]) Produce(count int, fn cgfunc.Func[T, int]) {
	if count <= 0 {
		return
	}
	a.Reserve(a.length + count)
	for i := 0; i < count; i++ {
		a.AppendOwned(fn.Call(i))
	}
}

// Number is any type with a built in + operator.
type Number interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// Adder is implemented by types which define their own addition.
// Add must not modify its receiver or argument.
type Adder[T any] interface {
	Add(T) T
}

// Sum adds up the elements of a. An empty Array sums to 0.
func Sum[T Number](a Array[T]) T {
	return a.Reduce(func(acc, x T) T { return acc + x })
}

// SumOf adds up the elements of a with their Add method.
// An empty Array sums to the zero T.
func SumOf[T Adder[T]](a Array[T]) T {
	return a.Reduce(func(acc, x T) T { return acc.Add(x) })
}
