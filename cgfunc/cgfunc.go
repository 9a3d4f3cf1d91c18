// Package cgfunc provides typed function values which can be called while unset.
//
// Calling an unset function returns the zero value of its result type.
// Any func literal with a matching signature converts to these types, so
// they can be passed wherever a plain func is expected by the caller.
package cgfunc

import (
	"fmt"
	"reflect"

	"cleangenerics.dev/generics/cgtext"
)

// Func0 is a function of no arguments returning R.
type Func0[R any] func() R

// Call calls f, or returns the zero R if f is unset.
func (f Func0[R]) Call() R {
	if f == nil {
		var zero R
		return zero
	}
	return f()
}

func (f Func0[R]) IsSet() bool {
	return f != nil
}

func (f Func0[R]) String() string {
	return describe(f)
}

func (f Func0[R]) Render() cgtext.Buffer {
	return cgtext.FromString(f.String())
}

// Func is a function of one argument of type A returning R.
type Func[R, A any] func(A) R

// Call calls f with a, or returns the zero R if f is unset.
func (f Func[R, A]) Call(a A) R {
	if f == nil {
		var zero R
		return zero
	}
	return f(a)
}

func (f Func[R, A]) IsSet() bool {
	return f != nil
}

func (f Func[R, A]) String() string {
	return describe(f)
}

func (f Func[R, A]) Render() cgtext.Buffer {
	return cgtext.FromString(f.String())
}

// Func2 is a function of two arguments returning R.
type Func2[R, A, B any] func(A, B) R

// Call calls f with a and b, or returns the zero R if f is unset.
func (f Func2[R, A, B]) Call(a A, b B) R {
	if f == nil {
		var zero R
		return zero
	}
	return f(a, b)
}

func (f Func2[R, A, B]) IsSet() bool {
	return f != nil
}

func (f Func2[R, A, B]) String() string {
	return describe(f)
}

func (f Func2[R, A, B]) Render() cgtext.Buffer {
	return cgtext.FromString(f.String())
}

// describe formats the code pointer of a func value as "<function 0x...>".
func describe(f any) string {
	return fmt.Sprintf("<function %#x>", reflect.ValueOf(f).Pointer())
}
