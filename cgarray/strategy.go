package cgarray

import "reflect"

// Duplicator is implemented by types which own storage that a plain
// assignment would share, such as cgtext.Buffer and Array itself.
// Duplicate must return a value which shares nothing with the receiver.
type Duplicator[T any] interface {
	Duplicate() T
}

// strategy returns the function which copies src into dst for element type T.
// Types implementing Duplicator are duplicated one by one, everything else
// is copied in bulk. Interface element types are inspected per element, and
// there a Duplicate method returning any type that satisfies T also counts.
func strategy[T any]() func(dst, src []T) {
	var zero T
	if _, ok := any(zero).(Duplicator[T]); ok {
		return duplicateAll[T]
	}
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return duplicateDynamic[T]
	}
	return bulkCopy[T]
}

func bulkCopy[T any](dst, src []T) {
	copy(dst, src)
}

func duplicateAll[T any](dst, src []T) {
	for i := range src {
		dst[i] = any(src[i]).(Duplicator[T]).Duplicate()
	}
}

func duplicateDynamic[T any](dst, src []T) {
	for i := range src {
		dst[i] = duplicate(src[i])
	}
}

// duplicate returns an independent copy of x.
func duplicate[T any](x T) T {
	if d, ok := any(x).(Duplicator[T]); ok {
		return d.Duplicate()
	}
	if reflect.TypeFor[T]().Kind() == reflect.Interface {
		return duplicateMethod(x)
	}
	return x
}

// duplicateMethod calls the Duplicate method of the value held by x when its
// result fits in T, as for a cgtext.Buffer held in an Array of cgtext.Renderer.
func duplicateMethod[T any](x T) T {
	v := reflect.ValueOf(x)
	if !v.IsValid() {
		return x
	}
	m := v.MethodByName("Duplicate")
	if !m.IsValid() {
		return x
	}
	mt := m.Type()
	if mt.NumIn() != 0 || mt.NumOut() != 1 || !mt.Out(0).AssignableTo(reflect.TypeFor[T]()) {
		return x
	}
	out, _ := m.Call(nil)[0].Interface().(T)
	return out
}
