package cgarray

import (
	"fmt"

	"go.brendoncarroll.net/exp/slices2"

	"cleangenerics.dev/generics/cgfunc"
	"cleangenerics.dev/generics/cgtext"
)

var _ cgtext.Renderer = Array[int]{}

// RenderWith renders the Array as "[a, b, c]", formatting each element with
// format. An empty Array renders as "[]".
func (a Array[T]) RenderWith(format cgfunc.Func[cgtext.Buffer, T]) cgtext.Buffer {
	if a.length == 0 {
		return cgtext.FromString("[]")
	}
	parts := slices2.Map(a.elems[:a.length], func(x T) cgtext.Buffer {
		return format.Call(x)
	})
	out := cgtext.FromString("[")
	for i := range parts {
		if i > 0 {
			out.AppendString(", ")
		}
		out.Append(parts[i])
	}
	out.WriteByte(']')
	return out
}

// Render renders the Array with each element's own text form.
func (a Array[T]) Render() cgtext.Buffer {
	return a.RenderWith(RenderElem[T])
}

func (a Array[T]) String() string {
	return a.Render().String()
}

// RenderElem returns the text form of x: Renderers render themselves,
// scalars are formatted like their cgtext constructors, and anything else
// goes through fmt.
func RenderElem[T any](x T) cgtext.Buffer {
	switch x := any(x).(type) {
	case cgtext.Renderer:
		return x.Render()
	case int:
		return cgtext.FromInt(x)
	case int8:
		return cgtext.FromInt(int(x))
	case int16:
		return cgtext.FromInt(int(x))
	case int32:
		return cgtext.FromInt(int(x))
	case int64:
		return cgtext.FromInt(int(x))
	case uint:
		return cgtext.FromSize(x)
	case uint8:
		return cgtext.FromChar(x)
	case uint16:
		return cgtext.FromSize(uint(x))
	case uint32:
		return cgtext.FromSize(uint(x))
	case uint64:
		return cgtext.FromSize(uint(x))
	case uintptr:
		return cgtext.FromSize(uint(x))
	case float32:
		return cgtext.FromFloat(x)
	case float64:
		return cgtext.FromFloat64(x)
	case bool:
		return cgtext.FromBool(x)
	case string:
		return cgtext.FromString(x)
	case fmt.Stringer:
		return cgtext.FromString(x.String())
	default:
		return cgtext.FromString(fmt.Sprint(x))
	}
}
