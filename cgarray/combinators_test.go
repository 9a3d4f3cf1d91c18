package cgarray_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"cleangenerics.dev/generics/cgarray"
	"cleangenerics.dev/generics/cgfunc"
	"cleangenerics.dev/generics/cgtext"
)

func TestMap(t *testing.T) {
	t.Parallel()
	a := cgarray.Of(1, 2, 3)
	a.Map(func(x int) int { return x * x })
	require.Equal(t, []int{1, 4, 9}, ints(a))

	a.Map(func(x int) int { return x })
	require.Equal(t, []int{1, 4, 9}, ints(a))

	var unset cgfunc.Func[int, int]
	a.Map(unset)
	require.Equal(t, []int{0, 0, 0}, ints(a))
	require.Equal(t, 3, a.Len())
}

func TestMapTexts(t *testing.T) {
	t.Parallel()
	a := texts("a", "b")
	b := a.Copy()
	b.Map(func(x cgtext.Buffer) cgtext.Buffer {
		return x.Concat(cgtext.FromString("!"))
	})
	require.Equal(t, []string{"a!", "b!"}, strs(b))
	require.Equal(t, []string{"a", "b"}, strs(a))
}

func TestFilter(t *testing.T) {
	t.Parallel()
	var a cgarray.Array[int]
	a.Produce(50, func(i int) int { return i * 7 % 13 })
	preds := []cgfunc.Func[bool, int]{
		func(x int) bool { return x%2 == 0 },
		func(x int) bool { return x > 6 },
		func(x int) bool { return true },
		func(x int) bool { return false },
		nil,
	}
	for i, p := range preds {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			out := a.Filter(p)
			require.LessOrEqual(t, out.Len(), a.Len())
			var want []int
			for x := range a.Values() {
				if p.Call(x) {
					want = append(want, x)
				}
			}
			require.Equal(t, want, ints(out))
			for x := range out.Values() {
				require.True(t, p.Call(x))
			}
		})
	}
	require.Equal(t, 50, a.Len())
}

func TestFilterTextsCopies(t *testing.T) {
	t.Parallel()
	a := texts("keep", "drop", "keep too")
	out := a.Filter(func(x cgtext.Buffer) bool { return x.At(0) == 'k' })
	require.Equal(t, []string{"keep", "keep too"}, strs(out))
	s, err := out.Slot(0)
	require.NoError(t, err)
	s.AppendString("!")
	require.Equal(t, []string{"keep", "drop", "keep too"}, strs(a))
}

func TestReduce(t *testing.T) {
	t.Parallel()
	a := cgarray.Of(1, 2, 3, 4)
	require.Equal(t, 24, a.Reduce(func(acc, x int) int { return acc * x }))
	require.Equal(t, -8, a.Reduce(func(acc, x int) int { return acc - x }))

	var empty cgarray.Array[int]
	require.Equal(t, 0, empty.Reduce(func(acc, x int) int { return acc + x + 100 }))

	one := cgarray.Of(42)
	require.Equal(t, 42, one.Reduce(nil))
}

func TestReduceSeedIsCopy(t *testing.T) {
	t.Parallel()
	a := texts("only")
	out := a.Reduce(func(acc, x cgtext.Buffer) cgtext.Buffer { return acc })
	out.AppendString("-changed")
	require.Equal(t, []string{"only"}, strs(a))
}

func TestProduce(t *testing.T) {
	t.Parallel()
	f := func(i int) int { return i*i - 3 }
	for _, n := range []int{0, 1, 15, 16, 17, 100} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			var r cgarray.Array[int]
			r.Produce(n, f)
			require.Equal(t, n, r.Len())
			for i := range n {
				require.Equal(t, f(i), r.At(i))
			}
		})
	}

	var order []int
	var r cgarray.Array[int]
	r.Produce(5, func(i int) int {
		order = append(order, i)
		return i
	})
	require.Equal(t, []int{0, 1, 2, 3, 4}, order)

	r.Produce(-1, func(i int) int { panic("must not be called") })
	require.Equal(t, 5, r.Len())
}

func TestProduceAppends(t *testing.T) {
	t.Parallel()
	a := cgarray.Of(9)
	a.Produce(2, func(i int) int { return i })
	require.Equal(t, []int{9, 0, 1}, ints(a))

	var tx cgarray.Array[cgtext.Buffer]
	tx.Produce(3, cgtext.FromInt)
	require.Equal(t, []string{"0", "1", "2"}, strs(tx))
}

func TestSum(t *testing.T) {
	t.Parallel()
	require.Equal(t, 15, cgarray.Sum(cgarray.Of(1, 2, 3, 4, 5)))
	require.Equal(t, 0, cgarray.Sum(cgarray.Array[int]{}))
	require.InDelta(t, 4.0, cgarray.Sum(cgarray.Of(1.5, 2.5)), 1e-9)
	require.Equal(t, uint8(6), cgarray.Sum(cgarray.Of[uint8](1, 2, 3)))

	joined := cgarray.SumOf(texts("con", "cat", "enated"))
	require.Equal(t, "concatenated", joined.String())
	empty := cgarray.SumOf(cgarray.Array[cgtext.Buffer]{})
	require.Zero(t, empty.Len())
}

func TestSumLeavesTextsAlone(t *testing.T) {
	t.Parallel()
	a := texts("x", "y")
	out := cgarray.SumOf(a)
	out.AppendString("z")
	require.Equal(t, []string{"x", "y"}, strs(a))
}
