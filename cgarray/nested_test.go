package cgarray_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"cleangenerics.dev/generics/cgarray"
	"cleangenerics.dev/generics/cgtext"
)

func grid() cgarray.Array[cgarray.Array[int]] {
	var outer cgarray.Array[cgarray.Array[int]]
	outer.AppendOwned(cgarray.Of(1, 2))
	outer.AppendOwned(cgarray.Of(3))
	return outer
}

func TestDeepCopyIndependence(t *testing.T) {
	t.Parallel()
	outer := grid()
	dup := cgarray.DeepCopy2(outer)
	inner, err := dup.Slot(0)
	require.NoError(t, err)
	inner.Append(5)

	require.True(t, cgarray.Equal(outer.At(0), cgarray.Of(1, 2)))
	require.True(t, cgarray.Equal(dup.At(0), cgarray.Of(1, 2, 5)))
	require.Equal(t, "[[1, 2], [3]]", outer.String())
	require.Equal(t, "[[1, 2, 5], [3]]", dup.String())
}

// Copy duplicates inner arrays on its own, so it matches DeepCopy2.
func TestCopyMatchesDeepCopy2(t *testing.T) {
	t.Parallel()
	outer := grid()
	viaCopy := outer.Copy()
	viaDeep := cgarray.DeepCopy2(outer)
	require.Equal(t, viaDeep.String(), viaCopy.String())

	inner, err := viaCopy.Slot(1)
	require.NoError(t, err)
	inner.Map(func(x int) int { return -x })
	require.Equal(t, "[[1, 2], [3]]", outer.String())
	require.Equal(t, "[[1, 2], [3]]", viaDeep.String())
	require.Equal(t, "[[1, 2], [-3]]", viaCopy.String())
}

func cube() cgarray.Array[cgarray.Array[cgarray.Array[cgtext.Buffer]]] {
	var out cgarray.Array[cgarray.Array[cgarray.Array[cgtext.Buffer]]]
	for i := range 3 {
		var plane cgarray.Array[cgarray.Array[cgtext.Buffer]]
		for j := range 2 {
			var row cgarray.Array[cgtext.Buffer]
			row.Produce(2, func(k int) cgtext.Buffer {
				return cgtext.FromInt(i*100 + j*10 + k)
			})
			plane.AppendOwned(row.Move())
		}
		out.AppendOwned(plane.Move())
	}
	return out
}

func TestDeepCopy3(t *testing.T) {
	t.Parallel()
	src := cube()
	want := src.String()
	viaDeep := cgarray.DeepCopy3(src)
	viaCopy := src.Copy()
	require.Equal(t, want, viaDeep.String())
	require.Equal(t, want, viaCopy.String())

	for _, dup := range []*cgarray.Array[cgarray.Array[cgarray.Array[cgtext.Buffer]]]{&viaDeep, &viaCopy} {
		plane, err := dup.Slot(2)
		require.NoError(t, err)
		row, err := plane.Slot(1)
		require.NoError(t, err)
		cell, err := row.Slot(0)
		require.NoError(t, err)
		cell.AppendString("x")
		row.Append(cgtext.FromString("extra"))
	}
	require.Equal(t, want, src.String())
	require.Equal(t, viaDeep.String(), viaCopy.String())
	require.NotEqual(t, want, viaDeep.String())
}

func TestDeepCopyEmpty(t *testing.T) {
	t.Parallel()
	var outer cgarray.Array[cgarray.Array[int]]
	dup := cgarray.DeepCopy2(outer)
	require.Zero(t, dup.Len())
	require.Zero(t, dup.Cap())

	var deeper cgarray.Array[cgarray.Array[cgarray.Array[int]]]
	deeper.AppendOwned(cgarray.Array[cgarray.Array[int]]{})
	dup3 := cgarray.DeepCopy3(deeper)
	require.Equal(t, "[[]]", dup3.String())
}
