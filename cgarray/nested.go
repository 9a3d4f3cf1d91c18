package cgarray

// DeepCopy2 returns an independent copy of a two level Array.
// It gives the same result as src.Copy, which already duplicates inner Arrays.
func DeepCopy2[T any](src Array[Array[T]]) Array[Array[T]] {
	var out Array[Array[T]]
	out.Reserve(src.length)
	for i := 0; i < src.length; i++ {
		out.AppendOwned(src.elems[i].Copy())
	}
	return out
}

// DeepCopy3 returns an independent copy of a three level Array.
func DeepCopy3[T any](src Array[Array[Array[T]]]) Array[Array[Array[T]]] {
	var out Array[Array[Array[T]]]
	out.Reserve(src.length)
	for i := 0; i < src.length; i++ {
		out.AppendOwned(DeepCopy2(src.elems[i]))
	}
	return out
}
