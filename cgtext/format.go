package cgtext

import "strconv"

// FromChar returns a one byte Buffer.
func FromChar(c byte) Buffer {
	var b Buffer
	b.WriteByte(c)
	return b
}

// FromInt formats x in decimal.
func FromInt(x int) Buffer {
	var scratch [16]byte
	return FromBytes(strconv.AppendInt(scratch[:0], int64(x), 10))
}

// FromSize formats an unsigned size in decimal.
func FromSize(x uint) Buffer {
	var scratch [16]byte
	return FromBytes(strconv.AppendUint(scratch[:0], uint64(x), 10))
}

// FromFloat formats x in fixed point with six decimals, like C's "%f".
func FromFloat(x float32) Buffer {
	var scratch [16]byte
	return FromBytes(strconv.AppendFloat(scratch[:0], float64(x), 'f', 6, 32))
}

// FromFloat64 formats x in fixed point with six decimals.
func FromFloat64(x float64) Buffer {
	var scratch [16]byte
	return FromBytes(strconv.AppendFloat(scratch[:0], x, 'f', 6, 64))
}

// FromBool formats x as "true" or "false".
func FromBool(x bool) Buffer {
	return FromString(strconv.FormatBool(x))
}
