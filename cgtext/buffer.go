// Package cgtext implements Buffer, an owned and growable byte string which
// always keeps a zero byte after its content.
//
// A Buffer owns its slab. Assigning one Buffer variable to another shares the
// slab until either of them is written to: only the Buffer which last grew the
// slab appends into it in place, every other copy moves to a slab of its own
// before its first write. Code that needs an independent value up front calls
// Copy, and code that hands a Buffer over calls Move.
package cgtext

import (
	"iter"

	"cleangenerics.dev/generics/internal/alloc"
)

// Granularity is the slab size step of a Buffer, in bytes.
const Granularity = 16

// emptyCString is handed out by CString for every empty Buffer.
// It must never be written to.
var emptyCString = []byte{0}

// Renderer is implemented by values which can render themselves as text.
type Renderer interface {
	Render() Buffer
}

var _ Renderer = Buffer{}

// Buffer is a growable byte string.
// The zero value is an empty Buffer which has allocated nothing.
type Buffer struct {
	// owner is the only Buffer allowed to write into data.
	// Bytes below the owner's length are never rewritten.
	owner  *Buffer
	data   []byte
	length int
}

// New returns an empty Buffer.
func New() Buffer {
	return Buffer{}
}

// FromBytes returns a Buffer holding a copy of x.
// An empty or nil x produces the empty Buffer.
func FromBytes(x []byte) Buffer {
	var b Buffer
	b.AppendBytes(x)
	return b
}

// FromString returns a Buffer holding the bytes of s.
func FromString(s string) Buffer {
	var b Buffer
	b.AppendString(s)
	return b
}

// FromCString returns a Buffer holding the bytes of x up to, not including, the first zero byte.
func FromCString(x []byte) Buffer {
	for i, c := range x {
		if c == 0 {
			x = x[:i]
			break
		}
	}
	return FromBytes(x)
}

// Len returns the number of content bytes, not counting the terminator.
func (b Buffer) Len() int {
	return b.length
}

// Cap returns the size of the slab, which is 0 or a multiple of Granularity.
func (b Buffer) Cap() int {
	return len(b.data)
}

// CString returns the content followed by a zero byte.
// The slice is usually a view of the Buffer's storage and must not be modified.
// It stays valid until the Buffer, or the Buffer it was copied from, is next mutated.
func (b Buffer) CString() []byte {
	if b.length == 0 {
		return emptyCString[:1:1]
	}
	if b.data[b.length] != 0 {
		// the owner of the slab has appended past this copy
		out := make([]byte, b.length+1)
		copy(out, b.data[:b.length])
		return out
	}
	return b.data[:b.length+1 : b.length+1]
}

// Bytes returns a view of the content, without the terminator.
func (b Buffer) Bytes() []byte {
	if b.length == 0 {
		return nil
	}
	return b.data[:b.length:b.length]
}

func (b Buffer) String() string {
	return string(b.Bytes())
}

// At returns the byte at i, or 0 if i is out of range.
func (b Buffer) At(i int) byte {
	if i < 0 || i >= b.length {
		return 0
	}
	return b.data[i]
}

// All iterates over the content bytes in order.
func (b Buffer) All() iter.Seq2[int, byte] {
	return func(yield func(int, byte) bool) {
		for i := 0; i < b.length; i++ {
			if !yield(i, b.data[i]) {
				return
			}
		}
	}
}

// Equal returns true if both buffers hold the same bytes.
// A nil other is equal to nothing but a nil b.
func (b *Buffer) Equal(other *Buffer) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	if b.length != other.length {
		return false
	}
	for i := 0; i < b.length; i++ {
		if b.data[i] != other.data[i] {
			return false
		}
	}
	return true
}

// Copy returns an independent Buffer with the same content.
func (b Buffer) Copy() Buffer {
	return FromBytes(b.Bytes())
}

// Duplicate is Copy. It lets containers duplicate Buffers without sharing slabs.
func (b Buffer) Duplicate() Buffer {
	return b.Copy()
}

// Render returns a copy of the Buffer.
func (b Buffer) Render() Buffer {
	return b.Copy()
}

// Move returns a Buffer owning b's slab and leaves b empty.
func (b *Buffer) Move() Buffer {
	out := *b
	*b = Buffer{}
	return out
}

// MoveFrom releases b's content and takes over src's slab. src is left empty.
func (b *Buffer) MoveFrom(src *Buffer) {
	if b == src {
		return
	}
	*b = src.Move()
}

// Clear releases the slab. The Buffer is empty afterwards.
func (b *Buffer) Clear() {
	*b = Buffer{}
}

// Append adds the content of other after the content of b.
// other may be b itself.
func (b *Buffer) Append(other Buffer) {
	b.AppendBytes(other.Bytes())
}

// AppendBytes adds x after the content of b.
func (b *Buffer) AppendBytes(x []byte) {
	if len(x) == 0 {
		return
	}
	b.reserve(len(x))
	copy(b.data[b.length:], x)
	b.length += len(x)
	b.data[b.length] = 0
}

// AppendString adds the bytes of s after the content of b.
func (b *Buffer) AppendString(s string) {
	if len(s) == 0 {
		return
	}
	b.reserve(len(s))
	copy(b.data[b.length:], s)
	b.length += len(s)
	b.data[b.length] = 0
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.AppendBytes(p)
	return len(p), nil
}

// WriteString implements io.StringWriter. It never fails.
func (b *Buffer) WriteString(s string) (int, error) {
	b.AppendString(s)
	return len(s), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (b *Buffer) WriteByte(c byte) error {
	b.reserve(1)
	b.data[b.length] = c
	b.length++
	b.data[b.length] = 0
	return nil
}

// Assign replaces the content of b with a copy of other's.
func (b *Buffer) Assign(other Buffer) {
	b.AssignBytes(other.Bytes())
}

// AssignBytes replaces the content of b with a copy of x.
func (b *Buffer) AssignBytes(x []byte) {
	fresh := FromBytes(x)
	b.MoveFrom(&fresh)
}

// AssignString replaces the content of b with the bytes of s.
func (b *Buffer) AssignString(s string) {
	fresh := FromString(s)
	b.MoveFrom(&fresh)
}

// Concat returns a new Buffer holding b followed by other. Neither operand changes.
func (b Buffer) Concat(other Buffer) Buffer {
	var out Buffer
	out.reserve(b.length + other.length)
	out.AppendBytes(b.Bytes())
	out.AppendBytes(other.Bytes())
	return out
}

// Add is Concat. It lets Buffers be summed.
func (b Buffer) Add(other Buffer) Buffer {
	return b.Concat(other)
}

// reserve makes room for n more bytes and the terminator, in a slab owned by b.
// A Buffer copied from another one gets a slab of its own here.
func (b *Buffer) reserve(n int) {
	if n <= 0 {
		return
	}
	if b.owner == b && n <= len(b.data)-b.length-1 {
		return
	}
	size := alloc.RoundUp(b.length+n, Granularity)
	b.data = alloc.Realloc("text", b.data, b.length, size, func(dst, src []byte) {
		copy(dst, src)
	})
	b.data[size-1] = 0
	b.owner = b
}
