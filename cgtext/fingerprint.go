package cgtext

import (
	"github.com/hashicorp/golang-lru/v2/simplelru"
	"lukechampine.com/blake3"
)

// Fingerprint returns a 256 bit hash of the content.
// Buffers with equal content have equal fingerprints.
func (b Buffer) Fingerprint() [32]byte {
	return blake3.Sum256(b.Bytes())
}

// Interner keeps a bounded table of canonical Buffers, keyed by fingerprint.
// The least recently used entry is evicted when the table is full.
// Interner is not safe for concurrent use.
type Interner struct {
	table *simplelru.LRU[[32]byte, Buffer]
}

// NewInterner returns an Interner holding at most size entries.
func NewInterner(size int) *Interner {
	table, err := simplelru.NewLRU[[32]byte, Buffer](size, nil)
	if err != nil {
		panic(err)
	}
	return &Interner{table: table}
}

// Intern returns a copy of the canonical Buffer with the same content as b,
// storing a copy of b first if there was none.
// The result never shares storage with the table or with b.
func (in *Interner) Intern(b Buffer) Buffer {
	fp := b.Fingerprint()
	if canon, ok := in.table.Get(fp); ok {
		return canon.Copy()
	}
	in.table.Add(fp, b.Copy())
	return b.Copy()
}

// Contains reports whether a Buffer with the same content as b is in the table.
func (in *Interner) Contains(b Buffer) bool {
	return in.table.Contains(b.Fingerprint())
}

// Len returns the number of entries in the table.
func (in *Interner) Len() int {
	return in.table.Len()
}

// Purge drops every entry.
func (in *Interner) Purge() {
	in.table.Purge()
}
