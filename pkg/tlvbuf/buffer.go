// Package tlvbuf provides a bounded, mutable buffer of concatenated TLV
// records with add, delete, and merge operations.
//
// A Buffer holds zero or more complete, well-formed records in a single
// contiguous byte region and keeps that invariant across every mutation:
// deletes compact in place, appends use minimal header widths. Record
// views handed out by Find and Add borrow the buffer's storage and go
// stale the moment the buffer is mutated again.
//
// Buffers are not safe for concurrent mutation; callers serialize access
// the same way they would around any shared byte slice.
package tlvbuf

import (
	"github.com/emvkit/tlvkit/pkg/tlv"
)

// Buffer is a bounded region holding a sequence of encoded TLV records.
// The capacity is fixed at bind or allocation time; mutations never grow
// the storage.
type Buffer struct {
	buf   []byte
	used  int
	owned bool
}

// New allocates a Buffer with owned storage of the given capacity.
// A non-positive capacity yields an empty buffer that rejects every add.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{
		buf:   make([]byte, capacity),
		owned: true,
	}
}

// Bind borrows caller-supplied storage as an empty buffer. The capacity
// is len(storage); no ownership transfers and Release leaves the bytes
// with the caller.
func Bind(storage []byte) *Buffer {
	return &Buffer{buf: storage}
}

// BindRecords borrows storage whose first used bytes already hold encoded
// records. The existing contents are validated so the buffer invariant
// holds from the start.
func BindRecords(storage []byte, used int) (*Buffer, error) {
	if used < 0 || used > len(storage) {
		return nil, tlv.ErrTruncatedValue
	}
	if !tlv.Valid(storage[:used]) {
		return nil, tlv.ErrInvalidRecord
	}
	return &Buffer{buf: storage, used: used}, nil
}

// Load copies pre-encoded records into a new owned buffer of the given
// capacity, validating them first. The capacity is raised to fit the
// records when needed.
func Load(records []byte, capacity int) (*Buffer, error) {
	if !tlv.Valid(records) {
		return nil, tlv.ErrInvalidRecord
	}
	if capacity < len(records) {
		capacity = len(records)
	}
	b := New(capacity)
	b.used = copy(b.buf, records)
	return b, nil
}

// Bytes returns the encoded records as a view into the buffer's storage.
// The slice goes stale on the next mutation.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.used]
}

// Len returns the number of encoded bytes in use
func (b *Buffer) Len() int {
	return b.used
}

// Cap returns the buffer capacity in bytes
func (b *Buffer) Cap() int {
	return len(b.buf)
}

// Free returns the number of bytes still available for appends
func (b *Buffer) Free() int {
	return len(b.buf) - b.used
}

// Owned reports whether the buffer allocated its own storage rather than
// borrowing the caller's.
func (b *Buffer) Owned() bool {
	return b.owned
}

// Reset drops all records, keeping the storage
func (b *Buffer) Reset() {
	b.used = 0
}

// Release zeroes the bookkeeping and drops the storage reference. Owned
// storage is cleared before it is dropped; borrowed storage is left to
// the caller untouched.
func (b *Buffer) Release() {
	if b.owned {
		for i := range b.buf {
			b.buf[i] = 0
		}
	}
	b.buf = nil
	b.used = 0
	b.owned = false
}

// Find returns the first top-level record carrying tag
func (b *Buffer) Find(tag tlv.Tag) (tlv.Record, bool) {
	return tlv.Find(b.Bytes(), tag)
}

// FindDeep returns the first record carrying tag at any nesting depth
func (b *Buffer) FindDeep(tag tlv.Tag) (tlv.Record, bool) {
	return tlv.FindDeep(b.Bytes(), tag)
}

// Valid reports whether the buffer contents are wholly well-formed.
// Mutator operations preserve this; it exists to vet adopted storage and
// to catch external corruption.
func (b *Buffer) Valid() bool {
	return tlv.Valid(b.Bytes())
}
