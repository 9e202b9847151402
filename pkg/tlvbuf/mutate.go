package tlvbuf

import (
	"github.com/emvkit/tlvkit/pkg/tlv"
)

// OverwritePolicy selects how Add treats a tag that is already present
type OverwritePolicy uint8

const (
	// RejectDuplicate fails the add with ErrDuplicateTag
	RejectDuplicate OverwritePolicy = iota
	// Overwrite replaces the existing record's value; a same-length value
	// is copied in place without moving any other record
	Overwrite
	// SkipIfExists succeeds without touching the buffer
	SkipIfExists
	// AlwaysAppend appends without looking for an existing record
	AlwaysAppend
)

// Add validates and appends one record, returning a view of its encoded
// value inside the buffer. A zero-length value or a malformed tag fails
// with ErrInvalidRecord; a full buffer fails with ErrBufferFull and
// leaves the contents untouched. Duplicate handling follows policy.
func (b *Buffer) Add(tag tlv.Tag, value []byte, policy OverwritePolicy) (tlv.Record, error) {
	if len(value) == 0 {
		return tlv.Record{}, tlv.ErrInvalidRecord
	}
	tagBytes, err := tlv.EncodeTag(tag)
	if err != nil {
		return tlv.Record{}, err
	}
	lenBytes, err := tlv.EncodeLength(len(value))
	if err != nil {
		return tlv.Record{}, err
	}

	if policy != AlwaysAppend {
		if existing, ok := b.Find(tag); ok {
			switch policy {
			case RejectDuplicate:
				return tlv.Record{}, tlv.ErrDuplicateTag
			case SkipIfExists:
				return existing, nil
			case Overwrite:
				if len(existing.Value) == len(value) {
					copy(existing.Value, value)
					return existing, nil
				}
				b.Delete(tag)
			}
		}
	}

	need := len(tagBytes) + len(lenBytes) + len(value)
	if b.used+need >= len(b.buf) {
		return tlv.Record{}, tlv.ErrBufferFull
	}

	off := b.used
	off += copy(b.buf[off:], tagBytes)
	off += copy(b.buf[off:], lenBytes)
	start := off
	off += copy(b.buf[off:], value)
	b.used = off
	return tlv.Record{Tag: tag, Value: b.buf[start:off:off]}, nil
}

// Delete removes the first record carrying tag, shifting every following
// byte left so no gap remains. It reports whether a record was removed;
// an absent tag is not an error.
func (b *Buffer) Delete(tag tlv.Tag) bool {
	if tag == 0 {
		return false
	}
	data := b.Bytes()
	off := 0
	for {
		rec, n, err := tlv.Parse(data[off:])
		if err != nil || n == 0 {
			return false
		}
		if rec.Tag == tag {
			// The consumed range is filler followed by the record.
			// Leading filler stays put; the record goes, however wide
			// its stored header actually is.
			end := off + n
			start := off
			for data[start] == 0x00 {
				start++
			}
			copy(b.buf[start:], b.buf[end:b.used])
			b.used -= end - start
			return true
		}
		off += n
	}
}

// AddAll parses records out of src and adds each one under policy. The
// walk stops at the first malformed source record or failed add, and the
// records added so far stay in place.
func (b *Buffer) AddAll(src []byte, policy OverwritePolicy) error {
	for {
		rec, n, err := tlv.Parse(src)
		if err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if _, err := b.Add(rec.Tag, rec.Value, policy); err != nil {
			return err
		}
		src = src[n:]
	}
}
