package tlv

const (
	// tagSeq in the low 5 bits of tag byte 0 means the tag number
	// continues in subsequent bytes.
	tagSeq = 0x1F
	// tagNext set on a continuation byte means another byte follows.
	tagNext = 0x80
	// tagConstructed marks a record whose value is a nested sequence.
	tagConstructed = 0x20
)

// Tag identifies a TLV record. Tags occupy 1 or 2 encoded bytes and are
// stored in 16 bits; the zero value is never a valid tag.
type Tag uint16

// first returns the first encoded byte of the tag
func (t Tag) first() byte {
	if t > 0xFF {
		return byte(t >> 8)
	}
	return byte(t)
}

// Class returns the tag class from bits 7-6 of the first tag byte
func (t Tag) Class() uint8 {
	return t.first() >> 6
}

// Constructed reports whether the tag marks a constructed record
func (t Tag) Constructed() bool {
	return t.first()&tagConstructed != 0
}

// Valid reports whether the tag can be encoded. A valid tag is non-zero,
// a 1-byte tag does not carry the continuation marker in its low 5 bits,
// and the second byte of a 2-byte tag does not have its continuation bit
// set.
func (t Tag) Valid() bool {
	if t == 0 {
		return false
	}
	if t <= 0xFF {
		return byte(t)&tagSeq != tagSeq
	}
	return byte(t)&tagNext == 0
}

// Size returns the number of bytes the tag occupies when encoded
func (t Tag) Size() int {
	if t > 0xFF {
		return 2
	}
	return 1
}

// DecodeTag reads one tag identifier from b, skipping any leading 0x00
// filler bytes. It returns the tag and the number of bytes consumed,
// including filler. n == 0 with a nil error means b held nothing but
// filler. A tag wider than 2 encoded bytes is consumed but reported as
// tag 0 (out of range for the 16-bit tag space).
func DecodeTag(b []byte) (Tag, int, error) {
	i := 0
	for i < len(b) && b[i] == 0x00 {
		i++
	}
	if i == len(b) {
		return 0, 0, nil
	}

	start := i
	tag := Tag(b[i])
	if b[i]&tagSeq == tagSeq {
		for {
			i++
			if i >= len(b) {
				return 0, 0, ErrTruncatedTag
			}
			tag = tag<<8 | Tag(b[i])
			if b[i]&tagNext == 0 {
				break
			}
		}
	}
	i++
	if i-start > 2 {
		tag = 0
	}
	return tag, i, nil
}

// EncodeTag returns the 1- or 2-byte encoding of tag, or ErrInvalidRecord
// if the tag violates the encoding rules.
func EncodeTag(tag Tag) ([]byte, error) {
	if !tag.Valid() {
		return nil, ErrInvalidRecord
	}
	if tag > 0xFF {
		return []byte{byte(tag >> 8), byte(tag)}, nil
	}
	return []byte{byte(tag)}, nil
}
