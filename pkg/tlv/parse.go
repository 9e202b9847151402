package tlv

// Record is a parsed view of one TLV record. Value is a sub-slice of the
// buffer the record was parsed from, valid only until that buffer is
// mutated.
type Record struct {
	Tag   Tag
	Value []byte
}

// Len returns the value length in bytes
func (r Record) Len() int {
	return len(r.Value)
}

// Constructed reports whether the record's value is a nested sequence
func (r Record) Constructed() bool {
	return r.Tag.Constructed()
}

// HeaderSize returns the encoded width of the record's tag and length
// fields, inverting the minimal-form encoding rules.
func (r Record) HeaderSize() int {
	return r.Tag.Size() + lengthSize(len(r.Value))
}

// EncodedSize returns the record's total encoded size
func (r Record) EncodedSize() int {
	return r.HeaderSize() + len(r.Value)
}

// Parse slices one record out of b. It returns the record and the number
// of bytes consumed through the end of the value, including any leading
// 0x00 filler. n == 0 with a nil error is the clean end of the range; a
// non-nil error means the input is malformed and scanning must stop.
func Parse(b []byte) (Record, int, error) {
	tag, n, err := DecodeTag(b)
	if err != nil {
		return Record{}, 0, err
	}
	if n == 0 {
		return Record{}, 0, nil
	}
	length, ln, err := DecodeLength(b[n:])
	if err != nil {
		return Record{}, 0, err
	}
	rest := len(b) - n - ln
	if length > rest {
		return Record{}, 0, ErrTruncatedValue
	}
	start := n + ln
	return Record{Tag: tag, Value: b[start : start+length]}, start + length, nil
}

// ParseLTV slices one record out of b using the ASCII LTV framing: bytes
// 0-3 are the decimal total length (counting the two tag digits), bytes
// 4-5 the decimal tag, and the value starts at byte 6. The same clean-end
// and error conventions as Parse apply, except an empty range is the only
// clean end (LTV has no filler).
func ParseLTV(b []byte) (Record, int, error) {
	if len(b) == 0 {
		return Record{}, 0, nil
	}
	if len(b) < 6 {
		return Record{}, 0, ErrTruncatedLength
	}
	total, err := decimal(b[0:4])
	if err != nil {
		return Record{}, 0, err
	}
	tag, err := decimal(b[4:6])
	if err != nil {
		return Record{}, 0, err
	}
	if total < 2 {
		return Record{}, 0, ErrInvalidRecord
	}
	length := total - 2
	if length > len(b)-6 {
		return Record{}, 0, ErrTruncatedValue
	}
	return Record{Tag: Tag(tag), Value: b[6 : 6+length]}, 6 + length, nil
}

// decimal parses a fixed-width ASCII decimal field
func decimal(b []byte) (int, error) {
	v := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, ErrInvalidRecord
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}
