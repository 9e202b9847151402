package tlv

const (
	// lenLong set on length byte 0 means bits 6-0 count the following
	// big-endian length bytes.
	lenLong = 0x80

	// MaxLength is the largest value length this implementation encodes.
	// The length field is 16 bits with only the 0x81/0x82 long forms
	// supported; callers depend on this ceiling staying put.
	MaxLength = 0x7FFF

	// maxLengthBytes bounds the long-form byte count
	maxLengthBytes = 2
)

// DecodeLength reads one length field from b. It returns the decoded
// length and the number of bytes consumed. Lengths above MaxLength fail
// with ErrLengthTooWide, so a decoded length always fits the 0..MaxLength
// data model the encode side enforces.
func DecodeLength(b []byte) (int, int, error) {
	if len(b) == 0 {
		return 0, 0, ErrTruncatedLength
	}
	v := int(b[0])
	if v&lenLong == 0 {
		return v, 1, nil
	}
	n := v & 0x7F
	if n > len(b)-1 {
		return 0, 0, ErrTruncatedLength
	}
	if n > maxLengthBytes {
		return 0, 0, ErrLengthTooWide
	}
	v = 0
	for i := 1; i <= n; i++ {
		v = v<<8 | int(b[i])
	}
	if v > MaxLength {
		return 0, 0, ErrLengthTooWide
	}
	return v, 1 + n, nil
}

// EncodeLength returns the minimal-width encoding of n: short form up to
// 127, 0x81 long form up to 255, 0x82 long form up to MaxLength. Larger
// values fail with ErrLengthTooWide.
func EncodeLength(n int) ([]byte, error) {
	switch {
	case n < 0 || n > MaxLength:
		return nil, ErrLengthTooWide
	case n <= 0x7F:
		return []byte{byte(n)}, nil
	case n <= 0xFF:
		return []byte{0x81, byte(n)}, nil
	default:
		return []byte{0x82, byte(n >> 8), byte(n)}, nil
	}
}

// lengthSize returns the encoded width of the length field for a value
// of n bytes, assuming the minimal form EncodeLength produces.
func lengthSize(n int) int {
	switch {
	case n <= 0x7F:
		return 1
	case n <= 0xFF:
		return 2
	default:
		return 3
	}
}
