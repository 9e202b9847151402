package tlv

// Errors
var (
	ErrTruncatedTag    = &FormatError{"tag continuation runs past end of input"}
	ErrTruncatedLength = &FormatError{"length field runs past end of input"}
	ErrLengthTooWide   = &FormatError{"length field wider than 2 bytes"}
	ErrTruncatedValue  = &FormatError{"declared length exceeds remaining bytes"}
	ErrInvalidRecord   = &FormatError{"zero-length value or malformed tag"}
	ErrDuplicateTag    = &FormatError{"tag already present"}
	ErrBufferFull      = &FormatError{"buffer capacity exceeded"}
	ErrTooDeep         = &FormatError{"nesting deeper than MaxDepth"}
)

// FormatError represents a TLV format or build error
type FormatError struct {
	Message string
}

func (e *FormatError) Error() string {
	return e.Message
}
