package tlv

// Valid reports whether b is wholly composed of well-formed records: the
// scan must reach the clean end of the range, every record's value must
// fit in the bytes that remain, and every constructed record's value must
// itself validate. A single bad length byte anywhere invalidates the
// whole range. Nesting past MaxDepth is treated as invalid.
func Valid(b []byte) bool {
	return valid(b, 0)
}

func valid(b []byte, depth int) bool {
	if depth >= MaxDepth {
		return false
	}
	for {
		rec, n, err := Parse(b)
		if err != nil {
			return false
		}
		if n == 0 {
			return true
		}
		if rec.Constructed() && !valid(rec.Value, depth+1) {
			return false
		}
		b = b[n:]
	}
}
