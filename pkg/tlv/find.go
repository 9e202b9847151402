package tlv

// MaxDepth bounds recursive descent into constructed records. The format
// allows arbitrary nesting, so the ceiling keeps adversarial input from
// exhausting the stack.
const MaxDepth = 32

// Find scans b record by record and returns the first record carrying
// tag. The zero tag never matches. Malformed input ends the scan as a
// miss.
func Find(b []byte, tag Tag) (Record, bool) {
	if tag == 0 {
		return Record{}, false
	}
	for {
		rec, n, err := Parse(b)
		if err != nil || n == 0 {
			return Record{}, false
		}
		if rec.Tag == tag {
			return rec, true
		}
		b = b[n:]
	}
}

// FindDeep searches b like Find but additionally descends into each
// constructed record's value, returning the first match at any depth.
// Descent stops at MaxDepth.
func FindDeep(b []byte, tag Tag) (Record, bool) {
	if tag == 0 {
		return Record{}, false
	}
	return findDeep(b, tag, 0)
}

func findDeep(b []byte, tag Tag, depth int) (Record, bool) {
	if depth >= MaxDepth {
		return Record{}, false
	}
	for {
		rec, n, err := Parse(b)
		if err != nil || n == 0 {
			return Record{}, false
		}
		if rec.Tag == tag {
			return rec, true
		}
		if rec.Constructed() {
			if inner, ok := findDeep(rec.Value, tag, depth+1); ok {
				return inner, true
			}
		}
		b = b[n:]
	}
}

// FindLTV scans an LTV-framed range for tag
func FindLTV(b []byte, tag Tag) (Record, bool) {
	for {
		rec, n, err := ParseLTV(b)
		if err != nil || n == 0 {
			return Record{}, false
		}
		if rec.Tag == tag {
			return rec, true
		}
		b = b[n:]
	}
}

// Walk calls fn for every record in b in encoding order, descending into
// constructed records. fn receives the nesting depth, starting at 0.
// Returning false from fn stops the walk. Walk returns true iff the
// entire range was walked without hitting malformed data, a stop, or the
// depth ceiling.
func Walk(b []byte, fn func(depth int, rec Record) bool) bool {
	return walk(b, 0, fn)
}

func walk(b []byte, depth int, fn func(depth int, rec Record) bool) bool {
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
		if !fn(depth, rec) {
			return false
		}
		if rec.Constructed() {
			if !walk(rec.Value, depth+1, fn) {
				return false
			}
		}
		b = b[n:]
	}
}
