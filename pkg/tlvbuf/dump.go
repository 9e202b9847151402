package tlvbuf

import (
	"fmt"
	"io"
	"strings"

	"github.com/emvkit/tlvkit/pkg/tlv"
)

// Dump writes an indented listing of the buffer's records to w,
// descending into constructed records. Values that are mostly printable
// ASCII are shown as text, the rest as hex.
func (b *Buffer) Dump(w io.Writer) {
	complete := tlv.Walk(b.Bytes(), func(depth int, rec tlv.Record) bool {
		indent := strings.Repeat("  ", depth)
		if rec.Constructed() {
			fmt.Fprintf(w, "%s%X [%d]: (constructed)\n", indent, uint16(rec.Tag), rec.Len())
			return true
		}
		fmt.Fprintf(w, "%s%X [%d]: %s\n", indent, uint16(rec.Tag), rec.Len(), formatValue(rec.Value))
		return true
	})
	if !complete {
		fmt.Fprintln(w, "(malformed data)")
	}
}

// formatValue renders a value as quoted text when most bytes are
// printable, hex otherwise
func formatValue(v []byte) string {
	binary := 0
	for _, c := range v {
		if c < 0x20 || c >= 0x7F {
			binary++
		}
	}
	if 2*binary < len(v) {
		return fmt.Sprintf("%q", v)
	}
	return fmt.Sprintf("% X", v)
}
