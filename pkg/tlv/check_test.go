package tlv

import (
	"testing"
)

func TestValid(t *testing.T) {
	testCases := []struct {
		name string
		data func(t *testing.T) []byte
		want bool
	}{
		{
			name: "empty range",
			data: func(t *testing.T) []byte { return nil },
			want: true,
		},
		{
			name: "filler only",
			data: func(t *testing.T) []byte { return []byte{0x00, 0x00} },
			want: true,
		},
		{
			name: "single record",
			data: func(t *testing.T) []byte { return rec(t, 0x5A, []byte{0x01, 0x02}) },
			want: true,
		},
		{
			name: "several records",
			data: func(t *testing.T) []byte {
				return buf(
					rec(t, 0x5A, []byte{0x01}),
					rec(t, 0x9F02, []byte{0xAA, 0xBB}),
				)
			},
			want: true,
		},
		{
			name: "nested constructed records",
			data: func(t *testing.T) []byte {
				return rec(t, 0xE1, buf(
					rec(t, 0x57, []byte{0x02}),
					rec(t, 0xA5, rec(t, 0x5A, []byte{0x03})),
				))
			},
			want: true,
		},
		{
			name: "trailing partial record",
			data: func(t *testing.T) []byte {
				return buf(rec(t, 0x5A, []byte{0x01}), []byte{0x57, 0x05, 0x01})
			},
			want: false,
		},
		{
			name: "constructed value not itself well-formed",
			data: func(t *testing.T) []byte {
				// 0xE1 claims 2 bytes of value that do not parse as a record
				return []byte{0xE1, 0x02, 0x57, 0x05}
			},
			want: false,
		},
		{
			name: "length field too wide",
			data: func(t *testing.T) []byte {
				return []byte{0x5A, 0x83, 0x00, 0x00, 0x01, 0xFF}
			},
			want: false,
		},
		{
			name: "nesting past ceiling",
			data: func(t *testing.T) []byte {
				data := rec(t, 0x5A, []byte{0x01})
				for i := 0; i < MaxDepth+2; i++ {
					data = rec(t, 0xE1, data)
				}
				return data
			},
			want: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Valid(tc.data(t)); got != tc.want {
				t.Errorf("Valid: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestValid_CorruptedLengthByte(t *testing.T) {
	data := buf(
		rec(t, 0x5A, []byte{0x01, 0x02, 0x03}),
		rec(t, 0x9F02, []byte{0xAA, 0xBB}),
	)
	if !Valid(data) {
		t.Fatal("Expected pristine buffer to validate")
	}

	// inflating the first record's length byte makes the whole range invalid
	corrupted := append([]byte(nil), data...)
	corrupted[1] = 0x7F
	if Valid(corrupted) {
		t.Error("Expected corrupted length to invalidate the range")
	}
}
