package tlvbuf

import (
	"bytes"
	"testing"

	"github.com/emvkit/tlvkit/pkg/tlv"
)

// encodeRecord builds one encoded record for fixtures
func encodeRecord(t *testing.T, tag tlv.Tag, value []byte) []byte {
	t.Helper()
	tb, err := tlv.EncodeTag(tag)
	if err != nil {
		t.Fatalf("EncodeTag(%#x) failed: %v", tag, err)
	}
	lb, err := tlv.EncodeLength(len(value))
	if err != nil {
		t.Fatalf("EncodeLength(%d) failed: %v", len(value), err)
	}
	out := append([]byte{}, tb...)
	out = append(out, lb...)
	return append(out, value...)
}

func TestNew(t *testing.T) {
	b := New(64)
	if b.Cap() != 64 {
		t.Errorf("Cap mismatch: got %d, want 64", b.Cap())
	}
	if b.Len() != 0 {
		t.Errorf("Len mismatch: got %d, want 0", b.Len())
	}
	if b.Free() != 64 {
		t.Errorf("Free mismatch: got %d, want 64", b.Free())
	}
	if !b.Owned() {
		t.Error("Expected allocated buffer to own its storage")
	}
}

func TestBind(t *testing.T) {
	storage := make([]byte, 32)
	b := Bind(storage)
	if b.Cap() != 32 || b.Len() != 0 {
		t.Errorf("Unexpected geometry: cap %d len %d", b.Cap(), b.Len())
	}
	if b.Owned() {
		t.Error("Expected bound buffer to borrow its storage")
	}

	// writes land in the caller's storage
	if _, err := b.Add(0x5A, []byte{0xAA}, AlwaysAppend); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if storage[0] != 0x5A {
		t.Error("Expected record bytes in the bound storage")
	}
}

func TestBindRecords(t *testing.T) {
	records := encodeRecord(t, 0x5A, []byte{0x01, 0x02})
	storage := make([]byte, 32)
	used := copy(storage, records)

	b, err := BindRecords(storage, used)
	if err != nil {
		t.Fatalf("BindRecords failed: %v", err)
	}
	if b.Len() != used {
		t.Errorf("Len mismatch: got %d, want %d", b.Len(), used)
	}
	if _, ok := b.Find(0x5A); !ok {
		t.Error("Expected adopted record to be findable")
	}

	t.Run("rejects malformed contents", func(t *testing.T) {
		bad := []byte{0x5A, 0x10, 0x01}
		if _, err := BindRecords(bad, len(bad)); err == nil {
			t.Error("Expected malformed contents to be rejected")
		}
	})

	t.Run("rejects used past capacity", func(t *testing.T) {
		if _, err := BindRecords(make([]byte, 4), 8); err == nil {
			t.Error("Expected out-of-range used to be rejected")
		}
	})
}

func TestLoad(t *testing.T) {
	records := encodeRecord(t, 0x5A, []byte{0x01, 0x02})

	b, err := Load(records, 64)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !bytes.Equal(b.Bytes(), records) {
		t.Errorf("Contents mismatch: got % X, want % X", b.Bytes(), records)
	}

	// Load copies: mutating the source must not show through
	records[len(records)-1] = 0xFF
	if bytes.Equal(b.Bytes(), records) {
		t.Error("Expected Load to copy the records")
	}

	t.Run("capacity raised to fit", func(t *testing.T) {
		b, err := Load(records, 0)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if b.Cap() < len(records) {
			t.Errorf("Capacity %d below record size %d", b.Cap(), len(records))
		}
	})

	t.Run("rejects malformed records", func(t *testing.T) {
		if _, err := Load([]byte{0x5A, 0x10, 0x01}, 64); err == nil {
			t.Error("Expected malformed records to be rejected")
		}
	})
}

func TestBuffer_Reset(t *testing.T) {
	b := New(64)
	if _, err := b.Add(0x5A, []byte{0x01}, AlwaysAppend); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	b.Reset()
	if b.Len() != 0 {
		t.Errorf("Len after Reset: got %d, want 0", b.Len())
	}
	if b.Cap() != 64 {
		t.Errorf("Cap after Reset: got %d, want 64", b.Cap())
	}
}

func TestBuffer_Release(t *testing.T) {
	t.Run("owned storage is cleared", func(t *testing.T) {
		b := New(16)
		if _, err := b.Add(0x5A, []byte{0xAA}, AlwaysAppend); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		storage := b.buf
		b.Release()
		if b.Len() != 0 || b.Cap() != 0 {
			t.Errorf("Bookkeeping not zeroed: len %d cap %d", b.Len(), b.Cap())
		}
		for i, c := range storage {
			if c != 0 {
				t.Fatalf("Owned storage not cleared at %d: %#x", i, c)
			}
		}
	})

	t.Run("borrowed storage is left alone", func(t *testing.T) {
		storage := make([]byte, 16)
		b := Bind(storage)
		if _, err := b.Add(0x5A, []byte{0xAA}, AlwaysAppend); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
		b.Release()
		if storage[0] != 0x5A {
			t.Error("Expected borrowed storage to keep its bytes")
		}
	})
}

func TestBuffer_Valid(t *testing.T) {
	b := New(64)
	if !b.Valid() {
		t.Error("Expected empty buffer to validate")
	}
	if _, err := b.Add(0x5A, []byte{0x01, 0x02}, AlwaysAppend); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !b.Valid() {
		t.Error("Expected buffer to validate after add")
	}

	// external corruption of a length byte is caught
	b.buf[1] = 0x7F
	if b.Valid() {
		t.Error("Expected corrupted buffer to fail validation")
	}
}
