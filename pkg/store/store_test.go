package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emvkit/tlvkit/pkg/tlvbuf"
)

func openTestStore(t *testing.T) *BufferStore {
	t.Helper()

	s, err := NewBufferStore(Config{DataDir: t.TempDir(), Capacity: 256})
	require.NoError(t, err)
	require.NoError(t, s.Open())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBufferStore_CreateGet(t *testing.T) {
	s := openTestStore(t)

	// one record: tag 0x5A, two value bytes
	records := []byte{0x5A, 0x02, 0xAA, 0xBB}
	id, err := s.Create(records)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	buf, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, records, buf.Bytes())
	assert.Equal(t, 256, buf.Cap())

	rec, ok := buf.Find(0x5A)
	require.True(t, ok)
	assert.Equal(t, []byte{0xAA, 0xBB}, rec.Value)
}

func TestBufferStore_CreateEmpty(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Create(nil)
	require.NoError(t, err)

	buf, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, 0, buf.Len())
}

func TestBufferStore_CreateRejectsMalformed(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Create([]byte{0x5A, 0x10, 0x01})
	assert.Equal(t, ErrCorrupted, err)
}

func TestBufferStore_PutRoundTrip(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Create([]byte{0x5A, 0x02, 0xAA, 0xBB})
	require.NoError(t, err)

	buf, err := s.Get(id)
	require.NoError(t, err)

	_, err = buf.Add(0x9F02, []byte{0x01, 0x02, 0x03}, tlvbuf.RejectDuplicate)
	require.NoError(t, err)
	require.NoError(t, s.Put(id, buf))

	reloaded, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, buf.Bytes(), reloaded.Bytes())

	rec, ok := reloaded.Find(0x9F02)
	require.True(t, ok)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, rec.Value)
}

func TestBufferStore_PutUnknownID(t *testing.T) {
	s := openTestStore(t)

	err := s.Put("no-such-buffer", tlvbuf.New(16))
	assert.Equal(t, ErrNotFound, err)
}

func TestBufferStore_Delete(t *testing.T) {
	s := openTestStore(t)

	id, err := s.Create([]byte{0x5A, 0x01, 0xFF})
	require.NoError(t, err)
	require.NoError(t, s.Delete(id))

	_, err = s.Get(id)
	assert.Equal(t, ErrNotFound, err)

	assert.Equal(t, ErrNotFound, s.Delete(id))
}

func TestBufferStore_List(t *testing.T) {
	s := openTestStore(t)

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		id, err := s.Create([]byte{0x5A, 0x01, byte(i + 1)})
		require.NoError(t, err)
		ids[id] = true
	}

	listed, err := s.List()
	require.NoError(t, err)
	assert.Len(t, listed, 3)
	for _, id := range listed {
		assert.True(t, ids[id], "unexpected id %s", id)
	}
}

func TestBufferStore_Stats(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Create([]byte{0x5A, 0x02, 0xAA, 0xBB})
	require.NoError(t, err)
	_, err = s.Create([]byte{0x57, 0x01, 0x01})
	require.NoError(t, err)

	stats := s.Stats()
	assert.Equal(t, 2, stats.Buffers)
	assert.Equal(t, int64(7), stats.DataSize)
}

func TestBufferStore_ClosedOperationsFail(t *testing.T) {
	s, err := NewBufferStore(Config{DataDir: t.TempDir()})
	require.NoError(t, err)

	_, err = s.Create(nil)
	assert.Equal(t, ErrClosed, err)
	_, err = s.Get("x")
	assert.Equal(t, ErrClosed, err)
	assert.Equal(t, ErrClosed, s.Put("x", tlvbuf.New(16)))
	assert.Equal(t, ErrClosed, s.Delete("x"))
	_, err = s.List()
	assert.Equal(t, ErrClosed, err)
}

func TestBufferStore_Reopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBufferStore(Config{DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, s.Open())

	id, err := s.Create([]byte{0x5A, 0x01, 0xFF})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := NewBufferStore(Config{DataDir: dir})
	require.NoError(t, err)
	require.NoError(t, s2.Open())
	defer s2.Close()

	buf, err := s2.Get(id)
	require.NoError(t, err)
	_, ok := buf.Find(0x5A)
	assert.True(t, ok)
}
