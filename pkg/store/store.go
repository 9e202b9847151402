// Package store persists named TLV buffers in a local pebble database.
//
// The store is the application-side home for buffers the codec core
// operates on: the core itself performs no I/O, so everything durable
// lives here. Each buffer is stored under a ksuid identifier and is
// validated on every load, so a corrupted row can never surface as a
// working buffer.
package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"

	"github.com/emvkit/tlvkit/pkg/tlv"
	"github.com/emvkit/tlvkit/pkg/tlvbuf"
)

// DefaultCapacity is used when a Config leaves Capacity unset
const DefaultCapacity = 4096

// Config holds configuration for the buffer store
type Config struct {
	DataDir  string // Directory for the pebble database
	Capacity int    // Capacity of buffers handed out by Get
}

// BufferStore provides durable storage for named TLV buffers
type BufferStore struct {
	config Config
	db     *pebble.DB
	mutex  sync.Mutex
	isOpen bool
}

// NewBufferStore creates a store rooted at config.DataDir
func NewBufferStore(config Config) (*BufferStore, error) {
	if err := os.MkdirAll(config.DataDir, 0750); err != nil {
		return nil, err
	}
	if config.Capacity <= 0 {
		config.Capacity = DefaultCapacity
	}
	return &BufferStore{config: config}, nil
}

// Open opens the underlying database
func (s *BufferStore) Open() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isOpen {
		return nil
	}
	db, err := pebble.Open(filepath.Join(s.config.DataDir, "buffers"), &pebble.Options{})
	if err != nil {
		return err
	}
	s.db = db
	s.isOpen = true
	return nil
}

// Close shuts the store down
func (s *BufferStore) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return nil
	}
	s.isOpen = false
	return s.db.Close()
}

// Create stores a new buffer holding the given records, which may be
// empty, and returns its generated identifier.
func (s *BufferStore) Create(records []byte) (string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return "", ErrClosed
	}
	if !tlv.Valid(records) {
		return "", ErrCorrupted
	}

	id := ksuid.New().String()
	if err := s.db.Set([]byte(id), records, pebble.Sync); err != nil {
		return "", err
	}
	return id, nil
}

// Get loads the buffer stored under id into a working Buffer with the
// configured capacity. The stored records are validated before they are
// handed out.
func (s *BufferStore) Get(id string) (*tlvbuf.Buffer, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return nil, ErrClosed
	}

	data, closer, err := s.db.Get([]byte(id))
	if err != nil {
		if err == pebble.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	defer closer.Close()

	buf, err := tlvbuf.Load(data, s.config.Capacity)
	if err != nil {
		return nil, ErrCorrupted
	}
	return buf, nil
}

// Put writes the buffer's current records back under id. The id must
// already exist; Put never creates.
func (s *BufferStore) Put(id string, buf *tlvbuf.Buffer) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return ErrClosed
	}

	if _, closer, err := s.db.Get([]byte(id)); err != nil {
		if err == pebble.ErrNotFound {
			return ErrNotFound
		}
		return err
	} else {
		closer.Close()
	}

	return s.db.Set([]byte(id), buf.Bytes(), pebble.Sync)
}

// Delete removes the buffer stored under id
func (s *BufferStore) Delete(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return ErrClosed
	}

	if _, closer, err := s.db.Get([]byte(id)); err != nil {
		if err == pebble.ErrNotFound {
			return ErrNotFound
		}
		return err
	} else {
		closer.Close()
	}

	return s.db.Delete([]byte(id), pebble.Sync)
}

// List returns the identifiers of every stored buffer
func (s *BufferStore) List() ([]string, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return nil, ErrClosed
	}

	iter, err := s.db.NewIter(nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var ids []string
	for iter.First(); iter.Valid(); iter.Next() {
		ids = append(ids, string(iter.Key()))
	}
	return ids, iter.Error()
}

// Stats returns store statistics
func (s *BufferStore) Stats() *StoreStats {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return &StoreStats{}
	}

	iter, err := s.db.NewIter(nil)
	if err != nil {
		return &StoreStats{}
	}
	defer iter.Close()

	stats := &StoreStats{}
	for iter.First(); iter.Valid(); iter.Next() {
		stats.Buffers++
		if value, err := iter.ValueAndErr(); err == nil {
			stats.DataSize += int64(len(value))
		}
	}
	return stats
}

// StoreStats holds statistics about the store
type StoreStats struct {
	Buffers  int
	DataSize int64
}
