package api

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/emvkit/tlvkit/pkg/store"
	"github.com/emvkit/tlvkit/pkg/tlv"
	"github.com/emvkit/tlvkit/pkg/tlvbuf"
)

// Server handles API requests against a buffer store
type Server struct {
	store   *store.BufferStore
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server instance
func NewServer(bufferStore *store.BufferStore, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		store:   bufferStore,
		config:  config,
		metrics: metrics,
	}
}

// handleHealth reports server liveness
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleCreateBuffer creates a buffer, optionally seeded with records
// passed as a hex body
func (s *Server) handleCreateBuffer(w http.ResponseWriter, r *http.Request) {
	records, err := readHexBody(r)
	if err != nil {
		sendError(w, "Body must be hex-encoded records", http.StatusBadRequest)
		return
	}

	start := time.Now()
	id, err := s.store.Create(records)
	s.metrics.RecordBufferOperation("create", err == nil, time.Since(start))
	if err != nil {
		// rejected seed data is the caller's fault, not a store fault
		if err == store.ErrCorrupted {
			sendError(w, "Records are not a valid record sequence", http.StatusBadRequest)
			return
		}
		sendError(w, err.Error(), statusForError(err))
		return
	}
	sendSuccess(w, map[string]string{"id": id})
}

// handleListBuffers lists stored buffer ids
func (s *Server) handleListBuffers(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List()
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}
	if ids == nil {
		ids = []string{}
	}
	sendSuccess(w, map[string][]string{"ids": ids})
}

// handleGetBuffer returns one buffer's contents as hex
func (s *Server) handleGetBuffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	buf, err := s.store.Get(id)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}
	sendSuccess(w, BufferResponse{
		ID:       id,
		Used:     buf.Len(),
		Capacity: buf.Cap(),
		Records:  strings.ToUpper(hex.EncodeToString(buf.Bytes())),
	})
}

// handleDeleteBuffer removes a stored buffer
func (s *Server) handleDeleteBuffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	start := time.Now()
	err := s.store.Delete(id)
	s.metrics.RecordBufferOperation("delete_buffer", err == nil, time.Since(start))
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}
	sendSuccess(w, map[string]string{"id": id})
}

// handleCheckBuffer runs the consistency check on a stored buffer
func (s *Server) handleCheckBuffer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	buf, err := s.store.Get(id)
	if err != nil {
		// a corrupt row still gets a check verdict instead of an error
		if err == store.ErrCorrupted {
			sendSuccess(w, CheckResponse{Valid: false})
			return
		}
		sendError(w, err.Error(), statusForError(err))
		return
	}
	sendSuccess(w, CheckResponse{Valid: buf.Valid()})
}

// handleGetRecord finds a record by tag, optionally descending into
// constructed records when ?deep=1
func (s *Server) handleGetRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tag, err := parseTagParam(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	buf, err := s.store.Get(id)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	var rec tlv.Record
	var ok bool
	if deepRequested(r) {
		rec, ok = buf.FindDeep(tag)
	} else {
		rec, ok = buf.Find(tag)
	}
	if !ok {
		sendError(w, fmt.Sprintf("Tag %X not found", uint16(tag)), http.StatusNotFound)
		return
	}
	sendSuccess(w, recordResponse(rec))
}

// handlePutRecord adds or overwrites one record; the body is the hex
// value and ?policy selects duplicate handling
func (s *Server) handlePutRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tag, err := parseTagParam(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	policy, err := parsePolicy(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	value, err := readHexBody(r)
	if err != nil {
		sendError(w, "Body must be a hex-encoded value", http.StatusBadRequest)
		return
	}

	buf, err := s.store.Get(id)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	start := time.Now()
	rec, err := buf.Add(tag, value, policy)
	if err == nil {
		err = s.store.Put(id, buf)
	}
	s.metrics.RecordBufferOperation("add", err == nil, time.Since(start))
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}
	sendSuccess(w, recordResponse(rec))
}

// handleDeleteRecord deletes one record by tag
func (s *Server) handleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tag, err := parseTagParam(r)
	if err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	buf, err := s.store.Get(id)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	start := time.Now()
	deleted := buf.Delete(tag)
	if deleted {
		err = s.store.Put(id, buf)
	}
	s.metrics.RecordBufferOperation("delete", err == nil && deleted, time.Since(start))
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}
	if !deleted {
		sendError(w, fmt.Sprintf("Tag %X not found", uint16(tag)), http.StatusNotFound)
		return
	}
	sendSuccess(w, map[string]string{"deleted": fmt.Sprintf("%X", uint16(tag))})
}

// handleMerge copies selected tags from a source buffer
func (s *Server) handleMerge(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req MergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}
	tagList, err := hex.DecodeString(strings.TrimSpace(req.Tags))
	if err != nil {
		sendError(w, "Tags must be hex-encoded", http.StatusBadRequest)
		return
	}

	dst, err := s.store.Get(id)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}
	src, err := s.store.Get(req.Source)
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}

	start := time.Now()
	added := tlvbuf.MergeTags(dst, src, tagList)
	err = s.store.Put(id, dst)
	s.metrics.RecordBufferOperation("merge", err == nil, time.Since(start))
	if err != nil {
		sendError(w, err.Error(), statusForError(err))
		return
	}
	sendSuccess(w, MergeResponse{Added: added})
}

// recordResponse converts a record view into its JSON shape
func recordResponse(rec tlv.Record) RecordResponse {
	return RecordResponse{
		Tag:         fmt.Sprintf("%X", uint16(rec.Tag)),
		Length:      rec.Len(),
		Value:       strings.ToUpper(hex.EncodeToString(rec.Value)),
		Constructed: rec.Constructed(),
	}
}

// parseTagParam reads the {tag} URL parameter as a hex tag identifier
func parseTagParam(r *http.Request) (tlv.Tag, error) {
	raw := chi.URLParam(r, "tag")
	v, err := strconv.ParseUint(raw, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid tag %q: must be 1-4 hex digits", raw)
	}
	return tlv.Tag(v), nil
}

// parsePolicy reads the ?policy query parameter
func parsePolicy(r *http.Request) (tlvbuf.OverwritePolicy, error) {
	switch r.URL.Query().Get("policy") {
	case "", "reject":
		return tlvbuf.RejectDuplicate, nil
	case "overwrite":
		return tlvbuf.Overwrite, nil
	case "skip":
		return tlvbuf.SkipIfExists, nil
	case "append":
		return tlvbuf.AlwaysAppend, nil
	default:
		return 0, fmt.Errorf("unknown policy %q", r.URL.Query().Get("policy"))
	}
}

// readHexBody decodes a hex-encoded request body; an empty body is nil
func readHexBody(r *http.Request) ([]byte, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil, nil
	}
	return hex.DecodeString(text)
}

// deepRequested reports whether the request asked for recursive search
func deepRequested(r *http.Request) bool {
	deep := r.URL.Query().Get("deep")
	return deep == "1" || deep == "true"
}

// statusForError maps store and codec errors onto HTTP status codes
func statusForError(err error) int {
	switch err {
	case store.ErrNotFound:
		return http.StatusNotFound
	case store.ErrCorrupted:
		return http.StatusInternalServerError
	case store.ErrClosed:
		return http.StatusServiceUnavailable
	case tlv.ErrDuplicateTag:
		return http.StatusConflict
	case tlv.ErrBufferFull:
		return http.StatusInsufficientStorage
	case tlv.ErrInvalidRecord, tlv.ErrLengthTooWide, tlv.ErrTruncatedTag,
		tlv.ErrTruncatedLength, tlv.ErrTruncatedValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
