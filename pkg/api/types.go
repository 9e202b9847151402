package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Port   int
	Bind   string
	APIKey string
}

// BufferResponse describes one stored buffer
type BufferResponse struct {
	ID       string `json:"id"`
	Used     int    `json:"used"`
	Capacity int    `json:"capacity"`
	Records  string `json:"records"` // hex encoding of the buffer contents
}

// RecordResponse describes one record inside a buffer
type RecordResponse struct {
	Tag         string `json:"tag"` // hex tag identifier
	Length      int    `json:"length"`
	Value       string `json:"value"` // hex encoding of the value
	Constructed bool   `json:"constructed"`
}

// CheckResponse reports a buffer consistency check
type CheckResponse struct {
	Valid bool `json:"valid"`
}

// MergeRequest asks for selected tags to be copied between buffers
type MergeRequest struct {
	Source string `json:"source"` // buffer id to copy from
	Tags   string `json:"tags"`   // hex-encoded flat sequence of tag identifiers
}

// MergeResponse reports how many records a merge copied
type MergeResponse struct {
	Added int `json:"added"`
}
