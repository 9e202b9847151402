package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
)

// requireAPIKey guards the buffer routes. Every request must present the
// configured key in the X-API-Key header; each outcome is counted on the
// auth metric so rejected callers show up in monitoring. The comparison
// is constant-time.
func requireAPIKey(key string, metrics *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			presented := r.Header.Get("X-API-Key")
			if presented == "" {
				metrics.RecordAuthRequest(false)
				sendError(w, "Missing X-API-Key header", http.StatusUnauthorized)
				return
			}
			if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
				metrics.RecordAuthRequest(false)
				sendError(w, "Invalid API key", http.StatusUnauthorized)
				return
			}
			metrics.RecordAuthRequest(true)
			next.ServeHTTP(w, r)
		})
	}
}

// sendJSON writes the response envelope shared by every endpoint
func sendJSON(w http.ResponseWriter, statusCode int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// sendSuccess wraps data in a successful envelope
func sendSuccess(w http.ResponseWriter, data interface{}) {
	sendJSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

// sendError wraps a message in a failed envelope
func sendError(w http.ResponseWriter, message string, statusCode int) {
	sendJSON(w, statusCode, APIResponse{Success: false, Error: message})
}
