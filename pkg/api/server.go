// Package api exposes the buffer store over HTTP.
//
// All routes under /api/v1 require the X-API-Key header. The /metrics
// endpoint stays unprotected so Prometheus can scrape it.
package api

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emvkit/tlvkit/pkg/store"
)

// NewRouter builds the full route tree for a server instance
func NewRouter(server *Server) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	metrics := server.metrics

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(requireAPIKey(server.config.APIKey, metrics))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Buffer operations
		r.Post("/buffers", metrics.InstrumentHandler("POST", "/api/v1/buffers", server.handleCreateBuffer))
		r.Get("/buffers", metrics.InstrumentHandler("GET", "/api/v1/buffers", server.handleListBuffers))
		r.Get("/buffers/{id}", metrics.InstrumentHandler("GET", "/api/v1/buffers/{id}", server.handleGetBuffer))
		r.Delete("/buffers/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/buffers/{id}", server.handleDeleteBuffer))
		r.Get("/buffers/{id}/check", metrics.InstrumentHandler("GET", "/api/v1/buffers/{id}/check", server.handleCheckBuffer))

		// Record operations
		r.Get("/buffers/{id}/records/{tag}", metrics.InstrumentHandler("GET", "/api/v1/buffers/{id}/records/{tag}", server.handleGetRecord))
		r.Put("/buffers/{id}/records/{tag}", metrics.InstrumentHandler("PUT", "/api/v1/buffers/{id}/records/{tag}", server.handlePutRecord))
		r.Delete("/buffers/{id}/records/{tag}", metrics.InstrumentHandler("DELETE", "/api/v1/buffers/{id}/records/{tag}", server.handleDeleteRecord))

		// Merge
		r.Post("/buffers/{id}/merge", metrics.InstrumentHandler("POST", "/api/v1/buffers/{id}/merge", server.handleMerge))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(bufferStore *store.BufferStore, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(bufferStore, config, metrics)
	r := NewRouter(server)

	// Start background metrics updater
	go server.startMetricsUpdater()

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting tlvkit REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}

// startMetricsUpdater refreshes store gauges on a fixed interval
func (s *Server) startMetricsUpdater() {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		stats := s.store.Stats()
		s.metrics.UpdateStoreStats(stats.Buffers, stats.DataSize)
	}
}
