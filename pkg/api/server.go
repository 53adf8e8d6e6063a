package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/avelis/blaze64/pkg/jobs"
)

// NewRouter builds the HTTP routes for an API server. Split out from
// StartServer so tests can drive the full middleware stack in-process.
func NewRouter(server *Server, metrics *Metrics) chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Health check (unprotected for probes)
	r.Get("/health", server.handleHealth)

	// API key authentication for codec routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(apiKeyMiddleware(server.config.APIKey, metrics))

		if metrics != nil {
			r.Post("/encode", metrics.InstrumentHandler("POST", "/api/v1/encode", server.handleEncode))
			r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
			r.Get("/config", metrics.InstrumentHandler("GET", "/api/v1/config", server.handleConfig))
			r.Post("/files/encode", metrics.InstrumentHandler("POST", "/api/v1/files/encode", server.handleEncodeFile))
			r.Post("/files/decode", metrics.InstrumentHandler("POST", "/api/v1/files/decode", server.handleDecodeFile))
			r.Get("/jobs/{id}", metrics.InstrumentHandler("GET", "/api/v1/jobs/{id}", server.handleGetJob))
		} else {
			r.Post("/encode", server.handleEncode)
			r.Post("/decode", server.handleDecode)
			r.Get("/config", server.handleConfig)
			r.Post("/files/encode", server.handleEncodeFile)
			r.Post("/files/decode", server.handleDecodeFile)
			r.Get("/jobs/{id}", server.handleGetJob)
		}
	})

	return r
}

// StartServer starts the HTTP server with all routes configured. It blocks
// until the listener fails.
func StartServer(enc Encoder, jobStore *jobs.Store, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(enc, jobStore, config, metrics)
	r := NewRouter(server, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting Blaze64 API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)

	return http.ListenAndServe(addr, r)
}
