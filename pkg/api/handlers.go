package api

import (
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/avelis/blaze64/pkg/codec"
	"github.com/avelis/blaze64/pkg/jobs"
)

// Server holds the API server state
type Server struct {
	codec   Encoder
	jobs    *jobs.Store
	config  ServerConfig
	metrics *Metrics
}

// NewServer creates a new API server
func NewServer(enc Encoder, jobStore *jobs.Store, config ServerConfig, metrics *Metrics) *Server {
	return &Server{
		codec:   enc,
		jobs:    jobStore,
		config:  config,
		metrics: metrics,
	}
}

// codecStatus maps codec errors to HTTP status codes.
func codecStatus(err error) int {
	switch {
	case errors.Is(err, codec.ErrInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, codec.ErrInvalidLength),
		errors.Is(err, codec.ErrInvalidBase64),
		errors.Is(err, codec.ErrInvalidUTF8),
		errors.Is(err, fs.ErrNotExist):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleHealth reports server liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.metrics != nil {
		s.metrics.RecordHealthCheck(true)
	}
	sendSuccess(w, map[string]string{"status": "healthy"})
}

// handleConfig returns the codec's contract surface: version, thresholds,
// limits, and detected parallelism.
func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	sendSuccess(w, s.codec.Info())
}

// handleEncode encodes the request body to Base64. The optional ?threads=
// query parameter pins the thread count instead of size-based routing.
func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// Bound the read; the codec enforces the same cap on the decoded side.
	limit := int64(s.codec.Info().MaxInputSize)
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit+1))
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("encode", false, 0, time.Since(start))
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var encoded string
	if raw := r.URL.Query().Get("threads"); raw != "" {
		threads, convErr := strconv.Atoi(raw)
		if convErr != nil {
			sendError(w, "threads must be an integer", http.StatusBadRequest)
			return
		}
		encoded, err = s.codec.EncodeWithThreads(body, threads)
	} else {
		encoded, err = s.codec.Encode(body)
	}
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("encode", false, 0, time.Since(start))
		}
		sendError(w, err.Error(), codecStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCodecOperation("encode", true, int64(len(body)), time.Since(start))
	}
	sendSuccess(w, EncodeResponse{Encoded: encoded, InputBytes: len(body)})
}

// handleDecode decodes a Base64 text body and returns the raw bytes.
func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit := int64(s.codec.Info().MaxInputSize)
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit+1))
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("decode", false, 0, time.Since(start))
		}
		sendError(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	decoded, err := s.codec.Decode(string(body))
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordCodecOperation("decode", false, 0, time.Since(start))
		}
		sendError(w, err.Error(), codecStatus(err))
		return
	}

	if s.metrics != nil {
		s.metrics.RecordCodecOperation("decode", true, int64(len(body)), time.Since(start))
	}
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(decoded)
}

// handleEncodeFile runs a streaming file encode on the server and records
// it in the job store.
func (s *Server) handleEncodeFile(w http.ResponseWriter, r *http.Request) {
	s.handleFileOperation(w, r, jobs.KindEncode, s.codec.EncodeFile)
}

// handleDecodeFile runs a streaming file decode on the server and records
// it in the job store.
func (s *Server) handleDecodeFile(w http.ResponseWriter, r *http.Request) {
	s.handleFileOperation(w, r, jobs.KindDecode, s.codec.DecodeFile)
}

func (s *Server) handleFileOperation(w http.ResponseWriter, r *http.Request, kind jobs.Kind, op func(string, string) (int64, error)) {
	start := time.Now()
	operation := string(kind) + "_file"

	var req FileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(w, "Invalid JSON in request body", http.StatusBadRequest)
		return
	}
	if req.InputPath == "" || req.OutputPath == "" {
		sendError(w, "input_path and output_path are required", http.StatusBadRequest)
		return
	}

	job, err := s.jobs.Create(kind, req.InputPath, req.OutputPath)
	if err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	processed, opErr := op(req.InputPath, req.OutputPath)
	if opErr != nil {
		if _, err := s.jobs.Fail(job.ID, opErr); err != nil {
			sendError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if s.metrics != nil {
			s.metrics.RecordCodecOperation(operation, false, 0, time.Since(start))
		}
		sendError(w, opErr.Error(), codecStatus(opErr))
		return
	}

	if _, err := s.jobs.Complete(job.ID, processed); err != nil {
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if s.metrics != nil {
		s.metrics.RecordCodecOperation(operation, true, processed, time.Since(start))
	}
	sendSuccess(w, FileResponse{JobID: job.ID, BytesProcessed: processed})
}

// handleGetJob returns the persisted record of a file operation.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		sendError(w, "Job id is required", http.StatusBadRequest)
		return
	}

	job, err := s.jobs.Get(id)
	if err != nil {
		if errors.Is(err, jobs.ErrNotFound) {
			sendError(w, err.Error(), http.StatusNotFound)
			return
		}
		sendError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sendSuccess(w, job)
}
