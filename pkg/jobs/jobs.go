// Package jobs persists an audit record for every file encode/decode
// operation the server performs, keyed by ksuid in an embedded pebble
// store. Records are write-once-then-finalize: a job is created as
// running and later marked completed or failed.
package jobs

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

// ErrNotFound is returned when a job id has no record.
var ErrNotFound = errors.New("job not found")

// Kind identifies the direction of a file operation.
type Kind string

const (
	KindEncode Kind = "encode"
	KindDecode Kind = "decode"
)

// Status is the lifecycle state of a job.
type Status string

const (
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Job is the persisted record of one file operation.
type Job struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"kind"`
	InputPath      string    `json:"input_path"`
	OutputPath     string    `json:"output_path"`
	BytesProcessed int64     `json:"bytes_processed"`
	Status         Status    `json:"status"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	CompletedAt    time.Time `json:"completed_at,omitempty"`
}

// Store is a pebble-backed job store.
type Store struct {
	db *pebble.DB
}

// Open opens (or creates) the job store at path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open job store: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

// Create records a new running job and returns it.
func (s *Store) Create(kind Kind, inputPath, outputPath string) (*Job, error) {
	job := &Job{
		ID:         ksuid.New().String(),
		Kind:       kind,
		InputPath:  inputPath,
		OutputPath: outputPath,
		Status:     StatusRunning,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.put(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Complete marks a job as completed with the number of bytes processed.
func (s *Store) Complete(id string, bytesProcessed int64) (*Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	job.Status = StatusCompleted
	job.BytesProcessed = bytesProcessed
	job.CompletedAt = time.Now().UTC()

	if err := s.put(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Fail marks a job as failed with the operation error.
func (s *Store) Fail(id string, opErr error) (*Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	job.Status = StatusFailed
	job.Error = opErr.Error()
	job.CompletedAt = time.Now().UTC()

	if err := s.put(job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get returns the job with the given id.
func (s *Store) Get(id string) (*Job, error) {
	value, closer, err := s.db.Get([]byte(id))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to read job %s: %w", id, err)
	}
	defer closer.Close()

	var job Job
	if err := json.Unmarshal(value, &job); err != nil {
		return nil, fmt.Errorf("failed to decode job %s: %w", id, err)
	}
	return &job, nil
}

// put serializes and writes a job record.
func (s *Store) put(job *Job) error {
	data, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to encode job %s: %w", job.ID, err)
	}
	if err := s.db.Set([]byte(job.ID), data, pebble.NoSync); err != nil {
		return fmt.Errorf("failed to write job %s: %w", job.ID, err)
	}
	return nil
}
