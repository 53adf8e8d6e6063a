package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Version is the library version reported by Info.
const Version = "1.0.0"

// Default thresholds. These are starting points, not law: every cutoff is a
// Config field and can be tuned per deployment.
const (
	// DefaultMultithreadThreshold is the input size above which encoding
	// switches from a single sequential pass to the chunked encoder (1 MiB).
	DefaultMultithreadThreshold = 1 << 20

	// DefaultLargeThreshold is the input size above which encoding switches
	// to the worker-pool pipeline (20 MiB).
	DefaultLargeThreshold = 20 << 20

	// DefaultMinChunkSize is the smallest amount of work worth handing to a
	// thread (64 KiB). Below this, goroutine overhead dominates.
	DefaultMinChunkSize = 64 << 10

	// DefaultPipelineChunkSize is the fixed chunk size for the pipeline
	// encoder (1 MiB). Chosen to fit cache, not to balance load.
	DefaultPipelineChunkSize = 1 << 20

	// DefaultMaxThreads caps the number of encoding goroutines.
	DefaultMaxThreads = 8

	// DefaultMaxInputSize bounds in-memory inputs (100 MiB). File operations
	// are unbounded.
	DefaultMaxInputSize = 100 << 20
)

// Config holds the tuning parameters for a Codec.
type Config struct {
	MultithreadThreshold int
	LargeThreshold       int
	MinChunkSize         int
	PipelineChunkSize    int
	MaxThreads           int
	MaxInputSize         int
}

// DefaultConfig returns the default codec configuration.
func DefaultConfig() Config {
	return Config{
		MultithreadThreshold: DefaultMultithreadThreshold,
		LargeThreshold:       DefaultLargeThreshold,
		MinChunkSize:         DefaultMinChunkSize,
		PipelineChunkSize:    DefaultPipelineChunkSize,
		MaxThreads:           DefaultMaxThreads,
		MaxInputSize:         DefaultMaxInputSize,
	}
}

// validate checks that the configuration is usable.
func (c *Config) validate() error {
	if c.MultithreadThreshold <= 0 {
		return errors.New("MultithreadThreshold must be greater than 0")
	}
	if c.LargeThreshold < c.MultithreadThreshold {
		return fmt.Errorf("LargeThreshold (%d) must not be below MultithreadThreshold (%d)",
			c.LargeThreshold, c.MultithreadThreshold)
	}
	if c.MinChunkSize < 3 {
		return errors.New("MinChunkSize must be at least 3")
	}
	if c.PipelineChunkSize < 12 {
		// Must hold at least one 3-byte encode group and one 4-char decode group.
		return errors.New("PipelineChunkSize must be at least 12")
	}
	if c.MaxThreads < 1 {
		return errors.New("MaxThreads must be at least 1")
	}
	if c.MaxInputSize <= 0 {
		return errors.New("MaxInputSize must be greater than 0")
	}
	return nil
}

// Codec is the adaptive Base64 engine. It is immutable after construction
// and safe for concurrent use; the effective worker count is computed once
// here instead of living in ambient global state.
type Codec struct {
	cfg     Config
	cpus    int // detected at construction
	workers int // min(cpus, cfg.MaxThreads)
}

// New creates a Codec from the given configuration.
func New(cfg Config) (*Codec, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cpus := runtime.NumCPU()
	workers := cpus
	if workers > cfg.MaxThreads {
		workers = cfg.MaxThreads
	}

	return &Codec{
		cfg:     cfg,
		cpus:    cpus,
		workers: workers,
	}, nil
}

// NewDefault creates a Codec with the default configuration.
func NewDefault() *Codec {
	c, err := New(DefaultConfig())
	if err != nil {
		// Defaults always validate.
		panic(err)
	}
	return c
}

// Info describes the codec's contract surface for introspection.
type Info struct {
	Version              string `json:"version" yaml:"version"`
	MultithreadThreshold int    `json:"multithread_threshold" yaml:"multithread_threshold"`
	LargeThreshold       int    `json:"large_threshold" yaml:"large_threshold"`
	MinChunkSize         int    `json:"min_chunk_size" yaml:"min_chunk_size"`
	PipelineChunkSize    int    `json:"pipeline_chunk_size" yaml:"pipeline_chunk_size"`
	MaxThreads           int    `json:"max_threads" yaml:"max_threads"`
	MaxInputSize         int    `json:"max_input_size" yaml:"max_input_size"`
	DetectedCPUs         int    `json:"detected_cpus" yaml:"detected_cpus"`
	Workers              int    `json:"workers" yaml:"workers"`
}

// Info returns the codec configuration and detected parallelism. It has no
// side effects.
func (c *Codec) Info() Info {
	return Info{
		Version:              Version,
		MultithreadThreshold: c.cfg.MultithreadThreshold,
		LargeThreshold:       c.cfg.LargeThreshold,
		MinChunkSize:         c.cfg.MinChunkSize,
		PipelineChunkSize:    c.cfg.PipelineChunkSize,
		MaxThreads:           c.cfg.MaxThreads,
		MaxInputSize:         c.cfg.MaxInputSize,
		DetectedCPUs:         c.cpus,
		Workers:              c.workers,
	}
}

// validateEncodeInput bounds-checks an in-memory encode input. It runs
// before any work begins.
func (c *Codec) validateEncodeInput(n int) error {
	if n > c.cfg.MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, n, c.cfg.MaxInputSize)
	}
	return nil
}

// validateDecodeInput bounds-checks a decode input and rejects lengths that
// cannot be valid Base64.
func (c *Codec) validateDecodeInput(n int) error {
	if n > c.cfg.MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, n, c.cfg.MaxInputSize)
	}
	if n%4 != 0 {
		return fmt.Errorf("%w: %d is not a multiple of 4", ErrInvalidLength, n)
	}
	return nil
}

// Encode encodes data as standard padded Base64, choosing the execution
// strategy from the input size. The output is byte-identical for every
// strategy.
func (c *Codec) Encode(data []byte) (string, error) {
	if err := c.validateEncodeInput(len(data)); err != nil {
		return "", err
	}

	switch pickStrategy(len(data), &c.cfg) {
	case strategyChunked:
		return c.encodeChunked(data, c.workers), nil
	case strategyPipeline:
		return c.encodePipeline(data)
	default:
		return base64.StdEncoding.EncodeToString(data), nil
	}
}

// EncodeWithThreads encodes data with an explicit thread count, clamped to
// [1, 2*MaxThreads]. Size-based routing is bypassed except for a hard floor
// of MinChunkSize, below which a sequential pass is always used.
func (c *Codec) EncodeWithThreads(data []byte, threads int) (string, error) {
	if err := c.validateEncodeInput(len(data)); err != nil {
		return "", err
	}

	if threads < 1 {
		threads = 1
	}
	if max := 2 * c.cfg.MaxThreads; threads > max {
		threads = max
	}

	if threads == 1 || len(data) < c.cfg.MinChunkSize {
		return base64.StdEncoding.EncodeToString(data), nil
	}

	return c.encodeChunked(data, threads), nil
}

// strictStd rejects non-canonical trailing bits in the final group, so
// every accepted input re-encodes to itself. Newlines must be rejected
// separately: the stdlib decoder skips them even in strict mode.
var strictStd = base64.StdEncoding.Strict()

// Decode decodes standard padded Base64 text. Decoding is always a single
// sequential pass: splitting 4-character groups across chunks cannot be
// done without padding look-ahead, and decode throughput is rarely the
// bottleneck.
func (c *Codec) Decode(text string) ([]byte, error) {
	if err := c.validateDecodeInput(len(text)); err != nil {
		return nil, err
	}
	if strings.ContainsAny(text, "\r\n") {
		return nil, fmt.Errorf("%w: newline characters are not permitted", ErrInvalidBase64)
	}

	decoded, err := strictStd.DecodeString(text)
	if err != nil {
		var corrupt base64.CorruptInputError
		if errors.As(err, &corrupt) {
			return nil, fmt.Errorf("%w: illegal character or padding at offset %d", ErrInvalidBase64, int64(corrupt))
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}

	return decoded, nil
}
