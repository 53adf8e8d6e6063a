package codec

import "errors"

var (
	// ErrInputTooLarge is returned when an in-memory input exceeds Config.MaxInputSize.
	ErrInputTooLarge = errors.New("input too large")

	// ErrInvalidLength is returned when a decode input's length is not a multiple of 4.
	ErrInvalidLength = errors.New("invalid base64 length")

	// ErrInvalidBase64 is returned when decoding encounters a character outside
	// the standard alphabet or malformed padding.
	ErrInvalidBase64 = errors.New("invalid base64")

	// ErrInvalidUTF8 is returned when a file decode block is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid utf-8 in base64 input")

	// ErrWorkerFailure is returned when a pipeline worker panics or a chunk job
	// is lost. It indicates an engine fault, not an input problem; no partial
	// output is returned.
	ErrWorkerFailure = errors.New("pipeline worker failure")
)
