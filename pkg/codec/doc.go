// Package codec implements Blaze64's adaptive Base64 engine.
//
// The engine picks an execution strategy from the input size: a single
// sequential pass for small buffers, a work-stealing chunked encoder for
// medium buffers, and a fixed worker-pool pipeline for large buffers.
// Decoding is always sequential. File variants stream fixed-size blocks
// with bounded memory.
//
// # Strategy Selection
//
// Encode routing is a pure decision table over the input length:
//
//	len < MultithreadThreshold              -> sequential
//	MultithreadThreshold <= len < LargeThreshold -> work-stealing chunks
//	len >= LargeThreshold                   -> worker-pool pipeline
//
// EncodeWithThreads bypasses size routing: the caller's thread count is
// clamped to [1, 2*MaxThreads] and the chunked encoder is used, falling
// back to a sequential pass below MinChunkSize.
//
// # Chunk Alignment
//
// Base64 maps 3 input bytes to 4 output characters, so every parallel
// chunk boundary is aligned to 3 bytes. The input is split into a
// 3-aligned main part and a 0-2 byte tail; chunks of the main part are
// encoded without padding and the tail is encoded with standard padding
// and appended last. The result is byte-identical to a single sequential
// pass over the whole input regardless of strategy, worker count, or
// completion order.
//
// # Configuration
//
// All thresholds are fields of Config rather than fixed constants. A
// Codec is built once from a Config and shared; it holds no mutable
// state, so it is safe for concurrent use.
//
// # Errors
//
// Validation errors (ErrInputTooLarge, ErrInvalidLength, ErrInvalidBase64)
// are detected before or during the transform and never leave partial
// output behind. ErrWorkerFailure indicates an internal scheduling fault
// in the pipeline path and aborts the call atomically.
package codec
