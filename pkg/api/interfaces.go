// Package api exposes the Blaze64 codec over HTTP: in-memory encode and
// decode, server-side streaming file jobs, and configuration
// introspection, with API-key authentication and Prometheus metrics.
package api

import "github.com/avelis/blaze64/pkg/codec"

// Encoder is the codec surface the server depends on. It is satisfied by
// *codec.Codec and narrows the dependency for tests.
type Encoder interface {
	Encode(data []byte) (string, error)
	EncodeWithThreads(data []byte, threads int) (string, error)
	Decode(text string) ([]byte, error)
	EncodeFile(inputPath, outputPath string) (int64, error)
	DecodeFile(inputPath, outputPath string) (int64, error)
	Info() codec.Info
}
