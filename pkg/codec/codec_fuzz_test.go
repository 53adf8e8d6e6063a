//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"encoding/base64"
	"testing"
)

// FuzzCodec_RoundTrip checks that every strategy round-trips random inputs
// and matches a plain sequential encoding.
func FuzzCodec_RoundTrip(f *testing.F) {
	c, err := New(testConfig())
	if err != nil {
		f.Fatalf("New failed: %v", err)
	}

	// Seed corpus around the alignment and threshold boundaries.
	f.Add([]byte(""))
	f.Add([]byte("f"))
	f.Add([]byte("fo"))
	f.Add([]byte("foobar"))
	f.Add(bytes.Repeat([]byte{0x00}, 1<<10))
	f.Add(bytes.Repeat([]byte{0xFF}, 1<<10+1))

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > c.cfg.MaxInputSize {
			t.Skip("over the configured input cap")
		}

		encoded, err := c.Encode(data)
		if err != nil {
			t.Fatalf("Encode failed: %v", err)
		}

		if want := base64.StdEncoding.EncodeToString(data); encoded != want {
			t.Fatalf("Encode output differs from sequential encoding for %d bytes", len(data))
		}

		decoded, err := c.Decode(encoded)
		if err != nil {
			t.Fatalf("Decode failed: %v", err)
		}
		if !bytes.Equal(decoded, data) {
			t.Fatalf("round trip mismatch for %d bytes", len(data))
		}
	})
}

// FuzzCodec_Decode checks that arbitrary text never causes a panic and that
// accepted inputs re-encode to themselves.
func FuzzCodec_Decode(f *testing.F) {
	c, err := New(testConfig())
	if err != nil {
		f.Fatalf("New failed: %v", err)
	}

	f.Add("")
	f.Add("Zm9vYmFy")
	f.Add("Zg==")
	f.Add("====")
	f.Add("not base64 at all")

	f.Fuzz(func(t *testing.T, text string) {
		if len(text) > c.cfg.MaxInputSize {
			t.Skip("over the configured input cap")
		}

		decoded, err := c.Decode(text)
		if err != nil {
			return
		}

		reencoded, err := c.Encode(decoded)
		if err != nil {
			t.Fatalf("re-encode failed: %v", err)
		}
		if reencoded != text {
			t.Fatalf("accepted input %q does not re-encode to itself", text)
		}
	})
}
