package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	return path
}

func streamCodec(t *testing.T, blockSize int) *Codec {
	t.Helper()
	cfg := testConfig()
	cfg.PipelineChunkSize = blockSize
	c, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestEncodeFile_MatchesOneShot(t *testing.T) {
	// Streamed output must be byte-identical to a single-pass encoding of
	// the whole file, for any read-block size.
	data := randomBytes(10<<10+1, 21)
	want := base64.StdEncoding.EncodeToString(data)
	inPath := writeTempFile(t, data)

	for _, blockSize := range []int{12, 13, 16, 100, 999, 4 << 10, 64 << 10} {
		c := streamCodec(t, blockSize)
		outPath := filepath.Join(t.TempDir(), "out.b64")

		n, err := c.EncodeFile(inPath, outPath)
		if err != nil {
			t.Fatalf("block size %d: EncodeFile failed: %v", blockSize, err)
		}
		if n != int64(len(data)) {
			t.Errorf("block size %d: processed %d bytes, want %d", blockSize, n, len(data))
		}

		got, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if string(got) != want {
			t.Errorf("block size %d: streamed output differs from one-shot encoding", blockSize)
		}
	}
}

func TestEncodeFile_TailSizes(t *testing.T) {
	c := streamCodec(t, 999) // 999 is 3-aligned; forces remainder-free blocks too
	for _, size := range []int{0, 1, 2, 3, 998, 999, 1000, 1001} {
		data := randomBytes(size, int64(size)+5)
		inPath := writeTempFile(t, data)
		outPath := filepath.Join(t.TempDir(), "out.b64")

		if _, err := c.EncodeFile(inPath, outPath); err != nil {
			t.Fatalf("size %d: EncodeFile failed: %v", size, err)
		}
		got, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if want := base64.StdEncoding.EncodeToString(data); string(got) != want {
			t.Errorf("size %d: streamed output differs from one-shot encoding", size)
		}
	}
}

func TestDecodeFile_RoundTrip(t *testing.T) {
	data := randomBytes(20<<10+2, 31)
	encoded := base64.StdEncoding.EncodeToString(data)
	inPath := writeTempFile(t, []byte(encoded))

	for _, blockSize := range []int{16, 100, 4 << 10, 64 << 10} {
		c := streamCodec(t, blockSize)
		outPath := filepath.Join(t.TempDir(), "out.bin")

		n, err := c.DecodeFile(inPath, outPath)
		if err != nil {
			t.Fatalf("block size %d: DecodeFile failed: %v", blockSize, err)
		}
		if n != int64(len(encoded)) {
			t.Errorf("block size %d: processed %d bytes, want %d", blockSize, n, len(encoded))
		}

		got, err := os.ReadFile(outPath)
		if err != nil {
			t.Fatalf("reading output: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Errorf("block size %d: decoded file differs from original", blockSize)
		}
	}
}

func TestEncodeDecodeFile_RoundTrip(t *testing.T) {
	c := streamCodec(t, 4<<10)
	data := randomBytes(33<<10+1, 41)

	dir := t.TempDir()
	inPath := writeTempFile(t, data)
	encPath := filepath.Join(dir, "encoded.b64")
	decPath := filepath.Join(dir, "decoded.bin")

	if _, err := c.EncodeFile(inPath, encPath); err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	if _, err := c.DecodeFile(encPath, decPath); err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}

	got, err := os.ReadFile(decPath)
	if err != nil {
		t.Fatalf("reading decoded file: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Errorf("file round trip mismatch")
	}
}

func TestDecodeFile_Errors(t *testing.T) {
	c := streamCodec(t, 4<<10)
	dir := t.TempDir()
	outPath := filepath.Join(dir, "out.bin")

	t.Run("missing input", func(t *testing.T) {
		if _, err := c.DecodeFile(filepath.Join(dir, "nope"), outPath); err == nil {
			t.Error("expected error for missing input file")
		}
	})

	t.Run("illegal character", func(t *testing.T) {
		inPath := writeTempFile(t, []byte("Zm9v!!!!"))
		if _, err := c.DecodeFile(inPath, outPath); !errors.Is(err, ErrInvalidBase64) {
			t.Errorf("got %v, want ErrInvalidBase64", err)
		}
	})

	t.Run("bad length", func(t *testing.T) {
		inPath := writeTempFile(t, []byte("Zm9vY"))
		if _, err := c.DecodeFile(inPath, outPath); !errors.Is(err, ErrInvalidLength) {
			t.Errorf("got %v, want ErrInvalidLength", err)
		}
	})

	t.Run("not utf-8", func(t *testing.T) {
		inPath := writeTempFile(t, []byte{0xFF, 0xFE, 0xFD, 0xFC})
		if _, err := c.DecodeFile(inPath, outPath); !errors.Is(err, ErrInvalidUTF8) {
			t.Errorf("got %v, want ErrInvalidUTF8", err)
		}
	})
}

func TestEncodeFile_MissingInput(t *testing.T) {
	c := streamCodec(t, 4<<10)
	dir := t.TempDir()
	if _, err := c.EncodeFile(filepath.Join(dir, "nope"), filepath.Join(dir, "out")); err == nil {
		t.Error("expected error for missing input file")
	}
}
