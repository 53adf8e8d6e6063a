package codec

import (
	"bufio"
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// EncodeFile streams inputPath through the encoder into outputPath and
// returns the number of input bytes processed. Memory stays bounded: the
// file is read in fixed-size blocks, each block's 3-aligned main part is
// encoded without padding and written immediately, and the 0-2 byte
// remainder is carried into the next block. The final remainder is encoded
// with standard padding, so the streamed output is byte-identical to
// encoding the whole file in one call.
func (c *Codec) EncodeFile(inputPath, outputPath string) (int64, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, err
	}

	w := bufio.NewWriter(out)
	blockSize := alignDown(c.cfg.PipelineChunkSize)
	buf := make([]byte, blockSize+2) // +2 for the carried remainder
	encBuf := make([]byte, base64.RawStdEncoding.EncodedLen(blockSize+2))

	var total int64
	rem := 0
	for {
		n, rerr := io.ReadFull(in, buf[rem:rem+blockSize])
		total += int64(n)
		eof := errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF)
		if rerr != nil && !eof {
			out.Close()
			return 0, fmt.Errorf("read %s: %w", inputPath, rerr)
		}

		avail := rem + n
		mainLen := alignDown(avail)

		if mainLen > 0 {
			enc := encBuf[:base64.RawStdEncoding.EncodedLen(mainLen)]
			base64.RawStdEncoding.Encode(enc, buf[:mainLen])
			if _, err := w.Write(enc); err != nil {
				out.Close()
				return 0, fmt.Errorf("write %s: %w", outputPath, err)
			}
		}

		rem = avail - mainLen
		copy(buf, buf[mainLen:avail])

		if eof {
			// Only place padding characters ever appear.
			if rem > 0 {
				enc := encBuf[:base64.StdEncoding.EncodedLen(rem)]
				base64.StdEncoding.Encode(enc, buf[:rem])
				if _, err := w.Write(enc); err != nil {
					out.Close()
					return 0, fmt.Errorf("write %s: %w", outputPath, err)
				}
			}
			break
		}
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return 0, fmt.Errorf("flush %s: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", outputPath, err)
	}

	return total, nil
}

// DecodeFile streams Base64 text from inputPath into raw bytes at
// outputPath and returns the number of input bytes processed. Blocks are
// read in multiples of 4 so no block ever splits a 4-character group; no
// remainder carry is needed on this side.
func (c *Codec) DecodeFile(inputPath, outputPath string) (int64, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return 0, err
	}

	w := bufio.NewWriter(out)
	blockSize := c.cfg.PipelineChunkSize / 4 * 4
	buf := make([]byte, blockSize)
	decBuf := make([]byte, base64.StdEncoding.DecodedLen(blockSize))

	var total int64
	for {
		n, rerr := io.ReadFull(in, buf)
		eof := errors.Is(rerr, io.EOF) || errors.Is(rerr, io.ErrUnexpectedEOF)
		if rerr != nil && !eof {
			out.Close()
			return 0, fmt.Errorf("read %s: %w", inputPath, rerr)
		}
		if n == 0 {
			break
		}

		block := buf[:n]
		if !utf8.Valid(block) {
			out.Close()
			return 0, fmt.Errorf("%w: block at offset %d", ErrInvalidUTF8, total)
		}
		if n%4 != 0 {
			out.Close()
			return 0, fmt.Errorf("%w: %d characters at offset %d", ErrInvalidLength, n, total)
		}
		if bytes.ContainsAny(block, "\r\n") {
			out.Close()
			return 0, fmt.Errorf("%w: newline characters are not permitted", ErrInvalidBase64)
		}

		dn, derr := strictStd.Decode(decBuf, block)
		if derr != nil {
			out.Close()
			var corrupt base64.CorruptInputError
			if errors.As(derr, &corrupt) {
				return 0, fmt.Errorf("%w: illegal character or padding at offset %d", ErrInvalidBase64, total+int64(corrupt))
			}
			return 0, fmt.Errorf("%w: %v", ErrInvalidBase64, derr)
		}

		if _, err := w.Write(decBuf[:dn]); err != nil {
			out.Close()
			return 0, fmt.Errorf("write %s: %w", outputPath, err)
		}
		total += int64(n)

		if eof {
			break
		}
	}

	if err := w.Flush(); err != nil {
		out.Close()
		return 0, fmt.Errorf("flush %s: %w", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return 0, fmt.Errorf("close %s: %w", outputPath, err)
	}

	return total, nil
}
