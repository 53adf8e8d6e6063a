package codec

import (
	"encoding/base64"
	"strings"
	"sync"
	"sync/atomic"
)

// encodeChunked encodes data with the work-stealing chunk strategy: idle
// workers pull the next chunk index from a shared counter rather than
// owning a fixed range. Each 3-aligned chunk is encoded without padding;
// results are concatenated in chunk-index order, which is the entire
// correctness mechanism on this path (no output offsets are recorded).
// The 0-2 byte tail is encoded with standard padding and appended last.
func (c *Codec) encodeChunked(data []byte, threads int) string {
	if len(data) == 0 {
		return ""
	}

	main, tail := alignedSplit(data)

	// Too small to be worth fanning out: degrade to a sequential pass.
	// This is a size policy, not an error.
	if len(main) < c.cfg.MinChunkSize*threads {
		return base64.StdEncoding.EncodeToString(data)
	}

	if maxUseful := len(main) / c.cfg.MinChunkSize; threads > maxUseful {
		threads = maxUseful
	}
	if threads < 1 {
		threads = 1
	}

	chunkSize := alignDown(len(main) / threads)
	if min := alignDown(c.cfg.MinChunkSize); chunkSize < min {
		chunkSize = min
	}

	jobs := planChunks(len(main), chunkSize)
	parts := make([]string, len(jobs))

	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				idx := int(next.Add(1)) - 1
				if idx >= len(jobs) {
					return
				}
				job := jobs[idx]
				chunk := main[job.inputOffset : job.inputOffset+job.inputLength]
				parts[idx] = base64.RawStdEncoding.EncodeToString(chunk)
			}
		}()
	}
	wg.Wait()

	var sb strings.Builder
	sb.Grow(encodedLen(len(data)))
	for _, part := range parts {
		sb.WriteString(part)
	}
	if len(tail) > 0 {
		sb.WriteString(base64.StdEncoding.EncodeToString(tail))
	}

	return sb.String()
}
