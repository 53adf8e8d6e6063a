package codec

import (
	"encoding/base64"
	"fmt"
	"sync"
	"sync/atomic"
)

// encodePipeline encodes data with the fixed worker-pool strategy used for
// very large buffers. The total output length is computed analytically and
// one buffer of exactly that size is allocated up front; workers pull
// chunk jobs from a channel and write their no-padding encoding directly
// into the buffer at the job's output offset. Jobs carry disjoint byte
// ranges computed from input position, so completion order is irrelevant
// and no locking is needed.
//
// If a worker panics or any job goes unprocessed the call fails with
// ErrWorkerFailure and the buffer is discarded: a lost chunk is a
// scheduling fault, never something to paper over with truncated output.
func (c *Codec) encodePipeline(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	main, tail := alignedSplit(data)
	chunkSize := alignDown(c.cfg.PipelineChunkSize)

	if len(main) < chunkSize*c.workers {
		return base64.StdEncoding.EncodeToString(data), nil
	}

	out := make([]byte, encodedLen(len(data)))
	jobs := planChunks(len(main), chunkSize)

	// Buffered and pre-filled so no worker death can strand the producer.
	jobCh := make(chan chunkJob, len(jobs))
	for _, job := range jobs {
		jobCh <- job
	}
	close(jobCh)

	errCh := make(chan error, c.workers)
	var completed atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < c.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errCh <- fmt.Errorf("%w: %v", ErrWorkerFailure, r)
				}
			}()
			for job := range jobCh {
				src := main[job.inputOffset : job.inputOffset+job.inputLength]
				dst := out[job.outputOffset : job.outputOffset+job.inputLength/3*4]
				base64.RawStdEncoding.Encode(dst, src)
				completed.Add(1)
			}
		}()
	}
	wg.Wait()

	select {
	case err := <-errCh:
		return "", err
	default:
	}
	if int(completed.Load()) != len(jobs) {
		return "", fmt.Errorf("%w: %d of %d chunks completed", ErrWorkerFailure, completed.Load(), len(jobs))
	}

	if len(tail) > 0 {
		base64.StdEncoding.Encode(out[len(main)/3*4:], tail)
	}

	return string(out), nil
}
