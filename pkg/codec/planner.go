package codec

// strategy identifies one of the three encode execution paths.
type strategy int

const (
	strategySequential strategy = iota
	strategyChunked
	strategyPipeline
)

func (s strategy) String() string {
	switch s {
	case strategyChunked:
		return "chunked"
	case strategyPipeline:
		return "pipeline"
	default:
		return "sequential"
	}
}

// pickStrategy maps an input length to an encode strategy. It is a pure
// decision table so it can be tested apart from the encoders.
func pickStrategy(n int, cfg *Config) strategy {
	switch {
	case n < cfg.MultithreadThreshold:
		return strategySequential
	case n < cfg.LargeThreshold:
		return strategyChunked
	default:
		return strategyPipeline
	}
}

// alignedSplit partitions data into a 3-aligned main part and a 0-2 byte
// tail. Chunk boundaries inside the main part never force padding, so
// chunks can be encoded independently and concatenated.
func alignedSplit(data []byte) (main, tail []byte) {
	mainLen := len(data) - len(data)%3
	return data[:mainLen], data[mainLen:]
}

// chunkJob describes one unit of parallel work. outputOffset is derived
// arithmetically from inputOffset, so a chunk's result can be placed
// independently of completion order.
type chunkJob struct {
	index        int
	inputOffset  int
	inputLength  int
	outputOffset int
}

// planChunks splits a 3-aligned main part into jobs of at most chunkSize
// bytes. chunkSize must be a positive multiple of 3; the final job may be
// shorter but stays 3-aligned because mainLen is.
func planChunks(mainLen, chunkSize int) []chunkJob {
	if mainLen == 0 {
		return nil
	}

	numChunks := (mainLen + chunkSize - 1) / chunkSize
	jobs := make([]chunkJob, 0, numChunks)
	for i := 0; i < numChunks; i++ {
		start := i * chunkSize
		end := start + chunkSize
		if end > mainLen {
			end = mainLen
		}
		jobs = append(jobs, chunkJob{
			index:        i,
			inputOffset:  start,
			inputLength:  end - start,
			outputOffset: start / 3 * 4,
		})
	}

	return jobs
}

// encodedLen returns the padded Base64 output length for n input bytes.
func encodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// alignDown rounds n down to a multiple of 3.
func alignDown(n int) int {
	return n / 3 * 3
}
