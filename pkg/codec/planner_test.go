package codec

import "testing"

func TestPickStrategy(t *testing.T) {
	cfg := testConfig()

	testCases := []struct {
		n    int
		want strategy
	}{
		{0, strategySequential},
		{1, strategySequential},
		{cfg.MultithreadThreshold - 1, strategySequential},
		{cfg.MultithreadThreshold, strategyChunked},
		{cfg.LargeThreshold - 1, strategyChunked},
		{cfg.LargeThreshold, strategyPipeline},
		{cfg.LargeThreshold * 3, strategyPipeline},
	}

	for _, tc := range testCases {
		if got := pickStrategy(tc.n, &cfg); got != tc.want {
			t.Errorf("pickStrategy(%d) = %s, want %s", tc.n, got, tc.want)
		}
	}
}

func TestAlignedSplit(t *testing.T) {
	for n := 0; n <= 10; n++ {
		data := randomBytes(n, int64(n))
		main, tail := alignedSplit(data)

		if len(main)%3 != 0 {
			t.Errorf("n=%d: main length %d not 3-aligned", n, len(main))
		}
		if len(tail) > 2 {
			t.Errorf("n=%d: tail length %d, want 0-2", n, len(tail))
		}
		if len(main)+len(tail) != n {
			t.Errorf("n=%d: split loses bytes", n)
		}
	}
}

func TestPlanChunks(t *testing.T) {
	testCases := []struct {
		name      string
		mainLen   int
		chunkSize int
	}{
		{"exact multiple", 3000, 300},
		{"short final chunk", 3003, 300},
		{"single chunk", 99, 300},
		{"chunk size equals main", 300, 300},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			jobs := planChunks(tc.mainLen, tc.chunkSize)

			covered := 0
			for i, job := range jobs {
				if job.index != i {
					t.Errorf("job %d has index %d", i, job.index)
				}
				if job.inputOffset != covered {
					t.Errorf("job %d starts at %d, want %d", i, job.inputOffset, covered)
				}
				if job.inputLength%3 != 0 {
					t.Errorf("job %d length %d not 3-aligned", i, job.inputLength)
				}
				if job.inputLength > tc.chunkSize {
					t.Errorf("job %d length %d exceeds chunk size %d", i, job.inputLength, tc.chunkSize)
				}
				if want := job.inputOffset / 3 * 4; job.outputOffset != want {
					t.Errorf("job %d output offset %d, want %d", i, job.outputOffset, want)
				}
				covered += job.inputLength
			}
			if covered != tc.mainLen {
				t.Errorf("jobs cover %d bytes, want %d", covered, tc.mainLen)
			}
		})
	}

	if jobs := planChunks(0, 300); jobs != nil {
		t.Errorf("planChunks(0) = %v, want nil", jobs)
	}
}

func TestEncodedLen(t *testing.T) {
	testCases := []struct{ n, want int }{
		{0, 0}, {1, 4}, {2, 4}, {3, 4}, {4, 8}, {5, 8}, {6, 8}, {300, 400},
	}
	for _, tc := range testCases {
		if got := encodedLen(tc.n); got != tc.want {
			t.Errorf("encodedLen(%d) = %d, want %d", tc.n, got, tc.want)
		}
	}
}
