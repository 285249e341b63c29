package align_test

import (
	"testing"

	"github.com/katalvlaran/edist/align"
)

// benchmarkAlign is a helper that aligns pseudo-random sequences of
// lengths m and n using opts. It resets the timer before entering the
// loop and fails on unexpected errors.
func benchmarkAlign(b *testing.B, m, n int, opts align.Options) {
	q := randSeq(11, m, "acgt")
	t := randSeq(17, n, "acgt")

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := align.Align(q, t, opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_GlobalSmall benchmarks an unbounded global distance on
// short 100x100 sequences.
func BenchmarkAlign_GlobalSmall(b *testing.B) {
	benchmarkAlign(b, 100, 100, align.DefaultOptions())
}

// BenchmarkAlign_GlobalMedium benchmarks an unbounded global distance on
// 1000x1000 sequences, roughly 16 blocks per column.
func BenchmarkAlign_GlobalMedium(b *testing.B) {
	benchmarkAlign(b, 1000, 1000, align.DefaultOptions())
}

// BenchmarkAlign_GlobalBounded benchmarks the banded sweep: a small
// MaxDistance keeps only a few blocks of each column alive.
func BenchmarkAlign_GlobalBounded(b *testing.B) {
	opts := align.DefaultOptions()
	opts.MaxDistance = 64
	benchmarkAlign(b, 1000, 1000, opts)
}

// BenchmarkAlign_InfixLocations benchmarks the infix search with start
// positions, which adds a reversed sweep per optimal end.
func BenchmarkAlign_InfixLocations(b *testing.B) {
	opts := align.DefaultOptions()
	opts.Mode = align.ModeInfix
	opts.Task = align.TaskLocations
	benchmarkAlign(b, 100, 1000, opts)
}

// BenchmarkAlign_InfixAlignment benchmarks full path reconstruction on
// top of the infix search.
func BenchmarkAlign_InfixAlignment(b *testing.B) {
	opts := align.DefaultOptions()
	opts.Mode = align.ModeInfix
	opts.Task = align.TaskAlignment
	benchmarkAlign(b, 100, 1000, opts)
}
