// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/RoaringBitmap/roaring"
	"github.com/kelindar/diet"
	bench "github.com/kelindar/diet/tinybench"
)

var (
	sizes = []int{1e3, 1e5}
)

type run = diet.Run[uint32]

// shapes describes how long the generated runs are
var shapes = []struct {
	name   string
	maxLen int
}{
	{"pts", 1},
	{"sht", 10},
	{"lng", 1000},
}

func main() {
	bench.Run(func(runner *bench.B) {
		runOps(runner)
		runRange(runner)
		runCodec(runner)
	}, bench.WithReference(),
		bench.WithDuration(10*time.Millisecond),
		bench.WithSamples(100),
	)
}

func runOps(b *bench.B) {
	operations := []struct {
		name  string
		ourFn func(*diet.Set[uint32], run)
		refFn func(*roaring.Bitmap, run)
	}{
		{"add",
			func(s *diet.Set[uint32], r run) { s.AddRange(r) },
			func(rb *roaring.Bitmap, r run) { rb.AddRange(uint64(r.Lo), uint64(r.Hi)+1) }},
		{"has",
			func(s *diet.Set[uint32], r run) { s.Contains(r.Lo) },
			func(rb *roaring.Bitmap, r run) { rb.Contains(r.Lo) }},
		{"overlaps",
			func(s *diet.Set[uint32], r run) { s.Overlaps(r) },
			func(rb *roaring.Bitmap, r run) { rb.IntersectsWithInterval(uint64(r.Lo), uint64(r.Hi)+1) }},
		{"del",
			func(s *diet.Set[uint32], r run) { s.RemoveRange(r) },
			func(rb *roaring.Bitmap, r run) { rb.RemoveRange(uint64(r.Lo), uint64(r.Hi)+1) }},
	}

	for _, op := range operations {
		for _, size := range sizes {
			for _, shape := range shapes {
				data := dataRuns(size, shape.maxLen)
				our, ref := randomSets(data)

				name := fmt.Sprintf("%s %s (%s) ", op.name, formatSize(size), shape.name)
				b.Run(name,
					func(i int) { op.ourFn(our, data[i%len(data)]) },
					func(i int) { op.refFn(ref, data[i%len(data)]) })
			}
		}
	}
}

func runRange(b *bench.B) {
	for _, size := range sizes {
		for _, shape := range shapes {
			our, ref := randomSets(dataRuns(size, shape.maxLen))

			name := fmt.Sprintf("range %s (%s) ", formatSize(size), shape.name)
			b.Run(name,
				func(int) { our.Range(func(uint32) {}) },
				func(int) { ref.Iterate(func(uint32) bool { return true }) })
		}
	}
}

// Benchmark codec (WriteTo + ReadFrom) for 100K runs with different shapes
func runCodec(b *bench.B) {
	const size = 100_000
	for _, shape := range shapes {
		our, ref := randomSets(dataRuns(size, shape.maxLen))

		b.Run("write "+shape.name, func(int) {
			var buf bytes.Buffer
			_, _ = our.WriteTo(&buf)
		}, func(int) {
			var buf bytes.Buffer
			_, _ = ref.WriteTo(&buf)
		})

		encoded, _ := our.MarshalBinary()
		encodedRef, _ := ref.ToBytes()
		b.Run("read "+shape.name, func(int) {
			dst := diet.New[uint32]()
			_, _ = dst.ReadFrom(bytes.NewReader(encoded))
		}, func(int) {
			dst := roaring.New()
			_, _ = dst.ReadFrom(bytes.NewReader(encodedRef))
		})
	}
}

func formatSize(size int) string {
	if size >= 1e6 {
		return fmt.Sprintf("%.0fM", float64(size)/1e6)
	}
	return fmt.Sprintf("%.0fK", float64(size)/1e3)
}

// dataRuns creates random runs of up to maxLen values
func dataRuns(size, maxLen int) []run {
	domain := size * (maxLen + 10)
	data := make([]run, size)
	for i := range data {
		lo := uint32(rand.IntN(domain))
		data[i] = diet.Span(lo, lo+uint32(rand.IntN(maxLen)))
	}
	return data
}

// randomSets creates a set and a roaring bitmap with 50% of the runs added
func randomSets(data []run) (*diet.Set[uint32], *roaring.Bitmap) {
	our := diet.New[uint32]()
	ref := roaring.New()
	for _, r := range data {
		if rand.IntN(2) == 0 {
			our.AddRange(r)
			ref.AddRange(uint64(r.Lo), uint64(r.Hi)+1)
		}
	}
	return our, ref
}
