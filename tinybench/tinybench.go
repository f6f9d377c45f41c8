// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package tinybench is a small sampling benchmark runner that compares every
// result against the previous run (persisted as JSON) and, optionally, against
// a reference implementation, using Welch's t-test to report significance.
package tinybench

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/codahale/tinystat"
)

const (
	DefaultSamples    = 100
	DefaultDuration   = 10 * time.Millisecond
	DefaultFilename   = "bench.json"
	DefaultConfidence = 99
)

// Result represents the samples of a single benchmark, in operations per second
type Result struct {
	Name      string    `json:"name"`
	Samples   []float64 `json:"samples"`
	Timestamp int64     `json:"timestamp"`
}

// Option configures the benchmark runner
type Option func(*config)

type config struct {
	filename string
	filter   string
	samples  int
	duration time.Duration
	showRef  bool
}

// WithFile sets the filename for benchmark results
func WithFile(filename string) Option {
	return func(c *config) {
		c.filename = filename
	}
}

// WithFilter sets a prefix filter for benchmark names
func WithFilter(prefix string) Option {
	return func(c *config) {
		c.filter = prefix
	}
}

// WithSamples sets the number of samples to collect per benchmark
func WithSamples(n int) Option {
	return func(c *config) {
		c.samples = n
	}
}

// WithDuration sets the duration for each sample
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = d
	}
}

// WithReference enables reference comparison column
func WithReference() Option {
	return func(c *config) {
		c.showRef = true
	}
}

// B runs benchmarks and persists their results
type B struct {
	config
	previous map[string]Result
}

// Run creates a runner with the given options, prints the table header and
// calls fn to register the benchmarks.
func Run(fn func(*B), opts ...Option) {
	cfg := config{
		filename: DefaultFilename,
		samples:  DefaultSamples,
		duration: DefaultDuration,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	runner := &B{config: cfg, previous: load(cfg.filename)}
	runner.row("name", "time/op", "ops/s", "allocs/op", "vs prev", "vs ref")
	runner.row("----", "-------", "-----", "---------", "-------", "------")
	fn(runner)
}

// Run measures ourFn and, if given, the reference function. Each function
// receives the index of the operation being executed within a sample.
func (r *B) Run(name string, ourFn func(op int), refFn ...func(op int)) {
	if r.filter != "" && !strings.HasPrefix(name, r.filter) {
		return
	}

	samples, allocs := r.measure(ourFn)
	mean := tinystat.Summarize(samples).Mean

	vsPrev := "new"
	if prev, ok := r.previous[name]; ok {
		vsPrev = compare(samples, prev.Samples)
	}

	vsRef := ""
	if len(refFn) > 0 && refFn[0] != nil {
		refSamples, _ := r.measure(refFn[0])
		vsRef = compare(samples, refSamples)
	}

	r.row(name,
		fmt.Sprintf("%.1fns", 1e9/mean),
		formatOps(mean),
		fmt.Sprintf("%.0f", tinystat.Summarize(allocs).Mean),
		vsPrev, vsRef)

	r.previous[name] = Result{
		Name:      name,
		Samples:   samples,
		Timestamp: time.Now().Unix(),
	}
	r.save()
}

// measure collects samples of operations per second and bytes allocated per operation
func (r *B) measure(fn func(op int)) (samples, allocs []float64) {
	samples = make([]float64, 0, r.samples)
	allocs = make([]float64, 0, r.samples)
	for i := 0; i < r.samples; i++ {
		runtime.GC()

		var before, after runtime.MemStats
		runtime.ReadMemStats(&before)

		// Always run at least one operation so the rates stay finite
		ops := 0
		start := time.Now()
		for ops == 0 || time.Since(start) < r.duration {
			fn(ops)
			ops++
		}

		elapsed := max(time.Since(start), time.Nanosecond)
		runtime.ReadMemStats(&after)
		samples = append(samples, float64(ops)/elapsed.Seconds())
		allocs = append(allocs, float64(after.TotalAlloc-before.TotalAlloc)/float64(ops))
	}
	return
}

// row prints a single line of the results table
func (r *B) row(name, perOp, ops, allocs, vsPrev, vsRef string) {
	if r.showRef {
		fmt.Printf("%-28s %-10s %-10s %-10s %-20s %-20s\n", name, perOp, ops, allocs, vsPrev, vsRef)
		return
	}
	fmt.Printf("%-28s %-10s %-10s %-10s %-20s\n", name, perOp, ops, allocs, vsPrev)
}

// save writes every known result to the results file
func (r *B) save() {
	data, err := json.MarshalIndent(r.previous, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling results: %v\n", err)
		return
	}

	if err := os.WriteFile(r.filename, data, 0644); err != nil {
		fmt.Printf("Error writing results file: %v\n", err)
	}
}

// load reads previous results, returning an empty set if there are none
func load(filename string) map[string]Result {
	results := make(map[string]Result)
	if data, err := os.ReadFile(filename); err == nil {
		_ = json.Unmarshal(data, &results)
	}
	return results
}

// compare formats the speedup of our samples over the other samples
func compare(ours, other []float64) string {
	if len(other) == 0 {
		return "new"
	}

	a, b := tinystat.Summarize(ours), tinystat.Summarize(other)
	if b.Mean == 0 {
		return "~ 1.00x"
	}

	speedup := a.Mean / b.Mean
	diff := tinystat.Compare(a, b, DefaultConfidence)
	switch {
	case !diff.Significant():
		return fmt.Sprintf("~ %.2fx (p=%.3f)", speedup, diff.PValue)
	case speedup > 1:
		return fmt.Sprintf("✅ %.2fx (p=%.3f)", speedup, diff.PValue)
	default:
		return fmt.Sprintf("❌ %.2fx (p=%.3f)", speedup, diff.PValue)
	}
}

// formatOps formats operations per second
func formatOps(opsPerSec float64) string {
	switch {
	case opsPerSec >= 1e6:
		return fmt.Sprintf("%.1fM", opsPerSec/1e6)
	case opsPerSec >= 1e3:
		return fmt.Sprintf("%.1fK", opsPerSec/1e3)
	default:
		return fmt.Sprintf("%.0f", opsPerSec)
	}
}
