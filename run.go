// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package diet

import (
	"encoding/json"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Run represents a closed range of consecutive values, both bounds inclusive.
type Run[T constraints.Integer] struct {
	Lo T // Lower bound (inclusive)
	Hi T // Upper bound (inclusive)
}

// Span creates a run covering every value from lo to hi, inclusive.
func Span[T constraints.Integer](lo, hi T) Run[T] {
	return Run[T]{Lo: lo, Hi: hi}
}

// Point creates a run containing a single value.
func Point[T constraints.Integer](v T) Run[T] {
	return Run[T]{Lo: v, Hi: v}
}

// Valid returns true if the run is non-empty.
func (r Run[T]) Valid() bool {
	return r.Lo <= r.Hi
}

// Contains checks whether the value falls within the run.
func (r Run[T]) Contains(v T) bool {
	return r.Lo <= v && v <= r.Hi
}

// Overlaps checks whether the two runs share at least one value.
func (r Run[T]) Overlaps(other Run[T]) bool {
	return r.Lo <= other.Hi && other.Lo <= r.Hi
}

// Count returns the number of values in the run. A run spanning the entire
// 64-bit domain holds 2^64 values and wraps around to zero.
func (r Run[T]) Count() uint64 {
	return uint64(r.Hi) - uint64(r.Lo) + 1
}

// String returns the run formatted as "[lo, hi]"
func (r Run[T]) String() string {
	return fmt.Sprintf("[%d, %d]", r.Lo, r.Hi)
}

// MarshalJSON encodes the run as a two-element array.
func (r Run[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]T{r.Lo, r.Hi})
}

// UnmarshalJSON decodes the run from a two-element array.
func (r *Run[T]) UnmarshalJSON(data []byte) error {
	var pair []T
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	if len(pair) != 2 {
		return fmt.Errorf("%w: run has %d bounds, expected 2", ErrCorrupt, len(pair))
	}

	r.Lo, r.Hi = pair[0], pair[1]
	return nil
}

// prev returns v-1, or false if v is the smallest value of T
func prev[T constraints.Integer](v T) (T, bool) {
	p := v - 1
	return p, p < v
}

// next returns v+1, or false if v is the largest value of T
func next[T constraints.Integer](v T) (T, bool) {
	n := v + 1
	return n, n > v
}
