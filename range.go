// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package diet

import "iter"

// Len returns the number of runs in the set.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.runs)
}

// At returns the run at the given position. It panics if i is out of range.
func (s *Set[T]) At(i int) Run[T] {
	return s.runs[i]
}

// Runs returns a copy of the runs of the set, in ascending order.
func (s *Set[T]) Runs() []Run[T] {
	if s.Len() == 0 {
		return nil
	}

	out := make([]Run[T], len(s.runs))
	copy(out, s.runs)
	return out
}

// All returns an iterator over the runs of the set, in ascending order.
func (s *Set[T]) All() iter.Seq2[int, Run[T]] {
	return func(yield func(int, Run[T]) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.runs[i]) {
				return
			}
		}
	}
}

// Backward returns an iterator over the runs of the set, in descending order.
func (s *Set[T]) Backward() iter.Seq2[int, Run[T]] {
	return func(yield func(int, Run[T]) bool) {
		for i := s.Len() - 1; i >= 0; i-- {
			if !yield(i, s.runs[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over every value of the set, in ascending order.
func (s *Set[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < s.Len(); i++ {
			start, end := s.runs[i].Lo, s.runs[i].Hi
			for curr := start; ; curr++ {
				if !yield(curr) {
					return
				}
				if curr == end {
					break // Prevent overflow
				}
			}
		}
	}
}

// Range calls the given function for each value in the set
func (s *Set[T]) Range(fn func(x T)) {
	for x := range s.Values() {
		fn(x)
	}
}

// Filter iterates over the set values and calls a predicate provided for each
// of them. If the predicate returns false, the value is removed from the set.
func (s *Set[T]) Filter(f func(x T) bool) {
	// Collect the runs to remove first to avoid modification during iteration
	var toRemove builder[T]
	for x := range s.Values() {
		if !f(x) {
			toRemove.push(x)
		}
	}

	for _, r := range toRemove.runs {
		s.RemoveRange(r)
	}
}

// Count returns the total number of values in the set. A set covering the
// entire 64-bit domain wraps around to zero.
func (s *Set[T]) Count() uint64 {
	count := uint64(0)
	for i := 0; i < s.Len(); i++ {
		count += s.runs[i].Count()
	}
	return count
}

// Min returns the smallest value of the set.
func (s *Set[T]) Min() (T, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	return s.runs[0].Lo, true
}

// Max returns the largest value of the set.
func (s *Set[T]) Max() (T, bool) {
	if s.Len() == 0 {
		return 0, false
	}
	return s.runs[len(s.runs)-1].Hi, true
}
