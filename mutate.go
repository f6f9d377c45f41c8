// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package diet

// Add adds a single value to the set.
func (s *Set[T]) Add(v T) {
	s.AddRange(Run[T]{Lo: v, Hi: v})
}

// AddRange adds every value of the run to the set, merging it with any
// existing run it overlaps or touches.
func (s *Set[T]) AddRange(r Run[T]) {
	if !r.Valid() {
		return
	}

	// Widen the search by one step on each side so that adjacent runs are
	// merged too. At the edges of the domain there is nothing to widen into.
	lo, hi := r.Lo, r.Hi
	if p, ok := prev(lo); ok {
		lo = p
	}
	if n, ok := next(hi); ok {
		hi = n
	}

	first, hasFirst := s.FirstWithUpperAtLeast(lo)
	last, hasLast := s.LastWithLowerAtMost(hi)
	merged := r
	if hasFirst {
		merged.Lo = min(s.runs[first].Lo, r.Lo)
	}
	if hasLast {
		merged.Hi = max(s.runs[last].Hi, r.Hi)
	}

	from, until := affected(first, hasFirst, last, hasLast)
	s.splice(from, until, []Run[T]{merged})
}

// Remove removes a single value from the set.
func (s *Set[T]) Remove(v T) {
	s.RemoveRange(Run[T]{Lo: v, Hi: v})
}

// RemoveRange removes every value of the run from the set, splitting existing
// runs that only partially overlap it.
func (s *Set[T]) RemoveRange(r Run[T]) {
	if len(s.runs) == 0 || !r.Valid() {
		return
	}

	first, hasFirst := s.FirstWithUpperAtLeast(r.Lo)
	last, hasLast := s.LastWithLowerAtMost(r.Hi)

	var buffer [2]Run[T]
	keep := buffer[:0]
	if hasFirst && s.runs[first].Lo < r.Lo {
		keep = append(keep, Run[T]{Lo: s.runs[first].Lo, Hi: r.Lo - 1})
	}
	if hasLast && s.runs[last].Hi > r.Hi {
		keep = append(keep, Run[T]{Lo: r.Hi + 1, Hi: s.runs[last].Hi})
	}

	from, until := affected(first, hasFirst, last, hasLast)
	s.splice(from, until, keep)
}

// affected returns the half-open span of run indices [from, until) that a
// mutation replaces. When only one side was found, or the two searches cross
// over a gap, the span is empty and positioned at the insertion point.
func affected(first int, hasFirst bool, last int, hasLast bool) (from, until int) {
	switch {
	case hasFirst && hasLast:
		return first, max(first, last+1)
	case hasFirst:
		return first, first
	case hasLast:
		return last + 1, last + 1
	default:
		return 0, 0
	}
}

// splice replaces the runs in [from, until) with the given runs, in place
// when the capacity allows it.
func (s *Set[T]) splice(from, until int, with []Run[T]) {
	numRuns := len(s.runs)
	newLen := numRuns - (until - from) + len(with)

	// Try to avoid allocation if we have enough capacity
	if cap(s.runs) >= newLen {
		tail := s.runs[until:numRuns]
		s.runs = s.runs[:newLen]
		copy(s.runs[from+len(with):], tail)
		copy(s.runs[from:], with)
		return
	}

	// Need to allocate with extra capacity for future insertions
	extraCapacity := max(16, numRuns)
	runs := make([]Run[T], newLen, newLen+extraCapacity)
	copy(runs, s.runs[:from])
	copy(runs[from:], with)
	copy(runs[from+len(with):], s.runs[until:])
	s.runs = runs
}
