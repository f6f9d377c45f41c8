// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package diet

// FirstWithUpperAtLeast returns the index of the first run whose upper bound
// is greater than or equal to v. This is the run that contains v or the
// first one after it.
func (s *Set[T]) FirstWithUpperAtLeast(v T) (int, bool) {
	return s.firstIndex(func(r Run[T]) bool { return r.Hi >= v })
}

// FirstWithLowerAtLeast returns the index of the first run starting at or after v.
func (s *Set[T]) FirstWithLowerAtLeast(v T) (int, bool) {
	return s.firstIndex(func(r Run[T]) bool { return r.Lo >= v })
}

// LastWithUpperAtMost returns the index of the last run ending at or before v.
func (s *Set[T]) LastWithUpperAtMost(v T) (int, bool) {
	return s.lastIndex(func(r Run[T]) bool { return r.Hi <= v })
}

// LastWithLowerAtMost returns the index of the last run whose lower bound is
// less than or equal to v. This is the run that contains v or the last one
// before it.
func (s *Set[T]) LastWithLowerAtMost(v T) (int, bool) {
	return s.lastIndex(func(r Run[T]) bool { return r.Lo <= v })
}

// firstIndex performs a binary search for the first run satisfying the
// predicate, which must be false for a prefix of the runs and true for the
// remainder. Returns (-1, false) if no run satisfies it.
func (s *Set[T]) firstIndex(fn func(Run[T]) bool) (int, bool) {
	found := -1
	lo, hi := 0, len(s.runs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if fn(s.runs[mid]) {
			found = mid
			hi = mid
		} else {
			lo = mid + 1
		}
	}

	return found, found >= 0
}

// lastIndex performs a binary search for the last run satisfying the
// predicate, which must be true for a prefix of the runs and false for the
// remainder. Returns (-1, false) if no run satisfies it.
func (s *Set[T]) lastIndex(fn func(Run[T]) bool) (int, bool) {
	found := -1
	lo, hi := 0, len(s.runs)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if fn(s.runs[mid]) {
			found = mid
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return found, found >= 0
}
