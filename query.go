// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package diet

// Contains checks whether a value is contained in the set or not.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.RunOf(v)
	return ok
}

// RunOf returns the run containing the value, if any.
func (s *Set[T]) RunOf(v T) (Run[T], bool) {
	i, ok := s.FirstWithUpperAtLeast(v)
	if !ok || !s.runs[i].Contains(v) {
		return Run[T]{}, false
	}

	return s.runs[i], true
}

// Overlaps checks whether any value of the run is contained in the set.
func (s *Set[T]) Overlaps(r Run[T]) bool {
	_, ok := s.FirstIndexOverlapping(r)
	return ok
}

// FirstIndexOverlapping returns the index of the first run that overlaps r.
func (s *Set[T]) FirstIndexOverlapping(r Run[T]) (int, bool) {
	i, ok := s.FirstWithUpperAtLeast(r.Lo)
	if !ok || !s.runs[i].Overlaps(r) {
		return -1, false
	}
	return i, true
}

// FirstOverlapping returns the first run that overlaps r.
func (s *Set[T]) FirstOverlapping(r Run[T]) (Run[T], bool) {
	if i, ok := s.FirstIndexOverlapping(r); ok {
		return s.runs[i], true
	}
	return Run[T]{}, false
}

// LastIndexOverlapping returns the index of the last run that overlaps r.
func (s *Set[T]) LastIndexOverlapping(r Run[T]) (int, bool) {
	i, ok := s.LastWithLowerAtMost(r.Hi)
	if !ok || !s.runs[i].Overlaps(r) {
		return -1, false
	}
	return i, true
}

// LastOverlapping returns the last run that overlaps r.
func (s *Set[T]) LastOverlapping(r Run[T]) (Run[T], bool) {
	if i, ok := s.LastIndexOverlapping(r); ok {
		return s.runs[i], true
	}
	return Run[T]{}, false
}

// LastIndexBefore returns the index of the last run starting strictly before
// v. Nothing precedes the smallest value of T.
func (s *Set[T]) LastIndexBefore(v T) (int, bool) {
	p, ok := prev(v)
	if !ok {
		return -1, false
	}
	return s.LastWithLowerAtMost(p)
}
