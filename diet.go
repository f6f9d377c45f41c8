// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

// Package diet implements a discrete interval encoding set: a set of integers
// stored as a sorted slice of disjoint, non-adjacent closed runs. Lookups take
// O(log n) in the number of runs, and every mutation keeps the runs maximally
// coalesced. A Set is not safe for concurrent use.
package diet

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	ErrInvalidRun = errors.New("diet: run lower bound is above its upper bound")
	ErrUnordered  = errors.New("diet: runs are not in ascending order or overlap")
	ErrAdjacent   = errors.New("diet: runs are adjacent and should have been merged")
	ErrCorrupt    = errors.New("diet: corrupt encoding")
)

// Set represents a set of integers encoded as sorted, disjoint, non-adjacent
// runs. The zero value is an empty set ready to use. Assigning a Set shares its
// storage; use Clone to obtain an independent copy.
type Set[T constraints.Integer] struct {
	runs    []Run[T]
	scratch []Run[T] // Reusable buffer for boolean operations
}

// New creates a new empty set
func New[T constraints.Integer]() *Set[T] {
	return &Set[T]{}
}

// FromRun creates a set containing every value of a single run.
func FromRun[T constraints.Integer](r Run[T]) *Set[T] {
	s := New[T]()
	s.AddRange(r)
	return s
}

// Of creates a set from an arbitrary list of runs, which may be out of order,
// overlapping or adjacent. Invalid runs are ignored.
func Of[T constraints.Integer](runs ...Run[T]) *Set[T] {
	s := New[T]()
	for _, r := range runs {
		s.AddRange(r)
	}
	return s
}

// FromSorted creates a set that adopts the given runs as its storage without
// copying or validating them. The runs must be non-empty, in ascending order,
// and neither overlapping nor adjacent; otherwise the behavior of every
// subsequent operation is undefined.
func FromSorted[T constraints.Integer](runs []Run[T]) *Set[T] {
	return &Set[T]{runs: runs}
}

// FromSortedChecked is like FromSorted but validates the runs first.
func FromSortedChecked[T constraints.Integer](runs []Run[T]) (*Set[T], error) {
	s := FromSorted(runs)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the runs are non-empty, ascending, disjoint and
// non-adjacent. Sets built through Add and Remove always validate.
func (s *Set[T]) Validate() error {
	for i, r := range s.runs {
		if !r.Valid() {
			return fmt.Errorf("%w: run %d is %v", ErrInvalidRun, i, r)
		}

		if i == 0 {
			continue
		}

		last := s.runs[i-1]
		switch {
		case last.Hi >= r.Lo:
			return fmt.Errorf("%w: run %d is %v after %v", ErrUnordered, i, r, last)
		case last.Hi+1 == r.Lo:
			return fmt.Errorf("%w: run %d is %v after %v", ErrAdjacent, i, r, last)
		}
	}
	return nil
}

// Clear removes every value from the set but keeps its capacity.
func (s *Set[T]) Clear() {
	s.runs = s.runs[:0]
}

// Clone copies the set into the destination, reusing its capacity, and
// returns it. If into is nil, a new set is allocated.
func (s *Set[T]) Clone(into *Set[T]) *Set[T] {
	if into == nil {
		into = New[T]()
	}

	into.runs = append(into.runs[:0], s.runs...)
	return into
}

// Equal returns true if both sets contain exactly the same runs.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}

	for i := 0; i < s.Len(); i++ {
		if s.runs[i] != other.runs[i] {
			return false
		}
	}
	return true
}

// String returns the runs of the set separated by spaces
func (s *Set[T]) String() string {
	var sb strings.Builder
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.runs[i].String())
	}
	return sb.String()
}
