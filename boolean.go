// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package diet

import "golang.org/x/exp/constraints"

// And keeps only the values that are present in every one of the sets.
func (s *Set[T]) And(other *Set[T], extra ...*Set[T]) {
	if other == nil {
		s.Clear()
		return
	}

	s.swap(andRuns(s.scratch[:0], s.runs, other.runs))
	for _, o := range extra {
		if len(s.runs) == 0 {
			return // Early exit
		}

		if o == nil {
			s.Clear()
			return
		}
		s.swap(andRuns(s.scratch[:0], s.runs, o.runs))
	}
}

// Or adds every value of the other sets.
func (s *Set[T]) Or(other *Set[T], extra ...*Set[T]) {
	for _, o := range append([]*Set[T]{other}, extra...) {
		if o.Len() > 0 {
			s.swap(orRuns(s.scratch[:0], s.runs, o.runs))
		}
	}
}

// AndNot removes every value of the other sets.
func (s *Set[T]) AndNot(other *Set[T], extra ...*Set[T]) {
	for _, o := range append([]*Set[T]{other}, extra...) {
		if len(s.runs) == 0 {
			return // Early exit
		}

		if o.Len() > 0 {
			s.swap(andNotRuns(s.scratch[:0], s.runs, o.runs))
		}
	}
}

// Xor keeps the values that are present in exactly one of the two sets,
// applied successively for every extra set.
func (s *Set[T]) Xor(other *Set[T], extra ...*Set[T]) {
	for _, o := range append([]*Set[T]{other}, extra...) {
		if o.Len() == 0 {
			continue
		}

		union := orRuns(nil, s.runs, o.runs)
		both := andRuns(nil, s.runs, o.runs)
		s.swap(andNotRuns(s.scratch[:0], union, both))
	}
}

// swap installs the result as the new runs and keeps the previous backing
// slice around as scratch space for the next operation.
func (s *Set[T]) swap(result []Run[T]) {
	s.runs, s.scratch = result, s.runs[:0]
}

// andRuns appends the intersection of two normalized run lists to dst
func andRuns[T constraints.Integer](dst, a, b []Run[T]) []Run[T] {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		lo, hi := max(a[i].Lo, b[j].Lo), min(a[i].Hi, b[j].Hi)
		if lo <= hi {
			dst = append(dst, Run[T]{Lo: lo, Hi: hi})
		}

		switch {
		case a[i].Hi < b[j].Hi:
			i++
		case b[j].Hi < a[i].Hi:
			j++
		default:
			i++
			j++
		}
	}
	return dst
}

// orRuns appends the union of two normalized run lists to dst
func orRuns[T constraints.Integer](dst, a, b []Run[T]) []Run[T] {
	start := len(dst)
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		var r Run[T]
		switch {
		case j == len(b) || (i < len(a) && a[i].Lo <= b[j].Lo):
			r = a[i]
			i++
		default:
			r = b[j]
			j++
		}

		// Merge with the previous run if they overlap or are adjacent
		if n := len(dst); n > start {
			last := &dst[n-1]
			if r.Lo <= last.Hi || last.Hi+1 == r.Lo {
				last.Hi = max(last.Hi, r.Hi)
				continue
			}
		}
		dst = append(dst, r)
	}
	return dst
}

// andNotRuns appends the runs of a minus the runs of b to dst
func andNotRuns[T constraints.Integer](dst, a, b []Run[T]) []Run[T] {
	j := 0
	for _, r := range a {
		for j < len(b) && b[j].Hi < r.Lo {
			j++
		}

		lo, covered := r.Lo, false
		for k := j; k < len(b) && b[k].Lo <= r.Hi; k++ {
			if b[k].Lo > lo {
				dst = append(dst, Run[T]{Lo: lo, Hi: b[k].Lo - 1})
			}
			if b[k].Hi >= r.Hi {
				covered = true
				break
			}
			lo = b[k].Hi + 1
		}

		if !covered {
			dst = append(dst, Run[T]{Lo: lo, Hi: r.Hi})
		}
	}
	return dst
}
