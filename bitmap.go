// Copyright (c) Roman Atachiants and contributors. All rights reserved.
// Licensed under the MIT license. See LICENSE file in the project root

package diet

import (
	"github.com/RoaringBitmap/roaring"
	"github.com/kelindar/bitmap"
	"golang.org/x/exp/constraints"
)

// FromBitmap creates a set containing every bit set in a dense bitmap.
func FromBitmap(src bitmap.Bitmap) *Set[uint32] {
	var b builder[uint32]
	src.Range(b.push)
	return FromSorted(b.runs)
}

// ToBitmap sets every value of the set in the destination bitmap, growing it
// as needed. Bits already set in the destination are kept.
func ToBitmap(s *Set[uint32], dst *bitmap.Bitmap) {
	hi, ok := s.Max()
	if !ok {
		return
	}

	dst.Grow(hi)
	s.Range(dst.Set)
}

// FromRoaring creates a set containing every value of a roaring bitmap.
func FromRoaring(src *roaring.Bitmap) *Set[uint32] {
	var b builder[uint32]
	src.Iterate(func(x uint32) bool {
		b.push(x)
		return true
	})
	return FromSorted(b.runs)
}

// ToRoaring converts the set into a roaring bitmap, one range per run.
func ToRoaring(s *Set[uint32]) *roaring.Bitmap {
	dst := roaring.New()
	for _, r := range s.All() {
		dst.AddRange(uint64(r.Lo), uint64(r.Hi)+1)
	}
	return dst
}

// builder accumulates strictly ascending values into normalized runs
type builder[T constraints.Integer] struct {
	runs []Run[T]
}

// push appends a value greater than every value pushed before
func (b *builder[T]) push(x T) {
	if n := len(b.runs); n > 0 && b.runs[n-1].Hi+1 == x {
		b.runs[n-1].Hi = x
		return
	}

	b.runs = append(b.runs, Run[T]{Lo: x, Hi: x})
}
